package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// reduceKind selects the aggregation of reduceTail.
type reduceKind int

const (
	reduceSum reduceKind = iota
	reduceMean
	reduceMax
)

// reduceTail collapses every axis from `axis` onwards.
//
// Stage 1 (Validate): 0 ≤ axis ≤ ndim; mean/max need a non-empty tail.
// Stage 2 (Execute): aggregate each contiguous tail block. Sums run strictly
// left to right so a row's result does not depend on where the row sits in
// the batch.
// Stage 3 (Finalize): record a backward that spreads (sum/mean) or routes
// (max, first maximum) the output gradient.
//
// Complexity: O(size).
func reduceTail(t *Tensor, axis int, kind reduceKind) (*Tensor, error) {
	if axis < 0 || axis > len(t.shape) {
		return nil, fmt.Errorf("%w: reduce from axis %d of shape %v", ErrShape, axis, t.shape)
	}
	outShape := append([]int{}, t.shape[:axis]...)
	outer, _ := volume(outShape)
	inner := 1
	for _, d := range t.shape[axis:] {
		inner *= d
	}
	if inner == 0 && kind != reduceSum {
		return nil, fmt.Errorf("%w: reduce over empty axes of shape %v", ErrEmpty, t.shape)
	}

	data := make([]float64, outer)
	arg := make([]int, outer)
	for o := 0; o < outer; o++ {
		block := t.data[o*inner : (o+1)*inner]
		switch kind {
		case reduceSum:
			data[o] = sumOrdered(block)
		case reduceMean:
			data[o] = sumOrdered(block) / float64(inner)
		case reduceMax:
			arg[o] = floats.MaxIdx(block)
			data[o] = block[arg[o]]
		}
	}

	return result(outShape, data, func(out *Tensor) {
		g := gradOf(t)
		if g == nil {
			return
		}
		for o := 0; o < outer; o++ {
			gout := out.grad[o]
			switch kind {
			case reduceSum:
				floats.AddConst(gout, g[o*inner:(o+1)*inner])
			case reduceMean:
				floats.AddConst(gout/float64(inner), g[o*inner:(o+1)*inner])
			case reduceMax:
				g[o*inner+arg[o]] += gout
			}
		}
	}, t), nil
}

// sumOrdered adds s front to back. floats.Sum dispatches to an assembly
// kernel whose accumulation order follows the slice's memory alignment, so
// equal blocks at different offsets can differ in the last bit.
func sumOrdered(s []float64) float64 {
	var acc float64
	for _, v := range s {
		acc += v
	}

	return acc
}

// dotOrdered is the fixed-order counterpart of floats.Dot.
func dotOrdered(a, b []float64) float64 {
	var acc float64
	for i, v := range a {
		acc += v * b[i]
	}

	return acc
}

// SumTail sums over every axis from `axis` onwards.
func SumTail(t *Tensor, axis int) (*Tensor, error) { return reduceTail(t, axis, reduceSum) }

// MeanTail averages over every axis from `axis` onwards.
// MeanTail(t, 1) turns [batch, *] into per-row means [batch].
func MeanTail(t *Tensor, axis int) (*Tensor, error) { return reduceTail(t, axis, reduceMean) }

// MaxTail takes the maximum over every axis from `axis` onwards; gradient
// flows to the first maximal element only.
func MaxTail(t *Tensor, axis int) (*Tensor, error) { return reduceTail(t, axis, reduceMax) }

// Mean averages every element into a scalar of shape [].
func Mean(t *Tensor) (*Tensor, error) { return reduceTail(t, 0, reduceMean) }

// MinLast takes the minimum along the last axis and returns it with the
// winning positions. Ties go to the first occurrence. The returned tensor
// gathers the winners from t, so gradient reaches only those elements.
//
// For a [batch, candidates] loss table this is the per-row argmin that picks
// the best permutation or partition.
//
// Complexity: O(size).
func MinLast(t *Tensor) (*Tensor, []int, error) {
	if len(t.shape) == 0 {
		return nil, nil, fmt.Errorf("%w: MinLast on a scalar", ErrShape)
	}
	last := t.shape[len(t.shape)-1]
	if last == 0 {
		return nil, nil, fmt.Errorf("%w: MinLast over an empty axis", ErrEmpty)
	}
	outer := len(t.data) / last
	arg := make([]int, outer)
	idx := make([]int, outer)
	for o := 0; o < outer; o++ {
		arg[o] = floats.MinIdx(t.data[o*last : (o+1)*last])
		idx[o] = o*last + arg[o]
	}

	return gatherFlat(t, append([]int{}, t.shape[:len(t.shape)-1]...), idx), arg, nil
}
