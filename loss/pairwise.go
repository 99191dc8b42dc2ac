package loss

import (
	"fmt"

	"github.com/katalvlaran/pitwrap/tensor"
)

// PairwiseSquaredError returns the [batch, n_est, n_ref] matrix whose entry
// [b, i, j] is the mean squared difference between est[b, i] and ref[b, j].
//
// Each estimate is broadcast against all references at once, so the work is
// n_est tensor passes rather than n_est·n_ref callback invocations.
//
// Complexity: O(batch·n_est·n_ref·|rest|).
func PairwiseSquaredError(est, ref *tensor.Tensor, _ Args) (*tensor.Tensor, error) {
	if est.NDim() < 2 || est.NDim() != ref.NDim() || est.Dim(0) != ref.Dim(0) {
		return nil, fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, est.Shape(), ref.Shape())
	}
	nEst, nRef := est.Dim(1), ref.Dim(1)
	rows := make([]*tensor.Tensor, 0, nEst)
	for i := 0; i < nEst; i++ {
		rep := make([]int, nRef)
		for j := range rep {
			rep[j] = i
		}
		tiled, err := tensor.Index(est, rep)
		if err != nil {
			return nil, err
		}
		diff, err := tensor.Sub(tiled, ref)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
		}
		sq, err := tensor.Mul(diff, diff)
		if err != nil {
			return nil, err
		}
		row, err := tensor.MeanTail(sq, 2)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return tensor.Stack(rows)
}

// PairwiseNegSISDR returns the [batch, n_est, n_ref] matrix of NegSISDR
// between every estimate and reference source.
// Complexity: O(batch·n_est·n_ref·|rest|).
func PairwiseNegSISDR(est, ref *tensor.Tensor, args Args) (*tensor.Tensor, error) {
	if est.NDim() < 2 || est.NDim() != ref.NDim() || est.Dim(0) != ref.Dim(0) {
		return nil, fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, est.Shape(), ref.Shape())
	}
	eps := epsFrom(args)
	rows := make([]*tensor.Tensor, 0, est.Dim(1))
	for i := 0; i < est.Dim(1); i++ {
		e, err := tensor.Source(est, i)
		if err != nil {
			return nil, err
		}
		cols := make([]*tensor.Tensor, 0, ref.Dim(1))
		for j := 0; j < ref.Dim(1); j++ {
			r, err := tensor.Source(ref, j)
			if err != nil {
				return nil, err
			}
			l, err := negSISDR(e, r, eps)
			if err != nil {
				return nil, err
			}
			cols = append(cols, l)
		}
		row, err := tensor.Stack(cols)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return tensor.Stack(rows)
}
