package permutation

import (
	"fmt"

	"github.com/katalvlaran/pitwrap/loss"
	"github.com/katalvlaran/pitwrap/tensor"
)

// ReduceFunc scores permutations from their per-source losses:
// [batch, n_perm, n_src] → [batch, n_perm]. Row b of the input holds, for each
// candidate permutation, the pairwise losses pw[b, perm[k], k] for every k.
type ReduceFunc func(perSource *tensor.Tensor, args loss.Args) (*tensor.Tensor, error)

// ReductionKind enumerates the available reductions.
type ReductionKind int

const (
	// ReduceMean averages the per-source losses (the default).
	ReduceMean ReductionKind = iota
	// ReduceSum adds the per-source losses.
	ReduceSum
	// ReduceMax keeps the worst per-source loss.
	ReduceMax
	// ReduceCustom delegates to a user ReduceFunc.
	ReduceCustom
)

// Reduction is the strategy that turns per-source losses of a permutation
// into one score. The zero value is the mean.
type Reduction struct {
	kind ReductionKind
	fn   ReduceFunc
}

// MeanReduction averages over sources.
func MeanReduction() Reduction { return Reduction{kind: ReduceMean} }

// SumReduction sums over sources.
func SumReduction() Reduction { return Reduction{kind: ReduceSum} }

// MaxReduction scores a permutation by its worst source.
func MaxReduction() Reduction { return Reduction{kind: ReduceMax} }

// CustomReduction wraps fn. A nil fn is reported by Validate.
func CustomReduction(fn ReduceFunc) Reduction { return Reduction{kind: ReduceCustom, fn: fn} }

// Kind returns the reduction variant.
func (r Reduction) Kind() ReductionKind { return r.kind }

// IsDefault reports whether r is the mean, the only reduction the Hungarian
// path implements.
func (r Reduction) IsDefault() bool { return r.kind == ReduceMean }

// Validate checks that r is usable.
func (r Reduction) Validate() error {
	switch r.kind {
	case ReduceMean, ReduceSum, ReduceMax:
		return nil
	case ReduceCustom:
		if r.fn == nil {
			return ErrNilReduce
		}
		return nil
	default:
		return fmt.Errorf("permutation: unknown reduction kind %d", int(r.kind))
	}
}

// String implements fmt.Stringer.
func (r Reduction) String() string {
	switch r.kind {
	case ReduceMean:
		return "mean"
	case ReduceSum:
		return "sum"
	case ReduceMax:
		return "max"
	case ReduceCustom:
		return "custom"
	default:
		return fmt.Sprintf("ReductionKind(%d)", int(r.kind))
	}
}

// Reduce applies r to a [batch, n_perm, n_src] table and checks that the
// result is [batch, n_perm].
func (r Reduction) Reduce(perSource *tensor.Tensor, args loss.Args) (*tensor.Tensor, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	var (
		out *tensor.Tensor
		err error
	)
	switch r.kind {
	case ReduceMean:
		out, err = tensor.MeanTail(perSource, 2)
	case ReduceSum:
		out, err = tensor.SumTail(perSource, 2)
	case ReduceMax:
		out, err = tensor.MaxTail(perSource, 2)
	case ReduceCustom:
		out, err = r.fn(perSource, args)
	}
	if err != nil {
		return nil, fmt.Errorf("permutation: %s reduction: %w", r, err)
	}
	if out == nil {
		return nil, fmt.Errorf("%w: %s reduction returned nil for input %v", ErrReduceShape, r, perSource.Shape())
	}
	if out.NDim() != 2 || out.Dim(0) != perSource.Dim(0) || out.Dim(1) != perSource.Dim(1) {
		return nil, fmt.Errorf("%w: got %v for input %v", ErrReduceShape, out.Shape(), perSource.Shape())
	}

	return out, nil
}
