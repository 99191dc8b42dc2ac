package pairwise

import (
	"fmt"

	"github.com/katalvlaran/pitwrap/loss"
	"github.com/katalvlaran/pitwrap/tensor"
)

// Compute returns the [batch, n_est, n_ref] pairwise loss matrix of fn.
//
// Stage 1 (Validate): fn non-nil; both tensors are [batch, n, ...] with the
// same batch size.
// Stage 2 (Split): slice every estimate and reference source once.
// Stage 3 (Evaluate): call fn for each (i, j); each result must be [batch].
// Stage 4 (Assemble): stack rows of the grid into the matrix. The matrix is
// gradient-tracked whenever the callback outputs are.
//
// Complexity: n_est·n_ref calls of fn plus O(batch·n_est·n_ref) assembly.
func Compute(fn loss.Func, est, ref *tensor.Tensor, args loss.Args) (*tensor.Tensor, error) {
	if fn == nil {
		return nil, ErrNilLoss
	}
	if est.NDim() < 2 || ref.NDim() < 2 {
		return nil, fmt.Errorf("pairwise: need [batch, n_src, ...] inputs, got %v and %v: %w",
			est.Shape(), ref.Shape(), tensor.ErrShape)
	}
	batch := est.Dim(0)
	if ref.Dim(0) != batch {
		return nil, fmt.Errorf("%w: %d vs %d", ErrBatchMismatch, batch, ref.Dim(0))
	}

	ests, err := split(est)
	if err != nil {
		return nil, err
	}
	refs, err := split(ref)
	if err != nil {
		return nil, err
	}

	rows := make([]*tensor.Tensor, len(ests))
	for i, e := range ests {
		cols := make([]*tensor.Tensor, len(refs))
		for j, r := range refs {
			l, err := fn(e, r, args)
			if err != nil {
				return nil, fmt.Errorf("pairwise: loss at (%d, %d): %w", i, j, err)
			}
			if l == nil {
				return nil, fmt.Errorf("%w: nil result at (%d, %d)", ErrLossShape, i, j)
			}
			if l.NDim() != 1 || l.Dim(0) != batch {
				return nil, fmt.Errorf("%w: got shape %v at (%d, %d)", ErrLossShape, l.Shape(), i, j)
			}
			cols[j] = l
		}
		if rows[i], err = tensor.Stack(cols); err != nil {
			return nil, err
		}
	}

	return tensor.Stack(rows)
}

// split returns every source of t as a [batch, *rest] tensor.
func split(t *tensor.Tensor) ([]*tensor.Tensor, error) {
	out := make([]*tensor.Tensor, t.Dim(1))
	for k := range out {
		s, err := tensor.Source(t, k)
		if err != nil {
			return nil, err
		}
		out[k] = s
	}

	return out, nil
}
