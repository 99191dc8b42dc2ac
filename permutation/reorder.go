package permutation

import (
	"fmt"

	"github.com/katalvlaran/pitwrap/tensor"
)

// Reorder aligns sources with the references: out[b, k] = src[b, perms[b][k]].
// Every row may use a different permutation. src is never modified; gradient
// flows back to the selected sources.
//
// Errors: ErrBatchMismatch when len(perms) differs from the batch;
// tensor.ErrShape / tensor.ErrIndex for malformed permutations.
// Complexity: O(size of src).
func Reorder(src *tensor.Tensor, perms []Permutation) (*tensor.Tensor, error) {
	if src.NDim() < 2 {
		return nil, fmt.Errorf("permutation: reorder needs [batch, n_src, ...], got %v: %w", src.Shape(), tensor.ErrShape)
	}
	if len(perms) != src.Dim(0) {
		return nil, fmt.Errorf("%w: %d permutations for batch %d", ErrBatchMismatch, len(perms), src.Dim(0))
	}

	return tensor.Gather(src, rows(perms))
}
