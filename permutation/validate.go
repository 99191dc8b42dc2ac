package permutation

import (
	"fmt"

	"github.com/katalvlaran/pitwrap/tensor"
)

// ValidateMatrix checks the pairwise matrix contract of FindBest:
//   - rank 3, square in the last two axes;
//   - batch equal to `batch` (pass a negative batch to skip this check);
//   - 1 ≤ n_src < MaxSources.
//
// Returns n_src on success.
// Complexity: O(1).
func ValidateMatrix(pw *tensor.Tensor, batch int) (int, error) {
	if pw == nil || pw.NDim() != 3 {
		var shape []int
		if pw != nil {
			shape = pw.Shape()
		}
		return 0, fmt.Errorf("%w: got shape %v", ErrNotRank3, shape)
	}
	if pw.Dim(1) != pw.Dim(2) {
		return 0, fmt.Errorf("%w: %d estimates vs %d references", ErrNotSquare, pw.Dim(1), pw.Dim(2))
	}
	if batch >= 0 && pw.Dim(0) != batch {
		return 0, fmt.Errorf("%w: matrix batch %d, targets batch %d", ErrBatchMismatch, pw.Dim(0), batch)
	}

	n := pw.Dim(1)
	if err := ValidateSourceCount(n); err != nil {
		return 0, err
	}

	return n, nil
}

// ValidateSourceCount enforces 1 ≤ n < MaxSources.
func ValidateSourceCount(n int) error {
	if n < 1 {
		return ErrNoSources
	}
	if n >= MaxSources {
		return fmt.Errorf("%w: n_src=%d, limit %d", ErrTooManySources, n, MaxSources-1)
	}

	return nil
}
