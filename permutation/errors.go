package permutation

import "errors"

// Contract violations. They indicate misuse of the loss callback or of the
// API and are returned before any search work is done.
var (
	// ErrNotRank3 is returned when the pairwise matrix is not [batch, n, n].
	ErrNotRank3 = errors.New("permutation: pairwise matrix must be rank 3")

	// ErrNotSquare is returned when the last two axes of the matrix differ.
	ErrNotSquare = errors.New("permutation: pairwise matrix is not square")

	// ErrBatchMismatch is returned when the matrix batch differs from the targets'.
	ErrBatchMismatch = errors.New("permutation: pairwise matrix batch differs from targets")

	// ErrTooManySources is returned when n_src ≥ MaxSources.
	ErrTooManySources = errors.New("permutation: too many sources for exhaustive search")

	// ErrNoSources is returned when the source axis is empty.
	ErrNoSources = errors.New("permutation: no sources")

	// ErrSourceMismatch is returned when estimates and references differ in n_src.
	ErrSourceMismatch = errors.New("permutation: estimate and reference source counts differ")

	// ErrReduceShape is returned when a reduction does not yield [batch, n_perm].
	ErrReduceShape = errors.New("permutation: reduction must return [batch, n_perm]")

	// ErrLossShape is returned when a permutation-level loss does not yield [batch].
	ErrLossShape = errors.New("permutation: loss callback must return one value per batch row")

	// ErrNilReduce is returned for a custom reduction without a function.
	ErrNilReduce = errors.New("permutation: custom reduction has nil function")

	// ErrNonFinite is returned when the matching solver meets NaN or ±Inf costs.
	ErrNonFinite = errors.New("permutation: non-finite cost in matching")

	// ErrNilLoss is returned when no permutation-level loss is supplied.
	ErrNilLoss = errors.New("permutation: nil loss callback")
)
