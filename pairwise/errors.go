package pairwise

import "errors"

var (
	// ErrLossShape is returned when the callback result is not a [batch] vector.
	ErrLossShape = errors.New("pairwise: loss callback must return one value per batch row")

	// ErrBatchMismatch is returned when estimates and references disagree on the batch size.
	ErrBatchMismatch = errors.New("pairwise: estimate and reference batch sizes differ")

	// ErrNilLoss is returned when no callback is supplied.
	ErrNilLoss = errors.New("pairwise: nil loss callback")
)
