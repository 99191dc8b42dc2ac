package partition

import "errors"

var (
	// ErrUnevenPartition is returned when n_est cannot be split into n_mix
	// non-empty groups of equal size.
	ErrUnevenPartition = errors.New("partition: estimates do not split evenly into mixtures")

	// ErrNotTwoMixtures is returned by the generalized search for n_mix != 2.
	ErrNotTwoMixtures = errors.New("partition: generalized search needs exactly two mixtures")

	// ErrShapeMismatch is returned when estimates and references disagree in
	// batch size or trailing shape.
	ErrShapeMismatch = errors.New("partition: estimate and reference shapes differ")

	// ErrLossShape is returned when the loss callback does not yield [batch].
	ErrLossShape = errors.New("partition: loss callback must return one value per batch row")

	// ErrNilLoss is returned when no loss callback is supplied.
	ErrNilLoss = errors.New("partition: nil loss callback")

	// ErrNoSources is returned for an empty estimate or reference axis.
	ErrNoSources = errors.New("partition: no sources")
)
