// Package tensor: sentinel errors. Callers match with errors.Is; ops wrap
// them with the offending shape or index for context.
package tensor

import "errors"

var (
	// ErrShape is returned when data length and shape disagree, or when an op
	// receives operands whose shapes are incompatible.
	ErrShape = errors.New("tensor: invalid shape")

	// ErrIndex indicates an index outside the addressed axis.
	ErrIndex = errors.New("tensor: index out of range")

	// ErrNotScalar is returned by Backward and Item on tensors with more than one element.
	ErrNotScalar = errors.New("tensor: tensor is not a scalar")

	// ErrNotTracked is returned by Backward when the tensor has no gradient path.
	ErrNotTracked = errors.New("tensor: tensor does not track gradients")

	// ErrEmpty is returned when an op needs at least one operand or element.
	ErrEmpty = errors.New("tensor: empty input")
)
