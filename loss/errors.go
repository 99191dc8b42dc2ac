package loss

import "errors"

// ErrShapeMismatch is returned when estimates and references cannot be compared.
var ErrShapeMismatch = errors.New("loss: estimate and reference shapes differ")
