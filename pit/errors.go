// SPDX-License-Identifier: MIT

package pit

import "errors"

// Configuration errors, returned by the constructors.
var (
	// ErrUnknownMode is returned for a mode value or name outside the five modes.
	ErrUnknownMode = errors.New("pit: unknown mode")

	// ErrNilLoss is returned when the loss callback is nil.
	ErrNilLoss = errors.New("pit: nil loss callback")

	// ErrReductionUnsupported is returned when a reduction is configured for a
	// mode that never builds a pairwise matrix.
	ErrReductionUnsupported = errors.New("pit: reduction only applies to pairwise modes")
)

// ErrMissingInput is returned when estimates or references are nil or lack
// a source axis.
var ErrMissingInput = errors.New("pit: estimates and references must be [batch, n_src, ...]")
