// SPDX-License-Identifier: MIT

package pit

import (
	"io"
	"log"

	"github.com/katalvlaran/pitwrap/permutation"
)

// Option configures a Wrapper at construction. Options are fixed for the
// lifetime of the wrapper.
type Option func(*options)

// options is the resolved configuration.
type options struct {
	reduction    permutation.Reduction // permutation.MeanReduction() unless set
	reductionSet bool                  // WithReduction was applied
	logger       *log.Logger           // discard unless set
}

func defaultOptions() options {
	return options{
		reduction: permutation.MeanReduction(),
		logger:    log.New(io.Discard, "", 0),
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithReduction sets how the per-source losses of a permutation are turned
// into one score. Any reduction other than the mean forces exhaustive
// search. Only valid with the pairwise modes; New rejects it otherwise.
func WithReduction(r permutation.Reduction) Option {
	return func(o *options) {
		o.reduction = r
		o.reductionSet = true
	}
}

// WithLogger sends one line per evaluation to l: mode, search algorithm,
// candidate count, batch size and loss. A nil l restores the discard logger.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		o.logger = l
	}
}
