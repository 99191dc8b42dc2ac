// SPDX-License-Identifier: MIT

package pit

import (
	"fmt"

	"github.com/katalvlaran/pitwrap/loss"
	"github.com/katalvlaran/pitwrap/partition"
	"github.com/katalvlaran/pitwrap/permutation"
	"github.com/katalvlaran/pitwrap/tensor"
)

// Result is the full outcome of one evaluation.
type Result struct {
	// Loss is the scalar batch mean of PerRow.
	Loss *tensor.Tensor

	// PerRow is the [batch] minimal loss of every row.
	PerRow *tensor.Tensor

	// Permutations holds the winning permutation per row in the permutation
	// modes; nil otherwise.
	Permutations []permutation.Permutation

	// Partitions holds the winning grouping per row in the mixture modes;
	// nil otherwise.
	Partitions []partition.Partition

	// Estimates are aligned with the references: reordered sources in the
	// permutation modes, [batch, n_mix, ...] summed mixtures in the mixture
	// modes.
	Estimates *tensor.Tensor

	// Search names the engine that ran ("factorial", "hungarian",
	// "equal-partition", "binary-partition"); Candidates is the number of
	// candidates it scored per row (0 for "hungarian").
	Search     string
	Candidates int
}

// Wrapper turns an elementary loss into a permutation- or
// mixture-invariant one. It is immutable after New and safe for concurrent
// use as long as the loss callback is.
type Wrapper struct {
	mode     Mode
	opts     options
	strategy strategy
}

// New builds a Wrapper for mode around fn.
//
// Stage 1: resolve options over the defaults.
// Stage 2: validate the configuration (mode, callback, reduction).
// Stage 3: bind the mode's search strategy.
//
// Errors: ErrUnknownMode, ErrNilLoss, ErrReductionUnsupported,
// permutation.ErrNilReduce.
func New(mode Mode, fn loss.Func, opts ...Option) (*Wrapper, error) {
	o := gatherOptions(opts...)
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
	if fn == nil {
		return nil, ErrNilLoss
	}
	if o.reductionSet && !mode.Pairwise() {
		return nil, fmt.Errorf("%w: mode %s", ErrReductionUnsupported, mode)
	}
	if err := o.reduction.Validate(); err != nil {
		return nil, fmt.Errorf("pit: %w", err)
	}

	return &Wrapper{mode: mode, opts: o, strategy: newStrategy(mode, fn, o)}, nil
}

// NewFromName is New with the mode given by name; see ParseMode.
func NewFromName(name string, fn loss.Func, opts ...Option) (*Wrapper, error) {
	mode, err := ParseMode(name)
	if err != nil {
		return nil, err
	}

	return New(mode, fn, opts...)
}

// Mode returns the wrapper's mode.
func (w *Wrapper) Mode() Mode { return w.mode }

// Forward returns the scalar batch-mean loss.
// args is passed to the loss callback on every invocation.
func (w *Wrapper) Forward(est, ref *tensor.Tensor, args loss.Args) (*tensor.Tensor, error) {
	res, err := w.evaluate(est, ref, args, nil, false)
	if err != nil {
		return nil, err
	}

	return res.Loss, nil
}

// ForwardWithEstimates returns the scalar loss and the estimates aligned
// with the references.
func (w *Wrapper) ForwardWithEstimates(est, ref *tensor.Tensor, args loss.Args) (*tensor.Tensor, *tensor.Tensor, error) {
	res, err := w.evaluate(est, ref, args, nil, true)
	if err != nil {
		return nil, nil, err
	}

	return res.Loss, res.Estimates, nil
}

// Evaluate returns everything the search produced.
func (w *Wrapper) Evaluate(est, ref *tensor.Tensor, args loss.Args) (Result, error) {
	return w.evaluate(est, ref, args, nil, true)
}

// EvaluateWithReduceArgs is Evaluate with reduceArgs handed to a custom
// reduction.
func (w *Wrapper) EvaluateWithReduceArgs(est, ref *tensor.Tensor, args, reduceArgs loss.Args) (Result, error) {
	return w.evaluate(est, ref, args, reduceArgs, true)
}

func (w *Wrapper) evaluate(est, ref *tensor.Tensor, args, reduceArgs loss.Args, align bool) (Result, error) {
	if est == nil || ref == nil || est.NDim() < 2 || ref.NDim() < 2 {
		return Result{}, ErrMissingInput
	}
	if err := permutation.ValidateSourceCount(ref.Dim(1)); err != nil {
		return Result{}, err
	}

	out, err := w.strategy.run(est, ref, args, reduceArgs, align)
	if err != nil {
		return Result{}, fmt.Errorf("pit: %s: %w", w.mode.Alias(), err)
	}
	mean, err := tensor.Mean(out.perRow)
	if err != nil {
		return Result{}, err
	}
	w.opts.logger.Printf("pit: mode=%s search=%s candidates=%d batch=%d loss=%.6g",
		w.mode.Alias(), out.search, out.candidates, ref.Dim(0), mean.Values()[0])

	return Result{
		Loss:         mean,
		PerRow:       out.perRow,
		Permutations: out.perms,
		Partitions:   out.parts,
		Estimates:    out.estimates,
		Search:       out.search,
		Candidates:   out.candidates,
	}, nil
}

// Reorderer is the inference-time variant of Wrapper: it runs the same
// search and keeps only the aligned estimates.
type Reorderer struct {
	w *Wrapper
}

// NewReorderer builds a Reorderer; arguments and errors as in New.
func NewReorderer(mode Mode, fn loss.Func, opts ...Option) (*Reorderer, error) {
	w, err := New(mode, fn, opts...)
	if err != nil {
		return nil, err
	}

	return &Reorderer{w: w}, nil
}

// Reorder returns est aligned with ref.
func (r *Reorderer) Reorder(est, ref *tensor.Tensor, args loss.Args) (*tensor.Tensor, error) {
	res, err := r.w.evaluate(est, ref, args, nil, true)
	if err != nil {
		return nil, err
	}

	return res.Estimates, nil
}
