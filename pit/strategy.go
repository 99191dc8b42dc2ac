// SPDX-License-Identifier: MIT

package pit

import (
	"fmt"

	"github.com/katalvlaran/pitwrap/loss"
	"github.com/katalvlaran/pitwrap/pairwise"
	"github.com/katalvlaran/pitwrap/partition"
	"github.com/katalvlaran/pitwrap/permutation"
	"github.com/katalvlaran/pitwrap/tensor"
)

// outcome is what a strategy hands back to the Wrapper before batch averaging.
type outcome struct {
	perRow     *tensor.Tensor
	perms      []permutation.Permutation
	parts      []partition.Partition
	estimates  *tensor.Tensor // nil unless requested or free
	search     string
	candidates int
}

// strategy runs one mode's search. It is resolved once in New.
type strategy interface {
	run(est, ref *tensor.Tensor, args, reduceArgs loss.Args, align bool) (outcome, error)
}

func newStrategy(mode Mode, fn loss.Func, o options) strategy {
	switch mode {
	case PairwiseMatrix:
		return matrixStrategy{fn: fn, opts: permutation.Options{Reduction: o.reduction}}
	case PairwisePointwise:
		return matrixStrategy{fn: fn, pointwise: true, opts: permutation.Options{Reduction: o.reduction}}
	case PermutationAverage:
		return permAvgStrategy{fn: fn}
	case MixtureInvariant:
		return mixtureStrategy{fn: fn}
	default:
		return mixtureStrategy{fn: fn, generalized: true}
	}
}

// matrixStrategy builds (or receives) the pairwise matrix and searches it.
type matrixStrategy struct {
	fn        loss.Func
	pointwise bool
	opts      permutation.Options
}

func (s matrixStrategy) run(est, ref *tensor.Tensor, args, reduceArgs loss.Args, align bool) (outcome, error) {
	var (
		pw  *tensor.Tensor
		err error
	)
	if s.pointwise {
		pw, err = pairwise.Compute(s.fn, est, ref, args)
	} else {
		pw, err = s.fn(est, ref, args)
	}
	if err != nil {
		return outcome{}, fmt.Errorf("pit: pairwise losses: %w", err)
	}
	// postcondition on the callback: rank 3, square, batch-aligned
	if _, err = permutation.ValidateMatrix(pw, ref.Dim(0)); err != nil {
		return outcome{}, err
	}

	res, err := permutation.FindBest(pw, s.opts, reduceArgs)
	if err != nil {
		return outcome{}, err
	}
	out := outcome{
		perRow:     res.PerRow,
		perms:      res.Permutations,
		search:     res.Algorithm.String(),
		candidates: res.Candidates,
	}
	if align {
		if out.estimates, err = permutation.Reorder(est, res.Permutations); err != nil {
			return outcome{}, err
		}
	}

	return out, nil
}

// permAvgStrategy re-runs the callback on every permuted estimate stack.
type permAvgStrategy struct {
	fn loss.Func
}

func (s permAvgStrategy) run(est, ref *tensor.Tensor, args, _ loss.Args, align bool) (outcome, error) {
	res, err := permutation.FromPermutationLoss(s.fn, est, ref, args)
	if err != nil {
		return outcome{}, err
	}
	out := outcome{
		perRow:     res.PerRow,
		perms:      res.Permutations,
		search:     res.Algorithm.String(),
		candidates: res.Candidates,
	}
	if align {
		if out.estimates, err = permutation.Reorder(est, res.Permutations); err != nil {
			return outcome{}, err
		}
	}

	return out, nil
}

// mixtureStrategy groups estimates into mixtures. The summed mixtures are
// always produced by the search, so align is ignored.
type mixtureStrategy struct {
	fn          loss.Func
	generalized bool
}

func (s mixtureStrategy) run(est, ref *tensor.Tensor, args, _ loss.Args, _ bool) (outcome, error) {
	search, name := partition.BestEqual, "equal-partition"
	if s.generalized {
		search, name = partition.BestGeneralized, "binary-partition"
	}
	res, err := search(s.fn, est, ref, args)
	if err != nil {
		return outcome{}, err
	}

	return outcome{
		perRow:     res.PerRow,
		parts:      res.Partitions,
		estimates:  res.Mixtures,
		search:     name,
		candidates: res.Candidates,
	}, nil
}
