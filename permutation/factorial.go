package permutation

import (
	"fmt"

	"github.com/katalvlaran/pitwrap/loss"
	"github.com/katalvlaran/pitwrap/tensor"
)

// BestFactorial scores every permutation of [0, n) and keeps the cheapest per
// row; ties go to the first permutation in lexicographic order.
//
// Stage 1 (Validate): matrix contract and reduction.
// Stage 2 (Score): for each permutation read pw[b, perm[k], k] for all k.
//   - mean reduction: average directly into one score per row;
//   - otherwise: stack into [batch, n!, n] and hand the table to the reduction.
//
// Stage 3 (Select): per-row argmin over the [batch, n!] score table. The
// returned PerRow gathers the winning scores, so gradient reaches only the
// pairwise entries of the winning permutation.
//
// Complexity: O(batch·n!·n) time and memory.
func BestFactorial(pw *tensor.Tensor, red Reduction, args loss.Args) (Result, error) {
	n, err := ValidateMatrix(pw, -1)
	if err != nil {
		return Result{}, err
	}
	if err = red.Validate(); err != nil {
		return Result{}, err
	}

	perms := All(n)
	scores := make([]*tensor.Tensor, len(perms))
	for p, perm := range perms {
		pairs, err := tensor.Pairs(pw, perm)
		if err != nil {
			return Result{}, err
		}
		if red.IsDefault() {
			if scores[p], err = tensor.MeanTail(pairs, 1); err != nil {
				return Result{}, err
			}
			continue
		}
		scores[p] = pairs
	}

	table, err := tensor.Stack(scores)
	if err != nil {
		return Result{}, err
	}
	if !red.IsDefault() {
		// table is [batch, n!, n] here
		if table, err = red.Reduce(table, args); err != nil {
			return Result{}, err
		}
	}

	best, arg, err := tensor.MinLast(table)
	if err != nil {
		return Result{}, fmt.Errorf("permutation: select: %w", err)
	}
	winners := make([]Permutation, len(arg))
	for b, a := range arg {
		winners[b] = perms[a].Clone()
	}

	return Result{PerRow: best, Permutations: winners, Algorithm: Factorial, Candidates: len(perms)}, nil
}
