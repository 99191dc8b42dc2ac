package permutation

import (
	"fmt"

	"github.com/katalvlaran/pitwrap/loss"
	"github.com/katalvlaran/pitwrap/tensor"
)

// FromPermutationLoss finds the best permutation for losses that only score a
// whole source stack: fn(est[:, perm], ref) must return [batch]. The callback
// is re-run for each of the n! permutations, so this is strictly more
// expensive than the pairwise-matrix paths.
//
// Stage 1 (Validate): same n_src on both sides, 1 ≤ n_src < MaxSources.
// Stage 2 (Score): lexicographic permutations, permuted estimates against
// unpermuted references.
// Stage 3 (Select): per-row argmin, first occurrence on ties.
//
// Complexity: n! calls of fn on [batch, n_src, ...] stacks.
func FromPermutationLoss(fn loss.Func, est, ref *tensor.Tensor, args loss.Args) (Result, error) {
	if fn == nil {
		return Result{}, ErrNilLoss
	}
	if est.NDim() < 2 || ref.NDim() < 2 {
		return Result{}, fmt.Errorf("permutation: need [batch, n_src, ...] inputs, got %v and %v: %w",
			est.Shape(), ref.Shape(), tensor.ErrShape)
	}
	if est.Dim(0) != ref.Dim(0) {
		return Result{}, fmt.Errorf("%w: estimates %d, targets %d", ErrBatchMismatch, est.Dim(0), ref.Dim(0))
	}
	n := ref.Dim(1)
	if est.Dim(1) != n {
		return Result{}, fmt.Errorf("%w: %d vs %d", ErrSourceMismatch, est.Dim(1), n)
	}
	if err := ValidateSourceCount(n); err != nil {
		return Result{}, err
	}

	batch := ref.Dim(0)
	perms := All(n)
	scores := make([]*tensor.Tensor, len(perms))
	for p, perm := range perms {
		permuted, err := tensor.Index(est, perm)
		if err != nil {
			return Result{}, err
		}
		l, err := fn(permuted, ref, args)
		if err != nil {
			return Result{}, fmt.Errorf("permutation: loss for %v: %w", perm, err)
		}
		if l == nil {
			return Result{}, fmt.Errorf("%w: nil result for %v", ErrLossShape, perm)
		}
		if l.NDim() != 1 || l.Dim(0) != batch {
			return Result{}, fmt.Errorf("%w: got %v for %v", ErrLossShape, l.Shape(), perm)
		}
		scores[p] = l
	}

	table, err := tensor.Stack(scores)
	if err != nil {
		return Result{}, err
	}
	best, arg, err := tensor.MinLast(table)
	if err != nil {
		return Result{}, err
	}
	winners := make([]Permutation, len(arg))
	for b, a := range arg {
		winners[b] = perms[a].Clone()
	}

	return Result{PerRow: best, Permutations: winners, Algorithm: Factorial, Candidates: len(perms)}, nil
}
