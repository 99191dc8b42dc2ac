package partition

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/pitwrap/loss"
	"github.com/katalvlaran/pitwrap/permutation"
	"github.com/katalvlaran/pitwrap/tensor"
)

// BestEqual finds, for every batch row, the split of the estimates into
// n_mix equal groups whose summed mixtures minimise fn against the
// reference mixtures.
//
// est is [batch, n_est, *rest], ref is [batch, n_mix, *rest], and
// fn(mixtures, ref, args) must return [batch].
//
// Stage 1 (Validate): shapes; n_est divisible by n_mix (ErrUnevenPartition).
// Stage 2 (Enumerate): every unique partition from NewEqualGenerator, under
// every one of the n_mix! assignments of its groups to reference mixtures.
// Stage 3 (Score): sum each candidate's groups, evaluate fn once per
// candidate on the whole batch.
// Stage 4 (Select): per-row argmin, first candidate on ties.
// Stage 5 (Reconstruct): re-sum the raw estimates by each row's winner.
//
// Complexity: O(C·n_mix!·cost(fn)) with C = CountEqual(n_est, n_mix).
func BestEqual(fn loss.Func, est, ref *tensor.Tensor, args loss.Args) (Result, error) {
	nEst, nMix, err := validate(fn, est, ref)
	if err != nil {
		return Result{}, err
	}
	gen, err := NewEqualGenerator(nEst, nMix)
	if err != nil {
		return Result{}, err
	}

	orders := permutation.All(nMix)
	cands := make([]Partition, 0, CountEqual(nEst, nMix)*len(orders))
	for gen.Next() {
		p := gen.Partition(nil)
		for _, order := range orders {
			cands = append(cands, p.Reordered(order))
		}
	}

	return search(fn, est, ref, args, cands)
}

// BestGeneralized is BestEqual for exactly two reference mixtures and
// groups of any size, empty included: all 2^n_est ordered splits from
// NewBinaryGenerator are scored.
//
// Returns ErrNotTwoMixtures when ref does not hold two mixtures.
// Complexity: O(2^n_est·cost(fn)).
func BestGeneralized(fn loss.Func, est, ref *tensor.Tensor, args loss.Args) (Result, error) {
	nEst, nMix, err := validate(fn, est, ref)
	if err != nil {
		return Result{}, err
	}
	if nMix != 2 {
		return Result{}, fmt.Errorf("%w: got %d", ErrNotTwoMixtures, nMix)
	}

	gen := NewBinaryGenerator(nEst)
	cands := make([]Partition, 0, CountBinary(nEst))
	for gen.Next() {
		cands = append(cands, gen.Partition(nil))
	}

	return search(fn, est, ref, args, cands)
}

// validate checks the shared contract and returns (n_est, n_mix).
func validate(fn loss.Func, est, ref *tensor.Tensor) (int, int, error) {
	if fn == nil {
		return 0, 0, ErrNilLoss
	}
	if est == nil || ref == nil || est.NDim() < 2 || ref.NDim() < 2 {
		return 0, 0, fmt.Errorf("%w: need [batch, n_src, ...] inputs", ErrShapeMismatch)
	}
	es, rs := est.Shape(), ref.Shape()
	if es[0] != rs[0] || !slices.Equal(es[2:], rs[2:]) {
		return 0, 0, fmt.Errorf("%w: estimates %v, references %v", ErrShapeMismatch, es, rs)
	}
	if es[1] == 0 || rs[1] == 0 {
		return 0, 0, fmt.Errorf("%w: estimates %v, references %v", ErrNoSources, es, rs)
	}

	return es[1], rs[1], nil
}

// search scores every candidate on the whole batch, picks the per-row
// minimum and rebuilds the winning mixtures.
func search(fn loss.Func, est, ref *tensor.Tensor, args loss.Args, cands []Partition) (Result, error) {
	batch := est.Dim(0)
	scores := make([]*tensor.Tensor, len(cands))
	for c, cand := range cands {
		mixed, err := tensor.SumGroups(est, cand)
		if err != nil {
			return Result{}, err
		}
		l, err := fn(mixed, ref, args)
		if err != nil {
			return Result{}, fmt.Errorf("partition: loss for %v: %w", cand, err)
		}
		if l == nil {
			return Result{}, fmt.Errorf("%w: nil result for %v", ErrLossShape, cand)
		}
		if l.NDim() != 1 || l.Dim(0) != batch {
			return Result{}, fmt.Errorf("%w: got %v for %v", ErrLossShape, l.Shape(), cand)
		}
		scores[c] = l
	}

	table, err := tensor.Stack(scores)
	if err != nil {
		return Result{}, err
	}
	best, arg, err := tensor.MinLast(table)
	if err != nil {
		return Result{}, fmt.Errorf("partition: select: %w", err)
	}

	winners := make([]Partition, len(arg))
	for b, a := range arg {
		winners[b] = cands[a].Clone()
	}
	// Second pass: the candidate sums were built for scoring only.
	mixtures, err := tensor.SumGroupsPerRow(est, groups(winners))
	if err != nil {
		return Result{}, err
	}

	return Result{PerRow: best, Partitions: winners, Mixtures: mixtures, Candidates: len(cands)}, nil
}
