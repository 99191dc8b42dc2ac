package permutation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pitwrap/tensor"
)

// BestHungarian solves every batch row as a minimum-cost perfect matching of
// references (rows of the cost matrix) to estimates (columns), with the mean
// over sources as the implicit reduction.
//
// Gradient boundary: the solver only ever sees pw.Detach(), the decision
// view. The returned PerRow is gathered from pw itself, the value view, at
// the winning (estimate, reference) entries, so gradient flows into exactly
// those entries and never through the solver.
//
// Stage 1 (Validate): matrix contract; finite costs.
// Stage 2 (Decide): per row, cost[k][i] = pw[b, i, k]; assign[k] = i.
// Stage 3 (Gather): PerRow[b] = mean_k pw[b, perm_b[k], k].
//
// Complexity: O(batch·n³).
func BestHungarian(pw *tensor.Tensor) (Result, error) {
	n, err := ValidateMatrix(pw, -1)
	if err != nil {
		return Result{}, err
	}

	decision := pw.Detach()
	batch := decision.Dim(0)
	perms := make([]Permutation, batch)
	cost := make([][]float64, n)
	for k := range cost {
		cost[k] = make([]float64, n)
	}
	for b := 0; b < batch; b++ {
		block, err := decision.Block(b)
		if err != nil {
			return Result{}, err
		}
		for i := 0; i < n; i++ {
			for k := 0; k < n; k++ {
				c := block[i*n+k]
				if math.IsNaN(c) || math.IsInf(c, 0) {
					return Result{}, fmt.Errorf("%w: row %d entry [%d, %d] = %v", ErrNonFinite, b, i, k, c)
				}
				cost[k][i] = c
			}
		}
		perms[b] = solveAssignment(cost)
	}

	pairs, err := tensor.PairsPerRow(pw, rows(perms))
	if err != nil {
		return Result{}, err
	}
	perRow, err := tensor.MeanTail(pairs, 1)
	if err != nil {
		return Result{}, err
	}

	return Result{PerRow: perRow, Permutations: perms, Algorithm: Hungarian}, nil
}
