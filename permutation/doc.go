// Package permutation finds, for every batch row, the assignment of
// estimated sources to reference sources with the lowest loss, and reorders
// estimates accordingly.
//
// Conventions:
//
//   - A pairwise matrix pw is [batch, n_src, n_src]; pw[b, i, j] is the loss of
//     estimate i against reference j.
//   - A Permutation perm has perm[k] = estimate aligned with reference k, so
//     Reorder(est, perms) puts est[perm[k]] at position k.
//
// Algorithms (FindBest dispatches, see ChooseAlgorithm):
//
//   - Factorial: enumerate all n! permutations in lexicographic order and
//     score each with the Reduction. The only path that supports non-mean
//     reductions. Time O(batch·n!·n), memory O(batch·n!·n) for the
//     per-permutation table.
//   - Hungarian: minimum-cost perfect matching per row (Kuhn–Munkres with
//     potentials) on the detached matrix; the loss is then gathered from the
//     tracked matrix so gradient reaches the winning entries.
//     Time O(batch·n³), memory O(n²) per row.
//
// FindBest uses Factorial when a non-default Reduction is configured or
// n ≤ FactorialMaxSources, Hungarian otherwise. Source counts at or above
// MaxSources are rejected before any work is done.
//
// FromPermutationLoss covers losses with no pairwise decomposition: the
// callback is re-run on each of the n! permuted estimate stacks.
package permutation
