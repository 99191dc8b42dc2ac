// Package pairwise builds the pairwise loss matrix from a loss that can only
// score one estimate against one reference.
//
// Compute invokes the callback once per (estimate, reference) pair with the
// whole batch at a time and stacks the [batch] results into a
// [batch, n_est, n_ref] matrix:
//
//	pw[b, i, j] = fn(est[:, i], ref[:, j])[b]
//
// This is the quadratic fallback for losses that cannot produce the matrix
// themselves (see loss.PairwiseSquaredError for a broadcast alternative).
//
// Complexity: n_est·n_ref callback invocations.
package pairwise
