// Package tensor provides the small batched numeric substrate the search
// engines run on: dense float64 arrays in row-major order with optional
// reverse-mode gradient tracking.
//
// Layout conventions used throughout the module:
//
//	sources          [batch, n_src, *rest]
//	pairwise losses  [batch, n_est, n_ref]
//	per-row losses   [batch]
//	batch mean       []  (one element)
//
// Gradient model:
//
//   - A leaf becomes tracked with RequireGrad. Every op whose input is tracked
//     records its parents and a backward closure.
//   - Backward on a one-element tensor walks the recorded graph in reverse
//     topological order and accumulates into Grad of every tracked node.
//   - Detach returns the "decision view": same values, no parents, not tracked.
//     Discrete choices (argmin, assignment solvers) are made on that view while
//     the returned loss is gathered from the tracked "value view".
//
// Ops never mutate their inputs. Selection ops (Gather, Pairs, MinLast) route
// gradient only to the selected elements, so rejected candidates receive zero.
//
// Complexity: every op is O(size of output + size of input) time and memory.
package tensor
