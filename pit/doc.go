// SPDX-License-Identifier: MIT

// Package pit wires the search engines into a single loss wrapper for
// permutation-invariant (PIT) and mixture-invariant (MixIT) training.
//
// A Wrapper is built once with a Mode and an elementary loss callback. The
// mode decides how the callback is interpreted and which search runs:
//
//	alias       callback returns          search
//	pw_mtx      [batch, n_src, n_src]     permutation.FindBest
//	pw_pt       [batch] for one pair      pairwise.Compute, then FindBest
//	perm_avg    [batch] for a stack       permutation.FromPermutationLoss
//	mix_it      [batch] for mixtures      partition.BestEqual
//	mix_it_gen  [batch] for two mixtures  partition.BestGeneralized
//
// Every call returns the arithmetic mean over the batch of the per-row
// minimal losses, a scalar tensor that still tracks gradient back to the
// estimates. ForwardWithEstimates and Evaluate also return the estimates
// aligned with the references (reordered for the permutation modes, summed
// into mixtures for the mixture modes). Reorderer keeps only that second
// output, for inference-time alignment.
//
// The reference source axis must hold fewer than permutation.MaxSources
// entries in every mode.
//
// Example:
//
//	w, err := pit.NewFromName("pw_mtx", loss.PairwiseNegSISDR)
//	if err != nil { ... }
//	l, aligned, err := w.ForwardWithEstimates(est, ref, nil)
package pit
