// Package pitwrap is a permutation- and mixture-invariant loss search engine
// for training and evaluating source separation models.
//
// Separated sources come out of a model in no particular order. pitwrap
// finds, per batch row, the assignment of estimates to references (or the
// grouping of estimates into reference mixtures) with the lowest loss, and
// returns that loss with its gradient path intact.
//
// Packages, leaves first:
//
//	tensor/       batched float64 arrays with reverse-mode gradients
//	loss/         loss callback contract and built-in losses
//	pairwise/     pairwise loss matrix from a one-pair callback
//	permutation/  factorial and Hungarian permutation search, reordering
//	partition/    equal-size and generalized MixIT partition search
//	pit/          mode dispatch, batch mean, options, reorder-only variant
//
// Quick example:
//
//	w, _ := pit.NewFromName("pw_pt", loss.NegSISDR)
//	l, aligned, _ := w.ForwardWithEstimates(est, ref, nil)
//	_ = l.Backward()
package pitwrap
