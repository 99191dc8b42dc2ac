// Package loss defines the callback contract consumed by the search engines
// and a few elementary losses for source signals.
//
// A Func receives an estimate tensor and a reference tensor whose leading
// axis is the batch and returns one of:
//
//   - [batch]                 when it scores whole sources, mixtures or
//     permuted source stacks (pointwise, permutation-average and MixIT modes);
//   - [batch, n_est, n_ref]   when it scores every estimate/reference pair at
//     once (pairwise-matrix mode).
//
// Built-ins:
//
//   - SquaredError          mean squared difference over all non-batch axes.
//   - NegSISDR              negative scale-invariant SDR in dB.
//   - PairwiseSquaredError  [batch, n, n] matrix of SquaredError.
//   - PairwiseNegSISDR      [batch, n, n] matrix of NegSISDR.
//
// All built-ins are differentiable through the tensor package and treat rows
// independently.
package loss
