package permutation

import (
	"github.com/katalvlaran/pitwrap/loss"
	"github.com/katalvlaran/pitwrap/tensor"
)

// ChooseAlgorithm applies the dispatch rule: Factorial when the reduction is
// not the default mean or n ≤ FactorialMaxSources, Hungarian otherwise.
// The rule is deterministic; there is no fallback between the two.
func ChooseAlgorithm(n int, red Reduction) Algorithm {
	if !red.IsDefault() || n <= FactorialMaxSources {
		return Factorial
	}

	return Hungarian
}

// FindBest returns the minimal-loss permutation of every batch row of the
// [batch, n_src, n_src] pairwise matrix pw.
//
// args is forwarded to a custom reduction and ignored otherwise.
// Errors: contract sentinels from ValidateMatrix, ErrNilReduce,
// ErrReduceShape, ErrNonFinite.
//
// Complexity: see BestFactorial and BestHungarian.
func FindBest(pw *tensor.Tensor, opts Options, args loss.Args) (Result, error) {
	n, err := ValidateMatrix(pw, -1)
	if err != nil {
		return Result{}, err
	}
	if ChooseAlgorithm(n, opts.Reduction) == Factorial {
		return BestFactorial(pw, opts.Reduction, args)
	}

	return BestHungarian(pw)
}
