package permutation

import (
	"fmt"

	"github.com/katalvlaran/pitwrap/tensor"
)

const (
	// MaxSources bounds n_src for every search path; n_src must stay below it.
	// 9! = 362880 candidates is the largest table the factorial path may build.
	MaxSources = 10

	// FactorialMaxSources is the largest n_src searched exhaustively when the
	// default mean reduction is in use.
	FactorialMaxSources = 3
)

// Permutation maps reference positions to estimates: perm[k] is the estimate
// aligned with reference k. Each value in [0, n) appears exactly once.
type Permutation []int

// Clone returns an independent copy.
func (p Permutation) Clone() Permutation { return append(Permutation(nil), p...) }

// Inverse returns q with q[p[k]] = k.
func (p Permutation) Inverse() Permutation {
	q := make(Permutation, len(p))
	for k, v := range p {
		q[v] = k
	}

	return q
}

// Valid reports whether p is a bijection on [0, len(p)).
func (p Permutation) Valid() bool {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

// Algorithm names the search actually run for a call.
type Algorithm int

const (
	// Factorial enumerates all n! permutations.
	Factorial Algorithm = iota
	// Hungarian solves a per-row minimum-cost perfect matching.
	Hungarian
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case Factorial:
		return "factorial"
	case Hungarian:
		return "hungarian"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Result is the outcome of a permutation search.
type Result struct {
	// PerRow is the [batch] minimal loss of every row, gradient-tracked when
	// the input was.
	PerRow *tensor.Tensor

	// Permutations holds the winning permutation of every row.
	Permutations []Permutation

	// Algorithm is the search that produced the result.
	Algorithm Algorithm

	// Candidates is the number of permutations scored per row
	// (n! for Factorial, 0 for Hungarian, which scores none explicitly).
	Candidates int
}

// Options configures FindBest.
type Options struct {
	// Reduction scores the per-source losses of a permutation. The zero value
	// is the mean, which also allows the Hungarian path.
	Reduction Reduction
}

// DefaultOptions returns Options with the mean reduction.
func DefaultOptions() Options {
	return Options{Reduction: MeanReduction()}
}

// rows converts permutations to the index form used by tensor ops.
func rows(perms []Permutation) [][]int {
	out := make([][]int, len(perms))
	for b, p := range perms {
		out[b] = p
	}

	return out
}
