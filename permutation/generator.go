package permutation

import "gonum.org/v1/gonum/stat/combin"

// Generator enumerates the permutations of [0, n) lazily in lexicographic
// order, the same order as a standard permutation generator over range(n).
// It is finite and restartable with Reset.
//
//	g := NewGenerator(3)
//	for g.Next() {
//		p := g.Permutation(nil) // [0 1 2], [0 2 1], [1 0 2], ...
//	}
type Generator struct {
	n       int
	cur     []int
	started bool
	done    bool
}

// NewGenerator returns a generator over the permutations of [0, n).
// n must be non-negative.
func NewGenerator(n int) *Generator {
	if n < 0 {
		panic("permutation: NewGenerator: negative n")
	}

	return &Generator{n: n, cur: make([]int, n)}
}

// Next advances to the next permutation and reports whether one exists.
// The first call yields the identity.
func (g *Generator) Next() bool {
	if g.done {
		return false
	}
	if !g.started {
		for i := range g.cur {
			g.cur[i] = i
		}
		g.started = true

		return true
	}
	if !nextLex(g.cur) {
		g.done = true
		return false
	}

	return true
}

// Permutation copies the current permutation into dst (allocated when nil or
// of the wrong length) and returns it. It must follow a successful Next.
func (g *Generator) Permutation(dst Permutation) Permutation {
	if !g.started || g.done {
		panic("permutation: Permutation called outside Next")
	}
	if len(dst) != g.n {
		dst = make(Permutation, g.n)
	}
	copy(dst, g.cur)

	return dst
}

// Reset rewinds the generator to before the identity.
func (g *Generator) Reset() {
	g.started, g.done = false, false
}

// Count returns n!, the number of permutations of [0, n).
func Count(n int) int {
	return combin.NumPermutations(n, n)
}

// All materialises every permutation of [0, n) in lexicographic order.
// Complexity: O(n!·n) time and memory.
func All(n int) []Permutation {
	out := make([]Permutation, 0, Count(n))
	g := NewGenerator(n)
	for g.Next() {
		out = append(out, g.Permutation(nil))
	}

	return out
}

// nextLex rearranges s into its lexicographic successor in place.
// It returns false, leaving s unchanged, when s is the last permutation.
//
// Stage 1: find the rightmost ascent s[i] < s[i+1].
// Stage 2: swap s[i] with the rightmost element larger than it.
// Stage 3: reverse the suffix after i.
//
// Complexity: O(n) worst case, O(1) amortised.
func nextLex(s []int) bool {
	i := len(s) - 2
	for i >= 0 && s[i] >= s[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(s) - 1
	for s[j] <= s[i] {
		j--
	}
	s[i], s[j] = s[j], s[i]
	for l, r := i+1, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}

	return true
}
