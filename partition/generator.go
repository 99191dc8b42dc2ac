package partition

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"
)

// EqualGenerator enumerates the unique partitions of [0, n) into g unordered
// groups of size k = n/g.
//
// Each partition is produced in canonical form: group l always holds the
// smallest index not used by groups 0..l-1, so every unordered partition
// appears exactly once. Within that rule partitions come in lexicographic
// order of their groups.
type EqualGenerator struct {
	n, nGroups, size int

	// rem[l] holds the indices still free at level l, ascending. gens[l]
	// chooses the size-1 partners of rem[l][0] among rem[l][1:].
	rem  [][]int
	gens []*combin.CombinationGenerator

	cur   Partition
	comb  []int
	state genState
}

type genState int

const (
	genFresh genState = iota
	genActive
	genDone
)

// NewEqualGenerator returns a generator over the equal-size partitions of
// nEst indices into nGroups groups.
// Returns ErrUnevenPartition unless nGroups ≥ 1, nEst ≥ nGroups and
// nGroups divides nEst.
func NewEqualGenerator(nEst, nGroups int) (*EqualGenerator, error) {
	if nGroups < 1 || nEst < nGroups || nEst%nGroups != 0 {
		return nil, fmt.Errorf("%w: %d estimates, %d mixtures", ErrUnevenPartition, nEst, nGroups)
	}
	size := nEst / nGroups
	g := &EqualGenerator{
		n:       nEst,
		nGroups: nGroups,
		size:    size,
		rem:     make([][]int, nGroups),
		gens:    make([]*combin.CombinationGenerator, nGroups),
		cur:     make(Partition, nGroups),
		comb:    make([]int, size-1),
	}
	for l := range g.cur {
		g.cur[l] = make([]int, size)
	}

	return g, nil
}

// Next advances to the next partition and reports whether one exists.
//
// Stage 1: find the deepest level whose combination generator can advance.
// Stage 2: take its next combination as that level's group.
// Stage 3: rebuild every deeper level from the indices left over.
func (g *EqualGenerator) Next() bool {
	switch g.state {
	case genDone:
		return false
	case genFresh:
		g.rem[0] = make([]int, g.n)
		for i := range g.rem[0] {
			g.rem[0][i] = i
		}
		g.open(0)
		g.state = genActive
		g.fill(0)

		return true
	}

	l := g.nGroups - 1
	for l >= 0 && !g.gens[l].Next() {
		l--
	}
	if l < 0 {
		g.state = genDone
		return false
	}
	g.take(l)
	g.fill(l + 1)

	return true
}

// open starts the combination generator of level l over rem[l][1:].
func (g *EqualGenerator) open(l int) {
	g.gens[l] = combin.NewCombinationGenerator(len(g.rem[l])-1, g.size-1)
}

// take sets group l from the current combination of level l.
func (g *EqualGenerator) take(l int) {
	rem := g.rem[l]
	g.comb = g.gens[l].Combination(g.comb)
	grp := g.cur[l]
	grp[0] = rem[0]
	for j, c := range g.comb {
		grp[j+1] = rem[c+1]
	}
}

// fill moves levels from..nGroups-1 to their first combination, deriving
// each free set from the level above. Level 0 is opened by Next.
func (g *EqualGenerator) fill(from int) {
	for l := from; l < g.nGroups; l++ {
		if l > 0 {
			g.rem[l] = without(g.rem[l-1], g.cur[l-1])
			g.open(l)
		}
		g.gens[l].Next() // at least one combination exists at every level
		g.take(l)
	}
}

// Partition copies the current partition into dst (reallocated when its
// layout does not fit) and returns it. It must follow a successful Next.
func (g *EqualGenerator) Partition(dst Partition) Partition {
	if g.state != genActive {
		panic("partition: Partition called outside Next")
	}

	return copyInto(dst, g.cur)
}

// Reset rewinds the generator to before the first partition.
func (g *EqualGenerator) Reset() { g.state = genFresh }

// CountEqual returns the number of unique partitions of nEst indices into
// nGroups equal groups, n!/((k!)^g·g!), or 0 when no such split exists.
// It is computed as Π_l C(n - l·k - 1, k - 1): the smallest free index
// anchors each group and only its partners are chosen.
func CountEqual(nEst, nGroups int) int {
	if nGroups < 1 || nEst < nGroups || nEst%nGroups != 0 {
		return 0
	}
	k := nEst / nGroups
	count := 1
	for l := 0; l < nGroups; l++ {
		count *= combin.Binomial(nEst-l*k-1, k-1)
	}

	return count
}

// BinaryGenerator enumerates every ordered split of [0, n) into
// (first, rest), 2^n in total, including both splits with an empty side.
// First-group size ascends from 0 to n; splits of one size follow the
// lexicographic order of the first group.
type BinaryGenerator struct {
	n     int
	size  int
	gen   *combin.CombinationGenerator
	first []int
	cur   Partition
	state genState
}

// NewBinaryGenerator returns a generator over the 2^nEst splits of nEst
// indices. nEst must be non-negative.
func NewBinaryGenerator(nEst int) *BinaryGenerator {
	if nEst < 0 {
		panic("partition: NewBinaryGenerator: negative n")
	}

	return &BinaryGenerator{n: nEst, cur: Partition{nil, nil}}
}

// Next advances to the next split and reports whether one exists.
func (g *BinaryGenerator) Next() bool {
	switch g.state {
	case genDone:
		return false
	case genFresh:
		g.size = 0
		g.gen = combin.NewCombinationGenerator(g.n, 0)
		g.state = genActive
	}
	for !g.gen.Next() {
		if g.size == g.n {
			g.state = genDone
			return false
		}
		g.size++
		g.gen = combin.NewCombinationGenerator(g.n, g.size)
	}

	g.first = g.gen.Combination(make([]int, g.size))
	g.cur[0] = g.first
	g.cur[1] = complement(g.n, g.first, g.cur[1][:0])

	return true
}

// Partition copies the current split into dst and returns it as
// [first, rest]. It must follow a successful Next.
func (g *BinaryGenerator) Partition(dst Partition) Partition {
	if g.state != genActive {
		panic("partition: Partition called outside Next")
	}

	return copyInto(dst, g.cur)
}

// Reset rewinds the generator to before the first split.
func (g *BinaryGenerator) Reset() { g.state = genFresh }

// CountBinary returns 2^nEst.
func CountBinary(nEst int) int { return 1 << nEst }

// without returns the ascending elements of rem that are not in used.
func without(rem, used []int) []int {
	drop := make(map[int]bool, len(used))
	for _, u := range used {
		drop[u] = true
	}
	out := make([]int, 0, len(rem)-len(used))
	for _, r := range rem {
		if !drop[r] {
			out = append(out, r)
		}
	}

	return out
}

// complement appends to dst the indices of [0, n) missing from the ascending
// slice sel.
func complement(n int, sel, dst []int) []int {
	j := 0
	for i := 0; i < n; i++ {
		if j < len(sel) && sel[j] == i {
			j++
			continue
		}
		dst = append(dst, i)
	}

	return dst
}

func copyInto(dst, src Partition) Partition {
	if len(dst) != len(src) {
		dst = make(Partition, len(src))
	}
	for i, grp := range src {
		dst[i] = append(make([]int, 0, len(grp)), grp...)
	}

	return dst
}
