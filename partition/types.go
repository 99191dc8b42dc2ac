package partition

import "github.com/katalvlaran/pitwrap/tensor"

// Partition is an ordered list of groups of estimate indices; group m is
// summed into synthesized mixture m. Groups may be empty in the generalized
// search.
type Partition [][]int

// Clone returns a deep copy.
func (p Partition) Clone() Partition {
	out := make(Partition, len(p))
	for i, g := range p {
		out[i] = append([]int{}, g...)
	}

	return out
}

// Reordered returns the groups of p in the order given by order:
// out[m] = p[order[m]]. The groups are shared with p.
func (p Partition) Reordered(order []int) Partition {
	out := make(Partition, len(order))
	for m, g := range order {
		out[m] = p[g]
	}

	return out
}

// Result is the outcome of a partition search.
type Result struct {
	// PerRow is the [batch] minimal loss of every row, gradient-tracked when
	// the estimates were.
	PerRow *tensor.Tensor

	// Partitions holds the winning grouping of every row.
	Partitions []Partition

	// Mixtures is [batch, n_mix, *rest]: the estimates summed by each row's
	// winning grouping.
	Mixtures *tensor.Tensor

	// Candidates is the number of groupings scored per row.
	Candidates int
}

// groups converts partitions to the index form used by tensor ops.
func groups(parts []Partition) [][][]int {
	out := make([][][]int, len(parts))
	for b, p := range parts {
		out[b] = p
	}

	return out
}
