package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// layout describes a [batch, n, *rest] tensor seen through its source axis.
type layout struct {
	batch, n, inner int
	rest            []int
}

// sourceLayout validates that t has a batch axis and a source axis.
func sourceLayout(t *Tensor) (layout, error) {
	if len(t.shape) < 2 {
		return layout{}, fmt.Errorf("%w: need [batch, n_src, ...], got %v", ErrShape, t.shape)
	}
	inner := 1
	for _, d := range t.shape[2:] {
		inner *= d
	}

	return layout{batch: t.shape[0], n: t.shape[1], inner: inner, rest: t.shape[2:]}, nil
}

// shapeWith builds [batch, mid..., rest...].
func (l layout) shapeWith(mid ...int) []int {
	out := make([]int, 0, 1+len(mid)+len(l.rest))
	out = append(out, l.batch)
	out = append(out, mid...)

	return append(out, l.rest...)
}

// gatherFlat copies t.data[idx[o]] into out[o]; the backward pass scatters
// out.grad back through the same map, so only selected elements receive
// gradient.
func gatherFlat(t *Tensor, shape []int, idx []int) *Tensor {
	data := make([]float64, len(idx))
	for o, i := range idx {
		data[o] = t.data[i]
	}

	return result(shape, data, func(out *Tensor) {
		g := gradOf(t)
		if g == nil {
			return
		}
		for o, i := range idx {
			g[i] += out.grad[o]
		}
	}, t)
}

// Source returns source k of every batch row: [batch, n, *rest] → [batch, *rest].
// Returns ErrIndex if k is outside [0, n).
// Complexity: O(batch·|rest|).
func Source(t *Tensor, k int) (*Tensor, error) {
	l, err := sourceLayout(t)
	if err != nil {
		return nil, err
	}
	if k < 0 || k >= l.n {
		return nil, fmt.Errorf("%w: source %d of %d", ErrIndex, k, l.n)
	}
	idx := make([]int, 0, l.batch*l.inner)
	for b := 0; b < l.batch; b++ {
		base := (b*l.n + k) * l.inner
		for r := 0; r < l.inner; r++ {
			idx = append(idx, base+r)
		}
	}

	return gatherFlat(t, l.shapeWith(), idx), nil
}

// Index selects the same sources, in the given order, from every batch row:
// out[b, j] = t[b, sel[j]]. Indices may repeat.
// Complexity: O(batch·len(sel)·|rest|).
func Index(t *Tensor, sel []int) (*Tensor, error) {
	l, err := sourceLayout(t)
	if err != nil {
		return nil, err
	}
	idx := make([]int, 0, l.batch*len(sel)*l.inner)
	for b := 0; b < l.batch; b++ {
		for _, s := range sel {
			if s < 0 || s >= l.n {
				return nil, fmt.Errorf("%w: source %d of %d", ErrIndex, s, l.n)
			}
			base := (b*l.n + s) * l.inner
			for r := 0; r < l.inner; r++ {
				idx = append(idx, base+r)
			}
		}
	}

	return gatherFlat(t, l.shapeWith(len(sel)), idx), nil
}

// Gather selects sources per batch row: out[b, j] = t[b, sel[b][j]].
// len(sel) must equal the batch size and every row must select the same count.
// Complexity: O(batch·K·|rest|).
func Gather(t *Tensor, sel [][]int) (*Tensor, error) {
	l, err := sourceLayout(t)
	if err != nil {
		return nil, err
	}
	if len(sel) != l.batch {
		return nil, fmt.Errorf("%w: %d index rows for batch %d", ErrShape, len(sel), l.batch)
	}
	k := 0
	if l.batch > 0 {
		k = len(sel[0])
	}
	idx := make([]int, 0, l.batch*k*l.inner)
	for b, row := range sel {
		if len(row) != k {
			return nil, fmt.Errorf("%w: index row %d has %d entries, want %d", ErrShape, b, len(row), k)
		}
		for _, s := range row {
			if s < 0 || s >= l.n {
				return nil, fmt.Errorf("%w: row %d source %d of %d", ErrIndex, b, s, l.n)
			}
			base := (b*l.n + s) * l.inner
			for r := 0; r < l.inner; r++ {
				idx = append(idx, base+r)
			}
		}
	}

	return gatherFlat(t, l.shapeWith(k), idx), nil
}

// Pairs reads one pairwise loss per reference column under a permutation
// shared by all rows: out[b, k] = pw[b, perm[k], k].
// pw must be [batch, n_est, n_ref] with len(perm) == n_ref.
// Complexity: O(batch·n_ref).
func Pairs(pw *Tensor, perm []int) (*Tensor, error) {
	if len(pw.shape) != 3 {
		return nil, fmt.Errorf("%w: pairwise matrix must be rank 3, got %v", ErrShape, pw.shape)
	}
	rows := make([][]int, pw.shape[0])
	for b := range rows {
		rows[b] = perm
	}

	return PairsPerRow(pw, rows)
}

// PairsPerRow is Pairs with a distinct permutation for every batch row:
// out[b, k] = pw[b, perms[b][k], k].
// Complexity: O(batch·n_ref).
func PairsPerRow(pw *Tensor, perms [][]int) (*Tensor, error) {
	if len(pw.shape) != 3 {
		return nil, fmt.Errorf("%w: pairwise matrix must be rank 3, got %v", ErrShape, pw.shape)
	}
	batch, nEst, nRef := pw.shape[0], pw.shape[1], pw.shape[2]
	if len(perms) != batch {
		return nil, fmt.Errorf("%w: %d permutations for batch %d", ErrShape, len(perms), batch)
	}
	idx := make([]int, 0, batch*nRef)
	for b, perm := range perms {
		if len(perm) != nRef {
			return nil, fmt.Errorf("%w: permutation of length %d for %d references", ErrShape, len(perm), nRef)
		}
		for k, i := range perm {
			if i < 0 || i >= nEst {
				return nil, fmt.Errorf("%w: estimate %d of %d", ErrIndex, i, nEst)
			}
			idx = append(idx, (b*nEst+i)*nRef+k)
		}
	}

	return gatherFlat(pw, []int{batch, nRef}, idx), nil
}

// Stack joins equally shaped [batch, *rest] tensors along a new axis 1:
// the result is [batch, len(ts), *rest].
// Complexity: O(total size).
func Stack(ts []*Tensor) (*Tensor, error) {
	if len(ts) == 0 {
		return nil, ErrEmpty
	}
	first := ts[0].shape
	if len(first) == 0 {
		return nil, fmt.Errorf("%w: cannot stack scalars", ErrShape)
	}
	for i, x := range ts[1:] {
		if !sameShape(first, x.shape) {
			return nil, fmt.Errorf("%w: operand %d has shape %v, want %v", ErrShape, i+1, x.shape, first)
		}
	}
	batch := first[0]
	inner := len(ts[0].data) / max(batch, 1)
	n := len(ts)
	data := make([]float64, batch*n*inner)
	for j, x := range ts {
		for b := 0; b < batch; b++ {
			copy(data[(b*n+j)*inner:(b*n+j+1)*inner], x.data[b*inner:(b+1)*inner])
		}
	}
	shape := append([]int{batch, n}, first[1:]...)

	return result(shape, data, func(out *Tensor) {
		for j, x := range ts {
			g := gradOf(x)
			if g == nil {
				continue
			}
			for b := 0; b < batch; b++ {
				floats.Add(g[b*inner:(b+1)*inner], out.grad[(b*n+j)*inner:(b*n+j+1)*inner])
			}
		}
	}, ts...), nil
}

// SumGroups sums sources into groups, shared by all rows:
// out[b, g] = Σ_{s ∈ groups[g]} t[b, s]. An empty group yields zeros.
// Complexity: O(batch·n·|rest|).
func SumGroups(t *Tensor, groups [][]int) (*Tensor, error) {
	l, err := sourceLayout(t)
	if err != nil {
		return nil, err
	}
	perRow := make([][][]int, l.batch)
	for b := range perRow {
		perRow[b] = groups
	}

	return SumGroupsPerRow(t, perRow)
}

// SumGroupsPerRow is SumGroups with a distinct grouping for every batch row.
// Every row must produce the same number of groups.
// Complexity: O(batch·n·|rest|).
func SumGroupsPerRow(t *Tensor, groups [][][]int) (*Tensor, error) {
	l, err := sourceLayout(t)
	if err != nil {
		return nil, err
	}
	if len(groups) != l.batch {
		return nil, fmt.Errorf("%w: %d groupings for batch %d", ErrShape, len(groups), l.batch)
	}
	nGroups := 0
	if l.batch > 0 {
		nGroups = len(groups[0])
	}
	for b, row := range groups {
		if len(row) != nGroups {
			return nil, fmt.Errorf("%w: row %d has %d groups, want %d", ErrShape, b, len(row), nGroups)
		}
		for _, g := range row {
			for _, s := range g {
				if s < 0 || s >= l.n {
					return nil, fmt.Errorf("%w: row %d source %d of %d", ErrIndex, b, s, l.n)
				}
			}
		}
	}

	data := make([]float64, l.batch*nGroups*l.inner)
	for b, row := range groups {
		for gi, g := range row {
			dst := data[(b*nGroups+gi)*l.inner : (b*nGroups+gi+1)*l.inner]
			for _, s := range g {
				floats.Add(dst, t.data[(b*l.n+s)*l.inner:(b*l.n+s+1)*l.inner])
			}
		}
	}

	return result(l.shapeWith(nGroups), data, func(out *Tensor) {
		gr := gradOf(t)
		if gr == nil {
			return
		}
		for b, row := range groups {
			for gi, g := range row {
				src := out.grad[(b*nGroups+gi)*l.inner : (b*nGroups+gi+1)*l.inner]
				for _, s := range g {
					floats.Add(gr[(b*l.n+s)*l.inner:(b*l.n+s+1)*l.inner], src)
				}
			}
		}
	}, t), nil
}
