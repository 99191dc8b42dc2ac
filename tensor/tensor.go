package tensor

import (
	"fmt"
	"strings"
)

// Tensor is a dense row-major float64 array with optional gradient tracking.
//
// The zero value is not usable; build tensors with New, Zeros, FromRows or
// FromNested.
type Tensor struct {
	shape []int     // axis sizes; empty for a scalar
	data  []float64 // flat storage, len == product(shape)

	track    bool      // participates in gradient propagation
	grad     []float64 // allocated on first Backward through this node
	parents  []*Tensor // operands this tensor was computed from
	backward func()    // pushes t.grad into tracked parents' grads
}

// New wraps data with the given shape. The data slice is copied.
// Returns ErrShape if len(data) != product(shape) or an axis is negative.
// Complexity: O(len(data)).
func New(data []float64, shape ...int) (*Tensor, error) {
	n, err := volume(shape)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: %d values for shape %v", ErrShape, len(data), shape)
	}
	cp := make([]float64, n)
	copy(cp, data)

	return &Tensor{shape: append([]int(nil), shape...), data: cp}, nil
}

// Zeros returns an untracked tensor of the given shape filled with zeros.
func Zeros(shape ...int) (*Tensor, error) {
	n, err := volume(shape)
	if err != nil {
		return nil, err
	}

	return &Tensor{shape: append([]int(nil), shape...), data: make([]float64, n)}, nil
}

// Scalar returns a one-element tensor of shape [].
func Scalar(v float64) *Tensor {
	return &Tensor{shape: []int{}, data: []float64{v}}
}

// FromRows builds a [len(rows), len(rows[0])] tensor. All rows must have equal length.
func FromRows(rows [][]float64) (*Tensor, error) {
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrShape, i, len(r), cols)
		}
		data = append(data, r...)
	}

	return &Tensor{shape: []int{len(rows), cols}, data: data}, nil
}

// FromNested builds a [batch, n, m] tensor from nested slices, the natural
// literal form of a batch of source signals or of pairwise matrices.
func FromNested(batch [][][]float64) (*Tensor, error) {
	if len(batch) == 0 || len(batch[0]) == 0 {
		return nil, ErrEmpty
	}
	n, m := len(batch[0]), len(batch[0][0])
	data := make([]float64, 0, len(batch)*n*m)
	for b, rows := range batch {
		if len(rows) != n {
			return nil, fmt.Errorf("%w: batch row %d has %d entries, want %d", ErrShape, b, len(rows), n)
		}
		for i, r := range rows {
			if len(r) != m {
				return nil, fmt.Errorf("%w: [%d][%d] has %d values, want %d", ErrShape, b, i, len(r), m)
			}
			data = append(data, r...)
		}
	}

	return &Tensor{shape: []int{len(batch), n, m}, data: data}, nil
}

// RequireGrad marks t as a tracked leaf and returns it.
func (t *Tensor) RequireGrad() *Tensor {
	t.track = true
	return t
}

// RequiresGrad reports whether gradients flow into t.
func (t *Tensor) RequiresGrad() bool { return t.track }

// Shape returns a copy of the axis sizes.
func (t *Tensor) Shape() []int { return append([]int(nil), t.shape...) }

// NDim returns the number of axes.
func (t *Tensor) NDim() int { return len(t.shape) }

// Dim returns the size of axis i, or 0 if the axis does not exist.
func (t *Tensor) Dim(i int) int {
	if i < 0 || i >= len(t.shape) {
		return 0
	}

	return t.shape[i]
}

// Size returns the number of elements.
func (t *Tensor) Size() int { return len(t.data) }

// Values returns a copy of the flat data.
func (t *Tensor) Values() []float64 { return append([]float64(nil), t.data...) }

// Grad returns a copy of the accumulated gradient, or nil if none was
// accumulated yet.
func (t *Tensor) Grad() []float64 {
	if t.grad == nil {
		return nil
	}

	return append([]float64(nil), t.grad...)
}

// ZeroGrad clears accumulated gradient on t.
func (t *Tensor) ZeroGrad() {
	for i := range t.grad {
		t.grad[i] = 0
	}
}

// At returns the element at the given multi-index.
// Returns ErrIndex when the index arity or any coordinate is out of range.
// Complexity: O(ndim).
func (t *Tensor) At(idx ...int) (float64, error) {
	off, err := t.offset(idx)
	if err != nil {
		return 0, err
	}

	return t.data[off], nil
}

// Item returns the only element of a one-element tensor.
func (t *Tensor) Item() (float64, error) {
	if len(t.data) != 1 {
		return 0, fmt.Errorf("%w: shape %v", ErrNotScalar, t.shape)
	}

	return t.data[0], nil
}

// Block returns a copy of the values of batch row b (everything under axis 0).
func (t *Tensor) Block(b int) ([]float64, error) {
	if len(t.shape) == 0 || b < 0 || b >= t.shape[0] {
		return nil, fmt.Errorf("%w: row %d of shape %v", ErrIndex, b, t.shape)
	}
	stride := len(t.data) / t.shape[0]

	return append([]float64(nil), t.data[b*stride:(b+1)*stride]...), nil
}

// Detach returns the decision view of t: identical values, no gradient
// tracking and no recorded parents. The backing array is shared; neither view
// is ever written by ops, so sharing is safe.
// Complexity: O(ndim).
func (t *Tensor) Detach() *Tensor {
	return &Tensor{shape: append([]int(nil), t.shape...), data: t.data}
}

// String renders shape and values for debugging.
func (t *Tensor) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "tensor%v", t.shape)
	if t.track {
		sb.WriteString("(grad)")
	}
	fmt.Fprintf(&sb, " %v", t.data)

	return sb.String()
}

// offset converts a multi-index into a flat position.
func (t *Tensor) offset(idx []int) (int, error) {
	if len(idx) != len(t.shape) {
		return 0, fmt.Errorf("%w: %d indices for shape %v", ErrIndex, len(idx), t.shape)
	}
	off := 0
	for axis, i := range idx {
		if i < 0 || i >= t.shape[axis] {
			return 0, fmt.Errorf("%w: index %d on axis %d of shape %v", ErrIndex, i, axis, t.shape)
		}
		off = off*t.shape[axis] + i
	}

	return off, nil
}

// volume multiplies axis sizes, rejecting negative axes.
func volume(shape []int) (int, error) {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("%w: negative axis in %v", ErrShape, shape)
		}
		n *= d
	}

	return n, nil
}

// sameShape reports whether a and b have identical axes.
func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
