package tensor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// binary checks that a and b share a shape.
func binary(op string, a, b *Tensor) error {
	if !sameShape(a.shape, b.shape) {
		return fmt.Errorf("%w: %s of %v and %v", ErrShape, op, a.shape, b.shape)
	}

	return nil
}

// Add returns a + b elementwise.
func Add(a, b *Tensor) (*Tensor, error) {
	if err := binary("Add", a, b); err != nil {
		return nil, err
	}
	data := make([]float64, len(a.data))
	floats.AddTo(data, a.data, b.data)

	return result(a.Shape(), data, func(out *Tensor) {
		if g := gradOf(a); g != nil {
			floats.Add(g, out.grad)
		}
		if g := gradOf(b); g != nil {
			floats.Add(g, out.grad)
		}
	}, a, b), nil
}

// Sub returns a - b elementwise.
func Sub(a, b *Tensor) (*Tensor, error) {
	if err := binary("Sub", a, b); err != nil {
		return nil, err
	}
	data := make([]float64, len(a.data))
	floats.SubTo(data, a.data, b.data)

	return result(a.Shape(), data, func(out *Tensor) {
		if g := gradOf(a); g != nil {
			floats.Add(g, out.grad)
		}
		if g := gradOf(b); g != nil {
			floats.Sub(g, out.grad)
		}
	}, a, b), nil
}

// Mul returns a * b elementwise. Mul(x, x) squares x with the correct 2x gradient.
func Mul(a, b *Tensor) (*Tensor, error) {
	if err := binary("Mul", a, b); err != nil {
		return nil, err
	}
	data := make([]float64, len(a.data))
	floats.MulTo(data, a.data, b.data)

	return result(a.Shape(), data, func(out *Tensor) {
		if g := gradOf(a); g != nil {
			for i, v := range out.grad {
				g[i] += v * b.data[i]
			}
		}
		if g := gradOf(b); g != nil {
			for i, v := range out.grad {
				g[i] += v * a.data[i]
			}
		}
	}, a, b), nil
}

// Div returns a / b elementwise. Division by zero follows IEEE-754.
func Div(a, b *Tensor) (*Tensor, error) {
	if err := binary("Div", a, b); err != nil {
		return nil, err
	}
	data := make([]float64, len(a.data))
	floats.DivTo(data, a.data, b.data)

	return result(a.Shape(), data, func(out *Tensor) {
		if g := gradOf(a); g != nil {
			for i, v := range out.grad {
				g[i] += v / b.data[i]
			}
		}
		if g := gradOf(b); g != nil {
			for i, v := range out.grad {
				g[i] -= v * a.data[i] / (b.data[i] * b.data[i])
			}
		}
	}, a, b), nil
}

// Scale returns c·t.
func Scale(c float64, t *Tensor) *Tensor {
	data := make([]float64, len(t.data))
	floats.ScaleTo(data, c, t.data)

	return result(t.Shape(), data, func(out *Tensor) {
		if g := gradOf(t); g != nil {
			floats.AddScaled(g, c, out.grad)
		}
	}, t)
}

// Shift returns t + c.
func Shift(t *Tensor, c float64) *Tensor {
	data := append([]float64(nil), t.data...)
	floats.AddConst(c, data)

	return result(t.Shape(), data, func(out *Tensor) {
		if g := gradOf(t); g != nil {
			floats.Add(g, out.grad)
		}
	}, t)
}

// Log10 returns log10(t) elementwise.
func Log10(t *Tensor) *Tensor {
	data := make([]float64, len(t.data))
	for i, v := range t.data {
		data[i] = math.Log10(v)
	}

	return result(t.Shape(), data, func(out *Tensor) {
		if g := gradOf(t); g != nil {
			for i, v := range out.grad {
				g[i] += v / (t.data[i] * math.Ln10)
			}
		}
	}, t)
}

// MulRows scales each batch row of t by the matching entry of s:
// out[b, ...] = t[b, ...] · s[b]. s must have shape [batch].
// Complexity: O(size).
func MulRows(t, s *Tensor) (*Tensor, error) {
	if len(t.shape) == 0 || len(s.shape) != 1 || s.shape[0] != t.shape[0] {
		return nil, fmt.Errorf("%w: MulRows of %v by %v", ErrShape, t.shape, s.shape)
	}
	batch := t.shape[0]
	inner := len(t.data) / max(batch, 1)
	data := make([]float64, len(t.data))
	for b := 0; b < batch; b++ {
		floats.ScaleTo(data[b*inner:(b+1)*inner], s.data[b], t.data[b*inner:(b+1)*inner])
	}

	return result(t.Shape(), data, func(out *Tensor) {
		gt, gs := gradOf(t), gradOf(s)
		for b := 0; b < batch; b++ {
			og := out.grad[b*inner : (b+1)*inner]
			if gt != nil {
				floats.AddScaled(gt[b*inner:(b+1)*inner], s.data[b], og)
			}
			if gs != nil {
				gs[b] += dotOrdered(og, t.data[b*inner:(b+1)*inner])
			}
		}
	}, t, s), nil
}
