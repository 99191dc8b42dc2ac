package loss

import (
	"fmt"

	"github.com/katalvlaran/pitwrap/tensor"
)

// Args carries per-call keyword arguments from the caller of a search down to
// the loss or reduction callback. Built-ins read ArgEps.
type Args map[string]any

// ArgEps overrides DefaultEps for NegSISDR and PairwiseNegSISDR.
const ArgEps = "eps"

// DefaultEps stabilises the energy ratios of NegSISDR.
const DefaultEps = 1e-8

// Func is an elementary loss callback. See the package documentation for the
// output shapes expected by each search mode.
type Func func(est, ref *tensor.Tensor, args Args) (*tensor.Tensor, error)

// SquaredError returns the mean of (est-ref)² over all non-batch axes: [batch].
// Complexity: O(size).
func SquaredError(est, ref *tensor.Tensor, _ Args) (*tensor.Tensor, error) {
	diff, err := tensor.Sub(est, ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	sq, err := tensor.Mul(diff, diff)
	if err != nil {
		return nil, err
	}

	return tensor.MeanTail(sq, 1)
}

// NegSISDR returns the negative scale-invariant signal-to-distortion ratio in
// dB per row. For [batch, T] inputs it scores the single signal; for
// [batch, n, T] inputs it averages the per-source scores, which is the
// whole-permutation form used by the permutation-average mode.
//
//	α     = ⟨est, ref⟩ / (‖ref‖² + ε)
//	proj  = α·ref
//	SI-SDR = 10·log10(‖proj‖² / (‖est − proj‖² + ε) + ε)
//
// Complexity: O(size).
func NegSISDR(est, ref *tensor.Tensor, args Args) (*tensor.Tensor, error) {
	if est.NDim() != ref.NDim() {
		return nil, fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, est.Shape(), ref.Shape())
	}
	eps := epsFrom(args)
	if est.NDim() <= 2 {
		return negSISDR(est, ref, eps)
	}

	n := est.Dim(1)
	if ref.Dim(1) != n {
		return nil, fmt.Errorf("%w: %d estimates vs %d references", ErrShapeMismatch, n, ref.Dim(1))
	}
	per := make([]*tensor.Tensor, 0, n)
	for k := 0; k < n; k++ {
		e, err := tensor.Source(est, k)
		if err != nil {
			return nil, err
		}
		r, err := tensor.Source(ref, k)
		if err != nil {
			return nil, err
		}
		l, err := negSISDR(e, r, eps)
		if err != nil {
			return nil, err
		}
		per = append(per, l)
	}
	stacked, err := tensor.Stack(per)
	if err != nil {
		return nil, err
	}

	return tensor.MeanTail(stacked, 1)
}

// negSISDR scores [batch, T] signals.
func negSISDR(est, ref *tensor.Tensor, eps float64) (*tensor.Tensor, error) {
	dotT, err := tensor.Mul(est, ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	dot, err := tensor.SumTail(dotT, 1)
	if err != nil {
		return nil, err
	}
	refSq, err := tensor.Mul(ref, ref)
	if err != nil {
		return nil, err
	}
	refEnergy, err := tensor.SumTail(refSq, 1)
	if err != nil {
		return nil, err
	}
	alpha, err := tensor.Div(dot, tensor.Shift(refEnergy, eps))
	if err != nil {
		return nil, err
	}
	proj, err := tensor.MulRows(ref, alpha)
	if err != nil {
		return nil, err
	}
	noise, err := tensor.Sub(est, proj)
	if err != nil {
		return nil, err
	}
	projSq, err := tensor.Mul(proj, proj)
	if err != nil {
		return nil, err
	}
	projEnergy, err := tensor.SumTail(projSq, 1)
	if err != nil {
		return nil, err
	}
	noiseSq, err := tensor.Mul(noise, noise)
	if err != nil {
		return nil, err
	}
	noiseEnergy, err := tensor.SumTail(noiseSq, 1)
	if err != nil {
		return nil, err
	}
	ratio, err := tensor.Div(projEnergy, tensor.Shift(noiseEnergy, eps))
	if err != nil {
		return nil, err
	}

	return tensor.Scale(-10, tensor.Log10(tensor.Shift(ratio, eps))), nil
}

// epsFrom reads ArgEps, falling back to DefaultEps.
func epsFrom(args Args) float64 {
	if v, ok := args[ArgEps].(float64); ok && v > 0 {
		return v
	}

	return DefaultEps
}
