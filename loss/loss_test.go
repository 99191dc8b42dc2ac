package loss_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pitwrap/loss"
	"github.com/katalvlaran/pitwrap/tensor"
)

func rows(t *testing.T, r [][]float64) *tensor.Tensor {
	t.Helper()
	x, err := tensor.FromRows(r)
	require.NoError(t, err)

	return x
}

func TestSquaredError(t *testing.T) {
	est := rows(t, [][]float64{{1, 2}, {0, 0}})
	ref := rows(t, [][]float64{{1, 0}, {3, 1}})

	l, err := loss.SquaredError(est, ref, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5}, l.Values())

	_, err = loss.SquaredError(est, rows(t, [][]float64{{1, 2, 3}, {1, 2, 3}}), nil)
	assert.ErrorIs(t, err, loss.ErrShapeMismatch)
}

func TestNegSISDR_ScaleInvariant(t *testing.T) {
	ref := rows(t, [][]float64{{1, -2, 3, 0.5}})
	scaled := rows(t, [][]float64{{2, -4, 6, 1}})
	noisy := rows(t, [][]float64{{1.2, -1.5, 2.1, 1.5}})

	a, err := loss.NegSISDR(scaled, ref, nil)
	require.NoError(t, err)
	b, err := loss.NegSISDR(noisy, ref, nil)
	require.NoError(t, err)

	va, _ := a.Item()
	vb, _ := b.Item()
	assert.Less(t, va, -60.0, "a scaled copy is a near-perfect estimate")
	assert.Greater(t, vb, va)
}

func TestNegSISDR_MultiSourceAverages(t *testing.T) {
	est, err := tensor.FromNested([][][]float64{{{1, 2, 3}, {3, 1, 0}}})
	require.NoError(t, err)
	ref, err := tensor.FromNested([][][]float64{{{1, 2, 2}, {2, 1, 1}}})
	require.NoError(t, err)

	whole, err := loss.NegSISDR(est, ref, nil)
	require.NoError(t, err)

	var sum float64
	for k := 0; k < 2; k++ {
		e, err := tensor.Source(est, k)
		require.NoError(t, err)
		r, err := tensor.Source(ref, k)
		require.NoError(t, err)
		l, err := loss.NegSISDR(e, r, nil)
		require.NoError(t, err)
		v, _ := l.Item()
		sum += v
	}
	got, _ := whole.Item()
	assert.InDelta(t, sum/2, got, 1e-12)
}

func TestNegSISDR_EpsArgument(t *testing.T) {
	ref := rows(t, [][]float64{{1, 0}})
	est := rows(t, [][]float64{{1, 0}})

	tight, err := loss.NegSISDR(est, ref, nil)
	require.NoError(t, err)
	loose, err := loss.NegSISDR(est, ref, loss.Args{loss.ArgEps: 1e-2})
	require.NoError(t, err)

	vt, _ := tight.Item()
	vl, _ := loose.Item()
	assert.Less(t, vt, vl, "a larger eps caps the achievable SDR")
}

func TestPairwiseSquaredError(t *testing.T) {
	est, err := tensor.FromNested([][][]float64{{{0, 1}, {1, 0}, {2, 2}}})
	require.NoError(t, err)
	ref, err := tensor.FromNested([][][]float64{{{1, 0}, {0, 1}, {1, 1}}})
	require.NoError(t, err)

	pw, err := loss.PairwiseSquaredError(est, ref, nil)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 3}, pw.Shape())

	for i := 0; i < 3; i++ {
		e, _ := tensor.Source(est, i)
		for j := 0; j < 3; j++ {
			r, _ := tensor.Source(ref, j)
			want, err := loss.SquaredError(e, r, nil)
			require.NoError(t, err)
			got, err := pw.At(0, i, j)
			require.NoError(t, err)
			assert.Equal(t, want.Values()[0], got, "entry [%d,%d]", i, j)
		}
	}
}

func TestPairwiseNegSISDR_DiagonalWins(t *testing.T) {
	ref, err := tensor.FromNested([][][]float64{{{1, 0, -1, 0}, {0, 1, 0, -1}}})
	require.NoError(t, err)

	pw, err := loss.PairwiseNegSISDR(ref, ref, nil)
	require.NoError(t, err)
	d, _ := pw.At(0, 0, 0)
	off, _ := pw.At(0, 0, 1)
	assert.Less(t, d, off)
}
