package pairwise_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pitwrap/loss"
	"github.com/katalvlaran/pitwrap/pairwise"
	"github.com/katalvlaran/pitwrap/tensor"
)

func batch(t *testing.T) (*tensor.Tensor, *tensor.Tensor) {
	t.Helper()
	est, err := tensor.FromNested([][][]float64{
		{{0, 1, 2}, {1, 1, 1}, {3, 0, 0}},
		{{2, 2, 0}, {0, 0, 1}, {1, 2, 3}},
	})
	require.NoError(t, err)
	ref, err := tensor.FromNested([][][]float64{
		{{1, 1, 1}, {3, 0, 1}, {0, 1, 2}},
		{{0, 0, 0}, {1, 2, 3}, {2, 1, 0}},
	})
	require.NoError(t, err)

	return est, ref
}

// TestCompute_MatchesBroadcastMatrix checks the pointwise loop against the
// broadcast implementation of the same loss.
func TestCompute_MatchesBroadcastMatrix(t *testing.T) {
	est, ref := batch(t)

	got, err := pairwise.Compute(loss.SquaredError, est, ref, nil)
	require.NoError(t, err)
	want, err := loss.PairwiseSquaredError(est, ref, nil)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3, 3}, got.Shape())
	if diff := cmp.Diff(want.Values(), got.Values(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatalf("pairwise matrix mismatch (-want +got):\n%s", diff)
	}
}

func TestCompute_CallsOncePerPair(t *testing.T) {
	est, ref := batch(t)
	calls := 0
	counting := func(e, r *tensor.Tensor, a loss.Args) (*tensor.Tensor, error) {
		calls++
		assert.Equal(t, "v", a["k"])
		return loss.SquaredError(e, r, a)
	}

	_, err := pairwise.Compute(counting, est, ref, loss.Args{"k": "v"})
	require.NoError(t, err)
	assert.Equal(t, 9, calls)
}

func TestCompute_ContractErrors(t *testing.T) {
	est, ref := batch(t)

	_, err := pairwise.Compute(nil, est, ref, nil)
	assert.ErrorIs(t, err, pairwise.ErrNilLoss)

	short, err := tensor.FromNested([][][]float64{{{1, 2, 3}}})
	require.NoError(t, err)
	_, err = pairwise.Compute(loss.SquaredError, est, short, nil)
	assert.ErrorIs(t, err, pairwise.ErrBatchMismatch)

	scalarLoss := func(e, r *tensor.Tensor, _ loss.Args) (*tensor.Tensor, error) {
		return tensor.Scalar(1), nil
	}
	_, err = pairwise.Compute(scalarLoss, est, ref, nil)
	assert.ErrorIs(t, err, pairwise.ErrLossShape)

	empty := func(e, r *tensor.Tensor, _ loss.Args) (*tensor.Tensor, error) { return nil, nil }
	require.NotPanics(t, func() {
		_, err = pairwise.Compute(empty, est, ref, nil)
	})
	assert.ErrorIs(t, err, pairwise.ErrLossShape)
	assert.Contains(t, err.Error(), "(0, 0)")

	boom := errors.New("boom")
	failing := func(e, r *tensor.Tensor, _ loss.Args) (*tensor.Tensor, error) { return nil, boom }
	_, err = pairwise.Compute(failing, est, ref, nil)
	assert.ErrorIs(t, err, boom)
}

func TestCompute_GradientReachesEstimates(t *testing.T) {
	est, ref := batch(t)
	est.RequireGrad()

	pw, err := pairwise.Compute(loss.SquaredError, est, ref, nil)
	require.NoError(t, err)
	require.True(t, pw.RequiresGrad())

	m, err := tensor.Mean(pw)
	require.NoError(t, err)
	require.NoError(t, m.Backward())
	assert.Len(t, est.Grad(), est.Size())
	assert.Nil(t, ref.Grad())
}
