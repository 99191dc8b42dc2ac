package permutation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pitwrap/loss"
	"github.com/katalvlaran/pitwrap/permutation"
	"github.com/katalvlaran/pitwrap/tensor"
)

func TestReorder_IdentityIsIdempotent(t *testing.T) {
	src, err := tensor.FromNested([][][]float64{
		{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
		{{-1, 0, 1}, {2, 2, 2}, {3, 1, 4}},
	})
	require.NoError(t, err)
	id := permutation.Permutation{0, 1, 2}

	out, err := permutation.Reorder(src, []permutation.Permutation{id, id})
	require.NoError(t, err)
	assert.Equal(t, src.Shape(), out.Shape())
	assert.Equal(t, src.Values(), out.Values())
}

func TestReorder_PerRowPermutations(t *testing.T) {
	src, err := tensor.FromNested([][][]float64{
		{{1}, {2}, {3}},
		{{4}, {5}, {6}},
	})
	require.NoError(t, err)

	out, err := permutation.Reorder(src, []permutation.Permutation{{2, 0, 1}, {1, 2, 0}})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2, 5, 6, 4}, out.Values())

	// the input is left untouched
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, src.Values())
}

func TestReorder_Errors(t *testing.T) {
	src, err := tensor.Zeros(2, 3, 4)
	require.NoError(t, err)

	_, err = permutation.Reorder(src, []permutation.Permutation{{0, 1, 2}})
	assert.ErrorIs(t, err, permutation.ErrBatchMismatch)

	_, err = permutation.Reorder(src, []permutation.Permutation{{0, 1, 2}, {0, 1, 5}})
	assert.ErrorIs(t, err, tensor.ErrIndex)

	flat, err := tensor.Zeros(3)
	require.NoError(t, err)
	_, err = permutation.Reorder(flat, nil)
	assert.ErrorIs(t, err, tensor.ErrShape)
}

// TestEndToEnd_SwappedSources runs the two-row swapped example: references
// A=[1,0], B=[0,1]; estimates presented as [B, A].
func TestEndToEnd_SwappedSources(t *testing.T) {
	a, b := []float64{1, 0}, []float64{0, 1}
	ref, err := tensor.FromNested([][][]float64{{a, b}, {a, b}})
	require.NoError(t, err)
	est, err := tensor.FromNested([][][]float64{{b, a}, {b, a}})
	require.NoError(t, err)

	pw, err := loss.PairwiseSquaredError(est, ref, nil)
	require.NoError(t, err)
	res, err := permutation.FindBest(pw, permutation.DefaultOptions(), nil)
	require.NoError(t, err)

	assert.Equal(t, []permutation.Permutation{{1, 0}, {1, 0}}, res.Permutations)
	mean, err := tensor.Mean(res.PerRow)
	require.NoError(t, err)
	v, err := mean.Item()
	require.NoError(t, err)
	assert.InDelta(t, 0, v, 1e-12)

	aligned, err := permutation.Reorder(est, res.Permutations)
	require.NoError(t, err)
	assert.Equal(t, ref.Values(), aligned.Values())
}
