// SPDX-License-Identifier: MIT

package pit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pitwrap/pit"
)

func TestParseMode_NamesAndAliases(t *testing.T) {
	cases := map[string]pit.Mode{
		"pairwise-matrix":               pit.PairwiseMatrix,
		"pw_mtx":                        pit.PairwiseMatrix,
		"pw_pt":                         pit.PairwisePointwise,
		"permutation-average":           pit.PermutationAverage,
		"perm_avg":                      pit.PermutationAverage,
		" Mix_It ":                      pit.MixtureInvariant,
		"mixture-invariant-generalized": pit.MixtureInvariantGeneralized,
		"mix_it_gen":                    pit.MixtureInvariantGeneralized,
	}
	for in, want := range cases {
		got, err := pit.ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := pit.ParseMode("pw_something")
	assert.ErrorIs(t, err, pit.ErrUnknownMode)
}

func TestMode_RoundTrip(t *testing.T) {
	modes := pit.Modes()
	require.Len(t, modes, 5)
	for _, m := range modes {
		assert.True(t, m.Valid())
		byName, err := pit.ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, byName)
		byAlias, err := pit.ParseMode(m.Alias())
		require.NoError(t, err)
		assert.Equal(t, m, byAlias)
	}
	assert.False(t, pit.Mode(len(modes)).Valid())
	assert.Equal(t, "Mode(5)", pit.Mode(5).String())
	assert.Empty(t, pit.Mode(-1).Alias())

	assert.True(t, pit.PairwiseMatrix.Pairwise())
	assert.True(t, pit.PairwisePointwise.Pairwise())
	assert.False(t, pit.PermutationAverage.Pairwise())
	assert.False(t, pit.MixtureInvariant.Pairwise())
}
