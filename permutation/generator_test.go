package permutation_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pitwrap/permutation"
)

func TestGenerator_LexicographicOrder(t *testing.T) {
	want := []permutation.Permutation{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	if diff := cmp.Diff(want, permutation.All(3)); diff != "" {
		t.Fatalf("permutation order (-want +got):\n%s", diff)
	}
}

func TestGenerator_ResetRestarts(t *testing.T) {
	g := permutation.NewGenerator(4)
	n := 0
	for g.Next() {
		n++
	}
	assert.Equal(t, 24, n)
	assert.False(t, g.Next(), "exhausted generator stays exhausted")

	g.Reset()
	assert.True(t, g.Next())
	assert.Equal(t, permutation.Permutation{0, 1, 2, 3}, g.Permutation(nil))
}

func TestCount(t *testing.T) {
	for n, want := range []int{1, 1, 2, 6, 24, 120, 720} {
		assert.Equal(t, want, permutation.Count(n), "n=%d", n)
		assert.Len(t, permutation.All(n), want, "n=%d", n)
	}
}

func TestGenerator_EveryPermutationValidAndDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range permutation.All(5) {
		assert.True(t, p.Valid(), "%v", p)
		key := fmt.Sprint(p)
		assert.False(t, seen[key], "duplicate %v", p)
		seen[key] = true
	}
	assert.Len(t, seen, 120)
}

func TestPermutation_Inverse(t *testing.T) {
	p := permutation.Permutation{2, 0, 3, 1}
	q := p.Inverse()
	for k := range p {
		assert.Equal(t, k, q[p[k]])
	}
	assert.False(t, permutation.Permutation{0, 0, 1}.Valid())
	assert.False(t, permutation.Permutation{0, 3, 1}.Valid())
}
