package permutation_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/pitwrap/permutation"
	"github.com/katalvlaran/pitwrap/tensor"
)

// benchmarkSearch runs FindBest on a fixed random [batch, n, n] matrix.
func benchmarkSearch(b *testing.B, batch, n int, opts permutation.Options) {
	rng := rand.New(rand.NewPCG(42, uint64(n)))
	data := make([]float64, batch*n*n)
	for i := range data {
		data[i] = rng.Float64()
	}
	pw, err := tensor.New(data, batch, n, n)
	if err != nil {
		b.Fatalf("tensor: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := permutation.FindBest(pw, opts, nil); err != nil {
			b.Fatalf("FindBest failed: %v", err)
		}
	}
}

// BenchmarkFactorial_N5 forces the exhaustive path with a sum reduction.
func BenchmarkFactorial_N5(b *testing.B) {
	benchmarkSearch(b, 16, 5, permutation.Options{Reduction: permutation.SumReduction()})
}

// BenchmarkFactorial_N7 shows the n! growth of the exhaustive path.
func BenchmarkFactorial_N7(b *testing.B) {
	benchmarkSearch(b, 4, 7, permutation.Options{Reduction: permutation.SumReduction()})
}

// BenchmarkHungarian_N5 uses the matching solver on the same size.
func BenchmarkHungarian_N5(b *testing.B) {
	benchmarkSearch(b, 16, 5, permutation.DefaultOptions())
}

// BenchmarkHungarian_N9 is the largest allowed source count.
func BenchmarkHungarian_N9(b *testing.B) {
	benchmarkSearch(b, 16, 9, permutation.DefaultOptions())
}
