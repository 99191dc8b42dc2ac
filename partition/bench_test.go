package partition_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/pitwrap/loss"
	"github.com/katalvlaran/pitwrap/partition"
	"github.com/katalvlaran/pitwrap/tensor"
)

type searchFunc func(loss.Func, *tensor.Tensor, *tensor.Tensor, loss.Args) (partition.Result, error)

// benchmarkSearch runs search on random [batch, nEst, T] estimates against
// [batch, nMix, T] references.
func benchmarkSearch(b *testing.B, search searchFunc, batch, nEst, nMix, samples int) {
	rng := rand.New(rand.NewPCG(5, uint64(nEst)))
	fill := func(n int) []float64 {
		out := make([]float64, n)
		for i := range out {
			out[i] = rng.NormFloat64()
		}
		return out
	}
	est, err := tensor.New(fill(batch*nEst*samples), batch, nEst, samples)
	if err != nil {
		b.Fatalf("tensor: %v", err)
	}
	ref, err := tensor.New(fill(batch*nMix*samples), batch, nMix, samples)
	if err != nil {
		b.Fatalf("tensor: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search(loss.SquaredError, est, ref, nil); err != nil {
			b.Fatalf("search failed: %v", err)
		}
	}
}

// BenchmarkBestEqual_4x2 is the common MixIT setting: 4 sources, 2 mixtures.
func BenchmarkBestEqual_4x2(b *testing.B) {
	benchmarkSearch(b, partition.BestEqual, 8, 4, 2, 256)
}

// BenchmarkBestEqual_8x2 shows the combinatorial growth in n_est.
func BenchmarkBestEqual_8x2(b *testing.B) {
	benchmarkSearch(b, partition.BestEqual, 8, 8, 2, 256)
}

// BenchmarkBestGeneralized_8 scores all 256 splits of 8 sources.
func BenchmarkBestGeneralized_8(b *testing.B) {
	benchmarkSearch(b, partition.BestGeneralized, 8, 8, 2, 256)
}
