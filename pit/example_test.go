// SPDX-License-Identifier: MIT

package pit_test

import (
	"fmt"

	"github.com/katalvlaran/pitwrap/loss"
	"github.com/katalvlaran/pitwrap/pit"
	"github.com/katalvlaran/pitwrap/tensor"
)

// ExampleWrapper_Evaluate aligns two swapped estimates with their references
// using a pairwise squared error.
func ExampleWrapper_Evaluate() {
	a, b := []float64{1, 0}, []float64{0, 1}
	ref, _ := tensor.FromNested([][][]float64{{a, b}, {a, b}})
	est, _ := tensor.FromNested([][][]float64{{b, a}, {b, a}})

	w, err := pit.NewFromName("pw_mtx", loss.PairwiseSquaredError)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := w.Evaluate(est, ref, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Search, res.Permutations, res.Loss.Values()[0])
	fmt.Println(res.Estimates.Values())
	// Output:
	// factorial [[1 0] [1 0]] 0
	// [1 0 0 1 1 0 0 1]
}

// ExampleNewReorderer groups four estimates into two mixtures at inference
// time.
func ExampleNewReorderer() {
	est, _ := tensor.FromNested([][][]float64{{{1, 0}, {0, 1}, {2, 0}, {0, 3}}})
	ref, _ := tensor.FromNested([][][]float64{{{0, 4}, {3, 0}}})

	r, err := pit.NewReorderer(pit.MixtureInvariant, loss.SquaredError)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	mixtures, err := r.Reorder(est, ref, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(mixtures.Shape(), mixtures.Values())
	// Output:
	// [1 2 2] [0 4 3 0]
}
