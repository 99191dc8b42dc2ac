package permutation_test

import (
	"fmt"

	"github.com/katalvlaran/pitwrap/permutation"
	"github.com/katalvlaran/pitwrap/tensor"
)

// ExampleFindBest matches four estimates to four references. With the mean
// reduction and more than three sources the matching solver is used.
func ExampleFindBest() {
	// pw[b, i, k]: loss of estimate i against reference k.
	pw, _ := tensor.FromNested([][][]float64{{
		{10, 8, 7, 4},
		{5, 9, 3, 12},
		{7, 2, 11, 8},
		{1, 6, 5, 9},
	}})

	res, err := permutation.FindBest(pw, permutation.DefaultOptions(), nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Algorithm, res.Permutations[0], res.PerRow.Values()[0])
	// Output:
	// hungarian [3 2 1 0] 2.5
}

// ExampleFindBest_maxReduction scores permutations by their worst source,
// which forces exhaustive search.
func ExampleFindBest_maxReduction() {
	pw, _ := tensor.FromNested([][][]float64{{
		{0, 6},
		{6, 10},
	}})

	res, err := permutation.FindBest(pw, permutation.Options{Reduction: permutation.MaxReduction()}, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Algorithm, res.Candidates, res.Permutations[0], res.PerRow.Values()[0])
	// Output:
	// factorial 2 [1 0] 6
}

func ExampleGenerator() {
	g := permutation.NewGenerator(3)
	for g.Next() {
		fmt.Println(g.Permutation(nil))
	}
	// Output:
	// [0 1 2]
	// [0 2 1]
	// [1 0 2]
	// [1 2 0]
	// [2 0 1]
	// [2 1 0]
}
