package partition_test

import (
	"fmt"

	"github.com/katalvlaran/pitwrap/loss"
	"github.com/katalvlaran/pitwrap/partition"
	"github.com/katalvlaran/pitwrap/tensor"
)

// ExampleBestEqual regroups four estimated sources into the two reference
// mixtures they were drawn from.
func ExampleBestEqual() {
	est, _ := tensor.FromNested([][][]float64{{
		{1, 0}, {0, 1}, {2, 0}, {0, 3},
	}})
	// mixture 0 = sources 1+3, mixture 1 = sources 0+2
	ref, _ := tensor.FromNested([][][]float64{{
		{0, 4}, {3, 0},
	}})

	res, err := partition.BestEqual(loss.SquaredError, est, ref, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Candidates, res.Partitions[0], res.Mixtures.Values())
	// Output:
	// 6 [[1 3] [0 2]] [0 4 3 0]
}

func ExampleNewBinaryGenerator() {
	g := partition.NewBinaryGenerator(2)
	for g.Next() {
		fmt.Println(g.Partition(nil))
	}
	// Output:
	// [[] [0 1]]
	// [[0] [1]]
	// [[1] [0]]
	// [[0 1] []]
}
