// Package partition implements the mixture-invariant search: estimated
// sources are split into groups, each group is summed into one synthesized
// mixture, and the grouping whose mixtures best match the reference mixtures
// wins, independently for every batch row.
//
// Two families of groupings are supported:
//
//   - Equal-size (BestEqual): n_est sources split into n_mix groups of
//     n_est/n_mix sources each. NewEqualGenerator yields the
//     n_est! / ((k!)^n_mix · n_mix!) unique unordered partitions; the search
//     additionally tries every assignment of groups to reference mixtures.
//   - Generalized (BestGeneralized): exactly two mixtures, groups of any size
//     including empty. NewBinaryGenerator yields all 2^n_est ordered splits.
//
// Scaling: the loss callback is re-evaluated for every candidate grouping,
// so the cost grows combinatorially with n_est. The winning mixtures are then
// rebuilt from the raw estimates in a second pass using each row's grouping.
//
// Generators are lazy and restartable:
//
//	g, _ := partition.NewEqualGenerator(4, 2)
//	for g.Next() {
//		p := g.Partition(nil) // [[0 1] [2 3]], [[0 2] [1 3]], [[0 3] [1 2]]
//	}
package partition
