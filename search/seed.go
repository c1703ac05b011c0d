package search

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/turnpath/metric"
)

// StartPaths enumerates every admissible 3-point path [i, j, k], with k taken
// from the adjacency list of (i, j), and returns them as tasks sorted by
// ascending length. The sort is stable, so ties keep enumeration order and the
// result is deterministic.
//
// Fewer than three points, or no admissible triple, yield nil.
//
// Complexity: O(S log S) for S seeds, S ≤ N³.
func StartPaths(tbl *metric.Table) []Task {
	n := tbl.Size()
	if n < 3 {
		return nil
	}

	var (
		seeds []Task
		i, j  int
		dij   float64
		djk   float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			dij, _ = tbl.Dist.At(i, j)
			for _, k := range tbl.Adj.Candidates(i, j) {
				djk, _ = tbl.Dist.At(j, k)
				seeds = append(seeds, newTask([]int{i, j, k}, n, dij+djk))
			}
		}
	}

	slices.SortStableFunc(seeds, func(a, b Task) int { return cmp.Compare(a.Length, b.Length) })
	for i = range seeds {
		seeds[i].seed = i
	}

	return seeds
}
