// Package metric precomputes the read-only tables the turn-constrained search
// reads in its hot loop.
//
// What:
//
//   - DistanceMatrix: N×N Euclidean distances, symmetric with a zero diagonal,
//     stored row-major in a flat slice (offset = i*N + j).
//   - AngleAdjacency: for every ordered pair (prev, cur) of distinct points the
//     list of admissible successors k, i.e. k ∉ {prev, cur} and the turn at cur
//     from prev to k is at least 90°. Each list is sorted by ascending
//     distance(cur, k) with an index tiebreak so that runs are reproducible.
//
// Build computes both in a single pass over all ordered triples. Both tables
// are immutable afterwards and safe for concurrent readers without locking.
//
// Complexity:
//   - Time:   O(N³) angle evaluations + O(N² · K log K) sorting, K = list length.
//   - Memory: O(N²) distances + O(N³) worst-case candidate entries.
//
// The cubic footprint limits practical inputs to a few dozen points, which is
// also where an exhaustive branch-and-bound search remains feasible.
package metric
