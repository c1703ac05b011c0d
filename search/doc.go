// Package search implements a branch-and-bound search for the shortest
// turn-constrained Hamiltonian path.
//
// A path over points p0…pN−1 is admissible when every internal vertex turns by
// at least 90°: the angle at p[i] between p[i−1] and p[i+1] is ≥ 90°. Solve
// returns the shortest admissible path that visits every point exactly once.
//
// Pipeline:
//  1. metric.Build precomputes distances and, for every (prev, cur), the
//     admissible successors sorted nearest first.
//  2. StartPaths enumerates all admissible 3-point seeds, shortest first.
//  3. A pool of workers drains a shared LIFO WorkQueue. Each popped Task is
//     expanded: complete paths are offered to the Incumbent, partial paths
//     whose length already reaches the incumbent are pruned, and the rest
//     yield one child per free admissible successor.
//  4. Every accepted improvement is handed to the Publisher. When the queue is
//     empty the search has been exhaustive.
//
// Budget: MaxIterations caps the number of expansions across all workers,
// TimeLimit caps wall-clock time and ctx cancellation stops the run. Any of
// them ends the search early with whatever incumbent exists (anytime
// behaviour); Result.Status tells the outcomes apart.
//
// Policies:
//   - A new incumbent must be strictly shorter than the current one.
//   - A partial path is pruned when its length is ≥ the incumbent length.
//   - Children are pushed so that the nearest successor is popped next, which
//     approximates depth-first, nearest-first order without recursion.
//
// Complexity:
//   - Worst case exponential in N; the angle constraint and the bound keep
//     instances of a few dozen points tractable.
//   - Per expansion: O(K) for K candidates plus O(N/64) per child for the
//     free-set copy.
package search
