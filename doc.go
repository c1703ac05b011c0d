// Package turnpath finds the shortest path through a set of points in the
// plane that visits every point exactly once and never turns sharper than a
// right angle.
//
// At every internal point cur with neighbours prev and next, the angle
// between the rays cur→prev and cur→next must be at least 90°. Straight
// continuation is 180°, a right-angle corner is exactly 90°, and a reversal
// is 0°.
//
// The work is split over subpackages:
//
//	geom/         point type, Euclidean distance, turn angle, admissibility
//	metric/       distance matrix and angle adjacency, precomputed once
//	search/       branch-and-bound over a shared LIFO queue worked by a pool
//	              of goroutines, with a best-path register and a publisher
//	pointset/     "x y" point file reader
//	render/       YAML and SVG output of every improvement
//	cmd/turnpath  command-line front end
//
// Quick example:
//
//	pts := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}, {X: 8, Y: 3}, {X: 8, Y: 7}}
//	res, err := search.Solve(ctx, pts, search.WithTimeLimit(time.Minute))
//	// res.Length == 15, res.Path is 0 1 2 3 4 or its reverse
//
// The search is exact: when Result.Status is StatusExhausted the returned
// path is optimal. Budgets (iterations, wall clock, context) turn it into an
// anytime search that reports the best path found so far.
package turnpath
