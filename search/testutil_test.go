package search_test

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/turnpath/geom"
	"github.com/katalvlaran/turnpath/search"
)

// zShape is a 5-point "Z" whose only angle-valid Hamiltonian path is
// 0-1-2-3-4 (or its reverse), of length 15.
func zShape() []geom.Point {
	return []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}, {X: 8, Y: 3}, {X: 8, Y: 7}}
}

// grid3 is the 3×3 unit grid, index = y*3 + x. Several paths reach the optimum 8.
func grid3() []geom.Point {
	pts := make([]geom.Point, 0, 9)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			pts = append(pts, geom.Point{X: float64(x), Y: float64(y)})
		}
	}

	return pts
}

// infeasible returns n ∈ [7, 9] points that admit no angle-valid path.
func infeasible(n int) []geom.Point {
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Point{X: float64((i * 37) % 23), Y: float64((i * 53) % 29)}
	}

	return pts
}

// scatter returns n deterministic pseudo-random points in [0,100)².
func scatter(n int, seed int64) []geom.Point {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Point{X: rng.Float64() * 100, Y: rng.Float64() * 100}
	}

	return pts
}

// bruteForce enumerates every permutation and returns the shortest angle-valid
// length, summed left to right like the engine does, or +Inf.
func bruteForce(pts []geom.Point) float64 {
	n := len(pts)
	best := math.Inf(1)
	if n < 3 {
		return best
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var rec func(k int)
	rec = func(k int) {
		if k == n {
			length := 0.0
			for i := 1; i < n; i++ {
				if i+1 < n && !geom.Admissible(pts[perm[i-1]], pts[perm[i]], pts[perm[i+1]]) {
					return
				}
				length += geom.Distance(pts[perm[i-1]], pts[perm[i]])
			}
			if length < best {
				best = length
			}

			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			rec(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	rec(0)

	return best
}

// recorder is a Publisher that keeps every publication.
type recorder struct {
	mu   sync.Mutex
	pubs []search.Publication
}

func (r *recorder) publish(p search.Publication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pubs = append(r.pubs, p)

	return nil
}

func (r *recorder) all() []search.Publication {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]search.Publication(nil), r.pubs...)
}

// requireValid asserts the structural invariants of a found result.
func requireValid(t *testing.T, pts []geom.Point, res search.Result) {
	t.Helper()
	require.True(t, res.Found)
	require.NoError(t, search.ValidatePath(res.Path, len(pts)))
	require.NoError(t, search.ValidateTurns(pts, res.Path))
	require.Greater(t, res.Length, 0.0)
}
