package metric_test

import (
	"math/rand"

	"github.com/katalvlaran/turnpath/geom"
)

// zShape is a 5-point "Z" whose only angle-valid Hamiltonian path is 0-1-2-3-4.
func zShape() []geom.Point {
	return []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}, {X: 8, Y: 3}, {X: 8, Y: 7}}
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
