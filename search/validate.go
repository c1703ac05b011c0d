package search

import (
	"fmt"

	"github.com/katalvlaran/turnpath/geom"
)

// ValidatePath checks that path is a permutation of [0, n).
//
// Complexity: O(n) time and memory.
func ValidatePath(path []int, n int) error {
	if len(path) != n {
		return fmt.Errorf("len=%d, want %d: %w", len(path), n, ErrInvalidPath)
	}
	seen := make([]bool, n)
	for i, v := range path {
		if v < 0 || v >= n {
			return fmt.Errorf("path[%d]=%d out of range: %w", i, v, ErrInvalidPath)
		}
		if seen[v] {
			return fmt.Errorf("path[%d]=%d repeated: %w", i, v, ErrInvalidPath)
		}
		seen[v] = true
	}

	return nil
}

// ValidateTurns checks that every internal vertex of path turns by at least 90°.
// Indices must be valid for points.
func ValidateTurns(points []geom.Point, path []int) error {
	var i int
	for i = 1; i+1 < len(path); i++ {
		if !geom.Admissible(points[path[i-1]], points[path[i]], points[path[i+1]]) {
			return fmt.Errorf("at path[%d]=%d (%.6f°): %w", i, path[i],
				geom.TurnAngle(points[path[i-1]], points[path[i]], points[path[i+1]]).Degrees(), ErrCrookedTurn)
		}
	}

	return nil
}
