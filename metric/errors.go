package metric

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the metric package.
var (
	// ErrNonFiniteCoordinate indicates a NaN or ±Inf coordinate in the input.
	ErrNonFiniteCoordinate = errors.New("metric: non-finite coordinate")

	// ErrIndexOutOfBounds indicates a point index outside [0, N).
	ErrIndexOutOfBounds = errors.New("metric: index out of bounds")

	// ErrAsymmetry indicates D[i][j] != D[j][i] for some pair.
	ErrAsymmetry = errors.New("metric: distance matrix is not symmetric")

	// ErrNonZeroDiagonal indicates D[i][i] != 0 for some i.
	ErrNonZeroDiagonal = errors.New("metric: distance matrix diagonal is not zero")
)

// indexErrorf wraps an index error with the accessor name and coordinates.
func indexErrorf(method string, i, j int) error {
	return fmt.Errorf("DistanceMatrix.%s(%d,%d): %w", method, i, j, ErrIndexOutOfBounds)
}
