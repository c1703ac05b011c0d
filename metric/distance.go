package metric

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/turnpath/geom"
)

// DistanceMatrix is the dense, read-only matrix of pairwise Euclidean distances.
type DistanceMatrix struct {
	n    int       // number of points
	data []float64 // row-major, len == n*n
}

var _ fmt.Stringer = (*DistanceMatrix)(nil)

// NewDistanceMatrix computes all pairwise distances of points.
// Only the upper triangle is evaluated; the lower one is mirrored so the result
// is symmetric bit for bit.
//
// Complexity: O(N²) time and memory.
func NewDistanceMatrix(points []geom.Point) *DistanceMatrix {
	n := len(points)
	m := &DistanceMatrix{n: n, data: make([]float64, n*n)}

	var i, j int
	var d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = geom.Distance(points[i], points[j])
			m.data[i*n+j] = d
			m.data[j*n+i] = d
		}
	}

	return m
}

// Size returns N, the number of points the matrix was built from.
func (m *DistanceMatrix) Size() int { return m.n }

// At returns D[i][j] or ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *DistanceMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, indexErrorf("At", i, j)
	}

	return m.data[i*m.n+j], nil
}

// at is the unchecked accessor used while building adjacency lists.
func (m *DistanceMatrix) at(i, j int) float64 { return m.data[i*m.n+j] }

// PathLength sums D along consecutive indices of path.
// Paths shorter than two indices have length 0.
//
// Complexity: O(len(path)).
func (m *DistanceMatrix) PathLength(path []int) (float64, error) {
	var (
		sum float64
		d   float64
		err error
		i   int
	)
	for i = 1; i < len(path); i++ {
		d, err = m.At(path[i-1], path[i])
		if err != nil {
			return 0, err
		}
		sum += d
	}

	return sum, nil
}

// Validate checks the structural invariants: zero diagonal and exact symmetry.
//
// Complexity: O(N²).
func (m *DistanceMatrix) Validate() error {
	var i, j int
	for i = 0; i < m.n; i++ {
		if m.at(i, i) != 0 {
			return fmt.Errorf("D[%d][%d]=%g: %w", i, i, m.at(i, i), ErrNonZeroDiagonal)
		}
		for j = i + 1; j < m.n; j++ {
			if m.at(i, j) != m.at(j, i) {
				return fmt.Errorf("D[%d][%d]=%g, D[%d][%d]=%g: %w", i, j, m.at(i, j), j, i, m.at(j, i), ErrAsymmetry)
			}
		}
	}

	return nil
}

// String renders the matrix one row per line.
func (m *DistanceMatrix) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.n; i++ {
		sb.WriteString("[")
		for j = 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
