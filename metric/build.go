// Precomputation of the read-only search tables.
//
// Build turns the input points into a Table: a private copy of the points,
// the DistanceMatrix and the AngleAdjacency. It runs once, single-threaded,
// before any worker starts; afterwards nothing writes to the Table.
//
// Rationale (succinct):
//  1. Reject non-finite coordinates up front; every later stage assumes
//     finite distances and well-defined angles.
//  2. Distances are computed for the upper triangle and mirrored, so the
//     matrix is symmetric bit for bit.
//  3. For each ordered (start, mid) pair every third point end is tested once
//     with geom.Admissible; coincident points yield 0° and are never listed.
//  4. Each list is sorted by D[mid][end] with an index tiebreak, which gives
//     the search its nearest-first branching and makes runs reproducible.
//
// Complexity:
//   - Time:   O(N³) angle tests + Σ O(K log K) sorting over the N² lists.
//   - Memory: O(N²) distances + O(N³) candidate entries in the worst case.
//
// Governance:
//   - Options.Logger receives one debug record with the point and candidate
//     counts; the default logger discards it.

package metric

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/katalvlaran/turnpath/geom"
	"github.com/katalvlaran/turnpath/internal/logging"
)

// Table bundles the immutable inputs of one search run.
type Table struct {
	Points []geom.Point    // private copy of the input
	Dist   *DistanceMatrix // pairwise distances
	Adj    *AngleAdjacency // admissible successors per (prev, cur)
}

// Size returns the number of points.
func (t *Table) Size() int { return len(t.Points) }

// Options configures Build.
type Options struct {
	Logger *slog.Logger // debug statistics; nil discards
}

// Option is a functional option for Build.
type Option func(*Options)

// WithLogger routes build statistics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns Options with a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: logging.Discard()}
}

// Build validates points and computes the distance matrix and the angle
// adjacency in one single-threaded pass.
//
// Stages:
//  1. Reject NaN/±Inf coordinates (ErrNonFiniteCoordinate).
//  2. Distances for every unordered pair.
//  3. For every ordered triple (start, mid, end) of pairwise distinct indices,
//     record end under (start, mid) iff geom.Admissible(start, mid, end).
//  4. Sort each list by D[mid][end] with index tiebreak.
//
// Empty and tiny inputs are valid; they simply produce empty adjacency lists.
func Build(points []geom.Point, opts ...Option) (*Table, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = DefaultOptions().Logger
	}

	var i int
	for i = 0; i < len(points); i++ {
		if !geom.IsFinite(points[i]) {
			return nil, fmt.Errorf("point %d (%v): %w", i, points[i], ErrNonFiniteCoordinate)
		}
	}

	var (
		n   = len(points)
		pts = append([]geom.Point(nil), points...)
		dm  = NewDistanceMatrix(pts)
		adj = &AngleAdjacency{n: n, lists: make([][]int, n*n)}
	)

	var start, mid, end int
	for start = 0; start < n; start++ {
		for mid = 0; mid < n; mid++ {
			if start == mid {
				continue
			}
			var row []int
			for end = 0; end < n; end++ {
				if end == start || end == mid {
					continue
				}
				if geom.Admissible(pts[start], pts[mid], pts[end]) {
					row = append(row, end)
				}
			}
			sort.Sort(candidateOrder{cur: mid, row: row, dist: dm})
			adj.lists[start*n+mid] = row
			adj.entries += len(row)
		}
	}

	o.Logger.Debug("metric tables built",
		slog.Int("points", n),
		slog.Int("candidate_entries", adj.entries),
	)

	return &Table{Points: pts, Dist: dm, Adj: adj}, nil
}
