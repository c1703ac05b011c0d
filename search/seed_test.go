package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/turnpath/geom"
	"github.com/katalvlaran/turnpath/metric"
	"github.com/katalvlaran/turnpath/search"
)

func TestStartPaths_SortedAndAdmissible(t *testing.T) {
	pts := scatter(10, 2)
	tbl, err := metric.Build(pts)
	require.NoError(t, err)

	seeds := search.StartPaths(tbl)
	require.Len(t, seeds, tbl.Adj.Entries())

	for i, s := range seeds {
		require.Len(t, s.Path, 3)
		a, b, c := s.Path[0], s.Path[1], s.Path[2]
		require.True(t, geom.Admissible(pts[a], pts[b], pts[c]))

		want, err := tbl.Dist.PathLength(s.Path)
		require.NoError(t, err)
		require.Equal(t, want, s.Length)

		require.Equal(t, uint(len(pts)-3), s.Free.Count())
		for _, v := range s.Path {
			require.False(t, s.Free.Test(uint(v)))
		}
		if i > 0 {
			require.LessOrEqual(t, seeds[i-1].Length, s.Length)
		}
	}
}

func TestStartPaths_Deterministic(t *testing.T) {
	tbl, err := metric.Build(grid3())
	require.NoError(t, err)

	a, b := search.StartPaths(tbl), search.StartPaths(tbl)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Path, b[i].Path)
	}
}

func TestStartPaths_TooFewPoints(t *testing.T) {
	tbl, err := metric.Build([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	require.NoError(t, err)
	assert.Nil(t, search.StartPaths(tbl))
}

func TestStartPaths_ZShapeFirst(t *testing.T) {
	tbl, err := metric.Build(zShape())
	require.NoError(t, err)

	seeds := search.StartPaths(tbl)
	require.NotEmpty(t, seeds)
	assert.Equal(t, []int{0, 1, 2}, seeds[0].Path)
	assert.Equal(t, 7.0, seeds[0].Length)
}
