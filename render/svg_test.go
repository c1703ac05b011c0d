package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/turnpath/geom"
	"github.com/katalvlaran/turnpath/render"
)

func TestWriteSVG_DegenerateExtent(t *testing.T) {
	var buf bytes.Buffer
	pts := []geom.Point{{X: 1, Y: 1}, {X: 1, Y: 5}, {X: 1, Y: 9}}
	render.WriteSVG(&buf, pts, []int{0, 1, 2}, "line", 200, 100)

	out := buf.String()
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
	assert.Equal(t, 2, strings.Count(out, "<line"))
	assert.NotContains(t, out, "NaN")
}

func TestWriteSVG_Empty(t *testing.T) {
	var buf bytes.Buffer
	render.WriteSVG(&buf, nil, nil, "empty", 200, 100)
	assert.Contains(t, buf.String(), "<svg")
	assert.NotContains(t, buf.String(), "<line")
}
