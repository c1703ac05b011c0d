package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/katalvlaran/turnpath/geom"
)

const (
	margin     = 20
	nodeRadius = 5
)

// frame maps point coordinates onto a canvas of w×h pixels, keeping the
// aspect ratio and putting +Y up.
type frame struct {
	minX, maxY float64
	scale      float64
}

func newFrame(points []geom.Point, w, h int) frame {
	if len(points) == 0 {
		return frame{scale: 1}
	}
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	dx, dy := maxX-minX, maxY-minY
	if dx == 0 {
		dx = 1
	}
	if dy == 0 {
		dy = 1
	}
	sx := float64(w-2*margin) / dx
	sy := float64(h-2*margin) / dy

	return frame{minX: minX, maxY: maxY, scale: math.Min(sx, sy)}
}

func (f frame) xy(p geom.Point) (int, int) {
	return margin + int(math.Round((p.X-f.minX)*f.scale)),
		margin + int(math.Round((f.maxY-p.Y)*f.scale))
}

// segmentStyle shades segment i of n from dark to light along the path.
func segmentStyle(i, n int) string {
	c := 0
	if n > 0 {
		c = 255 * i / n
	}

	return fmt.Sprintf("stroke:rgb(%d,100,%d);stroke-width:2", c, c)
}

// WriteSVG draws every point as a circle and path as a colour-graded
// polyline on a w×h canvas.
func WriteSVG(out io.Writer, points []geom.Point, path []int, title string, w, h int) {
	f := newFrame(points, w, h)

	canvas := svg.New(out)
	canvas.Start(w, h)
	canvas.Title(title)
	canvas.Rect(0, 0, w, h, "fill:white")

	segments := len(path) - 1
	var i int
	for i = 0; i < segments; i++ {
		x1, y1 := f.xy(points[path[i]])
		x2, y2 := f.xy(points[path[i+1]])
		canvas.Line(x1, y1, x2, y2, segmentStyle(i, segments))
	}
	for _, p := range points {
		x, y := f.xy(p)
		canvas.Circle(x, y, nodeRadius, "fill:none;stroke:black;stroke-width:2")
	}
	canvas.Text(margin, margin/2+4, title, "font-family:sans-serif;font-size:12px")
	canvas.End()
}
