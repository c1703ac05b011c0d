package pointset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/turnpath/geom"
)

// Sentinel errors returned by Read and ReadFile.
var (
	// ErrMalformedLine indicates a line that is not "x y".
	ErrMalformedLine = errors.New("pointset: malformed line")

	// ErrNonFinite indicates a NaN or infinite coordinate.
	ErrNonFinite = errors.New("pointset: non-finite coordinate")
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Read parses points from r. Errors carry the 1-based line number.
func Read(r io.Reader) ([]geom.Point, error) {
	var (
		pts  []geom.Point
		line int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		p, err := parsePoint(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		pts = append(pts, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pointset: read: %w", err)
	}

	return pts, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) ([]geom.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pointset: %w", err)
	}
	defer f.Close()

	pts, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pts, nil
}

func parsePoint(text string) (geom.Point, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return geom.Point{}, fmt.Errorf("%q has %d fields, want 2: %w", text, len(fields), ErrMalformedLine)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("x %q: %w", fields[0], ErrMalformedLine)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("y %q: %w", fields[1], ErrMalformedLine)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return geom.Point{}, fmt.Errorf("%q: %w", text, ErrNonFinite)
	}

	return geom.Point{X: x, Y: y}, nil
}
