package geom

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
)

// RightAngleDegrees is the admissibility threshold for a turn, in degrees.
const RightAngleDegrees = 90.0

// Point is an immutable pair of planar coordinates.
type Point = r2.Point

// Distance returns the Euclidean distance between a and b.
// It is symmetric and zero iff a == b.
func Distance(a, b Point) float64 {
	return a.Sub(b).Norm()
}

// TurnAngle returns the angle at cur subtended by prev and next.
//
// The value equals the law-of-cosines angle of the triangle (prev, cur, next)
// but is evaluated as atan2(|u×v|, u·v) on the rays u = prev−cur, v = next−cur,
// which avoids dividing by the side lengths and never leaves acos' domain on
// collinear input. Axis-aligned right angles therefore come out as exactly 90°.
//
// Degenerate input (cur == prev or cur == next) yields 0.
func TurnAngle(prev, cur, next Point) s1.Angle {
	u := prev.Sub(cur)
	v := next.Sub(cur)
	if u == (Point{}) || v == (Point{}) {
		return 0
	}

	return s1.Angle(math.Atan2(math.Abs(u.Cross(v)), u.Dot(v)))
}

// Admissible reports whether stepping prev→cur→next turns by at least 90°.
func Admissible(prev, cur, next Point) bool {
	return TurnAngle(prev, cur, next).Degrees() >= RightAngleDegrees
}

// IsFinite reports whether both coordinates of p are finite numbers.
func IsFinite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
