// Package geom provides the planar primitives used by the turn-constrained
// path search: the point type, Euclidean distance and the turn angle at a
// vertex formed by its two neighbours on a path.
//
// Points are github.com/golang/geo/r2 points; angles are s1.Angle values so
// callers can read them in radians or degrees without ad hoc conversions.
//
// Turn-angle policy:
//   - The angle at cur between the rays cur→prev and cur→next lies in [0°, 180°].
//     180° means "straight on", 90° a right-angle turn, 0° a full reversal.
//   - A successor is admissible iff the angle is ≥ 90°.
//   - If cur coincides with prev or next the angle is undefined; it is reported
//     as 0°, which makes such a step inadmissible.
//
// Complexity: every function is O(1) and allocation free.
package geom
