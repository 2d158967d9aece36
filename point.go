package brep

import (
	"strconv"
	"strings"
)

// Point is a position of arbitrary dimension. See [Vec] for the distinction
// between positions and displacements, and for the dimension-mismatch
// panicking rule.
type Point []float64

// Pt returns the point with the given coordinates.
func Pt(coords ...float64) Point {
	return Point(coords)
}

// Dim returns the dimension of the point.
func (pt Point) Dim() int {
	return len(pt)
}

// Clone returns a copy of the point that shares no storage with pt.
func (pt Point) Clone() Point {
	out := make(Point, len(pt))
	copy(out, pt)
	return out
}

func (pt Point) String() string {
	sb := &strings.Builder{}
	sb.WriteString("(")
	for i, c := range pt {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
	}
	sb.WriteString(")")
	return sb.String()
}

// Translate returns the point displaced by o.
func (pt Point) Translate(o Vec) Point {
	sameDim(len(pt), len(o))
	out := make(Point, len(pt))
	for i := range pt {
		out[i] = pt[i] + o[i]
	}
	return out
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec {
	sameDim(len(pt), len(o))
	out := make(Vec, len(pt))
	for i := range pt {
		out[i] = pt[i] - o[i]
	}
	return out
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec(pt).Lerp(Vec(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return pt.Lerp(o, 0.5)
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return pt.Sub(o).Hypot()
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	return pt.Sub(o).Hypot2()
}

// IsInf reports whether at least one coordinate is infinite.
func (pt Point) IsInf() bool {
	return Vec(pt).IsInf()
}

// IsNaN reports whether at least one coordinate is NaN.
func (pt Point) IsNaN() bool {
	return Vec(pt).IsNaN()
}

// Near reports whether every coordinate of pt is within [Tolerance] of the
// corresponding coordinate of o.
//
// Near is a geometric closeness test, not an identity test: two distinct
// vertices whose points are near are still distinct vertices.
func (pt Point) Near(o Point) bool {
	return Vec(pt).Near(Vec(o))
}

// Near2 reports whether every coordinate of pt is within [Tolerance2] of
// the corresponding coordinate of o.
func (pt Point) Near2(o Point) bool {
	return Vec(pt).Near2(Vec(o))
}

// RoundByTolerance applies [RoundByTolerance] to every coordinate and
// returns the result.
func (pt Point) RoundByTolerance() Point {
	return Point(Vec(pt).RoundByTolerance())
}
