package brep

import "math"

// The componentwise min/max algebra used to build and merge axis-aligned
// bounding boxes. [BBox] is the main consumer, but the operations are
// exported because shape-level code merging child boxes into parent boxes
// wants them too.

// InfPoint returns the point of the given dimension with every coordinate
// +Inf. It is the identity of [Point.Min].
func InfPoint(dim int) Point {
	out := make(Point, dim)
	for i := range out {
		out[i] = math.Inf(1)
	}
	return out
}

// NegInfPoint returns the point of the given dimension with every
// coordinate -Inf. It is the identity of [Point.Max].
func NegInfPoint(dim int) Point {
	out := make(Point, dim)
	for i := range out {
		out[i] = math.Inf(-1)
	}
	return out
}

// Max returns the componentwise maximum of two points.
func (pt Point) Max(o Point) Point {
	sameDim(len(pt), len(o))
	out := make(Point, len(pt))
	for i := range pt {
		out[i] = max(pt[i], o[i])
	}
	return out
}

// Min returns the componentwise minimum of two points.
func (pt Point) Min(o Point) Point {
	sameDim(len(pt), len(o))
	out := make(Point, len(pt))
	for i := range pt {
		out[i] = min(pt[i], o[i])
	}
	return out
}

// Max returns the componentwise maximum of two vectors.
func (v Vec) Max(o Vec) Vec {
	return Vec(Point(v).Max(Point(o)))
}

// Min returns the componentwise minimum of two vectors.
func (v Vec) Min(o Vec) Vec {
	return Vec(Point(v).Min(Point(o)))
}

// MaxComponent returns the largest component of the vector, or -Inf for the
// empty vector.
func (v Vec) MaxComponent() float64 {
	m := math.Inf(-1)
	for _, c := range v {
		m = max(m, c)
	}
	return m
}
