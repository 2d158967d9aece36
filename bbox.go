package brep

// BBox is an axis-aligned bounding box of arbitrary dimension. The zero
// value is not meaningful; construct boxes with [EmptyBBox] or
// [NewBBoxFromPoints] and grow them with [BBox.UnionPoint] and
// [BBox.Union].
type BBox struct {
	Min, Max Point
}

// EmptyBBox returns the empty box of the given dimension: Min at +Inf and
// Max at -Inf, the identity of [BBox.Union].
func EmptyBBox(dim int) BBox {
	return BBox{
		Min: InfPoint(dim),
		Max: NegInfPoint(dim),
	}
}

// NewBBoxFromPoints returns the smallest box containing p0 and p1.
func NewBBoxFromPoints(p0, p1 Point) BBox {
	return BBox{
		Min: p0.Min(p1),
		Max: p0.Max(p1),
	}
}

// Dim returns the dimension of the box.
func (b BBox) Dim() int {
	return len(b.Min)
}

// IsEmpty reports whether the box contains no points.
func (b BBox) IsEmpty() bool {
	for i := range b.Min {
		if b.Min[i] > b.Max[i] {
			return true
		}
	}
	return false
}

// UnionPoint returns the smallest box enclosing both b and pt.
func (b BBox) UnionPoint(pt Point) BBox {
	return BBox{
		Min: b.Min.Min(pt),
		Max: b.Max.Max(pt),
	}
}

// Union returns the smallest box enclosing b and o.
func (b BBox) Union(o BBox) BBox {
	return BBox{
		Min: b.Min.Min(o.Min),
		Max: b.Max.Max(o.Max),
	}
}

// Center returns the center of the box.
func (b BBox) Center() Point {
	return b.Min.Midpoint(b.Max)
}

// Diagonal returns the vector from the minimum corner to the maximum
// corner.
func (b BBox) Diagonal() Vec {
	return b.Max.Sub(b.Min)
}

// MaxSide returns the length of the longest side of the box.
func (b BBox) MaxSide() float64 {
	return b.Diagonal().MaxComponent()
}

// Contains reports whether pt lies inside the box. Boundary points are
// inside: a box contains every point it was grown from.
func (b BBox) Contains(pt Point) bool {
	sameDim(len(b.Min), len(pt))
	for i := range pt {
		if pt[i] < b.Min[i] || pt[i] > b.Max[i] {
			return false
		}
	}
	return true
}
