package brep

import (
	"fmt"
	"slices"
	"sort"
)

// Polyline is a piecewise-linear curve through a sequence of points, with
// an explicit, strictly increasing knot vector assigning a parameter to
// every point. It implements every curve capability the kernel knows
// about, and because its knots are absolute, [Cut] and [Concat] on
// polyline edges are exact: cutting and re-concatenating reconstructs the
// original points and knots without any compensation.
type Polyline struct {
	pts   []Point
	knots []float64
}

var _ ParametricCurve[Point] = Polyline{}
var _ Invertible[Polyline] = Polyline{}
var _ ParameterTransformer[Polyline] = Polyline{}
var _ ParameterSearcher[Point] = Polyline{}
var _ Cutter[Polyline] = Polyline{}
var _ Concatter[Polyline] = Polyline{}

// DisjointCurvesError is returned by [Polyline.Concat] when the end of the
// first curve and the start of the second are geometrically apart.
type DisjointCurvesError struct {
	End   Point
	Start Point
}

func (err *DisjointCurvesError) Error() string {
	return fmt.Sprintf("brep: curve end %v and curve start %v are apart", err.End, err.Start)
}

// NewPolyline returns the polyline through pts with knots 0, 1, …, n−1.
// It panics if fewer than two points are given or their dimensions differ.
func NewPolyline(pts ...Point) Polyline {
	knots := make([]float64, len(pts))
	for i := range knots {
		knots[i] = float64(i)
	}
	return NewPolylineWithKnots(pts, knots)
}

// NewPolylineWithKnots returns the polyline through pts with the given
// knot vector. It panics if fewer than two points are given, the point
// dimensions differ, the lengths disagree, or the knots are not strictly
// increasing.
func NewPolylineWithKnots(pts []Point, knots []float64) Polyline {
	if len(pts) < 2 {
		panic("brep: polyline needs at least two points")
	}
	if len(pts) != len(knots) {
		panic("brep: polyline needs one knot per point")
	}
	for _, pt := range pts[1:] {
		sameDim(len(pts[0]), len(pt))
	}
	for i := 1; i < len(knots); i++ {
		if knots[i] <= knots[i-1] {
			panic("brep: polyline knots must be strictly increasing")
		}
	}
	return Polyline{pts: slices.Clone(pts), knots: slices.Clone(knots)}
}

// Points returns a copy of the polyline's points. The points share no
// storage with the curve.
func (p Polyline) Points() []Point {
	out := make([]Point, len(p.pts))
	for i, pt := range p.pts {
		out[i] = pt.Clone()
	}
	return out
}

// Knots returns a copy of the polyline's knot vector.
func (p Polyline) Knots() []float64 {
	return slices.Clone(p.knots)
}

func (p Polyline) ParameterRange() (float64, float64) {
	return p.knots[0], p.knots[len(p.knots)-1]
}

// segment returns the index i of the segment whose parameter interval
// [knots[i], knots[i+1]] contains t, clamped to the valid segments.
func (p Polyline) segment(t float64) int {
	i := sort.SearchFloat64s(p.knots, t)
	if i > 0 {
		i--
	}
	return min(i, len(p.pts)-2)
}

// Eval evaluates the polyline at parameter t. Parameters outside the range
// clamp to the endpoints.
func (p Polyline) Eval(t float64) Point {
	t0, t1 := p.ParameterRange()
	switch {
	case t <= t0:
		return p.pts[0].Clone()
	case t >= t1:
		return p.pts[len(p.pts)-1].Clone()
	}
	i := p.segment(t)
	u := (t - p.knots[i]) / (p.knots[i+1] - p.knots[i])
	return p.pts[i].Lerp(p.pts[i+1], u)
}

func (p Polyline) Front() Point { return p.pts[0].Clone() }
func (p Polyline) Back() Point  { return p.pts[len(p.pts)-1].Clone() }

// Inverse returns the polyline traversed backwards. The parameter range is
// preserved: the inverse evaluated at t equals the original evaluated at
// t0+t1−t.
func (p Polyline) Inverse() Polyline {
	n := len(p.pts)
	pts := make([]Point, n)
	knots := make([]float64, n)
	t0, t1 := p.ParameterRange()
	for i := range pts {
		pts[i] = p.pts[n-1-i]
		knots[i] = t0 + t1 - p.knots[n-1-i]
	}
	return Polyline{pts: pts, knots: knots}
}

// TransformParameter reparametrizes the polyline by t ↦ t·scale + shift.
// It panics if scale is not positive.
func (p Polyline) TransformParameter(scale, shift float64) Polyline {
	if scale <= 0 {
		panic("brep: parameter transform scale must be positive")
	}
	knots := make([]float64, len(p.knots))
	for i, k := range p.knots {
		knots[i] = k*scale + shift
	}
	return Polyline{pts: slices.Clone(p.pts), knots: knots}
}

// SearchParameter projects pt onto the polyline's segments and returns the
// parameter of the nearest projection, if the polyline passes near pt
// there. At most trials segments are examined; the segment suggested by
// hint, if any, is examined first.
func (p Polyline) SearchParameter(pt Point, hint *float64, trials int) (float64, bool) {
	first := 0
	if hint != nil {
		first = p.segment(*hint)
	}
	bestD := -1.0
	bestT := 0.0
	for k := 0; k < len(p.pts)-1 && k < trials; k++ {
		i := (first + k) % (len(p.pts) - 1)
		seg := Line{p.pts[i], p.pts[i+1]}
		d, u := seg.nearest(pt)
		if bestD < 0 || d < bestD {
			bestD = d
			bestT = p.knots[i] + u*(p.knots[i+1]-p.knots[i])
		}
	}
	if bestD < 0 || !p.Eval(bestT).Near(pt) {
		return 0, false
	}
	return bestT, true
}

// Cut splits the polyline at parameter t, which must lie in the interior
// of the parameter range and not within [Tolerance] of its ends; otherwise
// Cut panics, as one of the halves would be a degenerate curve. A cut
// within [Tolerance] of an interior knot splits at that knot's point
// without inserting a new one.
func (p Polyline) Cut(t float64) (front, back Polyline) {
	t0, t1 := p.ParameterRange()
	if t <= t0 || t >= t1 || Near(t, t0) || Near(t, t1) {
		panic("brep: cut parameter is not in the interior of the parameter range")
	}
	i := p.segment(t)
	j := -1
	switch {
	case Near(t, p.knots[i]):
		j = i
	case Near(t, p.knots[i+1]):
		j = i + 1
	}
	if j >= 0 {
		return Polyline{pts: slices.Clone(p.pts[:j+1]), knots: slices.Clone(p.knots[:j+1])},
			Polyline{pts: slices.Clone(p.pts[j:]), knots: slices.Clone(p.knots[j:])}
	}
	mid := p.Eval(t)
	front = Polyline{
		pts:   append(slices.Clone(p.pts[:i+1]), mid),
		knots: append(slices.Clone(p.knots[:i+1]), t),
	}
	back = Polyline{
		pts:   append([]Point{mid}, p.pts[i+1:]...),
		knots: append([]float64{t}, p.knots[i+1:]...),
	}
	return front, back
}

// Concat merges two polylines into one. The parameter range of rhs must
// begin where p's ends, and rhs must start where p ends geometrically;
// otherwise Concat fails, with a [DisjointCurvesError] in the geometric
// case. The junction keeps p's end point.
func (p Polyline) Concat(rhs Polyline) (Polyline, error) {
	_, t1 := p.ParameterRange()
	u0, _ := rhs.ParameterRange()
	if !Near(t1, u0) {
		return Polyline{}, fmt.Errorf("brep: parameter ranges meet at %g and %g, not contiguous", t1, u0)
	}
	if !p.Back().Near(rhs.Front()) {
		return Polyline{}, &DisjointCurvesError{End: p.Back(), Start: rhs.Front()}
	}
	return Polyline{
		pts:   append(slices.Clone(p.pts), rhs.pts[1:]...),
		knots: append(slices.Clone(p.knots), rhs.knots[1:]...),
	}, nil
}
