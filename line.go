package brep

// Line is a line segment parametrized over [0, 1]. It is the simplest
// curve payload: it can be evaluated, reversed, searched, and cut, but two
// lines cannot merge into one line, so Line implements neither [Concatter]
// nor [ParameterTransformer] — edges carrying lines support [Cut] but not
// [Concat], and the compiler enforces it.
type Line struct {
	P0 Point
	P1 Point
}

var _ ParametricCurve[Point] = Line{}
var _ Invertible[Line] = Line{}
var _ ParameterSearcher[Point] = Line{}
var _ Cutter[Line] = Line{}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) ParameterRange() (float64, float64) {
	return 0, 1
}

func (l Line) Front() Point { return l.P0 }
func (l Line) Back() Point  { return l.P1 }

func (l Line) Inverse() Line {
	return Line{l.P1, l.P0}
}

// nearest returns the parameter of the point on the line nearest to pt, by
// orthogonal projection clamped to the segment, and the squared distance
// there.
func (l Line) nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	switch {
	case dotp <= 0:
		t = 0
	case dotp >= dSquared:
		t = 1
	default:
		t = dotp / dSquared
	}
	return l.Eval(t).DistanceSquared(pt), t
}

// SearchParameter finds the parameter of the point on the line nearest to
// pt, by orthogonal projection, and reports whether the line passes near
// pt there. The projection is exact, so hint and trials are unused.
func (l Line) SearchParameter(pt Point, hint *float64, trials int) (float64, bool) {
	_, t := l.nearest(pt)
	if !l.Eval(t).Near(pt) {
		return 0, false
	}
	return t, true
}

// Cut splits the line at parameter t. Both halves are reparametrized over
// [0, 1].
func (l Line) Cut(t float64) (front, back Line) {
	mid := l.Eval(t)
	return Line{l.P0, mid}, Line{mid, l.P1}
}
