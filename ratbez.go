package brep

import (
	"math"
	"slices"
)

// RatBez is a rational Bézier curve parametrized over [0, 1], described by
// homogeneous control points: to model a curve in n-dimensional space, the
// control points have dimension n+1, with the last component the weight.
// Evaluation runs de Casteljau's algorithm in homogeneous space and
// projects the result; the derivatives route through the rational
// projective calculus (see [Vec.RationalDerivative]).
//
// RatBez cannot merge with another Bézier, so like [Line] it implements
// neither [Concatter] nor [ParameterTransformer].
type RatBez struct {
	ctrl []Vec
}

var _ ParametricCurve[Point] = RatBez{}
var _ DifferentiableCurve[Vec] = RatBez{}
var _ Invertible[RatBez] = RatBez{}
var _ ParameterSearcher[Point] = RatBez{}
var _ Cutter[RatBez] = RatBez{}

// NewRatBez returns the rational Bézier with the given homogeneous control
// points. It panics if fewer than two control points are given or their
// dimensions differ.
func NewRatBez(ctrl ...Vec) RatBez {
	if len(ctrl) < 2 {
		panic("brep: rational Bézier needs at least two control points")
	}
	for _, c := range ctrl[1:] {
		sameDim(len(ctrl[0]), len(c))
	}
	return RatBez{ctrl: slices.Clone(ctrl)}
}

// Degree returns the degree of the curve, one less than the number of
// control points.
func (rb RatBez) Degree() int {
	return len(rb.ctrl) - 1
}

// ControlPoints returns a copy of the homogeneous control points.
func (rb RatBez) ControlPoints() []Vec {
	return slices.Clone(rb.ctrl)
}

// deCasteljau evaluates the Bézier with the given control points at t.
func deCasteljau(ctrl []Vec, t float64) Vec {
	work := slices.Clone(ctrl)
	for n := len(work) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			work[i] = work[i].Lerp(work[i+1], t)
		}
	}
	return work[0]
}

// hodograph returns the control points of the derivative curve.
func hodograph(ctrl []Vec) []Vec {
	n := float64(len(ctrl) - 1)
	out := make([]Vec, len(ctrl)-1)
	for i := range out {
		out[i] = ctrl[i+1].Sub(ctrl[i]).Mul(n)
	}
	return out
}

func (rb RatBez) ParameterRange() (float64, float64) {
	return 0, 1
}

func (rb RatBez) Eval(t float64) Point {
	return Point(deCasteljau(rb.ctrl, t).RationalProjection())
}

func (rb RatBez) Front() Point { return rb.Eval(0) }
func (rb RatBez) Back() Point  { return rb.Eval(1) }

// Deriv returns the first derivative of the projected curve at t.
func (rb RatBez) Deriv(t float64) Vec {
	v := deCasteljau(rb.ctrl, t)
	der := deCasteljau(hodograph(rb.ctrl), t)
	return v.RationalDerivative(der)
}

// Deriv2 returns the second derivative of the projected curve at t.
func (rb RatBez) Deriv2(t float64) Vec {
	v := deCasteljau(rb.ctrl, t)
	h1 := hodograph(rb.ctrl)
	der := deCasteljau(h1, t)
	der2 := make(Vec, len(rb.ctrl[0]))
	if len(h1) > 1 {
		der2 = deCasteljau(hodograph(h1), t)
	}
	return v.RationalDerivative2(der, der2)
}

// Inverse returns the curve with reversed control points.
func (rb RatBez) Inverse() RatBez {
	out := make([]Vec, len(rb.ctrl))
	for i, c := range rb.ctrl {
		out[len(out)-1-i] = c
	}
	return RatBez{ctrl: out}
}

// Cut splits the curve at parameter t by de Casteljau subdivision. Both
// halves are reparametrized over [0, 1].
func (rb RatBez) Cut(t float64) (front, back RatBez) {
	work := slices.Clone(rb.ctrl)
	left := make([]Vec, 0, len(work))
	right := make([]Vec, 0, len(work))
	for {
		left = append(left, work[0])
		right = append(right, work[len(work)-1])
		if len(work) == 1 {
			break
		}
		for i := 0; i < len(work)-1; i++ {
			work[i] = work[i].Lerp(work[i+1], t)
		}
		work = work[:len(work)-1]
	}
	slices.Reverse(right)
	return RatBez{ctrl: left}, RatBez{ctrl: right}
}

// searchSeedSamples is the number of uniform samples used to seed the
// Newton iteration when no hint is given.
const searchSeedSamples = 16

// SearchParameter searches for the parameter mapping to pt by Newton
// iteration on the distance function, spending at most trials iterations.
// Without a hint, the iteration starts from the best of a few uniform
// samples. It fails if the iteration does not land near pt.
func (rb RatBez) SearchParameter(pt Point, hint *float64, trials int) (float64, bool) {
	var t float64
	if hint != nil {
		t = *hint
	} else {
		bestD := math.Inf(1)
		for i := 0; i <= searchSeedSamples; i++ {
			s := float64(i) / searchSeedSamples
			if d := rb.Eval(s).DistanceSquared(pt); d < bestD {
				bestD = d
				t = s
			}
		}
	}
	for i := 0; i < trials; i++ {
		d := rb.Eval(t).Sub(pt)
		der := rb.Deriv(t)
		// Stationary points of the squared distance satisfy d·c' = 0.
		g := d.Dot(der)
		gp := der.Dot(der) + d.Dot(rb.Deriv2(t))
		if SoSmall2(gp) {
			break
		}
		next := min(1, max(0, t-g/gp))
		if math.Abs(next-t) <= 1e-14 {
			t = next
			break
		}
		t = next
	}
	if !rb.Eval(t).Near(pt) {
		return 0, false
	}
	return t, true
}
