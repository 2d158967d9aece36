package brep

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRationalProjection(t *testing.T) {
	diff(t, V(4, 2, 3), V(8, 4, 6, 2).RationalProjection())

	// A weight below tolerance projects to the origin instead of blowing
	// up.
	diff(t, V(0, 0, 0), V(8, 4, 6, Tolerance/2).RationalProjection())
}

func TestRationalDerivative(t *testing.T) {
	// The curve c(t) = (t², t³, t⁴, t) projects to (t, t², t³), whose
	// derivative is (1, 2t, 3t²). Evaluate at t = 1.5.
	tt := 1.5
	pt := V(tt*tt, tt*tt*tt, tt*tt*tt*tt, tt)
	der := V(2*tt, 3*tt*tt, 4*tt*tt*tt, 1)
	diff(t, V(1, 2*tt, 3*tt*tt), pt.RationalDerivative(der))
}

func TestRationalDerivative2(t *testing.T) {
	// Same curve as above; the projected second derivative is (0, 2, 6t).
	tt := 1.5
	pt := V(tt*tt, tt*tt*tt, tt*tt*tt*tt, tt)
	der := V(2*tt, 3*tt*tt, 4*tt*tt*tt, 1)
	der2 := V(2, 6*tt, 12*tt*tt, 0)
	diff(t, V(0, 2, 6*tt), pt.RationalDerivative2(der, der2), cmpopts.EquateApprox(0, 1e-10))
}

func TestRationalCrossDerivative(t *testing.T) {
	// The surface s(u, v) = (u³v², u²v³, uv, u) projects to (u²v², uv³, v),
	// whose mixed partial ∂²/∂u∂v is (4uv, 3v², 0). Evaluate at (1, 2).
	u, v := 1.0, 2.0
	pt := V(u*u*u*v*v, u*u*v*v*v, u*v, u)
	uder := V(3*u*u*v*v, 2*u*v*v*v, v, 1)
	vder := V(2*u*u*u*v, 3*u*u*v*v, u, 0)
	uvder := V(6*u*u*v, 6*u*v*v, 1, 0)
	diff(t, V(4*u*v, 3*v*v, 0), pt.RationalCrossDerivative(uder, vder, uvder), cmpopts.EquateApprox(0, 1e-10))
}

func TestTruncateLast(t *testing.T) {
	v := V(1, 2, 3, 4)
	diff(t, V(1, 2, 3), v.Truncate())
	if got := v.Last(); got != 4 {
		t.Errorf("got last component %v, want 4", got)
	}

	// Truncate returns fresh storage; mutating it must not affect v.
	tr := v.Truncate()
	tr[0] = 100
	diff(t, V(1, 2, 3, 4), v)
}
