package brep

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// affines compares Affine values by their effect, since the fields are
// unexported.
func affines(a, b Affine) bool { return a.Near(b) }

func TestAffineApply(t *testing.T) {
	id := IdentityAffine(3)
	diff(t, Pt(1, 2, 3), id.Apply(Pt(1, 2, 3)))

	s := ScaleAffine(2, 3)
	diff(t, Pt(3, -6), s.Apply(Pt(1, -2)))
	diff(t, V(3, -6), s.ApplyVec(V(1, -2)))

	tr := TranslateAffine(V(1, 1))
	diff(t, Pt(2, 3), tr.Apply(Pt(1, 2)))
	// Translation doesn't affect displacements.
	diff(t, V(1, 2), tr.ApplyVec(V(1, 2)))

	// Rotation by 90° in the plane.
	rot := NewAffine([]float64{0, -1, 1, 0}, V(0, 0))
	diff(t, Pt(-2, 1), rot.Apply(Pt(1, 2)))
}

func TestAffineMul(t *testing.T) {
	s := ScaleAffine(2, 2)
	tr := TranslateAffine(V(1, 0))

	// s∘tr scales after translating; tr∘s translates after scaling.
	diff(t, Pt(4, 2), s.Mul(tr).Apply(Pt(1, 1)))
	diff(t, Pt(3, 2), tr.Mul(s).Apply(Pt(1, 1)))

	if !s.Mul(tr).Near(s.Mul(tr)) || s.Mul(tr).Near(tr.Mul(s)) {
		t.Error("Near on transforms misbehaves")
	}
}

func TestAffineBBox(t *testing.T) {
	b := NewBBoxFromPoints(Pt(0, 0), Pt(1, 2))
	rot := NewAffine([]float64{0, -1, 1, 0}, V(0, 0))
	got := rot.ApplyBBox(b)
	diff(t, NewBBoxFromPoints(Pt(-2, 0), Pt(0, 1)), got, cmpopts.EquateApprox(0, 1e-15))
}

func TestAffineRoundByTolerance(t *testing.T) {
	a := NewAffine([]float64{1.23456789, 0, 0, 1}, V(7.7, 0))
	r := a.RoundByTolerance()
	if !cmp.Equal(r, r.RoundByTolerance(), cmp.Comparer(affines)) {
		t.Error("rounding a transform is not idempotent")
	}
	diff(t, RoundByTolerance(7.7), r.t[0])
	diff(t, RoundByTolerance(1.23456789), r.m[0])
}
