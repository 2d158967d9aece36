package brep

import "testing"

func TestBBox(t *testing.T) {
	b := NewBBoxFromPoints(Pt(3, 1, 0), Pt(0, 2, -1))
	diff(t, Pt(0, 1, -1), b.Min)
	diff(t, Pt(3, 2, 0), b.Max)
	if b.IsEmpty() {
		t.Error("box around two points shouldn't be empty")
	}

	b = b.UnionPoint(Pt(-1, 5, 0))
	diff(t, Pt(-1, 1, -1), b.Min)
	diff(t, Pt(3, 5, 0), b.Max)

	o := NewBBoxFromPoints(Pt(10, 0, 0), Pt(10, 1, 1))
	u := b.Union(o)
	diff(t, Pt(-1, 0, -1), u.Min)
	diff(t, Pt(10, 5, 1), u.Max)

	diff(t, Pt(1, 3, -0.5), b.Center())
	diff(t, V(4, 4, 1), b.Diagonal())
	if got := b.MaxSide(); got != 4 {
		t.Errorf("got max side %v, want 4", got)
	}

	if !b.Contains(Pt(0, 2, -0.5)) || !b.Contains(b.Min) || b.Contains(Pt(4, 2, 0)) {
		t.Error("Contains misbehaves")
	}
}

func TestEmptyBBox(t *testing.T) {
	b := EmptyBBox(2)
	if !b.IsEmpty() {
		t.Error("the empty box should be empty")
	}
	if b.Contains(Pt(0, 0)) {
		t.Error("the empty box shouldn't contain anything")
	}

	// The empty box is the identity of Union.
	o := NewBBoxFromPoints(Pt(1, 2), Pt(3, 4))
	diff(t, o, b.Union(o))
	diff(t, o, b.UnionPoint(Pt(1, 2)).UnionPoint(Pt(3, 4)))
}
