package brep

import "testing"

func TestVertexIdentity(t *testing.T) {
	v0 := NewVertex(Pt(0, 0))
	v1 := NewVertex(Pt(0, 0))

	// Numerically equal points don't make the same vertex.
	if v0 == v1 || v0.Same(v1) {
		t.Error("separately constructed vertices should be distinct")
	}
	if v0.ID() == v1.ID() {
		t.Error("separately constructed vertices should have distinct IDs")
	}

	// A copied handle is the same vertex.
	v2 := v0
	if v2 != v0 || !v2.Same(v0) || v2.ID() != v0.ID() {
		t.Error("a copied handle should be the same vertex")
	}
}

func TestVertexSharedMutation(t *testing.T) {
	v0 := NewVertex(Pt(1, 2))
	v1 := v0

	v0.SetPoint(Pt(3, 4))
	diff(t, Pt(3, 4), v1.Point())
	v1.SetPoint(Pt(5, 6))
	diff(t, Pt(5, 6), v0.Point())
}

func TestVertexAsMapKey(t *testing.T) {
	v := NewVertices(Pt(0, 0), Pt(1, 1), Pt(2, 2))
	seen := map[Vertex[Point]]int{}
	for i, vv := range v {
		seen[vv] = i
	}
	clone := v[1]
	clone.SetPoint(Pt(9, 9))
	if got := seen[clone]; got != 1 {
		t.Errorf("got %d, want 1; identity must not depend on the payload value", got)
	}
	if len(seen) != 3 {
		t.Errorf("got %d distinct keys, want 3", len(seen))
	}
}
