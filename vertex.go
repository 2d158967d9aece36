package brep

import "fmt"

// Vertex is a point entity: an identity plus a shared, mutable point
// payload of type P. A Vertex value is a handle; copying it yields a second
// handle to the same payload, not a second vertex. The == operator compares
// handles by identity, so vertices work directly as map keys.
//
// Two distinct vertices with numerically equal points are still different
// vertices; unifying near-coincident vertices is a modeling decision left
// to the caller.
type Vertex[P any] struct {
	point *payload[P]
}

// NewVertex creates a new vertex with its own identity holding pt.
func NewVertex[P any](pt P) Vertex[P] {
	return Vertex[P]{point: newPayload(pt)}
}

// NewVertices creates one new vertex per point.
func NewVertices[P any](pts ...P) []Vertex[P] {
	out := make([]Vertex[P], len(pts))
	for i, pt := range pts {
		out[i] = NewVertex(pt)
	}
	return out
}

// Point returns the current value of the point payload. For payload types
// with reference semantics, such as [Point], mutate through [Vertex.SetPoint]
// rather than writing to the returned value in place; in-place writes bypass
// the payload lock.
func (v Vertex[P]) Point() P {
	return v.point.get()
}

// SetPoint overwrites the point payload. The change is observed by every
// handle sharing the payload.
func (v Vertex[P]) SetPoint(pt P) {
	v.point.set(pt)
}

// ID returns the vertex's identity token.
func (v Vertex[P]) ID() VertexID {
	return VertexID(v.point.id)
}

// Same reports whether two handles refer to the same vertex. It is
// equivalent to v == o.
func (v Vertex[P]) Same(o Vertex[P]) bool {
	return v.point == o.point
}

func (v Vertex[P]) String() string {
	return fmt.Sprintf("Vertex#%d%v", v.point.id, v.point.get())
}
