package brep

import (
	"errors"
	"fmt"
)

// ErrSameVertex is returned by [NewEdge] when the front and back vertex are
// the same vertex.
var ErrSameVertex = errors.New("brep: edge endpoints are the same vertex")

// DisconnectedError is returned by [Concat] when the back of the first edge
// is not the front of the second. It carries both offending handles for
// diagnostics.
type DisconnectedError[P any] struct {
	Back  Vertex[P]
	Front Vertex[P]
}

func (err *DisconnectedError[P]) Error() string {
	return fmt.Sprintf("brep: back vertex %v of the first edge is not the front vertex %v of the second edge", err.Back, err.Front)
}

// Edge is a directed curve-segment entity: two vertex handles, an
// orientation flag, and a shared, mutable curve payload of type C. Like
// [Vertex], an Edge value is a handle; copying it shares the payload and
// the vertex handles.
//
// The vertex pair is fixed at construction. Only the orientation flag and
// the curve payload change afterwards, and inverting an edge flips
// orientation alone — the inverse shares the original's payload and
// identity. The == operator compares payload identity, vertex handles, and
// orientation, so an edge and its inverse are unequal by == but the same
// entity by [Edge.Same].
type Edge[P, C any] struct {
	verts       [2]Vertex[P]
	orientation bool
	curve       *payload[C]
}

// NewEdge creates a new edge from front to back along curve. It fails with
// [ErrSameVertex] if front and back are the same vertex.
func NewEdge[P, C any](front, back Vertex[P], curve C) (Edge[P, C], error) {
	if front == back {
		return Edge[P, C]{}, ErrSameVertex
	}
	return NewEdgeUnchecked(front, back, curve), nil
}

// MustNewEdge is like [NewEdge] but panics if front and back are the same
// vertex. Use it when distinct endpoints are a construction invariant of
// the caller.
func MustNewEdge[P, C any](front, back Vertex[P], curve C) Edge[P, C] {
	e, err := NewEdge(front, back, curve)
	if err != nil {
		panic(err)
	}
	return e
}

// NewEdgeUnchecked creates an edge without checking that front and back are
// distinct vertices. The caller must guarantee the condition; an edge whose
// endpoints are the same vertex violates the kernel's invariants and later
// operations on it misbehave. Prefer [NewEdge] outside of
// performance-critical paths.
func NewEdgeUnchecked[P, C any](front, back Vertex[P], curve C) Edge[P, C] {
	return Edge[P, C]{
		verts:       [2]Vertex[P]{front, back},
		orientation: true,
		curve:       newPayload(curve),
	}
}

// NewEdgeDebug checks the endpoint condition only when the package is built
// with the brepdebug build tag, and otherwise behaves like
// [NewEdgeUnchecked]. The kernel's own algorithms use it where the
// condition already holds by construction.
func NewEdgeDebug[P, C any](front, back Vertex[P], curve C) Edge[P, C] {
	if debugChecks {
		return MustNewEdge(front, back, curve)
	}
	return NewEdgeUnchecked(front, back, curve)
}

// Orientation reports whether the edge is traversed in its construction
// direction.
func (e Edge[P, C]) Orientation() bool {
	return e.orientation
}

// Invert flips the direction of the edge in place. The curve payload and
// the vertex pair are untouched.
func (e *Edge[P, C]) Invert() {
	e.orientation = !e.orientation
}

// Inverse returns a handle to the same edge with the opposite orientation.
// The result is the same entity as e ([Edge.Same] reports true and the IDs
// agree) but differs from it by ==.
func (e Edge[P, C]) Inverse() Edge[P, C] {
	e.orientation = !e.orientation
	return e
}

// Front returns the vertex the edge is currently directed away from.
func (e Edge[P, C]) Front() Vertex[P] {
	if e.orientation {
		return e.verts[0]
	}
	return e.verts[1]
}

// Back returns the vertex the edge is currently directed towards.
func (e Edge[P, C]) Back() Vertex[P] {
	if e.orientation {
		return e.verts[1]
	}
	return e.verts[0]
}

// Ends returns the current front and back vertices.
func (e Edge[P, C]) Ends() (front, back Vertex[P]) {
	return e.Front(), e.Back()
}

// AbsoluteFront returns the front vertex the edge was constructed with,
// regardless of the current orientation.
func (e Edge[P, C]) AbsoluteFront() Vertex[P] {
	return e.verts[0]
}

// AbsoluteBack returns the back vertex the edge was constructed with,
// regardless of the current orientation.
func (e Edge[P, C]) AbsoluteBack() Vertex[P] {
	return e.verts[1]
}

// AbsoluteEnds returns the construction-time vertex pair.
func (e Edge[P, C]) AbsoluteEnds() (front, back Vertex[P]) {
	return e.verts[0], e.verts[1]
}

// Same reports whether two handles refer to the same edge, regardless of
// orientation. An edge, its clones, and its inverse are all the same edge;
// two edges constructed separately never are, even over equal geometry.
func (e Edge[P, C]) Same(o Edge[P, C]) bool {
	return e.curve == o.curve
}

// ID returns the edge's identity token. It is derived from the curve
// payload, so it does not depend on orientation.
func (e Edge[P, C]) ID() EdgeID {
	return EdgeID(e.curve.id)
}

// Curve returns the current value of the curve payload in its construction
// direction, ignoring the edge's orientation. Use [OrientedCurve] for a
// curve matching the direction the edge is currently traversed in.
func (e Edge[P, C]) Curve() C {
	return e.curve.get()
}

// SetCurve overwrites the curve payload. The change is observed by every
// handle sharing the payload.
func (e Edge[P, C]) SetCurve(curve C) {
	e.curve.set(curve)
}

func (e Edge[P, C]) String() string {
	dir := "→"
	if !e.orientation {
		dir = "←"
	}
	return fmt.Sprintf("Edge#%d(%v %s %v)", e.curve.id, e.verts[0], dir, e.verts[1])
}

// OrientedCurve returns the curve payload directed the way the edge is
// currently traversed: the absolute curve if the orientation flag is set,
// its inverse otherwise.
func OrientedCurve[P any, C Invertible[C]](e Edge[P, C]) C {
	c := e.Curve()
	if e.orientation {
		return c
	}
	return c.Inverse()
}

// GeometricallyConsistent reports whether the curve payload's endpoints
// evaluate near the points of the edge's absolute front and back vertices.
// It is a sanity probe; nothing in the kernel enforces it.
//
// The curve payload and the two vertex payloads are read one after the
// other, not under a common lock.
func GeometricallyConsistent[P interface{ Near(P) bool }, C ParametricCurve[P]](e Edge[P, C]) bool {
	c := e.Curve()
	return c.Front().Near(e.AbsoluteFront().Point()) &&
		c.Back().Near(e.AbsoluteBack().Point())
}

// Cut splits the edge at pt. It searches the curve payload for the
// parameter mapping to pt (at most [SearchParameterTrials] trials); if none
// is found, or the found parameter is within [Tolerance] of an end of the
// parameter range (one of the halves would be a degenerate edge), ok is
// false. Otherwise the curve is split there, one new vertex is created at
// the split point, and two new edges are returned running absolute-front →
// vertex → absolute-back. The original edge is not mutated.
func Cut[P any, C interface {
	ParametricCurve[P]
	ParameterSearcher[P]
	Cutter[C]
}](e Edge[P, C], pt P) (front, back Edge[P, C], ok bool) {
	c := e.Curve()
	t, ok := c.SearchParameter(pt, nil, SearchParameterTrials)
	if !ok {
		return Edge[P, C]{}, Edge[P, C]{}, false
	}
	if t0, t1 := c.ParameterRange(); Near(t, t0) || Near(t, t1) {
		return Edge[P, C]{}, Edge[P, C]{}, false
	}
	c0, c1 := c.Cut(t)
	v := NewVertex(c0.Back())
	return NewEdgeDebug(e.AbsoluteFront(), v, c0),
		NewEdgeDebug(v, e.AbsoluteBack(), c1),
		true
}

// Concat merges two edges meeting at a shared vertex into one new edge
// from e0.Front() to e1.Back().
//
// The connectivity requirement is oriented: e0.Back() must be the same
// vertex as e1.Front(), as the edges are currently traversed. Otherwise
// Concat fails with a [DisconnectedError] naming both vertices. The two
// oriented curves are lined up by shifting e1's parameter range to start
// where e0's ends, then merged by [Concatter.Concat]; a merge failure is
// returned wrapped.
func Concat[P any, C interface {
	ParametricCurve[P]
	Invertible[C]
	ParameterTransformer[C]
	Concatter[C]
}](e0, e1 Edge[P, C]) (Edge[P, C], error) {
	if e0.Back() != e1.Front() {
		return Edge[P, C]{}, &DisconnectedError[P]{Back: e0.Back(), Front: e1.Front()}
	}
	c0 := OrientedCurve(e0)
	c1 := OrientedCurve(e1)
	_, t0 := c0.ParameterRange()
	t1, _ := c1.ParameterRange()
	c1 = c1.TransformParameter(1, t0-t1)
	c, err := c0.Concat(c1)
	if err != nil {
		return Edge[P, C]{}, fmt.Errorf("brep: concatenating curves: %w", err)
	}
	return NewEdgeDebug(e0.Front(), e1.Back(), c), nil
}
