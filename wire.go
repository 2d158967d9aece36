package brep

import (
	"iter"
	"slices"
)

// Wire is an ordered list of edges, the structural extension of [Edge] one
// level up: a candidate boundary loop for a surface patch. A Wire imposes
// nothing on the edges it holds — build it in any order and ask
// [Wire.IsContinuous] or [Wire.IsClosed] afterwards.
//
// Unlike Vertex and Edge, a Wire is a plain value, not a shared handle:
// copying a Wire with [Wire.Clone] yields an independent edge list over
// the same shared edges.
type Wire[P, C any] struct {
	edges []Edge[P, C]
}

// NewWire returns a wire over the given edges.
func NewWire[P, C any](edges ...Edge[P, C]) Wire[P, C] {
	return Wire[P, C]{edges: slices.Clone(edges)}
}

// Clone returns a wire with its own copy of the edge list.
func (w Wire[P, C]) Clone() Wire[P, C] {
	return Wire[P, C]{edges: slices.Clone(w.edges)}
}

// Len returns the number of edges in the wire.
func (w Wire[P, C]) Len() int {
	return len(w.edges)
}

// At returns the i-th edge of the wire.
func (w Wire[P, C]) At(i int) Edge[P, C] {
	return w.edges[i]
}

// PushBack appends edges to the end of the wire.
func (w *Wire[P, C]) PushBack(edges ...Edge[P, C]) {
	w.edges = append(w.edges, edges...)
}

// PushFront prepends edges to the start of the wire.
func (w *Wire[P, C]) PushFront(edges ...Edge[P, C]) {
	w.edges = append(slices.Clone(edges), w.edges...)
}

// Edges returns an iterator over the edges of the wire, in order.
func (w Wire[P, C]) Edges() iter.Seq[Edge[P, C]] {
	return func(yield func(Edge[P, C]) bool) {
		for _, e := range w.edges {
			if !yield(e) {
				return
			}
		}
	}
}

// Vertices returns an iterator over the vertices along the wire: every
// edge's front vertex, then the last edge's back vertex. For a closed wire
// the first and last yielded vertex are the same vertex.
func (w Wire[P, C]) Vertices() iter.Seq[Vertex[P]] {
	return func(yield func(Vertex[P]) bool) {
		for _, e := range w.edges {
			if !yield(e.Front()) {
				return
			}
		}
		if len(w.edges) > 0 {
			yield(w.edges[len(w.edges)-1].Back())
		}
	}
}

// FrontVertex returns the front vertex of the first edge. ok is false for
// the empty wire.
func (w Wire[P, C]) FrontVertex() (_ Vertex[P], ok bool) {
	if len(w.edges) == 0 {
		return Vertex[P]{}, false
	}
	return w.edges[0].Front(), true
}

// BackVertex returns the back vertex of the last edge. ok is false for the
// empty wire.
func (w Wire[P, C]) BackVertex() (_ Vertex[P], ok bool) {
	if len(w.edges) == 0 {
		return Vertex[P]{}, false
	}
	return w.edges[len(w.edges)-1].Back(), true
}

// IsContinuous reports whether every edge ends at the vertex the next edge
// starts from. Vertices are compared by identity, not geometrically. The
// empty wire is continuous.
func (w Wire[P, C]) IsContinuous() bool {
	for i := 1; i < len(w.edges); i++ {
		if w.edges[i-1].Back() != w.edges[i].Front() {
			return false
		}
	}
	return true
}

// IsClosed reports whether the wire is a non-empty continuous loop: the
// last edge ends at the vertex the first edge starts from.
func (w Wire[P, C]) IsClosed() bool {
	if len(w.edges) == 0 {
		return false
	}
	return w.IsContinuous() && w.edges[len(w.edges)-1].Back() == w.edges[0].Front()
}

// Invert reverses the wire in place: the edge order flips and every edge
// handle is inverted. The underlying edges themselves are not mutated.
func (w *Wire[P, C]) Invert() {
	slices.Reverse(w.edges)
	for i := range w.edges {
		w.edges[i] = w.edges[i].Inverse()
	}
}

// Inverse returns the reversed wire, leaving w untouched.
func (w Wire[P, C]) Inverse() Wire[P, C] {
	out := w.Clone()
	out.Invert()
	return out
}
