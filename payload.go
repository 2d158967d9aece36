package brep

import (
	"sync"
	"sync/atomic"
)

// lastID is the source of all entity identities. Truck derives identity
// from the payload's Arc pointer; a monotonic counter gives the same
// uniqueness guarantee without depending on allocator behavior, and the
// token stays meaningful if entities are ever serialized.
var lastID atomic.Uint64

// payload is the shared, mutable geometric content behind an entity handle.
// Every handle referencing the same payload observes the same value, and
// the identity is fixed for the payload's lifetime. The mutex guards every
// read and write, so no reader ever observes a partially written value.
//
// Operations touching two payloads lock them one after the other, never
// both at once. That rules out cross-payload deadlock, at the cost of such
// operations not being atomic across the pair; coordinating concurrent
// mutation of a whole shape is the caller's concern.
type payload[T any] struct {
	id uint64
	mu sync.Mutex
	v  T
}

func newPayload[T any](v T) *payload[T] {
	return &payload[T]{id: lastID.Add(1), v: v}
}

func (p *payload[T]) get() T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.v
}

func (p *payload[T]) set(v T) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.v = v
}

// VertexID identifies a vertex payload. All handles for the same payload
// share the ID; it is never reused.
type VertexID uint64

// EdgeID identifies an edge's curve payload. An edge and its inverse share
// the ID; it is never reused.
type EdgeID uint64
