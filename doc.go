// Package brep provides the topological core of a boundary-representation
// (B-rep) modeling kernel: vertices, directed edges, and wires whose
// geometric payload (points and parametric curves) is supplied by a
// separate math layer and shared between all handles that reference it.
//
// # Truck
//
// This package is a manual, idiomatic Go port of the topology and
// geometric-trait layers of the [truck] Rust CAD kernel. It keeps truck's
// separation between topological identity (which entities are the same
// entity, traversable in which direction) and geometric payload (the actual
// curve and point data), while replacing Rust-specific mechanisms such as
// pointer-address identity, macro-generated fixed-arity vector impls, and
// cfg(debug_assertions) with their Go equivalents.
//
// # Topology and geometry
//
// A [Vertex] is an identity plus a shared, mutable point; an [Edge] is an
// identity plus a shared, mutable curve, two vertex handles, and an
// orientation flag. Copying a handle never copies the payload: mutations
// through one handle are observed by all others, and handles compare equal
// by identity, not by payload value. See [Vertex.Same] and [Edge.Same].
//
// The payload types are the caller's choice. Edge algorithms only require
// the capabilities they use, expressed as small interfaces: [ParametricCurve]
// for evaluation, [Invertible] for direction reversal, [Cutter] and
// [Concatter] for splitting and merging, [ParameterSearcher] for point
// inversion, and [ParameterTransformer] for affine reparametrization. The
// package ships three curves implementing various subsets of these: [Line],
// [Polyline], and the rational Bézier [RatBez].
//
// # Coordinates and tolerances
//
// Points and vectors are float64 slices of arbitrary dimension, so a single
// implementation serves planar, spatial, and homogeneous (rational)
// coordinates alike; see [Vec.RationalProjection] and friends for the NURBS
// derivative calculus. All floating-point comparisons in the kernel go
// through the fixed [Tolerance] bands; see [Near] and [RoundByTolerance].
//
// [truck]: https://github.com/ricosjp/truck
package brep
