package brep

// The capability contracts the kernel requires of curve payloads. They are
// deliberately small: an edge algorithm names exactly the capabilities it
// uses, and a curve type implements exactly the capabilities it has. [Line]
// for instance cannot be merged, so it simply does not implement
// [Concatter], and [Concat] on edges carrying lines fails to compile
// rather than failing at runtime.

// SearchParameterTrials is the trial budget edge algorithms grant
// [ParameterSearcher.SearchParameter]. The search is bounded by a count,
// not a timeout.
const SearchParameterTrials = 100

// ParametricCurve describes a curve parametrized by a scalar, evaluating to
// points of type P.
type ParametricCurve[P any] interface {
	// Eval evaluates the curve at parameter t.
	Eval(t float64) P
	// ParameterRange returns the parameter interval the curve is defined
	// on.
	ParameterRange() (t0, t1 float64)
	// Front evaluates the curve at the start of its parameter range.
	Front() P
	// Back evaluates the curve at the end of its parameter range.
	Back() P
}

// DifferentiableCurve is an optional interface implemented by curves that
// can evaluate their first and second derivatives, as displacements of
// type V.
type DifferentiableCurve[V any] interface {
	Deriv(t float64) V
	Deriv2(t float64) V
}

// Invertible describes curves that can produce a direction-reversed copy.
type Invertible[C any] interface {
	// Inverse returns the curve traversed in the opposite direction. The
	// parameter range is preserved.
	Inverse() C
}

// ParameterTransformer describes curves that can be reparametrized by an
// affine map of the parameter: t ↦ t·scale + shift.
//
// Truck applies the transform in place; here the transformed curve is
// returned, keeping curve values immutable. scale must be positive;
// reversing direction is [Invertible]'s job.
type ParameterTransformer[C any] interface {
	TransformParameter(scale, shift float64) C
}

// ParameterSearcher describes curves that can search for the parameter
// mapping to a given point.
type ParameterSearcher[P any] interface {
	// SearchParameter returns a parameter t with Eval(t) near pt, if one
	// is found within at most trials trials. hint, if non-nil, is a
	// starting guess.
	SearchParameter(pt P, hint *float64, trials int) (t float64, ok bool)
}

// Cutter describes curves that can be split at a parameter into a front
// part and a back part.
type Cutter[C any] interface {
	Cut(t float64) (front, back C)
}

// Concatter describes curves that can attempt to merge with a following
// curve into one. The merge fails with a curve-specific error if the two
// geometries are disjoint or otherwise incompatible; the kernel wraps that
// error without inspecting it.
type Concatter[C any] interface {
	Concat(rhs C) (C, error)
}
