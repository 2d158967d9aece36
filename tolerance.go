package brep

import "math"

// Tolerance is the distance below which two coordinates are considered
// numerically indistinguishable. It is fixed for the whole kernel so that
// endpoint checks, parameter searches and deduplication all agree on what
// "equal" means.
const Tolerance = 1.0e-7

// Tolerance2 is the square of [Tolerance], for comparing squared distances
// without taking a square root.
const Tolerance2 = Tolerance * Tolerance

// Near reports whether a and b differ by at most [Tolerance]. The boundary
// is inclusive: values exactly Tolerance apart are near.
func Near(a, b float64) bool {
	return math.Abs(a-b) <= Tolerance
}

// Near2 reports whether a and b differ by at most [Tolerance2].
func Near2(a, b float64) bool {
	return math.Abs(a-b) <= Tolerance2
}

// SoSmall reports whether x is within [Tolerance] of zero.
func SoSmall(x float64) bool {
	return math.Abs(x) <= Tolerance
}

// SoSmall2 reports whether x is within [Tolerance2] of zero.
func SoSmall2(x float64) bool {
	return math.Abs(x) <= Tolerance2
}

// RoundByTolerance snaps x down to the nearest multiple of [Tolerance].
// It canonicalizes near-equal values so that downstream hashing and
// deduplication of geometry is stable. It is idempotent.
func RoundByTolerance(x float64) float64 {
	return math.Floor(x/Tolerance) * Tolerance
}

// InvOrZero returns 1/x, or 0 if x is so small that inverting it would
// blow up. Rational evaluation uses it to keep near-zero weights from
// propagating infinities.
func InvOrZero(x float64) float64 {
	if SoSmall(x) {
		return 0
	}
	return 1 / x
}
