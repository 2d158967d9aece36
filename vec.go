package brep

import (
	"math"
	"strconv"
	"strings"
)

// Vec is a displacement vector of arbitrary dimension. Unlike [Point], which
// represents a position, Vec represents a direction and magnitude.
//
// A single slice-backed type replaces truck's macro-generated Vector1
// through Vector4: one implementation of the vector algebra and of the
// rational derivative formulas in homogeneous.go serves every dimension.
//
// Operations on two vectors panic if their dimensions differ; that is a
// programmer error, not a geometric failure.
type Vec []float64

// V returns the vector with the given components.
func V(components ...float64) Vec {
	return Vec(components)
}

// Dim returns the dimension of the vector.
func (v Vec) Dim() int {
	return len(v)
}

// Clone returns a copy of the vector that shares no storage with v.
func (v Vec) Clone() Vec {
	out := make(Vec, len(v))
	copy(out, v)
	return out
}

func (v Vec) String() string {
	sb := &strings.Builder{}
	sb.WriteString("⟨")
	for i, c := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
	}
	sb.WriteString("⟩")
	return sb.String()
}

func sameDim(a, b int) {
	if a != b {
		panic("brep: mismatched dimensions " + strconv.Itoa(a) + " and " + strconv.Itoa(b))
	}
}

// Add adds two vectors and returns the resulting vector.
func (v Vec) Add(o Vec) Vec {
	sameDim(len(v), len(o))
	out := make(Vec, len(v))
	for i := range v {
		out[i] = v[i] + o[i]
	}
	return out
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec) Sub(o Vec) Vec {
	sameDim(len(v), len(o))
	out := make(Vec, len(v))
	for i := range v {
		out[i] = v[i] - o[i]
	}
	return out
}

func (v Vec) Mul(f float64) Vec {
	out := make(Vec, len(v))
	for i := range v {
		out[i] = v[i] * f
	}
	return out
}

func (v Vec) Div(f float64) Vec {
	out := make(Vec, len(v))
	for i := range v {
		out[i] = v[i] / f
	}
	return out
}

// Negate returns a new vector with the sign of every component flipped.
func (v Vec) Negate() Vec {
	out := make(Vec, len(v))
	for i := range v {
		out[i] = -v[i]
	}
	return out
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 {
	sameDim(len(v), len(o))
	dot := 0.0
	for i := range v {
		dot += v[i] * o[i]
	}
	return dot
}

// Hypot returns the magnitude of the vector.
func (v Vec) Hypot() float64 {
	return math.Sqrt(v.Dot(v))
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec.Hypot].
func (v Vec) Hypot2() float64 {
	return v.Dot(v)
}

// Lerp linearly interpolates between two vectors.
func (v Vec) Lerp(o Vec, t float64) Vec {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// This produces a NaN vector if the magnitude is 0.
func (v Vec) Normalize() Vec {
	return v.Mul(1.0 / v.Hypot())
}

// IsInf reports whether at least one component is infinite.
func (v Vec) IsInf() bool {
	for _, c := range v {
		if math.IsInf(c, 0) {
			return true
		}
	}
	return false
}

// IsNaN reports whether at least one component is NaN.
func (v Vec) IsNaN() bool {
	for _, c := range v {
		if math.IsNaN(c) {
			return true
		}
	}
	return false
}

// Near reports whether every component of v is within [Tolerance] of the
// corresponding component of o.
func (v Vec) Near(o Vec) bool {
	sameDim(len(v), len(o))
	for i := range v {
		if !Near(v[i], o[i]) {
			return false
		}
	}
	return true
}

// Near2 reports whether every component of v is within [Tolerance2] of the
// corresponding component of o.
func (v Vec) Near2(o Vec) bool {
	sameDim(len(v), len(o))
	for i := range v {
		if !Near2(v[i], o[i]) {
			return false
		}
	}
	return true
}

// SoSmall reports whether every component is within [Tolerance] of zero.
func (v Vec) SoSmall() bool {
	for _, c := range v {
		if !SoSmall(c) {
			return false
		}
	}
	return true
}

// SoSmall2 reports whether every component is within [Tolerance2] of zero.
func (v Vec) SoSmall2() bool {
	for _, c := range v {
		if !SoSmall2(c) {
			return false
		}
	}
	return true
}

// RoundByTolerance applies [RoundByTolerance] to every component and
// returns the result.
func (v Vec) RoundByTolerance() Vec {
	out := make(Vec, len(v))
	for i := range v {
		out[i] = RoundByTolerance(v[i])
	}
	return out
}
