package brep

// Rational (homogeneous) coordinates: a vector of dimension n+1 represents
// a point of n-dimensional affine space, with the last component acting as
// a weight. Projecting divides the first n components by the weight; this
// is the representation NURBS curves and surfaces evaluate in.
//
// The derivative formulas below are the closed-form quotient-rule
// expansions used by rational curve and surface evaluation. They take the
// homogeneous curve's own derivatives as arguments and return derivatives
// of the projected, affine curve. Near-zero weights are guarded through
// [InvOrZero] instead of propagating infinities.

// Truncate returns the vector without its last component.
func (v Vec) Truncate() Vec {
	return v[:len(v)-1].Clone()
}

// Last returns the last component, the weight of a homogeneous vector.
func (v Vec) Last() float64 {
	return v[len(v)-1]
}

// RationalProjection returns the projection of v onto the plane whose last
// component is 1: the affine point of the rational point v.
//
// For example, the projection of ⟨8, 4, 6, 2⟩ is ⟨4, 2, 3⟩.
func (v Vec) RationalProjection() Vec {
	return v.Truncate().Mul(InvOrZero(v.Last()))
}

// RationalDerivative returns the first derivative of the projected curve.
//
// For a homogeneous curve c(t), v is the value c(t) and der the derivative
// c'(t); the result is the derivative of the projection c̄(t) =
// c(t).RationalProjection() at the same parameter, by the quotient rule
//
//	c̄' = (c'·w − c·w') / w²
//
// where w is the weight component.
func (v Vec) RationalDerivative(der Vec) Vec {
	il := InvOrZero(v.Last())
	return der.Truncate().Mul(v.Last()).Sub(v.Truncate().Mul(der.Last())).Mul(il * il)
}

// RationalDerivative2 returns the second derivative of the projected curve,
// given the homogeneous value v, first derivative der, and second
// derivative der2.
func (v Vec) RationalDerivative2(der, der2 Vec) Vec {
	il := InvOrZero(v.Last())
	coef1 := 2 * der.Last() * il * il
	coef2 := (2*der.Last()*der.Last() - der2.Last()*v.Last()) * il * il * il
	res := der2.Mul(il).Sub(der.Mul(coef1)).Add(v.Mul(coef2))
	return res.Truncate()
}

// RationalCrossDerivative returns the mixed partial ∂²/∂u∂v of a projected
// two-parameter surface, given the homogeneous value v, the two first
// partials uder and vder, and the mixed second partial uvder.
func (v Vec) RationalCrossDerivative(uder, vder, uvder Vec) Vec {
	il := InvOrZero(v.Last())
	coef1 := vder.Last() * il * il
	coef2 := uder.Last() * il * il
	coef3 := (2*uder.Last()*vder.Last() - uvder.Last()*v.Last()) * il * il * il
	res := uvder.Mul(il).Sub(uder.Mul(coef1)).Sub(vder.Mul(coef2)).Add(v.Mul(coef3))
	return res.Truncate()
}
