package brep

// Affine is an affine transform of arbitrary dimension: a square linear
// part followed by a translation. It generalizes the 2D six-element affine
// of graphics libraries to the kernel's n-dimensional points.
type Affine struct {
	dim int
	// m is the dim×dim linear part in row-major order.
	m []float64
	t Vec
}

// NewAffine returns the affine transform with linear part m (row-major,
// len(t)×len(t)) and translation t. It panics if the sizes disagree.
func NewAffine(m []float64, t Vec) Affine {
	sameDim(len(m), len(t)*len(t))
	mm := make([]float64, len(m))
	copy(mm, m)
	return Affine{dim: len(t), m: mm, t: t.Clone()}
}

// IdentityAffine returns the identity transform of the given dimension.
func IdentityAffine(dim int) Affine {
	m := make([]float64, dim*dim)
	for i := 0; i < dim; i++ {
		m[i*dim+i] = 1
	}
	return Affine{dim: dim, m: m, t: make(Vec, dim)}
}

// ScaleAffine returns the uniform scale by f in the given dimension.
func ScaleAffine(dim int, f float64) Affine {
	a := IdentityAffine(dim)
	for i := 0; i < dim; i++ {
		a.m[i*dim+i] = f
	}
	return a
}

// TranslateAffine returns the translation by v.
func TranslateAffine(v Vec) Affine {
	a := IdentityAffine(len(v))
	a.t = v.Clone()
	return a
}

// Dim returns the dimension of the space the transform acts on.
func (a Affine) Dim() int {
	return a.dim
}

// ApplyVec applies the linear part of the transform to a vector.
// Displacements are unaffected by translation.
func (a Affine) ApplyVec(v Vec) Vec {
	sameDim(a.dim, len(v))
	out := make(Vec, a.dim)
	for i := 0; i < a.dim; i++ {
		row := a.m[i*a.dim : (i+1)*a.dim]
		for j, c := range v {
			out[i] += row[j] * c
		}
	}
	return out
}

// Apply applies the transform to a point.
func (a Affine) Apply(pt Point) Point {
	return Point(a.ApplyVec(Vec(pt)).Add(a.t))
}

// ApplyBBox applies the transform to every corner of b and returns the
// bounding box of the images. The result is the box of the transformed
// box, which may be larger than the transformed shape's own box.
func (a Affine) ApplyBBox(b BBox) BBox {
	out := EmptyBBox(a.dim)
	corner := make(Point, a.dim)
	for bits := 0; bits < 1<<a.dim; bits++ {
		for i := 0; i < a.dim; i++ {
			if bits&(1<<i) != 0 {
				corner[i] = b.Max[i]
			} else {
				corner[i] = b.Min[i]
			}
		}
		out = out.UnionPoint(a.Apply(corner))
	}
	return out
}

// Mul composes two transforms. The result applies o first, then a.
func (a Affine) Mul(o Affine) Affine {
	sameDim(a.dim, o.dim)
	d := a.dim
	m := make([]float64, d*d)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			s := 0.0
			for k := 0; k < d; k++ {
				s += a.m[i*d+k] * o.m[k*d+j]
			}
			m[i*d+j] = s
		}
	}
	return Affine{dim: d, m: m, t: a.ApplyVec(o.t).Add(a.t)}
}

// Near reports whether every element of a is within [Tolerance] of the
// corresponding element of o.
func (a Affine) Near(o Affine) bool {
	sameDim(a.dim, o.dim)
	return Vec(a.m).Near(Vec(o.m)) && a.t.Near(o.t)
}

// Near2 reports whether every element of a is within [Tolerance2] of the
// corresponding element of o.
func (a Affine) Near2(o Affine) bool {
	sameDim(a.dim, o.dim)
	return Vec(a.m).Near2(Vec(o.m)) && a.t.Near2(o.t)
}

// RoundByTolerance applies [RoundByTolerance] to every element and returns
// the result.
func (a Affine) RoundByTolerance() Affine {
	return Affine{
		dim: a.dim,
		m:   Vec(a.m).RoundByTolerance(),
		t:   a.t.RoundByTolerance(),
	}
}
