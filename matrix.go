package fabric

import "math"

// Matrix is a 2D affine transform stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// The zero value is the degenerate all-zero map; use [Identity] for
// "no transform".
type Matrix [6]float64

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Translate returns a pure translation by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{1, 0, 0, 1, x, y}
}

// Scale returns a pure scale by (sx, sy).
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotate returns a pure rotation by theta radians. In the y-down coordinate
// system a positive angle rotates clockwise.
func Rotate(theta float64) Matrix {
	sin, cos := math.Sincos(theta)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// Mul returns the composition m·n: the transform that applies n first,
// then m. Composition is non-commutative.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		m[0]*n[0] + m[2]*n[1],
		m[1]*n[0] + m[3]*n[1],
		m[0]*n[2] + m[2]*n[3],
		m[1]*n[2] + m[3]*n[3],
		m[0]*n[4] + m[2]*n[5] + m[4],
		m[1]*n[4] + m[3]*n[5] + m[5],
	}
}

// Invert returns the inverse transform. Valid usage never inverts a singular
// matrix (a scale collapsed to zero); if handed one anyway, Invert returns
// the identity rather than a matrix full of infinities.
func (m Matrix) Invert() Matrix {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return Identity()
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Matrix{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Apply transforms the point p by m.
func (m Matrix) Apply(p Point) Point {
	return Point{
		m[0]*p.X + m[2]*p.Y + m[4],
		m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// ApplyXY transforms the point (x, y) by m without going through [Point].
func (m Matrix) ApplyXY(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Rotation extracts the rotation angle of m, in radians.
func (m Matrix) Rotation() float64 {
	return math.Atan2(m[1], m[0])
}

// IsIdentity reports whether m is exactly the identity transform.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// Decomposition is an affine matrix broken into the transform properties an
// [Object] carries. SkewY is always reported as zero: a 2D affine map has
// six degrees of freedom, so translation, rotation, scale, and a single
// skew axis fully determine it.
type Decomposition struct {
	Angle      float64 // radians
	ScaleX     float64
	ScaleY     float64
	SkewX      float64 // radians
	SkewY      float64 // always 0
	TranslateX float64
	TranslateY float64
}

// Decompose performs a QR-style decomposition of m. It is the exact inverse
// of [Compose] for any input with SkewY == 0.
func (m Matrix) Decompose() Decomposition {
	angle := math.Atan2(m[1], m[0])
	denom := m[0]*m[0] + m[1]*m[1]
	scaleX := math.Sqrt(denom)
	scaleY := (m[0]*m[3] - m[2]*m[1]) / scaleX
	skewX := math.Atan2(m[0]*m[2]+m[1]*m[3], denom)
	return Decomposition{
		Angle:      angle,
		ScaleX:     scaleX,
		ScaleY:     scaleY,
		SkewX:      skewX,
		TranslateX: m[4],
		TranslateY: m[5],
	}
}

// Compose rebuilds the matrix described by d:
//
//	Translate · Rotate(Angle) · SkewY · SkewX · Scale
func Compose(d Decomposition) Matrix {
	m := dimensionsMatrix(d)
	if d.Angle != 0 {
		m = Rotate(d.Angle).Mul(m)
	}
	m[4] += d.TranslateX
	m[5] += d.TranslateY
	return m
}

// dimensionsMatrix builds the scale-and-skew part of a decomposition,
// without rotation or translation.
func dimensionsMatrix(d Decomposition) Matrix {
	m := Scale(d.ScaleX, d.ScaleY)
	if d.SkewX != 0 {
		m = m.Mul(Matrix{1, 0, math.Tan(d.SkewX), 1, 0, 0})
	}
	if d.SkewY != 0 {
		m = Matrix{1, math.Tan(d.SkewY), 0, 1, 0, 0}.Mul(m)
	}
	return m
}
