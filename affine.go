package planar

import (
	"math"

	"honnef.co/go/planar/poly"
)

// Affine describes an affine transform via the coefficients of the first two
// rows of its augmented matrix:
//
//	| A B C |
//	| D E F |
//	| 0 0 1 |
//
// A point (x, y) maps to (A·x + B·y + C, D·x + E·y + F). Composition follows
// matrix multiplication, so (M * N) * v == M * (N * v): N applies first.
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// Identity is the identity transform.
var Identity = Affine{A: 1, E: 1}

// FlipY mirrors the y axis. Useful for converting between y-up and y-down
// spaces.
var FlipY = Affine{A: 1, E: -1}

// FlipX mirrors the x axis.
var FlipX = Affine{A: -1, E: 1}

// Scale creates an affine transform scaling x and y independently.
func Scale(x, y float64) Affine {
	return Affine{A: x, E: y}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{A: 1, C: v.X, E: 1, F: v.Y}
}

// Rotate creates an affine transform representing rotation by th radians.
//
// A positive angle rotates the positive x direction into positive y. In a
// y-down coordinate system that is clockwise; in y-up it is anti-clockwise.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{
		A: cos, B: -sin,
		D: sin, E: cos,
	}
}

// RotateAbout creates an affine transform representing a rotation of th
// radians about center.
func RotateAbout(th float64, center Point) Affine {
	c := Vec2(center)
	return Translate(c.Negate()).ThenRotate(th).ThenTranslate(c)
}

// Skew creates an affine transformation representing a skew with the
// horizontal factor x and the vertical factor y.
func Skew(x, y float64) Affine {
	return Affine{
		A: 1, B: x,
		D: y, E: 1,
	}
}

// Reflect creates an affine transform that reflects about the line
// pt + direction·t.
func Reflect(pt Point, direction Vec2) Affine {
	n := Vec2{X: direction.Y, Y: -direction.X}.Normalize()

	// Householder reflection, with the translation back to pt folded in.
	x2 := n.X * n.X
	xy := n.X * n.Y
	y2 := n.Y * n.Y
	aff := Affine{
		A: 1 - 2*x2, B: -2 * xy, C: pt.X,
		D: -2 * xy, E: 1 - 2*y2, F: pt.Y,
	}
	return aff.PreTranslate(Vec2(pt).Negate())
}

// Coefficients returns the coefficients in the order A, B, C, D, E, F.
func (aff Affine) Coefficients() [6]float64 {
	return [6]float64{aff.A, aff.B, aff.C, aff.D, aff.E, aff.F}
}

// NewAffine creates an affine transformation from coefficients in the order
// A, B, C, D, E, F.
func NewAffine(n [6]float64) Affine {
	return Affine{n[0], n[1], n[2], n[3], n[4], n[5]}
}

// Mul returns aff * o, the transform that applies o and then aff.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		A: aff.A*o.A + aff.B*o.D,
		B: aff.A*o.B + aff.B*o.E,
		C: aff.A*o.C + aff.B*o.F + aff.C,
		D: aff.D*o.A + aff.E*o.D,
		E: aff.D*o.B + aff.E*o.E,
		F: aff.D*o.C + aff.E*o.F + aff.F,
	}
}

// MulVec3 applies the augmented matrix to a homogeneous vector.
func (aff Affine) MulVec3(v Vec3) Vec3 {
	return Vec3{
		X: aff.A*v.X + aff.B*v.Y + aff.C*v.Z,
		Y: aff.D*v.X + aff.E*v.Y + aff.F*v.Z,
		Z: v.Z,
	}
}

// PreRotate is equivalent to aff * Rotate(th).
func (aff Affine) PreRotate(th float64) Affine {
	return aff.Mul(Rotate(th))
}

// ThenRotate is equivalent to Rotate(th) * aff.
func (aff Affine) ThenRotate(th float64) Affine {
	return Rotate(th).Mul(aff)
}

// PreRotateAbout is equivalent to aff * RotateAbout(th, center).
func (aff Affine) PreRotateAbout(th float64, center Point) Affine {
	return aff.Mul(RotateAbout(th, center))
}

// ThenRotateAbout is equivalent to RotateAbout(th, center) * aff.
func (aff Affine) ThenRotateAbout(th float64, center Point) Affine {
	return RotateAbout(th, center).Mul(aff)
}

// PreScale is equivalent to aff * Scale(x, y).
func (aff Affine) PreScale(x, y float64) Affine {
	return aff.Mul(Scale(x, y))
}

// ThenScale is equivalent to Scale(x, y) * aff.
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// PreTranslate is equivalent to aff * Translate(v).
func (aff Affine) PreTranslate(v Vec2) Affine {
	return aff.Mul(Translate(v))
}

// ThenTranslate is equivalent to Translate(v) * aff.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.C += v.X
	aff.F += v.Y
	return aff
}

// MapUnitSquare creates an affine transformation that takes the unit square to
// the given rectangle.
func MapUnitSquare(rect Rect) Affine {
	return Affine{
		A: rect.Width(), C: rect.X0,
		E: rect.Height(), F: rect.Y0,
	}
}

// Determinant returns A·E − B·D.
func (aff Affine) Determinant() float64 {
	return aff.A*aff.E - aff.B*aff.D
}

// Invertible reports whether the determinant is not within Epsilon of zero.
func (aff Affine) Invertible() bool {
	return !poly.AlmostZero(aff.Determinant())
}

// Invert returns the inverse transform. It reports false, and returns the zero
// Affine, when aff is not invertible.
func (aff Affine) Invert() (Affine, bool) {
	det := aff.Determinant()
	if poly.AlmostZero(det) {
		return Affine{}, false
	}
	inv := 1 / det
	return Affine{
		A: inv * aff.E,
		B: -inv * aff.B,
		C: inv * (aff.B*aff.F - aff.E*aff.C),
		D: -inv * aff.D,
		E: inv * aff.A,
		F: inv * (aff.D*aff.C - aff.A*aff.F),
	}, true
}

func (aff Affine) IsInf() bool {
	for _, c := range aff.Coefficients() {
		if math.IsInf(c, 0) {
			return true
		}
	}
	return false
}

func (aff Affine) IsNaN() bool {
	for _, c := range aff.Coefficients() {
		if math.IsNaN(c) {
			return true
		}
	}
	return false
}

// svd computes the singular values and the angle of the first rotation of
// the linear part of aff, ignoring the translation.
//
// Every non-degenerate linear map is a rotation, followed by an axis-aligned
// scale, followed by another rotation. Applied to the unit circle the inner
// rotation has no effect, which is why only the scale and the outer rotation
// are returned. Singular matrices produce NaNs.
func (aff Affine) svd() (scale Vec2, th float64) {
	a, b, c, d := aff.A, aff.D, aff.B, aff.E
	a2, b2, c2, d2 := a*a, b*b, c*c, d*d
	ab := a * b
	cd := c * d
	th = 0.5 * math.Atan2(2*(ab+cd), a2-b2+c2-d2)
	s1 := a2 + b2 + c2 + d2
	s2 := math.Hypot(a2-b2+c2-d2, 2*(ab+cd))
	return Vec2{
		X: math.Sqrt(0.5 * (s1 + s2)),
		Y: math.Sqrt(max(0.5*(s1-s2), 0)),
	}, th
}

// Translation returns the translation component of this transformation.
func (aff Affine) Translation() Vec2 {
	return Vec2{X: aff.C, Y: aff.F}
}

// WithTranslation replaces the translation component of this transformation.
func (aff Affine) WithTranslation(v Vec2) Affine {
	aff.C = v.X
	aff.F = v.Y
	return aff
}

// TransformRectBoundingBox returns the smallest rectangle that encloses rect
// after transformation. The result always has non-negative width and height.
func (aff Affine) TransformRectBoundingBox(rect Rect) Rect {
	p00 := Pt(rect.X0, rect.Y0).Transform(aff)
	p01 := Pt(rect.X0, rect.Y1).Transform(aff)
	p10 := Pt(rect.X1, rect.Y0).Transform(aff)
	p11 := Pt(rect.X1, rect.Y1).Transform(aff)
	return NewRectFromPoints(p00, p01).Union(NewRectFromPoints(p10, p11))
}
