package planar

import (
	"math"

	"honnef.co/go/planar/poly"
)

// Ellipse is the image of the unit circle under an affine transform.
type Ellipse struct {
	inner Affine
}

// NewEllipse creates an ellipse with a given center, radii, and rotation.
//
// The returned ellipse will be the result of taking a circle, stretching it
// by the radii along the x and y axes, then rotating it from the x axis by
// xRotation radians, before finally translating the center to center.
//
// Rotation is clockwise in a y-down coordinate system. For more on rotation,
// see [Rotate].
func NewEllipse(center Point, radii Vec2, xRotation float64) Ellipse {
	rx, ry := radii.Splat()
	return newEllipse(Vec2(center), rx, ry, xRotation)
}

// NewEllipseFromRect returns the largest axis-aligned ellipse that can be
// bounded by rect. This uses the absolute width and height of the rectangle.
func NewEllipseFromRect(rect Rect) Ellipse {
	center := Vec2(rect.Center())
	width, height := rect.Size().Scale(1.0 / 2.0).Splat()
	return newEllipse(center, width, height, 0.0)
}

// NewEllipseFromAffine creates an ellipse from an affine transformation of the unit
// circle.
func NewEllipseFromAffine(aff Affine) Ellipse {
	return Ellipse{inner: aff}
}

func NewEllipseFromCircle(c Circle) Ellipse {
	return NewEllipse(c.Center, Vec(c.Radius, c.Radius), 0)
}

// WithCenter returns a copy of e centered on center.
func (e Ellipse) WithCenter(center Point) Ellipse {
	return Ellipse{inner: e.inner.WithTranslation(Vec2(center))}
}

// WithRadii returns a copy of e with the provided radii.
func (e Ellipse) WithRadii(radii Vec2) Ellipse {
	_, rotation := e.inner.svd()
	translation := e.inner.Translation()
	return newEllipse(translation, radii.X, radii.Y, rotation)
}

// WithRotation returns a copy of e with its rotation replaced by rotation
// radians.
func (e Ellipse) WithRotation(rotation float64) Ellipse {
	scale, _ := e.inner.svd()
	translation := e.inner.Translation()
	return newEllipse(translation, scale.X, scale.Y, rotation)
}

func newEllipse(center Vec2, scaleX, scaleY, xRotation float64) Ellipse {
	// The circle is symmetric about both axes, so negative radii describe the
	// same ellipse.
	return Ellipse{
		inner: Translate(center).
			Mul(Rotate(xRotation)).
			Mul(Scale(math.Abs(scaleX), math.Abs(scaleY))),
	}
}

// Affine returns the transform that maps the unit circle onto e.
func (e Ellipse) Affine() Affine {
	return e.inner
}

// Contains reports whether pt lies strictly inside the ellipse.
func (e Ellipse) Contains(pt Point) bool {
	return e.Winding(pt) != 0
}

func (e Ellipse) IsInf() bool {
	return e.inner.IsInf()
}

func (e Ellipse) IsNaN() bool {
	return e.inner.IsNaN()
}

func (e Ellipse) Area() float64 {
	x, y := e.Radii().Splat()
	return math.Pi * x * y
}

// BoundingBox returns the tight bounding box of the ellipse.
func (e Ellipse) BoundingBox() Rect {
	// The extent along x is the length of the first row of the linear part,
	// and along y that of the second row. See
	// https://www.iquilezles.org/www/articles/ellipses/ellipses.htm.
	aff := e.inner
	rangeX := math.Hypot(aff.A, aff.B)
	rangeY := math.Hypot(aff.D, aff.E)
	return Rect{
		X0: aff.C - rangeX,
		Y0: aff.F - rangeY,
		X1: aff.C + rangeX,
		Y1: aff.F + rangeY,
	}
}

// TransformedBoundingBox returns the tight bounding box of the ellipse after
// applying aff.
func (e Ellipse) TransformedBoundingBox(aff Affine) Rect {
	return e.Transform(aff).BoundingBox()
}

// Path returns a closed path of four cubic Béziers approximating the ellipse.
func (e Ellipse) Path() Path {
	pts := UnitArc(2 * math.Pi)
	var p Path
	p.MoveTo(pts[0].Transform(e.inner))
	for i := 1; i+2 < len(pts); i += 3 {
		p.CubicTo(pts[i].Transform(e.inner), pts[i+1].Transform(e.inner), pts[i+2].Transform(e.inner))
	}
	p.ClosePath()
	return p
}

// Winding returns 1 for points inside the ellipse and 0 otherwise.
func (e Ellipse) Winding(pt Point) int {
	// Apply the inverse map to the point and see if it is in the unit circle.
	inv, ok := e.inner.Invert()
	if !ok {
		return 0
	}
	if Vec2(pt.Transform(inv)).Hypot2() < 1.0 {
		return 1
	}
	return 0
}

// Center returns the center of the ellipse.
func (e Ellipse) Center() Point {
	return Point(e.inner.Translation())
}

// Radii returns the two radii of the ellipse.
//
// The first number is the horizontal radius and the second is the
// vertical radius, before rotation.
func (e Ellipse) Radii() Vec2 {
	radii, _ := e.inner.svd()
	return radii
}

// Rotation returns the ellipse's rotation, in radians.
func (e Ellipse) Rotation() float64 {
	_, rot := e.inner.svd()
	return rot
}

// RadiiRotation returns the radii and the rotation of this ellipse.
//
// This is equivalent to, but more efficient than, using [Ellipse.Radii] and
// [Ellipse.Rotation].
func (e Ellipse) RadiiRotation() (Vec2, float64) {
	return e.inner.svd()
}

// Eval returns the image of the unit circle's point at angle th.
func (e Ellipse) Eval(th float64) Point {
	return Point(VecFromAngle(th)).Transform(e.inner)
}

func (e Ellipse) Translate(v Vec2) Ellipse {
	return Ellipse{
		inner: Translate(v).Mul(e.inner),
	}
}

// Transform returns the image of e under aff.
func (e Ellipse) Transform(aff Affine) Ellipse {
	return Ellipse{
		inner: aff.Mul(e.inner),
	}
}

// IntersectLine returns the points where the line segment crosses the
// ellipse. T0 is the angle on the ellipse, as accepted by [Ellipse.Eval], and
// T1 the parameter on line.
func (e Ellipse) IntersectLine(line Line) []Intersection {
	return e.intersect(line.P0, line.P1)
}

// IntersectQuad returns the points where q crosses the ellipse. See
// [Ellipse.IntersectLine].
func (e Ellipse) IntersectQuad(q QuadBez) []Intersection {
	return e.intersect(q.P0, q.P1, q.P2)
}

// IntersectCubic returns the points where c crosses the ellipse. See
// [Ellipse.IntersectLine].
func (e Ellipse) IntersectCubic(c CubicBez) []Intersection {
	return e.intersect(c.P0, c.P1, c.P2, c.P3)
}

// intersect maps the curve into the space in which e is the unit circle and
// solves x(t)² + y(t)² = 1 there.
func (e Ellipse) intersect(pts ...Point) []Intersection {
	inv, ok := e.inner.Invert()
	if !ok {
		return nil
	}
	local := make([]Point, len(pts))
	for i, p := range pts {
		local[i] = p.Transform(inv)
	}
	x, y := BezierPolynomials(local...)
	eq := x.Mul(x).Add(y.Mul(y)).AddScalar(-1)
	if eq.AllAlmostZero() {
		return nil
	}
	var out []Intersection
	for _, t := range eq.BracketRoots() {
		if t < -Epsilon || t > 1+Epsilon {
			continue
		}
		t = poly.Clamp(t, 0, 1)
		u := BezierEval(t, local...)
		th := math.Atan2(u.Y, u.X)
		out = append(out, Intersection{Point: e.Eval(th), T0: th, T1: t})
	}
	return out
}

// EllipseCenters returns the centers of the ellipses with the given radii and
// rotation that pass through both a and b. There are two such ellipses, one
// when a and b are diametrically opposite, and none when they are too far
// apart. This is the construction behind SVG's elliptical arc command.
func EllipseCenters(radii Vec2, rotation float64, a, b Point) []Point {
	sin, cos := math.Sincos(rotation)
	// Undo the rotation.
	ax := a.X*cos + a.Y*sin
	ay := a.Y*cos - a.X*sin
	bx := b.X*cos + b.Y*sin
	by := b.Y*cos - b.X*sin

	dx := (ax - bx) / radii.X
	dy := (ay - by) / radii.Y
	d := dx*dx + dy*dy

	mx := 0.5 * (ax + bx)
	my := 0.5 * (ay + by)
	rotate := func(x, y float64) Point {
		return Point{X: x*cos - y*sin, Y: x*sin + y*cos}
	}

	switch {
	case d == 0:
		// Any ellipse through a does.
		return nil
	case poly.AlmostEqual(d, 4):
		return []Point{rotate(mx, my)}
	case d < 4:
		t := math.Sqrt((1 - d*0.25) / d)
		return []Point{
			rotate(mx+t*dy*radii.X, my-t*dx*radii.Y),
			rotate(mx-t*dy*radii.X, my+t*dx*radii.Y),
		}
	default:
		return nil
	}
}
