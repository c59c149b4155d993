package planar

import (
	"math"

	"honnef.co/go/planar/poly"
)

// Intersection is a point shared by two curves, with its parameter on each.
// T0 is the parameter on the receiver of the method that produced it and T1
// the parameter on the argument.
type Intersection struct {
	Point  Point
	T0, T1 float64
}

// intersectTolerance is the largest distance, relative to the size of the
// coordinates involved, between a root of an eliminant evaluated on the first
// curve and the nearest point of the second curve for the two to count as
// intersecting.
const intersectTolerance = 1e-6

// The functions below return the parameters on their first curve at which it
// meets the second, as the real roots of a polynomial eliminant. The roots
// are not restricted to [0, 1]. ok is false when the eliminant vanishes
// identically, which happens for coincident and overlapping curves; an empty
// result with ok set means the curves do not meet.

// LinesIntersect returns the point where the line through p0 and p1 crosses
// the line through p2 and p3. It reports false for parallel lines.
func LinesIntersect(p0, p1, p2, p3 Point) (Point, bool) {
	d := (p0.X-p1.X)*(p2.Y-p3.Y) - (p0.Y-p1.Y)*(p2.X-p3.X)
	if poly.AlmostZero(d) {
		return Point{}, false
	}
	a := (p0.X*p1.Y - p0.Y*p1.X) / d
	b := (p2.X*p3.Y - p2.Y*p3.X) / d
	return Point{
		X: (p2.X-p3.X)*a - (p0.X-p1.X)*b,
		Y: (p2.Y-p3.Y)*a - (p0.Y-p1.Y)*b,
	}, true
}

// relativeQuad returns the power-basis coordinate functions of the quadratic
// b0, b1, b2 translated by −o.
func relativeQuad(b0, b1, b2, o Point) (x, y poly.Polynomial) {
	a := b0.Sub(o)
	b := b1.Sub(b0).Mul(2)
	c := Vec2(b0).Sub(Vec2(b1).Mul(2)).Add(Vec2(b2))
	return poly.New(a.X, b.X, c.X), poly.New(a.Y, b.Y, c.Y)
}

// relativeCubic is like relativeQuad for the cubic b0, b1, b2, b3.
func relativeCubic(b0, b1, b2, b3, o Point) (x, y poly.Polynomial) {
	a := b0.Sub(o)
	b := b1.Sub(b0).Mul(3)
	c := Vec2(b2).Add(Vec2(b0)).Mul(3).Sub(Vec2(b1).Mul(6))
	d := b3.Sub(b0).Add(b1.Sub(b2).Mul(3))
	return poly.New(a.X, b.X, c.X, d.X), poly.New(a.Y, b.Y, c.Y, d.Y)
}

func eliminantRoots(p poly.Polynomial) ([]float64, bool) {
	if p.AllAlmostZero() {
		return nil, false
	}
	return p.BracketRoots(), true
}

// lineEliminant returns the signed-area polynomial of the curve (u0, v0),
// given relative to l0, against the direction l0 − l1.
func lineEliminant(u0, v0 poly.Polynomial, l0, l1 Point) poly.Polynomial {
	u1 := l0.X - l1.X
	v1 := l0.Y - l1.Y
	return v0.Scale(u1).Sub(u0.Scale(v1))
}

// QuadBezLineIntersect returns the parameters on the quadratic Bézier b0, b1,
// b2 at which it meets the line through l0 and l1.
func QuadBezLineIntersect(b0, b1, b2, l0, l1 Point) ([]float64, bool) {
	u0, v0 := relativeQuad(b0, b1, b2, l0)
	return eliminantRoots(lineEliminant(u0, v0, l0, l1))
}

// CubicBezLineIntersect returns the parameters on the cubic Bézier b0, b1, b2,
// b3 at which it meets the line through l0 and l1.
func CubicBezLineIntersect(b0, b1, b2, b3, l0, l1 Point) ([]float64, bool) {
	u0, v0 := relativeCubic(b0, b1, b2, b3, l0)
	return eliminantRoots(lineEliminant(u0, v0, l0, l1))
}

// quadEliminant returns the determinant of the 2×2 Bézout matrix that
// eliminates the parameter of the quadratic q0, q1, q2 from
// (u0, v0)(t) = q(s) − q0.
func quadEliminant(u0, v0 poly.Polynomial, q0, q1, q2 Point) poly.Polynomial {
	u1 := 2 * (q0.X - q1.X)
	u2 := 2*q1.X - q0.X - q2.X
	v1 := 2 * (q0.Y - q1.Y)
	v2 := 2*q1.Y - q0.Y - q2.Y

	m00 := u2*v1 - u1*v2
	m01 := v0.Scale(u2).Sub(u0.Scale(v2))
	m11 := v0.Scale(u1).Sub(u0.Scale(v1))
	return m11.Scale(m00).Sub(m01.Mul(m01))
}

// QuadBeziersIntersect returns the parameters on the quadratic Bézier b0, b1,
// b2 at which it meets the quadratic Bézier b3, b4, b5.
func QuadBeziersIntersect(b0, b1, b2, b3, b4, b5 Point) ([]float64, bool) {
	if isLinearQuad(b3, b4, b5) {
		return QuadBezLineIntersect(b0, b1, b2, b3, b5)
	}
	u0, v0 := relativeQuad(b0, b1, b2, b3)
	return eliminantRoots(quadEliminant(u0, v0, b3, b4, b5))
}

// CubicQuadBezIntersect returns the parameters on the cubic Bézier c0, c1, c2,
// c3 at which it meets the quadratic Bézier q0, q1, q2.
func CubicQuadBezIntersect(c0, c1, c2, c3, q0, q1, q2 Point) ([]float64, bool) {
	if isLinearQuad(q0, q1, q2) {
		return CubicBezLineIntersect(c0, c1, c2, c3, q0, q2)
	}
	u0, v0 := relativeCubic(c0, c1, c2, c3, q0)
	return eliminantRoots(quadEliminant(u0, v0, q0, q1, q2))
}

// CubicBeziersIntersect returns the parameters on the cubic Bézier c0, c1, c2,
// c3 at which it meets the cubic Bézier c4, c5, c6, c7. The eliminant is the
// determinant of a 3×3 Bézout matrix and has degree up to nine.
func CubicBeziersIntersect(c0, c1, c2, c3, c4, c5, c6, c7 Point) ([]float64, bool) {
	if q1, ok := cubicAsQuad(c4, c5, c6, c7); ok {
		return CubicQuadBezIntersect(c0, c1, c2, c3, c4, q1, c7)
	}
	u0, v0 := relativeCubic(c0, c1, c2, c3, c4)
	u1 := 3 * (c4.X - c5.X)
	u2 := 6*c5.X - 3*(c6.X+c4.X)
	u3 := c4.X - c7.X + 3*(c6.X-c5.X)
	v1 := 3 * (c4.Y - c5.Y)
	v2 := 6*c5.Y - 3*(c6.Y+c4.Y)
	v3 := c4.Y - c7.Y + 3*(c6.Y-c5.Y)

	// Symmetric Bézout matrix; m00 and m01 are constants.
	m00 := u3*v2 - u2*v3
	m01 := u3*v1 - u1*v3
	m02 := v0.Scale(u3).Sub(u0.Scale(v3))
	m11 := m02.AddScalar(u2*v1 - u1*v2)
	m12 := v0.Scale(u2).Sub(u0.Scale(v2))
	m22 := v0.Scale(u1).Sub(u0.Scale(v1))

	// Cofactor expansion along the first row.
	a := m11.Mul(m22).Sub(m12.Mul(m12))
	b := m12.Mul(m02).Sub(m22.Scale(m01))
	c := m12.Scale(m01).Sub(m11.Mul(m02))
	det := a.Scale(m00).Add(b.Scale(m01)).Add(c.Mul(m02))
	return eliminantRoots(det)
}

// The Bézout matrices lose rank when the curve being eliminated is of lower
// order than its control polygon suggests, and the eliminant then vanishes
// identically. Such curves are intersected as what they really are.

// isLinearQuad reports whether the quadratic q0, q1, q2 has no quadratic
// term, so that it traces the line from q0 to q2.
func isLinearQuad(q0, q1, q2 Point) bool {
	k := q0.Sub(q1).Add(q2.Sub(q1))
	return poly.AlmostZero(k.X) && poly.AlmostZero(k.Y)
}

// cubicAsQuad returns the middle control point of the quadratic that the
// cubic c0, c1, c2, c3 is the degree elevation of, if it is one.
func cubicAsQuad(c0, c1, c2, c3 Point) (Point, bool) {
	k := c3.Sub(c0).Add(c1.Sub(c2).Mul(3))
	if !poly.AlmostZero(k.X) || !poly.AlmostZero(k.Y) {
		return Point{}, false
	}
	return Point(Vec2(c1).Mul(3).Sub(Vec2(c0)).Mul(0.5)), true
}

// curveLineHits turns eliminant roots on c into intersections with the line
// segment, keeping those within both.
func curveLineHits(c ParametricCurve, line Line, ts []float64) []Intersection {
	d := line.P1.Sub(line.P0)
	invlen2 := 1 / d.Hypot2()
	var out []Intersection
	for _, t := range ts {
		if t < -Epsilon || t > 1+Epsilon {
			continue
		}
		t = poly.Clamp(t, 0, 1)
		p := c.Eval(t)
		u := p.Sub(line.P0).Dot(d) * invlen2
		if u >= 0 && u <= 1 {
			out = append(out, Intersection{Point: p, T0: t, T1: u})
		}
	}
	return out
}

type nearester interface {
	ParametricCurve
	Nearest(pt Point, accuracy float64) (distSq, t float64)
}

// curveCurveHits turns eliminant roots on c into intersections with o,
// recovering the parameter on o as that of its nearest point.
func curveCurveHits(c ParametricCurve, o nearester, ts []float64) []Intersection {
	var out []Intersection
	for _, t := range ts {
		if t < -Epsilon || t > 1+Epsilon {
			continue
		}
		t = poly.Clamp(t, 0, 1)
		p := c.Eval(t)
		distSq, s := o.Nearest(p, DefaultAccuracy)
		tol := intersectTolerance * max(1, math.Abs(p.X), math.Abs(p.Y))
		if distSq <= tol*tol {
			out = append(out, Intersection{Point: p, T0: t, T1: s})
		}
	}
	return out
}
