package planar

import (
	"math"
	"slices"

	"honnef.co/go/planar/poly"
)

var _ ParametricCurve = CubicBez{}
var _ Winder = CubicBez{}
var _ SignedAreaer = CubicBez{}

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// BoundingBox returns the tight bounding box of the curve.
func (c CubicBez) BoundingBox() Rect {
	return BoundingBox(c)
}

// TransformedBoundingBox returns the tight bounding box of the curve after
// applying aff. See [QuadBez.TransformedBoundingBox].
func (c CubicBez) TransformedBoundingBox(aff Affine) Rect {
	row := func(a, b, off float64) (lo, hi float64) {
		ts := []float64{0, 1}
		for _, t := range CubicStationary(c.P0, c.P1, c.P2, c.P3, a, b) {
			ts = append(ts, poly.Clamp(t, 0, 1))
		}
		return rowRange(c, ts, a, b, off)
	}
	x0, x1 := row(aff.A, aff.B, aff.C)
	y0, y1 := row(aff.D, aff.E, aff.F)
	return Rect{x0, y0, x1, y1}
}

// Winding returns the curve's contribution to the winding number of pt.
func (c CubicBez) Winding(pt Point) float64 {
	return CubicBezWinding(
		Point(c.P0.Sub(pt)),
		Point(c.P1.Sub(pt)),
		Point(c.P2.Sub(pt)),
		Point(c.P3.Sub(pt)),
	)
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Split subdivides the cubic at t, using de Casteljau.
func (c CubicBez) Split(t float64) (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	pm := p012.Lerp(p123, t)
	return CubicBez{c.P0, p01, p012, pm}, CubicBez{pm, p123, p23, c.P3}
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Differentiate()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(Vec2(d.Eval(t0)).Mul(scale))
	p2 := p3.Translate(Vec2(d.Eval(t1)).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

// Polynomials returns the coordinate functions of the curve in the power
// basis.
func (c CubicBez) Polynomials() (x, y poly.Polynomial) {
	return BezierPolynomials(c.P0, c.P1, c.P2, c.P3)
}

func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	// Up to two stationary points per coordinate, for a total of 4 possible
	// values.
	var out [MaxExtrema]float64
	var outN int
	for _, ab := range [2][2]float64{{1, 0}, {0, 1}} {
		for _, t := range CubicStationary(c.P0, c.P1, c.P2, c.P3, ab[0], ab[1]) {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}
	slices.Sort(out[:outN])
	return out, outN
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

// Nearest returns the squared distance from pt to the nearest point of the
// curve, and that point's parameter. The candidates are the roots of the
// quintic derivative of the squared distance; accuracy is unused.
func (c CubicBez) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	return nearestAmong(c, pt, ClosestBezier(pt, c.P0, c.P1, c.P2, c.P3))
}

func (c CubicBez) SignedArea() float64 {
	v := c.P0.X*(6.0*c.P1.Y+3.0*c.P2.Y+c.P3.Y) +
		3.0*(c.P1.X*(-2.0*c.P0.Y+c.P2.Y+c.P3.Y)-c.P2.X*(c.P0.Y+c.P1.Y-2.0*c.P3.Y)) -
		c.P3.X*(c.P0.Y+3.0*c.P1.Y+6.0*c.P2.Y)
	return v * (1.0 / 20.0)
}

func (c CubicBez) Seg() Segment {
	return Segment{Kind: CubicKind, P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3}
}

// IntersectLine returns the points where the curve crosses the line segment.
// T0 is the parameter on c and T1 the one on line.
func (c CubicBez) IntersectLine(line Line) []Intersection {
	ts, ok := CubicBezLineIntersect(c.P0, c.P1, c.P2, c.P3, line.P0, line.P1)
	if !ok {
		return nil
	}
	return curveLineHits(c, line, ts)
}

// IntersectQuad returns the points where c crosses q. T0 is the parameter on
// c and T1 the one on q.
func (c CubicBez) IntersectQuad(q QuadBez) []Intersection {
	ts, ok := CubicQuadBezIntersect(c.P0, c.P1, c.P2, c.P3, q.P0, q.P1, q.P2)
	if !ok {
		return nil
	}
	return curveCurveHits(c, q, ts)
}

// IntersectCubic returns the points where c crosses o. T0 is the parameter on
// c and T1 the one on o.
func (c CubicBez) IntersectCubic(o CubicBez) []Intersection {
	ts, ok := CubicBeziersIntersect(c.P0, c.P1, c.P2, c.P3, o.P0, o.P1, o.P2, o.P3)
	if !ok {
		return nil
	}
	return curveCurveHits(c, o, ts)
}

// SelfIntersect returns the two parameters at which the curve passes through
// the same point, if it forms a loop.
//
// The x and y coordinate functions, divided by their cubic coefficients,
// differ by a quadratic; a self-intersection at s and t exists exactly when
// the cubic derived from that difference has three real roots, the outer two
// of which are s and t. Either may lie outside [0, 1], in which case the loop
// closes on the curve's extension.
func (c CubicBez) SelfIntersect() (t0, t1 float64, ok bool) {
	// Both cubic coefficients must be non-zero. Loops survive rotation, so an
	// axis-aligned cubic term is rotated away first.
	k := c.P3.Sub(c.P0).Add(c.P1.Sub(c.P2).Mul(3))
	if poly.AlmostZero(k.X) || poly.AlmostZero(k.Y) {
		if poly.AlmostZero(k.Hypot()) {
			return 0, 0, false
		}
		c = c.Transform(Rotate(math.Pi / 4))
	}
	p0, p1, p2, p3 := c.P0, c.P1, c.P2, c.P3
	a := p3.X - p0.X + 3*(p1.X-p2.X)
	if poly.AlmostZero(a) {
		return 0, 0, false
	}
	b := (3*(p0.X+p2.X) - 6*p1.X) / a
	cx := (3 * (p1.X - p0.X)) / a

	d := p3.Y - p0.Y + 3*(p1.Y-p2.Y)
	if poly.AlmostZero(d) {
		return 0, 0, false
	}
	e := (3*(p0.Y+p2.Y) - 6*p1.Y) / d
	if b == e {
		return 0, 0, false
	}
	f := (3 * (p1.Y - p0.Y)) / d
	g := (f - cx) / (b - e)
	g2 := g * g

	roots := poly.New(
		-g2*g-b*g2-cx*g,
		3*g2+2*(g*b+cx),
		-3*g,
		2,
	).Roots()
	if len(roots) != 3 {
		return 0, 0, false
	}
	return roots[0], roots[2], true
}

// Inflections returns the parameters in [0, 1] of the curve's inflection
// points, where the curvature changes sign.
func (c CubicBez) Inflections() []float64 {
	a := c.P1.Sub(c.P0)
	b := c.P2.Sub(c.P1).Sub(a)
	d := c.P3.Sub(c.P0).Sub(c.P2.Sub(c.P1).Mul(3))
	var out []float64
	for _, t := range poly.New(a.Cross(b), a.Cross(d), b.Cross(d)).Roots() {
		if t >= 0 && t <= 1 {
			out = append(out, t)
		}
	}
	return out
}
