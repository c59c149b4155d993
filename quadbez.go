package planar

import (
	"slices"

	"honnef.co/go/planar/poly"
)

var _ ParametricCurve = QuadBez{}
var _ Winder = QuadBez{}
var _ SignedAreaer = QuadBez{}

// QuadBez is a quadratic Bézier segment.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// BoundingBox returns the tight bounding box of the curve, from its end
// points and the stationary points of each coordinate.
func (q QuadBez) BoundingBox() Rect {
	return BoundingBox(q)
}

// TransformedBoundingBox returns the bounding box of the curve after applying
// aff. It is tight: the stationary points of A·x + B·y and D·x + E·y are
// evaluated on the untransformed curve.
func (q QuadBez) TransformedBoundingBox(aff Affine) Rect {
	row := func(a, b, c float64) (lo, hi float64) {
		ts := []float64{0, 1}
		if t, ok := QuadStationary(q.P0, q.P1, q.P2, a, b); ok {
			ts = append(ts, poly.Clamp(t, 0, 1))
		}
		return rowRange(q, ts, a, b, c)
	}
	x0, x1 := row(aff.A, aff.B, aff.C)
	y0, y1 := row(aff.D, aff.E, aff.F)
	return Rect{x0, y0, x1, y1}
}

// Raise raises the order by 1, returning a cubic Bézier segment that exactly
// represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// Split subdivides the curve at t using de Casteljau's algorithm.
func (q QuadBez) Split(t float64) (QuadBez, QuadBez) {
	p01 := q.P0.Lerp(q.P1, t)
	p12 := q.P1.Lerp(q.P2, t)
	pm := p01.Lerp(p12, t)
	return QuadBez{q.P0, p01, pm}, QuadBez{pm, p12, q.P2}
}

func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

func (q QuadBez) Subsegment(t0 float64, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

func (q QuadBez) Differentiate() Line {
	return Line{
		Point(q.P1.Sub(q.P0).Mul(2)),
		Point(q.P2.Sub(q.P1).Mul(2)),
	}
}

// Polynomials returns the coordinate functions of the curve in the power
// basis.
func (q QuadBez) Polynomials() (x, y poly.Polynomial) {
	return BezierPolynomials(q.P0, q.P1, q.P2)
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

func (q QuadBez) Extrema() ([MaxExtrema]float64, int) {
	// The derivative of each coordinate is linear, with at most one root.
	var out [MaxExtrema]float64
	var outN int
	for _, ab := range [2][2]float64{{1, 0}, {0, 1}} {
		if t, ok := QuadStationary(q.P0, q.P1, q.P2, ab[0], ab[1]); ok && t > 0 && t < 1 {
			out[outN] = t
			outN++
		}
	}
	slices.Sort(out[:outN])
	return out, outN
}

// Nearest returns the squared distance from pt to the nearest point of the
// curve, and that point's parameter. accuracy is unused; the result is
// computed analytically.
func (q QuadBez) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	return nearestAmong(q, pt, ClosestBezier(pt, q.P0, q.P1, q.P2))
}

func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{
		P0: q.P0.Transform(aff),
		P1: q.P1.Transform(aff),
		P2: q.P2.Transform(aff),
	}
}

func (q QuadBez) SignedArea() float64 {
	v := q.P0.X*(2.0*q.P1.Y+q.P2.Y) +
		2.0*(q.P1.X*(q.P2.Y-q.P0.Y)) -
		q.P2.X*(q.P0.Y+2.0*q.P1.Y)
	return v * (1.0 / 6.0)
}

// Winding returns the curve's contribution to the winding number of pt.
func (q QuadBez) Winding(pt Point) float64 {
	return QuadBezWinding(Point(q.P0.Sub(pt)), Point(q.P1.Sub(pt)), Point(q.P2.Sub(pt)))
}

func (q QuadBez) Seg() Segment {
	return Segment{Kind: QuadKind, P0: q.P0, P1: q.P1, P2: q.P2}
}

// IntersectLine returns the points where the curve crosses the line segment.
// T0 is the parameter on q and T1 the one on line.
func (q QuadBez) IntersectLine(line Line) []Intersection {
	ts, ok := QuadBezLineIntersect(q.P0, q.P1, q.P2, line.P0, line.P1)
	if !ok {
		return nil
	}
	return curveLineHits(q, line, ts)
}

// IntersectQuad returns the points where q crosses o. T0 is the parameter on
// q and T1 the one on o. Overlapping curves have no isolated intersections and
// produce none.
func (q QuadBez) IntersectQuad(o QuadBez) []Intersection {
	ts, ok := QuadBeziersIntersect(q.P0, q.P1, q.P2, o.P0, o.P1, o.P2)
	if !ok {
		return nil
	}
	return curveCurveHits(q, o, ts)
}
