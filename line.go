package planar

import (
	"math"

	"honnef.co/go/planar/poly"
)

// Line represents a line segment. It is a [ParametricCurve].
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ ParametricCurve = Line{}
var _ Winder = Line{}
var _ SignedAreaer = Line{}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	return LinesIntersect(l.P0, l.P1, o.P0, o.P1)
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

// TransformedBoundingBox returns the bounding box of the line after applying
// aff. Affine maps take lines to lines, so this is exact.
func (l Line) TransformedBoundingBox(aff Affine) Rect {
	return l.Transform(aff).BoundingBox()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Nearest returns the squared distance from pt to the nearest point of the
// line, and that point's parameter.
func (l Line) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) Subsegment(start, end float64) Line {
	return Line{l.Eval(start), l.Eval(end)}
}

// Split splits the line at t.
func (l Line) Split(t float64) (Line, Line) {
	pm := l.Eval(t)
	return Line{l.P0, pm}, Line{pm, l.P1}
}

func (l Line) Subdivide() (Line, Line) {
	return l.Split(0.5)
}

// Differentiate returns the line's constant derivative.
func (l Line) Differentiate() Vec2 {
	return l.P1.Sub(l.P0)
}

// Polynomials returns the coordinate functions of the line in the power
// basis.
func (l Line) Polynomials() (x, y poly.Polynomial) {
	d := l.P1.Sub(l.P0)
	return poly.New(l.P0.X, d.X), poly.New(l.P0.Y, d.Y)
}

func (l Line) Extrema() ([MaxExtrema]float64, int) {
	return [MaxExtrema]float64{}, 0
}

func (l Line) SignedArea() float64 {
	return Vec2(l.P0).Cross(Vec2(l.P1)) * 0.5
}

// Winding returns the line's contribution to the winding number of pt.
func (l Line) Winding(pt Point) float64 {
	return LineWinding(Point(l.P0.Sub(pt)), Point(l.P1.Sub(pt)))
}

// Raise returns a cubic Bézier that traces the same points. Its
// parametrization differs from the line's.
func (l Line) Raise() CubicBez {
	return CubicBez{l.P0, l.P0, l.P1, l.P1}
}

func (l Line) Seg() Segment {
	return Segment{Kind: LineKind, P0: l.P0, P1: l.P1}
}

// IntersectLine returns the point where l and o cross, if they do within both
// segments. T0 is the parameter on l and T1 the one on o.
func (l Line) IntersectLine(o Line) []Intersection {
	p0 := o.P0
	p1 := o.P1
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y

	det := dx*(l.P1.Y-l.P0.Y) - dy*(l.P1.X-l.P0.X)
	if math.Abs(det) < Epsilon {
		// Lines are coincident (or nearly so).
		return nil
	}
	// t = position on self
	t := (dx*(p0.Y-l.P0.Y) - dy*(p0.X-l.P0.X)) / det
	if t < -Epsilon || t > 1+Epsilon {
		return nil
	}
	// u = position on probe line
	u := ((l.P0.X-p0.X)*(l.P1.Y-l.P0.Y) - (l.P0.Y-p0.Y)*(l.P1.X-l.P0.X)) / det
	if u < 0 || u > 1 {
		return nil
	}
	t = poly.Clamp(t, 0, 1)
	return []Intersection{{Point: l.Eval(t), T0: t, T1: u}}
}
