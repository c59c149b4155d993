package planar

import (
	"math"
)

type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether pt lies strictly inside the circle.
func (c Circle) Contains(pt Point) bool {
	return c.Winding(pt) != 0
}

// Ellipse returns the circle as an [Ellipse].
func (c Circle) Ellipse() Ellipse {
	return NewEllipseFromCircle(c)
}

// Path returns a closed path of four cubic Béziers approximating the circle.
func (c Circle) Path() Path {
	return c.Ellipse().Path()
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	x := c.Center.X
	y := c.Center.Y
	return Rect{
		X0: x - r,
		Y0: y - r,
		X1: x + r,
		Y1: y + r,
	}
}

func (c Circle) Perimeter() float64 {
	return math.Abs(2 * math.Pi * c.Radius)
}

func (c Circle) Winding(pt Point) int {
	if pt.Sub(c.Center).Hypot2() < c.Radius*c.Radius {
		return 1
	}
	return 0
}

func (c Circle) Transform(aff Affine) Ellipse {
	return c.Ellipse().Transform(aff)
}

// Eval returns the point of the circle at angle th.
func (c Circle) Eval(th float64) Point {
	return c.Center.Translate(VecFromAngle(th).Mul(c.Radius))
}

// IntersectLine returns the points where line crosses the circle. T0 is the
// angle on the circle and T1 the parameter on line.
func (c Circle) IntersectLine(line Line) []Intersection {
	return c.Ellipse().IntersectLine(line)
}

// IntersectQuad returns the points where q crosses the circle.
func (c Circle) IntersectQuad(q QuadBez) []Intersection {
	return c.Ellipse().IntersectQuad(q)
}

// IntersectCubic returns the points where cb crosses the circle.
func (c Circle) IntersectCubic(cb CubicBez) []Intersection {
	return c.Ellipse().IntersectCubic(cb)
}
