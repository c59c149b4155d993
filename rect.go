package planar

import "math"

// Rect is an axis-aligned rectangle given by two corners. A rectangle may be
// degenerate; methods that need ordered corners say so.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1,
// ensuring that width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromOrigin returns a rectangle with the given size, extending to the
// right and down (for positive sizes) from the origin. Width and height are
// ensured to be non-negative.
func NewRectFromOrigin(origin Point, size Size) Rect {
	return NewRectFromPoints(origin, origin.Translate(size.AsVec2()))
}

// NewRectFromCenter returns a rectangle with the given size, centered around
// center.
func NewRectFromCenter(center Point, size Size) Rect {
	w, h := 0.5*math.Abs(size.Width), 0.5*math.Abs(size.Height)
	return Rect{
		X0: center.X - w,
		Y0: center.Y - h,
		X1: center.X + w,
		Y1: center.Y + h,
	}
}

// Abs returns a rectangle with the same extents as r and non-negative width
// and height.
func (r Rect) Abs() Rect {
	return Rect{X0: r.MinX(), Y0: r.MinY(), X1: r.MaxX(), Y1: r.MaxY()}
}

func (r Rect) MinX() float64 { return min(r.X0, r.X1) }
func (r Rect) MaxX() float64 { return max(r.X0, r.X1) }
func (r Rect) MinY() float64 { return min(r.Y0, r.Y1) }
func (r Rect) MaxY() float64 { return max(r.Y0, r.Y1) }

// Origin returns the (X0, Y0) corner.
func (r Rect) Origin() Point {
	return Point{X: r.X0, Y: r.Y0}
}

// Width returns X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Area returns the signed area.
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// IsEmpty reports whether r encloses no area.
func (r Rect) IsEmpty() bool {
	return r.Area() == 0
}

// Contains reports whether pt lies inside r. The minimum edges are inclusive
// and the maximum edges exclusive, so that a tiling of rectangles contains
// every point exactly once. r must have non-negative width and height.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X < r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y < r.Y1
}

// ContainsRect reports whether o lies entirely within r, edges included.
func (r Rect) ContainsRect(o Rect) bool {
	r, o = r.Abs(), o.Abs()
	return o.X0 >= r.X0 && o.X1 <= r.X1 && o.Y0 >= r.Y0 && o.Y1 <= r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// This includes the perimeter of zero-area rectangles, so a succession of
// UnionPoint calls starting from a zero-area rectangle at the first point
// yields the points' enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Intersect returns the intersection of two rectangles.
//
// The result is zero-area if the rectangles don't overlap or either input has
// negative width or height. The result always has non-negative width and
// height.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X0, o.X0)
	y0 := max(r.Y0, o.Y0)
	x1 := min(r.X1, o.X1)
	y1 := min(r.Y1, o.Y1)
	return Rect{
		X0: x0,
		Y0: y0,
		X1: max(x0, x1),
		Y1: max(y0, y1),
	}
}

// Overlaps reports whether r and o share interior area.
func (r Rect) Overlaps(o Rect) bool {
	r, o = r.Abs(), o.Abs()
	return r.X0 < o.X1 && o.X0 < r.X1 && r.Y0 < o.Y1 && o.Y0 < r.Y1
}

// Inflate expands a rectangle by a constant amount in both directions.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

func (r Rect) Translate(v Vec2) Rect {
	return Rect{
		X0: r.X0 + v.X,
		Y0: r.Y0 + v.Y,
		X1: r.X1 + v.X,
		Y1: r.Y1 + v.Y,
	}
}

// Round returns a new rectangle with each coordinate rounded to the nearest
// integer.
func (r Rect) Round() Rect {
	return Rect{
		X0: math.Round(r.X0),
		Y0: math.Round(r.Y0),
		X1: math.Round(r.X1),
		Y1: math.Round(r.Y1),
	}
}

func (r Rect) IsInf() bool {
	return math.IsInf(r.X0, 0) ||
		math.IsInf(r.X1, 0) ||
		math.IsInf(r.Y0, 0) ||
		math.IsInf(r.Y1, 0)
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) ||
		math.IsNaN(r.X1) ||
		math.IsNaN(r.Y0) ||
		math.IsNaN(r.Y1)
}

func (r Rect) BoundingBox() Rect {
	return r.Abs()
}

// Winding returns the winding number of pt: ±1 inside, by the orientation of
// the corners, and 0 outside.
func (r Rect) Winding(pt Point) int {
	// If the plane is tiled with rectangles, the winding number is nonzero
	// for exactly one of them.
	if !r.Abs().Contains(pt) {
		return 0
	}
	if r.X1 > r.X0 != (r.Y1 > r.Y0) {
		return -1
	}
	return 1
}

// Path returns the outline of r, starting at (X0, Y0) and running through
// (X1, Y0).
func (r Rect) Path() Path {
	var p Path
	p.MoveTo(Pt(r.X0, r.Y0))
	p.LineTo(Pt(r.X1, r.Y0))
	p.LineTo(Pt(r.X1, r.Y1))
	p.LineTo(Pt(r.X0, r.Y1))
	p.ClosePath()
	return p
}
