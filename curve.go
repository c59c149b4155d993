package planar

import (
	"math"

	"honnef.co/go/planar/poly"
)

// Epsilon is the absolute tolerance used for near-zero tests throughout the
// package. See [poly.Epsilon].
const Epsilon = poly.Epsilon

// MaxExtrema is the maximum number of extrema that can be reported by
// [Extremer].
//
// This is 4 to support cubic Béziers. If other curves are used, they should be
// subdivided to limit the number of extrema.
const MaxExtrema = 4

// DefaultAccuracy is a default value for methods that take an accuracy
// argument. It is suitable for general-purpose use, such as 2D graphics.
const DefaultAccuracy = 1e-6

// Extremer describes parametrized curves that report their extrema.
type Extremer interface {
	// Extrema computes the extrema of the curve.
	//
	// Only extrema within the interior of the curve count, in increasing
	// parameter order.
	Extrema() ([MaxExtrema]float64, int)
}

// ParametricCurve describes a curve parametrized by a scalar.
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t. Generally, t is in the range [0, 1].
	Eval(t float64) Point
	Start() Point
	End() Point
}

// Winder describes curves that contribute to the winding number of a point
// when they form part of a closed outline.
type Winder interface {
	// Winding returns the curve's contribution to the winding number of pt:
	// the angle swept by the curve around pt, divided by 2π. Contributions of
	// the segments of a closed outline sum to an integer.
	Winding(pt Point) float64
}

// SignedAreaer describes curves that can have the signed area under them
// measured.
//
// For a closed path, the signed area of the path is the sum of signed areas
// of the segments. This is a variant of the "shoelace formula" and can be
// computed exactly for Béziers thanks to Green's theorem.
type SignedAreaer interface {
	SignedArea() float64
}

// ExtremaRanges returns parameter ranges, each of which is monotonic within
// the range.
func ExtremaRanges(e Extremer) ([MaxExtrema + 1][2]float64, int) {
	var ret [MaxExtrema + 1][2]float64
	var retN int
	var t0 float64

	ex, n := e.Extrema()
	for _, t := range ex[:n] {
		ret[retN] = [2]float64{t0, t}
		retN++
		t0 = t
	}
	ret[retN] = [2]float64{t0, 1}
	retN++
	return ret, retN
}

// BoundingBox returns the smallest axis-aligned rectangle that encloses the
// curve in the range [0, 1].
func BoundingBox(c interface {
	Extremer
	ParametricCurve
}) Rect {
	bbox := NewRectFromPoints(c.Eval(0), c.Eval(1))
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}

// rowRange returns the range of a·x + b·y + off over the points of c at ts.
func rowRange(c ParametricCurve, ts []float64, a, b, off float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, t := range ts {
		p := c.Eval(t)
		v := a*p.X + b*p.Y
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo + off, hi + off
}

// expand rounds f away from zero.
func expand(f float64) float64 {
	return math.Copysign(math.Ceil(math.Abs(f)), f)
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}
