package planar

import (
	"math"

	"honnef.co/go/planar/poly"
)

// circleArm is the control arm length, relative to the radius, of the cubic
// Bézier quarter circle with minimal radial error. It is a root of
//
//	18225x¹² + 466560x¹¹ − 28977264x¹⁰ + 63288000x⁹ + 96817248x⁸ − 515232000x⁷
//	+ 883891456x⁶ − 921504768x⁵ + 668905728x⁴ − 342814720x³ + 117129216x²
//	− 23592960x + 2097152.
//
// See http://spencermortensen.com/articles/bezier-circle/.
const circleArm = 0.5519150244935105707435627227925666423361803947243089

// unitQuarters are the control points, after the shared start point, of the
// four cubic quarters of the unit circle, counter-clockwise from (1, 0).
var unitQuarters = [4][3]Point{
	{{1, circleArm}, {circleArm, 1}, {0, 1}},
	{{-circleArm, 1}, {-1, circleArm}, {-1, 0}},
	{{-1, -circleArm}, {-circleArm, -1}, {0, -1}},
	{{circleArm, -1}, {1, -circleArm}, {1, 0}},
}

// UnitArc returns the control polygon of a chain of cubic Béziers that
// approximates the arc of the unit circle from angle 0 to angle. The polygon
// has 3n+1 points for n cubics, each spanning at most a quarter turn. A
// negative angle produces the clockwise arc.
//
// A partial final quarter is cut from the full quarter at the parameter
// nearest to the arc's end point, so its shape matches the full quarter.
func UnitArc(angle float64) []Point {
	pts := []Point{{1, 0}}
	rest := math.Abs(angle)
	for i := 0; rest > 0 && !poly.AlmostZero(rest); i++ {
		pts = append(pts, unitQuarters[i&3][:]...)
		if rest < math.Pi/2 {
			n := len(pts)
			quarter := pts[n-4:]
			end := Point(VecFromAngle(rest + float64(i&3)*math.Pi/2))
			t := ClosestBezier(end, quarter...)[0]
			left, _ := BezierSplit(t, quarter...)
			pts[n-3] = left[1]
			pts[n-2] = left[2]
			pts[n-1] = end
		}
		rest -= math.Pi / 2
	}
	if angle < 0 {
		for i := range pts {
			pts[i].Y = -pts[i].Y
		}
	}
	return pts
}

// Arc is an elliptical arc.
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
	XRotation  float64
}

// unitMap returns the transform that takes the unit arc from 0 to SweepAngle
// onto a.
func (a Arc) unitMap() Affine {
	return Translate(Vec2(a.Center)).
		Mul(Rotate(a.XRotation)).
		Mul(Scale(a.Radii.X, a.Radii.Y)).
		Mul(Rotate(a.StartAngle))
}

// Path returns the arc as an open path of cubic Béziers.
func (a Arc) Path() Path {
	pts := UnitArc(a.SweepAngle)
	aff := a.unitMap()
	var p Path
	p.MoveTo(pts[0].Transform(aff))
	for i := 1; i+2 < len(pts); i += 3 {
		p.CubicTo(pts[i].Transform(aff), pts[i+1].Transform(aff), pts[i+2].Transform(aff))
	}
	return p
}

// Eval returns the point of the underlying ellipse at angle th, measured
// before the ellipse's rotation.
func (a Arc) Eval(th float64) Point {
	return Point(VecFromAngle(th)).Transform(
		Translate(Vec2(a.Center)).Mul(Rotate(a.XRotation)).Mul(Scale(a.Radii.X, a.Radii.Y)))
}

func (a Arc) Start() Point { return a.Eval(a.StartAngle) }
func (a Arc) End() Point   { return a.Eval(a.StartAngle + a.SweepAngle) }

// SignedArea returns the exact signed area swept by the arc with respect to
// the origin.
func (a Arc) SignedArea() float64 {
	lin := Rotate(a.XRotation).Mul(Scale(a.Radii.X, a.Radii.Y))
	chord := a.End().Sub(a.Start())
	return 0.5 * (Vec2(a.Center).Cross(chord) + lin.Determinant()*a.SweepAngle)
}

// Winding returns the arc's contribution to the winding number of pt. The arc
// is not closed.
func (a Arc) Winding(pt Point) float64 {
	return SegmentsWinding(a.Path().Segments(), pt)
}

// BoundingBox returns the bounding box of the arc's Bézier approximation.
func (a Arc) BoundingBox() Rect {
	return a.Path().BoundingBox()
}

func (a Arc) Translate(v Vec2) Arc {
	a.Center = a.Center.Translate(v)
	return a
}
