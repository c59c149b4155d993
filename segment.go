package planar

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic Bézier using the current location and the two points.
	QuadToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Close off the subpath with a line back to its start.
	ClosePathKind
)

// PathElement is one drawing instruction of a [Path].
//
// A valid path has a MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case QuadToKind:
		kind = "QuadTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case QuadToKind:
		return QuadTo(el.P0.Transform(aff), el.P1.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

func (el PathElement) IsInf() bool {
	return el.P0.IsInf() || el.P1.IsInf() || el.P2.IsInf()
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() || el.P1.IsNaN() || el.P2.IsNaN()
}

// EndPoint returns the point the element ends at. ClosePath has none.
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p1, p2 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p1, P1: p2}
}

func CubicTo(p1, p2, p3 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p1, P1: p2, P2: p3}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

type SegmentKind int

const (
	// A line segment.
	LineKind SegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment.
	CubicKind
)

func (k SegmentKind) String() string {
	switch k {
	case LineKind:
		return "Line"
	case QuadKind:
		return "Quad"
	case CubicKind:
		return "Cubic"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// Segment is one piece of a path: a [Line], [QuadBez] or [CubicBez],
// depending on Kind. Points beyond the kind's order are zero.
type Segment struct {
	// This is a tagged union rather than an interface so that Transform and
	// friends on the concrete types can keep returning their own types.

	Kind SegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

var _ ParametricCurve = Segment{}
var _ Winder = Segment{}
var _ SignedAreaer = Segment{}

// Line returns the line represented by this segment. This is only valid when
// Kind == LineKind.
func (seg Segment) Line() Line { return Line{seg.P0, seg.P1} }

// Quad returns the quadratic Bézier represented by this segment. This is only
// valid when Kind == QuadKind.
func (seg Segment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

// Cubic converts seg to a cubic Bézier. This is valid for any Kind.
func (seg Segment) Cubic() CubicBez {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Raise()
	case QuadKind:
		return seg.Quad().Raise()
	case CubicKind:
		return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		return CubicBez{}
	}
}

// Points returns the control polygon of the segment.
func (seg Segment) Points() []Point {
	switch seg.Kind {
	case LineKind:
		return []Point{seg.P0, seg.P1}
	case QuadKind:
		return []Point{seg.P0, seg.P1, seg.P2}
	case CubicKind:
		return []Point{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		return nil
	}
}

func (seg Segment) BoundingBox() Rect {
	switch seg.Kind {
	case LineKind:
		return seg.Line().BoundingBox()
	case QuadKind:
		return seg.Quad().BoundingBox()
	case CubicKind:
		return seg.Cubic().BoundingBox()
	default:
		return Rect{}
	}
}

func (seg Segment) TransformedBoundingBox(aff Affine) Rect {
	switch seg.Kind {
	case LineKind:
		return seg.Line().TransformedBoundingBox(aff)
	case QuadKind:
		return seg.Quad().TransformedBoundingBox(aff)
	case CubicKind:
		return seg.Cubic().TransformedBoundingBox(aff)
	default:
		return Rect{}
	}
}

func (seg Segment) Transform(aff Affine) Segment {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Transform(aff).Seg()
	case QuadKind:
		return seg.Quad().Transform(aff).Seg()
	case CubicKind:
		return seg.Cubic().Transform(aff).Seg()
	default:
		return Segment{}
	}
}

func (seg Segment) IsInf() bool {
	return seg.P0.IsInf() || seg.P1.IsInf() || seg.P2.IsInf() || seg.P3.IsInf()
}

func (seg Segment) IsNaN() bool {
	return seg.P0.IsNaN() || seg.P1.IsNaN() || seg.P2.IsNaN() || seg.P3.IsNaN()
}

func (seg Segment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	default:
		return Point{}
	}
}

func (seg Segment) Start() Point {
	return seg.P0
}

func (seg Segment) End() Point {
	switch seg.Kind {
	case LineKind:
		return seg.P1
	case QuadKind:
		return seg.P2
	case CubicKind:
		return seg.P3
	default:
		return Point{}
	}
}

func (seg Segment) Subsegment(start, end float64) Segment {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Subsegment(start, end).Seg()
	case QuadKind:
		return seg.Quad().Subsegment(start, end).Seg()
	case CubicKind:
		return seg.Cubic().Subsegment(start, end).Seg()
	default:
		return Segment{}
	}
}

// Split splits the segment at t into two segments of the same kind.
func (seg Segment) Split(t float64) (Segment, Segment) {
	switch seg.Kind {
	case LineKind:
		a, b := seg.Line().Split(t)
		return a.Seg(), b.Seg()
	case QuadKind:
		a, b := seg.Quad().Split(t)
		return a.Seg(), b.Seg()
	case CubicKind:
		a, b := seg.Cubic().Split(t)
		return a.Seg(), b.Seg()
	default:
		return Segment{}, Segment{}
	}
}

func (seg Segment) Subdivide() (Segment, Segment) {
	return seg.Split(0.5)
}

func (seg Segment) SignedArea() float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().SignedArea()
	case QuadKind:
		return seg.Quad().SignedArea()
	case CubicKind:
		return seg.Cubic().SignedArea()
	default:
		return 0
	}
}

// Winding returns the segment's contribution to the winding number of pt.
func (seg Segment) Winding(pt Point) float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Winding(pt)
	case QuadKind:
		return seg.Quad().Winding(pt)
	case CubicKind:
		return seg.Cubic().Winding(pt)
	default:
		return 0
	}
}

func (seg Segment) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Nearest(pt, accuracy)
	case QuadKind:
		return seg.Quad().Nearest(pt, accuracy)
	case CubicKind:
		return seg.Cubic().Nearest(pt, accuracy)
	default:
		return 0, 0
	}
}

func (seg Segment) Extrema() ([MaxExtrema]float64, int) {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Extrema()
	case QuadKind:
		return seg.Quad().Extrema()
	case CubicKind:
		return seg.Cubic().Extrema()
	default:
		return [MaxExtrema]float64{}, 0
	}
}

// PathElement returns the PathElement corresponding to the segment,
// discarding the segment's starting point.
func (seg Segment) PathElement() PathElement {
	switch seg.Kind {
	case LineKind:
		return LineTo(seg.P1)
	case QuadKind:
		return QuadTo(seg.P1, seg.P2)
	case CubicKind:
		return CubicTo(seg.P1, seg.P2, seg.P3)
	default:
		return PathElement{}
	}
}

// Reverse returns a segment tracing the same points in the opposite
// direction.
func (seg Segment) Reverse() Segment {
	switch seg.Kind {
	case LineKind:
		seg.P0, seg.P1 = seg.P1, seg.P0
		return seg
	case QuadKind:
		seg.P0, seg.P2 = seg.P2, seg.P0
		return seg
	case CubicKind:
		seg.P0, seg.P1, seg.P2, seg.P3 = seg.P3, seg.P2, seg.P1, seg.P0
		return seg
	default:
		return Segment{}
	}
}

// IntersectLine returns the points where line crosses the segment. T0 is the
// parameter on the segment and T1 the one on line.
func (seg Segment) IntersectLine(line Line) []Intersection {
	switch seg.Kind {
	case LineKind:
		return seg.Line().IntersectLine(line)
	case QuadKind:
		return seg.Quad().IntersectLine(line)
	case CubicKind:
		return seg.Cubic().IntersectLine(line)
	default:
		return nil
	}
}

// Intersect returns the points where o crosses the segment. T0 is the
// parameter on seg and T1 the one on o. Coincident segments report no
// intersections.
func (seg Segment) Intersect(o Segment) []Intersection {
	switch seg.Kind {
	case LineKind:
		l := seg.Line()
		switch o.Kind {
		case LineKind:
			return l.IntersectLine(o.Line())
		case QuadKind:
			return swapped(o.Quad().IntersectLine(l))
		case CubicKind:
			return swapped(o.Cubic().IntersectLine(l))
		}
	case QuadKind:
		q := seg.Quad()
		switch o.Kind {
		case LineKind:
			return q.IntersectLine(o.Line())
		case QuadKind:
			return q.IntersectQuad(o.Quad())
		case CubicKind:
			return swapped(o.Cubic().IntersectQuad(q))
		}
	case CubicKind:
		c := seg.Cubic()
		switch o.Kind {
		case LineKind:
			return c.IntersectLine(o.Line())
		case QuadKind:
			return c.IntersectQuad(o.Quad())
		case CubicKind:
			return c.IntersectCubic(o.Cubic())
		}
	}
	return nil
}

// swapped exchanges the parameters of each intersection in place.
func swapped(xs []Intersection) []Intersection {
	for i := range xs {
		xs[i].T0, xs[i].T1 = xs[i].T1, xs[i].T0
	}
	return xs
}

// Path is a sequence of drawing instructions describing zero or more
// subpaths of lines and Béziers. Each subpath begins with a MoveTo and may
// end with a ClosePath.
//
// Paths are filled: [Path.Winding], [Path.SignedArea] and [Path.FillSegments]
// treat every subpath as closed, whether or not it ends with a ClosePath.
type Path []PathElement

// Transform returns a new path with aff applied to every point.
func (p Path) Transform(aff Affine) Path {
	els := make(Path, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

// Push adds an element to the path.
func (p *Path) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo starts a new subpath at pt.
func (p *Path) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo adds a line from the current point to pt.
func (p *Path) LineTo(pt Point) { p.Push(LineTo(pt)) }

// QuadTo adds a quadratic Bézier from the current point.
func (p *Path) QuadTo(p1, p2 Point) { p.Push(QuadTo(p1, p2)) }

// CubicTo adds a cubic Bézier from the current point.
func (p *Path) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ClosePath closes the current subpath.
func (p *Path) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p Path) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Segments returns an iterator over the path's segments, as drawn.
func (p Path) Segments() iter.Seq[Segment] { return Segments(p.Elements()) }

// FillSegments returns an iterator over the path's segments with every
// subpath closed.
func (p Path) FillSegments() iter.Seq[Segment] { return FillSegments(p.Elements()) }

// SignedArea returns the signed area enclosed by the path, positive for
// counter-clockwise outlines in a y-up coordinate system.
func (p Path) SignedArea() float64 {
	return SegmentsSignedArea(p.FillSegments())
}

// Winding returns the winding number of pt with respect to the filled path.
// The result is an integer up to rounding error, except for points on the
// outline.
func (p Path) Winding(pt Point) float64 {
	return SegmentsWinding(p.FillSegments(), pt)
}

// WindingNumber returns [Path.Winding] rounded to the nearest integer. Before
// rounding, a point at a corner of a polygon counts with the fraction of a
// turn spanned by the interior angle there, and a point on a straight edge
// with half a turn.
func (p Path) WindingNumber(pt Point) int {
	w := p.Winding(pt)
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0
	}
	return int(math.Round(w))
}

// Contains reports whether pt lies inside the path under the nonzero fill
// rule.
func (p Path) Contains(pt Point) bool {
	return p.WindingNumber(pt) != 0
}

// BoundingBox returns the tight bounding box of the path's segments.
func (p Path) BoundingBox() Rect {
	return SegmentsBoundingBox(p.Segments())
}

// TransformedBoundingBox returns the tight bounding box of the path after
// applying aff.
func (p Path) TransformedBoundingBox(aff Affine) Rect {
	var bbox option[Rect]
	for seg := range p.Segments() {
		sbbox := seg.TransformedBoundingBox(aff)
		if bbox.isSet {
			sbbox = bbox.value.Union(sbbox)
		}
		bbox.set(sbbox)
	}
	return bbox.value
}

// ControlBox returns a rectangle that conservatively encloses the path.
//
// Unlike [Path.BoundingBox], this uses control points directly rather than
// computing tight bounds for curve elements.
func (p Path) ControlBox() Rect {
	var cbox option[Rect]
	addPt := func(pt Point) {
		if cbox.isSet {
			cbox.set(cbox.value.UnionPoint(pt))
		} else {
			cbox.set(NewRectFromPoints(pt, pt))
		}
	}
	for _, el := range p {
		switch el.Kind {
		case MoveToKind, LineToKind:
			addPt(el.P0)
		case QuadToKind:
			addPt(el.P0)
			addPt(el.P1)
		case CubicToKind:
			addPt(el.P0)
			addPt(el.P1)
			addPt(el.P2)
		}
	}
	return cbox.value
}

func (p Path) IsInf() bool {
	return slices.ContainsFunc(p, PathElement.IsInf)
}

func (p Path) IsNaN() bool {
	return slices.ContainsFunc(p, PathElement.IsNaN)
}

// Reverse returns a new path with the direction of every subpath reversed.
func (p Path) Reverse() Path {
	out := make(Path, 0, len(p))
	var start Point
	begin := 0
	flush := func(end int) {
		if begin < end || (begin > 0 && p[begin-1].Kind == MoveToKind) {
			reverseSubpath(start, p[begin:end], &out)
		}
	}
	for i, el := range p {
		switch el.Kind {
		case MoveToKind:
			flush(i)
			start = el.P0
			begin = i + 1
		case ClosePathKind:
			flush(i)
			out.ClosePath()
			begin = i + 1
		}
	}
	flush(len(p))
	return out
}

// reverseSubpath appends the reversal of the subpath that starts at start
// and continues with els, which holds no MoveTo or ClosePath.
func reverseSubpath(start Point, els []PathElement, out *Path) {
	endAt := func(i int) Point {
		if i < 0 {
			return start
		}
		pt, _ := els[i].EndPoint()
		return pt
	}
	out.MoveTo(endAt(len(els) - 1))
	for i := len(els) - 1; i >= 0; i-- {
		el := els[i]
		to := endAt(i - 1)
		switch el.Kind {
		case LineToKind:
			out.LineTo(to)
		case QuadToKind:
			out.QuadTo(el.P0, to)
		case CubicToKind:
			out.CubicTo(el.P1, el.P0, to)
		}
	}
}

// Segments converts a sequence of path elements into the segments they
// draw. An element other than MoveTo with no current point starts a
// subpath at its end point without drawing.
func Segments(seq iter.Seq[PathElement]) iter.Seq[Segment] {
	return segments(seq, false)
}

// FillSegments is like [Segments] but closes every subpath with a line back
// to its start, as filling does.
func FillSegments(seq iter.Seq[PathElement]) iter.Seq[Segment] {
	return segments(seq, true)
}

func segments(seq iter.Seq[PathElement], fill bool) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		var start, last Point
		var current bool
		closeSubpath := func() bool {
			if current && last != start {
				p := last
				last = start
				return yield(Line{p, start}.Seg())
			}
			return true
		}
		for el := range seq {
			if el.Kind == ClosePathKind {
				if !closeSubpath() {
					return
				}
				continue
			}
			end, ok := el.EndPoint()
			if !ok {
				continue
			}
			if el.Kind == MoveToKind || !current {
				if fill && !closeSubpath() {
					return
				}
				start, last, current = end, end, true
				continue
			}

			var seg Segment
			switch el.Kind {
			case LineToKind:
				seg = Line{last, el.P0}.Seg()
			case QuadToKind:
				seg = QuadBez{last, el.P0, el.P1}.Seg()
			case CubicToKind:
				seg = CubicBez{last, el.P0, el.P1, el.P2}.Seg()
			}
			last = end
			if !yield(seg) {
				return
			}
		}
		if fill {
			closeSubpath()
		}
	}
}

func SegmentsSignedArea(seq iter.Seq[Segment]) float64 {
	var sum float64
	for s := range seq {
		sum += s.SignedArea()
	}
	return sum
}

func SegmentsBoundingBox(seq iter.Seq[Segment]) Rect {
	var bbox option[Rect]
	for s := range seq {
		sbbox := s.BoundingBox()
		if bbox.isSet {
			sbbox = bbox.value.Union(sbbox)
		}
		bbox.set(sbbox)
	}
	return bbox.value
}

// SegmentsWinding sums the winding contributions of the segments around pt.
// Only a closed outline yields an integer.
func SegmentsWinding(seq iter.Seq[Segment], pt Point) float64 {
	var sum float64
	for s := range seq {
		sum += s.Winding(pt)
	}
	return sum
}
