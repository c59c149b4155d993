package planar

import (
	"testing"
)

func TestExtremaRanges(t *testing.T) {
	c := CubicBez{Pt(0.0, 0.0), Pt(0.0, 1.0), Pt(1.0, 1.0), Pt(1.0, 0.0)}
	ranges, n := ExtremaRanges(c)
	diff(t, [][2]float64{{0, 0.5}, {0.5, 1}}, ranges[:n], approx(1e-9))

	ranges, n = ExtremaRanges(Line{Pt(0, 0), Pt(1, 1)})
	diff(t, [][2]float64{{0, 1}}, ranges[:n])

	// Each range is monotonic in both coordinates.
	q := CubicBez{Pt(0.4, 0.5), Pt(0.0, 1.0), Pt(1.0, 0.0), Pt(0.5, 0.4)}
	ranges, n = ExtremaRanges(q)
	if n != 5 {
		t.Fatalf("got %d ranges, want 5", n)
	}
	for _, r := range ranges[:n] {
		const steps = 16
		var dx, dy float64
		prev := q.Eval(r[0])
		for i := 1; i <= steps; i++ {
			p := q.Eval(r[0] + (r[1]-r[0])*float64(i)/steps)
			if ndx := p.X - prev.X; ndx*dx < -1e-12 {
				t.Errorf("x not monotonic on %v", r)
			} else if ndx != 0 {
				dx = ndx
			}
			if ndy := p.Y - prev.Y; ndy*dy < -1e-12 {
				t.Errorf("y not monotonic on %v", r)
			} else if ndy != 0 {
				dy = ndy
			}
			prev = p
		}
	}
}

func TestGenericBoundingBox(t *testing.T) {
	rng := newRand(3)
	for range 20 {
		pts := randomPoints(rng, 4)
		q := QuadBez{pts[0], pts[1], pts[2]}
		c := CubicBez{pts[0], pts[1], pts[2], pts[3]}
		diff(t, q.BoundingBox(), BoundingBox(q), approx(1e-12))
		diff(t, c.BoundingBox(), BoundingBox(c), approx(1e-12))
		seg := c.Seg()
		diff(t, c.BoundingBox(), BoundingBox(seg), approx(1e-12))
	}
}

func TestCurveInterfaces(t *testing.T) {
	var (
		_ ParametricCurve = Line{}
		_ ParametricCurve = QuadBez{}
		_ ParametricCurve = CubicBez{}
		_ ParametricCurve = Segment{}
		_ ParametricCurve = Arc{}
		_ Winder          = Line{}
		_ Winder          = QuadBez{}
		_ Winder          = CubicBez{}
		_ Winder          = Segment{}
		_ Winder          = Arc{}
		_ SignedAreaer    = Path{}
		_ SignedAreaer    = Arc{}
		_ Extremer        = Segment{}
	)
}
