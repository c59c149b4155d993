package planar

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"honnef.co/go/planar/poly"
)

func TestBezierEval(t *testing.T) {
	got := BezierEval(0.5, Pt(0, 0), Pt(1, 0), Pt(1, 1))
	diff(t, Pt(0.75, 0.25), got, approx(1e-12))

	diff(t, Pt(3, 4), BezierEval(0.3, Pt(3, 4)))

	c := CubicBez{Pt(0, 0), Pt(1, 3), Pt(3, -2), Pt(4, 1)}
	for i := range 11 {
		ts := float64(i) / 10
		assertNear(t, BezierEval(ts, c.P0, c.P1, c.P2, c.P3), c.Eval(ts), 1e-12)
	}

	if v := BezierEval1D(0.5, 0, 1, 0); v != 0.5 {
		t.Errorf("got %v, want 0.5", v)
	}
}

func TestBezierEmptyPolygon(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	BezierEval(0.5)
}

func TestBezierSplit(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 3), Pt(3, -2), Pt(4, 1), Pt(6, 2)}
	const split = 0.3
	left, right := BezierSplit(split, pts...)
	if len(left) != len(pts) || len(right) != len(pts) {
		t.Fatalf("got %d and %d points, want %d", len(left), len(right), len(pts))
	}
	diff(t, left[len(left)-1], right[0])
	for i := range 21 {
		s := float64(i) / 20
		assertNear(t, BezierEval(s, left...), BezierEval(split*s, pts...), 1e-9)
		assertNear(t, BezierEval(s, right...), BezierEval(split+s*(1-split), pts...), 1e-9)
	}
}

func TestBezierSplitN(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 3), Pt(3, -2), Pt(4, 1)}
	ts := []float64{0.75, 0.25, 0.5}
	pieces := BezierSplitN(ts, pts...)
	if len(pieces) != 4 {
		t.Fatalf("got %d pieces, want 4", len(pieces))
	}
	bounds := []float64{0, 0.25, 0.5, 0.75, 1}
	for i, piece := range pieces {
		t0, t1 := bounds[i], bounds[i+1]
		for j := range 11 {
			s := float64(j) / 10
			assertNear(t, BezierEval(s, piece...), BezierEval(t0+s*(t1-t0), pts...), 1e-9)
		}
	}
}

func TestBezierDerivative(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 3), Pt(3, -2), Pt(4, 1)}
	d := BezierDerivative(c.P0, c.P1, c.P2, c.P3)
	q := c.Differentiate()
	diff(t, []Point{q.P0, q.P1, q.P2}, d)

	diff(t, []Point{{}}, BezierDerivative(Pt(1, 1)))
}

func TestBezierPolynomial(t *testing.T) {
	cs := []float64{1, -2, 5, 3}
	p := BezierPolynomial(cs...)
	for i := range 11 {
		x := float64(i) / 10
		diff(t, BezierEval1D(x, cs...), p.Eval(x), approx(1e-12))
	}
	diff(t, cs, PolynomialBezier(p), approx(1e-12))

	// t² has control values 0, 0, 1.
	diff(t, []float64{0, 0, 1}, PolynomialBezier(poly.New(0, 0, 1)), approx(1e-12))
}

func TestBezierElevate(t *testing.T) {
	q := QuadBez{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8)}
	elevated := BezierElevate(q.P0, q.P1, q.P2)
	c := q.Raise()
	diff(t, []Point{c.P0, c.P1, c.P2, c.P3}, elevated, approx(1e-12))
}

func TestClosestBezier(t *testing.T) {
	q := []Point{Pt(-1, 1), Pt(0, -1), Pt(1, 1)}
	// On the curve: the exact parameter.
	diff(t, []float64{0.75}, ClosestBezier(Pt(0.5, 0.25), q...), approx(1e-9))

	// Off the curve, candidates come nearest first.
	pt := Pt(0, 2)
	ts := ClosestBezier(pt, q...)
	if len(ts) == 0 {
		t.Fatal("got no candidates")
	}
	for i := 1; i < len(ts); i++ {
		if BezierEval(ts[i-1], q...).Distance(pt) > BezierEval(ts[i], q...).Distance(pt)+1e-12 {
			t.Errorf("candidates not sorted by distance: %v", ts)
		}
	}
}

func TestBezierSignedArea(t *testing.T) {
	c := CubicBez{Pt(1.0, 0.0), Pt(2.0/3.0, 1.0), Pt(1.0/3.0, 1.0), Pt(0.0, 1.0)}
	diff(t, c.SignedArea(), BezierSignedArea(c.P0, c.P1, c.P2, c.P3), approx(1e-12))
	q := QuadBez{Pt(1.0, 0.0), Pt(0.5, 1.0), Pt(0.0, 1.0)}
	diff(t, q.SignedArea(), BezierSignedArea(q.P0, q.P1, q.P2), approx(1e-12))
	l := Line{Pt(1, 2), Pt(-3, 4)}
	diff(t, l.SignedArea(), BezierSignedArea(l.P0, l.P1), approx(1e-12))
}

func TestBoundingBoxContainsSamples(t *testing.T) {
	rng := newRand(1)
	const samples = 1000
	check := func(name string, c ParametricCurve, bbox Rect) {
		t.Helper()
		bbox = bbox.Inflate(1e-9, 1e-9)
		for i := range samples + 1 {
			p := c.Eval(float64(i) / samples)
			if p.X < bbox.X0 || p.X > bbox.X1 || p.Y < bbox.Y0 || p.Y > bbox.Y1 {
				t.Fatalf("%s: %s outside of %v", name, p, bbox)
			}
		}
	}
	for range 50 {
		pts := randomPoints(rng, 4)
		q := QuadBez{pts[0], pts[1], pts[2]}
		c := CubicBez{pts[0], pts[1], pts[2], pts[3]}
		check("quad", q, q.BoundingBox())
		check("cubic", c, c.BoundingBox())
		check("segment", c.Seg(), c.Seg().BoundingBox())
	}
}

func TestTransformedBoundingBox(t *testing.T) {
	rng := newRand(2)
	affs := []Affine{
		Identity,
		Rotate(0.7),
		Skew(0.5, -0.25).ThenTranslate(Vec(3, -1)),
		Scale(2, -3).PreRotate(1.1),
	}
	for range 20 {
		pts := randomPoints(rng, 4)
		q := QuadBez{pts[0], pts[1], pts[2]}
		c := CubicBez{pts[0], pts[1], pts[2], pts[3]}
		l := Line{pts[0], pts[1]}
		for _, aff := range affs {
			diff(t, q.Transform(aff).BoundingBox(), q.TransformedBoundingBox(aff), approx(1e-9))
			diff(t, c.Transform(aff).BoundingBox(), c.TransformedBoundingBox(aff), approx(1e-9))
			diff(t, l.Transform(aff).BoundingBox(), l.TransformedBoundingBox(aff), approx(1e-9))
		}
	}
}

func TestStationary(t *testing.T) {
	// x(t) of this quadratic peaks at t = 0.5.
	got, ok := QuadStationary(Pt(0, 0), Pt(1, 1), Pt(0, 2), 1, 0)
	if !ok || math.Abs(got-0.5) > 1e-12 {
		t.Errorf("got (%v, %t), want (0.5, true)", got, ok)
	}
	if _, ok := QuadStationary(Pt(0, 0), Pt(1, 1), Pt(2, 2), 1, 0); ok {
		t.Error("linear coordinate has no stationary point")
	}

	c := CubicBez{Pt(0.0, 0.0), Pt(0.0, 1.0), Pt(1.0, 1.0), Pt(1.0, 0.0)}
	ts := CubicStationary(c.P0, c.P1, c.P2, c.P3, 0, 1)
	diff(t, []float64{0.5}, ts, approx(1e-9), cmpopts.SortSlices(func(a, b float64) bool { return a < b }))
}
