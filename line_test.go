package planar

import (
	"math"
	"testing"
)

func TestLineLength(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	if d := math.Abs(l.Length() - math.Sqrt(2.0)); d > 1e-12 {
		t.Errorf("%g > %g", d, 1e-12)
	}
}

func TestLineIsInf(t *testing.T) {
	if (Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}).IsInf() {
		t.Error("line is infinite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(math.Inf(1), 1.0)}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(0.0, math.Inf(1))}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}
}

func TestLineSplit(t *testing.T) {
	l := Line{Pt(1, 2), Pt(5, -2)}
	a, b := l.Split(0.25)
	diff(t, Line{Pt(1, 2), Pt(2, 1)}, a, approx(1e-12))
	diff(t, Line{Pt(2, 1), Pt(5, -2)}, b, approx(1e-12))
	diff(t, Line{Pt(2, 1), Pt(4, -1)}, l.Subsegment(0.25, 0.75), approx(1e-12))
}

func TestIntersectLine(t *testing.T) {
	hLine := Line{Pt(0.0, 0.0), Pt(100.0, 0.0)}
	vLine := Line{Pt(10.0, -10.0), Pt(10.0, 10.0)}
	xs := hLine.IntersectLine(vLine)
	want := []Intersection{{Point: Pt(10, 0), T0: 0.1, T1: 0.5}}
	diff(t, want, xs, approx(1e-7))

	vLine = Line{Pt(-10.0, -10.0), Pt(-10.0, 10.0)}
	if xs := hLine.IntersectLine(vLine); len(xs) != 0 {
		t.Errorf("expected no intersections, got %v", xs)
	}

	vLine = Line{Pt(10.0, 10.0), Pt(10.0, 20.0)}
	if xs := hLine.IntersectLine(vLine); len(xs) != 0 {
		t.Errorf("expected no intersections, got %v", xs)
	}

	// Parallel.
	if xs := hLine.IntersectLine(Line{Pt(0, 1), Pt(100, 1)}); len(xs) != 0 {
		t.Errorf("expected no intersections, got %v", xs)
	}
}

func TestLineWinding(t *testing.T) {
	l := Line{Pt(1, -1), Pt(1, 1)}
	if got := l.Winding(Pt(0, 0)); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("got %v, want 0.25", got)
	}
	if got := (Line{l.P1, l.P0}).Winding(Pt(0, 0)); math.Abs(got+0.25) > 1e-12 {
		t.Errorf("got %v, want -0.25", got)
	}
	if got := (Line{Pt(1, 1), Pt(1, 1)}).Winding(Pt(0, 0)); got != 0 {
		t.Errorf("degenerate line: got %v, want 0", got)
	}
}

func TestLineSignedArea(t *testing.T) {
	// The triangle with the origin.
	l := Line{Pt(1, 0), Pt(0, 1)}
	if got := l.SignedArea(); got != 0.5 {
		t.Errorf("got %v, want 0.5", got)
	}
}
