package planar

import (
	"math"
	"testing"
)

func TestRectAreaSign(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-8
	}

	r := Rect{0.0, 0.0, 10.0, 10.0}
	center := r.Center()
	if a := r.Area(); !approxEqual(a, 100) {
		t.Errorf("got area %v, want %v", a, 100.0)
	}
	if w := r.Winding(center); w != 1 {
		t.Errorf("got winding %v, want %v", w, 1)
	}

	p := r.Path()
	if ra, pa := r.Area(), p.SignedArea(); !approxEqual(ra, pa) {
		t.Errorf("expected r's and p's areas to be approximately equal, got %v and %v", ra, pa)
	}
	if rw, pw := r.Winding(center), p.WindingNumber(center); rw != pw {
		t.Errorf("expected r's and p's winding numbers to be equal, got %v and %v", rw, pw)
	}

	rFlip := Rect{0.0, 10.0, 10.0, 0.0}
	if a := rFlip.Area(); !approxEqual(a, -100) {
		t.Errorf("got area %v, want %v", a, -100.0)
	}

	if w := rFlip.Winding(Pt(5, 5)); w != -1 {
		t.Errorf("got winding %v, want %v", w, -1)
	}

	pFlip := rFlip.Path()
	if ra, pa := rFlip.Area(), pFlip.SignedArea(); !approxEqual(ra, pa) {
		t.Errorf("expected r's and p's areas to be approximately equal, got %v and %v", ra, pa)
	}
	if rw, pw := rFlip.Winding(center), pFlip.WindingNumber(center); rw != pw {
		t.Errorf("expected r's and p's winding numbers to be equal, got %v and %v", rw, pw)
	}
}

func TestRectFromPoints(t *testing.T) {
	diff(t, Rect{1, 2, 5, 6}, NewRectFromPoints(Pt(5, 2), Pt(1, 6)))
	diff(t, Rect{-1, -1, 1, 1}, NewRectFromCenter(Pt(0, 0), Sz(2, 2)))
	diff(t, Rect{1, 1, 4, 3}, NewRectFromOrigin(Pt(1, 1), Sz(3, 2)))
}

func TestRectContains(t *testing.T) {
	r := Rect{0, 0, 2, 1}
	for _, tc := range []struct {
		pt   Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(1, 0.5), true},
		{Pt(2, 0.5), false},
		{Pt(1, 1), false},
		{Pt(-0.1, 0.5), false},
	} {
		if got := r.Contains(tc.pt); got != tc.want {
			t.Errorf("%s: got %t, want %t", tc.pt, got, tc.want)
		}
	}

	// Tiles share edges, and each point belongs to exactly one of them.
	left, right := Rect{0, 0, 1, 1}, Rect{1, 0, 2, 1}
	if pt := Pt(1, 0.5); left.Contains(pt) == right.Contains(pt) {
		t.Errorf("%s belongs to both or neither tile", pt)
	}
}

func TestRectSetOperations(t *testing.T) {
	a := Rect{0, 0, 2, 2}
	b := Rect{1, 1, 3, 4}
	diff(t, Rect{0, 0, 3, 4}, a.Union(b))
	diff(t, Rect{1, 1, 2, 2}, a.Intersect(b))
	if !a.Overlaps(b) {
		t.Error("expected overlap")
	}
	c := Rect{5, 5, 6, 6}
	if a.Overlaps(c) {
		t.Error("expected no overlap")
	}
	if got := a.Intersect(c); !got.IsEmpty() {
		t.Errorf("got %v, want an empty rectangle", got)
	}
	if !b.ContainsRect(Rect{1, 1, 3, 4}) || b.ContainsRect(a) {
		t.Error("wrong ContainsRect")
	}
	diff(t, Rect{0, -1, 2, 2}, a.UnionPoint(Pt(1, -1)))
}

func TestRectWindingOutside(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	for _, pt := range []Point{Pt(-1, 5), Pt(11, 5), Pt(5, -1), Pt(5, 11)} {
		if w := r.Winding(pt); w != 0 {
			t.Errorf("%s: got winding %d, want 0", pt, w)
		}
		if w := r.Path().WindingNumber(pt); w != 0 {
			t.Errorf("%s: got path winding %d, want 0", pt, w)
		}
	}
}

func TestRectExtents(t *testing.T) {
	r := Rect{3, 4, -1, 2}
	if r.MinX() != -1 || r.MaxX() != 3 || r.MinY() != 2 || r.MaxY() != 4 {
		t.Errorf("got x [%v, %v] y [%v, %v]", r.MinX(), r.MaxX(), r.MinY(), r.MaxY())
	}
	diff(t, Rect{-1, 2, 3, 4}, r.Abs())
	diff(t, Sz(4, 2), r.Abs().Size())
}
