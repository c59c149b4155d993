package planar

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestProductWeight(t *testing.T) {
	// C(3, 1)·C(3, 1) / C(6, 2)
	diff(t, 9.0/15.0, productWeight(3, 1, 2), approx(1e-12))
	var sum float64
	for i := 0; i <= 2; i++ {
		sum += productWeight(3, i, 2)
	}
	diff(t, 1.0, sum, approx(1e-12))
}

func TestDistSurface(t *testing.T) {
	bez1 := []Point{
		Pt(129.0, 139.0),
		Pt(190.0, 139.0),
		Pt(201.0, 364.0),
		Pt(90.0, 364.0),
	}
	bez2 := []Point{
		Pt(309.0, 159.0),
		Pt(178.0, 159.0),
		Pt(215.0, 408.0),
		Pt(309.0, 408.0),
	}
	diff(t, selfProducts(bez2)[1], 80283.0, cmpopts.EquateApprox(0, 0.005))
	d := newDistSurface(bez1, bez2)
	diff(t, d.ctrl[0][1], 9220.0, cmpopts.EquateApprox(0, 0.005))

	// The surface interpolates the squared distance.
	for _, uv := range [][2]float64{{0, 0}, {0.3, 0.6}, {1, 0.25}} {
		p := BezierEval(uv[0], bez1...)
		q := BezierEval(uv[1], bez2...)
		diff(t, p.DistanceSquared(q), d.eval(uv[0], uv[1]), cmpopts.EquateApprox(1e-9, 0))
	}
}

func TestMinDist(t *testing.T) {
	bez1 := CubicBez{
		Pt(129.0, 139.0),
		Pt(190.0, 139.0),
		Pt(201.0, 364.0),
		Pt(90.0, 364.0),
	}.Seg()
	bez2 := CubicBez{
		Pt(309.0, 159.0),
		Pt(178.0, 159.0),
		Pt(215.0, 408.0),
		Pt(309.0, 408.0),
	}.Seg()
	mindist := bez1.MinDist(bez2, 0.001)
	diff(t, mindist.Distance, 50.9966, cmpopts.EquateApprox(0, 0.5))
	diff(t, mindist.Distance, bez1.Eval(mindist.T0).Distance(bez2.Eval(mindist.T1)), cmpopts.EquateApprox(0, 0.5))
}

func TestMinDistOverflow(t *testing.T) {
	bez1 := CubicBez{
		Pt(232.0, 126.0),
		Pt(134.0, 126.0),
		Pt(139.0, 232.0),
		Pt(141.0, 301.0),
	}.Seg()
	bez2 := Line{Pt(359.0, 416.0), Pt(367.0, 755.0)}.Seg()
	mindist := bez1.MinDist(bez2, 0.001)
	diff(t, mindist.Distance, 246.4731222669117, cmpopts.EquateApprox(0, 0.5))
}

func TestMinDistOutOfOrder(t *testing.T) {
	bez1 := CubicBez{
		Pt(287.0, 182.0),
		Pt(346.0, 277.0),
		Pt(356.0, 299.0),
		Pt(359.0, 416.0),
	}.Seg()
	bez2 := Line{Pt(141.0, 301.0), Pt(152.0, 709.0)}.Seg()
	mindist1 := bez1.MinDist(bez2, 0.5)
	mindist2 := bez2.MinDist(bez1, 0.5)
	diff(t, mindist1.Distance, mindist2.Distance, cmpopts.EquateApprox(0, 0.5))
}

func TestMinDistCrossing(t *testing.T) {
	a := Line{Pt(0, 0), Pt(2, 2)}.Seg()
	b := Line{Pt(0, 2), Pt(2, 0)}.Seg()
	got := a.MinDist(b, 1e-4)
	if got.Distance > 1e-3 || math.Abs(got.T0-0.5) > 1e-3 || math.Abs(got.T1-0.5) > 1e-3 {
		t.Errorf("got %+v, want a touching pair at the midpoints", got)
	}
}
