package planar

import (
	"math"

	"honnef.co/go/planar/poly"
)

// MinDistance is the minimum distance between two curves, as returned by
// [Segment.MinDist].
type MinDistance struct {
	// The shortest distance between any two points on the two curves.
	Distance float64
	// The parameter of the nearest point on the first curve.
	T0 float64
	// The parameter of the nearest point on the second curve.
	T1 float64
}

// MinDist returns the minimum distance between two segments, to within
// accuracy in parameter space.
func (seg Segment) MinDist(o Segment, accuracy float64) MinDistance {
	return BezierMinDist(seg.Points(), o.Points(), accuracy)
}

// BezierMinDist returns the minimum distance between the Béziers with control
// polygons a and b.
//
// The squared distance |a(u) − b(v)|² is itself a tensor-product Bézier
// surface of degree 2n × 2m. Its control values bound the distance over a
// parameter rectangle, which lets whole rectangles be discarded while
// subdividing toward the minimum. See "Computing the minimum distance between
// two Bézier curves", Chen et al., Journal of Computational and Applied
// Mathematics 229 (2009).
func BezierMinDist(a, b []Point, accuracy float64) MinDistance {
	mustPolygon(len(a))
	mustPolygon(len(b))
	d := newDistSurface(a, b)
	best := d.search([2]float64{0, 1}, [2]float64{0, 1}, accuracy, math.Inf(1))
	return MinDistance{
		Distance: math.Sqrt(max(best.distSq, 0)),
		T0:       best.u,
		T1:       best.v,
	}
}

type distSample struct {
	distSq float64
	u, v   float64
}

// distSurface holds the Bézier control values of |a(u) − b(v)|².
type distSurface struct {
	n, m int
	ctrl [][]float64
}

func newDistSurface(a, b []Point) *distSurface {
	n := len(a) - 1
	m := len(b) - 1
	aa := selfProducts(a)
	bb := selfProducts(b)
	ea := elevatedTerms(a)
	eb := elevatedTerms(b)

	ctrl := make([][]float64, 2*n+1)
	for r := range ctrl {
		ctrl[r] = make([]float64, 2*m+1)
		for k := range ctrl[r] {
			ctrl[r][k] = aa[r] + bb[k] - 2*ea[r].Dot(eb[k])
		}
	}
	return &distSurface{n: n, m: m, ctrl: ctrl}
}

// productWeight is the weight of Pᵢ·Pᵣ₋ᵢ in the r-th control value of the
// degree 2n product of two degree n Béziers.
func productWeight(n, i, r int) float64 {
	return poly.Binomial(n, i) * poly.Binomial(n, r-i) / poly.Binomial(2*n, r)
}

// selfProducts returns the control values of |p(u)|² in degree 2n.
func selfProducts(p []Point) []float64 {
	n := len(p) - 1
	out := make([]float64, 2*n+1)
	for r := range out {
		for i := max(0, r-n); i <= min(r, n); i++ {
			out[r] += Vec2(p[i]).Dot(Vec2(p[r-i])) * productWeight(n, i, r)
		}
	}
	return out
}

// elevatedTerms returns the vectors whose dot products give the control
// values of a(u)·b(v) in degree 2n × 2m.
func elevatedTerms(p []Point) []Vec2 {
	n := len(p) - 1
	out := make([]Vec2, 2*n+1)
	for r := range out {
		for i := max(0, r-n); i <= min(r, n); i++ {
			out[r] = out[r].Add(Vec2(p[i]).Mul(productWeight(n, i, r)))
		}
	}
	return out
}

func (d *distSurface) eval(u, v float64) float64 {
	var sum float64
	for r, row := range d.ctrl {
		bu := poly.Binomial(2*d.n, r) * math.Pow(1-u, float64(2*d.n-r)) * math.Pow(u, float64(r))
		for k, c := range row {
			bv := poly.Binomial(2*d.m, k) * math.Pow(1-v, float64(2*d.m-k)) * math.Pow(v, float64(k))
			sum += c * bu * bv
		}
	}
	return sum
}

func (d *distSurface) search(u, v [2]float64, accuracy, bestAlpha float64) distSample {
	umin, umax := u[0], u[1]
	vmin, vmax := v[0], v[1]
	umid := (umin + umax) / 2
	vmid := (vmin + vmax) / 2
	corners := [4]distSample{
		{d.eval(umin, vmin), umin, vmin},
		{d.eval(umin, vmax), umin, vmax},
		{d.eval(umax, vmin), umax, vmin},
		{d.eval(umax, vmax), umax, vmax},
	}
	alpha := corners[0].distSq
	for _, c := range corners[1:] {
		alpha = min(alpha, c.distSq)
	}
	if alpha > bestAlpha {
		return distSample{alpha, umid, vmid}
	}
	if math.Abs(umax-umin) < accuracy || math.Abs(vmax-vmin) < accuracy {
		return distSample{alpha, umid, vmid}
	}

	// The control values are global, so the bounds are coarse on small
	// rectangles; subdivision still converges on the nearest pair.
	outside := true
	minR, minK := 0, 0
	minCtrl := math.Inf(1)
	for r, row := range d.ctrl {
		for k, c := range row {
			if c < alpha {
				outside = false
			}
			if c < minCtrl {
				minCtrl = c
				minR, minK = r, k
			}
		}
	}
	if outside {
		return distSample{alpha, umid, vmid}
	}

	// A corner of the control net that no other control value undercuts is
	// the minimum.
	last := len(d.ctrl) - 1
	lastK := len(d.ctrl[0]) - 1
	u0, u1, v0, v1 := true, true, true, true
	for r, row := range d.ctrl {
		for k, c := range row {
			if c < d.ctrl[0][k] {
				u0 = false
			}
			if c < d.ctrl[last][k] {
				u1 = false
			}
			if c < d.ctrl[r][0] {
				v0 = false
			}
			if c < d.ctrl[r][lastK] {
				v1 = false
			}
		}
	}
	switch {
	case u0 && v0:
		return corners[0]
	case u0 && v1:
		return corners[1]
	case u1 && v0:
		return corners[2]
	case u1 && v1:
		return corners[3]
	}

	// Split where the smallest control value sits, falling back to the
	// midpoint when that would not shrink the rectangle.
	su := umin + (umax-umin)*float64(minR)/float64(max(2*d.n, 1))
	sv := vmin + (vmax-vmin)*float64(minK)/float64(max(2*d.m, 1))
	if su <= umin || su >= umax {
		su = umid
	}
	if sv <= vmin || sv >= vmax {
		sv = vmid
	}

	out := distSample{distSq: math.Inf(1)}
	for _, q := range [4][2][2]float64{
		{{umin, su}, {vmin, sv}},
		{{umin, su}, {sv, vmax}},
		{{su, umax}, {vmin, sv}},
		{{su, umax}, {sv, vmax}},
	} {
		res := d.search(q[0], q[1], accuracy, alpha)
		if math.IsNaN(res.distSq) || res.distSq < out.distSq {
			out = res
		}
	}
	return out
}
