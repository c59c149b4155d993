package planar

import (
	"math"
	"slices"

	"honnef.co/go/planar/poly"
)

// The functions in this file operate on Bézier curves of arbitrary degree,
// given as their control polygons. A polygon of n+1 points describes a curve
// of degree n. [Line], [QuadBez] and [CubicBez] are the fixed-degree
// counterparts and are preferable when the degree is known.

func mustPolygon(n int) {
	if n == 0 {
		panic("planar: empty control polygon")
	}
}

// BezierEval evaluates the Bézier curve with control points pts at t, as the
// sum of the control points weighted by the Bernstein polynomials
// C(n, k)·tᵏ·(1−t)ⁿ⁻ᵏ.
func BezierEval(t float64, pts ...Point) Point {
	mustPolygon(len(pts))
	n := len(pts) - 1
	var out Vec2
	for k, p := range pts {
		w := poly.Binomial(n, k) * math.Pow(t, float64(k)) * math.Pow(1-t, float64(n-k))
		out = out.Add(Vec2(p).Mul(w))
	}
	return Point(out)
}

// BezierEval1D is like [BezierEval] for scalar control values.
func BezierEval1D(t float64, cs ...float64) float64 {
	mustPolygon(len(cs))
	n := len(cs) - 1
	var out float64
	for k, c := range cs {
		out += poly.Binomial(n, k) * math.Pow(t, float64(k)) * math.Pow(1-t, float64(n-k)) * c
	}
	return out
}

// BezierSplit subdivides the curve at t using de Casteljau's algorithm. The
// two halves have the same number of control points as the input and share
// the point at t.
func BezierSplit(t float64, pts ...Point) (left, right []Point) {
	mustPolygon(len(pts))
	n := len(pts)
	work := slices.Clone(pts)
	left = make([]Point, n)
	right = make([]Point, n)
	left[0] = work[0]
	right[n-1] = work[n-1]
	for k := 1; k < n; k++ {
		for i := 0; i < n-k; i++ {
			work[i] = work[i].Lerp(work[i+1], t)
		}
		left[k] = work[0]
		right[n-1-k] = work[n-1-k]
	}
	return left, right
}

// BezierSplitN subdivides the curve at each of ts, which are taken in
// increasing order. It returns len(ts)+1 control polygons.
func BezierSplitN(ts []float64, pts ...Point) [][]Point {
	mustPolygon(len(pts))
	ts = slices.Clone(ts)
	slices.Sort(ts)
	out := make([][]Point, 0, len(ts)+1)
	rest := pts
	last := 0.0
	for _, t := range ts {
		// Rescale t onto the remaining piece.
		var s float64
		if !poly.AlmostEqual(last, 1) {
			s = (t - last) / (1 - last)
		}
		var l []Point
		l, rest = BezierSplit(s, rest...)
		out = append(out, l)
		last = t
	}
	return append(out, rest)
}

// BezierDerivative returns the control polygon of the curve's derivative: the
// forward differences of pts, scaled by the degree. The derivative of a single
// point is the zero curve.
func BezierDerivative(pts ...Point) []Point {
	mustPolygon(len(pts))
	if len(pts) == 1 {
		return []Point{{}}
	}
	n := float64(len(pts) - 1)
	out := make([]Point, len(pts)-1)
	for i := range out {
		out[i] = Point(pts[i+1].Sub(pts[i]).Mul(n))
	}
	return out
}

// BezierPolynomial converts scalar Bézier control values to the power basis.
func BezierPolynomial(cs ...float64) poly.Polynomial {
	mustPolygon(len(cs))
	n := len(cs) - 1
	out := make([]float64, n+1)
	for j := range out {
		var sum float64
		for i := 0; i <= j; i++ {
			term := poly.Binomial(j, i) * cs[i]
			if (j-i)%2 == 1 {
				term = -term
			}
			sum += term
		}
		out[j] = poly.Binomial(n, j) * sum
	}
	return poly.New(out...)
}

// BezierPolynomials returns the coordinate functions x(t) and y(t) of the
// curve in the power basis.
func BezierPolynomials(pts ...Point) (x, y poly.Polynomial) {
	xs, ys := coords(pts)
	return BezierPolynomial(xs...), BezierPolynomial(ys...)
}

// PolynomialBezier is the inverse of [BezierPolynomial]: it returns the
// Bézier control values, one more than p's degree, describing p over [0, 1].
func PolynomialBezier(p poly.Polynomial) []float64 {
	n := p.Degree()
	out := make([]float64, n+1)
	for m := range out {
		for k := 0; k <= m; k++ {
			out[m] += poly.Binomial(m, k) * p.Coeff(k) / poly.Binomial(n, k)
		}
	}
	return out
}

// BezierElevate returns a control polygon with one more point that describes
// the same curve.
func BezierElevate(pts ...Point) []Point {
	mustPolygon(len(pts))
	n := float64(len(pts))
	out := make([]Point, 0, len(pts)+1)
	out = append(out, pts[0])
	for k := 0; k < len(pts)-1; k++ {
		t := float64(k+1) / n
		out = append(out, pts[k+1].Lerp(pts[k], t))
	}
	return append(out, pts[len(pts)-1])
}

// ClosestBezier returns the parameters at which the curve's distance to pt is
// stationary, nearest first. These are the real roots of the derivative of
// the squared-distance polynomial; they are not restricted to [0, 1].
//
// If pt lies on the curve, only the parameters at which it does are returned.
func ClosestBezier(pt Point, pts ...Point) []float64 {
	x, y := BezierPolynomials(pts...)
	x = x.AddScalar(-pt.X)
	y = y.AddScalar(-pt.Y)
	dist := x.Mul(x).Add(y.Mul(y))

	var roots []float64
	if !x.IsZero() && !y.IsZero() {
		yRoots := y.Roots()
		for _, r := range x.Roots() {
			if slices.ContainsFunc(yRoots, func(s float64) bool { return poly.AlmostEqual(r, s) }) {
				roots = append(roots, r)
			}
		}
	}
	if len(roots) == 0 {
		roots = dist.Derivative().Roots()
	}
	slices.SortStableFunc(roots, func(a, b float64) int {
		da, db := dist.Eval(a), dist.Eval(b)
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		default:
			return 0
		}
	})
	return roots
}

// nearestAmong returns the squared distance and parameter of the point of c
// nearest to pt, considering the end points and those of ts that lie in
// [0, 1].
func nearestAmong(c ParametricCurve, pt Point, ts []float64) (distSq, t float64) {
	distSq, t = c.Start().DistanceSquared(pt), 0
	if d := c.End().DistanceSquared(pt); d < distSq {
		distSq, t = d, 1
	}
	for _, s := range ts {
		if s < 0 || s > 1 {
			continue
		}
		if d := c.Eval(s).DistanceSquared(pt); d < distSq {
			distSq, t = d, s
		}
	}
	return distSq, t
}

// BezierSignedArea returns the signed area enclosed by the curve and the
// chords from the origin to its end points, computed with Green's theorem.
func BezierSignedArea(pts ...Point) float64 {
	x, y := BezierPolynomials(pts...)
	integrand := x.Mul(y.Derivative()).Sub(x.Derivative().Mul(y))
	return 0.5 * integrand.Integral().Eval(1)
}

// QuadStationary returns the parameter at which a·x(t) + b·y(t) is
// stationary for the quadratic Bézier p0, p1, p2. It reports false when that
// combination is linear in t.
//
// With (a, b) = (1, 0) this is the extremum of x; with a row of an [Affine],
// it is the extremum of the transformed coordinate.
func QuadStationary(p0, p1, p2 Point, a, b float64) (float64, bool) {
	d := a*(p0.X+p2.X-2*p1.X) + b*(p0.Y+p2.Y-2*p1.Y)
	if poly.AlmostZero(d) {
		return 0, false
	}
	return (a*(p0.X-p1.X) + b*(p0.Y-p1.Y)) / d, true
}

// CubicStationary returns the parameters at which a·x(t) + b·y(t) is
// stationary for the cubic Bézier p0, p1, p2, p3. See [QuadStationary].
func CubicStationary(p0, p1, p2, p3 Point, a, b float64) []float64 {
	comb := func(x, y float64) float64 { return a*x + b*y }
	// Derivative coefficients: qa·t² + qb·t + qc.
	qa := comb(3*(p3.X-p0.X)+9*(p1.X-p2.X), 3*(p3.Y-p0.Y)+9*(p1.Y-p2.Y))
	qb := comb(6*(p2.X+p0.X)-12*p1.X, 6*(p2.Y+p0.Y)-12*p1.Y)
	qc := comb(3*(p1.X-p0.X), 3*(p1.Y-p0.Y))

	if poly.AlmostZero(qa) {
		if poly.AlmostZero(qb) {
			return nil
		}
		return []float64{-qc / qb}
	}
	delta := qb*qb - 4*qa*qc
	mid := -qb / (2 * qa)
	switch {
	case poly.AlmostZero(delta):
		return []float64{mid}
	case delta > 0:
		sq := math.Sqrt(delta) / (2 * qa)
		return []float64{mid + sq, mid - sq}
	default:
		return nil
	}
}
