package planar

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"honnef.co/go/planar/poly"
)

// The winding contribution of a curve c(t) = (x(t), y(t)), t ∈ [0, 1], around
// the origin is the angle it sweeps divided by 2π:
//
//	1/2π ∫₀¹ (x·y′ − x′·y) / (x² + y²) dt
//
// For Béziers the integrand is a rational function, integrated exactly by
// partial fractions over the real factorization of the denominator. The
// contributions of the segments of a closed outline sum to its integer
// winding number; for an open curve the fraction is what an anti-aliased
// fill rule needs.

// quadIntegral returns ∫₀¹ n / (t² + b·t + c) dt.
func quadIntegral(n, b, c float64) float64 {
	delta := b*b - 4*c
	switch {
	case poly.AlmostZero(delta):
		// Double root at −b/2.
		return 4 * n / (b * (2 + b))
	case delta < 0:
		q := math.Sqrt(-delta)
		return -2 * n * (math.Atan2(q, 2+b) - math.Atan2(q, b)) / q
	default:
		q := math.Sqrt(delta)
		s := b - q
		t := b + q
		u := t * (s + 2)
		v := s * (t + 2)
		return n * math.Log(math.Abs(u/v)) / q
	}
}

// linearQuadIntegral returns ∫₀¹ (m·t + n) / (t² + b·t + c) dt.
func linearQuadIntegral(m, n, b, c float64) float64 {
	hm := 0.5 * m
	return hm*math.Log(math.Abs(1+(1+b)/c)) + quadIntegral(n-hm*b, b, c)
}

// linearQuadPowIntegral returns ∫₀¹ (m·t + n) / (t² + b·t + c)ʳ dt, reducing
// the power one step at a time.
func linearQuadPowIntegral(m, n, b, c float64, r int) float64 {
	if r == 1 {
		return linearQuadIntegral(m, n, b, c)
	}
	r1 := float64(r - 1)
	s := r1 * (4*c - b*b)
	t := (2+b)*n - (b+2*c)*m
	u := s * math.Pow(1+b+c, r1)
	v := b*n - 2*c*m
	w := s * math.Pow(c, r1)
	return t/u - v/w + linearQuadPowIntegral(0, float64(2*r-3)*(2*n-b*m)/s, b, c, r-1)
}

// LineWinding returns the winding contribution of the segment from p0 to p1
// around the origin. Degenerate segments contribute nothing.
func LineWinding(p0, p1 Point) float64 {
	x0 := p0.X
	x1 := p1.X - p0.X
	y0 := p0.Y
	y1 := p1.Y - p0.Y

	if poly.AlmostZero(x1) && poly.AlmostZero(y1) {
		return 0
	}

	m := x0*y1 - x1*y0
	if poly.AlmostZero(m) {
		// The origin is on the line, possibly at an endpoint.
		return 0
	}
	a := x1*x1 + y1*y1
	b := 2 * (x0*x1 + y0*y1)
	c := x0*x0 + y0*y0
	if poly.AlmostZero(a) {
		return 0
	}
	return quadIntegral(m/a, b/a, c/a) / (2 * math.Pi)
}

// QuadBezWinding returns the winding contribution of the quadratic Bézier
// p0, p1, p2 around the origin.
func QuadBezWinding(p0, p1, p2 Point) float64 {
	return bezierWinding(p0, p1, p2)
}

// CubicBezWinding returns the winding contribution of the cubic Bézier p0,
// p1, p2, p3 around the origin. The sextic denominator is factored with
// Bairstow's method.
func CubicBezWinding(p0, p1, p2, p3 Point) float64 {
	return bezierWinding(p0, p1, p2, p3)
}

func bezierWinding(pts ...Point) float64 {
	x, y := BezierPolynomials(pts...)
	// A curve that starts or ends at the origin has x and y sharing that
	// root. Dividing it out leaves the angle unchanged and the integrand
	// finite.
	for _, root := range [2]poly.Polynomial{poly.New(0, 1), poly.New(-1, 1)} {
		at := -root.Coeff(0)
		if max(x.Degree(), y.Degree()) > 0 && poly.AlmostZero(x.Eval(at)) && poly.AlmostZero(y.Eval(at)) {
			x, y = x.Div(root), y.Div(root)
		}
	}
	num := x.Mul(y.Derivative()).Sub(x.Derivative().Mul(y))
	den := x.Mul(x).Add(y.Mul(y))
	w := rationalIntegral(num, den) / (2 * math.Pi)
	if math.IsNaN(w) || math.IsInf(w, 0) {
		// The origin is on the curve.
		return 0
	}
	return w
}

// partialFactor is a real irreducible factor of a monic denominator, raised
// to power: t + a when linear, t² + b·t + a otherwise.
type partialFactor struct {
	quadratic bool
	a, b      float64
	power     int
}

func (f partialFactor) polynomial() poly.Polynomial {
	if f.quadratic {
		return poly.New(f.a, f.b, 1)
	}
	return poly.New(f.a, 1)
}

type partialFactors []partialFactor

// nextPower returns one more than the highest power already recorded for the
// factor matching eq.
func (fs partialFactors) nextPower(eq func(partialFactor) bool) int {
	power := 0
	for _, f := range fs {
		if eq(f) {
			power = max(power, f.power)
		}
	}
	return power + 1
}

func (fs *partialFactors) addLinear(a float64) {
	power := fs.nextPower(func(f partialFactor) bool {
		return !f.quadratic && poly.AlmostEqual(f.a, a)
	})
	*fs = append(*fs, partialFactor{a: a, power: power})
}

// addQuadratic records q, splitting it into linear factors when its roots
// are real.
func (fs *partialFactors) addQuadratic(q poly.QuadFactor) {
	delta := q.B*q.B - 4*q.C
	switch {
	case poly.AlmostZero(delta):
		fs.addLinear(0.5 * q.B)
		fs.addLinear(0.5 * q.B)
	case delta > 0:
		sq := math.Sqrt(delta)
		fs.addLinear(0.5 * (q.B - sq))
		fs.addLinear(0.5 * (q.B + sq))
	default:
		power := fs.nextPower(func(f partialFactor) bool {
			return f.quadratic && poly.AlmostEqual(f.a, q.C) && poly.AlmostEqual(f.b, q.B)
		})
		*fs = append(*fs, partialFactor{quadratic: true, a: q.C, b: q.B, power: power})
	}
}

// trimLeading drops leading coefficients that are negligible next to the
// largest one, so that nearly degenerate curves are integrated as the
// lower-degree curves they approximate.
func trimLeading(p poly.Polynomial) poly.Polynomial {
	c := p.Coeffs()
	var big float64
	for _, v := range c {
		big = max(big, math.Abs(v))
	}
	n := len(c)
	for n > 1 && math.Abs(c[n-1]) <= Epsilon*big {
		n--
	}
	return poly.New(c[:n]...)
}

// rationalIntegral returns ∫₀¹ p/q dt for a denominator q without real roots
// in [0, 1].
func rationalIntegral(p, q poly.Polynomial) float64 {
	q = trimLeading(q)
	if q.AllAlmostZero() {
		return 0
	}
	lead := q.Leading()
	p = p.Scale(1 / lead)
	q = q.Scale(1 / lead)

	quo, rem := p.QuoRem(q)
	qi := quo.Integral()
	result := qi.Eval(1) - qi.Eval(0)

	switch q.Degree() {
	case 0:
		return result
	case 1:
		return result + rem.Coeff(0)*math.Log(math.Abs(1+1/q.Coeff(0)))
	case 2:
		return result + linearQuadIntegral(rem.Coeff(1), rem.Coeff(0), q.Coeff(1), q.Coeff(0))
	}

	var parts partialFactors
	quads, lin := q.QuadraticFactors()
	for _, r := range lin {
		parts.addLinear(-r)
	}
	for _, f := range quads {
		parts.addQuadratic(f)
	}

	simple := true
	for _, f := range parts {
		if f.quadratic || f.power != 1 {
			simple = false
			break
		}
	}
	if simple {
		// Distinct real roots: the residue at −a is rem(−a) / q′(−a).
		dq := q.Derivative()
		for _, f := range parts {
			c := rem.Eval(-f.a) / dq.Eval(-f.a)
			result += c * math.Log(math.Abs(1+1/f.a))
		}
		return result
	}

	coeffs, ok := partialCoefficients(parts, q, rem)
	if !ok {
		return result
	}
	i := 0
	for _, f := range parts {
		switch {
		case f.quadratic:
			n, m := coeffs[i], coeffs[i+1]
			i += 2
			result += linearQuadPowIntegral(m, n, f.b, f.a, f.power)
		case f.power == 1:
			result += coeffs[i] * math.Log(math.Abs(1+1/f.a))
			i++
		default:
			e := float64(1 - f.power)
			result += coeffs[i] * (math.Pow(f.a+1, e) - math.Pow(f.a, e)) / e
			i++
		}
	}
	return result
}

// partialCoefficients solves for the numerators of the partial fraction
// decomposition of rem/q over parts. Each linear factor contributes one
// unknown constant numerator and each quadratic one a constant and a linear
// coefficient, in that order. Equating the coefficients of
//
//	rem = Σ numeratorᵢ · q / factorᵢ^powerᵢ
//
// gives a square linear system. It reports false if the system is singular.
func partialCoefficients(parts partialFactors, q, rem poly.Polynomial) ([]float64, bool) {
	n := q.Degree()
	var basis []poly.Polynomial
	for _, f := range parts {
		b := q.Div(f.polynomial().Pow(f.power))
		basis = append(basis, b)
		if f.quadratic {
			basis = append(basis, b.Mul(poly.New(0, 1)))
		}
	}
	if len(basis) != n {
		return nil, false
	}

	a := mat.NewDense(n, n, nil)
	rhs := mat.NewVecDense(n, nil)
	for j := range n {
		for k, b := range basis {
			a.Set(j, k, b.Coeff(j))
		}
		rhs.SetVec(j, rem.Coeff(j))
	}
	var x mat.VecDense
	if err := x.SolveVec(a, rhs); err != nil {
		// An ill-conditioned system still yields a solution.
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, false
		}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = x.AtVec(i)
	}
	return out, true
}
