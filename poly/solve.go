package poly

import (
	"math"
	"slices"
)

// QuadFactor is the monic quadratic x² + B·x + C.
type QuadFactor struct {
	B, C float64
}

// Eval evaluates the factor at x.
func (f QuadFactor) Eval(x float64) float64 {
	return (x+f.B)*x + f.C
}

// Roots returns the real roots of the factor.
func (f QuadFactor) Roots() []float64 {
	return Degree2Roots(f.B, f.C)
}

// Polynomial returns the factor as a polynomial.
func (f QuadFactor) Polynomial() Polynomial {
	return New(f.C, f.B, 1)
}

// Degree2Roots returns the real roots of x² + b·x + c.
//
// A double root is reported once.
func Degree2Roots(b, c float64) []float64 {
	if AlmostZero(b) {
		if c < 0 {
			s := math.Sqrt(-c)
			return []float64{s, -s}
		} else if AlmostZero(c) {
			return []float64{0}
		}
	}
	if AlmostZero(c) {
		return []float64{0, -b}
	}
	de := b*b - 4*c
	switch {
	case AlmostZero(de):
		return []float64{-0.5 * b}
	case de > 0:
		s := math.Sqrt(de)
		return []float64{0.5 * (s - b), 0.5 * (-s - b)}
	default:
		return nil
	}
}

// Degree3Roots returns the real roots of x³ + b·x² + c·x + d in increasing
// order, without duplicates.
func Degree3Roots(b, c, d float64) []float64 {
	if AlmostZero(d) {
		return withZero(Degree2Roots(b, c))
	}
	b2 := b * b
	de0 := b2 - 3*c
	de1 := 2*b*b2 - 9*c*b + 27*d
	de2 := de1*de1 - 4*de0*de0*de0

	var roots []float64
	if de2 < 0 {
		// Three distinct real roots.
		m := b / 3
		p3 := -de0 / 9
		q := de1 / 27
		s := 2 * math.Sqrt(-p3)
		t := math.Acos(Clamp(q/(p3*s), -1, 1)) / 3
		const u = 2 * math.Pi / 3
		roots = []float64{
			s*math.Cos(t) - m,
			s*math.Cos(t-u) - m,
			s*math.Cos(t-2*u) - m,
		}
	} else {
		sq := math.Sqrt(de2)
		c1 := math.Cbrt(0.5 * (de1 + sq))
		c2 := math.Cbrt(0.5 * (de1 - sq))
		c3 := c1 + c2
		roots = Degree2Roots((2*b-c3)/3, (b2-b*c3+c3*c3-3*c1*c2)/9)
		roots = append(roots, (-b-c3)/3)
	}
	slices.Sort(roots)
	return slices.Compact(roots)
}

// Degree3Decompose factors x³ + b·x² + c·x + d into (x − root)·q.
func Degree3Decompose(b, c, d float64) (root float64, q QuadFactor) {
	if AlmostZero(d) {
		return 0, QuadFactor{b, c}
	}
	b2 := b * b
	de0 := b2 - 3*c
	de1 := 2*b*b2 - 9*c*b + 27*d
	de2 := de1*de1 - 4*de0*de0*de0

	if de2 < 0 {
		m := b / 3
		p3 := -de0 / 9
		q := de1 / 27
		s := 2 * math.Sqrt(-p3)
		t := math.Acos(Clamp(q/(p3*s), -1, 1)) / 3
		const u = 2 * math.Pi / 3
		sc1 := s * math.Cos(t)
		sc2 := s * math.Cos(t-u)
		sc3 := s * math.Cos(t-2*u)
		k := m - sc1 - sc3
		return sc2 - m, QuadFactor{m + k, sc1*sc3 + m*k}
	}
	sq := math.Sqrt(de2)
	c1 := math.Cbrt(0.5 * (de1 + sq))
	c2 := math.Cbrt(0.5 * (de1 - sq))
	c3 := c1 + c2
	return (-b - c3) / 3, QuadFactor{(2*b - c3) / 3, (b2 - b*c3 + c3*c3 - 3*c1*c2) / 9}
}

// Degree4Roots returns the real roots of x⁴ + b·x³ + c·x² + d·x + e in
// increasing order, without duplicates.
func Degree4Roots(b, c, d, e float64) []float64 {
	if AlmostZero(e) {
		return withZero(Degree3Roots(b, c, d))
	}
	f1, f2 := Degree4Decompose(b, c, d, e)
	roots := append(f1.Roots(), f2.Roots()...)
	slices.Sort(roots)
	return slices.Compact(roots)
}

// Degree4Decompose factors x⁴ + b·x³ + c·x² + d·x + e into two real
// quadratics.
//
// When the quartic has no real factorization with distinct factors, as for
// x⁴ + 1, the factors are still real; they simply have no real roots.
func Degree4Decompose(b, c, d, e float64) (QuadFactor, QuadFactor) {
	if AlmostZero(e) {
		root, q := Degree3Decompose(b, c, d)
		// x·(x − root)
		return QuadFactor{-root, 0}, q
	}
	b2 := b * b
	bd := b * d

	// Depressed quartic y⁴ + p·y² + q·y + r with x = y − m.
	p := 0.125 * (8*c - 3*b2)
	q := 0.125 * (b*b2 - 4*b*c + 8*d)
	m := 0.25 * b

	if AlmostZero(q) {
		// Biquadratic in y.
		r := e - 0.25*bd + b2*c/16 - 3*b2*b2/256
		z := Degree2Roots(p, r)
		switch len(z) {
		case 2:
			return QuadFactor{2 * m, m*m - z[0]}, QuadFactor{2 * m, m*m - z[1]}
		case 1:
			return QuadFactor{2 * m, m*m - z[0]}, QuadFactor{2 * m, m*m - z[0]}
		default:
			// (y² + αy + β)(y² − αy + β)
			beta := math.Sqrt(r)
			alpha := math.Sqrt(max(2*beta-p, 0))
			return QuadFactor{2*m + alpha, m*m + alpha*m + beta},
				QuadFactor{2*m - alpha, m*m - alpha*m + beta}
		}
	}

	c2 := c * c
	de0 := c2 - 3*bd + 12*e
	de1 := 2*c*c2 - 9*bd*c + 27*(b2*e+d*d) - 72*e*c
	f43 := 4 * de0 * de0 * de0
	de2 := de1*de1 - f43

	// y is a root of the resolvent cubic, non-zero since q is.
	var y float64
	if de2 < 0 {
		phi := math.Acos(Clamp(de1/math.Sqrt(f43), -1, 1))
		y = (-2*p + 2*math.Sqrt(de0)*math.Cos(phi/3)) / 3
	} else {
		var s float64
		if AlmostZero(de0) && !AlmostZero(de2) {
			s = math.Cbrt(de1)
		} else {
			s = math.Cbrt(0.5 * (de1 + math.Sqrt(de2)))
		}
		var k float64
		if !AlmostZero(s) {
			k = s + de0/s
		}
		y = (-2*p + k) / 3
	}
	S := 0.5 * math.Sqrt(max(y, 0))

	t := -4*S*S - 2*p
	t1 := t + q/S
	t2 := t - q/S
	k1 := m + S
	k2 := m - S
	return QuadFactor{2 * k1, k1*k1 - 0.25*t1}, QuadFactor{2 * k2, k2*k2 - 0.25*t2}
}

// withZero adds 0 to a sorted root set unless it is already present.
func withZero(roots []float64) []float64 {
	if !slices.Contains(roots, 0) {
		roots = append(roots, 0)
	}
	slices.Sort(roots)
	return roots
}

// Roots returns the real roots of p in increasing order.
//
// Degrees one through four are solved in closed form. Higher degrees are
// reduced to their square-free part when they have repeated roots and then
// deflated with Bairstow's method. Leading coefficients within Epsilon of zero
// are dropped, and a constant term within Epsilon of zero contributes the root
// 0. The zero polynomial and non-zero constants have no roots.
func (p Polynomial) Roots() []float64 {
	roots := p.roots()
	slices.Sort(roots)
	return slices.Compact(roots)
}

func (p Polynomial) roots() []float64 {
	c := p.c
	for {
		if len(c) <= 1 {
			return nil
		}
		if AlmostZero(c[len(c)-1]) {
			c = c[:len(c)-1]
			continue
		}
		if AlmostZero(c[0]) {
			return withZero(Polynomial{c: c[1:]}.roots())
		}
		break
	}
	m := Polynomial{c: c}.monic()
	mc := m.c
	switch len(mc) - 1 {
	case 1:
		return []float64{-mc[0]}
	case 2:
		return Degree2Roots(mc[1], mc[0])
	case 3:
		return m.polishAll(Degree3Roots(mc[2], mc[1], mc[0]))
	case 4:
		return m.polishAll(Degree4Roots(mc[3], mc[2], mc[1], mc[0]))
	default:
		if sf := m.squareFree(); sf.Degree() < m.Degree() {
			return sf.roots()
		}
		r, s, quo := bairstow(mc)
		roots := Degree2Roots(-r, -s)
		roots = append(roots, fromOwned(quo).roots()...)
		return m.polishAll(roots)
	}
}

// squareFree returns the monic p / GCD(p, p′), which has the roots of p,
// each of them simple. Bairstow deflation scatters repeated roots into
// clusters of nearby ones.
func (p Polynomial) squareFree() Polynomial {
	g := monicGCD(p, p.Derivative())
	if g.Degree() == 0 {
		return p
	}
	return p.Div(g).monic()
}

// monicGCD is [GCD] with every remainder made monic after dropping leading
// coefficients within Epsilon of zero, so that rounding noise in a
// remainder does not pass for a divisor.
func monicGCD(a, b Polynomial) Polynomial {
	a = a.trimAlmostZero()
	b = b.trimAlmostZero()
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a.monic()
	}
	a, b = a.monic(), b.monic()
	for {
		r := a.Rem(b).trimAlmostZero()
		if r.IsZero() {
			return b
		}
		a, b = b, r.monic()
	}
}

// trimAlmostZero drops leading coefficients within Epsilon of zero.
func (p Polynomial) trimAlmostZero() Polynomial {
	n := len(p.c)
	for n > 0 && AlmostZero(p.c[n-1]) {
		n--
	}
	return Polynomial{c: p.c[:n]}
}

func (p Polynomial) polishAll(roots []float64) []float64 {
	d := p.Derivative()
	for i, r := range roots {
		roots[i] = p.polish(d, r)
	}
	return roots
}

// polish refines a root with Newton steps for as long as they reduce the
// residual.
func (p Polynomial) polish(d Polynomial, r float64) float64 {
	const maxSteps = 8
	f := p.Eval(r)
	for range maxSteps {
		if f == 0 {
			break
		}
		df := d.Eval(r)
		if df == 0 {
			break
		}
		nr := r - f/df
		nf := p.Eval(nr)
		if math.Abs(nf) >= math.Abs(f) {
			break
		}
		r, f = nr, nf
	}
	return r
}
