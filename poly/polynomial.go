package poly

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Polynomial is a polynomial with real coefficients, stored lowest degree
// first. The zero value is the zero polynomial.
//
// Trailing zero coefficients are trimmed, so the zero polynomial has no
// coefficients at all. Polynomials are values: methods never modify their
// receiver.
type Polynomial struct {
	c []float64
}

// New returns the polynomial c[0] + c[1]·x + c[2]·x² + ….
func New(coeffs ...float64) Polynomial {
	return fromOwned(slices.Clone(coeffs))
}

// fromOwned wraps c without copying it. The caller must not retain c.
func fromOwned(c []float64) Polynomial {
	n := len(c)
	for n > 0 && c[n-1] == 0 {
		n--
	}
	if n == 0 {
		return Polynomial{}
	}
	return Polynomial{c: c[:n:n]}
}

// Coeff returns the coefficient of x^i. It returns 0 for i past the leading
// term.
func (p Polynomial) Coeff(i int) float64 {
	if i < 0 || i >= len(p.c) {
		return 0
	}
	return p.c[i]
}

// Coeffs returns a copy of the coefficients, lowest degree first.
func (p Polynomial) Coeffs() []float64 {
	return slices.Clone(p.c)
}

// Len returns the number of stored coefficients.
func (p Polynomial) Len() int { return len(p.c) }

// Degree returns the degree of p. The zero polynomial has degree 0.
func (p Polynomial) Degree() int { return max(len(p.c)-1, 0) }

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool { return len(p.c) == 0 }

// AllAlmostZero reports whether every coefficient is within Epsilon of zero.
func (p Polynomial) AllAlmostZero() bool {
	for _, c := range p.c {
		if !AlmostZero(c) {
			return false
		}
	}
	return true
}

// Leading returns the coefficient of the highest-degree term, or 0 for the
// zero polynomial.
func (p Polynomial) Leading() float64 {
	if len(p.c) == 0 {
		return 0
	}
	return p.c[len(p.c)-1]
}

// Eval evaluates p at x using Horner's scheme.
func (p Polynomial) Eval(x float64) float64 {
	switch {
	case len(p.c) == 0:
		return 0
	case x == 0:
		return p.c[0]
	case x == 1:
		var sum float64
		for _, c := range p.c {
			sum += c
		}
		return sum
	}
	var r float64
	for i := len(p.c) - 1; i >= 0; i-- {
		r = r*x + p.c[i]
	}
	return r
}

// EvalComplex evaluates p at the complex point z.
func (p Polynomial) EvalComplex(z complex128) complex128 {
	var r complex128
	for i := len(p.c) - 1; i >= 0; i-- {
		r = r*z + complex(p.c[i], 0)
	}
	return r
}

// Derivative returns dp/dx.
func (p Polynomial) Derivative() Polynomial {
	if len(p.c) <= 1 {
		return Polynomial{}
	}
	out := make([]float64, len(p.c)-1)
	for i := range out {
		out[i] = float64(i+1) * p.c[i+1]
	}
	return fromOwned(out)
}

// Integral returns the antiderivative of p with a constant term of 0.
func (p Polynomial) Integral() Polynomial {
	if len(p.c) == 0 {
		return Polynomial{}
	}
	out := make([]float64, len(p.c)+1)
	for i, c := range p.c {
		out[i+1] = c / float64(i+1)
	}
	return fromOwned(out)
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	out := make([]float64, max(len(p.c), len(q.c)))
	copy(out, p.c)
	for i, c := range q.c {
		out[i] += c
	}
	return fromOwned(out)
}

// Sub returns p − q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	out := make([]float64, max(len(p.c), len(q.c)))
	copy(out, p.c)
	for i, c := range q.c {
		out[i] -= c
	}
	return fromOwned(out)
}

// Neg returns −p.
func (p Polynomial) Neg() Polynomial {
	return p.Scale(-1)
}

// Scale multiplies every coefficient by k.
func (p Polynomial) Scale(k float64) Polynomial {
	out := make([]float64, len(p.c))
	for i, c := range p.c {
		out[i] = c * k
	}
	return fromOwned(out)
}

// AddScalar adds k to the constant term.
func (p Polynomial) AddScalar(k float64) Polynomial {
	out := make([]float64, max(len(p.c), 1))
	copy(out, p.c)
	out[0] += k
	return fromOwned(out)
}

// QuoRem divides p by d, returning the quotient and remainder such that
// p = q·d + r and deg r < deg d.
//
// QuoRem panics if d is the zero polynomial.
func (p Polynomial) QuoRem(d Polynomial) (q, r Polynomial) {
	if d.IsZero() {
		panic("poly: division by zero polynomial")
	}
	if len(p.c) < len(d.c) {
		return Polynomial{}, p
	}
	if len(d.c) == 1 {
		return p.Scale(1 / d.c[0]), Polynomial{}
	}
	m := len(d.c)
	lead := d.c[m-1]
	rem := slices.Clone(p.c)
	quo := make([]float64, len(p.c)-m+1)
	for i := len(quo) - 1; i >= 0; i-- {
		k := rem[i+m-1] / lead
		quo[i] = k
		for j := range m {
			rem[i+j] -= k * d.c[j]
		}
	}
	return fromOwned(quo), fromOwned(rem[:m-1])
}

// Div returns the quotient of p / d. It panics if d is the zero polynomial.
func (p Polynomial) Div(d Polynomial) Polynomial {
	q, _ := p.QuoRem(d)
	return q
}

// Rem returns the remainder of p / d. It panics if d is the zero polynomial.
func (p Polynomial) Rem(d Polynomial) Polynomial {
	_, r := p.QuoRem(d)
	return r
}

// Pow returns p raised to the non-negative power n.
func (p Polynomial) Pow(n int) Polynomial {
	if n < 0 {
		panic("poly: negative exponent")
	}
	if p.IsZero() {
		return p
	}
	out := New(1)
	base := p
	for n > 0 {
		if n&1 == 1 {
			out = out.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}
	return out
}

// GCD returns a greatest common divisor of a and b using the Euclidean
// algorithm. Remainders whose coefficients are all near zero end the
// iteration. The result is not normalized.
func GCD(a, b Polynomial) Polynomial {
	for !b.AllAlmostZero() {
		a, b = b, a.Rem(b)
	}
	return a
}

// ExtendedGCD returns g = GCD(a, b) together with x and y such that
// a·x + b·y = g.
func ExtendedGCD(a, b Polynomial) (g, x, y Polynomial) {
	x0, x1 := New(1), Polynomial{}
	y0, y1 := Polynomial{}, New(1)
	for !b.AllAlmostZero() {
		q, r := a.QuoRem(b)
		x0, x1 = x1, x0.Sub(q.Mul(x1))
		y0, y1 = y1, y0.Sub(q.Mul(y1))
		a, b = b, r
	}
	return a, x0, y0
}

// Equal reports whether p and q have identical coefficients.
func (p Polynomial) Equal(q Polynomial) bool {
	return slices.Equal(p.c, q.c)
}

// monic returns p divided by its leading coefficient.
func (p Polynomial) monic() Polynomial {
	return p.Scale(1 / p.Leading())
}

// String formats p with the highest power first, as in "2x^3 - 3x + 1".
func (p Polynomial) String() string {
	if len(p.c) == 0 {
		return "0"
	}
	var sb strings.Builder
	first := true
	for i := len(p.c) - 1; i >= 0; i-- {
		c := p.c[i]
		if c == 0 && len(p.c) > 1 {
			continue
		}
		switch {
		case first && c < 0:
			sb.WriteString("-")
		case !first && c < 0:
			sb.WriteString(" - ")
		case !first:
			sb.WriteString(" + ")
		}
		first = false
		a := math.Abs(c)
		if a != 1 || i == 0 {
			sb.WriteString(strconv.FormatFloat(a, 'g', -1, 64))
		}
		switch i {
		case 0:
		case 1:
			sb.WriteString("x")
		default:
			sb.WriteString("x^")
			sb.WriteString(strconv.Itoa(i))
		}
	}
	return sb.String()
}
