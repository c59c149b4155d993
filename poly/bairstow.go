package poly

import (
	"context"
	"log/slog"
	"math"
)

const (
	// bairstowRelaxEvery is the number of iterations after which an
	// unconverged Bairstow iteration relaxes its tolerance.
	bairstowRelaxEvery = 500
	// bairstowMaxEpsilon caps the relaxed tolerance.
	bairstowMaxEpsilon = 1e-3
	// bairstowEpsilon is the initial convergence tolerance.
	bairstowEpsilon = 1e-14
)

// synthetic divides a by x² − r·x − s. b holds the quotient in b[2:] and the
// remainder terms in b[0] and b[1]; c is the second division used for the
// Jacobian.
func synthetic(a []float64, r, s float64, b, c []float64) {
	n := len(a) - 1
	b[n] = a[n]
	b[n-1] = a[n-1] + r*b[n]
	for i := n - 2; i >= 0; i-- {
		b[i] = a[i] + r*b[i+1] + s*b[i+2]
	}
	c[n] = b[n]
	c[n-1] = b[n-1] + r*c[n]
	for i := n - 2; i >= 1; i-- {
		c[i] = b[i] + r*c[i+1] + s*c[i+2]
	}
}

// bairstowIterate runs at most limit Newton steps on (r, s). It reports
// whether both updates fell below eps, relative to the size of r and s.
func bairstowIterate(a []float64, r, s, eps float64, limit int) (float64, float64, bool) {
	b := make([]float64, len(a))
	c := make([]float64, len(a))
	for range limit {
		synthetic(a, r, s, b, c)
		det := c[2]*c[2] - c[3]*c[1]
		if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
			return r, s, false
		}
		dr := (-b[1]*c[2] + b[0]*c[3]) / det
		ds := (-b[0]*c[2] + b[1]*c[1]) / det
		r += dr
		s += ds
		if math.IsNaN(r) || math.IsNaN(s) {
			return r, s, false
		}
		if AlmostZeroRef(dr, eps, r) && AlmostZeroRef(ds, eps, s) {
			return r, s, true
		}
	}
	return r, s, false
}

// bairstowGuesses returns starting values for (r, s). The first comes from the
// polynomial's low-order terms; the rest are spread around circles of several
// radii, which perturbs away from a singular Jacobian.
func bairstowGuesses(a []float64) [][2]float64 {
	var out [][2]float64
	if !AlmostZero(a[2]) {
		out = append(out, [2]float64{-a[1] / a[2], -a[0] / a[2]})
	}
	for _, rho := range [...]float64{1, 0.5, 2, 4} {
		for k := range 4 {
			th := math.Pi * float64(2*k+1) / 8
			out = append(out, [2]float64{2 * rho * math.Cos(th), -rho * rho})
		}
	}
	return out
}

// bairstow finds a quadratic factor x² − r·x − s of the monic polynomial a,
// which must have degree three or more. It returns the factor and the
// quotient's coefficients.
func bairstow(a []float64) (r, s float64, quo []float64) {
	guesses := bairstowGuesses(a)
	ok := false
	for _, g := range guesses {
		r, s, ok = bairstowIterate(a, g[0], g[1], bairstowEpsilon, bairstowRelaxEvery)
		if ok {
			break
		}
	}
	if !ok {
		// Relax the tolerance until something converges or the cap has been in
		// force for a full round, then accept what we have.
		r, s = guesses[0][0], guesses[0][1]
		eps := bairstowEpsilon
		for {
			eps = min(eps*10, bairstowMaxEpsilon)
			r, s, ok = bairstowIterate(a, r, s, eps, bairstowRelaxEvery)
			if ok || eps >= bairstowMaxEpsilon {
				break
			}
		}
		if math.IsNaN(r) || math.IsNaN(s) {
			r, s = guesses[0][0], guesses[0][1]
		}
		if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
			l.Debug("bairstow: relaxed tolerance",
				slog.Int("degree", len(a)-1),
				slog.Float64("epsilon", eps),
				slog.Bool("converged", ok))
		}
	}
	b := make([]float64, len(a))
	c := make([]float64, len(a))
	synthetic(a, r, s, b, c)
	return r, s, b[2:]
}

// QuadraticFactors factors the monic form of p into real quadratics.
//
// For odd degrees the last real root is returned separately as lin, so that
// p = Leading()·(x − lin[0])·∏factors. Polynomials of degree five and up are
// deflated with Bairstow's method; the final quartic or cubic is factored in
// closed form.
func (p Polynomial) QuadraticFactors() (factors []QuadFactor, lin []float64) {
	if p.Degree() < 1 {
		return nil, nil
	}
	a := p.monic().c
	for len(a)-1 >= 5 {
		r, s, quo := bairstow(a)
		factors = append(factors, QuadFactor{-r, -s})
		a = quo
	}
	switch len(a) - 1 {
	case 4:
		f1, f2 := Degree4Decompose(a[3], a[2], a[1], a[0])
		factors = append(factors, f1, f2)
	case 3:
		root, q := Degree3Decompose(a[2], a[1], a[0])
		factors = append(factors, q)
		lin = append(lin, root)
	case 2:
		factors = append(factors, QuadFactor{a[1], a[0]})
	case 1:
		lin = append(lin, -a[0])
	}
	return factors, lin
}
