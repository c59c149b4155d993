package poly

import (
	"log/slog"
	"math"
	"slices"
)

const (
	// bracketEpsilon is the initial tolerance for bracket refinement.
	bracketEpsilon = 1e-14
	// bracketRelaxEvery is the number of refinement steps after which the
	// tolerance is doubled.
	bracketRelaxEvery = 5000
)

// BracketRoots returns the real roots of p in increasing order by bracketing
// sign changes between consecutive critical points.
//
// Polynomials of degree four or less are delegated to [Polynomial.Roots]. For
// higher degrees the critical points are found recursively, the outermost
// interval is widened until it covers the roots at either end, and each
// sign-changing interval is refined with a secant/bisection hybrid. Unlike
// Bairstow deflation this never loses roots to accumulated deflation error,
// but it cannot see roots of even multiplicity unless they coincide with a
// critical point.
func (p Polynomial) BracketRoots() []float64 {
	if p.Degree() <= 4 {
		return p.Roots()
	}
	if AlmostZero(p.Leading()) {
		return fromOwned(slices.Clone(p.c[:len(p.c)-1])).BracketRoots()
	}
	m := p.monic()

	ext := m.Derivative().BracketRoots()
	slices.Sort(ext)

	// Walk outwards until the value has the sign it has at ±∞.
	hi := 1.0
	if len(ext) > 0 {
		hi = max(ext[len(ext)-1], 1)
	}
	for m.Eval(hi) < 0 {
		hi *= 2
	}
	lo := -1.0
	if len(ext) > 0 {
		lo = min(ext[0], -1)
	}
	if m.Degree()%2 == 0 {
		for m.Eval(lo) < 0 {
			lo *= 2
		}
	} else {
		for m.Eval(lo) > 0 {
			lo *= 2
		}
	}
	ext = append(ext, hi)
	ext = slices.Insert(ext, 0, lo)

	var roots []float64
	for i := range len(ext) - 1 {
		a, b := ext[i], ext[i+1]
		fa, fb := m.Eval(a), m.Eval(b)
		if AlmostZeroRef(fa, Epsilon, a) {
			if !slices.Contains(roots, a) {
				roots = append(roots, a)
			}
			continue
		}
		if AlmostZeroRef(fb, Epsilon, b) || (fa < 0) == (fb < 0) {
			continue
		}
		var neg, pos float64
		if fa < 0 {
			neg, pos = a, b
		} else {
			neg, pos = b, a
		}
		roots = append(roots, m.refine(neg, pos, b))
	}
	last := ext[len(ext)-1]
	if AlmostZeroRef(m.Eval(last), Epsilon, last) && !slices.Contains(roots, last) {
		roots = append(roots, last)
	}
	slices.Sort(roots)
	return roots
}

// refine narrows a bracket with p(neg) < 0 < p(pos) down to a root. Each step
// takes the secant estimate, falling back to bisection when the estimate moved
// by less than a third of the bracket width. The value at an endpoint that is
// retained twice in a row is halved, Illinois-style.
func (p Polynomial) refine(neg, pos, prev float64) float64 {
	nv, pv := p.Eval(neg), p.Eval(pos)
	eps := bracketEpsilon
	side := 0
	for i := 1; ; i++ {
		mid := (pos*nv - neg*pv) / (nv - pv)
		if 3*math.Abs(mid-prev) < math.Abs(neg-pos) || math.IsNaN(mid) {
			mid = 0.5 * (neg + pos)
		}
		v := p.Eval(mid)
		if AlmostZeroRef(v, eps, mid) || AlmostZeroRef(pos-neg, eps, pos) {
			return mid
		}
		prev = mid
		if v < 0 {
			neg, nv = mid, v
			if side == -1 {
				pv *= 0.5
			}
			side = -1
		} else {
			pos, pv = mid, v
			if side == 1 {
				nv *= 0.5
			}
			side = 1
		}
		if i%bracketRelaxEvery == 0 {
			eps *= 2
			Logger().Debug("bracket: relaxed tolerance",
				slog.Float64("neg", neg),
				slog.Float64("pos", pos),
				slog.Float64("epsilon", eps))
		}
	}
}
