package poly

import "math"

// Epsilon is the absolute tolerance used for all near-zero tests.
const Epsilon = 1e-9

// AlmostZero reports whether |x| < Epsilon.
func AlmostZero(x float64) bool {
	return math.Abs(x) < Epsilon
}

// AlmostZeroRef reports whether |x| < eps·max(1, |ref|).
func AlmostZeroRef(x, eps, ref float64) bool {
	return math.Abs(x) < math.Abs(eps)*max(1, math.Abs(ref))
}

// AlmostEqual reports whether a and b agree to within Epsilon, scaled by the
// magnitude of a when it exceeds 1.
func AlmostEqual(a, b float64) bool {
	return AlmostZeroRef(a-b, Epsilon, a)
}

// Binomial returns the binomial coefficient n choose k.
func Binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	k = min(k, n-k)
	r := 1.0
	for i := range k {
		r = r * float64(n-i) / float64(i+1)
	}
	return math.Round(r)
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return min(max(x, lo), hi)
}

// Lerp linearly interpolates between a and b.
func Lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}
