package poly

import (
	"math"
	"math/cmplx"
)

// Cis returns cos(θ) + i·sin(θ).
func Cis(theta float64) complex128 {
	s, c := math.Sincos(theta)
	return complex(c, s)
}

// Polar returns the complex number with magnitude r and argument theta.
func Polar(r, theta float64) complex128 {
	return complex(r, 0) * Cis(theta)
}

// Cbrt returns the principal cube root of z.
func Cbrt(z complex128) complex128 {
	if z == 0 {
		return 0
	}
	r, theta := cmplx.Polar(z)
	return Polar(math.Cbrt(r), theta/3)
}

// Cot returns the cotangent of z.
func Cot(z complex128) complex128 { return 1 / cmplx.Tan(z) }

// Sec returns the secant of z.
func Sec(z complex128) complex128 { return 1 / cmplx.Cos(z) }

// Csc returns the cosecant of z.
func Csc(z complex128) complex128 { return 1 / cmplx.Sin(z) }

// Acot returns the inverse cotangent of z.
func Acot(z complex128) complex128 { return cmplx.Atan(1 / z) }

// Asec returns the inverse secant of z.
func Asec(z complex128) complex128 { return cmplx.Acos(1 / z) }

// Acsc returns the inverse cosecant of z.
func Acsc(z complex128) complex128 { return cmplx.Asin(1 / z) }
