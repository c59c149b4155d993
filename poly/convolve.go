package poly

import (
	"math/bits"

	"gonum.org/v1/gonum/dsp/fourier"
)

// fftThreshold is the transform length from which Mul switches from the direct
// circular sum to a real FFT.
const fftThreshold = 64

// Mul returns the product p·q.
//
// The coefficients are multiplied as a circular convolution over the next
// power of two that holds the full product, then truncated to the product's
// length. Short products are summed directly and are exact up to
// floating-point rounding; long ones go through an FFT.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Polynomial{}
	}
	n := len(p.c) + len(q.c) - 1
	size := nextPow2(n)
	var out []float64
	if size < fftThreshold {
		out = circularConvolve(p.c, q.c, size)
	} else {
		out = fftConvolve(p.c, q.c, size)
	}
	return fromOwned(out[:n])
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

func circularConvolve(a, b []float64, size int) []float64 {
	out := make([]float64, size)
	for i, x := range a {
		if x == 0 {
			continue
		}
		for j, y := range b {
			out[(i+j)%size] += x * y
		}
	}
	return out
}

func fftConvolve(a, b []float64, size int) []float64 {
	fft := fourier.NewFFT(size)
	pa := make([]float64, size)
	pb := make([]float64, size)
	copy(pa, a)
	copy(pb, b)
	ca := fft.Coefficients(nil, pa)
	cb := fft.Coefficients(nil, pb)
	for i := range ca {
		ca[i] *= cb[i]
	}
	out := fft.Sequence(nil, ca)
	// Sequence is unnormalized.
	inv := 1 / float64(size)
	for i := range out {
		out[i] *= inv
	}
	return out
}
