// Package fft implements an in-place radix-2 Cooley–Tukey forward DFT on
// split real/imaginary slices.
//
// The split-slice layout avoids a complex128 conversion round trip for
// real-valued records and feeds the magnitude/power kernels of
// algo-vecmath directly. Lengths must be an exact power of two; callers
// pad with [ZeroPad] first.
package fft

import (
	"fmt"
	"math"
)

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n (minimum 1).
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// ZeroPad returns a copy of x extended with trailing zeros to the next
// power-of-two length. A power-of-two input is returned unchanged in
// length, but still as a fresh slice.
func ZeroPad(x []float64) []float64 {
	out := make([]float64, NextPowerOfTwo(len(x)))
	copy(out, x)
	return out
}

// Transform performs the forward DFT of re/im in place:
//
//	X[k] = sum_n x[n] * exp(-2*pi*i*k*n/N)
//
// Both slices must have the same power-of-two length. The twiddle factor
// of each butterfly stage is rotated incrementally instead of calling
// sin/cos per butterfly.
func Transform(re, im []float64) error {
	n := len(re)
	if len(im) != n {
		return fmt.Errorf("fft real/imag length mismatch: %d != %d", n, len(im))
	}
	if !IsPowerOfTwo(n) {
		return fmt.Errorf("fft length must be a power of two: %d", n)
	}
	if n == 1 {
		return nil
	}

	bitReverse(re, im)

	for mmax := 1; mmax < n; mmax *= 2 {
		theta := -math.Pi / float64(mmax)
		wpr := math.Cos(theta)
		wpi := math.Sin(theta)

		wr, wi := 1.0, 0.0
		for m := 0; m < mmax; m++ {
			for i := m; i < n; i += 2 * mmax {
				j := i + mmax

				tr := wr*re[j] - wi*im[j]
				ti := wr*im[j] + wi*re[j]
				re[j] = re[i] - tr
				im[j] = im[i] - ti
				re[i] += tr
				im[i] += ti
			}

			wr, wi = wr*wpr-wi*wpi, wr*wpi+wi*wpr
		}
	}

	return nil
}

// bitReverse permutes both slices into bit-reversed index order.
func bitReverse(re, im []float64) {
	n := len(re)

	j := 0
	for i := 0; i < n; i++ {
		if i < j {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}

		m := n >> 1
		for m >= 1 && j >= m {
			j -= m
			m >>= 1
		}
		j += m
	}
}
