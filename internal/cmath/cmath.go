// Package cmath is the numeric collaborator of the expression evaluator.
//
// Every function here is referentially transparent over complex128. The
// elementary transcendental functions come from math/cmplx; the rest
// (reciprocal trigonometry, versines, special functions, plane transforms)
// are composed from them.
//
// CONVENTIONS:
// - Scalar producers (Re, Im, Norm, Arg) return float64; callers that need a
//   complex value wrap them as complex(x, 0).
// - Component-wise operations (Floor, Ceil, Trunc, Round, Abs) apply the real
//   function to the real and imaginary parts independently.
// - Functions suffixed with D return the value and the first derivative as a
//   pair, used by forward-mode differentiation.
package cmath

import (
	"math"
	"math/cmplx"
	"strconv"
)

// Phi is the golden ratio.
const Phi = 1.618033988749895

const (
	log10e = 0.43429448190325182765
	log2e  = 1.442695040888963407360
)

// Mod returns the remainder of a divided by b using a floored quotient taken
// component-wise: a - b*Floor(a/b). For real operands the result carries the
// sign of b, so Mod(3, -4) is -1.
func Mod(a, b complex128) complex128 {
	return a - b*Floor(a/b)
}

// Pow returns base raised to exponent.
func Pow(base, exponent complex128) complex128 {
	return cmplx.Pow(base, exponent)
}

func Exp(z complex128) complex128  { return cmplx.Exp(z) }
func Sqrt(z complex128) complex128 { return cmplx.Sqrt(z) }

// Log is the principal natural logarithm.
func Log(z complex128) complex128 { return cmplx.Log(z) }

func Log10(z complex128) complex128 { return cmplx.Log(z) * log10e }
func Log2(z complex128) complex128  { return cmplx.Log(z) * log2e }

func Conj(z complex128) complex128 { return cmplx.Conj(z) }

func Re(z complex128) float64 { return real(z) }
func Im(z complex128) float64 { return imag(z) }

// Norm is the modulus |z|.
func Norm(z complex128) float64 { return cmplx.Abs(z) }

// NormSquared is re² + im².
func NormSquared(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}

// Arg is the principal argument in (-π, π].
func Arg(z complex128) float64 { return cmplx.Phase(z) }

// Abs takes the absolute value of each component.
func Abs(z complex128) complex128 {
	return complex(math.Abs(real(z)), math.Abs(imag(z)))
}

func AbsRe(z complex128) complex128 { return complex(math.Abs(real(z)), imag(z)) }
func AbsIm(z complex128) complex128 { return complex(real(z), math.Abs(imag(z))) }

func Floor(z complex128) complex128 { return complex(math.Floor(real(z)), math.Floor(imag(z))) }
func Ceil(z complex128) complex128  { return complex(math.Ceil(real(z)), math.Ceil(imag(z))) }
func Trunc(z complex128) complex128 { return complex(math.Trunc(real(z)), math.Trunc(imag(z))) }

// Round rounds each component half up (floor(x + 0.5)).
func Round(z complex128) complex128 {
	return complex(math.Floor(real(z)+0.5), math.Floor(imag(z)+0.5))
}

// GaussianInteger returns the nearest Gaussian integer, rounding each
// component half away from zero.
func GaussianInteger(z complex128) complex128 {
	return complex(math.Round(real(z)), math.Round(imag(z)))
}

func Reciprocal(z complex128) complex128 { return 1 / z }

// Flip swaps the real and imaginary parts.
func Flip(z complex128) complex128 { return complex(imag(z), real(z)) }

// Format renders z as "a+bi" or "a-bi" with the shortest decimal
// representation of each component. Negative zero prints as 0.
func Format(z complex128) string {
	re, im := real(z), imag(z)
	if re == 0 {
		re = 0
	}
	if im == 0 {
		im = 0
	}
	s := strconv.FormatFloat(re, 'g', -1, 64)
	if im >= 0 || math.IsNaN(im) {
		s += "+"
	}
	return s + strconv.FormatFloat(im, 'g', -1, 64) + "i"
}
