package cmath

import (
	"math"
	"math/cmplx"
)

// Value/derivative pairs for the analytic functions.
//
// Each XxxD(z) returns (f(z), f'(z)). Inverse functions are differentiated
// through the same compositions used to evaluate them, so the derivative
// agrees with the value on every branch.

func SinD(z complex128) (complex128, complex128)  { return cmplx.Sin(z), cmplx.Cos(z) }
func CosD(z complex128) (complex128, complex128)  { return cmplx.Cos(z), -cmplx.Sin(z) }
func SinhD(z complex128) (complex128, complex128) { return cmplx.Sinh(z), cmplx.Cosh(z) }
func CoshD(z complex128) (complex128, complex128) { return cmplx.Cosh(z), cmplx.Sinh(z) }

func TanD(z complex128) (complex128, complex128) {
	c := cmplx.Cos(z)
	return cmplx.Tan(z), 1 / (c * c)
}

func TanhD(z complex128) (complex128, complex128) {
	c := cmplx.Cosh(z)
	return cmplx.Tanh(z), 1 / (c * c)
}

func CotD(z complex128) (complex128, complex128) {
	s := cmplx.Sin(z)
	return Cot(z), -1 / (s * s)
}

func CothD(z complex128) (complex128, complex128) {
	s := cmplx.Sinh(z)
	return Coth(z), -1 / (s * s)
}

func SecD(z complex128) (complex128, complex128) {
	v := Sec(z)
	return v, v * cmplx.Tan(z)
}

func SechD(z complex128) (complex128, complex128) {
	v := Sech(z)
	return v, -v * cmplx.Tanh(z)
}

func CscD(z complex128) (complex128, complex128) {
	v := Csc(z)
	return v, -v * Cot(z)
}

func CschD(z complex128) (complex128, complex128) {
	v := Csch(z)
	return v, -v * Coth(z)
}

func AsinD(z complex128) (complex128, complex128) {
	return cmplx.Asin(z), 1 / cmplx.Sqrt(1-z*z)
}

func AcosD(z complex128) (complex128, complex128) {
	return cmplx.Acos(z), -1 / cmplx.Sqrt(1-z*z)
}

func AtanD(z complex128) (complex128, complex128) {
	return cmplx.Atan(z), 1 / (1 + z*z)
}

func AsinhD(z complex128) (complex128, complex128) {
	return cmplx.Asinh(z), 1 / cmplx.Sqrt(z*z+1)
}

func AcoshD(z complex128) (complex128, complex128) {
	return cmplx.Acosh(z), 1 / (cmplx.Sqrt(z-1) * cmplx.Sqrt(z+1))
}

func AtanhD(z complex128) (complex128, complex128) {
	return cmplx.Atanh(z), 1 / (1 - z*z)
}

// The reciprocal inverses are f(1/z); chain through u = 1/z, u' = -1/z².

func AcotD(z complex128) (complex128, complex128) {
	v, d := AtanD(1 / z)
	return v, d * (-1 / (z * z))
}

func AcothD(z complex128) (complex128, complex128) {
	v, d := AtanhD(1 / z)
	return v, d * (-1 / (z * z))
}

func AsecD(z complex128) (complex128, complex128) {
	v, d := AcosD(1 / z)
	return v, d * (-1 / (z * z))
}

func AsechD(z complex128) (complex128, complex128) {
	v, d := AcoshD(1 / z)
	return v, d * (-1 / (z * z))
}

func AcscD(z complex128) (complex128, complex128) {
	v, d := AsinD(1 / z)
	return v, d * (-1 / (z * z))
}

func AcschD(z complex128) (complex128, complex128) {
	v, d := AsinhD(1 / z)
	return v, d * (-1 / (z * z))
}

func SqrtD(z complex128) (complex128, complex128) {
	v := cmplx.Sqrt(z)
	return v, 1 / (2 * v)
}

func ExpD(z complex128) (complex128, complex128) {
	v := cmplx.Exp(z)
	return v, v
}

func LogD(z complex128) (complex128, complex128)   { return cmplx.Log(z), 1 / z }
func Log10D(z complex128) (complex128, complex128) { return Log10(z), log10e / z }
func Log2D(z complex128) (complex128, complex128)  { return Log2(z), log2e / z }

func ReciprocalD(z complex128) (complex128, complex128) {
	return 1 / z, -1 / (z * z)
}

func ErfD(z complex128) (complex128, complex128) {
	return Erf(z), complex(2/math.Sqrt(math.Pi), 0) * cmplx.Exp(-z*z)
}

func VersinD(z complex128) (complex128, complex128)   { return Versin(z), cmplx.Sin(z) }
func VercosD(z complex128) (complex128, complex128)   { return Vercos(z), -cmplx.Sin(z) }
func CoversinD(z complex128) (complex128, complex128) { return Coversin(z), -cmplx.Cos(z) }
func CovercosD(z complex128) (complex128, complex128) { return Covercos(z), cmplx.Cos(z) }

func HaversinD(z complex128) (complex128, complex128)   { return Haversin(z), cmplx.Sin(z) / 2 }
func HavercosD(z complex128) (complex128, complex128)   { return Havercos(z), -cmplx.Sin(z) / 2 }
func HacoversinD(z complex128) (complex128, complex128) { return Hacoversin(z), -cmplx.Cos(z) / 2 }
func HacovercosD(z complex128) (complex128, complex128) { return Hacovercos(z), cmplx.Cos(z) / 2 }

func ArcVersinD(z complex128) (complex128, complex128) {
	v, d := AcosD(1 - z)
	return v, -d
}

func ArcVercosD(z complex128) (complex128, complex128) {
	return AcosD(1 + z)
}

func ArcCoversinD(z complex128) (complex128, complex128) {
	v, d := AsinD(1 - z)
	return v, -d
}

func ArcCovercosD(z complex128) (complex128, complex128) {
	return AsinD(1 + z)
}

func ArcHaversinD(z complex128) (complex128, complex128) {
	s, ds := SqrtD(z)
	v, d := AsinD(s)
	return 2 * v, 2 * d * ds
}

func ArcHavercosD(z complex128) (complex128, complex128) {
	s, ds := SqrtD(z)
	v, d := AcosD(s)
	return 2 * v, 2 * d * ds
}

func ArcHacoversinD(z complex128) (complex128, complex128) {
	v, d := AsinD(1 - 2*z)
	return v, -2 * d
}

func ArcHacovercosD(z complex128) (complex128, complex128) {
	v, d := AsinD(1 + 2*z)
	return v, 2 * d
}

func ExsecD(z complex128) (complex128, complex128) {
	v, d := SecD(z)
	return v - 1, d
}

func ExcscD(z complex128) (complex128, complex128) {
	v, d := CscD(z)
	return v - 1, d
}

func ArcExsecD(z complex128) (complex128, complex128) { return AsecD(z + 1) }
func ArcExcscD(z complex128) (complex128, complex128) { return AcscD(z + 1) }

// Partial derivatives of the analytic two-argument functions.

// ToBipolarD returns ToBipolar(z, a) and its derivative in z:
// -(i·a/2)·csc²(z/2).
func ToBipolarD(z complex128, a float64) (complex128, complex128) {
	s := cmplx.Sin(z / 2)
	return ToBipolar(z, a), -1i * complex(a, 0) / (2 * s * s)
}

// FromBipolarD returns FromBipolar(z, a) and its derivative in z.
func FromBipolarD(z complex128, a float64) (complex128, complex128) {
	ia := 1i * complex(a, 0)
	v, d := AcotD(z / ia)
	return 2 * v, 2 * d / ia
}

// InflectionD returns Inflection(z, inf) with its partials in z and inf.
func InflectionD(z, inf complex128) (v, dz, dinf complex128) {
	d := z - inf
	return inf + d*d, 2 * d, 1 - 2*d
}
