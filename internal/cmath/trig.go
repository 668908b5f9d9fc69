package cmath

import "math/cmplx"

// Circular and hyperbolic functions. Reciprocal forms are defined through
// their primary counterparts so that branch cuts follow math/cmplx.

func Sin(z complex128) complex128  { return cmplx.Sin(z) }
func Cos(z complex128) complex128  { return cmplx.Cos(z) }
func Tan(z complex128) complex128  { return cmplx.Tan(z) }
func Cot(z complex128) complex128  { return cmplx.Cot(z) }
func Sec(z complex128) complex128  { return 1 / cmplx.Cos(z) }
func Csc(z complex128) complex128  { return 1 / cmplx.Sin(z) }
func Sinh(z complex128) complex128 { return cmplx.Sinh(z) }
func Cosh(z complex128) complex128 { return cmplx.Cosh(z) }
func Tanh(z complex128) complex128 { return cmplx.Tanh(z) }
func Coth(z complex128) complex128 { return cmplx.Cosh(z) / cmplx.Sinh(z) }
func Sech(z complex128) complex128 { return 1 / cmplx.Cosh(z) }
func Csch(z complex128) complex128 { return 1 / cmplx.Sinh(z) }

func Asin(z complex128) complex128  { return cmplx.Asin(z) }
func Acos(z complex128) complex128  { return cmplx.Acos(z) }
func Atan(z complex128) complex128  { return cmplx.Atan(z) }
func Acot(z complex128) complex128  { return cmplx.Atan(1 / z) }
func Asec(z complex128) complex128  { return cmplx.Acos(1 / z) }
func Acsc(z complex128) complex128  { return cmplx.Asin(1 / z) }
func Asinh(z complex128) complex128 { return cmplx.Asinh(z) }
func Acosh(z complex128) complex128 { return cmplx.Acosh(z) }
func Atanh(z complex128) complex128 { return cmplx.Atanh(z) }
func Acoth(z complex128) complex128 { return cmplx.Atanh(1 / z) }
func Asech(z complex128) complex128 { return cmplx.Acosh(1 / z) }
func Acsch(z complex128) complex128 { return cmplx.Asinh(1 / z) }

// Versine family.
//
//	vsin  = 1 - cos      avsin  = acos(1 - z)
//	vcos  = 1 + cos      avcos  = acos(1 + z)
//	cvsin = 1 - sin      acvsin = asin(1 - z)
//	cvcos = 1 + sin      acvcos = asin(1 + z)
//
// The "h" variants are halves of the above; their inverses are
// 2asin(√z), 2acos(√z), asin(1-2z) and asin(1+2z).

func Versin(z complex128) complex128        { return 1 - cmplx.Cos(z) }
func ArcVersin(z complex128) complex128     { return cmplx.Acos(1 - z) }
func Vercos(z complex128) complex128        { return 1 + cmplx.Cos(z) }
func ArcVercos(z complex128) complex128     { return cmplx.Acos(1 + z) }
func Coversin(z complex128) complex128      { return 1 - cmplx.Sin(z) }
func ArcCoversin(z complex128) complex128   { return cmplx.Asin(1 - z) }
func Covercos(z complex128) complex128      { return 1 + cmplx.Sin(z) }
func ArcCovercos(z complex128) complex128   { return cmplx.Asin(1 + z) }
func Haversin(z complex128) complex128      { return Versin(z) / 2 }
func ArcHaversin(z complex128) complex128   { return 2 * cmplx.Asin(cmplx.Sqrt(z)) }
func Havercos(z complex128) complex128      { return Vercos(z) / 2 }
func ArcHavercos(z complex128) complex128   { return 2 * cmplx.Acos(cmplx.Sqrt(z)) }
func Hacoversin(z complex128) complex128    { return Coversin(z) / 2 }
func ArcHacoversin(z complex128) complex128 { return cmplx.Asin(1 - 2*z) }
func Hacovercos(z complex128) complex128    { return Covercos(z) / 2 }
func ArcHacovercos(z complex128) complex128 { return cmplx.Asin(1 + 2*z) }

func Exsec(z complex128) complex128    { return Sec(z) - 1 }
func ArcExsec(z complex128) complex128 { return Asec(z + 1) }
func Excsc(z complex128) complex128    { return Csc(z) - 1 }
func ArcExcsc(z complex128) complex128 { return Acsc(z + 1) }
