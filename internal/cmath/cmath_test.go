package cmath

import (
	"math"
	"math/cmplx"
	"testing"
)

func near(a, b complex128, tol float64) bool {
	return cmplx.Abs(a-b) <= tol*(1+cmplx.Abs(b))
}

func TestMod(t *testing.T) {
	tests := []struct {
		a, b complex128
		want complex128
	}{
		{3, -4, -1},
		{7, 3, 1},
		{-7, 3, 2},
		{7.5, 2, 1.5},
		{5 + 5i, 3 + 0i, 2 + 2i},
	}

	for _, tt := range tests {
		got := Mod(tt.a, tt.b)
		if !near(got, tt.want, 1e-12) {
			t.Errorf("Mod(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		z    complex128
		want string
	}{
		{5i, "0+5i"},
		{-1, "-1+0i"},
		{complex(math.Copysign(0, -1), -2.5), "0-2.5i"},
		{14, "14+0i"},
		{0.25 + 1e-3i, "0.25+0.001i"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Format(tt.z); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.z, got, tt.want)
			}
		})
	}
}

func TestComponentWise(t *testing.T) {
	z := complex(-2.5, 1.5)
	tests := []struct {
		name string
		got  complex128
		want complex128
	}{
		{"Floor", Floor(z), complex(-3, 1)},
		{"Ceil", Ceil(z), complex(-2, 2)},
		{"Trunc", Trunc(z), complex(-2, 1)},
		{"Round", Round(z), complex(-2, 2)},
		{"GaussianInteger", GaussianInteger(z), complex(-3, 2)},
		{"Abs", Abs(z), complex(2.5, 1.5)},
		{"AbsRe", AbsRe(-z), complex(2.5, -1.5)},
		{"AbsIm", AbsIm(-z), complex(2.5, 1.5)},
		{"Flip", Flip(z), complex(1.5, -2.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestGamma(t *testing.T) {
	tests := []struct {
		z    complex128
		want complex128
	}{
		{5, 24},
		{1, 1},
		{0.5, complex(math.Sqrt(math.Pi), 0)},
		{-0.5, complex(-2*math.Sqrt(math.Pi), 0)},
	}

	for _, tt := range tests {
		if got := Gamma(tt.z); !near(got, tt.want, 1e-10) {
			t.Errorf("Gamma(%v) = %v, want %v", tt.z, got, tt.want)
		}
	}

	if got := Factorial(4); !near(got, 24, 1e-10) {
		t.Errorf("Factorial(4) = %v, want 24", got)
	}
}

func TestErf(t *testing.T) {
	for _, x := range []float64{0, 0.1, 0.5, 1, 1.5} {
		got := Erf(complex(x, 0))
		want := complex(math.Erf(x), 0)
		if !near(got, want, 1e-12) {
			t.Errorf("Erf(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestZeta(t *testing.T) {
	got := Zeta(2)
	want := complex(math.Pi*math.Pi/6, 0)
	if !near(got, want, 1e-3) {
		t.Errorf("Zeta(2) = %v, want %v", got, want)
	}

	// ζ(-1) = -1/12 through the functional equation.
	if got := Zeta(-1); !near(got, complex(-1.0/12, 0), 1e-3) {
		t.Errorf("Zeta(-1) = %v, want %v", got, -1.0/12)
	}
}

func TestPlaneTransforms(t *testing.T) {
	tests := []struct {
		name string
		got  complex128
		want complex128
	}{
		{"Inflection", Inflection(5i, 218), 218 + (5i-218)*(5i-218)},
		{"FoldRight", FoldRight(1+1i, 3), 5 + 1i},
		{"FoldRight noop", FoldRight(4+1i, 3), 4 + 1i},
		{"FoldLeft", FoldLeft(5+1i, 3), 1 + 1i},
		{"FoldUp", FoldUp(1-2i, 1i), 1 + 4i},
		{"FoldDown", FoldDown(1+4i, 1i), 1 - 2i},
		{"FoldOut", FoldOut(2, 1), 0.5},
		{"FoldOut noop", FoldOut(0.5, 1), 0.5},
		{"FoldIn", FoldIn(0.5, 1), 2},
		{"Shear", Shear(2+3i, 1+2i), 5 + 7i},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !near(tt.got, tt.want, 1e-12) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b complex128
		want float64
	}{
		{2, 1, -1},
		{1, 2, 1},
		{1 + 2i, 1 + 1i, -1},
		{1 + 1i, 1 + 2i, 1},
		{3 + 3i, 3 + 3i, 0},
	}

	for _, tt := range tests {
		if got := Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("Compare(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}

	if got := Compare(complex(math.NaN(), 0), 0); !math.IsNaN(got) {
		t.Errorf("Compare(NaN, 0) = %v, want NaN", got)
	}
}

func TestBipolarRoundTrip(t *testing.T) {
	z := complex(0.7, 0.3)
	got := FromBipolar(ToBipolar(z, 2), 2)
	if !near(got, z, 1e-12) {
		t.Errorf("FromBipolar(ToBipolar(%v)) = %v", z, got)
	}
}

// TestDerivativePairs checks every value/derivative pair against a central
// difference taken along the real axis.
func TestDerivativePairs(t *testing.T) {
	pairs := map[string]func(complex128) (complex128, complex128){
		"sin": SinD, "cos": CosD, "tan": TanD, "cot": CotD,
		"sec": SecD, "csc": CscD,
		"sinh": SinhD, "cosh": CoshD, "tanh": TanhD, "coth": CothD,
		"sech": SechD, "csch": CschD,
		"asin": AsinD, "acos": AcosD, "atan": AtanD, "acot": AcotD,
		"asec": AsecD, "acsc": AcscD,
		"asinh": AsinhD, "acosh": AcoshD, "atanh": AtanhD, "acoth": AcothD,
		"asech": AsechD, "acsch": AcschD,
		"sqrt": SqrtD, "exp": ExpD, "log": LogD, "log10": Log10D, "log2": Log2D,
		"rec": ReciprocalD, "erf": ErfD,
		"vsin": VersinD, "vcos": VercosD, "cvsin": CoversinD, "cvcos": CovercosD,
		"hvsin": HaversinD, "hvcos": HavercosD, "hcvsin": HacoversinD, "hcvcos": HacovercosD,
		"avsin": ArcVersinD, "avcos": ArcVercosD, "acvsin": ArcCoversinD, "acvcos": ArcCovercosD,
		"ahvsin": ArcHaversinD, "ahvcos": ArcHavercosD,
		"ahcvsin": ArcHacoversinD, "ahcvcos": ArcHacovercosD,
		"exsec": ExsecD, "excsc": ExcscD, "aexsec": ArcExsecD, "aexcsc": ArcExcscD,
	}

	// A point off both axes keeps every function away from its branch cuts.
	z := complex(0.3, 0.2)
	const h = 1e-6

	for name, f := range pairs {
		t.Run(name, func(t *testing.T) {
			_, d := f(z)
			vp, _ := f(z + h)
			vm, _ := f(z - h)
			want := (vp - vm) / (2 * h)
			if !near(d, want, 1e-5) {
				t.Errorf("%s'(%v) = %v, central difference %v", name, z, d, want)
			}
		})
	}
}

func TestBipolarDerivatives(t *testing.T) {
	z := complex(0.7, 0.3)
	const h = 1e-6

	_, d := ToBipolarD(z, 2)
	want := (ToBipolar(z+h, 2) - ToBipolar(z-h, 2)) / (2 * h)
	if !near(d, want, 1e-5) {
		t.Errorf("ToBipolarD = %v, central difference %v", d, want)
	}

	_, d = FromBipolarD(z, 2)
	want = (FromBipolar(z+h, 2) - FromBipolar(z-h, 2)) / (2 * h)
	if !near(d, want, 1e-5) {
		t.Errorf("FromBipolarD = %v, central difference %v", d, want)
	}
}
