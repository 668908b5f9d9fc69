package funcs

import "github.com/hassan/cogpar/internal/cmath"

// Func1 identifies a one-argument function.
type Func1 int

const (
	Sin Func1 = iota
	Sinh
	Asin
	Asinh
	Cos
	Cosh
	Acos
	Acosh
	Tan
	Tanh
	Atan
	Atanh
	Cot
	Coth
	Acot
	Acoth
	Sec
	Sech
	Asec
	Asech
	Csc
	Csch
	Acsc
	Acsch
	Sqrt
	Exp
	Log
	Log10
	Log2
	Abs
	Conj
	Re
	Im
	Norm
	Arg
	Gamma
	Fact
	AbsRe
	AbsIm
	GaussianInt
	Reciprocal
	Flip
	Round
	Ceil
	Floor
	Trunc
	Erf
	Zeta
	Versin
	ArcVersin
	Vercos
	ArcVercos
	Coversin
	ArcCoversin
	Covercos
	ArcCovercos
	Haversin
	ArcHaversin
	Havercos
	ArcHavercos
	Hacoversin
	ArcHacoversin
	Hacovercos
	ArcHacovercos
	Exsec
	ArcExsec
	Excsc
	ArcExcsc
	numFunc1
)

type func1Entry struct {
	name string
	eval func(complex128) complex128
	// dual is nil for functions without a closed-form derivative
	// (non-analytic or piecewise-constant ones).
	dual func(complex128) (complex128, complex128)
}

func scalar(f func(complex128) float64) func(complex128) complex128 {
	return func(z complex128) complex128 { return complex(f(z), 0) }
}

var func1Table = [numFunc1]func1Entry{
	Sin:   {"sin", cmath.Sin, cmath.SinD},
	Sinh:  {"sinh", cmath.Sinh, cmath.SinhD},
	Asin:  {"asin", cmath.Asin, cmath.AsinD},
	Asinh: {"asinh", cmath.Asinh, cmath.AsinhD},
	Cos:   {"cos", cmath.Cos, cmath.CosD},
	Cosh:  {"cosh", cmath.Cosh, cmath.CoshD},
	Acos:  {"acos", cmath.Acos, cmath.AcosD},
	Acosh: {"acosh", cmath.Acosh, cmath.AcoshD},
	Tan:   {"tan", cmath.Tan, cmath.TanD},
	Tanh:  {"tanh", cmath.Tanh, cmath.TanhD},
	Atan:  {"atan", cmath.Atan, cmath.AtanD},
	Atanh: {"atanh", cmath.Atanh, cmath.AtanhD},
	Cot:   {"cot", cmath.Cot, cmath.CotD},
	Coth:  {"coth", cmath.Coth, cmath.CothD},
	Acot:  {"acot", cmath.Acot, cmath.AcotD},
	Acoth: {"acoth", cmath.Acoth, cmath.AcothD},
	Sec:   {"sec", cmath.Sec, cmath.SecD},
	Sech:  {"sech", cmath.Sech, cmath.SechD},
	Asec:  {"asec", cmath.Asec, cmath.AsecD},
	Asech: {"asech", cmath.Asech, cmath.AsechD},
	Csc:   {"csc", cmath.Csc, cmath.CscD},
	Csch:  {"csch", cmath.Csch, cmath.CschD},
	Acsc:  {"acsc", cmath.Acsc, cmath.AcscD},
	Acsch: {"acsch", cmath.Acsch, cmath.AcschD},

	Sqrt:  {"sqrt", cmath.Sqrt, cmath.SqrtD},
	Exp:   {"exp", cmath.Exp, cmath.ExpD},
	Log:   {"log", cmath.Log, cmath.LogD},
	Log10: {"log10", cmath.Log10, cmath.Log10D},
	Log2:  {"log2", cmath.Log2, cmath.Log2D},

	Abs:         {"abs", cmath.Abs, nil},
	Conj:        {"conj", cmath.Conj, nil},
	Re:          {"re", scalar(cmath.Re), nil},
	Im:          {"im", scalar(cmath.Im), nil},
	Norm:        {"norm", scalar(cmath.Norm), nil},
	Arg:         {"arg", scalar(cmath.Arg), nil},
	Gamma:       {"gamma", cmath.Gamma, nil},
	Fact:        {"fact", cmath.Factorial, nil},
	AbsRe:       {"absre", cmath.AbsRe, nil},
	AbsIm:       {"absim", cmath.AbsIm, nil},
	GaussianInt: {"gi", cmath.GaussianInteger, nil},
	Reciprocal:  {"rec", cmath.Reciprocal, cmath.ReciprocalD},
	Flip:        {"flip", cmath.Flip, nil},
	Round:       {"round", cmath.Round, nil},
	Ceil:        {"ceil", cmath.Ceil, nil},
	Floor:       {"floor", cmath.Floor, nil},
	Trunc:       {"trunc", cmath.Trunc, nil},
	Erf:         {"erf", cmath.Erf, cmath.ErfD},
	Zeta:        {"rzeta", cmath.Zeta, nil},

	Versin:        {"vsin", cmath.Versin, cmath.VersinD},
	ArcVersin:     {"avsin", cmath.ArcVersin, cmath.ArcVersinD},
	Vercos:        {"vcos", cmath.Vercos, cmath.VercosD},
	ArcVercos:     {"avcos", cmath.ArcVercos, cmath.ArcVercosD},
	Coversin:      {"cvsin", cmath.Coversin, cmath.CoversinD},
	ArcCoversin:   {"acvsin", cmath.ArcCoversin, cmath.ArcCoversinD},
	Covercos:      {"cvcos", cmath.Covercos, cmath.CovercosD},
	ArcCovercos:   {"acvcos", cmath.ArcCovercos, cmath.ArcCovercosD},
	Haversin:      {"hvsin", cmath.Haversin, cmath.HaversinD},
	ArcHaversin:   {"ahvsin", cmath.ArcHaversin, cmath.ArcHaversinD},
	Havercos:      {"hvcos", cmath.Havercos, cmath.HavercosD},
	ArcHavercos:   {"ahvcos", cmath.ArcHavercos, cmath.ArcHavercosD},
	Hacoversin:    {"hcvsin", cmath.Hacoversin, cmath.HacoversinD},
	ArcHacoversin: {"ahcvsin", cmath.ArcHacoversin, cmath.ArcHacoversinD},
	Hacovercos:    {"hcvcos", cmath.Hacovercos, cmath.HacovercosD},
	ArcHacovercos: {"ahcvcos", cmath.ArcHacovercos, cmath.ArcHacovercosD},
	Exsec:         {"exsec", cmath.Exsec, cmath.ExsecD},
	ArcExsec:      {"aexsec", cmath.ArcExsec, cmath.ArcExsecD},
	Excsc:         {"excsc", cmath.Excsc, cmath.ExcscD},
	ArcExcsc:      {"aexcsc", cmath.ArcExcsc, cmath.ArcExcscD},
}

var func1Names = make(map[string]Func1, numFunc1)

func init() {
	for id, e := range func1Table {
		func1Names[e.name] = Func1(id)
	}
}

// LookupFunc1 resolves a one-argument function by name.
func LookupFunc1(name string) (Func1, bool) {
	f, ok := func1Names[name]
	return f, ok
}

// Valid reports whether f is a registered id.
func (f Func1) Valid() bool { return f >= 0 && f < numFunc1 }

func (f Func1) String() string {
	if !f.Valid() {
		return "func1?"
	}
	return func1Table[f].name
}

// Eval applies f to z. f must be valid.
func (f Func1) Eval(z complex128) complex128 {
	return func1Table[f].eval(z)
}

// Differentiable reports whether f has a derivative rule.
func (f Func1) Differentiable() bool {
	return f.Valid() && func1Table[f].dual != nil
}

// Dual returns f(z) and f'(z). ok is false when f has no derivative rule; v
// is still f(z) in that case.
func (f Func1) Dual(z complex128) (v, d complex128, ok bool) {
	e := func1Table[f]
	if e.dual == nil {
		return e.eval(z), 0, false
	}
	v, d = e.dual(z)
	return v, d, true
}
