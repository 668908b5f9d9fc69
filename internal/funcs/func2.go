package funcs

import "github.com/hassan/cogpar/internal/cmath"

// Func2 identifies a two-argument function.
type Func2 int

const (
	ToBipolar Func2 = iota
	FromBipolar
	Inflect
	FoldUp
	FoldDown
	FoldLeft
	FoldRight
	FoldIn
	FoldOut
	Shear
	Compare
	numFunc2
)

// Partial derivative availability.
const (
	gradA = 1 << iota
	gradB
)

type func2Entry struct {
	name string
	eval func(a, b complex128) complex128
	grad func(a, b complex128) (v, da, db complex128)
	// has records which of da, db grad computes.
	has int
}

var func2Table = [numFunc2]func2Entry{
	ToBipolar: {
		name: "bipol",
		eval: func(a, b complex128) complex128 { return cmath.ToBipolar(a, real(b)) },
		grad: func(a, b complex128) (complex128, complex128, complex128) {
			v, d := cmath.ToBipolarD(a, real(b))
			return v, d, 0
		},
		has: gradA,
	},
	FromBipolar: {
		name: "ibipol",
		eval: func(a, b complex128) complex128 { return cmath.FromBipolar(a, real(b)) },
		grad: func(a, b complex128) (complex128, complex128, complex128) {
			v, d := cmath.FromBipolarD(a, real(b))
			return v, d, 0
		},
		has: gradA,
	},
	Inflect: {
		name: "inflect",
		eval: cmath.Inflection,
		grad: cmath.InflectionD,
		has:  gradA | gradB,
	},
	FoldUp:    {name: "foldu", eval: cmath.FoldUp},
	FoldDown:  {name: "foldd", eval: cmath.FoldDown},
	FoldLeft:  {name: "foldl", eval: cmath.FoldLeft},
	FoldRight: {name: "foldr", eval: cmath.FoldRight},
	FoldIn:    {name: "foldi", eval: cmath.FoldIn},
	FoldOut:   {name: "foldo", eval: cmath.FoldOut},
	Shear:     {name: "shear", eval: cmath.Shear},
	Compare: {
		name: "cmp",
		eval: func(a, b complex128) complex128 { return complex(cmath.Compare(a, b), 0) },
	},
}

var func2Names = make(map[string]Func2, numFunc2)

func init() {
	for id, e := range func2Table {
		func2Names[e.name] = Func2(id)
	}
}

// LookupFunc2 resolves a two-argument function by name.
func LookupFunc2(name string) (Func2, bool) {
	f, ok := func2Names[name]
	return f, ok
}

// Valid reports whether f is a registered id.
func (f Func2) Valid() bool { return f >= 0 && f < numFunc2 }

func (f Func2) String() string {
	if !f.Valid() {
		return "func2?"
	}
	return func2Table[f].name
}

// Eval applies f to (a, b). f must be valid.
func (f Func2) Eval(a, b complex128) complex128 {
	return func2Table[f].eval(a, b)
}

// Differentiable reports which arguments f can be differentiated in.
func (f Func2) Differentiable() (inA, inB bool) {
	if !f.Valid() {
		return false, false
	}
	has := func2Table[f].has
	return has&gradA != 0, has&gradB != 0
}

// Dual returns f(a, b) with its partial derivatives. okA and okB report
// whether the corresponding partial is defined; an undefined partial is 0.
func (f Func2) Dual(a, b complex128) (v, da, db complex128, okA, okB bool) {
	e := func2Table[f]
	if e.grad == nil {
		return e.eval(a, b), 0, 0, false, false
	}
	v, da, db = e.grad(a, b)
	return v, da, db, e.has&gradA != 0, e.has&gradB != 0
}
