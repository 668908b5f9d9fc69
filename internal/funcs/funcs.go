// Package funcs holds the static function registries consulted by the lexer
// and dispatched by the evaluator.
//
// There are three disjoint registries:
//
//	Func1  one-argument functions          sin(x)
//	Func2  two-argument functions          inflect(z, c)
//	Deriv  two-argument derivative forms   deriv(expr, x)
//
// The lexer classifies an identifier by exact, case-sensitive name match.
// Identifiers are resolved to small integer ids so that the AST stores an id
// rather than a string, and the evaluator dispatches through a table indexed
// by that id.
package funcs

// Kind reports which registry a name belongs to.
type Kind int

const (
	KindNone Kind = iota
	KindFunc1
	KindFunc2
	KindDeriv
)

func (k Kind) String() string {
	switch k {
	case KindFunc1:
		return "function"
	case KindFunc2:
		return "function2"
	case KindDeriv:
		return "derivative"
	default:
		return "none"
	}
}

// Classify returns the registry that defines name, or KindNone.
func Classify(name string) Kind {
	if _, ok := func1Names[name]; ok {
		return KindFunc1
	}
	if _, ok := func2Names[name]; ok {
		return KindFunc2
	}
	if _, ok := derivNames[name]; ok {
		return KindDeriv
	}
	return KindNone
}

// Deriv identifies a derivative form. "deriv" is the only one.
type Deriv int

const (
	Derivative Deriv = iota
	numDeriv
)

var derivNames = map[string]Deriv{
	"deriv": Derivative,
}

// LookupDeriv resolves a derivative form by name.
func LookupDeriv(name string) (Deriv, bool) {
	d, ok := derivNames[name]
	return d, ok
}

// Valid reports whether d is a registered id.
func (d Deriv) Valid() bool { return d >= 0 && d < numDeriv }

func (d Deriv) String() string {
	if d == Derivative {
		return "deriv"
	}
	return "deriv?"
}

// Names lists every registered name per registry, in id order.
func Names() (func1, func2, deriv []string) {
	for _, e := range func1Table {
		func1 = append(func1, e.name)
	}
	for _, e := range func2Table {
		func2 = append(func2, e.name)
	}
	deriv = []string{Derivative.String()}
	return func1, func2, deriv
}
