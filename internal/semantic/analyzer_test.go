package semantic

import (
	"errors"
	"testing"

	"github.com/hassan/cogpar/internal/parser"
	"github.com/hassan/cogpar/internal/parser/ast"
	"github.com/hassan/cogpar/internal/symtab"
)

func parse(t *testing.T, input string) ast.Node {
	t.Helper()
	root, err := parser.Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", input, err)
	}
	return root
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name  string
		input string
		bind  []string
		kinds []error
	}{
		{"constant", "2+3*4", nil, nil},
		{"bound variable", "x^2", []string{"x"}, nil},
		{"unbound variable", "x^2", nil, []error{ast.ErrUnbound}},
		{"every occurrence", "x + x", nil, []error{ast.ErrUnbound, ast.ErrUnbound}},
		{"derivative target needs no binding inside", "deriv(x^2, x)", []string{"x"}, nil},
		{"derivative variable unbound", "deriv(x^2, x)", nil, []error{ast.ErrUnbound}},
		{"other variable under derivative", "deriv(x*y, x)", []string{"x"}, []error{ast.ErrUnbound}},
		{"remainder on target", "deriv(x % 2, x)", []string{"x"}, []error{ast.ErrNotDifferentiable}},
		{"remainder after target", "deriv(x * 3 % 2, x)", []string{"x"}, []error{ast.ErrNotDifferentiable}},
		{"remainder independent", "deriv(7 % 4 * x, x)", []string{"x"}, nil},
		{"remainder outside derivative", "x % 2", []string{"x"}, nil},
		{"floor on target", "deriv(floor(x), x)", []string{"x"}, []error{ast.ErrNotDifferentiable}},
		{"floor independent", "deriv(floor(y) * x, x)", []string{"x", "y"}, nil},
		{"bipol second argument", "deriv(bipol(1, x), x)", []string{"x"}, []error{ast.ErrNotDifferentiable}},
		{"bipol first argument", "deriv(bipol(x, 1), x)", []string{"x"}, nil},
		{"nested derivative on target", "deriv(deriv(x^2, x), x)", []string{"x"}, []error{ast.ErrNotDifferentiable}},
		{"nested derivative independent", "deriv(x * deriv(y^2, y), x)", []string{"x", "y"}, nil},
		{"source order", "deriv(floor(x*y), x)", []string{"x"}, []error{ast.ErrNotDifferentiable, ast.ErrUnbound}},
		{
			"several problems",
			"deriv(x % 2 + re(x), x) + z",
			[]string{"x"},
			[]error{ast.ErrNotDifferentiable, ast.ErrNotDifferentiable, ast.ErrUnbound},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := parse(t, tt.input)
			for _, name := range tt.bind {
				ast.Bind(root, name, 1)
			}

			errs := New().Analyze(root)
			if len(errs) != len(tt.kinds) {
				t.Fatalf("Analyze(%q) = %v, want %d errors", tt.input, errs, len(tt.kinds))
			}
			for i, err := range errs {
				if !errors.Is(err, tt.kinds[i]) {
					t.Errorf("error %d = %v, want kind %v", i, err, tt.kinds[i])
				}
				var serr *Error
				if !errors.As(err, &serr) || !serr.Pos.IsValid() {
					t.Errorf("error %d = %v, want *semantic.Error with a position", i, err)
				}
			}
		})
	}
}

// A tree the analyzer accepts must evaluate, and one it rejects must fail
// with the same kind of error.
func TestAnalyzeAgreesWithEval(t *testing.T) {
	inputs := []string{
		"deriv(x % 2, x)",
		"deriv(7 % 4 * x, x)",
		"deriv(floor(x), x)",
		"deriv(floor(y) * x, x)",
		"deriv(bipol(1, x), x)",
		"deriv(bipol(x, 1), x)",
		"deriv(deriv(x^2, x), x)",
		"deriv(x * deriv(y^2, y), x)",
		"deriv(cmp(x, 1), x)",
		"sin(x) + y",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			root := parse(t, input)
			ast.Bind(root, "x", 0.5)
			ast.Bind(root, "y", 2)

			errs := New().Analyze(root)
			_, err := root.Eval()

			if len(errs) == 0 && err != nil {
				t.Fatalf("analyzer accepted %q but Eval failed: %v", input, err)
			}
			if len(errs) > 0 {
				if err == nil {
					t.Fatalf("analyzer rejected %q (%v) but Eval succeeded", input, errs)
				}
				var serr *Error
				errors.As(errs[0], &serr)
				if !errors.Is(err, serr.Kind) {
					t.Errorf("Eval error %v, analyzer kind %v", err, serr.Kind)
				}
			}
		})
	}
}

func TestAnalyzeWithScope(t *testing.T) {
	scope := symtab.NewScope(symtab.ScopeGlobal, nil)
	scope.Set("x", 2)
	scope.Set("unused", 0)

	root := parse(t, "x + y")
	errs := NewWithScope(scope).Analyze(root)
	if len(errs) != 1 || !errors.Is(errs[0], ast.ErrUnbound) {
		t.Fatalf("Analyze = %v, want one unbound error for y", errs)
	}

	if x, ok := root.(*ast.Sum).Terms[0].Node.(*ast.Variable); !ok || x.Bound() {
		t.Error("the analyzer must not bind variables")
	}

	unused := scope.UnusedSymbols()
	if len(unused) != 1 || unused[0].Name != "unused" {
		t.Errorf("UnusedSymbols = %v, want [unused]", unused)
	}
}

func TestAnalyzerReuse(t *testing.T) {
	a := New()
	if errs := a.Analyze(parse(t, "x")); len(errs) != 1 {
		t.Fatalf("first Analyze = %v, want 1 error", errs)
	}
	if errs := a.Analyze(parse(t, "1")); len(errs) != 0 {
		t.Errorf("second Analyze = %v, want no errors", errs)
	}
}
