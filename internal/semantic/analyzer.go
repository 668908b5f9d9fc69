// Package semantic checks an expression tree without evaluating it.
//
// SEMANTIC ANALYSIS:
// A tree that parsed can still fail to evaluate. The analyzer reports, in
// one pass and with positions:
// 1. Unbound variables - names with no value in the node or in the scope
// 2. Non-differentiable constructs - operations under a derivative that
//    have no derivative rule but depend on the differentiation variable
//
// DESIGN PHILOSOPHY:
// - Collect all errors, don't stop at the first one
// - Never evaluate and never bind; the tree is left untouched
// - Mirror the evaluator's rules exactly, so that a tree with no errors
//   fails to evaluate only for numeric reasons
package semantic

import (
	"fmt"
	"sort"

	"github.com/hassan/cogpar/internal/lexer"
	"github.com/hassan/cogpar/internal/parser/ast"
	"github.com/hassan/cogpar/internal/symtab"
)

// Error is a problem found by the analyzer. Kind is ast.ErrUnbound or
// ast.ErrNotDifferentiable, so the same errors.Is checks work for analyzer
// and evaluator errors.
type Error struct {
	Pos  lexer.Position
	Msg  string
	Kind error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// Unwrap returns the error kind.
func (e *Error) Unwrap() error { return e.Kind }

// Analyzer performs semantic analysis on an expression tree.
type Analyzer struct {
	// scope supplies values for variables that are not bound in the tree.
	// nil means only node bindings count.
	scope *symtab.Scope

	// errors accumulates all semantic errors
	errors []error

	// target is the variable of the innermost enclosing derivative, or ""
	target string
}

// New creates an analyzer that considers only the tree's own bindings.
func New() *Analyzer {
	return &Analyzer{errors: make([]error, 0)}
}

// NewWithScope creates an analyzer that also treats names resolvable in
// scope as bound. Lookups mark the scope's symbols used.
func NewWithScope(scope *symtab.Scope) *Analyzer {
	a := New()
	a.scope = scope
	return a
}

// Analyze checks the tree rooted at root.
// Returns the list of errors found (empty if no errors), in source order.
func (a *Analyzer) Analyze(root ast.Node) []error {
	// Reset state
	a.errors = make([]error, 0)
	a.target = ""

	a.check(root)

	// Calls are reported after their arguments; restore source order.
	sort.SliceStable(a.errors, func(i, j int) bool {
		return a.errors[i].(*Error).Pos.Before(a.errors[j].(*Error).Pos)
	})

	return a.errors
}

func (a *Analyzer) error(pos lexer.Position, kind error, message string) {
	a.errors = append(a.errors, &Error{Pos: pos, Msg: message, Kind: kind})
}

// inDerivative reports whether the node being checked is inside the
// expression argument of a derivative.
func (a *Analyzer) inDerivative() bool {
	return a.target != ""
}

// dependent reports whether n depends on the current differentiation target.
func (a *Analyzer) dependent(n ast.Node) bool {
	return a.inDerivative() && ast.References(n, a.target)
}

// bound reports whether a variable has a value, either in the node itself
// or in the scope.
func (a *Analyzer) bound(x *ast.Variable) bool {
	if x.Bound() {
		return true
	}
	return a.scope != nil && a.scope.Lookup(x.Name) != nil
}
