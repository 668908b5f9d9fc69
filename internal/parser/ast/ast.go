// Package ast defines the expression tree produced by the parser.
//
// The node set is closed: Constant, Imaginary, Variable, Sum, Product, Power,
// Call1, Call2 and Derivative. Every node can
//   - evaluate itself to a complex value (Eval)
//   - render itself as re-parseable text (String)
//   - accept a Visitor, visiting itself and then its children left to right
//
// Trees are owned top-down and acyclic. The only mutable state is the bound
// value held by each Variable node; binding is per node instance, so two
// separately parsed trees never share bindings.
//
// Forward-mode differentiation runs through an unexported paired evaluation
// that yields a value and a derivative together. It is reachable only through
// a Derivative node.
package ast

import (
	"errors"
	"fmt"

	"github.com/hassan/cogpar/internal/lexer"
)

// Node is implemented by every expression node.
type Node interface {
	// Pos returns the starting position of this node in the source.
	Pos() lexer.Position

	// End returns the position just past the node's last token.
	End() lexer.Position

	// Eval computes the node's value using the current variable bindings.
	Eval() (complex128, error)

	// Accept visits this node and then its children, in source order.
	Accept(v Visitor)

	// String renders the node as expression text that parses back to the
	// same value.
	String() string

	// dual computes the value and the derivative with respect to the target
	// held by ctx.
	dual(ctx *diffContext) (Dual, error)

	node() // marker method; keeps the node set closed
}

// Sign is the sign attached to a term of a Sum.
type Sign int

const (
	Plus Sign = iota
	Minus
)

func (s Sign) String() string {
	if s == Minus {
		return "-"
	}
	return "+"
}

// Op is the operator attached to a factor of a Product.
type Op int

const (
	Mul Op = iota
	Div
	Rem
)

func (o Op) String() string {
	switch o {
	case Div:
		return "/"
	case Rem:
		return "%"
	default:
		return "*"
	}
}

// Evaluation error kinds. EvalError.Kind is always one of these, so callers
// can test with errors.Is.
var (
	ErrUnbound           = errors.New("unbound variable")
	ErrUnknownFunction   = errors.New("unknown function")
	ErrNotDifferentiable = errors.New("not differentiable")
)

// EvalError reports a failure while evaluating a tree.
type EvalError struct {
	Pos  lexer.Position
	Msg  string
	Kind error
}

func (e *EvalError) Error() string {
	if !e.Pos.IsValid() {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func (e *EvalError) Unwrap() error { return e.Kind }

func evalErrorf(pos lexer.Position, kind error, format string, args ...interface{}) error {
	return &EvalError{Pos: pos, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Visitor is the interface for tree traversal.
//
// Accept calls the method matching the node's kind and then descends into
// the children, so a visitor only has to implement the kinds it cares about
// (see BaseVisitor).
//
// EXAMPLE:
//
//	type counter struct {
//		ast.BaseVisitor
//		calls int
//	}
//	func (c *counter) VisitCall1(*ast.Call1) { c.calls++ }
type Visitor interface {
	VisitConstant(n *Constant)
	VisitImaginary(n *Imaginary)
	VisitVariable(n *Variable)
	VisitSum(n *Sum)
	VisitProduct(n *Product)
	VisitPower(n *Power)
	VisitCall1(n *Call1)
	VisitCall2(n *Call2)
	VisitDerivative(n *Derivative)
}

// BaseVisitor implements Visitor with no-op methods. Embed it and override
// the methods you need.
type BaseVisitor struct{}

func (BaseVisitor) VisitConstant(*Constant)     {}
func (BaseVisitor) VisitImaginary(*Imaginary)   {}
func (BaseVisitor) VisitVariable(*Variable)     {}
func (BaseVisitor) VisitSum(*Sum)               {}
func (BaseVisitor) VisitProduct(*Product)       {}
func (BaseVisitor) VisitPower(*Power)           {}
func (BaseVisitor) VisitCall1(*Call1)           {}
func (BaseVisitor) VisitCall2(*Call2)           {}
func (BaseVisitor) VisitDerivative(*Derivative) {}

// Children returns the direct children of n in source order.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Sum:
		out := make([]Node, len(n.Terms))
		for i, t := range n.Terms {
			out[i] = t.Node
		}
		return out
	case *Product:
		out := make([]Node, len(n.Factors))
		for i, f := range n.Factors {
			out[i] = f.Node
		}
		return out
	case *Power:
		return []Node{n.Base, n.Exponent}
	case *Call1:
		return []Node{n.Arg}
	case *Call2:
		return []Node{n.Arg1, n.Arg2}
	case *Derivative:
		return []Node{n.Expr, n.Var}
	default:
		return nil
	}
}

// Inspect traverses the tree rooted at n in pre-order, calling f for every
// node. If f returns false the node's children are skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}

// Walk is Inspect without pruning.
func Walk(n Node, f func(Node)) {
	Inspect(n, func(n Node) bool {
		f(n)
		return true
	})
}

// References reports whether any Variable named name occurs in the tree.
func References(n Node, name string) bool {
	found := false
	Inspect(n, func(n Node) bool {
		if found {
			return false
		}
		if v, ok := n.(*Variable); ok && v.Name == name {
			found = true
		}
		return !found
	})
	return found
}

// Variables returns the distinct variable names in the tree, in order of
// first occurrence.
func Variables(n Node) []string {
	var names []string
	seen := make(map[string]bool)
	Walk(n, func(n Node) {
		if v, ok := n.(*Variable); ok && !seen[v.Name] {
			seen[v.Name] = true
			names = append(names, v.Name)
		}
	})
	return names
}

// Depth returns the height of the tree; a leaf has depth 1.
func Depth(n Node) int {
	deepest := 0
	for _, c := range Children(n) {
		if d := Depth(c); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}
