package semantic

import (
	"fmt"

	"github.com/hassan/cogpar/internal/parser/ast"
)

// Per-node checks. Each method checks the node and recurses into its
// children in source order.

func (a *Analyzer) check(n ast.Node) {
	switch n := n.(type) {
	case *ast.Constant, *ast.Imaginary:
		// Literals are always fine
	case *ast.Variable:
		a.checkVariable(n)
	case *ast.Sum:
		for _, t := range n.Terms {
			a.check(t.Node)
		}
	case *ast.Product:
		a.checkProduct(n)
	case *ast.Power:
		a.check(n.Base)
		a.check(n.Exponent)
	case *ast.Call1:
		a.checkCall1(n)
	case *ast.Call2:
		a.checkCall2(n)
	case *ast.Derivative:
		a.checkDerivative(n)
	}
}

// checkVariable reports an unbound variable. Inside a derivative the target
// takes the evaluation point, so it needs no binding of its own there.
func (a *Analyzer) checkVariable(x *ast.Variable) {
	if a.inDerivative() && x.Name == a.target {
		return
	}
	if !a.bound(x) {
		a.error(x.Pos(), ast.ErrUnbound, fmt.Sprintf("variable %q is not bound", x.Name))
	}
}

// checkProduct reports a remainder whose left or right side depends on the
// differentiation target. The left side is everything folded so far.
func (a *Analyzer) checkProduct(p *ast.Product) {
	dependent := false
	for _, f := range p.Factors {
		a.check(f.Node)
		refs := a.dependent(f.Node)
		if f.Op == ast.Rem && (dependent || refs) {
			a.error(f.OpPos, ast.ErrNotDifferentiable,
				fmt.Sprintf("remainder is not differentiable with respect to %q", a.target))
		}
		dependent = dependent || refs
	}
}

func (a *Analyzer) checkCall1(c *ast.Call1) {
	a.check(c.Arg)
	if !c.Func.Differentiable() && a.dependent(c.Arg) {
		a.error(c.Pos(), ast.ErrNotDifferentiable,
			fmt.Sprintf("%s has no derivative rule", c.Func))
	}
}

func (a *Analyzer) checkCall2(c *ast.Call2) {
	a.check(c.Arg1)
	a.check(c.Arg2)

	inA, inB := c.Func.Differentiable()
	if !inA && a.dependent(c.Arg1) {
		a.error(c.Arg1.Pos(), ast.ErrNotDifferentiable,
			fmt.Sprintf("%s is not differentiable in its first argument", c.Func))
	}
	if !inB && a.dependent(c.Arg2) {
		a.error(c.Arg2.Pos(), ast.ErrNotDifferentiable,
			fmt.Sprintf("%s is not differentiable in its second argument", c.Func))
	}
}

// checkDerivative checks Expr with Var as the new target. A derivative that
// itself depends on an enclosing target would need a second derivative,
// which is not supported.
func (a *Analyzer) checkDerivative(d *ast.Derivative) {
	if a.dependent(d) {
		a.error(d.Pos(), ast.ErrNotDifferentiable,
			fmt.Sprintf("nested derivative depends on %q", a.target))
	}

	outer := a.target
	a.target = d.Var.Name
	a.check(d.Expr)
	a.target = outer

	// The variable argument supplies the evaluation point, so it must be
	// bound even inside its own derivative.
	if !a.bound(d.Var) {
		a.error(d.Var.Pos(), ast.ErrUnbound,
			fmt.Sprintf("differentiation variable %q is not bound", d.Var.Name))
	}
}
