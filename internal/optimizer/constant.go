package optimizer

import (
	"math"

	"github.com/hassan/cogpar/internal/lexer"
	"github.com/hassan/cogpar/internal/parser/ast"
)

// ConstantFoldingPass replaces every subtree that mentions no variable with
// the literal it evaluates to.
//
// EXAMPLE:
//
//	Before:  x * (2 + 3) - sin(pi / 2)
//	After:   x * 5 - 1
//
// A result with both a real and an imaginary part becomes the sum of two
// literals (1 + 2i). Subtrees whose value is not finite, or that fail to
// evaluate, are left alone so that the printed tree still parses.
type ConstantFoldingPass struct{}

// Name returns the name of this pass.
func (c *ConstantFoldingPass) Name() string {
	return "ConstantFolding"
}

// Run executes constant folding on the tree.
func (c *ConstantFoldingPass) Run(root ast.Node, stats *Stats) ast.Node {
	return rewrite(root, func(n ast.Node) ast.Node {
		if isLiteral(n) || len(ast.Variables(n)) > 0 {
			return n
		}
		v, err := n.Eval()
		if err != nil || !finite(v) {
			return n
		}
		stats.ConstantsFolded++
		return literal(v, n.Pos())
	})
}

// isLiteral reports whether n is already in the form literal produces.
func isLiteral(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.Constant, *ast.Imaginary:
		return true
	case *ast.Sum:
		if len(n.Terms) != 2 || n.Terms[0].Sign != ast.Plus {
			return false
		}
		_, re := n.Terms[0].Node.(*ast.Constant)
		_, im := n.Terms[1].Node.(*ast.Imaginary)
		return re && im
	default:
		return false
	}
}

// literal builds the smallest tree that evaluates to v.
func literal(v complex128, pos lexer.Position) ast.Node {
	re, im := real(v), imag(v)
	constant := &ast.Constant{Token: lexer.Token{Type: lexer.TokenReal, Position: pos}, Value: re}

	if im == 0 {
		return constant
	}

	imaginary := &ast.Imaginary{Token: lexer.Token{Type: lexer.TokenImaginary, Position: pos}}
	if re == 0 {
		imaginary.Coefficient = im
		return imaginary
	}

	sum := ast.NewSum(ast.Plus, constant, lexer.Position{})
	if im < 0 {
		imaginary.Coefficient = -im
		sum.Add(ast.Minus, imaginary, pos)
	} else {
		imaginary.Coefficient = im
		sum.Add(ast.Plus, imaginary, pos)
	}
	return sum
}

func finite(v complex128) bool {
	for _, f := range []float64{real(v), imag(v)} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
