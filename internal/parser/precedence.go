package parser

import (
	"github.com/hassan/cogpar/internal/lexer"
	"github.com/hassan/cogpar/internal/parser/ast"
)

// getPrecedence returns the binding strength of a token in infix position.
//
// PRECEDENCE RULES (from lowest to highest):
// 1. Sum (+, -)
// 2. Product (*, /, %)
// 3. Power (^)
//
// The same levels drive printing (see ast.PrecedenceOf), so a tree printed
// with minimal parentheses parses back into the same shape. A '+' or '-' in
// prefix position is a sign, not an infix operator; the grammar handles it
// separately.
func getPrecedence(tok lexer.Token) ast.Precedence {
	switch tok.Type {
	case lexer.TokenPlusMinus:
		return ast.PrecSum
	case lexer.TokenMulDivRem:
		return ast.PrecProduct
	case lexer.TokenRaised:
		return ast.PrecPower
	default:
		return ast.PrecNone
	}
}

// signOf maps a TokenPlusMinus lexeme to a sum sign.
func signOf(tok lexer.Token) ast.Sign {
	if tok.Lexeme == "-" {
		return ast.Minus
	}
	return ast.Plus
}

// opOf maps a TokenMulDivRem lexeme to a product operator.
func opOf(tok lexer.Token) ast.Op {
	switch tok.Lexeme {
	case "/":
		return ast.Div
	case "%":
		return ast.Rem
	default:
		return ast.Mul
	}
}
