package lexer

import "github.com/hassan/cogpar/internal/funcs"

// TokenType represents the type of a token.
//
// Operators are grouped by precedence class rather than given one type each:
// the parser only needs to know that '+' and '-' bind alike, and reads the
// lexeme to tell them apart.
type TokenType int

const (
	// TokenEOF marks the end of the input. It carries the position just past
	// the last character, which is where "unexpected end of input" points.
	TokenEOF TokenType = iota

	// Literals

	// TokenReal is an unsigned decimal literal: 12, 0.5, 3.
	TokenReal

	// TokenImaginary is a decimal literal followed by i or I (2i, 0.5I), or a
	// bare i / I standing for the imaginary unit.
	TokenImaginary

	// Identifiers

	// TokenVariable is any identifier that is not a registered function name.
	// The named constants pi, e and phi are lexed as variables and resolved
	// by the parser.
	TokenVariable

	// TokenFunction1 names a one-argument function (sin, log, ...).
	TokenFunction1

	// TokenFunction2 names a two-argument function (bipol, inflect, ...).
	TokenFunction2

	// TokenDerivative names a derivative form (deriv).
	TokenDerivative

	// Operators

	TokenPlusMinus // + -
	TokenMulDivRem // * / %
	TokenRaised    // ^

	// Delimiters

	TokenLeftParen  // (
	TokenRightParen // )
	TokenComma      // ,
)

// String returns the token type's name for debugging and error messages.
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenReal:
		return "REAL"
	case TokenImaginary:
		return "IMAGINARY"
	case TokenVariable:
		return "VARIABLE"
	case TokenFunction1:
		return "FUNCTION1"
	case TokenFunction2:
		return "FUNCTION2"
	case TokenDerivative:
		return "DERIVATIVE"
	case TokenPlusMinus:
		return "PLUSMINUS"
	case TokenMulDivRem:
		return "MULDIVREM"
	case TokenRaised:
		return "RAISED"
	case TokenLeftParen:
		return "LPAREN"
	case TokenRightParen:
		return "RPAREN"
	case TokenComma:
		return "COMMA"
	default:
		return "UNKNOWN"
	}
}

// IsOperator returns true if the token is an arithmetic operator.
func (tt TokenType) IsOperator() bool {
	return tt >= TokenPlusMinus && tt <= TokenRaised
}

// IsLiteral returns true if the token is a numeric literal.
func (tt TokenType) IsLiteral() bool {
	return tt == TokenReal || tt == TokenImaginary
}

// IsFunction returns true if the token names a registered function.
func (tt TokenType) IsFunction() bool {
	return tt >= TokenFunction1 && tt <= TokenDerivative
}

// Token is a single lexical unit.
type Token struct {
	// Type is the token type.
	Type TokenType

	// Lexeme is the source text of the token. For operators grouped under one
	// type it is what distinguishes them ("+" vs "-").
	Lexeme string

	// Position is where this token starts in the source.
	Position Position

	// Length is the length of the token in bytes.
	Length int
}

// String returns a human-readable representation of the token.
// Format: "TYPE(lexeme) at line:column"
func (t Token) String() string {
	return t.Type.String() + "(" + t.Lexeme + ") at " + t.Position.String()
}

// Span returns the source span covered by this token.
func (t Token) Span() Span {
	return Span{
		Start: t.Position,
		End: Position{
			Line:   t.Position.Line,
			Column: t.Position.Column + t.Length,
			Offset: t.Position.Offset + t.Length,
		},
	}
}

// LookupIdentifier classifies an identifier against the function registries.
// Returns the function token type if it names one, or TokenVariable if not.
//
// USAGE: After lexing an identifier, call this to decide its token type.
// Matching is exact and case-sensitive.
func LookupIdentifier(identifier string) TokenType {
	switch funcs.Classify(identifier) {
	case funcs.KindFunc1:
		return TokenFunction1
	case funcs.KindFunc2:
		return TokenFunction2
	case funcs.KindDeriv:
		return TokenDerivative
	default:
		return TokenVariable
	}
}
