package lexer

import (
	"testing"
)

func TestToken_String(t *testing.T) {
	tests := []struct {
		name     string
		token    Token
		expected string
	}{
		{
			name: "variable token",
			token: Token{
				Type:     TokenVariable,
				Lexeme:   "x",
				Position: Position{Line: 1, Column: 1},
			},
			expected: "VARIABLE(x) at 1:1",
		},
		{
			name: "imaginary token",
			token: Token{
				Type:     TokenImaginary,
				Lexeme:   "2.5i",
				Position: Position{Line: 1, Column: 10},
			},
			expected: "IMAGINARY(2.5i) at 1:10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.token.String()
			if result != tt.expected {
				t.Errorf("Token.String() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestToken_Span(t *testing.T) {
	token := Token{
		Type:     TokenFunction1,
		Lexeme:   "sinh",
		Position: Position{Line: 1, Column: 5, Offset: 4},
		Length:   4,
	}

	span := token.Span()

	if span.Start.Offset != 4 {
		t.Errorf("Span start offset = %d, want 4", span.Start.Offset)
	}
	if span.End.Offset != 8 {
		t.Errorf("Span end offset = %d, want 8", span.End.Offset)
	}
	if span.Length() != 4 {
		t.Errorf("Span length = %d, want 4", span.Length())
	}
}

func TestTokenType_String(t *testing.T) {
	tests := []struct {
		tt       TokenType
		expected string
	}{
		{TokenEOF, "EOF"},
		{TokenReal, "REAL"},
		{TokenFunction2, "FUNCTION2"},
		{TokenDerivative, "DERIVATIVE"},
		{TokenMulDivRem, "MULDIVREM"},
		{TokenComma, "COMMA"},
		{TokenType(999), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.tt.String(); got != tt.expected {
				t.Errorf("TokenType.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLookupIdentifier(t *testing.T) {
	tests := []struct {
		ident    string
		expected TokenType
	}{
		{"sin", TokenFunction1},
		{"ahcvcos", TokenFunction1},
		{"foldo", TokenFunction2},
		{"deriv", TokenDerivative},
		{"x", TokenVariable},
		{"pi", TokenVariable},
		{"SIN", TokenVariable},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			if got := LookupIdentifier(tt.ident); got != tt.expected {
				t.Errorf("LookupIdentifier(%q) = %v, want %v", tt.ident, got, tt.expected)
			}
		})
	}
}

func TestTokenType_Predicates(t *testing.T) {
	tests := []struct {
		tt                TokenType
		operator, literal bool
		function          bool
	}{
		{TokenPlusMinus, true, false, false},
		{TokenRaised, true, false, false},
		{TokenReal, false, true, false},
		{TokenImaginary, false, true, false},
		{TokenFunction1, false, false, true},
		{TokenDerivative, false, false, true},
		{TokenVariable, false, false, false},
		{TokenLeftParen, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.tt.String(), func(t *testing.T) {
			if got := tt.tt.IsOperator(); got != tt.operator {
				t.Errorf("IsOperator() = %v, want %v", got, tt.operator)
			}
			if got := tt.tt.IsLiteral(); got != tt.literal {
				t.Errorf("IsLiteral() = %v, want %v", got, tt.literal)
			}
			if got := tt.tt.IsFunction(); got != tt.function {
				t.Errorf("IsFunction() = %v, want %v", got, tt.function)
			}
		})
	}
}
