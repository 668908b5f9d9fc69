package lexer

import (
	"errors"
	"testing"
)

func TestLexer_Identifiers(t *testing.T) {
	source := "x sin bipol deriv pi Theta2"
	l := New(source)

	expected := []struct {
		typ    TokenType
		lexeme string
	}{
		{TokenVariable, "x"},
		{TokenFunction1, "sin"},
		{TokenFunction2, "bipol"},
		{TokenDerivative, "deriv"},
		{TokenVariable, "pi"},
		{TokenVariable, "Theta2"},
		{TokenEOF, ""},
	}

	for i, want := range expected {
		token, err := l.NextToken()
		if err != nil {
			t.Fatalf("token %d: unexpected error: %v", i, err)
		}
		if token.Type != want.typ {
			t.Errorf("token %d: expected %v, got %v", i, want.typ, token.Type)
		}
		if token.Lexeme != want.lexeme {
			t.Errorf("token %d: expected %q, got %q", i, want.lexeme, token.Lexeme)
		}
	}
}

func TestLexer_Numbers(t *testing.T) {
	tests := []struct {
		source string
		typ    TokenType
		want   string
	}{
		{"42", TokenReal, "42"},
		{"3.14", TokenReal, "3.14"},
		{"3.", TokenReal, "3."},
		{"2i", TokenImaginary, "2i"},
		{"3.0I", TokenImaginary, "3.0I"},
		{"i", TokenImaginary, "i"},
		{"I", TokenImaginary, "I"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			l := New(tt.source)
			token, err := l.NextToken()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token.Type != tt.typ {
				t.Errorf("expected %v, got %v", tt.typ, token.Type)
			}
			if token.Lexeme != tt.want {
				t.Errorf("expected %q, got %q", tt.want, token.Lexeme)
			}
		})
	}
}

// An i that starts a longer identifier is not an imaginary suffix.
func TestLexer_ImaginarySuffixBoundary(t *testing.T) {
	tokens, err := Tokenize("2in")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []TokenType{TokenReal, TokenVariable, TokenEOF}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, typ := range want {
		if tokens[i].Type != typ {
			t.Errorf("token %d: expected %v, got %v", i, typ, tokens[i].Type)
		}
	}
	if tokens[1].Lexeme != "in" {
		t.Errorf("second token lexeme = %q, want %q", tokens[1].Lexeme, "in")
	}
}

func TestLexer_Operators(t *testing.T) {
	source := "+-*/%^(),"
	tokens, err := Tokenize(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []struct {
		typ    TokenType
		lexeme string
	}{
		{TokenPlusMinus, "+"},
		{TokenPlusMinus, "-"},
		{TokenMulDivRem, "*"},
		{TokenMulDivRem, "/"},
		{TokenMulDivRem, "%"},
		{TokenRaised, "^"},
		{TokenLeftParen, "("},
		{TokenRightParen, ")"},
		{TokenComma, ","},
		{TokenEOF, ""},
	}

	if len(tokens) != len(expected) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(expected))
	}
	for i, want := range expected {
		if tokens[i].Type != want.typ || tokens[i].Lexeme != want.lexeme {
			t.Errorf("token %d: got %v(%q), want %v(%q)",
				i, tokens[i].Type, tokens[i].Lexeme, want.typ, want.lexeme)
		}
	}
}

func TestLexer_InvalidCharacter(t *testing.T) {
	l := New("1 + $")

	for i := 0; i < 2; i++ {
		if _, err := l.NextToken(); err != nil {
			t.Fatalf("token %d: unexpected error: %v", i, err)
		}
	}

	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected an error for '$'")
	}
	if !errors.Is(err, ErrInvalidCharacter) {
		t.Errorf("error %v does not wrap ErrInvalidCharacter", err)
	}

	var lexErr *Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if lexErr.Pos.Column != 5 || lexErr.Text != "$" {
		t.Errorf("error at %v with text %q, want column 5 and %q", lexErr.Pos, lexErr.Text, "$")
	}
	if lexErr.Error() != `1:5: unexpected symbol "$" found` {
		t.Errorf("Error() = %q", lexErr.Error())
	}
}

func TestLexer_PositionTracking(t *testing.T) {
	source := "x +\n  sin(y)"
	l := New(source)

	expected := []Position{
		{Line: 1, Column: 1, Offset: 0},  // x
		{Line: 1, Column: 3, Offset: 2},  // +
		{Line: 2, Column: 3, Offset: 6},  // sin
		{Line: 2, Column: 6, Offset: 9},  // (
		{Line: 2, Column: 7, Offset: 10}, // y
		{Line: 2, Column: 8, Offset: 11}, // )
		{Line: 2, Column: 9, Offset: 12}, // EOF
	}

	for i, want := range expected {
		token, err := l.NextToken()
		if err != nil {
			t.Fatalf("token %d: unexpected error: %v", i, err)
		}
		if token.Position != want {
			t.Errorf("token %d (%s): position %+v, want %+v", i, token.Lexeme, token.Position, want)
		}
	}
}

func TestLexer_EOFIsSticky(t *testing.T) {
	l := New("  ")
	for i := 0; i < 3; i++ {
		token, err := l.NextToken()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token.Type != TokenEOF {
			t.Errorf("call %d: expected EOF, got %v", i, token.Type)
		}
	}
}

func TestLexer_Reset(t *testing.T) {
	l := New("1+2")
	first, _ := l.NextToken()
	l.NextToken()

	l.Reset()
	again, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again != first {
		t.Errorf("after Reset got %v, want %v", again, first)
	}
}

func TestTokenize_Expression(t *testing.T) {
	tokens, err := Tokenize("2i*(1+sin(pi/2))^2 -3.0i")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []TokenType{
		TokenImaginary, TokenMulDivRem, TokenLeftParen, TokenReal, TokenPlusMinus,
		TokenFunction1, TokenLeftParen, TokenVariable, TokenMulDivRem, TokenReal,
		TokenRightParen, TokenRightParen, TokenRaised, TokenReal, TokenPlusMinus,
		TokenImaginary, TokenEOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, typ := range want {
		if tokens[i].Type != typ {
			t.Errorf("token %d: expected %v, got %v", i, typ, tokens[i].Type)
		}
	}
}
