package lexer

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidCharacter is the kind of every lexical error: a character that
// cannot start any token.
var ErrInvalidCharacter = errors.New("invalid character")

// Error is a lexical error. Lexing stops at the first one; nothing is skipped.
type Error struct {
	Pos  Position
	Text string // the offending character
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// Unwrap returns ErrInvalidCharacter so callers can use errors.Is.
func (e *Error) Unwrap() error { return ErrInvalidCharacter }

// Lexer converts expression text into tokens.
//
// RESPONSIBILITIES:
// 1. Break the input into literals, identifiers, operators and delimiters
// 2. Classify identifiers against the function registries
// 3. Track positions for error reporting
//
// The lexer does NOT resolve named constants or check that functions are
// applied to the right number of arguments; both are the parser's job.
type Lexer struct {
	// source is the complete expression text.
	source string

	// start is the byte offset of the token being scanned.
	start int

	// current is the byte offset being examined.
	current int

	// line is the current line number (1-based).
	line int

	// lineStart is the byte offset where the current line started.
	// column = start - lineStart + 1
	lineStart int
}

// New creates a new Lexer for the given expression.
func New(source string) *Lexer {
	l := &Lexer{source: source}
	l.Reset()
	return l
}

// Reset rewinds the lexer to the beginning of its input.
func (l *Lexer) Reset() {
	l.start = 0
	l.current = 0
	l.line = 1
	l.lineStart = 0
}

// Source returns the text being lexed.
func (l *Lexer) Source() string {
	return l.source
}

// Tokenize lexes source completely. The returned slice always ends with a
// TokenEOF token unless an error is returned.
func Tokenize(source string) ([]Token, error) {
	l := New(source)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}

// NextToken returns the next token from the source.
//
// The parser calls this repeatedly until it gets TokenEOF. Once the end is
// reached every further call returns TokenEOF again.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()

	l.start = l.current

	if l.isAtEnd() {
		return l.makeToken(TokenEOF, ""), nil
	}

	ch, _ := l.advance()

	if isLetter(ch) {
		return l.scanIdentifier(), nil
	}

	if isDigit(ch) {
		return l.scanNumber(), nil
	}

	switch ch {
	case '+', '-':
		return l.makeToken(TokenPlusMinus, string(ch)), nil
	case '*', '/', '%':
		return l.makeToken(TokenMulDivRem, string(ch)), nil
	case '^':
		return l.makeToken(TokenRaised, "^"), nil
	case '(':
		return l.makeToken(TokenLeftParen, "("), nil
	case ')':
		return l.makeToken(TokenRightParen, ")"), nil
	case ',':
		return l.makeToken(TokenComma, ","), nil
	}

	text := l.source[l.start:l.current]
	return Token{}, &Error{
		Pos:  l.currentPosition(),
		Text: text,
		Msg:  fmt.Sprintf("unexpected symbol %q found", text),
	}
}

// advance reads and returns the next character, advancing the current position.
func (l *Lexer) advance() (rune, int) {
	if l.isAtEnd() {
		return 0, 0
	}
	ch, size := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += size
	return ch, size
}

// peek returns the current character without advancing.
// Returns 0 if at end of input.
func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	ch, _ := utf8.DecodeRuneInString(l.source[l.current:])
	return ch
}

// peekNext returns the character after the current one without advancing.
// Returns 0 if not enough characters remain.
func (l *Lexer) peekNext() rune {
	if l.isAtEnd() {
		return 0
	}
	_, size := utf8.DecodeRuneInString(l.source[l.current:])
	if l.current+size >= len(l.source) {
		return 0
	}
	ch, _ := utf8.DecodeRuneInString(l.source[l.current+size:])
	return ch
}

// isAtEnd returns true if we've consumed all the input.
func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

// skipWhitespace skips spaces, tabs and line breaks, counting lines.
func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		switch l.peek() {
		case ' ', '\r', '\t':
			l.advance()
		case '\n':
			l.advance()
			l.line++
			l.lineStart = l.current
		default:
			return
		}
	}
}

// scanIdentifier scans an identifier and classifies it.
//
// RULES:
// - Starts with a letter
// - Continues with letters or digits
// - A lone i or I is the imaginary unit
func (l *Lexer) scanIdentifier() Token {
	for !l.isAtEnd() {
		ch := l.peek()
		if !isLetter(ch) && !isDigit(ch) {
			break
		}
		l.advance()
	}

	text := l.source[l.start:l.current]
	if isImaginaryUnit(text) {
		return l.makeToken(TokenImaginary, text)
	}
	return l.makeToken(LookupIdentifier(text), text)
}

// scanNumber scans a real or imaginary literal.
//
// SUPPORTED FORMATS:
// - Integers: 123, 0
// - Decimals: 3.14, 3.
// - Imaginary: any of the above followed by i or I (2i, 0.5I), provided the
//   suffix is not the start of a longer identifier (2in is 2 then "in")
//
// Exponent notation and leading-dot decimals (.5) are not accepted.
func (l *Lexer) scanNumber() Token {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	if s := l.peek(); s == 'i' || s == 'I' {
		if next := l.peekNext(); !isLetter(next) && !isDigit(next) {
			l.advance()
			return l.makeToken(TokenImaginary, l.source[l.start:l.current])
		}
	}

	return l.makeToken(TokenReal, l.source[l.start:l.current])
}

// makeToken creates a token with the current position information.
func (l *Lexer) makeToken(tokenType TokenType, lexeme string) Token {
	return Token{
		Type:     tokenType,
		Lexeme:   lexeme,
		Position: l.currentPosition(),
		Length:   l.current - l.start,
	}
}

// currentPosition returns the position of the token being scanned.
func (l *Lexer) currentPosition() Position {
	return Position{
		Line:   l.line,
		Column: l.start - l.lineStart + 1,
		Offset: l.start,
	}
}

func isImaginaryUnit(text string) bool {
	return text == "i" || text == "I"
}

// isLetter returns true for Unicode letters.
func isLetter(ch rune) bool {
	return unicode.IsLetter(ch)
}

// isDigit returns true if the rune is an ASCII decimal digit (0-9).
func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
