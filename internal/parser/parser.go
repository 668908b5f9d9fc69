// Package parser implements a recursive descent parser for complex-valued
// expressions.
//
// PARSING STRATEGY:
// One method per grammar rule. Sums and products are n-ary: instead of
// building a left-leaning chain of binary nodes, each '+'/'-' or '*'/'/'/'%'
// appends to the node being built.
//
// GRAMMAR:
//
//	expression   = signedTerm { ('+'|'-') signedTerm }
//	signedTerm   = ('+'|'-') signedTerm | term
//	term         = factor { ('*'|'/'|'%') signedFactor }
//	signedFactor = ('+'|'-') signedFactor | factor
//	factor       = argument [ '^' signedFactor ]
//	argument     = FUNCTION1 '(' expression ')'
//	             | FUNCTION2 '(' expression ',' expression ')'
//	             | DERIVATIVE '(' expression ',' expression ')'
//	             | '(' expression ')'
//	             | REAL | IMAGINARY | VARIABLE
//
// ERROR HANDLING STRATEGY:
// Parsing stops at the first error. Rule methods record the error and panic;
// Parse recovers and returns it. No partial tree is ever returned.
package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hassan/cogpar/internal/cmath"
	"github.com/hassan/cogpar/internal/funcs"
	"github.com/hassan/cogpar/internal/lexer"
	"github.com/hassan/cogpar/internal/parser/ast"
)

// Parse error kinds. Error.Kind is always one of these.
var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrMissingParen    = errors.New("missing parenthesis")
	ErrMissingComma    = errors.New("missing comma")
	ErrUnknownFunction = errors.New("unknown function")
	ErrNotVariable     = errors.New("not a variable")
	ErrEmptyInput      = errors.New("empty input")
	ErrTrailingInput   = errors.New("trailing input")
	ErrTooDeep         = errors.New("expression nested too deeply")
)

// Error is a syntax error.
type Error struct {
	Pos  lexer.Position
	Msg  string
	Kind error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// Unwrap returns the error kind so callers can use errors.Is.
func (e *Error) Unwrap() error { return e.Kind }

// DefaultMaxDepth is the nesting limit used by DefaultConfig.
const DefaultMaxDepth = 512

// Config controls parser limits.
type Config struct {
	// MaxDepth bounds the nesting of signs, parentheses and calls. Deeper
	// input fails with ErrTooDeep instead of exhausting the stack.
	MaxDepth int
}

// DefaultConfig returns the configuration used by Parse.
func DefaultConfig() Config {
	return Config{MaxDepth: DefaultMaxDepth}
}

// Validate reports whether the configuration is usable.
func (c Config) Validate() error {
	if c.MaxDepth < 1 {
		return fmt.Errorf("parser: MaxDepth must be at least 1, got %d", c.MaxDepth)
	}
	return nil
}

// named maps the lower-cased names of the built-in constants to their values.
var named = map[string]float64{
	"pi":  math.Pi,
	"e":   math.E,
	"phi": cmath.Phi,
}

// bailout is the panic value used to unwind after an error.
type bailout struct{}

// Parser converts a stream of tokens into an expression tree.
type Parser struct {
	// lexer is the source of tokens
	lexer *lexer.Lexer

	config Config

	// current is the token we're currently examining
	current lexer.Token

	// previous is the last token we consumed
	previous lexer.Token

	// depth is the current rule nesting
	depth int

	// err is the first error encountered
	err error
}

// New creates a new parser for the given lexer.
func New(l *lexer.Lexer, config Config) *Parser {
	return &Parser{lexer: l, config: config}
}

// Parse parses the whole input as a single expression.
func Parse(text string) (ast.Node, error) {
	return New(lexer.New(text), DefaultConfig()).Parse()
}

// ParseWithConfig is Parse with explicit limits.
func ParseWithConfig(text string, config Config) (ast.Node, error) {
	return New(lexer.New(text), config).Parse()
}

// Parse parses the lexer's input from the beginning. The error is a
// *lexer.Error for lexical problems, a *Error for syntax errors, or a plain
// error for an invalid Config.
func (p *Parser) Parse() (root ast.Node, err error) {
	if err := p.config.Validate(); err != nil {
		return nil, err
	}

	p.lexer.Reset()
	p.current = lexer.Token{}
	p.previous = lexer.Token{}
	p.depth = 0
	p.err = nil

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			root, err = nil, p.err
		}
	}()

	p.advance()
	if p.isAtEnd() {
		p.fail(ErrEmptyInput, "empty expression")
	}

	root = p.parseExpression()

	if !p.isAtEnd() {
		p.fail(ErrTrailingInput, fmt.Sprintf("unexpected %s after expression", describe(p.current)))
	}
	return root, nil
}

// parseExpression parses a chain of signed terms.
//
// GRAMMAR:
//
//	expression = signedTerm { ('+'|'-') signedTerm }
//
// When the first term is already a Sum (a parenthesised sum or a unary
// minus), later terms are appended to it.
func (p *Parser) parseExpression() ast.Node {
	expr := p.parseSignedTerm()

	for getPrecedence(p.current) == ast.PrecSum {
		operator := p.current
		p.advance()
		rhs := p.parseSignedTerm()

		sum, ok := expr.(*ast.Sum)
		if !ok {
			sum = ast.NewSum(ast.Plus, expr, lexer.Position{})
			expr = sum
		}
		sum.Add(signOf(operator), rhs, operator.Position)
	}

	return expr
}

// parseSignedTerm parses a term preceded by any number of signs.
//
// GRAMMAR:
//
//	signedTerm = ('+'|'-') signedTerm | term
func (p *Parser) parseSignedTerm() ast.Node {
	p.enter()
	defer p.leave()

	if p.check(lexer.TokenPlusMinus) {
		sign := p.current
		p.advance()
		operand := p.parseSignedTerm()
		if signOf(sign) == ast.Plus {
			return operand
		}
		return ast.NewSum(ast.Minus, operand, sign.Position)
	}
	return p.parseTerm()
}

// parseTerm parses a chain of factors joined by '*', '/' or '%'.
//
// GRAMMAR:
//
//	term = factor { ('*'|'/'|'%') signedFactor }
func (p *Parser) parseTerm() ast.Node {
	expr := p.parseFactor()

	for getPrecedence(p.current) == ast.PrecProduct {
		operator := p.current
		p.advance()
		rhs := p.parseSignedFactor()

		product, ok := expr.(*ast.Product)
		if !ok {
			product = ast.NewProduct(expr)
			expr = product
		}
		product.Add(opOf(operator), rhs, operator.Position)
	}

	return expr
}

// parseSignedFactor parses a factor preceded by any number of signs.
//
// GRAMMAR:
//
//	signedFactor = ('+'|'-') signedFactor | factor
func (p *Parser) parseSignedFactor() ast.Node {
	p.enter()
	defer p.leave()

	if p.check(lexer.TokenPlusMinus) {
		sign := p.current
		p.advance()
		operand := p.parseSignedFactor()
		if signOf(sign) == ast.Plus {
			return operand
		}
		return ast.NewSum(ast.Minus, operand, sign.Position)
	}
	return p.parseFactor()
}

// parseFactor parses an argument with an optional exponent. The exponent is
// a signedFactor, so '^' groups to the right and may carry a sign: 2^-3^2 is
// 2^(-(3^2)).
//
// GRAMMAR:
//
//	factor = argument [ '^' signedFactor ]
func (p *Parser) parseFactor() ast.Node {
	base := p.parseArgument()

	if getPrecedence(p.current) != ast.PrecPower {
		return base
	}
	operator := p.current
	p.advance()

	return &ast.Power{
		Base:     base,
		Exponent: p.parseSignedFactor(),
		OpPos:    operator.Position,
	}
}

// parseArgument parses a call, a parenthesised expression or a value.
func (p *Parser) parseArgument() ast.Node {
	p.enter()
	defer p.leave()

	switch p.current.Type {
	case lexer.TokenFunction1:
		return p.parseCall1()
	case lexer.TokenFunction2:
		return p.parseCall2()
	case lexer.TokenDerivative:
		return p.parseDerivative()
	case lexer.TokenLeftParen:
		return p.parseGrouping()
	case lexer.TokenReal:
		return p.parseReal()
	case lexer.TokenImaginary:
		return p.parseImaginary()
	case lexer.TokenVariable:
		return p.parseVariable()
	default:
		p.fail(ErrUnexpectedToken, fmt.Sprintf("unexpected %s, expected a value", describe(p.current)))
		return nil
	}
}

// parseCall1 parses FUNCTION1 '(' expression ')'.
func (p *Parser) parseCall1() ast.Node {
	name := p.current
	p.advance()

	fn, ok := funcs.LookupFunc1(name.Lexeme)
	if !ok {
		p.failAt(name.Position, ErrUnknownFunction, fmt.Sprintf("unknown function %q", name.Lexeme))
	}

	p.consumeOpen(name)
	arg := p.parseExpression()
	p.consumeClose(name)

	return &ast.Call1{
		Token:  name,
		Func:   fn,
		Arg:    arg,
		Rparen: p.previous.Position,
	}
}

// parseCall2 parses FUNCTION2 '(' expression ',' expression ')'.
func (p *Parser) parseCall2() ast.Node {
	name := p.current
	p.advance()

	fn, ok := funcs.LookupFunc2(name.Lexeme)
	if !ok {
		p.failAt(name.Position, ErrUnknownFunction, fmt.Sprintf("unknown function %q", name.Lexeme))
	}

	p.consumeOpen(name)
	arg1 := p.parseExpression()
	p.consumeComma(name)
	arg2 := p.parseExpression()
	p.consumeClose(name)

	return &ast.Call2{
		Token:  name,
		Func:   fn,
		Arg1:   arg1,
		Arg2:   arg2,
		Rparen: p.previous.Position,
	}
}

// parseDerivative parses DERIVATIVE '(' expression ',' expression ')'.
// The second expression must be a single variable; parentheses around it
// are allowed since they produce no node.
func (p *Parser) parseDerivative() ast.Node {
	name := p.current
	p.advance()

	fn, ok := funcs.LookupDeriv(name.Lexeme)
	if !ok {
		p.failAt(name.Position, ErrUnknownFunction, fmt.Sprintf("unknown function %q", name.Lexeme))
	}

	p.consumeOpen(name)
	expr := p.parseExpression()
	p.consumeComma(name)
	target := p.parseExpression()

	v, ok := target.(*ast.Variable)
	if !ok {
		p.failAt(target.Pos(), ErrNotVariable,
			fmt.Sprintf("second argument of %s must be a variable, got %s", name.Lexeme, target))
	}
	p.consumeClose(name)

	return &ast.Derivative{
		Token:  name,
		Func:   fn,
		Expr:   expr,
		Var:    v,
		Rparen: p.previous.Position,
	}
}

// parseGrouping parses '(' expression ')'. Parentheses produce no node.
func (p *Parser) parseGrouping() ast.Node {
	open := p.current
	p.advance()

	expr := p.parseExpression()

	if !p.check(lexer.TokenRightParen) {
		p.fail(ErrMissingParen, fmt.Sprintf("expected ')' to close '(' at %s, got %s",
			open.Position, describe(p.current)))
	}
	p.advance()
	return expr
}

func (p *Parser) parseReal() ast.Node {
	token := p.current
	p.advance()

	value, err := strconv.ParseFloat(token.Lexeme, 64)
	if err != nil {
		p.failAt(token.Position, ErrUnexpectedToken, fmt.Sprintf("invalid number literal: %s", token.Lexeme))
	}
	return &ast.Constant{Token: token, Value: value}
}

// parseImaginary parses 2i, 0.5I or a bare i. A bare unit has coefficient 1.
func (p *Parser) parseImaginary() ast.Node {
	token := p.current
	p.advance()

	digits := token.Lexeme[:len(token.Lexeme)-1]
	if digits == "" {
		return &ast.Imaginary{Token: token, Coefficient: 1}
	}
	value, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		p.failAt(token.Position, ErrUnexpectedToken, fmt.Sprintf("invalid number literal: %s", token.Lexeme))
	}
	return &ast.Imaginary{Token: token, Coefficient: value}
}

// parseVariable parses a variable or a named constant. A variable directly
// followed by '(' is a call to a function that does not exist.
func (p *Parser) parseVariable() ast.Node {
	token := p.current
	p.advance()

	if p.check(lexer.TokenLeftParen) {
		p.failAt(token.Position, ErrUnknownFunction, fmt.Sprintf("unknown function %q", token.Lexeme))
	}

	if value, ok := named[strings.ToLower(token.Lexeme)]; ok {
		return &ast.Constant{Token: token, Value: value, Name: token.Lexeme}
	}
	return &ast.Variable{Token: token, Name: token.Lexeme}
}

// Helper methods

func (p *Parser) advance() {
	p.previous = p.current
	token, err := p.lexer.NextToken()
	if err != nil {
		p.err = err
		panic(bailout{})
	}
	p.current = token
}

func (p *Parser) check(tokenType lexer.TokenType) bool {
	return p.current.Type == tokenType
}

func (p *Parser) isAtEnd() bool {
	return p.current.Type == lexer.TokenEOF
}

func (p *Parser) consumeOpen(name lexer.Token) {
	if !p.check(lexer.TokenLeftParen) {
		p.fail(ErrUnexpectedToken, fmt.Sprintf("expected '(' after %s, got %s", name.Lexeme, describe(p.current)))
	}
	p.advance()
}

func (p *Parser) consumeComma(name lexer.Token) {
	if !p.check(lexer.TokenComma) {
		p.fail(ErrMissingComma, fmt.Sprintf("expected ',' between the arguments of %s, got %s",
			name.Lexeme, describe(p.current)))
	}
	p.advance()
}

func (p *Parser) consumeClose(name lexer.Token) {
	if !p.check(lexer.TokenRightParen) {
		p.fail(ErrMissingParen, fmt.Sprintf("expected ')' after the arguments of %s, got %s",
			name.Lexeme, describe(p.current)))
	}
	p.advance()
}

// enter and leave bound the recursion of the rule methods.
func (p *Parser) enter() {
	p.depth++
	if p.depth > p.config.MaxDepth {
		p.fail(ErrTooDeep, fmt.Sprintf("expression nested deeper than %d", p.config.MaxDepth))
	}
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) fail(kind error, message string) {
	p.failAt(p.current.Position, kind, message)
}

func (p *Parser) failAt(pos lexer.Position, kind error, message string) {
	p.err = &Error{Pos: pos, Msg: message, Kind: kind}
	panic(bailout{})
}

// describe names a token for error messages.
func describe(tok lexer.Token) string {
	if tok.Type == lexer.TokenEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", tok.Lexeme)
}
