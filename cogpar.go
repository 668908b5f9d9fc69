// Package cogpar parses, evaluates and differentiates complex-valued
// expressions.
//
// An expression is parsed once into a tree. Variables in the tree are bound
// by name and the tree can then be evaluated any number of times:
//
//	expr, err := cogpar.Parse("deriv(x^2 + sin(x), x)")
//	if err != nil {
//		return err
//	}
//	expr.Bind("x", 3)
//	v, err := expr.Eval() // 6 + cos(3)
//
// Bindings belong to the tree they were made on. Two expressions parsed from
// the same text never share values.
//
// Expressions are not safe for concurrent use; bind and evaluate a tree from
// one goroutine at a time.
package cogpar

import (
	"github.com/hassan/cogpar/internal/lexer"
	"github.com/hassan/cogpar/internal/optimizer"
	"github.com/hassan/cogpar/internal/parser"
	"github.com/hassan/cogpar/internal/parser/ast"
	"github.com/hassan/cogpar/internal/semantic"
)

// Error types returned by Parse and Eval.
type (
	LexError   = lexer.Error
	ParseError = parser.Error
	EvalError  = ast.EvalError
	CheckError = semantic.Error
)

// Config controls parsing. The zero value is not valid; start from
// DefaultConfig.
type Config = parser.Config

// DefaultConfig returns the configuration used by Parse.
func DefaultConfig() Config { return parser.DefaultConfig() }

// Error kinds, for use with errors.Is.
var (
	ErrInvalidCharacter = lexer.ErrInvalidCharacter

	ErrUnexpectedToken = parser.ErrUnexpectedToken
	ErrMissingParen    = parser.ErrMissingParen
	ErrMissingComma    = parser.ErrMissingComma
	ErrUnknownFunction = parser.ErrUnknownFunction
	ErrNotVariable     = parser.ErrNotVariable
	ErrEmptyInput      = parser.ErrEmptyInput
	ErrTrailingInput   = parser.ErrTrailingInput
	ErrTooDeep         = parser.ErrTooDeep

	ErrUnbound           = ast.ErrUnbound
	ErrNotDifferentiable = ast.ErrNotDifferentiable
)

// Expression is a parsed expression tree.
type Expression struct {
	root ast.Node
}

// Parse parses text with the default configuration.
func Parse(text string) (*Expression, error) {
	return ParseWithConfig(text, DefaultConfig())
}

// ParseWithConfig parses text with the given configuration.
func ParseWithConfig(text string, config Config) (*Expression, error) {
	root, err := parser.ParseWithConfig(text, config)
	if err != nil {
		return nil, err
	}
	return &Expression{root: root}, nil
}

// MustParse is like Parse but panics on error. It is meant for expressions
// fixed at compile time.
func MustParse(text string) *Expression {
	e, err := Parse(text)
	if err != nil {
		panic("cogpar: Parse(" + text + "): " + err.Error())
	}
	return e
}

// Root returns the root node of the tree.
func (e *Expression) Root() ast.Node { return e.root }

// Eval evaluates the tree with the current bindings.
func (e *Expression) Eval() (complex128, error) {
	return e.root.Eval()
}

// Bind sets every variable called name to value and returns how many
// occurrences were bound. Names are case-sensitive.
func (e *Expression) Bind(name string, value complex128) int {
	return ast.Bind(e.root, name, value)
}

// BindAll binds every name in values and returns the total number of
// occurrences bound.
func (e *Expression) BindAll(values map[string]complex128) int {
	n := 0
	for name, v := range values {
		n += ast.Bind(e.root, name, v)
	}
	return n
}

// Unbind clears the value of every variable called name.
func (e *Expression) Unbind(name string) {
	ast.Unbind(e.root, name)
}

// Variables returns the distinct variable names in the order they first
// appear.
func (e *Expression) Variables() []string {
	return ast.Variables(e.root)
}

// Unbound returns the names that have at least one occurrence without a
// value, in order of first occurrence.
func (e *Expression) Unbound() []string {
	return ast.Unbound(e.root)
}

// Check reports, without evaluating, every problem Eval would run into with
// the current bindings. Each error is a *CheckError.
func (e *Expression) Check() []error {
	return semantic.New().Analyze(e.root)
}

// Fold replaces every part of the tree that mentions no variable with its
// value, and returns the result. The receiver shares nodes with the result
// and must not be used afterwards.
func (e *Expression) Fold() *Expression {
	return &Expression{root: optimizer.Fold(e.root)}
}

// String prints the tree in a form Parse accepts.
func (e *Expression) String() string {
	return e.root.String()
}
