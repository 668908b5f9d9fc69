package ast

import (
	"github.com/hassan/cogpar/internal/funcs"
	"github.com/hassan/cogpar/internal/lexer"
)

// tokenEnd returns the position just past tok.
func tokenEnd(tok lexer.Token) lexer.Position {
	return lexer.Position{
		Line:   tok.Position.Line,
		Column: tok.Position.Column + tok.Length,
		Offset: tok.Position.Offset + tok.Length,
	}
}

// Constant is a real literal or a named constant (pi, e, phi).
type Constant struct {
	Token lexer.Token
	Value float64
	// Name is the constant's name as written, or empty for a literal.
	Name string
}

func (c *Constant) Pos() lexer.Position { return c.Token.Position }
func (c *Constant) End() lexer.Position { return tokenEnd(c.Token) }
func (c *Constant) node()               {}
func (c *Constant) Accept(v Visitor)    { v.VisitConstant(c) }

// Imaginary is a literal multiple of i: 2i, 0.5I, i.
type Imaginary struct {
	Token       lexer.Token
	Coefficient float64
}

func (m *Imaginary) Pos() lexer.Position { return m.Token.Position }
func (m *Imaginary) End() lexer.Position { return tokenEnd(m.Token) }
func (m *Imaginary) node()               {}
func (m *Imaginary) Accept(v Visitor)    { v.VisitImaginary(m) }

// Variable is a named placeholder. Each Variable node holds its own binding
// slot; binding one node never affects another, even with the same name.
// The slot starts unbound and keeps its value until rebound or unset.
type Variable struct {
	Token lexer.Token
	Name  string

	value complex128
	bound bool
}

// NewVariable returns an unbound variable node. The parser builds variables
// from tokens; this is for trees assembled by hand.
func NewVariable(name string) *Variable {
	return &Variable{Name: name}
}

func (x *Variable) Pos() lexer.Position { return x.Token.Position }
func (x *Variable) End() lexer.Position { return tokenEnd(x.Token) }
func (x *Variable) node()               {}
func (x *Variable) Accept(v Visitor)    { v.VisitVariable(x) }

// Set binds the variable to value.
func (x *Variable) Set(value complex128) {
	x.value = value
	x.bound = true
}

// Unset clears the binding.
func (x *Variable) Unset() {
	x.value = 0
	x.bound = false
}

// Value returns the bound value and whether the variable is bound.
func (x *Variable) Value() (complex128, bool) {
	return x.value, x.bound
}

// Bound reports whether the variable currently holds a value.
func (x *Variable) Bound() bool { return x.bound }

// Term is one signed operand of a Sum.
type Term struct {
	Sign Sign
	Node Node
	// OpPos is the position of the sign token; zero for an implicit '+'.
	OpPos lexer.Position
}

// Sum is an n-ary chain of additions and subtractions, evaluated left to
// right from zero. A unary minus is a Sum with a single Minus term.
//
// INVARIANT: Terms is never empty.
type Sum struct {
	Terms []Term
}

// NewSum starts a sum with one term.
func NewSum(sign Sign, n Node, opPos lexer.Position) *Sum {
	return &Sum{Terms: []Term{{Sign: sign, Node: n, OpPos: opPos}}}
}

// Add appends a term.
func (s *Sum) Add(sign Sign, n Node, opPos lexer.Position) {
	s.Terms = append(s.Terms, Term{Sign: sign, Node: n, OpPos: opPos})
}

// IsNegation reports whether s is a unary minus.
func (s *Sum) IsNegation() bool {
	return len(s.Terms) == 1 && s.Terms[0].Sign == Minus
}

func (s *Sum) Pos() lexer.Position {
	first := s.Terms[0]
	if first.OpPos.IsValid() {
		return first.OpPos
	}
	return first.Node.Pos()
}
func (s *Sum) End() lexer.Position { return s.Terms[len(s.Terms)-1].Node.End() }
func (s *Sum) node()               {}
func (s *Sum) Accept(v Visitor) {
	v.VisitSum(s)
	for _, t := range s.Terms {
		t.Node.Accept(v)
	}
}

// Factor is one operand of a Product with the operator that combines it
// with the running result. The first factor's Op is always Mul.
type Factor struct {
	Op    Op
	Node  Node
	OpPos lexer.Position
}

// Product is an n-ary chain of *, / and %, evaluated left to right from one.
//
// INVARIANT: Factors is never empty and a Product built by the parser has at
// least two factors.
type Product struct {
	Factors []Factor
}

// NewProduct starts a product with one factor.
func NewProduct(n Node) *Product {
	return &Product{Factors: []Factor{{Op: Mul, Node: n}}}
}

// Add appends a factor.
func (p *Product) Add(op Op, n Node, opPos lexer.Position) {
	p.Factors = append(p.Factors, Factor{Op: op, Node: n, OpPos: opPos})
}

func (p *Product) Pos() lexer.Position { return p.Factors[0].Node.Pos() }
func (p *Product) End() lexer.Position { return p.Factors[len(p.Factors)-1].Node.End() }
func (p *Product) node()               {}
func (p *Product) Accept(v Visitor) {
	v.VisitProduct(p)
	for _, f := range p.Factors {
		f.Node.Accept(v)
	}
}

// Power is Base ^ Exponent. Exponentiation is right-associative, so the
// Exponent may itself be a Power.
type Power struct {
	Base     Node
	Exponent Node
	OpPos    lexer.Position
}

func (p *Power) Pos() lexer.Position { return p.Base.Pos() }
func (p *Power) End() lexer.Position { return p.Exponent.End() }
func (p *Power) node()               {}
func (p *Power) Accept(v Visitor) {
	v.VisitPower(p)
	p.Base.Accept(v)
	p.Exponent.Accept(v)
}

// Call1 applies a registered one-argument function.
type Call1 struct {
	Token  lexer.Token // function name
	Func   funcs.Func1
	Arg    Node
	Rparen lexer.Position
}

func (c *Call1) Pos() lexer.Position { return c.Token.Position }
func (c *Call1) End() lexer.Position { return closeParenEnd(c.Rparen, c.Arg) }
func (c *Call1) node()               {}
func (c *Call1) Accept(v Visitor) {
	v.VisitCall1(c)
	c.Arg.Accept(v)
}

// Call2 applies a registered two-argument function.
type Call2 struct {
	Token  lexer.Token
	Func   funcs.Func2
	Arg1   Node
	Arg2   Node
	Rparen lexer.Position
}

func (c *Call2) Pos() lexer.Position { return c.Token.Position }
func (c *Call2) End() lexer.Position { return closeParenEnd(c.Rparen, c.Arg2) }
func (c *Call2) node()               {}
func (c *Call2) Accept(v Visitor) {
	v.VisitCall2(c)
	c.Arg1.Accept(v)
	c.Arg2.Accept(v)
}

// Derivative is deriv(Expr, Var): the derivative of Expr with respect to
// Var's name, evaluated at Var's bound value.
//
// Var is its own Variable node. It is bound like any other occurrence of the
// name, and that binding supplies the evaluation point.
type Derivative struct {
	Token  lexer.Token
	Func   funcs.Deriv
	Expr   Node
	Var    *Variable
	Rparen lexer.Position
}

func (d *Derivative) Pos() lexer.Position { return d.Token.Position }
func (d *Derivative) End() lexer.Position { return closeParenEnd(d.Rparen, d.Var) }
func (d *Derivative) node()               {}
func (d *Derivative) Accept(v Visitor) {
	v.VisitDerivative(d)
	d.Expr.Accept(v)
	d.Var.Accept(v)
}

func closeParenEnd(rparen lexer.Position, last Node) lexer.Position {
	if !rparen.IsValid() {
		return last.End()
	}
	return lexer.Position{Line: rparen.Line, Column: rparen.Column + 1, Offset: rparen.Offset + 1}
}
