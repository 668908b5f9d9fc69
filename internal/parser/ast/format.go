package ast

import (
	"strconv"
	"strings"
)

// Precedence is the binding strength of a node when printed.
//
// PRECEDENCE RULES (from lowest to highest):
// 1. Sum (+, - between terms)
// 2. Product (*, /, %)
// 3. Unary (a leading -)
// 4. Power (^, right-associative)
// 5. Primary (literals, variables, calls)
type Precedence int

const (
	PrecNone Precedence = iota
	PrecSum
	PrecProduct
	PrecUnary
	PrecPower
	PrecPrimary
)

// PrecedenceOf returns the printing precedence of n.
func PrecedenceOf(n Node) Precedence {
	switch n := n.(type) {
	case *Sum:
		if n.IsNegation() {
			return PrecUnary
		}
		return PrecSum
	case *Product:
		if len(n.Factors) == 1 {
			return PrecedenceOf(n.Factors[0].Node)
		}
		return PrecProduct
	case *Power:
		return PrecPower
	case *Constant:
		if n.Value < 0 {
			return PrecUnary
		}
		return PrecPrimary
	case *Imaginary:
		if n.Coefficient < 0 {
			return PrecUnary
		}
		return PrecPrimary
	default:
		return PrecPrimary
	}
}

// writeOperand writes n, parenthesized when its precedence is below min.
func writeOperand(b *strings.Builder, n Node, min Precedence) {
	if PrecedenceOf(n) < min {
		b.WriteByte('(')
		b.WriteString(n.String())
		b.WriteByte(')')
		return
	}
	b.WriteString(n.String())
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (c *Constant) String() string {
	if c.Name != "" {
		return c.Name
	}
	return formatFloat(c.Value)
}

func (m *Imaginary) String() string {
	if m.Coefficient == 1 {
		return "i"
	}
	return formatFloat(m.Coefficient) + "i"
}

func (x *Variable) String() string { return x.Name }

func (s *Sum) String() string {
	var b strings.Builder
	if s.IsNegation() {
		b.WriteByte('-')
		writeOperand(&b, s.Terms[0].Node, PrecUnary)
		return b.String()
	}
	for i, t := range s.Terms {
		switch {
		case i == 0 && t.Sign == Minus:
			b.WriteByte('-')
		case i > 0:
			b.WriteString(" " + t.Sign.String() + " ")
		}
		writeOperand(&b, t.Node, PrecProduct)
	}
	return b.String()
}

func (p *Product) String() string {
	var b strings.Builder
	for i, f := range p.Factors {
		if i == 0 {
			// A leading negation would swallow the whole product on re-parse.
			writeOperand(&b, f.Node, PrecPower)
			continue
		}
		b.WriteString(" " + f.Op.String() + " ")
		writeOperand(&b, f.Node, PrecUnary)
	}
	return b.String()
}

func (p *Power) String() string {
	var b strings.Builder
	writeOperand(&b, p.Base, PrecPrimary)
	b.WriteString("^")
	writeOperand(&b, p.Exponent, PrecUnary)
	return b.String()
}

func (c *Call1) String() string {
	return c.Func.String() + "(" + c.Arg.String() + ")"
}

func (c *Call2) String() string {
	return c.Func.String() + "(" + c.Arg1.String() + ", " + c.Arg2.String() + ")"
}

func (d *Derivative) String() string {
	return d.Func.String() + "(" + d.Expr.String() + ", " + d.Var.String() + ")"
}
