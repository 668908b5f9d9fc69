package ast

import (
	"github.com/hassan/cogpar/internal/cmath"
)

func (c *Constant) Eval() (complex128, error) {
	return complex(c.Value, 0), nil
}

func (m *Imaginary) Eval() (complex128, error) {
	return complex(0, m.Coefficient), nil
}

func (x *Variable) Eval() (complex128, error) {
	if !x.bound {
		return 0, evalErrorf(x.Pos(), ErrUnbound, "variable %q is not bound", x.Name)
	}
	return x.value, nil
}

// Eval adds or subtracts each term, starting from zero.
func (s *Sum) Eval() (complex128, error) {
	var acc complex128
	for _, t := range s.Terms {
		v, err := t.Node.Eval()
		if err != nil {
			return 0, err
		}
		if t.Sign == Minus {
			acc -= v
		} else {
			acc += v
		}
	}
	return acc, nil
}

// Eval folds the factors left to right, starting from one.
func (p *Product) Eval() (complex128, error) {
	acc := complex128(1)
	for _, f := range p.Factors {
		v, err := f.Node.Eval()
		if err != nil {
			return 0, err
		}
		switch f.Op {
		case Div:
			acc /= v
		case Rem:
			acc = cmath.Mod(acc, v)
		default:
			acc *= v
		}
	}
	return acc, nil
}

func (p *Power) Eval() (complex128, error) {
	base, err := p.Base.Eval()
	if err != nil {
		return 0, err
	}
	exp, err := p.Exponent.Eval()
	if err != nil {
		return 0, err
	}
	return cmath.Pow(base, exp), nil
}

func (c *Call1) Eval() (complex128, error) {
	if !c.Func.Valid() {
		return 0, evalErrorf(c.Pos(), ErrUnknownFunction, "unknown function id %d", int(c.Func))
	}
	arg, err := c.Arg.Eval()
	if err != nil {
		return 0, err
	}
	return c.Func.Eval(arg), nil
}

func (c *Call2) Eval() (complex128, error) {
	if !c.Func.Valid() {
		return 0, evalErrorf(c.Pos(), ErrUnknownFunction, "unknown function id %d", int(c.Func))
	}
	a, err := c.Arg1.Eval()
	if err != nil {
		return 0, err
	}
	b, err := c.Arg2.Eval()
	if err != nil {
		return 0, err
	}
	return c.Func.Eval(a, b), nil
}

// Eval returns the derivative of Expr with respect to Var, evaluated at the
// value bound to Var. Only the derivative is returned.
func (d *Derivative) Eval() (complex128, error) {
	r, err := d.Differentiate()
	if err != nil {
		return 0, err
	}
	return r.Deriv, nil
}
