package ast

import (
	"github.com/hassan/cogpar/internal/cmath"
)

// Dual is a value paired with its derivative with respect to one variable.
type Dual struct {
	Value complex128
	Deriv complex128
}

// diffContext carries the differentiation target through the paired pass.
// Every Variable named target evaluates to (point, 1); every other variable
// is a constant.
type diffContext struct {
	target string
	point  complex128
}

// Differentiate evaluates Expr and its derivative with respect to Var at the
// value bound to Var.
func (d *Derivative) Differentiate() (Dual, error) {
	if !d.Func.Valid() {
		return Dual{}, evalErrorf(d.Pos(), ErrUnknownFunction, "unknown derivative id %d", int(d.Func))
	}
	point, ok := d.Var.Value()
	if !ok {
		return Dual{}, evalErrorf(d.Var.Pos(), ErrUnbound,
			"differentiation variable %q is not bound", d.Var.Name)
	}
	return d.Expr.dual(&diffContext{target: d.Var.Name, point: point})
}

func constant(v complex128) Dual { return Dual{Value: v} }

func (c *Constant) dual(*diffContext) (Dual, error) {
	return constant(complex(c.Value, 0)), nil
}

func (m *Imaginary) dual(*diffContext) (Dual, error) {
	return constant(complex(0, m.Coefficient)), nil
}

func (x *Variable) dual(ctx *diffContext) (Dual, error) {
	if x.Name == ctx.target {
		return Dual{Value: ctx.point, Deriv: 1}, nil
	}
	v, err := x.Eval()
	if err != nil {
		return Dual{}, err
	}
	return constant(v), nil
}

func (s *Sum) dual(ctx *diffContext) (Dual, error) {
	var acc Dual
	for _, t := range s.Terms {
		d, err := t.Node.dual(ctx)
		if err != nil {
			return Dual{}, err
		}
		if t.Sign == Minus {
			acc.Value -= d.Value
			acc.Deriv -= d.Deriv
		} else {
			acc.Value += d.Value
			acc.Deriv += d.Deriv
		}
	}
	return acc, nil
}

// dual applies the product and quotient rules factor by factor. The
// remainder operator has no derivative; it is accepted only while neither
// side depends on the target.
func (p *Product) dual(ctx *diffContext) (Dual, error) {
	acc := constant(1)
	dependent := false
	for _, f := range p.Factors {
		d, err := f.Node.dual(ctx)
		if err != nil {
			return Dual{}, err
		}
		refs := References(f.Node, ctx.target)
		switch f.Op {
		case Div:
			acc = Dual{
				Value: acc.Value / d.Value,
				Deriv: (acc.Deriv*d.Value - acc.Value*d.Deriv) / (d.Value * d.Value),
			}
		case Rem:
			if dependent || refs {
				return Dual{}, evalErrorf(f.OpPos, ErrNotDifferentiable,
					"remainder is not differentiable with respect to %q", ctx.target)
			}
			acc = constant(cmath.Mod(acc.Value, d.Value))
		default:
			acc = Dual{
				Value: acc.Value * d.Value,
				Deriv: acc.Deriv*d.Value + acc.Value*d.Deriv,
			}
		}
		dependent = dependent || refs
	}
	return acc, nil
}

// dual uses the power rule when the exponent does not mention the target,
// and the general rule d(u^v) = u^v (v' ln u + v u'/u) otherwise. Terms
// whose factor u' is zero are dropped so that constant bases (including
// zero) do not produce NaN.
func (p *Power) dual(ctx *diffContext) (Dual, error) {
	u, err := p.Base.dual(ctx)
	if err != nil {
		return Dual{}, err
	}

	if !References(p.Exponent, ctx.target) {
		n, err := p.Exponent.Eval()
		if err != nil {
			return Dual{}, err
		}
		r := constant(cmath.Pow(u.Value, n))
		if u.Deriv != 0 {
			r.Deriv = n * cmath.Pow(u.Value, n-1) * u.Deriv
		}
		return r, nil
	}

	w, err := p.Exponent.dual(ctx)
	if err != nil {
		return Dual{}, err
	}
	v := cmath.Pow(u.Value, w.Value)
	rate := w.Deriv * cmath.Log(u.Value)
	if u.Deriv != 0 {
		rate += w.Value * u.Deriv / u.Value
	}
	return Dual{Value: v, Deriv: v * rate}, nil
}

func (c *Call1) dual(ctx *diffContext) (Dual, error) {
	if !c.Func.Valid() {
		return Dual{}, evalErrorf(c.Pos(), ErrUnknownFunction, "unknown function id %d", int(c.Func))
	}
	a, err := c.Arg.dual(ctx)
	if err != nil {
		return Dual{}, err
	}
	v, d, ok := c.Func.Dual(a.Value)
	if !ok {
		if References(c.Arg, ctx.target) {
			return Dual{}, evalErrorf(c.Pos(), ErrNotDifferentiable,
				"%s has no derivative rule", c.Func)
		}
		return constant(v), nil
	}
	if a.Deriv == 0 {
		return constant(v), nil
	}
	return Dual{Value: v, Deriv: d * a.Deriv}, nil
}

func (c *Call2) dual(ctx *diffContext) (Dual, error) {
	if !c.Func.Valid() {
		return Dual{}, evalErrorf(c.Pos(), ErrUnknownFunction, "unknown function id %d", int(c.Func))
	}
	a, err := c.Arg1.dual(ctx)
	if err != nil {
		return Dual{}, err
	}
	b, err := c.Arg2.dual(ctx)
	if err != nil {
		return Dual{}, err
	}

	v, da, db, okA, okB := c.Func.Dual(a.Value, b.Value)
	if !okA && References(c.Arg1, ctx.target) {
		return Dual{}, evalErrorf(c.Arg1.Pos(), ErrNotDifferentiable,
			"%s is not differentiable in its first argument", c.Func)
	}
	if !okB && References(c.Arg2, ctx.target) {
		return Dual{}, evalErrorf(c.Arg2.Pos(), ErrNotDifferentiable,
			"%s is not differentiable in its second argument", c.Func)
	}

	r := constant(v)
	if okA && a.Deriv != 0 {
		r.Deriv += da * a.Deriv
	}
	if okB && b.Deriv != 0 {
		r.Deriv += db * b.Deriv
	}
	return r, nil
}

// dual treats a nested derivative as a constant when it does not mention
// the outer target. Higher-order derivatives are not supported.
func (d *Derivative) dual(ctx *diffContext) (Dual, error) {
	if References(d, ctx.target) {
		return Dual{}, evalErrorf(d.Pos(), ErrNotDifferentiable,
			"nested derivative depends on %q", ctx.target)
	}
	v, err := d.Eval()
	if err != nil {
		return Dual{}, err
	}
	return constant(v), nil
}
