// Package symb implements the expression tree, total order, and
// automatic-simplification algorithm of the computer-algebra core: a
// tagged-variant owning tree over exact rationals, normalized to a
// unique canonical representative under a fixed algebra of identities.
package symb

import (
	"fmt"

	"github.com/kjardine/symb/rational"
)

// Tag is the stable ordering discriminator of an expression node. Its
// numeric value is load-bearing: the total order sorts first by Tag.
type Tag int

const (
	TagNumber Tag = iota
	TagProduct
	TagPower
	TagSum
	TagFunction
	TagSymbol
	TagUndefined
)

func (t Tag) String() string {
	switch t {
	case TagNumber:
		return "Number"
	case TagProduct:
		return "Product"
	case TagPower:
		return "Power"
	case TagSum:
		return "Sum"
	case TagFunction:
		return "Function"
	case TagSymbol:
		return "Symbol"
	case TagUndefined:
		return "Undefined"
	default:
		return fmt.Sprintf("Tag(%d)", int(t))
	}
}

// precedence orders the printer's parenthesization: Sum < Product <
// Power < atoms.
func precedence(k Tag) int {
	switch k {
	case TagSum:
		return 1
	case TagProduct:
		return 2
	case TagPower:
		return 3
	default:
		return maxPrecedence
	}
}

const maxPrecedence = 1 << 30

// Expr is the tagged-variant expression node. Every non-leaf owns its
// children: no sharing, no cycles. Copy is always deep.
type Expr interface {
	Kind() Tag
	Copy() Expr
	String() string
	Repr() string
}

// Number is a leaf holding an exact rational value.
type Number struct{ Value rational.Rat }

// NumberOf wraps a rational value as a Number node (not simplified).
func NumberOf(v rational.Rat) *Number { return &Number{Value: v} }

func (n *Number) Kind() Tag    { return TagNumber }
func (n *Number) Copy() Expr   { return &Number{Value: n.Value} }
func (n *Number) String() string { return n.Value.String() }
func (n *Number) Repr() string   { return n.Value.String() }

// Symbol is a leaf holding a variable name.
type Symbol struct{ Name string }

func (s *Symbol) Kind() Tag      { return TagSymbol }
func (s *Symbol) Copy() Expr     { return &Symbol{Name: s.Name} }
func (s *Symbol) String() string { return s.Name }
func (s *Symbol) Repr() string   { return s.Name }

// Sum is an n-ary, ordered sum of children (unsimplified until passed
// through Simplify).
type Sum struct{ Children []Expr }

func (s *Sum) Kind() Tag  { return TagSum }
func (s *Sum) Copy() Expr {
	cp := make([]Expr, len(s.Children))
	for i, c := range s.Children {
		cp[i] = c.Copy()
	}
	return &Sum{Children: cp}
}
func (s *Sum) String() string { return joinSum(s.Children) }
func (s *Sum) Repr() string   { return reprList("Sum", s.Children) }

// Product is an n-ary, ordered product of children (unsimplified until
// passed through Simplify).
type Product struct{ Children []Expr }

func (p *Product) Kind() Tag { return TagProduct }
func (p *Product) Copy() Expr {
	cp := make([]Expr, len(p.Children))
	for i, c := range p.Children {
		cp[i] = c.Copy()
	}
	return &Product{Children: cp}
}
func (p *Product) String() string { return joinProduct(p.Children) }
func (p *Product) Repr() string   { return reprList("Product", p.Children) }

// Power is base^exponent.
type Power struct{ Base, Exponent Expr }

func (p *Power) Kind() Tag { return TagPower }
func (p *Power) Copy() Expr {
	return &Power{Base: p.Base.Copy(), Exponent: p.Exponent.Copy()}
}
func (p *Power) String() string {
	return maybeBrace(p, p.Base) + "^" + maybeBrace(p, p.Exponent)
}
func (p *Power) Repr() string { return reprList("Power", []Expr{p.Base, p.Exponent}) }

// Function is a named application of zero or more argument children.
type Function struct {
	Name     string
	Children []Expr
}

func (f *Function) Kind() Tag { return TagFunction }
func (f *Function) Copy() Expr {
	cp := make([]Expr, len(f.Children))
	for i, c := range f.Children {
		cp[i] = c.Copy()
	}
	return &Function{Name: f.Name, Children: cp}
}
func (f *Function) String() string {
	parts := make([]string, len(f.Children))
	for i, c := range f.Children {
		parts[i] = c.String()
	}
	return f.Name + "(" + joinComma(parts) + ")"
}
func (f *Function) Repr() string {
	return f.Name + "(" + reprListInner(f.Children) + ")"
}

// Undefined is the sole value of its kind: an algebraically undefined
// result.
type Undefined struct{}

func (u *Undefined) Kind() Tag      { return TagUndefined }
func (u *Undefined) Copy() Expr     { return &Undefined{} }
func (u *Undefined) String() string { return "<Undefined>" }
func (u *Undefined) Repr() string   { return "<Undefined>" }

func maybeBrace(parent Expr, child Expr) string {
	if precedence(child.Kind()) < precedence(parent.Kind()) {
		return "(" + child.String() + ")"
	}
	return child.String()
}

func joinComma(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}

func joinSum(children []Expr) string {
	ret := ""
	for _, c := range children {
		s := maybeBraceIn(TagSum, c)
		if ret == "" {
			ret = s
		} else if len(s) > 0 && s[0] == '-' {
			ret += s
		} else {
			ret += "+" + s
		}
	}
	return ret
}

func joinProduct(children []Expr) string {
	ret := ""
	leadingSign := false
	for i, c := range children {
		switch {
		case i == 0:
			if n, ok := c.(*Number); ok && n.Value.Equal(rational.FromInt64(-1)) {
				ret = "-"
				leadingSign = true
				continue
			}
			ret = maybeBraceIn(TagProduct, c)
		case leadingSign:
			ret += maybeBraceIn(TagProduct, c)
			leadingSign = false
		default:
			ret += "*" + maybeBraceIn(TagProduct, c)
		}
	}
	return ret
}

func maybeBraceIn(parentTag Tag, child Expr) string {
	if precedence(child.Kind()) < precedence(parentTag) {
		return "(" + child.String() + ")"
	}
	return child.String()
}

func reprList(name string, children []Expr) string {
	return name + "(" + reprListInner(children) + ")"
}

func reprListInner(children []Expr) string {
	out := ""
	for i, c := range children {
		if i > 0 {
			out += ", "
		}
		out += c.Repr()
	}
	return out
}

// ---------------------------------------------------------------------
// Accessors: base/exponent/term/constant.
// ---------------------------------------------------------------------

// Base returns x's base: x itself unless x is a Power, in which case
// its first child.
func Base(x Expr) Expr {
	if p, ok := x.(*Power); ok {
		return p.Base
	}
	return x
}

// Exponent returns x's exponent: Number(1) unless x is a Power, in
// which case its second child.
func Exponent(x Expr) Expr {
	if p, ok := x.(*Power); ok {
		return p.Exponent
	}
	return one()
}

// Constant returns the numeric factor of x: if x is a Product whose
// first child is a Number, that number; otherwise Number(1).
func Constant(x Expr) Expr {
	if p, ok := x.(*Product); ok && len(p.Children) > 0 {
		if n, ok := p.Children[0].(*Number); ok {
			return n
		}
	}
	return one()
}

// Term returns x with its numeric factor removed: if x is a Product
// whose first child is a Number, the Product of the remaining
// children; otherwise x itself.
func Term(x Expr) Expr {
	if p, ok := x.(*Product); ok && len(p.Children) > 0 {
		if _, ok := p.Children[0].(*Number); ok {
			return &Product{Children: p.Children[1:]}
		}
	}
	return x
}

func one() Expr { return &Number{Value: rational.One} }
func zero() Expr { return &Number{Value: rational.Zero} }

// SplitTerm unpacks val into (c, t) such that c is a Number and
// c*t ≡ val. val is consumed: the caller must not read it after the
// call, since a Product's children slice may be reused directly in t.
func SplitTerm(val Expr) (c Expr, t Expr) {
	if p, ok := val.(*Product); ok && len(p.Children) > 0 {
		if n, ok := p.Children[0].(*Number); ok {
			rest := p.Children[1:]
			return n, &Product{Children: rest}
		}
	}
	return one(), val
}

// SplitPower unpacks val into (b, e) such that b^e ≡ val. val is
// consumed: the caller must not read it after the call.
func SplitPower(val Expr) (b Expr, e Expr) {
	if p, ok := val.(*Power); ok {
		return p.Base, p.Exponent
	}
	return val, one()
}
