package symb

import "sort"

// Simplify is the single entry point for automatic simplification: it
// recursively simplifies every child bottom-up, then dispatches on x's
// own tag to a variant-specific rewrite. Numbers, Symbols, and
// Undefined pass through unchanged. Undefined is an ordinary value,
// not an exception: it propagates through further simplification like
// any other node, and callers decide whether to treat it as
// absorbing.
func Simplify(x Expr) Expr {
	switch v := x.(type) {
	case *Number, *Symbol, *Undefined:
		return x
	case *Sum:
		children := make([]Expr, len(v.Children))
		for i, c := range v.Children {
			children[i] = Simplify(c)
		}
		return simplifySum(children)
	case *Product:
		children := make([]Expr, len(v.Children))
		for i, c := range v.Children {
			children[i] = Simplify(c)
		}
		return simplifyProduct(children)
	case *Power:
		return simplifyPower(Simplify(v.Base), Simplify(v.Exponent))
	case *Function:
		children := make([]Expr, len(v.Children))
		for i, c := range v.Children {
			children[i] = Simplify(c)
		}
		return simplifyFunction(v.Name, children)
	default:
		return x
	}
}

func isNumber(x Expr) (*Number, bool) {
	n, ok := x.(*Number)
	return n, ok
}

func isZero(x Expr) bool {
	n, ok := isNumber(x)
	return ok && n.Value.IsZero()
}

func isOne(x Expr) bool {
	n, ok := isNumber(x)
	return ok && n.Value.Cmp(one().(*Number).Value) == 0
}

// ---------------------------------------------------------------------
// Sum simplification
// ---------------------------------------------------------------------

func simplifySum(children []Expr) Expr {
	children = flatten(children, TagSum)
	sort.SliceStable(children, func(i, j int) bool { return Less(children[i], children[j]) })

	out := make([]Expr, 0, len(children))
	for _, next := range children {
		if len(out) == 0 {
			out = append(out, next)
			continue
		}
		last := out[len(out)-1]
		merged, combined := mergeSumPair(last, next)
		if combined {
			out = out[:len(out)-1]
			if merged != nil {
				out = append(out, merged)
			}
		} else {
			out = append(out, next)
		}
	}

	switch len(out) {
	case 0:
		return zero()
	case 1:
		return out[0]
	default:
		return &Sum{Children: out}
	}
}

// mergeSumPair attempts to combine lhs (already emitted) with rhs
// (the next input). combined reports whether they were merged at all
// (even into nothing); merged is nil when the combination vanishes.
func mergeSumPair(lhs, rhs Expr) (merged Expr, combined bool) {
	ln, lok := isNumber(lhs)
	rn, rok := isNumber(rhs)
	if lok && rok {
		sum := ln.Value.Add(rn.Value)
		if sum.IsZero() {
			return nil, true
		}
		return &Number{Value: sum}, true
	}
	if isZero(lhs) {
		return rhs, true
	}
	if isZero(rhs) {
		return lhs, true
	}
	if Equal(Term(lhs), Term(rhs)) {
		lc, lt := SplitTerm(lhs)
		rc, _ := SplitTerm(rhs)
		newConstant := Simplify(&Sum{Children: []Expr{lc, rc}})
		newFactor := Simplify(&Product{Children: []Expr{newConstant, lt}})
		if isZero(newFactor) {
			return nil, true
		}
		return newFactor, true
	}
	return nil, false
}

// ---------------------------------------------------------------------
// Product simplification
// ---------------------------------------------------------------------

func simplifyProduct(children []Expr) Expr {
	children = flatten(children, TagProduct)
	for _, c := range children {
		if isZero(c) {
			return zero()
		}
	}
	sort.SliceStable(children, func(i, j int) bool { return Less(children[i], children[j]) })

	out := make([]Expr, 0, len(children))
	for _, next := range children {
		if len(out) == 0 {
			out = append(out, next)
			continue
		}
		last := out[len(out)-1]
		merged, combined := mergeProductPair(last, next)
		if combined {
			out = out[:len(out)-1]
			if merged != nil {
				out = append(out, merged)
			}
		} else {
			out = append(out, next)
		}
	}

	switch len(out) {
	case 0:
		return one()
	case 1:
		return out[0]
	default:
		return &Product{Children: out}
	}
}

func mergeProductPair(lhs, rhs Expr) (merged Expr, combined bool) {
	ln, lok := isNumber(lhs)
	rn, rok := isNumber(rhs)
	if lok && rok {
		prod := ln.Value.Mul(rn.Value)
		if prod.Cmp(one().(*Number).Value) == 0 {
			return nil, true
		}
		return &Number{Value: prod}, true
	}
	if isOne(lhs) {
		return rhs, true
	}
	if isOne(rhs) {
		return lhs, true
	}
	if Equal(Base(lhs), Base(rhs)) {
		lb, le := SplitPower(lhs)
		_, re := SplitPower(rhs)
		newExponent := simplifySum([]Expr{le, re})
		newFactor := simplifyPower(lb, newExponent)
		if isOne(newFactor) {
			return nil, true
		}
		return newFactor, true
	}
	return nil, false
}

// flatten replaces every direct child of tag k by that child's own
// children (associativity), leaving everything else untouched.
func flatten(children []Expr, k Tag) []Expr {
	out := make([]Expr, 0, len(children))
	for _, c := range children {
		if c.Kind() == k {
			switch k {
			case TagSum:
				out = append(out, c.(*Sum).Children...)
			case TagProduct:
				out = append(out, c.(*Product).Children...)
			}
		} else {
			out = append(out, c)
		}
	}
	return out
}

// ---------------------------------------------------------------------
// Power simplification
// ---------------------------------------------------------------------

func simplifyPower(base, exponent Expr) Expr {
	if isZero(base) {
		if en, ok := isNumber(exponent); ok {
			switch {
			case en.Value.Sign() > 0:
				return zero()
			case en.Value.IsZero():
				return one()
			default:
				return &Undefined{}
			}
		}
		return &Power{Base: base, Exponent: exponent}
	}
	if isOne(base) {
		return one()
	}
	if en, ok := isNumber(exponent); ok && en.Value.IsInt() {
		return simplifyIntegerPower(base, en)
	}
	return &Power{Base: base, Exponent: exponent}
}

func simplifyIntegerPower(base Expr, n *Number) Expr {
	if n.Value.IsZero() {
		return one()
	}
	if n.Value.Cmp(one().(*Number).Value) == 0 {
		return base
	}
	switch b := base.(type) {
	case *Number:
		return &Number{Value: b.Value.PowInt(n.Value.Num())}
	case *Power:
		newExponent := simplifyProduct([]Expr{b.Exponent, n})
		return simplifyPower(b.Base, newExponent)
	case *Product:
		factors := make([]Expr, len(b.Children))
		for i, f := range b.Children {
			factors[i] = simplifyPower(f, n.Copy())
		}
		return simplifyProduct(factors)
	default:
		return &Power{Base: base, Exponent: n}
	}
}

// ---------------------------------------------------------------------
// Functions and differentiation
// ---------------------------------------------------------------------

func simplifyFunction(name string, args []Expr) Expr {
	if name == "diff" {
		return simplifyDiff(args)
	}
	return &Function{Name: name, Children: args}
}
