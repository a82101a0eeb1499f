package symb

import "github.com/kjardine/symb/rational"

// simplifyDiff implements diff(expr, var). args must already be
// simplified (Simplify routes here after simplifying children). If
// the call is malformed — wrong arity, or a second argument that is
// not a Symbol — the result is Undefined rather than a panic, so
// partial expressions remain printable.
func simplifyDiff(args []Expr) Expr {
	if len(args) != 2 {
		return &Undefined{}
	}
	v, ok := args[1].(*Symbol)
	if !ok {
		return &Undefined{}
	}
	return diff(args[0], v)
}

func diff(e Expr, v *Symbol) Expr {
	switch x := e.(type) {
	case *Symbol:
		if x.Name == v.Name {
			return one()
		}
		return zero()
	case *Number:
		return zero()
	case *Sum:
		terms := make([]Expr, len(x.Children))
		for i, c := range x.Children {
			terms[i] = diff(c, v)
		}
		return simplifySum(terms)
	case *Product:
		return diffProduct(x.Children, v)
	case *Power:
		return diffPower(x.Base, x.Exponent, v)
	case *Function:
		return &Function{Name: "diff", Children: []Expr{e.Copy(), v.Copy()}}
	default:
		return &Undefined{}
	}
}

// diffProduct applies the Leibniz rule: the sum, over each factor, of
// the product obtained by differentiating that one factor and taking
// deep copies of every other factor left untouched.
func diffProduct(factors []Expr, v *Symbol) Expr {
	summands := make([]Expr, len(factors))
	for i := range factors {
		newFactors := make([]Expr, len(factors))
		for j, f := range factors {
			if j == i {
				newFactors[j] = diff(f, v)
			} else {
				newFactors[j] = f.Copy()
			}
		}
		summands[i] = simplifyProduct(newFactors)
	}
	return simplifySum(summands)
}

// diffPower handles base^exp where exp is constant in v (power rule);
// differentiation of a variable-dependent exponent is left as an
// unevaluated diff(...) call rather than applying the general
// exponential differentiation rule.
func diffPower(base, exp Expr, v *Symbol) Expr {
	if !isConstantIn(exp, v.Name) {
		return &Function{Name: "diff", Children: []Expr{
			(&Power{Base: base, Exponent: exp}).Copy(), v.Copy(),
		}}
	}
	reducedExponent := simplifySum([]Expr{exp.Copy(), &Number{Value: rational.FromInt64(-1)}})
	powerTerm := simplifyPower(base.Copy(), reducedExponent)
	return simplifyProduct([]Expr{exp.Copy(), powerTerm, diff(base, v)})
}

// isConstantIn reports whether e is constant in the variable v: a
// Number is always constant; a Symbol is constant iff its name differs
// from v; a compound is constant iff all of its children are.
func isConstantIn(e Expr, v string) bool {
	switch x := e.(type) {
	case *Number:
		return true
	case *Symbol:
		return x.Name != v
	case *Sum:
		return allConstantIn(x.Children, v)
	case *Product:
		return allConstantIn(x.Children, v)
	case *Power:
		return isConstantIn(x.Base, v) && isConstantIn(x.Exponent, v)
	case *Function:
		return allConstantIn(x.Children, v)
	case *Undefined:
		return true
	default:
		return false
	}
}

func allConstantIn(children []Expr, v string) bool {
	for _, c := range children {
		if !isConstantIn(c, v) {
			return false
		}
	}
	return true
}
