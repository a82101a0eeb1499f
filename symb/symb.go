package symb

// Construction helpers. Every one simplifies its result immediately, so
// a caller never holds an un-canonicalized tree.

import "github.com/kjardine/symb/rational"

// Num constructs a canonical integer Number.
func Num(n int64) Expr { return Simplify(&Number{Value: rational.FromInt64(n)}) }

// Frac constructs a canonical rational Number from a numerator and
// denominator.
func Frac(num, denom int64) Expr { return Simplify(&Number{Value: rational.FromFrac64(num, denom)}) }

// NumRat lifts an already-built rational.Rat into a canonical Number.
func NumRat(v rational.Rat) Expr { return Simplify(&Number{Value: v}) }

// Sym constructs a Symbol with the given name. name must be non-empty.
func Sym(name string) Expr {
	if name == "" {
		panic("symb: Sym: empty name")
	}
	return &Symbol{Name: name}
}

// SumOf builds the canonical simplification of the sum of its
// arguments.
func SumOf(terms ...Expr) Expr { return Simplify(&Sum{Children: terms}) }

// ProductOf builds the canonical simplification of the product of its
// arguments.
func ProductOf(factors ...Expr) Expr { return Simplify(&Product{Children: factors}) }

// PowOf builds the canonical simplification of base^exponent.
func PowOf(base, exponent Expr) Expr { return Simplify(&Power{Base: base, Exponent: exponent}) }

// FuncOf builds the canonical simplification of a named function
// application. name must be non-empty.
func FuncOf(name string, args ...Expr) Expr {
	if name == "" {
		panic("symb: FuncOf: empty name")
	}
	return Simplify(&Function{Name: name, Children: args})
}

// Diff builds diff(e, varName), simplified.
func Diff(e Expr, varName string) Expr {
	return Simplify(&Function{Name: "diff", Children: []Expr{e, Sym(varName)}})
}

// UndefinedExpr is the canonical Undefined value.
func UndefinedExpr() Expr { return &Undefined{} }
