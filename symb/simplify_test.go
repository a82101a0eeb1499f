package symb_test

import (
	"testing"

	"github.com/kjardine/symb/symb"
)

func TestScenario_AssociativityAndPowerCollapse(t *testing.T) {
	x, y, z := symb.Sym("x"), symb.Sym("y"), symb.Sym("z")
	a := symb.ProductOf(symb.SumOf(x, y), z)
	if got := a.String(); got != "(x+y)*z" {
		t.Fatalf("want (x+y)*z, got %s", got)
	}
	result := symb.ProductOf(symb.PowOf(symb.PowOf(a, symb.Num(2)), symb.Num(1)), symb.Frac(1, 2))
	if got := result.String(); got != "1/2*(x+y)^2*z^2" {
		t.Errorf("want 1/2*(x+y)^2*z^2, got %s", got)
	}
}

func TestScenario_UnevaluatedFunctionPower(t *testing.T) {
	fx := symb.FuncOf("f", symb.Sym("x"))
	got := symb.PowOf(fx, symb.Num(101)).String()
	if got != "f(x)^101" {
		t.Errorf("want f(x)^101, got %s", got)
	}
}

func TestScenario_DiffOfFunctionPower(t *testing.T) {
	fx := symb.FuncOf("f", symb.Sym("x"))
	powered := symb.PowOf(fx, symb.Num(101))
	got := symb.Diff(powered, "x").String()
	if got != "101*diff(f(x), x)*f(x)^100" {
		t.Errorf("want 101*diff(f(x), x)*f(x)^100, got %s", got)
	}
}

func TestScenario_LikeTermsSimple(t *testing.T) {
	x := symb.Sym("x")
	if got := symb.SumOf(x, x).String(); got != "2*x" {
		t.Errorf("want 2*x, got %s", got)
	}
}

func TestScenario_LikeTermsMultiple(t *testing.T) {
	x := symb.Sym("x")
	got := symb.SumOf(symb.ProductOf(symb.Num(2), x), symb.ProductOf(symb.Num(3), x), x).String()
	if got != "6*x" {
		t.Errorf("want 6*x, got %s", got)
	}
}

func TestScenario_ZeroPowerNegativeOneIsUndefined(t *testing.T) {
	got := symb.PowOf(symb.Num(0), symb.Num(-1))
	if got.String() != "<Undefined>" {
		t.Errorf("want <Undefined>, got %s", got.String())
	}
}

func TestScenario_ExactIntegerPower(t *testing.T) {
	got := symb.PowOf(symb.Num(2), symb.Num(10))
	if got.String() != "1024" {
		t.Errorf("want 1024, got %s", got.String())
	}
}

func TestScenario_RationalSumCollapsesToZero(t *testing.T) {
	got := symb.SumOf(symb.Frac(1, 2), symb.Frac(1, 3), symb.ProductOf(symb.Num(-1), symb.Frac(5, 6)))
	if got.String() != "0" {
		t.Errorf("want 0, got %s", got.String())
	}
}

func TestScenario_DiffOfXTimesX(t *testing.T) {
	x := symb.Sym("x")
	got := symb.Diff(symb.ProductOf(x, x), "x")
	if got.String() != "2*x" {
		t.Errorf("want 2*x, got %s", got.String())
	}
}

func TestIdempotence(t *testing.T) {
	x, y := symb.Sym("x"), symb.Sym("y")
	exprs := []symb.Expr{
		symb.SumOf(x, y, symb.Num(3), symb.ProductOf(symb.Num(2), x)),
		symb.PowOf(symb.ProductOf(x, y), symb.Num(3)),
		symb.Diff(symb.PowOf(x, symb.Num(5)), "x"),
	}
	for _, e := range exprs {
		once := symb.Simplify(e.Copy())
		twice := symb.Simplify(once.Copy())
		if once.String() != twice.String() {
			t.Errorf("not idempotent: simplify(x)=%s simplify(simplify(x))=%s\n%s",
				once.String(), twice.String(), symb.DebugDiff(once, twice))
		}
	}
}

func TestCanonicalSumHasNoSumChild(t *testing.T) {
	x, y, z := symb.Sym("x"), symb.Sym("y"), symb.Sym("z")
	result := symb.SumOf(symb.SumOf(x, y), z)
	if s, ok := result.(*symb.Sum); ok {
		for _, c := range s.Children {
			if c.Kind() == symb.TagSum {
				t.Error("canonical Sum must not contain a Sum child")
			}
		}
	}
}

func TestCanonicalProductHasNoProductChild(t *testing.T) {
	x, y, z := symb.Sym("x"), symb.Sym("y"), symb.Sym("z")
	result := symb.ProductOf(symb.ProductOf(x, y), z)
	if p, ok := result.(*symb.Product); ok {
		for _, c := range p.Children {
			if c.Kind() == symb.TagProduct {
				t.Error("canonical Product must not contain a Product child")
			}
		}
	}
}

func TestCanonicalSumChildrenSortedAndUnique(t *testing.T) {
	x, y, z := symb.Sym("x"), symb.Sym("y"), symb.Sym("z")
	result := symb.SumOf(z, x, y, symb.ProductOf(symb.Num(2), x))
	s, ok := result.(*symb.Sum)
	if !ok {
		t.Fatalf("expected *Sum, got %T", result)
	}
	for i := 1; i < len(s.Children); i++ {
		if !symb.Less(s.Children[i-1], s.Children[i]) {
			t.Errorf("children not strictly increasing at index %d: %s, %s\n%s\n%s",
				i, s.Children[i-1].String(), s.Children[i].String(),
				symb.DebugDump(s.Children[i-1]), symb.DebugDump(s.Children[i]))
		}
	}
	for i := range s.Children {
		for j := range s.Children {
			if i != j && symb.Equal(symb.Term(s.Children[i]), symb.Term(s.Children[j])) {
				t.Errorf("duplicate term between children %d and %d", i, j)
			}
		}
	}
}

func TestEmptySumIsZero(t *testing.T) {
	if got := (&symb.Sum{}).Kind(); got != symb.TagSum {
		t.Fatalf("sanity check failed")
	}
	result := symb.Simplify(&symb.Sum{})
	if result.String() != "0" {
		t.Errorf("empty sum should simplify to 0, got %s", result.String())
	}
}

func TestEmptyProductIsOne(t *testing.T) {
	result := symb.Simplify(&symb.Product{})
	if result.String() != "1" {
		t.Errorf("empty product should simplify to 1, got %s", result.String())
	}
}

func TestProductAbsorbsZero(t *testing.T) {
	x := symb.Sym("x")
	result := symb.ProductOf(x, symb.Num(0), symb.Sym("y"))
	if result.String() != "0" {
		t.Errorf("want 0, got %s", result.String())
	}
}

func TestPowerDistributesOverProduct(t *testing.T) {
	x, y := symb.Sym("x"), symb.Sym("y")
	result := symb.PowOf(symb.ProductOf(x, y), symb.Num(2))
	if result.String() != "x^2*y^2" {
		t.Errorf("want x^2*y^2, got %s", result.String())
	}
}

func TestPowerMergesNestedExponents(t *testing.T) {
	x := symb.Sym("x")
	result := symb.PowOf(symb.PowOf(x, symb.Num(2)), symb.Num(3))
	if result.String() != "x^6" {
		t.Errorf("want x^6, got %s", result.String())
	}
}

func TestPrinterNegativeLeadingTerm(t *testing.T) {
	x, y := symb.Sym("x"), symb.Sym("y")
	result := symb.SumOf(y, symb.ProductOf(symb.Num(-1), x))
	if result.String() != "-x+y" {
		t.Errorf("want -x+y, got %s", result.String())
	}
}

func TestPrinterNegativeOneFactor(t *testing.T) {
	x := symb.Sym("x")
	result := symb.ProductOf(symb.Num(-1), x)
	if result.String() != "-x" {
		t.Errorf("want -x, got %s", result.String())
	}
}
