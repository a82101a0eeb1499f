// Command casdemo walks through a handful of canonicalization and
// differentiation examples, printing the expression before and after
// simplification.
//
// Run: go run ./cmd/casdemo
package main

import (
	"fmt"

	"github.com/kjardine/symb/symb"
)

func section(title string) {
	fmt.Printf("\n=== %s ===\n", title)
}

func main() {
	x := symb.Sym("x")
	y := symb.Sym("y")
	z := symb.Sym("z")

	section("Associativity and ordering")
	a := symb.ProductOf(symb.SumOf(x, y), z)
	fmt.Println("(x+y)*z            =", a.String())
	halfZSquaredSum := symb.ProductOf(symb.PowOf(symb.PowOf(a, symb.Num(2)), symb.Num(1)), symb.Frac(1, 2))
	fmt.Println("((x+y)*z)^2/2      =", halfZSquaredSum.String())

	section("Like-term and like-base collection")
	fmt.Println("x + x              =", symb.SumOf(x, x).String())
	fmt.Println("2x + 3x + x        =", symb.SumOf(symb.ProductOf(symb.Num(2), x), symb.ProductOf(symb.Num(3), x), x).String())
	fmt.Println("(1/2 + 1/3) - 5/6  =", symb.SumOf(symb.Frac(1, 2), symb.Frac(1, 3), symb.ProductOf(symb.Num(-1), symb.Frac(5, 6))).String())

	section("Exact integer power")
	fmt.Println("2^10               =", symb.PowOf(symb.Num(2), symb.Num(10)).String())
	fmt.Println("0^-1               =", symb.PowOf(symb.Num(0), symb.Num(-1)).String())

	section("Unevaluated functions")
	fx := symb.FuncOf("f", x)
	fmt.Println("f(x)^101           =", symb.PowOf(fx, symb.Num(101)).String())

	section("Differentiation")
	fmt.Println("diff(f(x)^101, x)  =", symb.Diff(symb.PowOf(fx, symb.Num(101)), "x").String())
	fmt.Println("diff(x*x, x)       =", symb.Diff(symb.ProductOf(x, x), "x").String())
}
