// Package rational implements the field of fractions over bigint.Int:
// exact rational arithmetic kept, at every step, in lowest terms with
// a non-negative denominator.
package rational

import (
	"errors"
	"fmt"

	"github.com/kjardine/symb/bigint"
)

// ErrDomain is returned by Pow when asked to raise a rational base to
// a non-integer rational exponent — the operation has no exact
// representation in this field and the caller must decide what to do
// (the simplifier never reaches it; it guards with IsInt first).
var ErrDomain = errors.New("rational: exponent is not integer-valued")

// Rat is a normalized fraction: gcd(|num|, denom) == 1 and denom > 0.
// The zero value has a zero denominator and is not a normalized Rat;
// use Zero for 0/1.
type Rat struct {
	num, denom bigint.Int
}

// Zero is the additive identity 0/1.
var Zero = Rat{num: bigint.Zero, denom: bigint.One}

// One is the multiplicative identity 1/1.
var One = New(bigint.One, bigint.One)

// New builds a Rat from a numerator and denominator, normalizing it to
// lowest terms with a positive denominator. Panics if denom is zero.
func New(num, denom bigint.Int) Rat {
	if denom.IsZero() {
		panic("rational: zero denominator")
	}
	return normalize(num, denom)
}

// FromInt lifts an integer into the field of fractions.
func FromInt(n bigint.Int) Rat { return Rat{num: n, denom: bigint.One} }

// FromInt64 builds a Rat from a machine integer.
func FromInt64(n int64) Rat { return FromInt(bigint.FromInt64(n)) }

// FromFrac64 builds a Rat from a pair of machine integers.
func FromFrac64(num, denom int64) Rat {
	return New(bigint.FromInt64(num), bigint.FromInt64(denom))
}

func normalize(num, denom bigint.Int) Rat {
	if denom.Sign() < 0 {
		num, denom = num.Neg(), denom.Neg()
	}
	g := bigint.GCD(num, denom)
	if !g.IsZero() && g.Cmp(bigint.One) != 0 {
		num, denom = num.Quo(g), denom.Quo(g)
	}
	return Rat{num: num, denom: denom}
}

// Num returns the numerator (carries the sign).
func (r Rat) Num() bigint.Int { return r.num }

// Denom returns the denominator (always positive).
func (r Rat) Denom() bigint.Int { return r.denom }

// IsInt reports whether r has an exact integer value.
func (r Rat) IsInt() bool { return r.denom.Cmp(bigint.One) == 0 }

// IsZero reports whether r is the additive identity.
func (r Rat) IsZero() bool { return r.num.IsZero() }

// Sign returns -1, 0, or +1 according to the sign of r.
func (r Rat) Sign() int { return r.num.Sign() }

// Add returns r+o.
func (r Rat) Add(o Rat) Rat {
	return normalize(r.num.Mul(o.denom).Add(o.num.Mul(r.denom)), r.denom.Mul(o.denom))
}

// Sub returns r-o.
func (r Rat) Sub(o Rat) Rat {
	return normalize(r.num.Mul(o.denom).Sub(o.num.Mul(r.denom)), r.denom.Mul(o.denom))
}

// Mul returns r*o.
func (r Rat) Mul(o Rat) Rat {
	return normalize(r.num.Mul(o.num), r.denom.Mul(o.denom))
}

// Quo returns r/o. Panics if o is zero.
func (r Rat) Quo(o Rat) Rat {
	if o.IsZero() {
		panic("rational: division by zero")
	}
	return normalize(r.num.Mul(o.denom), r.denom.Mul(o.num))
}

// Neg returns -r.
func (r Rat) Neg() Rat { return Rat{num: r.num.Neg(), denom: r.denom} }

// Cmp returns a strong ordering of r against o via cross-multiplied
// integer comparison.
func (r Rat) Cmp(o Rat) int { return r.num.Mul(o.denom).Cmp(o.num.Mul(r.denom)) }

// Equal reports whether r and o denote the same value.
func (r Rat) Equal(o Rat) bool { return r.Cmp(o) == 0 }

// PowInt raises r to an integer power n (n may be negative). Panics if
// r is zero and n is negative — callers must guard 0^(negative)
// themselves, since that case has no value in this field (the
// simplifier reports it as Undefined rather than calling PowInt).
func (r Rat) PowInt(n bigint.Int) Rat {
	if n.Sign() < 0 {
		if r.IsZero() {
			panic("rational: zero raised to a negative power")
		}
		return New(r.denom, r.num).PowInt(n.Neg())
	}
	return normalize(bigint.Pow(r.num, n), bigint.Pow(r.denom, n))
}

// Pow raises r to a rational power exp. exp must be integer-valued
// (exp.Denom() == 1) — any other exponent returns ErrDomain, since no
// attempt is made to extract radicals.
func (r Rat) Pow(exp Rat) (Rat, error) {
	if !exp.IsInt() {
		return Rat{}, fmt.Errorf("%w: %s", ErrDomain, exp.String())
	}
	return r.PowInt(exp.Num()), nil
}

// String renders r as "n" when the denominator is 1, else "n/d" with
// d > 0.
func (r Rat) String() string {
	if r.IsInt() {
		return r.num.String()
	}
	return r.num.String() + "/" + r.denom.String()
}
