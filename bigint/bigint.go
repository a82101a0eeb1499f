// Package bigint provides an arbitrary-precision signed integer with a
// strong total order and the arithmetic the exact-rational layer above
// it needs: truncated division, sign, gcd, and integer power.
//
// The limb arithmetic itself is delegated to math/big.Int — the
// arbitrary-precision bridge is treated as an external collaborator,
// and math/big is the standard way a Go program reaches it. Int adds
// the value semantics, truncated-division convention, and the
// negative-exponent contract the symbolic core relies on.
package bigint

import "math/big"

// Int is an arbitrary-precision signed integer with value semantics:
// copying an Int copies its value, never its backing storage.
type Int struct {
	v big.Int
}

// Zero is the additive identity. The zero value of Int is also valid
// and equal to Zero.
var Zero = Int{}

// One is the multiplicative identity.
var One = FromInt64(1)

// FromInt64 constructs an Int from a machine integer.
func FromInt64(n int64) Int {
	var i Int
	i.v.SetInt64(n)
	return i
}

// FromUint64 constructs an Int from an unsigned machine integer.
func FromUint64(n uint64) Int {
	var i Int
	i.v.SetUint64(n)
	return i
}

// FromString parses a base-10 textual representation. ok is false if
// s is not a valid decimal integer.
func FromString(s string) (i Int, ok bool) {
	_, success := i.v.SetString(s, 10)
	return i, success
}

// Copy returns a deep copy of x; mutating the result never affects x.
func (x Int) Copy() Int {
	var out Int
	out.v.Set(&x.v)
	return out
}

// String renders x in base-10, with a leading '-' if negative.
func (x Int) String() string { return x.v.String() }

// Neg returns -x.
func (x Int) Neg() Int {
	var out Int
	out.v.Neg(&x.v)
	return out
}

// Add returns x+y.
func (x Int) Add(y Int) Int {
	var out Int
	out.v.Add(&x.v, &y.v)
	return out
}

// Sub returns x-y.
func (x Int) Sub(y Int) Int {
	var out Int
	out.v.Sub(&x.v, &y.v)
	return out
}

// Mul returns x*y.
func (x Int) Mul(y Int) Int {
	var out Int
	out.v.Mul(&x.v, &y.v)
	return out
}

// Quo returns the truncated quotient x/y: the result rounds toward
// zero. Panics if y is zero, matching math/big.Int.Quo.
func (x Int) Quo(y Int) Int {
	var out Int
	out.v.Quo(&x.v, &y.v)
	return out
}

// Rem returns the truncated remainder of x/y; the result has the sign
// of x (the dividend), matching math/big.Int.Rem. Panics if y is zero.
func (x Int) Rem(y Int) Int {
	var out Int
	out.v.Rem(&x.v, &y.v)
	return out
}

// Sign returns -1, 0, or +1 according to the sign of x.
func (x Int) Sign() int { return x.v.Sign() }

// Cmp returns a strong ordering of x against y: negative if x<y, zero
// if x==y, positive if x>y.
func (x Int) Cmp(y Int) int { return x.v.Cmp(&y.v) }

// CmpInt64 compares x against a machine integer.
func (x Int) CmpInt64(y int64) int {
	var other big.Int
	other.SetInt64(y)
	return x.v.Cmp(&other)
}

// IsZero reports whether x is the additive identity.
func (x Int) IsZero() bool { return x.v.Sign() == 0 }

// GCD returns the non-negative greatest common divisor of x and y.
// GCD(0, 0) is 0.
func GCD(x, y Int) Int {
	var ax, ay, out big.Int
	ax.Abs(&x.v)
	ay.Abs(&y.v)
	out.GCD(nil, nil, &ax, &ay)
	return Int{v: out}
}

// Pow returns base**exp using square-and-multiply. For exp < 0 the
// result is not representable as an Int and Pow returns Zero — callers
// needing negative exponents (rational.Rat.Pow) must invert the base
// before delegating here; this contract is never reached directly by
// the simplifier.
func Pow(base Int, exp Int) Int {
	if exp.Sign() < 0 {
		return Zero
	}
	var out big.Int
	out.Exp(&base.v, &exp.v, nil)
	return Int{v: out}
}

// PowInt64 is Pow with a machine-integer exponent.
func PowInt64(base Int, exp int64) Int {
	return Pow(base, FromInt64(exp))
}
