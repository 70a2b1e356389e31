// SPDX-License-Identifier: MIT

// Package scalar - Scalar type, constructors & predicates.
//
// Purpose:
//   - Define the dual-variant Scalar value type (Rational | Real).
//   - Enforce the lowest-terms invariant unconditionally at construction.
//   - Keep variant dispatch explicit and centralized (kind tag).

package scalar

import (
	"fmt"
	"math/big"
)

// kind discriminates the active Scalar variant.
type kind uint8

const (
	kindRational kind = iota // exact fraction, lowest terms
	kindReal                 // IEEE-754 float64
)

// Scalar is one number in exactly one of two forms: an exact Rational
// (reduced numerator/denominator pair) or a floating Real.
//
// The zero value of Scalar is not valid; always use a constructor.
// Scalars are immutable: rat is never mutated after construction, so
// copies may safely share it.
type Scalar struct {
	k   kind     // active variant
	rat *big.Rat // non-nil iff k == kindRational; held in lowest terms
	val float64  // meaningful iff k == kindReal
}

// Rational returns an exact Scalar num/den, reduced by the greatest common
// divisor at construction. The sign ends up on the numerator and the
// denominator is positive (big.Rat normal form).
//
// Panics when den == 0 - a zero denominator is a programmer error, not a
// recoverable condition.
// Complexity: O(gcd) on the word lengths of num and den.
func Rational(num, den int64) Scalar {
	// Validate the one fatal precondition before touching big.Rat.
	if den == 0 {
		panic(fmt.Sprintf("scalar: Rational(%d,0): zero denominator", num))
	}

	// big.NewRat reduces to lowest terms and fixes the sign convention.
	return Scalar{k: kindRational, rat: big.NewRat(num, den)}
}

// RationalFromBig is Rational for wide (arbitrary-width) integer inputs.
// The inputs are copied; callers keep ownership of num and den.
//
// Panics when den is zero.
func RationalFromBig(num, den *big.Int) Scalar {
	if den.Sign() == 0 {
		panic(fmt.Sprintf("scalar: RationalFromBig(%s,0): zero denominator", num))
	}

	// SetFrac copies its arguments and renormalizes to lowest terms.
	return Scalar{k: kindRational, rat: new(big.Rat).SetFrac(num, den)}
}

// Real returns a floating Scalar holding v as-is, no normalization.
// Complexity: O(1).
func Real(v float64) Scalar {
	return Scalar{k: kindReal, val: v}
}

// FromInt converts an integer literal into the exact Rational v/1.
// Complexity: O(1).
func FromInt(v int64) Scalar { return Rational(v, 1) }

// FromFloat converts a float literal into a Real. Alias of Real with an
// intention-revealing name for literal-building call sites.
func FromFloat(v float64) Scalar { return Real(v) }

// IsRational reports whether the Rational variant is active.
// Complexity: O(1).
func (s Scalar) IsRational() bool { return s.k == kindRational }

// IsReal reports whether the Real variant is active.
// Complexity: O(1).
func (s Scalar) IsReal() bool { return s.k == kindReal }

// Num returns a copy of the reduced numerator (sign included).
// Panics when the Real variant is active - variant misuse is a programmer
// error.
func (s Scalar) Num() *big.Int {
	if s.k != kindRational {
		panic("scalar: Num: not a Rational")
	}

	return new(big.Int).Set(s.rat.Num())
}

// Den returns a copy of the reduced, always-positive denominator.
// Panics when the Real variant is active.
func (s Scalar) Den() *big.Int {
	if s.k != kindRational {
		panic("scalar: Den: not a Rational")
	}

	return new(big.Int).Set(s.rat.Denom())
}

// Equal reports variant-sensitive equality: same variant and same stored
// fields. A Rational and a Real denoting the same mathematical value are
// NOT equal; Real comparison follows IEEE (NaN never equals NaN).
// Complexity: O(1) for Real, O(len) word comparison for Rational.
func (s Scalar) Equal(other Scalar) bool {
	if s.k != other.k {
		return false
	}
	if s.k == kindReal {
		return s.val == other.val
	}

	// Both reduced, so Cmp == 0 iff numerators and denominators match.
	return s.rat.Cmp(other.rat) == 0
}

// fromRat wraps an already-normalized big.Rat into a Rational Scalar.
// Internal: callers must hand over ownership of r (it is stored, not
// copied) and must never mutate it afterwards.
func fromRat(r *big.Rat) Scalar {
	return Scalar{k: kindRational, rat: r}
}
