// SPDX-License-Identifier: MIT

// Package scalar - arithmetic kernels & the promotion rule.
//
// Purpose:
//   - Implement the four binary operators over every operand-pair shape.
//   - Centralize the promotion rule once per operator: two Rationals stay
//     exact; any Real operand converts the other side to float64 and the
//     whole operation runs in floating point.
//   - Define the compound-assignment family as "compute new, replace".

package scalar

import "math/big"

// newRat allocates a fresh accumulator for the exact operator paths.
// big.Rat operations renormalize to lowest terms, so every result
// re-establishes the gcd invariant.
func newRat() *big.Rat { return new(big.Rat) }

// Add returns s + other.
// Rational+Rational cross-multiplies and renormalizes through the
// lowest-terms constructor path; mixed or Real operands promote to Real.
// Total: never fails.
// Complexity: O(mul) on numerator word lengths for exact path, O(1) float.
func (s Scalar) Add(other Scalar) Scalar {
	// Exact path: both operands Rational.
	if s.k == kindRational && other.k == kindRational {
		return fromRat(newRat().Add(s.rat, other.rat))
	}

	// Promotion: at least one Real operand forces floating arithmetic.
	return Real(s.Float64() + other.Float64())
}

// Sub returns s - other, under the same promotion rule as Add.
func (s Scalar) Sub(other Scalar) Scalar {
	if s.k == kindRational && other.k == kindRational {
		return fromRat(newRat().Sub(s.rat, other.rat))
	}

	return Real(s.Float64() - other.Float64())
}

// Mul returns s * other. Exact path multiplies numerators and denominators
// directly, then renormalizes; mixed operands promote to Real.
func (s Scalar) Mul(other Scalar) Scalar {
	if s.k == kindRational && other.k == kindRational {
		return fromRat(newRat().Mul(s.rat, other.rat))
	}

	return Real(s.Float64() * other.Float64())
}

// Div returns s / other. The exact path cross-multiplies (num1*den2 over
// den1*num2) and renormalizes.
//
// Dividing by a Rational zero would construct a zero denominator, which
// violates the Rational invariant - it panics as a programmer error.
// Real division by zero follows IEEE semantics (±Inf or NaN).
func (s Scalar) Div(other Scalar) Scalar {
	if s.k == kindRational && other.k == kindRational {
		if other.rat.Sign() == 0 {
			panic("scalar: Div: division by zero Rational")
		}

		return fromRat(newRat().Quo(s.rat, other.rat))
	}

	return Real(s.Float64() / other.Float64())
}

// AddAssign replaces *s with *s + other. No distinct semantics from Add.
func (s *Scalar) AddAssign(other Scalar) { *s = s.Add(other) }

// SubAssign replaces *s with *s - other.
func (s *Scalar) SubAssign(other Scalar) { *s = s.Sub(other) }

// MulAssign replaces *s with *s * other.
func (s *Scalar) MulAssign(other Scalar) { *s = s.Mul(other) }

// DivAssign replaces *s with *s / other.
func (s *Scalar) DivAssign(other Scalar) { *s = s.Div(other) }
