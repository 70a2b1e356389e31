// SPDX-License-Identifier: MIT

// Package scalar - variant conversions & numeric extraction.
//
// Purpose:
//   - ToRational / ToReal move a Scalar between variants (identity when
//     the target variant is already active).
//   - Float64 / Int64 leave the tower entirely.
//   - Approximate is the bounded float→fraction search shared by
//     ToRational and external callers that need a different bound.

package scalar

import (
	"fmt"
	"math"
	"math/big"
)

// DefaultMaxApproxDenominator bounds the denominator search used by
// ToRational. The value 100 is a fixed compatibility constant, not a
// mathematical law: printed outputs of existing tooling depend on it.
const DefaultMaxApproxDenominator = 100

// ToRational returns s unchanged when it is already Rational. A Real is
// approximated as a fraction by the bounded search of Approximate with
// DefaultMaxApproxDenominator. This is best-effort, not exact inversion:
// the search never looks past denominator 100 and is not guaranteed to
// reproduce the original float bit-for-bit.
func (s Scalar) ToRational() Scalar {
	if s.k == kindRational {
		return s
	}

	return Approximate(s.val, DefaultMaxApproxDenominator)
}

// ToReal returns s unchanged when it is already Real. A Rational is
// converted by floating division numerator/denominator, which may lose
// precision for very wide numerators or denominators.
func (s Scalar) ToReal() Scalar {
	if s.k == kindReal {
		return s
	}

	return Real(ratFloat(s.rat))
}

// Approximate searches denominators 1..maxDen for the fraction closest to
// v, starting from the nearest integer (denominator 1) as the initial
// best. For each candidate denominator the numerator is the nearest
// integer to v*den; the candidate with the smallest absolute error wins,
// earlier denominators winning ties.
//
// Panics when maxDen < 1 (programmer error).
// Complexity: O(maxDen).
func Approximate(v float64, maxDen int64) Scalar {
	// Validate the bound; a non-positive bound is nonsensical.
	if maxDen < 1 {
		panic(fmt.Sprintf("scalar: Approximate: max denominator %d < 1", maxDen))
	}

	// Stage 1: initial best is the nearest integer over 1.
	bestNum := int64(math.Round(v))
	bestDen := int64(1)
	bestErr := math.Abs(v - float64(bestNum))

	// Stage 2: scan remaining denominators, keep the smallest error seen.
	for den := int64(2); den <= maxDen; den++ {
		num := int64(math.Round(v * float64(den)))
		e := math.Abs(v - float64(num)/float64(den))
		if e < bestErr {
			bestNum, bestDen, bestErr = num, den, e
		}
	}

	return Rational(bestNum, bestDen)
}

// Float64 extracts the numeric value: a Rational divides numerator by
// denominator in floating point, a Real is returned as-is.
func (s Scalar) Float64() float64 {
	if s.k == kindRational {
		return ratFloat(s.rat)
	}

	return s.val
}

// Int64 extracts a truncated integer: a Rational performs truncating
// integer division numerator/denominator, a Real is cast with truncation
// toward zero.
func (s Scalar) Int64() int64 {
	if s.k == kindRational {
		// Quo truncates toward zero, matching integer division semantics.
		return new(big.Int).Quo(s.rat.Num(), s.rat.Denom()).Int64()
	}

	return int64(s.val)
}

// ratFloat is the single float-conversion point for the Rational variant.
func ratFloat(r *big.Rat) float64 {
	f, _ := r.Float64() // nearest float64; exact flag not needed here

	return f
}
