// SPDX-License-Identifier: MIT

// Package scalar - human-readable rendering.
//
// The exact format is a compatibility surface: tooling and tests parse
// printed output, so keep it stable.

package scalar

import "strconv"

// String implements fmt.Stringer.
//   - Rational with denominator 1 renders as the bare integer ("3").
//   - Any other Rational renders as "numerator/denominator" ("3/2").
//   - Real renders with Go's shortest round-trip float formatting, so
//     Real(2.0) prints "2" and Real(0.5) prints "0.5".
//
// Complexity: O(digits).
func (s Scalar) String() string {
	if s.k == kindRational {
		// RatString prints "a/b", or just "a" when b == 1.
		return s.rat.RatString()
	}

	return strconv.FormatFloat(s.val, 'g', -1, 64)
}
