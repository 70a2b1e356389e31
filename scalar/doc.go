// Package scalar implements the numeric tower used by the rest of the
// module: a Scalar is exactly one of two mutually exclusive variants,
//
//   - Rational — an exact fraction held in lowest terms (the numerator
//     carries the sign, the denominator is always positive and non-zero),
//   - Real — a plain IEEE-754 float64, stored as-is.
//
// The package provides:
//
//   - Constructors (Rational, RationalFromBig, Real) plus literal
//     conversions (FromInt → exact Rational over 1, FromFloat → Real).
//   - Arithmetic (Add, Sub, Mul, Div) with a single promotion rule per
//     operator: Rational⊕Rational stays exact; any Real operand promotes
//     the whole operation to floating point.
//   - Conversions between variants (ToRational, ToReal) and out of the
//     tower (Float64, Int64), where ToRational is a best-effort bounded
//     search over denominators 1..DefaultMaxApproxDenominator.
//
// Scalars are immutable value types: every operation produces a new
// Scalar, and the compound-assignment family (AddAssign & co) is defined
// purely as "compute new value, replace".
//
// Equality is variant-sensitive, not numerically normalized:
// Rational(2,1) and Real(2.0) denote the same mathematical value but are
// never Equal. This is a deliberate, tested property.
//
// Error policy: the package has no recoverable errors. A zero denominator
// (at construction or produced by dividing by a Rational zero) is a
// programmer error and panics with a "scalar:"-prefixed message.
package scalar
