// Package vector provides a 1-D, real-valued companion to the matrix
// package: a Vector is a sequence of scalar.Scalar values forced into the
// Real variant on construction and after every mutating operation.
//
// The vector package provides:
//
//   - Constructors: New (from Scalars, each converted ToReal) and the
//     FromInts/FromFloats literal builders.
//   - Dot and Cross products (Cross requires both operands to be 3-D).
//   - Elementwise Add/Sub and scalar Scale/Div, plus the in-place
//     compound family.
//   - Reals/Rationals per-element conversions for moving a whole vector
//     across the scalar tower.
//
// Vector is built only on scalar's public contract (ToReal, the four
// operators, literal conversions); it carries no invariants of its own
// beyond the Real forcing.
//
// Error policy matches the matrix package: shape violations reachable
// from caller data (length mismatch in Dot/Cross/Add/Sub) return the
// ErrDimensionMismatch sentinel, while out-of-range indexing panics as a
// programmer error.
package vector
