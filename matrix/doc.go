// Package matrix provides dense, row-major matrices of scalar.Scalar
// cells with elementwise arithmetic, matrix multiplication, transposition
// and an exact recursive cofactor determinant.
//
// The matrix package provides:
//
//   - Matrix, a rows×cols grid backed by a flat row-major slice of length
//     rows*cols, exclusively owned by its instance (no aliasing).
//   - Constructors: New (zero-filled with Real(0.0)), From (rectangular
//     Scalar literal) and the ergonomic FromInts/FromFloats builders.
//   - Kernels: Add, Sub, Mul, Scale, Div, Transpose, Determinant, plus
//     the in-place compound family (AddInPlace & co).
//   - Converters to and from gonum's mat.Dense for interop with the
//     wider numeric ecosystem (lossy: gonum is float64-only).
//
// Error policy (two classes, deliberately asymmetric):
//
//   - Recoverable: shape violations reachable from caller-supplied data.
//     Add, Sub, Mul and Determinant return ErrDimensionMismatch, matched
//     via errors.Is; it is the package's only sentinel.
//   - Fatal: precondition violations are programmer errors and panic with
//     a "matrix:"-prefixed message - out-of-range At/Set, empty or ragged
//     From input, non-positive New dimensions, and shape mismatch in the
//     in-place compound family. The compound family being fatal where the
//     binary family is fallible is an intentional, preserved asymmetry.
//
// All operations are deterministic pure computation over in-memory
// values; fixed loop orders, no concurrency, no I/O.
package matrix
