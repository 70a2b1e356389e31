// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Operations return
// these sentinels (wrapped with operation context via matrixErrorf) and
// tests check them via errors.Is. No operation returns an ad-hoc error.
// Panics are reserved for programmer errors (bounds, malformed literals,
// in-place shape mismatch) per the package doc.

package matrix

import "errors"

// ErrDimensionMismatch indicates incompatible shapes between operands:
// Add/Sub on different shapes, Mul where a.Cols() != b.Rows(), or
// Determinant on a non-square matrix. It is the sole recoverable error
// kind in this package.
var ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
