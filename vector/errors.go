// SPDX-License-Identifier: MIT
// Package vector: sentinel error set. Operations return this sentinel
// wrapped with operation context; tests match it via errors.Is.

package vector

import "errors"

// ErrDimensionMismatch indicates incompatible vector lengths: Add, Sub
// and Dot on different dimensions, or Cross on operands that are not
// both 3-dimensional. It is the sole recoverable error kind in this
// package.
var ErrDimensionMismatch = errors.New("vector: dimension mismatch")
