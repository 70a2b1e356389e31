// SPDX-License-Identifier: MIT

// Package matrix - linear-algebra kernels.
//
// Purpose:
//   - Implement elementwise addition/subtraction, matrix multiplication,
//     scalar scaling/division and transposition over the Scalar contract.
//   - Keep fail-fast validation at the top of every fallible kernel and
//     uniform error wrapping via matrixErrorf.
//   - Preserve the binary-fallible / compound-fatal asymmetry.
//
// Numeric behavior follows the scalar promotion rule cell by cell: a
// matrix of Rationals stays exact under Add/Sub; Mul accumulates into a
// Real(0.0) cell, so products are always Real (see Determinant for the
// exactness-preserving accumulation).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
)

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opDeterminant = "Determinant"
)

// matrixErrorf wraps err with an operation tag, preserving the underlying
// sentinel for errors.Is. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes the elementwise combination of a and b with op, sharing
// validation and allocation between Add and Sub. A fresh Matrix is
// allocated; operands are not mutated.
func addSub(a, b *Matrix, op func(scalar.Scalar, scalar.Scalar) scalar.Scalar, tag string) (*Matrix, error) {
	// Validate shapes match.
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	// Single flat loop over the shared row-major layout.
	res := New(a.rows, a.cols)
	for i := range a.data {
		res.data[i] = op(a.data[i], b.data[i])
	}

	return res, nil
}

// Add returns the elementwise sum m + other as a new matrix, or
// ErrDimensionMismatch when the shapes differ.
// Complexity: O(rows*cols).
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	return addSub(m, other, scalar.Scalar.Add, opAdd)
}

// Sub returns the elementwise difference m - other as a new matrix, or
// ErrDimensionMismatch when the shapes differ.
// Complexity: O(rows*cols).
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	return addSub(m, other, scalar.Scalar.Sub, opSub)
}

// AddInPlace adds other into m's own cells. Shape mismatch here is a
// fatal precondition violation (panic), unlike the fallible binary Add -
// the asymmetry is intentional and documented in the package doc.
// Complexity: O(rows*cols).
func (m *Matrix) AddInPlace(other *Matrix) {
	if err := ValidateSameShape(m, other); err != nil {
		panic("matrix: AddInPlace: " + err.Error())
	}
	for i := range m.data {
		m.data[i] = m.data[i].Add(other.data[i])
	}
}

// SubInPlace subtracts other from m's own cells; panics on shape
// mismatch like AddInPlace.
// Complexity: O(rows*cols).
func (m *Matrix) SubInPlace(other *Matrix) {
	if err := ValidateSameShape(m, other); err != nil {
		panic("matrix: SubInPlace: " + err.Error())
	}
	for i := range m.data {
		m.data[i] = m.data[i].Sub(other.data[i])
	}
}

// Scale returns a new matrix with every cell multiplied by s. Always
// succeeds; cell results follow the scalar promotion rule.
// Complexity: O(rows*cols).
func (m *Matrix) Scale(s scalar.Scalar) *Matrix {
	res := New(m.rows, m.cols)
	for i := range m.data {
		res.data[i] = m.data[i].Mul(s)
	}

	return res
}

// Div returns a new matrix with every cell divided by s. Always succeeds
// structurally; division by a zero scalar follows Scalar's own division
// semantics (IEEE for Real, fatal for a Rational zero).
// Complexity: O(rows*cols).
func (m *Matrix) Div(s scalar.Scalar) *Matrix {
	res := New(m.rows, m.cols)
	for i := range m.data {
		res.data[i] = m.data[i].Div(s)
	}

	return res
}

// ScaleInPlace multiplies every cell of m by s in place.
func (m *Matrix) ScaleInPlace(s scalar.Scalar) {
	for i := range m.data {
		m.data[i] = m.data[i].Mul(s)
	}
}

// DivInPlace divides every cell of m by s in place.
func (m *Matrix) DivInPlace(s scalar.Scalar) {
	for i := range m.data {
		m.data[i] = m.data[i].Div(s)
	}
}

// Mul returns the matrix product m · other, or ErrDimensionMismatch
// unless m.Cols() == other.Rows(). Standard row-by-column dot-product
// accumulation; each accumulator starts at Real(0.0), so product cells
// are always Real.
// Complexity: O(rows(m) * cols(other) * cols(m)).
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	// Validate inner dimensions agree.
	if err := ValidateMulCompatible(m, other); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Fixed i→j→k order for determinism.
	res := New(m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < other.cols; j++ {
			sum := scalar.Real(0.0)
			for k := 0; k < m.cols; k++ {
				sum = sum.Add(m.data[i*m.cols+k].Mul(other.data[k*other.cols+j]))
			}
			res.data[i*other.cols+j] = sum
		}
	}

	return res, nil
}

// Transpose returns a new cols×rows matrix with cell (j,i) set to the
// original (i,j). Always succeeds; Transpose(Transpose(m)) equals m.
// Complexity: O(rows*cols).
func (m *Matrix) Transpose() *Matrix {
	res := New(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			res.data[j*res.cols+i] = m.data[i*m.cols+j]
		}
	}

	return res
}
