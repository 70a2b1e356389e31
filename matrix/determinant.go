// SPDX-License-Identifier: MIT

// Package matrix - recursive cofactor determinant.
//
// Purpose:
//   - Implement textbook Laplace expansion along the first row: no
//     pivoting, no row reduction, O(n!) time - acceptable only for the
//     small matrices this package targets.
//   - Preserve exactness: the running sum starts at the Rational zero and
//     the alternating sign is applied as an exact Rational, so a matrix
//     of Rational cells yields a Rational determinant with no floating
//     rounding at any intermediate step.

package matrix

import "github.com/katalvlaran/linalg/scalar"

// Determinant computes the determinant by recursive cofactor expansion
// along the first row, or returns ErrDimensionMismatch when the matrix is
// not square.
//
// Implementation:
//   - Stage 1 (Validate): ValidateSquare; non-square fails fast.
//   - Stage 2 (Base cases): 1×1 returns the single cell; 2×2 uses the
//     direct a*d - b*c formula (equivalent to general expansion at that
//     size, without recursion).
//   - Stage 3 (Expand): for each column i of row 0, delete row 0 and
//     column i to form the minor, recurse, multiply by the (0,i) cell and
//     the alternating sign (+ for even i, - for odd i), and accumulate
//     left to right.
//
// Any error from a recursive minor call is propagated, though minors are
// square by construction so that path is unreachable in practice.
// Complexity: O(n!) time, O(n²) memory per recursion level.
func (m *Matrix) Determinant() (scalar.Scalar, error) {
	// Validate squareness.
	if err := ValidateSquare(m); err != nil {
		return scalar.Real(0.0), matrixErrorf(opDeterminant, err)
	}

	// Base case: the determinant of a 1×1 matrix is its single cell.
	if m.rows == 1 {
		return m.data[0], nil
	}

	// Special case: direct 2×2 formula a*d - b*c.
	if m.rows == 2 {
		return m.data[0].Mul(m.data[3]).Sub(m.data[1].Mul(m.data[2])), nil
	}

	// General case: expand along row 0, left to right.
	// The accumulator and sign are exact Rationals so that all-Rational
	// matrices keep exactness through every intermediate value.
	det := scalar.FromInt(0)
	negOne := scalar.FromInt(-1)
	for i := 0; i < m.cols; i++ {
		sub, err := m.minor(0, i).Determinant()
		if err != nil {
			return scalar.Real(0.0), err
		}
		term := m.data[i].Mul(sub) // row-0 cell (0,i) times its minor's determinant
		if i%2 == 1 {
			term = term.Mul(negOne) // alternating cofactor sign
		}
		det = det.Add(term)
	}

	return det, nil
}

// minor returns the (rows-1)×(cols-1) submatrix formed by deleting
// delRow and delCol. Internal: callers guarantee rows ≥ 2 and in-range
// indices.
// Complexity: O(rows*cols).
func (m *Matrix) minor(delRow, delCol int) *Matrix {
	res := New(m.rows-1, m.cols-1)
	var dst int
	for i := 0; i < m.rows; i++ {
		if i == delRow {
			continue
		}
		for j := 0; j < m.cols; j++ {
			if j == delCol {
				continue
			}
			res.data[dst] = m.data[i*m.cols+j]
			dst++
		}
	}

	return res
}
