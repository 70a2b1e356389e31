// SPDX-License-Identifier: MIT

// Package matrix - shape validators.
//
// Purpose:
//   - Centralize every shape precondition behind one helper per rule so
//     the kernels share identical semantics and error text.
//   - Validators return the plain sentinel wrapped with the validator
//     tag; kernels wrap again with the operation tag via matrixErrorf.

package matrix

import "fmt"

// validatorErrorf provides consistent error tagging for all validation
// failures.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSameShape accepts operands with identical rows and cols;
// otherwise it returns ErrDimensionMismatch. Used by Add/Sub and the
// compound in-place family.
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare accepts square matrices; otherwise it returns
// ErrDimensionMismatch. Used by Determinant.
// Complexity: O(1).
func ValidateSquare(m *Matrix) error {
	if m.rows != m.cols {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible accepts operand pairs whose inner dimensions
// agree (a.Cols() == b.Rows()); otherwise it returns
// ErrDimensionMismatch. Used by Mul.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}
