// Package matrix_test contains unit tests for the recursive cofactor
// determinant, including its exactness guarantees.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
)

// TestDeterminant1x1 verifies the base case returns the single cell.
func TestDeterminant1x1(t *testing.T) {
	m := matrix.FromInts([][]int64{{7}})

	det, err := m.Determinant()
	require.NoError(t, err)
	require.True(t, det.Equal(scalar.Rational(7, 1))) // the cell itself, variant preserved
}

// TestDeterminant2x2 verifies the direct a*d - b*c formula on the spec's
// reference matrix: det [[1,2],[3,4]] = -2.
func TestDeterminant2x2(t *testing.T) {
	m := matrix.FromInts([][]int64{{1, 2}, {3, 4}})

	det, err := m.Determinant()
	require.NoError(t, err)
	require.True(t, det.IsRational())                  // integer literals stay exact
	require.True(t, det.Equal(scalar.Rational(-2, 1))) // 1*4 - 2*3 = -2
}

// TestDeterminant3x3Singular verifies cofactor expansion on the singular
// reference matrix: det [[1..9]] = 0, exactly.
func TestDeterminant3x3Singular(t *testing.T) {
	m := matrix.FromInts([][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	det, err := m.Determinant()
	require.NoError(t, err)
	require.True(t, det.IsRational())                 // exactness preserved through expansion
	require.True(t, det.Equal(scalar.Rational(0, 1))) // exactly zero, not ~1e-16
}

// TestDeterminant4x4 exercises two recursion levels against a known
// value.
func TestDeterminant4x4(t *testing.T) {
	m := matrix.FromInts([][]int64{
		{2, 0, 0, 1},
		{0, 1, 0, 0},
		{1, 0, 3, 0},
		{0, 0, 0, 1},
	})

	det, err := m.Determinant()
	require.NoError(t, err)
	require.True(t, det.IsRational())
	require.True(t, det.Equal(scalar.Rational(6, 1))) // block-triangular-ish: 2*1*3*1
}

// TestDeterminantRationalExactness verifies a fraction-valued matrix
// yields the exact rational determinant with no floating rounding.
func TestDeterminantRationalExactness(t *testing.T) {
	m := matrix.From([][]scalar.Scalar{
		{scalar.Rational(1, 2), scalar.Rational(1, 3), scalar.Rational(0, 1)},
		{scalar.Rational(1, 4), scalar.Rational(1, 5), scalar.Rational(1, 6)},
		{scalar.Rational(0, 1), scalar.Rational(1, 7), scalar.Rational(1, 8)},
	})

	det, err := m.Determinant()
	require.NoError(t, err)
	require.True(t, det.IsRational()) // every intermediate stayed Rational

	// Expansion along row 0:
	//   1/2*(1/40 - 1/42) - 1/3*(1/32 - 0) + 0 = 1/1680 - 1/96 = -11/1120.
	require.True(t, det.Equal(scalar.Rational(-11, 1120)))
}

// TestDeterminantRealMatrix verifies float-valued matrices flow through
// the same algorithm in floating point.
func TestDeterminantRealMatrix(t *testing.T) {
	m := matrix.FromFloats([][]float64{
		{2, 0, 0},
		{0, 0.5, 0},
		{0, 0, 4},
	})

	det, err := m.Determinant()
	require.NoError(t, err)
	require.True(t, det.IsReal())          // any Real cell promotes the expansion
	require.Equal(t, 4.0, det.Float64())   // 2 * 0.5 * 4
}

// TestDeterminantNonSquareFails ensures non-square inputs return
// ErrDimensionMismatch rather than panicking.
func TestDeterminantNonSquareFails(t *testing.T) {
	m := matrix.FromInts([][]int64{{1, 2, 3}, {4, 5, 6}}) // 2x3

	_, err := m.Determinant()
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
