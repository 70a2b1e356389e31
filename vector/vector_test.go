// Package vector_test contains unit tests for the real-forced Vector
// collaborator.
package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// TestConstructionForcesReal verifies every constructor stores Real
// elements, whatever the input variant.
func TestConstructionForcesReal(t *testing.T) {
	v := vector.New(scalar.Rational(1, 2), scalar.Real(2.0), scalar.FromInt(3))

	require.Equal(t, 3, v.Dim())
	for i := 0; i < v.Dim(); i++ {
		require.True(t, v.At(i).IsReal()) // Rational inputs were converted
	}
	require.Equal(t, 0.5, v.At(0).Float64()) // 1/2 became 0.5

	ints := vector.FromInts(1, 2, 3)
	require.True(t, ints.At(0).IsReal()) // integer literals forced Real too
}

// TestDotProduct verifies the reference dot product <1,2,3>·<4,5,6> = 32.
func TestDotProduct(t *testing.T) {
	a := vector.FromInts(1, 2, 3)
	b := vector.FromInts(4, 5, 6)

	dot, err := a.Dot(b)
	require.NoError(t, err)
	require.True(t, dot.IsReal())            // Real accumulation
	require.Equal(t, 32.0, dot.Float64())    // 4 + 10 + 18
}

// TestDotDimensionMismatchFails ensures length differences are a
// recoverable error.
func TestDotDimensionMismatchFails(t *testing.T) {
	_, err := vector.FromInts(1, 2).Dot(vector.FromInts(1, 2, 3))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

// TestCrossProduct verifies the reference cross product
// <1,2,3>×<4,5,6> = <-3,6,-3>.
func TestCrossProduct(t *testing.T) {
	a := vector.FromInts(1, 2, 3)
	b := vector.FromInts(4, 5, 6)

	cross, err := a.Cross(b)
	require.NoError(t, err)
	require.True(t, cross.Equal(vector.FromInts(-3, 6, -3)))
}

// TestCrossRequiresThreeDimensions ensures non-3-D operands fail with
// the sentinel.
func TestCrossRequiresThreeDimensions(t *testing.T) {
	_, err := vector.FromInts(1, 2).Cross(vector.FromInts(3, 4))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)

	_, err = vector.FromInts(1, 2, 3).Cross(vector.FromInts(1, 2, 3, 4))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

// TestAddSub verifies the elementwise binary forms and their mismatch
// behavior.
func TestAddSub(t *testing.T) {
	a := vector.FromInts(1, 2, 3)
	b := vector.FromInts(4, 5, 6)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.True(t, sum.Equal(vector.FromInts(5, 7, 9)))

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.True(t, diff.Equal(vector.FromInts(-3, -3, -3)))

	_, err = a.Add(vector.FromInts(1))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

// TestScaleDiv verifies elementwise scalar multiply/divide with Real
// forcing of the scalar operand.
func TestScaleDiv(t *testing.T) {
	v := vector.FromInts(1, 2, 3)

	doubled := v.Scale(scalar.Rational(2, 1)) // Rational scalar is forced Real
	require.True(t, doubled.Equal(vector.FromInts(2, 4, 6)))

	halved := doubled.Div(scalar.Real(2.0))
	require.True(t, halved.Equal(v))
}

// TestAssignFamily verifies the in-place forms, including the fatal
// length-mismatch policy.
func TestAssignFamily(t *testing.T) {
	v := vector.FromInts(1, 2, 3)

	v.AddAssign(vector.FromInts(4, 5, 6))
	require.True(t, v.Equal(vector.FromInts(5, 7, 9)))

	v.SubAssign(vector.FromInts(4, 5, 6))
	require.True(t, v.Equal(vector.FromInts(1, 2, 3)))

	v.ScaleAssign(scalar.Real(2.0))
	require.True(t, v.Equal(vector.FromInts(2, 4, 6)))

	v.DivAssign(scalar.Real(2.0))
	require.True(t, v.Equal(vector.FromInts(1, 2, 3)))

	require.Panics(t, func() { v.AddAssign(vector.FromInts(1)) }) // compound family is fatal on mismatch
	require.Panics(t, func() { v.SubAssign(vector.FromInts(1)) })
}

// TestSetForcesRealAndBounds verifies Set conversion and the fatal
// indexing policy.
func TestSetForcesRealAndBounds(t *testing.T) {
	v := vector.FromInts(1, 2, 3)

	v.Set(1, scalar.Rational(1, 2)) // Rational write is forced Real
	require.True(t, v.At(1).IsReal())
	require.Equal(t, 0.5, v.At(1).Float64())

	require.Panics(t, func() { v.At(3) })                     // out of range read
	require.Panics(t, func() { v.Set(-1, scalar.Real(0)) })   // out of range write
}

// TestRationalsRoundTrip verifies the per-element tower conversions.
func TestRationalsRoundTrip(t *testing.T) {
	v := vector.FromFloats(0.5, 1.5)

	rats := v.Rationals()
	require.True(t, rats.At(0).IsRational())
	require.True(t, rats.At(0).Equal(scalar.Rational(1, 2)))
	require.True(t, rats.At(1).Equal(scalar.Rational(3, 2)))

	back := rats.Reals()
	require.True(t, back.Equal(v)) // exact for halves
}

// TestString verifies the comma-separated rendering.
func TestString(t *testing.T) {
	require.Equal(t, "[1, 2, 3]", vector.FromInts(1, 2, 3).String())
	require.Equal(t, "[]", vector.New().String())
	require.Equal(t, "[0.5]", vector.FromFloats(0.5).String())
}
