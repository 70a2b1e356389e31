// Package matrix_test contains unit tests for the gonum converters and
// their functional options.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
)

// TestToDenseExportsFloat64 verifies every cell is exported via Float64,
// including lossy Rational cells.
func TestToDenseExportsFloat64(t *testing.T) {
	m := matrix.From([][]scalar.Scalar{
		{scalar.Rational(1, 2), scalar.FromInt(3)},
		{scalar.Real(2.5), scalar.Real(-1.0)},
	})

	d := matrix.ToDense(m)

	rows, cols := d.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 2, cols)
	require.Equal(t, 0.5, d.At(0, 0)) // Rational exported as float
	require.Equal(t, 3.0, d.At(0, 1))
	require.Equal(t, 2.5, d.At(1, 0)) // Real exported as-is
	require.Equal(t, -1.0, d.At(1, 1))
}

// TestFromDenseDefaultsToRealCells verifies imports keep the Real
// variant unless rational cells are requested.
func TestFromDenseDefaultsToRealCells(t *testing.T) {
	d := mat.NewDense(1, 2, []float64{0.5, 2.0})

	m := matrix.FromDense(d)

	require.True(t, m.At(0, 0).IsReal()) // no silent re-approximation
	require.True(t, m.At(0, 0).Equal(scalar.Real(0.5)))
	require.True(t, m.At(0, 1).Equal(scalar.Real(2.0)))
}

// TestFromDenseWithRationalCells verifies the opt-in approximation path.
func TestFromDenseWithRationalCells(t *testing.T) {
	d := mat.NewDense(1, 3, []float64{0.5, 1.5, 2.0})

	m := matrix.FromDense(d, matrix.WithRationalCells())

	require.True(t, m.At(0, 0).Equal(scalar.Rational(1, 2))) // 0.5 → 1/2
	require.True(t, m.At(0, 1).Equal(scalar.Rational(3, 2))) // 1.5 → 3/2
	require.True(t, m.At(0, 2).Equal(scalar.Rational(2, 1))) // 2.0 → 2/1
}

// TestFromDenseWithMaxDenominator verifies the bound option narrows the
// search and rejects nonsensical values.
func TestFromDenseWithMaxDenominator(t *testing.T) {
	d := mat.NewDense(1, 1, []float64{1.5})

	// Bound 1 only reaches nearest integers: round(1.5) = 2.
	m := matrix.FromDense(d, matrix.WithRationalCells(), matrix.WithMaxDenominator(1))
	require.True(t, m.At(0, 0).Equal(scalar.Rational(2, 1)))

	require.Panics(t, func() { matrix.WithMaxDenominator(0) }) // bound < 1 is a programmer error
}

// TestRoundTripThroughDense verifies Matrix → gonum → Matrix preserves
// values (as Reals) for float-exact cells.
func TestRoundTripThroughDense(t *testing.T) {
	m := matrix.FromFloats([][]float64{{1, 2}, {3, 4}})

	back := matrix.FromDense(matrix.ToDense(m))

	require.True(t, back.Equal(m)) // identical Real cells
}
