// SPDX-License-Identifier: MIT

// Package matrix - converters between Matrix and gonum's mat.Dense.
//
// Purpose:
//   - Lightweight adapters for exporting matrices to the wider float64
//     ecosystem (decompositions, plotting, solvers) and importing results
//     back into the Scalar tower.
//   - Export is lossy by design: gonum is float64-only, so Rational cells
//     go through Float64. Import defaults to Real cells; rational
//     re-approximation is opt-in via options.

package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/scalar"
)

// ToDense exports m into a freshly allocated gonum mat.Dense, converting
// every cell with Float64. Rational cells lose exactness here; that is
// the price of the float64-only interop surface.
// Complexity: O(rows*cols).
func ToDense(m *Matrix) *mat.Dense {
	d := mat.NewDense(m.rows, m.cols, nil)
	for i := 0; i < m.rows; i++ { // fixed i→j order
		for j := 0; j < m.cols; j++ {
			d.Set(i, j, m.data[i*m.cols+j].Float64())
		}
	}

	return d
}

// FromDense imports a gonum mat.Dense into a new Matrix. Cells are Real
// by default; WithRationalCells approximates each value as an exact
// fraction through the bounded denominator search (WithMaxDenominator
// tunes the bound, default DefaultMaxDenominator).
//
// Panics when d is empty (0×0), mirroring the From literal precondition.
// Complexity: O(rows*cols), times the approximation bound when rational
// cells are requested.
func FromDense(d *mat.Dense, opts ...Option) *Matrix {
	o := gatherOptions(opts...)

	rows, cols := d.Dims()
	if rows == 0 || cols == 0 {
		panic("matrix: FromDense: empty matrix")
	}

	res := New(rows, cols)
	for i := 0; i < rows; i++ { // fixed i→j order
		for j := 0; j < cols; j++ {
			v := d.At(i, j)
			if o.rationalCells {
				res.data[i*cols+j] = scalar.Approximate(v, o.maxDen)
			} else {
				res.data[i*cols+j] = scalar.Real(v)
			}
		}
	}

	return res
}
