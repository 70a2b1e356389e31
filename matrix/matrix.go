// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & cell accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula row*cols + col.
//   - Enforce the fatal-precondition policy at the cell surface: At/Set
//     validate indices and panic on violation (a raw flat index could
//     silently alias an in-range cell otherwise).
//   - Keep algorithmic determinism (fixed loop orders everywhere).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linalg/scalar"
)

// Formatting literals for String. The exact format is a compatibility
// surface: one line per row, cells space-separated, bracket-delimited.
const (
	fmtRowOpen  = "[ "
	fmtRowClose = "]\n"
	fmtCellSep  = " "
)

// Matrix is a dense rows×cols grid of Scalars in row-major order.
// data always satisfies len(data) == rows*cols with rows ≥ 1 and
// cols ≥ 1; the backing slice is exclusively owned by its Matrix.
type Matrix struct {
	rows, cols int
	data       []scalar.Scalar // flat row-major storage, offset = row*cols + col
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New creates a rows×cols matrix with every cell initialized to
// Real(0.0).
//
// Panics unless rows ≥ 1 and cols ≥ 1 (programmer error).
// Complexity: O(rows*cols) time and memory.
func New(rows, cols int) *Matrix {
	// Validate shape; zero-sized matrices are not constructible.
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("matrix: New(%d,%d): dimensions must be >= 1", rows, cols))
	}

	// Allocate the flat buffer and fill with the Real zero cell; the
	// Scalar zero value is not a valid number and must never be stored.
	data := make([]scalar.Scalar, rows*cols)
	for i := range data {
		data[i] = scalar.Real(0.0)
	}

	return &Matrix{rows: rows, cols: cols, data: data}
}

// From builds a matrix from a non-empty rectangular slice of rows; the
// dimensions are taken from the input shape.
//
// Panics when the input is empty or ragged (rows of unequal length) -
// malformed literals are a documented fatal precondition, applied
// uniformly with the At/Set bounds policy.
// Complexity: O(rows*cols).
func From(rows [][]scalar.Scalar) *Matrix {
	// Validate the literal shape before any allocation.
	if len(rows) == 0 || len(rows[0]) == 0 {
		panic("matrix: From: empty literal")
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			panic(fmt.Sprintf("matrix: From: ragged literal (row %d has %d cells, want %d)", i, len(row), cols))
		}
	}

	// Copy cell values into fresh exclusive storage.
	m := New(len(rows), cols)
	for i, row := range rows {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m
}

// FromInts builds a matrix of exact Rational cells (value/1) from an
// integer literal. Same shape preconditions as From.
func FromInts(rows [][]int64) *Matrix {
	conv := make([][]scalar.Scalar, len(rows))
	for i, row := range rows {
		conv[i] = make([]scalar.Scalar, len(row))
		for j, v := range row {
			conv[i][j] = scalar.FromInt(v) // integer literal → Rational v/1
		}
	}

	return From(conv)
}

// FromFloats builds a matrix of Real cells from a float literal.
// Same shape preconditions as From.
func FromFloats(rows [][]float64) *Matrix {
	conv := make([][]scalar.Scalar, len(rows))
	for i, row := range rows {
		conv[i] = make([]scalar.Scalar, len(row))
		for j, v := range row {
			conv[i][j] = scalar.FromFloat(v) // float literal → Real
		}
	}

	return From(conv)
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Dim packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Matrix) Dim() (rows, cols int) { return m.rows, m.cols }

// index computes the row-major offset for (row, col), panicking on any
// out-of-range index. Unexported single source of truth for the bounds
// policy shared by At and Set.
func (m *Matrix) index(row, col int) int {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for %dx%d matrix", row, col, m.rows, m.cols))
	}

	// Row-major offset: row*cols + col.
	return row*m.cols + col
}

// At returns the cell at (row, col). Panics on out-of-range indices.
// Complexity: O(1).
func (m *Matrix) At(row, col int) scalar.Scalar {
	return m.data[m.index(row, col)]
}

// Set stores v at (row, col). Panics on out-of-range indices.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v scalar.Scalar) {
	m.data[m.index(row, col)] = v
}

// Clone returns a deep copy with fresh exclusive storage; mutations of
// the clone never affect the original.
// Complexity: O(rows*cols).
func (m *Matrix) Clone() *Matrix {
	cp := make([]scalar.Scalar, len(m.data))
	copy(cp, m.data)

	return &Matrix{rows: m.rows, cols: m.cols, data: cp}
}

// Equal reports whether both matrices have the same shape and
// variant-sensitively equal cells (scalar.Scalar.Equal per cell).
// Complexity: O(rows*cols).
func (m *Matrix) Equal(other *Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if !m.data[i].Equal(other.data[i]) {
			return false
		}
	}

	return true
}

// String renders one line per row, e.g. "[ 1 2 ]\n[ 3 4 ]\n".
// Complexity: O(rows*cols) for string construction.
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ { // iterate rows deterministically
		b.WriteString(fmtRowOpen)
		base := i * m.cols
		for j := 0; j < m.cols; j++ { // iterate columns
			b.WriteString(m.data[base+j].String())
			b.WriteString(fmtCellSep) // every cell is followed by a space
		}
		b.WriteString(fmtRowClose)
	}

	return b.String()
}
