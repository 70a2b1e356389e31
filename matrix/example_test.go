package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
)

// ExampleMatrix_Determinant demonstrates an exact determinant on an
// integer-literal matrix: no floating rounding anywhere.
func ExampleMatrix_Determinant() {
	m := matrix.FromInts([][]int64{{1, 2}, {3, 4}})
	fmt.Print(m)

	det, _ := m.Determinant()
	fmt.Println("det =", det)

	// Output:
	// [ 1 2 ]
	// [ 3 4 ]
	// det = -2
}

// ExampleMatrix_Transpose shows transposition and the mixed
// Rational/Real rendering of cells.
func ExampleMatrix_Transpose() {
	m := matrix.From([][]scalar.Scalar{
		{scalar.Rational(1, 2), scalar.FromInt(3)},
		{scalar.Real(2.5), scalar.FromInt(4)},
	})
	fmt.Print(m.Transpose())

	// Output:
	// [ 1/2 2.5 ]
	// [ 3 4 ]
}

// ExampleMatrix_Add shows the fallible elementwise surface.
func ExampleMatrix_Add() {
	a := matrix.FromInts([][]int64{{1, 2}, {3, 4}})
	b := matrix.FromInts([][]int64{{5, 6}})

	if _, err := a.Add(b); err != nil {
		fmt.Println(err)
	}

	// Output:
	// Add: ValidateSameShape: Rows: matrix: dimension mismatch
}
