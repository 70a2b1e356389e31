// SPDX-License-Identifier: MIT

// Package vector - the real-forced 1-D container and its arithmetic.
//
// Purpose:
//   - Thin parallel structure over scalar's public operations; every
//     stored element is kept in the Real variant.
//   - Fail-fast validation with uniform error wrapping, fixed loop
//     orders, no aliasing between instances.

package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linalg/scalar"
)

// Operation name constants for unified error wrapping.
const (
	opAdd   = "Add"
	opSub   = "Sub"
	opDot   = "Dot"
	opCross = "Cross"
)

// crossDim is the only dimension on which the cross product is defined.
const crossDim = 3

// vectorErrorf wraps err with an operation tag, preserving the sentinel
// for errors.Is. Call only with err != nil.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Vector is a 1-D sequence of Real Scalars with exclusively owned
// storage. The zero value is an empty vector.
type Vector struct {
	nums []scalar.Scalar // every element Real by construction
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Vector{}

// New builds a vector from the given Scalars, converting each one ToReal.
// Complexity: O(n).
func New(nums ...scalar.Scalar) Vector {
	out := make([]scalar.Scalar, len(nums))
	for i, n := range nums {
		out[i] = n.ToReal() // force the Real variant on entry
	}

	return Vector{nums: out}
}

// FromInts builds a vector from integer literals (converted through the
// tower: exact Rational, then forced Real).
func FromInts(vals ...int64) Vector {
	out := make([]scalar.Scalar, len(vals))
	for i, v := range vals {
		out[i] = scalar.FromInt(v).ToReal()
	}

	return Vector{nums: out}
}

// FromFloats builds a vector of Real elements from float literals.
func FromFloats(vals ...float64) Vector {
	out := make([]scalar.Scalar, len(vals))
	for i, v := range vals {
		out[i] = scalar.FromFloat(v)
	}

	return Vector{nums: out}
}

// Dim returns the number of elements. Complexity: O(1).
func (v Vector) Dim() int { return len(v.nums) }

// At returns the element at index i. Panics on out-of-range indices,
// matching the module-wide fatal-precondition policy.
func (v Vector) At(i int) scalar.Scalar {
	if i < 0 || i >= len(v.nums) {
		panic(fmt.Sprintf("vector: index %d out of range for dimension %d", i, len(v.nums)))
	}

	return v.nums[i]
}

// Set stores s (forced ToReal) at index i. Panics on out-of-range
// indices.
func (v *Vector) Set(i int, s scalar.Scalar) {
	if i < 0 || i >= len(v.nums) {
		panic(fmt.Sprintf("vector: index %d out of range for dimension %d", i, len(v.nums)))
	}
	v.nums[i] = s.ToReal()
}

// Equal reports elementwise equality of same-dimension vectors.
func (v Vector) Equal(other Vector) bool {
	if len(v.nums) != len(other.nums) {
		return false
	}
	for i := range v.nums {
		if !v.nums[i].Equal(other.nums[i]) {
			return false
		}
	}

	return true
}

// Dot computes the dot product, accumulating elementwise products into
// Real(0.0), or returns ErrDimensionMismatch on length difference.
// Complexity: O(n).
func (v Vector) Dot(other Vector) (scalar.Scalar, error) {
	if len(v.nums) != len(other.nums) {
		return scalar.Real(0.0), vectorErrorf(opDot, ErrDimensionMismatch)
	}

	sum := scalar.Real(0.0)
	for i := range v.nums {
		sum = sum.Add(v.nums[i].Mul(other.nums[i]))
	}

	return sum, nil
}

// Cross computes the 3-D cross product, or returns ErrDimensionMismatch
// unless both operands are 3-dimensional.
// Complexity: O(1).
func (v Vector) Cross(other Vector) (Vector, error) {
	if len(v.nums) != crossDim || len(other.nums) != crossDim {
		return Vector{}, vectorErrorf(opCross, ErrDimensionMismatch)
	}

	x := v.nums[1].Mul(other.nums[2]).Sub(v.nums[2].Mul(other.nums[1]))
	y := v.nums[2].Mul(other.nums[0]).Sub(v.nums[0].Mul(other.nums[2]))
	z := v.nums[0].Mul(other.nums[1]).Sub(v.nums[1].Mul(other.nums[0]))

	return New(x, y, z), nil
}

// Add returns the elementwise sum as a new vector, or
// ErrDimensionMismatch on length difference.
func (v Vector) Add(other Vector) (Vector, error) {
	return v.zip(other, scalar.Scalar.Add, opAdd)
}

// Sub returns the elementwise difference as a new vector, or
// ErrDimensionMismatch on length difference.
func (v Vector) Sub(other Vector) (Vector, error) {
	return v.zip(other, scalar.Scalar.Sub, opSub)
}

// zip shares validation and allocation between Add and Sub.
func (v Vector) zip(other Vector, op func(scalar.Scalar, scalar.Scalar) scalar.Scalar, tag string) (Vector, error) {
	if len(v.nums) != len(other.nums) {
		return Vector{}, vectorErrorf(tag, ErrDimensionMismatch)
	}

	out := make([]scalar.Scalar, len(v.nums))
	for i := range v.nums {
		out[i] = op(v.nums[i], other.nums[i]) // Real op Real stays Real
	}

	return Vector{nums: out}, nil
}

// Scale returns a new vector with every element multiplied by s (both
// sides forced Real first). Always succeeds.
func (v Vector) Scale(s scalar.Scalar) Vector {
	r := s.ToReal()
	out := make([]scalar.Scalar, len(v.nums))
	for i := range v.nums {
		out[i] = v.nums[i].Mul(r)
	}

	return Vector{nums: out}
}

// Div returns a new vector with every element divided by s (forced
// Real); division by zero follows IEEE semantics.
func (v Vector) Div(s scalar.Scalar) Vector {
	r := s.ToReal()
	out := make([]scalar.Scalar, len(v.nums))
	for i := range v.nums {
		out[i] = v.nums[i].Div(r)
	}

	return Vector{nums: out}
}

// AddAssign adds other into v's own elements; panics on length mismatch
// (compound family is fatal, mirroring matrix).
func (v *Vector) AddAssign(other Vector) {
	if len(v.nums) != len(other.nums) {
		panic("vector: AddAssign: " + ErrDimensionMismatch.Error())
	}
	for i := range v.nums {
		v.nums[i] = v.nums[i].Add(other.nums[i])
	}
}

// SubAssign subtracts other from v's own elements; panics on length
// mismatch.
func (v *Vector) SubAssign(other Vector) {
	if len(v.nums) != len(other.nums) {
		panic("vector: SubAssign: " + ErrDimensionMismatch.Error())
	}
	for i := range v.nums {
		v.nums[i] = v.nums[i].Sub(other.nums[i])
	}
}

// ScaleAssign multiplies every element by s (forced Real) in place.
func (v *Vector) ScaleAssign(s scalar.Scalar) {
	r := s.ToReal()
	for i := range v.nums {
		v.nums[i] = v.nums[i].Mul(r)
	}
}

// DivAssign divides every element by s (forced Real) in place.
func (v *Vector) DivAssign(s scalar.Scalar) {
	r := s.ToReal()
	for i := range v.nums {
		v.nums[i] = v.nums[i].Div(r)
	}
}

// Reals returns a copy with every element converted ToReal. Elements are
// Real already by construction; the method exists for symmetry with
// Rationals and for vectors freshly produced by Rationals.
func (v Vector) Reals() Vector {
	out := make([]scalar.Scalar, len(v.nums))
	for i := range v.nums {
		out[i] = v.nums[i].ToReal()
	}

	return Vector{nums: out}
}

// Rationals returns a copy with every element approximated ToRational
// (bounded denominator search; best-effort, see scalar.Approximate).
func (v Vector) Rationals() Vector {
	out := make([]scalar.Scalar, len(v.nums))
	for i := range v.nums {
		out[i] = v.nums[i].ToRational()
	}

	return Vector{nums: out}
}

// String renders the vector as "[1, 2, 3]" - comma-separated, no
// trailing newline (the vector format intentionally differs from the
// matrix row format).
func (v Vector) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, n := range v.nums {
		b.WriteString(n.String())
		if i < len(v.nums)-1 {
			b.WriteString(", ")
		}
	}
	b.WriteByte(']')

	return b.String()
}
