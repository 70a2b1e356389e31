// Package linalg is a small, exactness-aware linear algebra toolkit built
// around a dual-mode scalar type.
//
// 🚀 What is linalg?
//
//	A deterministic, pure-Go library that brings together:
//		• Scalar: one number, either an exact Rational (reduced fraction)
//		  or a floating Real, with silent Real promotion in mixed arithmetic
//		• Matrix: dense row-major matrices of Scalars with add/sub/mul,
//		  transposition and exact cofactor determinants
//		• Vector: a real-valued 1-D companion with dot and cross products
//
// ✨ Why choose linalg?
//
//   - Exact where it can be – rational arithmetic never rounds until a
//     Real operand enters the expression
//   - Rock-solid error surface – one recoverable sentinel per package
//     (ErrDimensionMismatch), panics reserved for programmer errors
//   - Pure Go – no cgo, in-memory only, single-threaded by design
//   - Interops cleanly – converters to and from gonum's mat.Dense
//
// Everything is organized under three subpackages:
//
//	scalar/ — the numeric tower: Rational/Real variants, promotion rules,
//	          bounded float→fraction approximation
//	matrix/ — dense matrices, linear-algebra kernels, gonum converters
//	vector/ — real-forced vectors consuming scalar's public contract
//
// Quick example:
//
//	m := matrix.FromInts([][]int64{{1, 2}, {3, 4}})
//	det, _ := m.Determinant() // exact Rational -2
//
// Dive into the package docs for the promotion rules, the determinant
// algorithm, and the error-handling contract.
//
//	go get github.com/katalvlaran/linalg
package linalg
