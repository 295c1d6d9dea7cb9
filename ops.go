// Package vectrix: elementwise arithmetic and the matrix product.
//
// Every operation here is a mechanical loop over the checked indexing
// contract; none touches the backing block directly. Shape mismatches are
// programmer errors and panic.

package vectrix

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
)

// Number is the element constraint for arithmetic operations.
type Number interface {
	constraints.Integer | constraints.Float
}

// Signed is the element constraint for operations that need a sign, such
// as Neg and Abs.
type Signed interface {
	constraints.Signed | constraints.Float
}

// sameShape panics unless a and b have identical dimensions.
func sameShape[T any](op string, a, b *Matrix[T]) {
	if a.rows != b.rows || a.cols != b.cols {
		panic(fmt.Sprintf("vectrix: %s of %d×%d and %d×%d matrices", op, a.rows, a.cols, b.rows, b.cols))
	}
}

// Add returns the elementwise sum of two same-shape matrices.
// Panics on a shape mismatch.
// Complexity: O(rows*cols).
func Add[T Number](a, b *Matrix[T]) *Matrix[T] {
	sameShape("add", a, b)
	out := MustNew[T](a.rows, a.cols)
	for k := 0; k < a.Len(); k++ {
		out.SetFlat(k, a.AtFlat(k)+b.AtFlat(k))
	}
	return out
}

// Sub returns the elementwise difference of two same-shape matrices.
// Panics on a shape mismatch.
// Complexity: O(rows*cols).
func Sub[T Number](a, b *Matrix[T]) *Matrix[T] {
	sameShape("sub", a, b)
	out := MustNew[T](a.rows, a.cols)
	for k := 0; k < a.Len(); k++ {
		out.SetFlat(k, a.AtFlat(k)-b.AtFlat(k))
	}
	return out
}

// AddAssign adds src into dst in place. Panics on a shape mismatch.
// Complexity: O(rows*cols).
func AddAssign[T Number](dst, src *Matrix[T]) {
	sameShape("add", dst, src)
	for k := 0; k < dst.Len(); k++ {
		dst.SetFlat(k, dst.AtFlat(k)+src.AtFlat(k))
	}
}

// SubAssign subtracts src from dst in place. Panics on a shape mismatch.
// Complexity: O(rows*cols).
func SubAssign[T Number](dst, src *Matrix[T]) {
	sameShape("sub", dst, src)
	for k := 0; k < dst.Len(); k++ {
		dst.SetFlat(k, dst.AtFlat(k)-src.AtFlat(k))
	}
}

// AddScalar returns m with v added to every element.
// Complexity: O(rows*cols).
func AddScalar[T Number](m *Matrix[T], v T) *Matrix[T] {
	return Map(m, func(n T) T { return n + v })
}

// SubScalar returns m with v subtracted from every element.
// Complexity: O(rows*cols).
func SubScalar[T Number](m *Matrix[T], v T) *Matrix[T] {
	return Map(m, func(n T) T { return n - v })
}

// Scale returns m with every element multiplied by v.
// Complexity: O(rows*cols).
func Scale[T Number](m *Matrix[T], v T) *Matrix[T] {
	return Map(m, func(n T) T { return n * v })
}

// ScaleAssign multiplies every element of m by v in place.
// Complexity: O(rows*cols).
func ScaleAssign[T Number](m *Matrix[T], v T) {
	for k := 0; k < m.Len(); k++ {
		m.SetFlat(k, m.AtFlat(k)*v)
	}
}

// Neg returns the elementwise negation of m.
// Complexity: O(rows*cols).
func Neg[T Signed](m *Matrix[T]) *Matrix[T] {
	return Map(m, func(n T) T { return -n })
}

// Abs returns the elementwise absolute value of m.
// Complexity: O(rows*cols).
func Abs[T Signed](m *Matrix[T]) *Matrix[T] {
	return Map(m, abs)
}

func abs[T Signed](n T) T {
	if n < 0 {
		return -n
	}
	return n
}

// Sum returns the elementwise sum of a sequence of rows×cols matrices,
// starting from the zero matrix. Panics if any matrix in the sequence has
// a different shape.
// Complexity: O(count * rows * cols).
func Sum[T Number](rows, cols int, seq iter.Seq[*Matrix[T]]) *Matrix[T] {
	out := MustNew[T](rows, cols)
	for m := range seq {
		AddAssign(out, m)
	}
	return out
}

// Mul returns the matrix product of an M×N matrix with an N×P matrix:
// result(i, j) = row(i) · column(j). Panics unless a.Cols() == b.Rows().
// Complexity: O(M*N*P).
func Mul[T Number](a, b *Matrix[T]) *Matrix[T] {
	if a.cols != b.rows {
		panic(fmt.Sprintf("vectrix: product of %d×%d and %d×%d matrices", a.rows, a.cols, b.rows, b.cols))
	}
	out := MustNew[T](a.rows, b.cols)
	for i := 0; i < a.rows; i++ {
		row := a.Row(i)
		for j := 0; j < b.cols; j++ {
			out.Set(i, j, Dot(row, b.Column(j)))
		}
	}
	return out
}
