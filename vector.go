// Package vectrix: vectors as one-line matrices.
//
// A vector is a Matrix with a single column; a row vector has a single
// row. In both cases the k-th component sits at flat offset k of the
// column-major block, so the accessors below address components uniformly
// through the flat index form.

package vectrix

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// NewVector creates a column vector (len×1 matrix) from components.
// Panics if no components are given.
func NewVector[T any](components ...T) *Matrix[T] {
	m, err := FromColumnMajor(len(components), 1, components)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// NewRowVector creates a row vector (1×len matrix) from components.
// Panics if no components are given.
func NewRowVector[T any](components ...T) *Matrix[T] {
	m, err := FromColumnMajor(1, len(components), components)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// IsVector reports whether the matrix is a single row or a single column.
func (m *Matrix[T]) IsVector() bool {
	return m.rows == 1 || m.cols == 1
}

// component returns flat component k of a vector, panicking when the
// receiver is not a vector or has fewer than k+1 components.
func (m *Matrix[T]) component(name string, k int) *T {
	if !m.IsVector() {
		panic(fmt.Sprintf("vectrix: %s on a %d×%d matrix", name, m.rows, m.cols))
	}
	if k >= m.Len() {
		panic(fmt.Sprintf("vectrix: %s on a vector with %d components", name, m.Len()))
	}
	return m.atOffset(k)
}

// X returns the first component of a vector.
// Panics if the matrix is not a vector.
func (m *Matrix[T]) X() T { return *m.component("X", 0) }

// Y returns the second component of a vector.
// Panics if the matrix is not a vector with at least 2 components.
func (m *Matrix[T]) Y() T { return *m.component("Y", 1) }

// Z returns the third component of a vector.
// Panics if the matrix is not a vector with at least 3 components.
func (m *Matrix[T]) Z() T { return *m.component("Z", 2) }

// W returns the fourth component of a vector.
// Panics if the matrix is not a vector with at least 4 components.
func (m *Matrix[T]) W() T { return *m.component("W", 3) }

// SetX stores the first component of a vector.
func (m *Matrix[T]) SetX(v T) { *m.component("SetX", 0) = v }

// SetY stores the second component of a vector.
func (m *Matrix[T]) SetY(v T) { *m.component("SetY", 1) = v }

// SetZ stores the third component of a vector.
func (m *Matrix[T]) SetZ(v T) { *m.component("SetZ", 2) = v }

// SetW stores the fourth component of a vector.
func (m *Matrix[T]) SetW(v T) { *m.component("SetW", 3) = v }

// VectorDot computes the dot product of two vectors of the same length.
// Either operand may be a row or a column vector. Panics if either
// operand is not a vector or the lengths differ.
// Complexity: O(len).
func VectorDot[T Number](a, b *Matrix[T]) T {
	if !a.IsVector() || !b.IsVector() {
		panic(fmt.Sprintf("vectrix: dot of %d×%d and %d×%d matrices", a.rows, a.cols, b.rows, b.cols))
	}
	if a.Len() != b.Len() {
		panic(fmt.Sprintf("vectrix: dot of vectors with %d and %d components", a.Len(), b.Len()))
	}
	var sum T
	for k := 0; k < a.Len(); k++ {
		sum += a.AtFlat(k) * b.AtFlat(k)
	}
	return sum
}

// L1Norm returns the sum of the absolute values of the elements, also
// known as the Manhattan norm.
// Complexity: O(rows*cols).
func L1Norm[T Signed](m *Matrix[T]) T {
	var sum T
	for _, v := range m.data {
		sum += abs(v)
	}
	return sum
}

// Reduced returns the vector divided by the greatest common divisor of all
// its elements. The zero vector is returned unchanged (as a clone).
// Complexity: O(len).
func Reduced[T constraints.Integer](m *Matrix[T]) *Matrix[T] {
	var div T
	for _, v := range m.data {
		div = gcd(div, v)
	}
	if div == 0 {
		return m.Clone()
	}
	return Map(m, func(n T) T { return n / div })
}

// gcd returns the greatest common divisor of two integers, never negative.
func gcd[T constraints.Integer](y, x T) T {
	for x != 0 {
		y, x = x, y%x
	}
	if y < 0 {
		return -y
	}
	return y
}
