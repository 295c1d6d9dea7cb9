// Package vectrix: borrowed row and column views.
//
// A Column is a contiguous run of rows elements of the column-major block,
// so it is represented directly as a sub-slice. A Row is non-contiguous
// (consecutive row elements sit rows apart), so it is represented as a
// stride view with a step equal to the row count. Both alias the parent
// matrix's storage: writes through a view are writes to the matrix, and a
// view must not be used after its parent is gone from scope for mutation
// ordering to stay coherent.

package vectrix

import (
	"fmt"
	"iter"

	"github.com/rossmacarthur/vectrix/stride"
)

// Row is a borrowed view of one row of a Matrix, with cols elements spaced
// rows apart in the backing block.
type Row[T any] struct {
	data stride.Stride[T]
}

// Column is a borrowed view of one column of a Matrix: a contiguous run of
// rows elements.
type Column[T any] struct {
	data []T
}

// Row returns a borrowed view of row i, anchored at flat offset i with a
// step equal to the row count. Panics if i is out of range.
// Complexity: O(1), no copy.
func (m *Matrix[T]) Row(i int) Row[T] {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("vectrix: row %d out of range for %d×%d matrix", i, m.rows, m.cols))
	}
	return Row[T]{data: stride.New(m.data[i:], m.rows)}
}

// Column returns a borrowed view of column j: the contiguous sub-slice at
// flat offsets [j*rows, (j+1)*rows). Panics if j is out of range.
// Complexity: O(1), no copy.
func (m *Matrix[T]) Column(j int) Column[T] {
	if j < 0 || j >= m.cols {
		panic(fmt.Sprintf("vectrix: column %d out of range for %d×%d matrix", j, m.rows, m.cols))
	}
	return Column[T]{data: m.data[j*m.rows : (j+1)*m.rows]}
}

// Len returns the number of elements in the row, which equals the parent's
// column count.
func (r Row[T]) Len() int {
	return r.data.Len()
}

// Get returns the element at position i, or false if out of range.
func (r Row[T]) Get(i int) (T, bool) {
	return r.data.Get(i)
}

// At returns the element at position i, panicking if out of range.
func (r Row[T]) At(i int) T {
	return r.data.At(i)
}

// Set stores v at position i, writing through to the parent matrix.
// Panics if i is out of range.
func (r Row[T]) Set(i int, v T) {
	r.data.Set(i, v)
}

// Stride returns the underlying stride view of the row.
func (r Row[T]) Stride() stride.Stride[T] {
	return r.data
}

// Values returns a forward iterator over the row's elements.
func (r Row[T]) Values() iter.Seq[T] {
	return r.data.Values()
}

// CollectSlice copies the row's elements into a new slice.
// Complexity: O(Len()).
func (r Row[T]) CollectSlice() []T {
	return r.data.CollectSlice()
}

// Len returns the number of elements in the column, which equals the
// parent's row count.
func (c Column[T]) Len() int {
	return len(c.data)
}

// Get returns the element at position i, or false if out of range.
func (c Column[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(c.data) {
		var zero T
		return zero, false
	}
	return c.data[i], true
}

// At returns the element at position i, panicking if out of range.
func (c Column[T]) At(i int) T {
	if i < 0 || i >= len(c.data) {
		panic(fmt.Sprintf("vectrix: index %d out of range for column of length %d", i, len(c.data)))
	}
	return c.data[i]
}

// Set stores v at position i, writing through to the parent matrix.
// Panics if i is out of range.
func (c Column[T]) Set(i int, v T) {
	if i < 0 || i >= len(c.data) {
		panic(fmt.Sprintf("vectrix: index %d out of range for column of length %d", i, len(c.data)))
	}
	c.data[i] = v
}

// AsSlice returns the column's contiguous backing region with no copy.
// Writes through the slice are writes to the parent matrix.
func (c Column[T]) AsSlice() []T {
	return c.data
}

// Values returns a forward iterator over the column's elements.
func (c Column[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range c.data {
			if !yield(v) {
				return
			}
		}
	}
}

// CollectSlice copies the column's elements into a new slice.
// Complexity: O(Len()).
func (c Column[T]) CollectSlice() []T {
	out := make([]T, len(c.data))
	copy(out, c.data)
	return out
}

// Dot computes the dot product Σ row[i] * column[i] between a row and a
// column of matching length. This is the primitive behind Mul. Panics on a
// length mismatch (a shape fault, not an expected outcome).
// Complexity: O(Len()).
func Dot[T Number](row Row[T], column Column[T]) T {
	if row.Len() != column.Len() {
		panic(fmt.Sprintf("vectrix: dot of row length %d with column length %d", row.Len(), column.Len()))
	}
	var sum T
	for i, n := 0, row.Len(); i < n; i++ {
		sum += row.At(i) * column.At(i)
	}
	return sum
}
