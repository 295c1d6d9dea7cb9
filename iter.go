package vectrix

import "iter"

// All returns a forward iterator over flat offset / element pairs in
// column-major order. The sequence has exactly rows*cols pairs.
// Complexity: O(rows*cols) for a full traversal.
func (m *Matrix[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for k, v := range m.data {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Values returns a forward iterator over the elements in column-major
// order.
// Complexity: O(rows*cols) for a full traversal.
func (m *Matrix[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range m.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns a reverse iterator over flat offset / element pairs,
// visiting the last column-major element first.
// Complexity: O(rows*cols) for a full traversal.
func (m *Matrix[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for k := len(m.data) - 1; k >= 0; k-- {
			if !yield(k, *m.atOffset(k)) {
				return
			}
		}
	}
}

// IterRows returns an iterator over the rows of the matrix, in order.
// Each yielded Row borrows the matrix's storage.
// Complexity: O(rows) views; element access is lazy.
func (m *Matrix[T]) IterRows() iter.Seq[Row[T]] {
	return func(yield func(Row[T]) bool) {
		for i := 0; i < m.rows; i++ {
			if !yield(m.Row(i)) {
				return
			}
		}
	}
}

// IterColumns returns an iterator over the columns of the matrix, in
// order. Each yielded Column borrows the matrix's storage.
// Complexity: O(cols) views; element access is lazy.
func (m *Matrix[T]) IterColumns() iter.Seq[Column[T]] {
	return func(yield func(Column[T]) bool) {
		for j := 0; j < m.cols; j++ {
			if !yield(m.Column(j)) {
				return
			}
		}
	}
}
