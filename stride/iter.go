package stride

import "iter"

// All returns a forward iterator over logical index / element pairs.
// The sequence has exactly Len() pairs.
// Complexity: O(Len()) for a full traversal.
func (s Stride[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, n := 0, s.Len(); i < n; i++ {
			if !yield(i, s.data[i*s.step]) {
				return
			}
		}
	}
}

// Values returns a forward iterator over the logical elements.
// Complexity: O(Len()) for a full traversal.
func (s Stride[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, n := 0, s.Len(); i < n; i++ {
			if !yield(s.data[i*s.step]) {
				return
			}
		}
	}
}

// Backward returns a reverse iterator over logical index / element pairs,
// visiting the last element first.
// Complexity: O(Len()) for a full traversal.
func (s Stride[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := s.Len() - 1; i >= 0; i-- {
			if !yield(i, s.data[i*s.step]) {
				return
			}
		}
	}
}
