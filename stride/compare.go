package stride

import "cmp"

// Equal reports whether two strided views observe the same logical element
// sequence. The steps, underlying lengths, and addresses of the two views
// are irrelevant: a step-3 view of [1, 0, 0, 4, 0, 0] equals a step-2 view
// of [1, 0, 4, 0].
// Complexity: O(Len()).
func Equal[T comparable](a, b Stride[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, n := 0, a.Len(); i < n; i++ {
		if a.data[i*a.step] != b.data[i*b.step] {
			return false
		}
	}
	return true
}

// EqualSlice reports whether the view's logical element sequence equals the
// given slice.
// Complexity: O(Len()).
func EqualSlice[T comparable](s Stride[T], want []T) bool {
	if s.Len() != len(want) {
		return false
	}
	for i := range want {
		if s.data[i*s.step] != want[i] {
			return false
		}
	}
	return true
}

// Compare orders two views lexicographically over their logical elements:
// the first unequal pair decides, and a shorter view that is a prefix of a
// longer one orders first. The result follows the cmp.Compare convention.
// Complexity: O(min(Len)).
func Compare[T cmp.Ordered](a, b Stride[T]) int {
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		if c := cmp.Compare(a.data[i*a.step], b.data[i*b.step]); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}
