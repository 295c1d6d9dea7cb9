package stride

import "fmt"

// Stride is a borrowed view over a contiguous region in which only every
// step-th element is visible. Logical index i maps to physical offset
// i*step; the logical length is ceil(len(region)/step).
//
// The zero value is an empty view with an invalid step; construct with New.
type Stride[T any] struct {
	data []T // borrowed backing region, never reallocated
	step int // spacing between logical elements, >= 1
}

// New constructs a strided view over data with the given step.
// The view borrows data: no elements are copied.
// Panics if step < 1 (programmer error).
// Complexity: O(1).
func New[T any](data []T, step int) Stride[T] {
	if step < 1 {
		panic(fmt.Sprintf("stride: step must be >= 1, got %d", step))
	}
	return Stride[T]{data: data, step: step}
}

// Len returns the number of logical elements in the view.
// This is the ceiling division of the underlying region length by the step.
// Complexity: O(1).
func (s Stride[T]) Len() int {
	return (len(s.data) + s.step - 1) / s.step
}

// IsEmpty reports whether the view has a length of 0.
// Complexity: O(1).
func (s Stride[T]) IsEmpty() bool {
	return len(s.data) == 0
}

// Step returns the element spacing of the view.
func (s Stride[T]) Step() int {
	return s.step
}

// Get returns the element at logical index i, or false if i is out of
// bounds. This is the recoverable counterpart of At.
// Complexity: O(1).
func (s Stride[T]) Get(i int) (T, bool) {
	if i < 0 || i >= s.Len() {
		var zero T
		return zero, false
	}
	return s.data[i*s.step], true
}

// GetPtr returns a pointer to the element at logical index i, or false if
// i is out of bounds. Writes through the pointer are visible in the
// underlying region.
// Complexity: O(1).
func (s Stride[T]) GetPtr(i int) (*T, bool) {
	if i < 0 || i >= s.Len() {
		return nil, false
	}
	return &s.data[i*s.step], true
}

// At returns the element at logical index i.
// Panics if i is out of bounds; use Get where an out-of-range index is an
// expected outcome rather than a programmer error.
// Complexity: O(1).
func (s Stride[T]) At(i int) T {
	s.check(i)
	return s.data[i*s.step]
}

// Ptr returns a pointer to the element at logical index i.
// Panics if i is out of bounds.
// Complexity: O(1).
func (s Stride[T]) Ptr(i int) *T {
	s.check(i)
	return &s.data[i*s.step]
}

// Set stores v at logical index i, writing through to the underlying
// region. Panics if i is out of bounds.
// Complexity: O(1).
func (s Stride[T]) Set(i int, v T) {
	s.check(i)
	s.data[i*s.step] = v
}

// First returns the first element of the view, or false if it is empty.
func (s Stride[T]) First() (T, bool) {
	return s.Get(0)
}

// Last returns the last element of the view, or false if it is empty.
func (s Stride[T]) Last() (T, bool) {
	return s.Get(s.Len() - 1)
}

// Swap exchanges the elements at logical indexes a and b by exchanging the
// two underlying elements directly. Panics if either index is out of
// bounds.
// Complexity: O(1).
func (s Stride[T]) Swap(a, b int) {
	s.check(a)
	s.check(b)
	s.data[a*s.step], s.data[b*s.step] = s.data[b*s.step], s.data[a*s.step]
}

// Slice returns the sub-view covering logical indexes [lo, hi), with the
// same step. The result borrows the same underlying region.
// Panics unless 0 <= lo <= hi <= Len().
// Complexity: O(1).
func (s Stride[T]) Slice(lo, hi int) Stride[T] {
	if lo < 0 || hi < lo || hi > s.Len() {
		panic(fmt.Sprintf("stride: range [%d:%d] out of range for length %d", lo, hi, s.Len()))
	}
	return Stride[T]{data: s.data[lo*s.step : s.clampOffset(hi)], step: s.step}
}

// From returns the sub-view covering logical indexes [lo, Len()).
// Panics unless 0 <= lo <= Len().
func (s Stride[T]) From(lo int) Stride[T] {
	return s.Slice(lo, s.Len())
}

// To returns the sub-view covering logical indexes [0, hi).
// Panics unless 0 <= hi <= Len().
func (s Stride[T]) To(hi int) Stride[T] {
	return s.Slice(0, hi)
}

// Full returns the view itself, mirroring a full-range slice expression.
func (s Stride[T]) Full() Stride[T] {
	return s
}

// SliceInclusive returns the sub-view covering logical indexes [lo, hi],
// inclusive of hi, with the same step.
// Panics unless 0 <= lo <= hi < Len().
// Complexity: O(1).
func (s Stride[T]) SliceInclusive(lo, hi int) Stride[T] {
	if lo < 0 || hi < lo || hi >= s.Len() {
		panic(fmt.Sprintf("stride: range [%d:%d] out of range for length %d", lo, hi, s.Len()))
	}
	return Stride[T]{data: s.data[lo*s.step : hi*s.step+1], step: s.step}
}

// ToInclusive returns the sub-view covering logical indexes [0, hi],
// inclusive of hi. Panics unless 0 <= hi < Len().
func (s Stride[T]) ToInclusive(hi int) Stride[T] {
	return s.SliceInclusive(0, hi)
}

// AsSlice returns the underlying region of a step-1 view. Only a step of 1
// observes every underlying element, so calling AsSlice on any other step
// is a programmer error and panics.
// Complexity: O(1), no copy.
func (s Stride[T]) AsSlice() []T {
	if s.step != 1 {
		panic(fmt.Sprintf("stride: AsSlice requires step 1, got %d", s.step))
	}
	return s.data
}

// CollectSlice copies the logical elements into a freshly allocated slice.
// Complexity: O(Len()).
func (s Stride[T]) CollectSlice() []T {
	out := make([]T, s.Len())
	for i := range out {
		out[i] = s.data[i*s.step] // bound established by Len
	}
	return out
}

// check panics with a descriptive message if i is not a valid logical
// index.
func (s Stride[T]) check(i int) {
	if i < 0 || i >= s.Len() {
		panic(fmt.Sprintf("stride: index %d out of range for length %d", i, s.Len()))
	}
}

// clampOffset converts the logical end bound hi into a physical end offset.
// The final logical element may be followed by fewer than step-1 underlying
// elements, so the physical bound is capped at the region length. Requires
// hi <= Len().
func (s Stride[T]) clampOffset(hi int) int {
	if off := hi * s.step; off < len(s.data) {
		return off
	}
	return len(s.data)
}
