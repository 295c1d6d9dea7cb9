// Package stride provides a slice-like view where consecutive logical
// elements are spaced a constant number of elements apart in memory.
//
// Given an underlying slice [1, 2, 3, 4, 5, 6], the elements [1, 3, 5] form
// a strided view with a step of 2. A Stride never copies or owns element
// data: it is a borrowed reinterpretation of an existing contiguous region,
// represented as a slice header plus the step. Writes through a Stride are
// visible in the underlying slice, and vice versa.
//
// The package provides:
//
//   - Checked access (Get, GetPtr) returning a comma-ok pair, and faulting
//     access (At, Ptr, Set) that panics on an out-of-range index.
//   - Sub-range slicing (Slice, From, To, Full, SliceInclusive, ToInclusive)
//     producing a Stride of the same step over the rescaled region.
//   - Forward and backward iteration with exact, known-up-front lengths.
//   - Value-based equality and lexicographic comparison: two views compare
//     by their logical element sequence only, never by step or address.
//
// A step of 1 behaves exactly like a plain slice and additionally exposes
// AsSlice, a zero-copy reinterpretation back to the underlying region.
//
// Strides are best for treating non-contiguous lines of a flat buffer (for
// example, the rows of a column-major matrix) as ordinary sequences.
package stride
