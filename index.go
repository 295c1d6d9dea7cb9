// Package vectrix: the two-form indexing contract.
//
// An Index locates one element of a matrix either by flat offset into the
// column-major block or by (row, column) coordinate. Both forms resolve to
// a single validated offset; the flat form is the identity mapping and the
// coordinate form is offset = col*rows + row. Index values are transient:
// they carry no state beyond the position they name.

package vectrix

import "fmt"

// Index is the closed contract implemented by Flat and Coord. It cannot be
// implemented outside this package.
type Index interface {
	// resolve translates the index into an offset into a rows×cols
	// column-major block, reporting false when out of range.
	resolve(rows, cols int) (offset int, ok bool)
}

// Flat addresses an element by its offset into the column-major block,
// in the range [0, rows*cols).
type Flat int

func (f Flat) resolve(rows, cols int) (int, bool) {
	k := int(f)
	return k, k >= 0 && k < rows*cols
}

// Coord addresses an element by row and column coordinate.
type Coord struct {
	Row, Col int
}

func (c Coord) resolve(rows, cols int) (int, bool) {
	if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
		return 0, false
	}
	return c.Col*rows + c.Row, true
}

// Get returns the element at ix, or false if ix is out of range in either
// form. This is the recoverable tier: prefer it when an out-of-range index
// is an expected outcome.
// Complexity: O(1).
func (m *Matrix[T]) Get(ix Index) (T, bool) {
	if off, ok := ix.resolve(m.rows, m.cols); ok {
		return m.data[off], true
	}
	var zero T
	return zero, false
}

// GetPtr returns a pointer to the element at ix, or false if ix is out of
// range. Writes through the pointer mutate the matrix in place.
// Complexity: O(1).
func (m *Matrix[T]) GetPtr(ix Index) (*T, bool) {
	if off, ok := ix.resolve(m.rows, m.cols); ok {
		return &m.data[off], true
	}
	return nil, false
}

// IndexOf resolves ix to its flat offset, panicking if it is out of range.
// An out-of-range index here is a programmer error, never an expected
// outcome; it is reported as a fault rather than silently clamped.
// Complexity: O(1).
func (m *Matrix[T]) IndexOf(ix Index) int {
	off, ok := ix.resolve(m.rows, m.cols)
	if !ok {
		panic(fmt.Sprintf("vectrix: index %v out of range for %d×%d matrix", ix, m.rows, m.cols))
	}
	return off
}

// At returns the element at row i, column j, panicking if the coordinate
// is out of range.
// Complexity: O(1).
func (m *Matrix[T]) At(i, j int) T {
	return m.data[m.IndexOf(Coord{i, j})]
}

// Set stores v at row i, column j, panicking if the coordinate is out of
// range.
// Complexity: O(1).
func (m *Matrix[T]) Set(i, j int, v T) {
	m.data[m.IndexOf(Coord{i, j})] = v
}

// AtFlat returns the element at flat offset k, panicking if k is out of
// range.
// Complexity: O(1).
func (m *Matrix[T]) AtFlat(k int) T {
	return m.data[m.IndexOf(Flat(k))]
}

// SetFlat stores v at flat offset k, panicking if k is out of range.
// Complexity: O(1).
func (m *Matrix[T]) SetFlat(k int, v T) {
	m.data[m.IndexOf(Flat(k))] = v
}

// atOffset returns a pointer to the element at flat offset off with no
// bounds check of its own beyond the slice access. Callers must have
// already established 0 <= off < rows*cols, typically as a loop invariant;
// everything else in the package goes through the checked tiers above.
func (m *Matrix[T]) atOffset(off int) *T {
	return &m.data[off]
}
