package vectrix

import "fmt"

// Matrix is a fixed-dimension matrix of rows×cols elements of type T.
//
// Storage is a single contiguous block in column-major order: the element
// at row i, column j sits at flat offset j*rows + i. The block is
// allocated once by a constructor and never grows, shrinks, or moves, so
// AsSlice is a stable zero-copy view for the lifetime of the matrix.
type Matrix[T any] struct {
	rows, cols int // fixed shape, both >= 1
	data       []T // column-major backing block, len == rows*cols
}

// New creates a rows×cols matrix with all elements set to the zero value
// of T. Returns ErrBadShape if either dimension is not positive.
// Complexity: O(rows*cols).
func New[T any](rows, cols int) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}
	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// MustNew is New for shapes known valid at the call site; it panics on a
// non-positive dimension.
func MustNew[T any](rows, cols int) *Matrix[T] {
	m, err := New[T](rows, cols)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// Repeat creates a rows×cols matrix with every element set to v.
// Panics on a non-positive dimension.
// Complexity: O(rows*cols).
func Repeat[T any](rows, cols int, v T) *Matrix[T] {
	m := MustNew[T](rows, cols)
	for k := range m.data {
		m.data[k] = v
	}
	return m
}

// Identity creates the n×n matrix with ones on the diagonal and zeros
// elsewhere. Panics if n is not positive.
// Complexity: O(n²).
func Identity[T Number](n int) *Matrix[T] {
	m := MustNew[T](n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// FromColumnMajor creates a rows×cols matrix from a flat slice already in
// column-major order. The slice is copied, so later mutation of data does
// not affect the matrix. Returns ErrBadShape for a non-positive dimension
// and ErrShapeMismatch if len(data) != rows*cols.
// Complexity: O(rows*cols).
func FromColumnMajor[T any](rows, cols int, data []T) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("FromColumnMajor(%d,%d): %w", rows, cols, ErrBadShape)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("FromColumnMajor(%d,%d): len %d: %w", rows, cols, len(data), ErrShapeMismatch)
	}
	m := &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
	copy(m.data, data)
	return m, nil
}

// FromColumns creates a matrix from one slice per column. Every column
// must have the same non-zero length, which becomes the row count.
// Returns ErrBadShape for an empty literal and ErrShapeMismatch for ragged
// columns.
// Complexity: O(rows*cols).
func FromColumns[T any](columns [][]T) (*Matrix[T], error) {
	if len(columns) == 0 || len(columns[0]) == 0 {
		return nil, fmt.Errorf("FromColumns: %w", ErrBadShape)
	}
	rows, cols := len(columns[0]), len(columns)
	m := &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
	for j, column := range columns {
		if len(column) != rows {
			return nil, fmt.Errorf("FromColumns: column %d has %d rows, want %d: %w", j, len(column), rows, ErrShapeMismatch)
		}
		copy(m.data[j*rows:(j+1)*rows], column)
	}
	return m, nil
}

// FromRows creates a matrix from one slice per row, reordering the input
// into column-major storage. This is the natural-reading-order literal
// constructor. Every row must have the same non-zero length, which becomes
// the column count. Returns ErrBadShape for an empty literal and
// ErrShapeMismatch for ragged rows.
// Complexity: O(rows*cols).
func FromRows[T any](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrBadShape)
	}
	nr, nc := len(rows), len(rows[0])
	m := &Matrix[T]{rows: nr, cols: nc, data: make([]T, nr*nc)}
	for i, row := range rows {
		if len(row) != nc {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", i, len(row), nc, ErrShapeMismatch)
		}
		for j, v := range row {
			m.data[j*nr+i] = v
		}
	}
	return m, nil
}

// Rows returns the fixed number of rows.
func (m *Matrix[T]) Rows() int {
	return m.rows
}

// Cols returns the fixed number of columns.
func (m *Matrix[T]) Cols() int {
	return m.cols
}

// Len returns the total number of elements, rows*cols.
func (m *Matrix[T]) Len() int {
	return len(m.data)
}

// AsSlice returns the backing block itself: rows*cols elements in
// column-major order with no copy. Writes through the slice are writes to
// the matrix.
// Complexity: O(1).
func (m *Matrix[T]) AsSlice() []T {
	return m.data
}

// Clone returns a matrix of the same shape with its own copy of the
// elements.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := &Matrix[T]{rows: m.rows, cols: m.cols, data: make([]T, len(m.data))}
	copy(out.data, m.data)
	return out
}

// Transpose returns the cols×rows matrix with element (j, i) equal to this
// matrix's element (i, j).
// Complexity: O(rows*cols).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	out := &Matrix[T]{rows: m.cols, cols: m.rows, data: make([]T, len(m.data))}
	for j := 0; j < m.cols; j++ {
		for i := 0; i < m.rows; i++ {
			// Both offsets are in range by the loop bounds.
			out.data[i*m.cols+j] = m.data[j*m.rows+i]
		}
	}
	return out
}

// Map applies f to every element of m, producing a same-shape matrix of
// the result type. Elements are visited in flat column-major order.
// Complexity: O(rows*cols).
func Map[T, U any](m *Matrix[T], f func(T) U) *Matrix[U] {
	out := &Matrix[U]{rows: m.rows, cols: m.cols, data: make([]U, len(m.data))}
	for k, v := range m.data {
		out.data[k] = f(v)
	}
	return out
}

// Equal reports whether two matrices have the same shape and equal
// elements.
// Complexity: O(rows*cols).
func Equal[T comparable](a, b *Matrix[T]) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for k, v := range a.data {
		if v != b.data[k] {
			return false
		}
	}
	return true
}
