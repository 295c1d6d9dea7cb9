// Package vectrix provides a fixed-dimension matrix type backed by a
// single contiguous column-major block, with array-like performance and
// matrix/vector semantics.
//
// A Matrix[T] owns exactly rows*cols elements of type T in one flat slice;
// the element at row i, column j sits at flat offset j*rows + i. The shape
// is fixed when the matrix is created and the backing block is never
// reallocated, so a matrix can always be reinterpreted, zero-copy, as a
// flat column-major slice (AsSlice).
//
// The package provides:
//
//   - Constructors: New, Repeat, Identity, FromColumnMajor, FromColumns,
//     FromRows, and NewVector / NewRowVector for one-line shapes.
//   - Collect: fill a matrix from any element sequence, reporting exactly
//     how many elements were obtained if the sequence runs out early and
//     leaving any surplus unconsumed.
//   - Two-form indexing (flat offset or row/column coordinate) with a
//     checked comma-ok tier (Get) and a faulting tier (At, Set) for
//     programmer errors.
//   - Zero-copy Row and Column views, built on the stride subpackage, with
//     a row·column Dot primitive that underlies matrix multiplication.
//   - Forward and backward iteration over elements, rows, and columns, and
//     a Map operation producing a same-shape matrix of another type.
//   - Elementwise arithmetic, the matrix product, vector component
//     accessors (X/Y/Z/W), and an aligned human-readable rendering.
//
// All operations are synchronous and allocation occurs only in
// constructors. Concurrent reads of a matrix are safe; concurrent writes
// (including writes through Row or Column views, which alias the parent's
// storage) require external coordination, as with any plain Go value.
//
// Quick example:
//
//	m := vectrix.MustNew[int](3, 3) // 3×3 zero matrix
//	m.Set(1, 2, 6)                  // row 1, column 2
//	row := m.Row(1)                 // borrowed view, elements 3 apart
//	col := m.Column(2)              // borrowed view, contiguous
//	product := vectrix.Dot(row, col)
//	_ = product
package vectrix
