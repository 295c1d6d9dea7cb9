// Package vectrix: sentinel error set.
// This file defines the package-level sentinel errors returned across the
// package. Recoverable failures (bad constructor input, short collect
// sequences) return these sentinels, matched by callers via errors.Is;
// out-of-bounds access through the faulting index tier panics instead and
// never produces an error value.

package vectrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rows <= 0 or cols <= 0).
	ErrBadShape = errors.New("vectrix: dimensions must be > 0")

	// ErrShapeMismatch is returned when supplied data does not match the
	// requested shape, e.g. a flat slice whose length is not rows*cols or
	// a ragged nested literal.
	ErrShapeMismatch = errors.New("vectrix: data does not match shape")

	// ErrTooFewElements is returned by Collect when the source sequence is
	// exhausted before rows*cols elements were obtained. The returned
	// error is a *ShapeError carrying the exact count.
	ErrTooFewElements = errors.New("vectrix: too few elements")

	// ErrTooManyElements is returned by Collect under WithExact when the
	// source sequence yields more than rows*cols elements.
	ErrTooManyElements = errors.New("vectrix: too many elements")
)

// ShapeError reports a collect failure against a target shape: the source
// sequence produced too few elements, or, under WithExact, too many.
type ShapeError struct {
	Rows, Cols int  // target shape
	Got        int  // elements obtained from the sequence
	Surplus    bool // true when the sequence yielded more than Rows*Cols
}

// Error renders the failure naming the expected shape, e.g.
// "vectrix: too few elements for a 2×3 matrix: got 3".
func (e *ShapeError) Error() string {
	if e.Surplus {
		return fmt.Sprintf("vectrix: too many elements for a %d×%d matrix: got at least %d", e.Rows, e.Cols, e.Got)
	}
	return fmt.Sprintf("vectrix: too few elements for a %d×%d matrix: got %d", e.Rows, e.Cols, e.Got)
}

// Unwrap resolves to the matching sentinel so callers can test the failure
// class with errors.Is.
func (e *ShapeError) Unwrap() error {
	if e.Surplus {
		return ErrTooManyElements
	}
	return ErrTooFewElements
}
