// Package vectrix: building a matrix from an external element sequence.
//
// Collect fills the column-major block one element at a time from an
// arbitrary producer. The producer is pulled through iter.Pull with the
// stop function deferred, so the producer is always released — on success,
// on a short sequence, and on a panic out of the producer itself — and
// surplus elements beyond rows*cols are never pulled. A count of slots
// written is maintained throughout; the partially filled block is private
// to Collect and is surrendered to the garbage collector on any failure,
// so no partially initialized matrix can ever be observed.

package vectrix

import (
	"fmt"
	"iter"
)

// Option configures a Collect call.
type Option func(*collectConfig)

type collectConfig struct {
	exact bool // fault when the producer outlives the shape
}

// WithExact makes Collect fail with ErrTooManyElements if the sequence
// yields more than rows*cols elements. Probing costs exactly one extra
// pull. The default is to leave any surplus unconsumed.
func WithExact() Option {
	return func(c *collectConfig) {
		c.exact = true
	}
}

func gatherOptions(opts []Option) collectConfig {
	var cfg collectConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Collect builds a rows×cols matrix by pulling exactly rows*cols elements
// from seq in flat column-major order.
//
// If seq is exhausted early, Collect returns a *ShapeError wrapping
// ErrTooFewElements that carries the exact number of elements obtained.
// Elements beyond rows*cols are not pulled and the sequence is not
// drained, unless WithExact is given, in which case one extra pull probes
// for surplus and a surplus is reported as ErrTooManyElements.
// Returns ErrBadShape for a non-positive dimension.
// Complexity: O(rows*cols).
func Collect[T any](rows, cols int, seq iter.Seq[T], opts ...Option) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("Collect(%d,%d): %w", rows, cols, ErrBadShape)
	}
	cfg := gatherOptions(opts)

	m := &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}

	next, stop := iter.Pull(seq)
	// The deferred stop is the cleanup guard: it releases the producer on
	// every exit path, including a panic raised by the producer mid-pull.
	defer stop()

	filled := 0 // slots written so far; data[:filled] is initialized
	for filled < len(m.data) {
		v, ok := next()
		if !ok {
			return nil, &ShapeError{Rows: rows, Cols: cols, Got: filled}
		}
		m.data[filled] = v
		filled++
	}
	if cfg.exact {
		if _, ok := next(); ok {
			return nil, &ShapeError{Rows: rows, Cols: cols, Got: filled + 1, Surplus: true}
		}
	}
	return m, nil
}

// MustCollect is Collect for sequences known to fit the shape; it panics
// on any error.
func MustCollect[T any](rows, cols int, seq iter.Seq[T], opts ...Option) *Matrix[T] {
	m, err := Collect(rows, cols, seq, opts...)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// CollectUnchecked builds a matrix from a sequence the caller has proven
// yields at least rows*cols elements, such as an infinite generator.
// Exhaustion here is an unreachable state, not a recoverable outcome, so
// it is reported as a fault. Surplus elements are left unconsumed exactly
// as with Collect.
func CollectUnchecked[T any](rows, cols int, seq iter.Seq[T]) *Matrix[T] {
	m, err := Collect(rows, cols, seq)
	if err != nil {
		panic(fmt.Sprintf("vectrix: CollectUnchecked: short sequence: %v", err))
	}
	return m
}

// CollectSlice builds a rows×cols matrix from the leading rows*cols
// elements of values, with the same shape contract as Collect: too few
// elements is a *ShapeError and surplus elements are ignored.
// Complexity: O(rows*cols).
func CollectSlice[T any](rows, cols int, values []T, opts ...Option) (*Matrix[T], error) {
	return Collect(rows, cols, sliceSeq(values), opts...)
}

func sliceSeq[T any](values []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}
