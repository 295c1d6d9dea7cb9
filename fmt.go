// Package vectrix: human-readable rendering.
//
// String consumes only the read-only iteration surface (IterColumns,
// IterRows); it never reaches into the backing block.

package vectrix

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// String renders the matrix in an aligned, bracketed grid, one line per
// row, with each column padded to its widest element:
//
//	 ┌        ┐
//	 │  1  4  │
//	 │  2  5  │
//	 │  3  6  │
//	 └        ┘
//
// The rendering starts and ends with a newline so it composes cleanly
// inside larger log or test output.
// Complexity: O(rows*cols).
func (m *Matrix[T]) String() string {
	// First pass: widest rendering per column.
	widths := make([]int, 0, m.cols)
	for column := range m.IterColumns() {
		width := 0
		for v := range column.Values() {
			if n := utf8.RuneCountInString(fmt.Sprint(v)); n > width {
				width = n
			}
		}
		widths = append(widths, width)
	}

	var b strings.Builder
	writeRule := func(open, close string) {
		b.WriteString(open)
		for _, w := range widths {
			b.WriteString(strings.Repeat(" ", w+2))
		}
		b.WriteString(close)
	}

	writeRule("\n ┌", "┐\n")
	for row := range m.IterRows() {
		b.WriteString(" │")
		i := 0
		for v := range row.Values() {
			fmt.Fprintf(&b, " %*s ", widths[i], fmt.Sprint(v))
			i++
		}
		b.WriteString("│\n")
	}
	writeRule(" └", "┘\n")

	return b.String()
}
