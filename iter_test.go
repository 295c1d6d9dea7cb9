package vectrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValuesOrder verifies forward iteration follows flat column-major
// order.
func TestValuesOrder(t *testing.T) {
	m := mustMatrix23(t)

	var got []int
	for v := range m.Values() {
		got = append(got, v)
	}
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, got)
}

// TestAllPairs verifies index/element pairs and early termination.
func TestAllPairs(t *testing.T) {
	m := mustMatrix23(t)

	var idx []int
	for k, v := range m.All() {
		require.Equal(t, k+1, v)
		idx = append(idx, k)
	}
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, idx)

	count := 0
	for range m.All() {
		count++
		if count == 2 {
			break
		}
	}
	require.Equal(t, 2, count)
}

// TestBackwardOrder verifies reverse iteration visits the last flat
// element first.
func TestBackwardOrder(t *testing.T) {
	m := mustMatrix23(t)

	var got []int
	for _, v := range m.Backward() {
		got = append(got, v)
	}
	require.Equal(t, []int{6, 5, 4, 3, 2, 1}, got)
}

// TestIterRows verifies row views are yielded top to bottom.
func TestIterRows(t *testing.T) {
	m := mustMatrix23(t)

	var rows [][]int
	for row := range m.IterRows() {
		rows = append(rows, row.CollectSlice())
	}
	require.Equal(t, [][]int{{1, 3, 5}, {2, 4, 6}}, rows)
}

// TestIterColumns verifies column views are yielded left to right.
func TestIterColumns(t *testing.T) {
	m := mustMatrix23(t)

	var cols [][]int
	for col := range m.IterColumns() {
		cols = append(cols, col.CollectSlice())
	}
	require.Equal(t, [][]int{{1, 2}, {3, 4}, {5, 6}}, cols)
}

// TestIterRowsEarlyBreak verifies the row iterator stops when the loop
// does.
func TestIterRowsEarlyBreak(t *testing.T) {
	m := mustMatrix23(t)

	count := 0
	for range m.IterRows() {
		count++
		break
	}
	require.Equal(t, 1, count)
}

// TestIterMutateThroughViews verifies an in-place sweep through yielded
// views.
func TestIterMutateThroughViews(t *testing.T) {
	m := mustMatrix23(t)
	for col := range m.IterColumns() {
		for i := 0; i < col.Len(); i++ {
			col.Set(i, col.At(i)*10)
		}
	}
	require.Equal(t, []int{10, 20, 30, 40, 50, 60}, m.AsSlice())
}
