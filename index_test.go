package vectrix_test

import (
	"testing"

	"github.com/rossmacarthur/vectrix"
	"github.com/stretchr/testify/require"
)

// mustMatrix23 builds the reference 2×3 matrix
//
//	┌        ┐
//	│ 1 3 5  │
//	│ 2 4 6  │
//	└        ┘
//
// whose column-major block is [1, 2, 3, 4, 5, 6].
func mustMatrix23(t *testing.T) *vectrix.Matrix[int] {
	t.Helper()
	m, err := vectrix.FromColumnMajor(2, 3, []int{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	return m
}

// TestGetFlat verifies the checked tier with flat offsets.
func TestGetFlat(t *testing.T) {
	m := mustMatrix23(t)

	for k := 0; k < 6; k++ {
		v, ok := m.Get(vectrix.Flat(k))
		require.True(t, ok)
		require.Equal(t, k+1, v)
	}

	_, ok := m.Get(vectrix.Flat(6))
	require.False(t, ok)
	_, ok = m.Get(vectrix.Flat(-1))
	require.False(t, ok)
}

// TestGetCoord verifies the checked tier with coordinate pairs, including
// out-of-range in either the row or the column.
func TestGetCoord(t *testing.T) {
	m := mustMatrix23(t)

	v, ok := m.Get(vectrix.Coord{Row: 1, Col: 2})
	require.True(t, ok)
	require.Equal(t, 6, v)

	cases := []vectrix.Coord{
		{Row: 2, Col: 0},
		{Row: 0, Col: 3},
		{Row: -1, Col: 0},
		{Row: 0, Col: -1},
	}
	for _, c := range cases {
		_, ok := m.Get(c)
		require.False(t, ok, "coord %v", c)
	}
}

// TestCoordOffsetFormula pins the column-major mapping
// offset = col*rows + row through both index forms.
func TestCoordOffsetFormula(t *testing.T) {
	m := mustMatrix23(t)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			want := m.IndexOf(vectrix.Flat(j*m.Rows() + i))
			require.Equal(t, want, m.IndexOf(vectrix.Coord{Row: i, Col: j}))
		}
	}
}

// TestGetPtrMutates verifies in-place mutation through the checked tier.
func TestGetPtrMutates(t *testing.T) {
	m := mustMatrix23(t)

	p, ok := m.GetPtr(vectrix.Coord{Row: 0, Col: 1})
	require.True(t, ok)
	*p = 30
	require.Equal(t, 30, m.AtFlat(2))

	_, ok = m.GetPtr(vectrix.Flat(99))
	require.False(t, ok)
}

// TestIndexOfPanics verifies the faulting tier reports out-of-bounds
// indexes as panics, never as truncation.
func TestIndexOfPanics(t *testing.T) {
	m := mustMatrix23(t)

	require.PanicsWithValue(t, "vectrix: index 6 out of range for 2×3 matrix", func() {
		m.IndexOf(vectrix.Flat(6))
	})
	require.Panics(t, func() { m.At(2, 0) })
	require.Panics(t, func() { m.At(0, 3) })
	require.Panics(t, func() { m.Set(-1, 0, 0) })
	require.Panics(t, func() { m.AtFlat(-1) })
	require.Panics(t, func() { m.SetFlat(6, 0) })
}

// TestAtSetRoundTrip verifies writes land at the addressed coordinate and
// nowhere else.
func TestAtSetRoundTrip(t *testing.T) {
	m := vectrix.MustNew[int](2, 3)
	m.Set(1, 2, 6)
	m.SetFlat(0, 1)

	require.Equal(t, 6, m.At(1, 2))
	require.Equal(t, 1, m.At(0, 0))
	require.Equal(t, []int{1, 0, 0, 0, 0, 6}, m.AsSlice())
}
