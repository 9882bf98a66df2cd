// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/sparsemat/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewSparse_Dimensions(t *testing.T) {
	m, err := matrix.NewSparse(3, 4)
	require.NoError(t, err)
	r, c := m.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Zero(t, m.NNZ())

	empty, err := matrix.NewSparse(0, 0)
	require.NoError(t, err)
	require.Zero(t, empty.NNZ())
}

func TestNewSparse_NegativeDimensions(t *testing.T) {
	for _, d := range [][2]int{{-1, 2}, {2, -1}, {-3, -3}} {
		_, err := matrix.NewSparse(d[0], d[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestSetAt_RoundTrip(t *testing.T) {
	m := MustSparse(t, 5, 5, nil)
	tests := []struct {
		r, c, v int
	}{
		{0, 0, 1}, {4, 4, -7}, {2, 3, 1 << 40}, {1, 0, -1},
	}
	for _, tc := range tests {
		m.Set(tc.r, tc.c, tc.v)
		require.Equal(t, tc.v, m.At(tc.r, tc.c))
	}
	require.Equal(t, len(tests), m.NNZ())
}

func TestSet_OverwriteKeepsSingleEntry(t *testing.T) {
	m := MustSparse(t, 2, 2, nil)
	m.Set(1, 1, 3)
	m.Set(1, 1, 8)
	require.Equal(t, 8, m.At(1, 1))
	require.Equal(t, 1, m.NNZ())
}

func TestSet_ZeroRemovesEntry(t *testing.T) {
	m := MustSparse(t, 2, 2, cells{at(0, 1): 5, at(1, 0): 6})
	m.Set(0, 1, 0)
	require.Zero(t, m.At(0, 1))
	requireEntries(t, cells{at(1, 0): 6}, m)

	// Zero on an absent coordinate is a no-op.
	m.Set(1, 1, 0)
	requireEntries(t, cells{at(1, 0): 6}, m)
}

func TestAt_OutsideDeclaredBounds(t *testing.T) {
	m := MustSparse(t, 2, 2, cells{at(0, 0): 1})
	require.Zero(t, m.At(-1, 0))
	require.Zero(t, m.At(2, 2))
	require.Zero(t, m.At(100, -100))

	// Writes are not bounds-checked either.
	m.Set(7, 9, 4)
	require.Equal(t, 4, m.At(7, 9))
	r, c := m.Dims()
	require.Equal(t, [2]int{2, 2}, [2]int{r, c})
}

func TestZeroValueSparse_IsUsable(t *testing.T) {
	var m matrix.Sparse
	require.Zero(t, m.At(0, 0))
	m.Set(0, 0, 0)
	m.Set(1, 2, 3)
	require.Equal(t, 3, m.At(1, 2))
	require.Equal(t, 1, m.NNZ())
}

func TestEntries_SortedByRowThenCol(t *testing.T) {
	m := MustSparse(t, 3, 3, cells{
		at(2, 0): 1, at(0, 2): 2, at(1, 1): 3, at(0, 0): 4, at(2, 2): 5, at(1, 0): 6,
	})
	got := m.Entries()
	require.Len(t, got, 6)
	want := []matrix.Coord{at(0, 0), at(0, 2), at(1, 0), at(1, 1), at(2, 0), at(2, 2)}
	for i, e := range got {
		require.Equal(t, want[i], e.Coord)
		require.NotZero(t, e.Value)
	}
}

func TestAll_StopsEarly(t *testing.T) {
	m := MustSparse(t, 3, 3, cells{at(0, 0): 1, at(1, 1): 2, at(2, 2): 3})
	seen := 0
	for range m.All() {
		seen++
		if seen == 2 {
			break
		}
	}
	require.Equal(t, 2, seen)
}

func TestClone_Independent(t *testing.T) {
	m := MustSparse(t, 2, 2, cells{at(0, 0): 1})
	c := m.Clone()
	require.True(t, m.Equal(c))
	c.Set(1, 1, 9)
	require.Zero(t, m.At(1, 1))
	require.False(t, m.Equal(c))
}

func TestEqual_DimensionsMatter(t *testing.T) {
	a := MustSparse(t, 2, 2, cells{at(0, 0): 1})
	b := MustSparse(t, 3, 3, cells{at(0, 0): 1})
	require.True(t, a.EqualEntries(b))
	require.False(t, a.Equal(b))
}

func TestCoordLess(t *testing.T) {
	require.True(t, at(0, 5).Less(at(1, 0)))
	require.True(t, at(1, 0).Less(at(1, 1)))
	require.False(t, at(1, 1).Less(at(1, 1)))
	require.False(t, at(2, 0).Less(at(1, 9)))
}
