// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the sparse kernels and codec.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsemat/matrix"
	"github.com/stretchr/testify/require"
)

// cells is a compact literal form for fixtures: coordinate -> value.
type cells map[matrix.Coord]int

// at is shorthand for matrix.Coord{Row: r, Col: c}.
func at(r, c int) matrix.Coord { return matrix.Coord{Row: r, Col: c} }

// MustSparse allocates a rows×cols matrix filled from init, or fails the test.
func MustSparse(tb testing.TB, rows, cols int, init cells) *matrix.Sparse {
	tb.Helper()
	m, err := matrix.NewSparse(rows, cols)
	require.NoError(tb, err)
	for k, v := range init {
		m.Set(k.Row, k.Col, v)
	}
	return m
}

// entriesOf collects the stored entries of m as a map for order-free comparison.
func entriesOf(m *matrix.Sparse) cells {
	out := cells{}
	for k, v := range m.All() {
		out[k] = v
	}
	return out
}

// requireEntries asserts m stores exactly want (no zero values) and no stored zeros.
func requireEntries(tb testing.TB, want cells, m *matrix.Sparse) {
	tb.Helper()
	require.Equal(tb, 0, matrix.StoredZeros_TestOnly(m), "stored zero found")
	require.Equal(tb, want, entriesOf(m))
}

// randomSparse builds a deterministic pseudo-random rows×cols matrix with about
// nnz entries drawn from [-9, 9].
func randomSparse(tb testing.TB, seed int64, rows, cols, nnz int) *matrix.Sparse {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustSparse(tb, rows, cols, nil)
	for i := 0; i < nnz; i++ {
		m.Set(rng.Intn(rows), rng.Intn(cols), rng.Intn(19)-9)
	}
	return m
}
