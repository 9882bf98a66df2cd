// SPDX-License-Identifier: MIT
// Package matrix provides the sparse integer matrix used by the arithmetic
// kernels. Sparse stores only non-zero cells in a map keyed by Coord
// (dictionary-of-keys layout).
package matrix

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Sparse is an integer matrix that stores only non-zero entries.
// rows/cols are the declared dimensions, fixed at construction.
//
// Invariants:
//   - entries never maps a coordinate to 0 (Set deletes instead).
//   - stored coordinates are NOT checked against rows/cols; callers and the
//     text decoder are trusted.
//
// The zero value is an empty 0×0 matrix ready for use.
type Sparse struct {
	rows, cols int           // declared dimensions
	entries    map[Coord]int // non-zero cells only
}

// NewSparse creates an empty rows×cols matrix.
// Stage 1 (Validate): reject negative dimensions (zero is allowed).
// Stage 2 (Finalize): return a matrix with an empty entry map.
// Complexity: O(1).
func NewSparse(rows, cols int) (*Sparse, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNew, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}

	return newSparse(rows, cols, 0), nil
}

// newSparse allocates without validation; kernels use it with dimensions
// derived from already valid operands.
func newSparse(rows, cols, hint int) *Sparse {
	return &Sparse{rows: rows, cols: cols, entries: make(map[Coord]int, hint)}
}

// Rows returns the declared number of rows.
func (m *Sparse) Rows() int { return m.rows }

// Cols returns the declared number of columns.
func (m *Sparse) Cols() int { return m.cols }

// Dims returns (rows, cols).
func (m *Sparse) Dims() (rows, cols int) { return m.rows, m.cols }

// NNZ returns the number of stored (non-zero) entries.
func (m *Sparse) NNZ() int { return len(m.entries) }

// At returns the value at (row, col), or 0 when nothing is stored there.
// Any integer coordinate is accepted, including ones outside the declared
// dimensions. Never mutates. Complexity: O(1) amortized.
func (m *Sparse) At(row, col int) int {
	return m.entries[Coord{Row: row, Col: col}] // missing key yields 0
}

// Set stores v at (row, col). A zero v removes any existing entry, which is
// how the no-stored-zeros invariant is enforced. Never fails.
// Complexity: O(1) amortized.
func (m *Sparse) Set(row, col, v int) {
	m.set(Coord{Row: row, Col: col}, v)
}

// set is the single mutation point shared by Set and the kernels.
func (m *Sparse) set(k Coord, v int) {
	if v == 0 {
		delete(m.entries, k) // no-op when absent (nil map included)
		return
	}
	if m.entries == nil {
		m.entries = make(map[Coord]int)
	}
	m.entries[k] = v
}

// accumulate adds delta to the value at k, dropping the entry when the
// running total returns to zero.
func (m *Sparse) accumulate(k Coord, delta int) {
	m.set(k, m.entries[k]+delta)
}

// All iterates over the stored entries in unspecified order.
// The matrix must not be mutated while iterating.
func (m *Sparse) All() iter.Seq2[Coord, int] {
	return func(yield func(Coord, int) bool) {
		for k, v := range m.entries {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Entries returns a snapshot of the stored entries sorted by ascending
// (row, col). This is the deterministic view used by serializers.
// Complexity: O(nnz log nnz).
func (m *Sparse) Entries() []Entry {
	out := make([]Entry, 0, len(m.entries))
	for k, v := range m.entries {
		out = append(out, Entry{Coord: k, Value: v})
	}
	slices.SortFunc(out, func(a, b Entry) int {
		switch {
		case a.Less(b.Coord):
			return -1
		case b.Less(a.Coord):
			return 1
		default:
			return 0
		}
	})

	return out
}

// Clone returns a deep copy; the copy shares no storage with m.
// Complexity: O(nnz).
func (m *Sparse) Clone() *Sparse {
	out := newSparse(m.rows, m.cols, len(m.entries))
	for k, v := range m.entries {
		out.entries[k] = v
	}

	return out
}

// EqualEntries reports whether m and o store exactly the same non-zero
// entries, ignoring declared dimensions.
func (m *Sparse) EqualEntries(o *Sparse) bool {
	if len(m.entries) != len(o.entries) {
		return false
	}
	for k, v := range m.entries {
		if ov, ok := o.entries[k]; !ok || ov != v {
			return false
		}
	}

	return true
}

// Equal reports whether m and o have the same dimensions and entries.
func (m *Sparse) Equal(o *Sparse) bool {
	return m.rows == o.rows && m.cols == o.cols && m.EqualEntries(o)
}

// String renders the matrix in the text format (header plus sorted triples)
// for debugging. Use WriteTo for I/O.
func (m *Sparse) String() string {
	var sb strings.Builder
	_, _ = m.WriteTo(&sb) // strings.Builder never fails

	return sb.String()
}
