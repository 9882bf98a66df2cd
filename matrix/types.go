// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the sparse storage, the kernels and
// the text codec. Errors and options live in dedicated files (errors.go,
// options.go).
package matrix

// Coord is a (row, column) cell address. It is comparable and used directly
// as the map key of the sparse storage.
// Coordinates are not bounds-checked against the matrix dimensions.
type Coord struct {
	Row int // row index
	Col int // column index
}

// Less reports whether c sorts before o in ascending (row, col) order.
// Complexity: O(1).
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}

	return c.Col < o.Col
}

// Entry is one stored non-zero value together with its coordinate.
type Entry struct {
	Coord
	Value int // never 0 when produced by a *Sparse
}

// Strategy selects the multiplication kernel used by Mul.
type Strategy int

const (
	// MulNaive crosses every left entry with every right entry and keeps the
	// pairs whose inner indices agree. Cost O(|A|·|B|).
	MulNaive Strategy = iota

	// MulGrouped indexes the right operand by row first, so each left entry
	// only meets the right entries of the matching row (merge-join).
	MulGrouped
)

// String returns the lower-case strategy name used by configs and flags.
func (s Strategy) String() string {
	switch s {
	case MulNaive:
		return "naive"
	case MulGrouped:
		return "grouped"
	default:
		return "unknown"
	}
}
