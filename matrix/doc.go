// Package matrix implements a sparse integer matrix and its arithmetic.
//
// The matrix package provides:
//
//   - Sparse: a dictionary-of-keys matrix storing only non-zero cells,
//     addressed by Coord{Row, Col}. Set with a zero value deletes the cell.
//   - Add / Sub: element-wise arithmetic that widens mismatched operands to
//     max(rows) × max(cols) instead of failing.
//   - Mul: matrix product with a strict inner-dimension check
//     (ErrDimensionMismatch), a naive or row-grouped kernel (WithStrategy)
//     and optional worker partitioning (WithWorkers).
//   - A line-oriented text codec (Parse, ReadFile, WriteTo, WriteFile) for
//     the "rows=/cols=/(r,c,v)" format, reporting *FormatError on bad input.
//
// Reads outside the declared dimensions are allowed and return 0; coordinates
// are never bounds-checked. All arithmetic returns a new matrix and leaves
// the operands untouched. A *Sparse is not safe for concurrent mutation.
//
// See the examples in this package for usage patterns.
package matrix
