// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic on *Sparse: element-wise addition,
// subtraction, matrix multiplication and transpose. Every operation allocates
// a fresh result; operands are never mutated.
//
// Purpose:
//   - Declare the public facades (Add, Sub, Mul, Transpose) and the op tags
//     used for error wrapping.
//
// Notes:
//   - Add/Sub widen: result dims are max(rows) × max(cols) of the operands.
//     They never fail on a shape mismatch.
//   - Mul is strict: a.Cols() must equal b.Rows(), else ErrDimensionMismatch.
//   - Multiplication kernels live in impl_multiply.go.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opNew       = "NewSparse"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opParse     = "Parse"
	opReadFile  = "ReadFile"
	opWriteFile = "WriteFile"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign*b over the union of both entry sets.
//
// Implementation:
//   - Stage 1: Validate both operands are non-nil.
//   - Stage 2: Allocate result with widened dims (max rows, max cols).
//   - Stage 3: Copy every entry of a; then fold every entry of b into the
//     result with accumulate, which drops cells that cancel to zero.
//
// Complexity:
//   - Time O(|a| + |b|), Space O(|a| + |b|).
func addSub(a, b *Sparse, sign int, opTag string) (*Sparse, error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newSparse(max(a.rows, b.rows), max(a.cols, b.cols), len(a.entries)+len(b.entries))
	for k, v := range a.entries {
		res.entries[k] = v // a holds no zeros, copy as-is
	}
	for k, v := range b.entries {
		res.accumulate(k, sign*v)
	}

	return res, nil
}

// Add returns a + b as a new matrix.
//
// Behavior highlights:
//   - Mismatched shapes are not an error: the result is
//     max(a.Rows(), b.Rows()) × max(a.Cols(), b.Cols()).
//   - Cells that cancel out are not stored.
//
// Errors:
//   - ErrNilMatrix (nil operand).
//
// Complexity:
//   - Time O(|a| + |b|).
func (m *Sparse) Add(other *Sparse) (*Sparse, error) { return addSub(m, other, +1, opAdd) }

// Sub returns a - b as a new matrix, with the same widening rule as Add.
//
// Errors:
//   - ErrNilMatrix (nil operand).
func (m *Sparse) Sub(other *Sparse) (*Sparse, error) { return addSub(m, other, -1, opSub) }

// Mul returns the matrix product m × other, of shape m.Rows() × other.Cols().
//
// Implementation:
//   - Stage 1: Validate operands and inner dimensions (m.Cols() == other.Rows()).
//   - Stage 2: Resolve options (strategy, workers).
//   - Stage 3: Run the selected kernel, serially or partitioned over workers.
//
// Behavior highlights:
//   - Each product v1*v2 with matching inner index is summed into the output
//     cell; a running total that returns to zero removes the cell.
//   - Strategy and worker count never change the result.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrDimensionMismatch (inner mismatch).
//     No partial result is ever returned with an error.
//
// Complexity:
//   - MulNaive:   O(|m|·|other|).
//   - MulGrouped: O(|other| + Σ over left entries of |row of other|).
func (m *Sparse) Mul(other *Sparse, opts ...Option) (*Sparse, error) {
	if err := ValidateMulCompatible(m, other); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	o := gatherOptions(opts...)

	if o.workers > 1 && len(m.entries) > 1 {
		return mulParallel(m, other, o)
	}

	res := newSparse(m.rows, other.cols, 0)
	left := leftEntries(m)
	switch o.strategy {
	case MulGrouped:
		mulGroupedInto(res.accumulate, left, groupByRow(other))
	default:
		mulNaiveInto(res.accumulate, left, other)
	}

	return res, nil
}

// Transpose returns a new cols×rows matrix with every entry (r,c) moved to (c,r).
//
// Errors:
//   - ErrNilMatrix (nil receiver).
//
// Complexity: O(nnz).
func (m *Sparse) Transpose() (*Sparse, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := newSparse(m.cols, m.rows, len(m.entries))
	for k, v := range m.entries {
		res.entries[Coord{Row: k.Col, Col: k.Row}] = v
	}

	return res, nil
}
