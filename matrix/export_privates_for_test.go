// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels and causes.
//
// Purpose:
//   - Expose the unexported multiplication kernels and FormatError causes to
//     matrix_test ONLY (this file ends in _test.go, so it never ships).
//   - Lets tests pin each kernel independently of the Mul facade.

var (
	// ErrMissingHeader is the FormatError cause for fewer than two header lines.
	ErrMissingHeader = errMissingHeader
	// ErrHeaderSeparator is the FormatError cause for a header without '='.
	ErrHeaderSeparator = errHeaderSeparator
	// ErrTripleShape is the FormatError cause for a malformed data line.
	ErrTripleShape = errTripleShape
)

// MulNaive_TestOnly runs the naive kernel serially.
func MulNaive_TestOnly(a, b *Sparse) *Sparse {
	res := newSparse(a.rows, b.cols, 0)
	mulNaiveInto(res.accumulate, leftEntries(a), b)
	return res
}

// MulGrouped_TestOnly runs the row-grouped kernel serially.
func MulGrouped_TestOnly(a, b *Sparse) *Sparse {
	res := newSparse(a.rows, b.cols, 0)
	mulGroupedInto(res.accumulate, leftEntries(a), groupByRow(b))
	return res
}

// StoredZeros_TestOnly counts entries whose value is 0 (must always be 0).
func StoredZeros_TestOnly(m *Sparse) int {
	n := 0
	for _, v := range m.entries {
		if v == 0 {
			n++
		}
	}
	return n
}
