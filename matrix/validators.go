// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the guard checks used by the kernels.
//  - Return plain sentinel errors (wrapped with the validator tag) so call
//    sites can wrap uniformly with their op tag.
//
// Note:
//  - Add/Sub deliberately have no shape validator: they widen to the larger
//    dimensions instead of failing.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures m is a non-nil *Sparse.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Sparse) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateBinary ensures both operands are non-nil.
func ValidateBinary(a, b *Sparse) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}

	return ValidateNotNil(b)
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols() == b.Rows().
// The mismatch error names both shapes.
func ValidateMulCompatible(a, b *Sparse) error {
	if err := ValidateBinary(a, b); err != nil {
		return err
	}
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d * %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch))
	}

	return nil
}
