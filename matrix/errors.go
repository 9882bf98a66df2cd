// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the text-format error type.
// Every algorithm returns these sentinels (optionally wrapped with an op tag)
// and tests match them via errors.Is / errors.As. No exported function panics
// on user-triggered conditions; panics are reserved for invalid Option values.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping. Facades wrap sentinels as "<Op>: <cause>" through matrixErrorf;
// callers still use errors.Is to match.

var (
	// ErrFormat is matched by every *FormatError produced while decoding the
	// text representation (headers or data lines).
	ErrFormat = errors.New("matrix: malformed matrix text")

	// ErrDimensionMismatch indicates incompatible inner dimensions for Mul
	// (a.Cols() != b.Rows()). Add and Sub never return it: they widen.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidDimensions indicates that requested dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrNilMatrix indicates that a nil *Sparse (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Causes carried inside FormatError.Err. Kept unexported: callers match
// ErrFormat, tests in this package may match the precise cause.
var (
	errMissingHeader   = errors.New("missing header line")
	errHeaderSeparator = errors.New("header line has no '=' separator")
	errTripleShape     = errors.New("expected (row,col,value)")
)

// FormatError reports a text-format violation together with enough context
// for the caller to point at the offending input.
type FormatError struct {
	Source string // file path or caller-supplied label
	Line   int    // 1-based line number; 0 when the failure is not tied to a line
	Text   string // offending line content (trimmed)
	Err    error  // underlying cause (strconv error, errMissingHeader, ...)
}

// Error formats as `matrix: malformed matrix text: <source>:<line>: "<text>": <cause>`.
func (e *FormatError) Error() string {
	loc := e.Source
	if loc == "" {
		loc = defaultSource
	}
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, e.Line)
	}
	if e.Text != "" {
		return fmt.Sprintf("%s: %s: %q: %v", ErrFormat.Error(), loc, e.Text, e.Err)
	}

	return fmt.Sprintf("%s: %s: %v", ErrFormat.Error(), loc, e.Err)
}

// Unwrap exposes the underlying cause (e.g. strconv.ErrSyntax).
func (e *FormatError) Unwrap() error { return e.Err }

// Is reports ErrFormat as a match so errors.Is(err, ErrFormat) works for
// every FormatError regardless of its cause.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }
