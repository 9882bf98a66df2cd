// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Decode and encode the line-oriented text format:
//
//	rows=<int>
//	cols=<int>
//	(<row>,<col>,<value>)
//	...
//
// Decoding rules:
//   - Line 1 and line 2 are the headers, in that order. Only the right-hand
//     side of '=' is interpreted.
//   - Every later non-blank line is exactly one triple; whitespace at line
//     edges and around tokens is tolerated.
//   - Triples are applied in file order through Set, so a repeated coordinate
//     takes the later value (or is removed by a later zero).
//
// Encoding writes entries sorted by ascending (row, col).

package matrix

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
)

const (
	defaultSource = "<input>"
	headerSep     = "="
	tupleOpen     = "("
	tupleClose    = ")"
	tupleSep      = ","
	tupleFields   = 3
)

// Parse decodes a matrix from r. source labels errors (typically a path).
// Errors are *FormatError (matching ErrFormat) or I/O errors from r.
func Parse(r io.Reader, source string) (*Sparse, error) {
	if source == "" {
		source = defaultSource
	}
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, matrixErrorf(opParse, fmt.Errorf("%s: %w", source, err))
	}

	return ParseLines(lines, source)
}

// ParseString decodes a matrix from an in-memory string.
func ParseString(s string) (*Sparse, error) {
	return Parse(strings.NewReader(s), defaultSource)
}

// ParseLines decodes a matrix from already split lines.
//
// Implementation:
//   - Stage 1: require two header lines; parse rows then cols.
//   - Stage 2: allocate the matrix.
//   - Stage 3: parse each non-blank data line and apply it with Set.
//
// Errors:
//   - *FormatError (errors.Is(err, ErrFormat)) for any grammar violation,
//     carrying source, 1-based line number and the offending text.
//   - A negative header value is a FormatError whose cause is ErrInvalidDimensions.
func ParseLines(lines []string, source string) (*Sparse, error) {
	if source == "" {
		source = defaultSource
	}
	if len(lines) < 2 {
		return nil, &FormatError{Source: source, Line: len(lines) + 1, Err: errMissingHeader}
	}

	rows, err := parseHeader(lines[0], source, 1)
	if err != nil {
		return nil, err
	}
	cols, err := parseHeader(lines[1], source, 2)
	if err != nil {
		return nil, err
	}

	m := newSparse(rows, cols, len(lines)-2)
	for i := 2; i < len(lines); i++ {
		text := strings.TrimSpace(lines[i])
		if text == "" {
			continue // blank lines (including trailing ones) are ignored
		}
		r, c, v, perr := parseTriple(text)
		if perr != nil {
			return nil, &FormatError{Source: source, Line: i + 1, Text: text, Err: perr}
		}
		m.Set(r, c, v)
	}

	return m, nil
}

// parseHeader reads the integer right of '=' in a "key=<int>" line.
func parseHeader(line, source string, lineNo int) (int, error) {
	text := strings.TrimSpace(line)
	_, rhs, ok := strings.Cut(text, headerSep)
	if !ok {
		return 0, &FormatError{Source: source, Line: lineNo, Text: text, Err: errHeaderSeparator}
	}
	n, err := strconv.Atoi(strings.TrimSpace(rhs))
	if err != nil {
		return 0, &FormatError{Source: source, Line: lineNo, Text: text, Err: err}
	}
	if n < 0 {
		return 0, &FormatError{Source: source, Line: lineNo, Text: text, Err: ErrInvalidDimensions}
	}

	return n, nil
}

// parseTriple parses "(row,col,value)"; text is already trimmed.
func parseTriple(text string) (row, col, val int, err error) {
	if !strings.HasPrefix(text, tupleOpen) || !strings.HasSuffix(text, tupleClose) {
		return 0, 0, 0, errTripleShape
	}
	fields := strings.Split(text[1:len(text)-1], tupleSep)
	if len(fields) != tupleFields {
		return 0, 0, 0, errTripleShape
	}

	var nums [tupleFields]int
	for i, f := range fields {
		if nums[i], err = strconv.Atoi(strings.TrimSpace(f)); err != nil {
			return 0, 0, 0, err
		}
	}

	return nums[0], nums[1], nums[2], nil
}

// ReadFile memory-maps path read-only and decodes it. Errors carry the path.
// Empty files cannot be mapped; they are decoded from an empty buffer and
// fail with a missing-header FormatError.
func ReadFile(path string) (*Sparse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, matrixErrorf(opReadFile, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, matrixErrorf(opReadFile, err)
	}
	if info.Size() == 0 {
		return Parse(bytes.NewReader(nil), path)
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, matrixErrorf(opReadFile, fmt.Errorf("%s: %w", path, err))
	}
	defer data.Unmap()

	// Parse copies every line out of the mapping, so m outlives Unmap safely.
	return Parse(bytes.NewReader(data), path)
}

// WriteTo encodes m in the text format, entries sorted by (row, col).
// Implements io.WriterTo.
func (m *Sparse) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	write := func(format string, args ...any) error {
		n, err := fmt.Fprintf(bw, format, args...)
		total += int64(n)
		return err
	}

	if err := write("rows=%d\ncols=%d\n", m.rows, m.cols); err != nil {
		return total, err
	}
	for _, e := range m.Entries() {
		if err := write("(%d,%d,%d)\n", e.Row, e.Col, e.Value); err != nil {
			return total, err
		}
	}

	return total, bw.Flush()
}

// WriteFile encodes m into path, creating or truncating the file.
func WriteFile(path string, m *Sparse) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opWriteFile, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return matrixErrorf(opWriteFile, err)
	}
	if _, err = m.WriteTo(f); err != nil {
		_ = f.Close()
		return matrixErrorf(opWriteFile, fmt.Errorf("%s: %w", path, err))
	}

	return f.Close()
}

// MarshalText implements encoding.TextMarshaler using the text format.
func (m *Sparse) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, replacing m's contents.
func (m *Sparse) UnmarshalText(text []byte) error {
	parsed, err := Parse(bytes.NewReader(text), defaultSource)
	if err != nil {
		return err
	}
	*m = *parsed

	return nil
}
