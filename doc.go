// Package sparsemat is a small toolkit for exact integer sparse matrices:
// storage that keeps only non-zero cells, the three core operations and a
// plain-text file format.
//
// What is inside?
//
//	• Sparse storage: coordinate-keyed map, zero writes delete the cell
//	• Arithmetic: Add / Sub (widening) and Mul (strict inner dimension)
//	• Kernels: naive cross product, row-grouped merge-join, worker partitioning
//	• Text codec: "rows=/cols=/(r,c,v)" reader (memory-mapped) and sorted writer
//	• CLI: cmd/sparsematrix runs one operation over a directory of inputs
//
// Layout:
//
//	matrix/          — Sparse type, operations, options, codec, errors
//	internal/config/ — defaults, YAML loading, validation for the CLI
//	internal/cli/    — input discovery, operation dispatch, result writing
//	cmd/sparsematrix — flags, logging setup, exit codes
//
// Quick example:
//
//	a, _ := matrix.ParseString("rows=2\ncols=2\n(0,0,1)\n(1,1,2)\n")
//	b, _ := matrix.ReadFile("b.txt")
//	c, err := a.Mul(b, matrix.WithStrategy(matrix.MulGrouped))
//	if err != nil { /* errors.Is(err, matrix.ErrDimensionMismatch) */ }
//	_ = matrix.WriteFile("c.txt", c)
//
// Install:
//
//	go get github.com/katalvlaran/sparsemat/matrix
package sparsemat
