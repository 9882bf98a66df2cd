// Package matrix_test provides benchmarks for the sparse kernels,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/sparsemat/matrix"
)

// benchSizes are the square matrix sizes to benchmark; density is fixed at ~2%.
var benchSizes = []int{128, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Sparse
	sinkE []matrix.Entry
)

func benchNNZ(n int) int { return n * n / 50 }

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randomSparse(b, 1337, n, n, benchNNZ(n))
			B := randomSparse(b, 4242, n, n, benchNNZ(n))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Add(B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	variants := []struct {
		name string
		opts []matrix.Option
	}{
		{"naive", []matrix.Option{matrix.WithStrategy(matrix.MulNaive)}},
		{"grouped", []matrix.Option{matrix.WithStrategy(matrix.MulGrouped)}},
		{"grouped-w4", []matrix.Option{matrix.WithStrategy(matrix.MulGrouped), matrix.WithWorkers(4)}},
	}
	for _, n := range benchSizes[:2] {
		A := randomSparse(b, 11, n, n, benchNNZ(n))
		B := randomSparse(b, 22, n, n, benchNNZ(n))
		for _, v := range variants {
			b.Run(fmt.Sprintf("%s/n=%d", v.name, n), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					m, err := A.Mul(B, v.opts...)
					if err != nil {
						b.Fatal(err)
					}
					sinkM = m
				}
			})
		}
	}
}

func BenchmarkEntries(b *testing.B) {
	b.ReportAllocs()
	A := randomSparse(b, 7, 512, 512, benchNNZ(512))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkE = A.Entries()
	}
}
