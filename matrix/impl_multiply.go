// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Private multiplication kernels shared by Mul: the naive cross product,
//     the row-grouped merge-join, and the worker-partitioned driver.
//
// Determinism:
//   - Integer sums are order-independent, so every kernel produces the same
//     entry set. Partial results from workers are merged by summation.

package matrix

import (
	"golang.org/x/sync/errgroup"
)

// accumulator receives one product contribution for an output cell.
type accumulator func(k Coord, delta int)

// leftEntries snapshots the left operand's entries so they can be partitioned.
func leftEntries(m *Sparse) []Entry {
	out := make([]Entry, 0, len(m.entries))
	for k, v := range m.entries {
		out = append(out, Entry{Coord: k, Value: v})
	}

	return out
}

// mulNaiveInto crosses every left entry with every right entry and emits
// v1*v2 at (r1, c2) whenever c1 == r2. No index is built.
// Complexity: O(|left|·|right|).
func mulNaiveInto(acc accumulator, left []Entry, right *Sparse) {
	for _, a := range left {
		for kb, vb := range right.entries {
			if a.Col != kb.Row {
				continue
			}
			acc(Coord{Row: a.Row, Col: kb.Col}, a.Value*vb)
		}
	}
}

// groupByRow indexes m's entries by row: row -> entries of that row.
// Complexity: O(nnz).
func groupByRow(m *Sparse) map[int][]Entry {
	rows := make(map[int][]Entry)
	for k, v := range m.entries {
		rows[k.Row] = append(rows[k.Row], Entry{Coord: k, Value: v})
	}

	return rows
}

// mulGroupedInto joins each left entry (r1,c1) with the right row c1 only.
func mulGroupedInto(acc accumulator, left []Entry, rightRows map[int][]Entry) {
	for _, a := range left {
		for _, b := range rightRows[a.Col] {
			acc(Coord{Row: a.Row, Col: b.Col}, a.Value*b.Value)
		}
	}
}

// mulParallel partitions the left entries into o.workers chunks. Each worker
// sums its products into a private map; the maps are then folded into the
// result with accumulate, so cells written by several workers add up.
//
// Implementation:
//   - Stage 1: snapshot left entries, build the right row index once if grouped.
//   - Stage 2: one errgroup goroutine per chunk, each owning partials[w].
//   - Stage 3: merge partials sequentially into the result.
func mulParallel(a, b *Sparse, o Options) (*Sparse, error) {
	left := leftEntries(a)
	workers := min(o.workers, len(left))
	chunk := (len(left) + workers - 1) / workers

	var rightRows map[int][]Entry
	if o.strategy == MulGrouped {
		rightRows = groupByRow(b) // read-only while workers run
	}

	partials := make([]map[Coord]int, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(left))
		part := make(map[Coord]int)
		partials[w] = part
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			acc := func(k Coord, delta int) { part[k] += delta }
			if rightRows != nil {
				mulGroupedInto(acc, left[lo:hi], rightRows)
			} else {
				mulNaiveInto(acc, left[lo:hi], b)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res := newSparse(a.rows, b.cols, 0)
	for _, part := range partials {
		for k, v := range part {
			res.accumulate(k, v)
		}
	}

	return res, nil
}
