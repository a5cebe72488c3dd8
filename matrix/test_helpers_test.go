// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and an independent reference
//     product (naive triple loop over row-major literals).

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/colmat/matrix"
	"github.com/katalvlaran/colmat/rng"
)

// mustFromRows builds a matrix from a literal or fails the test.
func mustFromRows[T matrix.Number](tb testing.TB, rows [][]T, opts ...matrix.Option) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.FromRows(rows, opts...)
	if err != nil {
		tb.Fatalf("FromRows: %v", err)
	}

	return m
}

// randomRows returns an r×c row-major literal with entries in [lo, hi).
func randomRows[T matrix.Number](g *rng.Rand, r, c, lo, hi int) [][]T {
	out := make([][]T, r)
	for i := range out {
		out[i] = make([]T, c)
		for j := range out[i] {
			out[i][j] = T(g.IntRange(lo, hi))
		}
	}

	return out
}

// naiveMul is the reference product: out[i][j] = sum_t a[i][t]*b[t][j], in T.
func naiveMul[T matrix.Number](a, b [][]T) [][]T {
	m, k, n := len(a), len(b), len(b[0])
	out := make([][]T, m)
	for i := 0; i < m; i++ {
		out[i] = make([]T, n)
		for j := 0; j < n; j++ {
			var sum T
			for t := 0; t < k; t++ {
				sum += a[i][t] * b[t][j]
			}
			out[i][j] = sum
		}
	}

	return out
}

// toRows reads every cell of m through the public accessor.
func toRows[T matrix.Number](tb testing.TB, m *matrix.Dense[T]) [][]T {
	tb.Helper()
	out := make([][]T, m.Rows())
	for i := range out {
		out[i] = make([]T, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			if err != nil {
				tb.Fatalf("At(%d,%d): %v", i, j, err)
			}
			out[i][j] = v
		}
	}

	return out
}
