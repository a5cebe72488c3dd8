// SPDX-License-Identifier: MIT

package matrix

import (
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// parallelRows runs fn over [0, n) split into contiguous row bands.
// Implementation:
//   - Stage 1: run inline when workers <= 1, n <= 1 or work < threshold.
//   - Stage 2: one band per worker (ceil(n/workers) rows), bounded by SetLimit.
//   - Stage 3: Wait joins every band before returning.
//
// Callers guarantee that bands touch disjoint output cells and only read the
// inputs, so no synchronization is needed inside fn.
//
// Complexity:
//   - Time O(work/workers) wall clock plus one goroutine per band.
func parallelRows(n, workers, work, threshold int, fn func(start, end int)) {
	if workers <= 1 || n <= 1 || work < threshold {
		fn(0, n)
		return
	}

	workers = min(workers, n)
	band := (n + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < n; start += band {
		s, e := start, min(start+band, n)
		g.Go(func() error {
			fn(s, e)
			return nil
		})
	}
	_ = g.Wait() // bands never fail; Wait is the join

	Logger().Debug("matrix: rows fanned out",
		slog.Int("rows", n), slog.Int("workers", workers), slog.Int("band", band))
}
