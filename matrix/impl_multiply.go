// SPDX-License-Identifier: MIT

package matrix

import "log/slog"

// Mul returns C = A·B as a new matrix of shape (A.Rows(), B.Cols()).
// MAIN DESCRIPTION:
//   - Row-by-column dot products over a column-major layout.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); nothing is allocated on failure.
//   - Stage 2: allocate C with A's options (padding, kernel policy, workers).
//   - Stage 3: fan out output rows; each band owns one aligned scratch row,
//     gathers row i of A into it, then dots it against every contiguous
//     column j of B with A's kernel.
//
// Behavior highlights:
//   - Inputs are read only; bands write disjoint rows of C, so no locks.
//   - Inner loops run to the logical k = A.Cols(); padding never enters a sum.
//   - Accumulation happens in T: integers wrap, floats are not widened.
//   - Integer results are identical for any worker count. Float results may
//     differ from a left-to-right sum by rounding when a lane kernel is used.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (zero-value operand),
//     ErrDimensionMismatch (wrapped with "Mul: ").
//
// Complexity:
//   - Time O(m*n*k), Space O(m*n) for C plus O(k) scratch per band.
func Mul[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	m, k, n := a.Rows(), a.Cols(), b.Cols()
	var zero T
	out := newDense(m, n, zero, a.opts)
	dot := a.kern.dot

	parallelRows(m, a.opts.workers, m*n*k, a.opts.threshold, func(start, end int) {
		scratch := allocate(k, zero, a.opts.padded).data // private to this band
		var i, j int
		for i = start; i < end; i++ {
			a.extractRow(i, scratch)
			for j = 0; j < n; j++ {
				out.buf.data[out.layout.offset(i, j)] = dot(scratch, b.column(j))
			}
		}
	})

	Logger().Debug("matrix: multiply",
		slog.Int("m", m), slog.Int("k", k), slog.Int("n", n),
		slog.String("kernel", a.kern.name))

	return out, nil
}

// Mul returns m·b; see the package-level Mul.
func (m *Dense[T]) Mul(b *Dense[T]) (*Dense[T], error) {
	return Mul(m, b)
}
