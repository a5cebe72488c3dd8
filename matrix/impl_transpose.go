// SPDX-License-Identifier: MIT

package matrix

// Transpose returns a new matrix mᵀ of shape (m.Cols(), m.Rows()) with
// result(j, i) = m(i, j). The source is never mutated.
//
// Implementation:
//   - Stage 1: ValidateOperand(m). Allocate Dense(cols, rows) with m's options.
//   - Stage 2: fan out source rows; source row i becomes output column i,
//     which is contiguous, so each band writes its own disjoint columns.
//
// Errors:
//   - ErrNilMatrix, or ErrInvalidDimensions for a zero-value Dense; a
//     constructed matrix always transposes.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the result.
func Transpose[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateOperand(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	var zero T
	out := newDense(cols, rows, zero, m.opts)

	parallelRows(rows, m.opts.workers, rows*cols, m.opts.threshold, func(start, end int) {
		var i, j int
		for i = start; i < end; i++ {
			dst := out.column(i) // len == cols
			for j = 0; j < cols; j++ {
				dst[j] = m.buf.data[m.layout.offset(i, j)]
			}
		}
	})

	return out, nil
}

// T returns mᵀ; see Transpose.
func (m *Dense[T]) T() (*Dense[T], error) {
	return Transpose(m)
}
