// SPDX-License-Identifier: MIT

package matrix

import "math"

// Equal reports whether a and b have the same shape and element-equal
// logical contents. Padding and options are ignored. Nil matrices are equal
// only to each other.
// Complexity: O(r*c).
func Equal[T Number](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	var i, j int
	for j = 0; j < a.Cols(); j++ {
		ca, cb := a.column(j), b.column(j)
		for i = range ca {
			if ca[i] != cb[i] {
				return false
			}
		}
	}

	return true
}

// AllClose reports whether |a-b| <= atol + rtol*|b| holds element-wise,
// evaluated in float64.
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: column walk; NaN never compares close.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "AllClose: ").
//   - Panics never; negative tolerances simply make every pair fail.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose[T Number](a, b *Dense[T], rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	var i, j int
	var x, y float64
	for j = 0; j < a.Cols(); j++ {
		ca, cb := a.column(j), b.column(j)
		for i = range ca {
			x, y = float64(ca[i]), float64(cb[i])
			if !(math.Abs(x-y) <= atol+rtol*math.Abs(y)) {
				return false, nil
			}
		}
	}

	return true, nil
}

// FirstDiff returns the first (row, col) in column-major order where a and b
// differ by more than atol + rtol*|b|, or ok=false when none does.
// Shapes must match.
func FirstDiff[T Number](a, b *Dense[T], rtol, atol float64) (row, col int, ok bool, err error) {
	if err = ValidateSameShape(a, b); err != nil {
		return 0, 0, false, matrixErrorf(opAllClose, err)
	}
	var x, y float64
	for col = 0; col < a.Cols(); col++ {
		ca, cb := a.column(col), b.column(col)
		for row = range ca {
			x, y = float64(ca[row]), float64(cb[row])
			if !(math.Abs(x-y) <= atol+rtol*math.Abs(y)) {
				return row, col, true, nil
			}
		}
	}

	return 0, 0, false, nil
}

