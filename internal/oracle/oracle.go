// SPDX-License-Identifier: MIT

// Package oracle cross-checks matrix results against gonum.
//
// It is a correctness reference only: conversions go through float64, so it
// is exact for integer-valued inputs whose products fit in 2^53.
package oracle

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/colmat/matrix"
)

// ErrMismatch reports a cell that differs from the reference beyond tolerance.
var ErrMismatch = errors.New("oracle: result differs from reference")

// ToGonum copies m into a new *mat.Dense.
// Complexity: O(r*c).
func ToGonum[T matrix.Number](m *matrix.Dense[T]) *mat.Dense {
	r, c := m.Shape()
	d := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, _ := m.At(i, j) // in range by construction
			d.Set(i, j, float64(v))
		}
	}

	return d
}

// Product returns the reference a·b. Shapes are checked first because
// mat.Dense.Mul panics on mismatch.
func Product[T matrix.Number](a, b *matrix.Dense[T]) (*mat.Dense, error) {
	if a.Cols() != b.Rows() {
		return nil, fmt.Errorf("oracle: %dx%d * %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), matrix.ErrDimensionMismatch)
	}
	var out mat.Dense
	out.Mul(ToGonum(a), ToGonum(b))

	return &out, nil
}

// Transpose returns the reference mᵀ as a materialized copy.
func Transpose[T matrix.Number](m *matrix.Dense[T]) *mat.Dense {
	return mat.DenseCopyOf(ToGonum(m).T())
}

// Compare checks got against want cell by cell with
// |got-want| <= tol*max(1, |want|).
// Errors:
//   - matrix.ErrDimensionMismatch when shapes differ.
//   - ErrMismatch (with the first offending cell) otherwise.
func Compare[T matrix.Number](got *matrix.Dense[T], want mat.Matrix, tol float64) error {
	wr, wc := want.Dims()
	if got.Rows() != wr || got.Cols() != wc {
		return fmt.Errorf("oracle: got %dx%d, want %dx%d: %w",
			got.Rows(), got.Cols(), wr, wc, matrix.ErrDimensionMismatch)
	}
	for j := 0; j < wc; j++ {
		for i := 0; i < wr; i++ {
			v, _ := got.At(i, j)
			g, w := float64(v), want.At(i, j)
			if !(math.Abs(g-w) <= tol*math.Max(1, math.Abs(w))) {
				return fmt.Errorf("oracle: cell (%d,%d): got %v, want %v: %w", i, j, g, w, ErrMismatch)
			}
		}
	}

	return nil
}
