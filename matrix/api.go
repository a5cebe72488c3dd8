// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change loop orders or options of the underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// NewZeros returns a zero-initialized rows×cols matrix.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros[T Number](rows, cols int, opts ...Option) (*Dense[T], error) {
	return NewDense[T](rows, cols, opts...)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(extent) zeroing + O(n) diagonal writes.
func NewIdentity[T Number](n int, opts ...Option) (*Dense[T], error) {
	id, err := NewDense[T](n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.buf.data[id.layout.offset(i, i)] = 1
	}

	return id, nil
}

// Product is an alias of Mul.
func Product[T Number](a, b *Dense[T]) (*Dense[T], error) { return Mul(a, b) }

// Transposed is an alias of Transpose.
func Transposed[T Number](m *Dense[T]) (*Dense[T], error) { return Transpose(m) }

// MustFromRows is FromRows that panics on error. Intended for literals in
// examples and tests where the shape is known to be valid.
func MustFromRows[T Number](rows [][]T, opts ...Option) *Dense[T] {
	m, err := FromRows(rows, opts...)
	if err != nil {
		panic(err)
	}

	return m
}
