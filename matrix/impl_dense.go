// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (column-major) & safe accessors.
//
// Purpose:
//   - Provide a single-buffer column-major matrix with the index formula col*stride + row.
//   - Guarantee safety at the public surface: At/Set/Ref return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewFilled: O(allocated extent); At/Set/Ref: O(1); Clone: O(allocated extent).
package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtSep     = " "
	_fmtRowStop = "\n"
)

// Dense is a rows×cols matrix of T stored column-major in one buffer.
//   - layout holds logical and padded shape; every offset comes from layout.offset.
//   - buf owns the allocation token and the (aligned) data view.
//   - kern is the dot kernel resolved for T at construction.
type Dense[T Number] struct {
	layout Layout
	buf    buffer[T]
	fill   T
	opts   Options
	kern   kernel[T]
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float64])(nil)

// NewDense creates a rows×cols matrix with every element set to zero.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//
// Complexity:
//   - Time O(extent), Space O(extent).
func NewDense[T Number](rows, cols int, opts ...Option) (*Dense[T], error) {
	var zero T

	return NewFilled(rows, cols, zero, opts...)
}

// NewFilled creates a rows×cols matrix with every element (padding included)
// set to fill.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve options.
//   - Stage 3: compute layout, allocate and fill the buffer, pick the kernel.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation). No allocation happens.
//
// Complexity:
//   - Time O(extent), Space O(extent).
func NewFilled[T Number](rows, cols int, fill T, opts ...Option) (*Dense[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}

	return newDense(rows, cols, fill, gatherOptions(opts...)), nil
}

// newDense builds a matrix from an already-resolved Options snapshot.
// Callers have validated the shape.
func newDense[T Number](rows, cols int, fill T, o Options) *Dense[T] {
	l := newLayout(rows, cols, sizeOf[T](), o.padded)

	return &Dense[T]{
		layout: l,
		buf:    allocate(l.extent(), fill, o.padded),
		fill:   fill,
		opts:   o,
		kern:   kernelFor[T](o.scalarOnly),
	}
}

// FromRows builds a matrix from a row-major literal.
// Implementation:
//   - Stage 1: reject an empty outer slice or an empty first row.
//   - Stage 2: reject ragged rows.
//   - Stage 3: allocate and copy through the indexer.
//
// Errors:
//   - ErrInvalidDimensions (empty), ErrDimensionMismatch (ragged).
//
// Complexity:
//   - Time O(r*c), Space O(extent).
func FromRows[T Number](rows [][]T, opts ...Option) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opFromRows,
				fmt.Errorf("row %d has %d values, want %d: %w", i, len(rows[i]), c, ErrDimensionMismatch))
		}
	}

	var zero T
	m := newDense(r, c, zero, gatherOptions(opts...))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.buf.data[m.layout.offset(i, j)] = rows[i][j]
		}
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.layout.Rows }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.layout.Cols }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense[T]) Shape() (rows, cols int) { return m.layout.Rows, m.layout.Cols }

// Layout returns the storage layout (logical/padded shape and strides).
func (m *Dense[T]) Layout() Layout { return m.layout }

// Options returns the options captured at construction.
func (m *Dense[T]) Options() Options { return m.opts }

// FillValue returns the value the matrix was initialized with.
func (m *Dense[T]) FillValue() T { return m.fill }

// KernelName reports the dot kernel used by Mul with this matrix on the left.
func (m *Dense[T]) KernelName() string { return m.kern.name }

// checkBounds validates 0 ≤ row < Rows and 0 ≤ col < Cols.
// Returns the bare sentinel; public methods wrap with method and coordinates.
func (m *Dense[T]) checkBounds(row, col int) error {
	if row < 0 || row >= m.layout.Rows {
		return ErrOutOfRange
	}
	if col < 0 || col >= m.layout.Cols {
		return ErrOutOfRange
	}

	return nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Behavior highlights:
//   - Never panics on out-of-range; never clamps or wraps.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	if err := m.checkBounds(row, col); err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.buf.data[m.layout.offset(row, col)], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// A failed Set leaves the matrix untouched.
func (m *Dense[T]) Set(row, col int, v T) error {
	if err := m.checkBounds(row, col); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.buf.data[m.layout.offset(row, col)] = v

	return nil
}

// Ref returns a pointer to the slot at (row, col) for in-place updates,
// e.g. `*p += x`. The pointer stays valid for the life of the matrix because
// the buffer is never resized.
func (m *Dense[T]) Ref(row, col int) (*T, error) {
	if err := m.checkBounds(row, col); err != nil {
		return nil, denseErrorf(ctxRef, row, col, err)
	}

	return &m.buf.data[m.layout.offset(row, col)], nil
}

// Clone returns a deep copy (new allocation, same layout, options and kernel).
// Complexity: O(extent).
func (m *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{
		layout: m.layout,
		buf:    m.buf.clone(m.opts.padded),
		fill:   m.fill,
		opts:   m.opts,
		kern:   m.kern,
	}
}

// extractRow gathers row i into dst[:Cols()] (column order).
// Column-major rows are strided by AllocatedRows; this is the one
// cache-unfriendly walk in the kernel.
func (m *Dense[T]) extractRow(i int, dst []T) {
	cols := m.layout.Cols
	dst = dst[:cols]
	for j := 0; j < cols; j++ {
		dst[j] = m.buf.data[m.layout.offset(i, j)]
	}
}

// column returns the contiguous logical part of column j (len == Rows()).
// The slice is capped so padding below the last row is unreachable.
func (m *Dense[T]) column(j int) []T {
	base := m.layout.offset(0, j)
	end := base + m.layout.Rows

	return m.buf.data[base:end:end]
}

// String renders one line per row with space-separated values.
// Intended for debugging; not a stable format.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.layout.Rows; i++ {
		for j = 0; j < m.layout.Cols; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprint(&b, m.buf.data[m.layout.offset(i, j)])
		}
		b.WriteString(_fmtRowStop)
	}

	return b.String()
}

// Aligned reports whether the data view and every column base start on an
// AlignBytes boundary. Always true for padded matrices.
func (m *Dense[T]) Aligned() bool {
	for j := 0; j < m.layout.Cols; j++ {
		if !isAligned(m.column(j)) {
			return false
		}
	}

	return isAligned(m.buf.data)
}
