// SPDX-License-Identifier: MIT

// Package matrix - column-major layout and the single index formula.
//
// Purpose:
//   - Own the ONLY place where (row, col) becomes a linear offset.
//   - Describe the padded extent so storage, accessors and kernels agree on strides.
//
// Element (row, col) lives at col*AllocatedRows + row. Without padding
// AllocatedRows == Rows and AllocatedCols == Cols.
package matrix

// AlignBytes is the byte boundary of the data view and of every column when
// padding is enabled. It equals one 128-bit vector register.
const AlignBytes = 16

// PadElems is the multiple that allocated row/column counts are rounded up to.
// A multiple of 16 elements keeps column starts on AlignBytes for every
// element size up to 16 bytes.
const PadElems = 16

// Layout describes how a Dense maps logical coordinates onto its buffer.
type Layout struct {
	Rows, Cols                   int  // logical shape
	AllocatedRows, AllocatedCols int  // padded shape (== logical when !Padded)
	RowStrideBytes               int  // distance between (r,c) and (r+1,c)
	ColStrideBytes               int  // distance between (r,c) and (r,c+1)
	Padded                       bool // alignment-aware layout in use
}

// newLayout computes strides for a rows×cols matrix of elemSize-byte elements.
// Complexity: O(1).
func newLayout(rows, cols, elemSize int, padded bool) Layout {
	l := Layout{
		Rows:          rows,
		Cols:          cols,
		AllocatedRows: rows,
		AllocatedCols: cols,
		Padded:        padded,
	}
	if padded {
		l.AllocatedRows = roundUp(rows, PadElems)
		l.AllocatedCols = roundUp(cols, PadElems)
	}
	l.RowStrideBytes = elemSize
	l.ColStrideBytes = l.AllocatedRows * elemSize

	return l
}

// offset is the Indexer: pure, no bounds checks (the accessor owns those).
func (l Layout) offset(row, col int) int {
	return col*l.AllocatedRows + row
}

// extent is the number of elements in the allocated (possibly padded) region.
func (l Layout) extent() int {
	return l.AllocatedRows * l.AllocatedCols
}

// roundUp returns the smallest multiple of m that is >= n (n, m > 0).
func roundUp(n, m int) int {
	return (n + m - 1) / m * m
}
