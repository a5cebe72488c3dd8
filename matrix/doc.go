// Package matrix provides a generic, column-major dense matrix kernel.
//
// The package offers:
//
//   - Dense[T], a rows×cols container for any Number type, backed by a single
//     buffer. Element (row, col) lives at col*AllocatedRows + row.
//   - An alignment-aware layout (default): allocated rows and columns are
//     rounded up to PadElems and the data view and every column start on a
//     16-byte boundary. WithNoPadding selects the tight layout.
//   - Bounds-checked access (At, Set, Ref) returning ErrOutOfRange.
//   - Mul: row-by-column dot products with a 4-lane float32 / 2-lane float64
//     kernel where the CPU has 128-bit vectors, and a scalar kernel for every
//     other type and for remainders. Output rows are fanned out across workers.
//   - Transpose: a fresh (cols×rows) matrix, fanned out by source rows.
//
// Errors are sentinels (ErrInvalidDimensions, ErrOutOfRange,
// ErrDimensionMismatch, ErrNilMatrix) matched with errors.Is.
//
// Floating-point products computed by a lane kernel may differ from a
// left-to-right scalar sum in the last bits; compare them with AllClose.
// Integer products are exact in T's wrapping arithmetic and identical for
// any worker count.
//
// Set MATRIX_NO_SIMD=1 to force the scalar kernel process-wide.
package matrix
