// SPDX-License-Identifier: MIT

// Package matrix - storage manager.
//
// Purpose:
//   - Allocate one contiguous block per matrix (or scratch row), optionally
//     aligned to AlignBytes, and fill the whole extent with the fill value.
//   - Keep the allocation token (the block exactly as allocated) apart from
//     the typed data view used for reads and writes.
//
// The data view is a subslice of the token, so the runtime reclaims the
// original block once the owning matrix becomes unreachable. Only this file
// constructs buffers; no other code reslices the token.
package matrix

import "unsafe"

// allocation is the ownership token of a block. It is never indexed.
type allocation[T Number] struct {
	raw []T
}

// buffer pairs the token with the aligned data view.
type buffer[T Number] struct {
	alloc *allocation[T]
	data  []T // len == requested extent; starts on AlignBytes when aligned
}

// allocate returns a buffer of extent elements set to fill.
// Implementation:
//   - Stage 1: tight path: make(extent) and fill.
//   - Stage 2: aligned path: over-allocate by AlignBytes/size elements, move the
//     view forward to the first aligned element, cap it at extent.
//   - Stage 3: fill the whole view (padding included).
//
// Complexity:
//   - Time O(extent), Space O(extent + AlignBytes/size).
func allocate[T Number](extent int, fill T, aligned bool) buffer[T] {
	if !aligned {
		raw := make([]T, extent)
		fillSlice(raw, fill)

		return buffer[T]{alloc: &allocation[T]{raw: raw}, data: raw}
	}

	size := sizeOf[T]()
	slack := AlignBytes / size
	raw := make([]T, extent+slack)
	off := alignOffset(raw, size)
	data := raw[off : off+extent : off+extent]
	fillSlice(data, fill)

	return buffer[T]{alloc: &allocation[T]{raw: raw}, data: data}
}

// alignOffset returns how many elements to skip so that &raw[off] is a
// multiple of AlignBytes. Go places numeric elements on their natural
// alignment, so the byte gap is always a multiple of size.
func alignOffset[T Number](raw []T, size int) int {
	if len(raw) == 0 {
		return 0
	}
	mis := uintptr(unsafe.Pointer(unsafe.SliceData(raw))) % AlignBytes
	if mis == 0 {
		return 0
	}

	return int((AlignBytes - mis) / uintptr(size))
}

// clone allocates a new block with the same alignment policy and copies the
// whole extent (padding included).
func (b buffer[T]) clone(aligned bool) buffer[T] {
	var zero T
	nb := allocate(len(b.data), zero, aligned)
	copy(nb.data, b.data)

	return nb
}

// fillSlice sets every element of s to v by doubling copies.
func fillSlice[T Number](s []T, v T) {
	if len(s) == 0 {
		return
	}
	s[0] = v
	for filled := 1; filled < len(s); filled *= 2 {
		copy(s[filled:], s[:filled])
	}
}

// isAligned reports whether the first element of s sits on AlignBytes.
func isAligned[T Number](s []T) bool {
	if len(s) == 0 {
		return true
	}

	return uintptr(unsafe.Pointer(&s[0]))%AlignBytes == 0
}

// sizeOf returns the size of one T in bytes.
func sizeOf[T Number]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
