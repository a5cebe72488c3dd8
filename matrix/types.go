// SPDX-License-Identifier: MIT

// Package matrix: element-type constraints.
// The kernel is generic over every arithmetic type Go offers natively. Only
// float32 and float64 have a lane-parallel dot kernel; everything else is
// accumulated by the scalar kernel in its own type (integer overflow wraps).
package matrix

// Floats is the constraint for floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is the constraint for signed integer element types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is the constraint for unsigned integer element types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number is the element constraint of Dense.
type Number interface {
	Floats | SignedInts | UnsignedInts
}
