// SPDX-License-Identifier: MIT

// Package matrix - dot-product kernels and their per-type selection.
//
// Purpose:
//   - Provide a scalar kernel for every Number type.
//   - Provide lane kernels for float32 (4 lanes) and float64 (2 lanes), i.e. one
//     128-bit register per step, with a scalar remainder loop.
//   - Resolve the kernel once per matrix; the multiply loop calls a fixed
//     function value and never inspects T.
//
// Rounding: lane kernels keep several partial sums, the scalar kernel
// accumulates left to right. Float results may differ in the last bits.
package matrix

import (
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
)

// Kernel names reported by Dense.KernelName.
const (
	KernelScalar  = "scalar"
	KernelVec4F32 = "vec4-f32"
	KernelVec2F64 = "vec2-f64"
)

// Lane counts of the vector kernels (AlignBytes / element size).
const (
	lanesF32 = 4
	lanesF64 = 2
)

// dotFunc computes sum(a[k]*b[k]) for k in [0, len(a)); len(b) >= len(a).
type dotFunc[T Number] func(a, b []T) T

// kernel is a capability-tagged dot implementation.
type kernel[T Number] struct {
	name  string
	lanes int
	dot   dotFunc[T]
}

// kernelFor selects the dot kernel for T.
// Implementation:
//   - Stage 1: scalarOnly or no vector unit -> scalar kernel.
//   - Stage 2: assert a concrete float32/float64 kernel value to kernel[T];
//     the assertion only holds when T is exactly that type.
//   - Stage 3: anything else (integers, named float types) -> scalar kernel.
//
// Complexity:
//   - Time O(1); called once per constructed matrix.
func kernelFor[T Number](scalarOnly bool) kernel[T] {
	if !scalarOnly && VectorAvailable() {
		if k, ok := any(kernel[float32]{name: KernelVec4F32, lanes: lanesF32, dot: dotLanesF32}).(kernel[T]); ok {
			return k
		}
		if k, ok := any(kernel[float64]{name: KernelVec2F64, lanes: lanesF64, dot: dotLanesF64}).(kernel[T]); ok {
			return k
		}
	}

	return kernel[T]{name: KernelScalar, lanes: 1, dot: dotScalar[T]}
}

// dotScalar is the portable multiply-accumulate loop, in T's own arithmetic.
func dotScalar[T Number](a, b []T) T {
	b = b[:len(a)]
	var sum T
	for k := range a {
		sum += a[k] * b[k]
	}

	return sum
}

// dotLanesF32 runs the lane-aligned prefix through blas32.Dot, which uses
// packed SSE instructions on amd64, then adds the leftover indices with the
// scalar loop.
func dotLanesF32(a, b []float32) float32 {
	n := len(a)
	body := n - n%lanesF32
	sum := blas32.Dot(
		blas32.Vector{N: body, Inc: 1, Data: a[:body]},
		blas32.Vector{N: body, Inc: 1, Data: b[:body]},
	)

	return sum + dotScalar(a[body:], b[body:n])
}

// dotLanesF64 is the 2-lane float64 counterpart of dotLanesF32 (blas64.Dot).
func dotLanesF64(a, b []float64) float64 {
	n := len(a)
	body := n - n%lanesF64
	sum := blas64.Dot(
		blas64.Vector{N: body, Inc: 1, Data: a[:body]},
		blas64.Vector{N: body, Inc: 1, Data: b[:body]},
	)

	return sum + dotScalar(a[body:], b[body:n])
}
