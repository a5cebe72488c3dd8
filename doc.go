// Package colmat is a small dense linear-algebra kernel: a generic,
// column-major matrix with an alignment-aware layout, a lane-parallel
// dot-product multiply and a parallel transpose.
//
// What is in the box?
//
//	A Go module with no cgo and no assembly that brings together:
//		• matrix/  Dense[T] storage, bounds-checked access, Mul, Transpose
//		• rng/     explicitly seeded random source for test and profiling data
//		• cmd/matprof  timing and correctness driver (profile, check, cpu)
//
// Internal helpers:
//
//	internal/oracle   gonum reference for products and transposes
//	internal/harness  random shapes, timing, randomized correctness trials
//
// Quick example:
//
//	a := matrix.MustFromRows([][]float32{{1, 2, 3}, {4, 5, 6}})
//	b := matrix.MustFromRows([][]float32{{7, 8}, {9, 10}, {11, 12}})
//	c, _ := matrix.Mul(a, b) // [[58 64] [139 154]]
//
// Run the profiler:
//
//	go run ./cmd/matprof profile --type f32
//	go run ./cmd/matprof check --trials 100
package colmat
