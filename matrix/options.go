// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for storage layout, kernel
// selection and parallel fan-out. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global mutable configuration.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Options are captured by a matrix at construction and inherited by the
//     results of Mul (from the left operand), Transpose and Clone.
//   - The process-wide MATRIX_NO_SIMD override (see dispatch_*.go) wins over
//     WithVectorKernel: it models "this machine has no usable vector unit".
package matrix

import "runtime"

// ---------- Defaults (single source of truth) ----------

// Storage layout.
const (
	// DefaultPadding rounds rows/cols up to PadElems and aligns the first
	// element (and therefore every column) to AlignBytes.
	DefaultPadding = true
)

// Kernel selection and fan-out.
const (
	// DefaultScalarOnly forces the scalar dot kernel for every element type.
	DefaultScalarOnly = false

	// DefaultWorkers means "use runtime.GOMAXPROCS(0) workers".
	DefaultWorkers = 0

	// DefaultParallelThreshold is the minimum amount of work (multiply-adds for
	// Mul, element copies for Transpose) before rows are fanned out.
	DefaultParallelThreshold = 1 << 18
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid   = "matrix: WithWorkers: n must be >= 0"
	panicThresholdInvalid = "matrix: WithParallelThreshold: n must be >= 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	padded     bool // DefaultPadding
	scalarOnly bool // DefaultScalarOnly
	workers    int  // resolved: >= 1
	threshold  int  // DefaultParallelThreshold
}

// WithPadding enables the alignment-aware layout (default).
// Behavior highlights:
//   - AllocatedRows/AllocatedCols are rounded up to PadElems.
//   - The data view and every column start on an AlignBytes boundary.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithPadding() Option {
	return func(o *Options) { o.padded = true }
}

// WithNoPadding selects the tight layout: strides equal the logical counts
// and no alignment is enforced.
func WithNoPadding() Option {
	return func(o *Options) { o.padded = false }
}

// WithWorkers sets the number of workers used to fan out Mul and Transpose.
// Implementation:
//   - Stage 1: validate n >= 0.
//   - Stage 2: return a setter; 0 resolves to runtime.GOMAXPROCS(0) in gatherOptions.
//
// Errors:
//   - Panics with a stable message when n < 0.
//
// Notes:
//   - n == 1 disables fan-out entirely.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithParallelThreshold sets the minimum work before fan-out.
// Zero means "always fan out when more than one worker is configured".
//
// Errors:
//   - Panics with a stable message when n < 0.
func WithParallelThreshold(n int) Option {
	if n < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = n }
}

// WithScalarKernel forces the scalar dot kernel even for float32/float64.
func WithScalarKernel() Option {
	return func(o *Options) { o.scalarOnly = true }
}

// WithVectorKernel re-enables lane kernels for float32/float64 (default).
func WithVectorKernel() Option {
	return func(o *Options) { o.scalarOnly = false }
}

// NewOptions resolves a set of Option values into an Options snapshot.
// Useful for callers that want to inspect the effective configuration.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Padded reports whether the alignment-aware layout is selected.
func (o Options) Padded() bool { return o.padded }

// ScalarOnly reports whether lane kernels are disabled.
func (o Options) ScalarOnly() bool { return o.scalarOnly }

// Workers returns the resolved worker count (always >= 1).
func (o Options) Workers() int { return o.workers }

// ParallelThreshold returns the fan-out threshold.
func (o Options) ParallelThreshold() int { return o.threshold }

// gatherOptions applies user-provided setters on top of the defaults and
// resolves derived values (workers == 0 -> GOMAXPROCS).
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		padded:     DefaultPadding,
		scalarOnly: DefaultScalarOnly,
		workers:    DefaultWorkers,
		threshold:  DefaultParallelThreshold,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
