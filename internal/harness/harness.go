// SPDX-License-Identifier: MIT

// Package harness builds random matrices, times the kernel and runs
// correctness trials against the gonum oracle. It backs cmd/matprof and is
// not part of the kernel's contract.
package harness

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/colmat/internal/oracle"
	"github.com/katalvlaran/colmat/matrix"
	"github.com/katalvlaran/colmat/rng"
)

// Default sizes of the profiling runs.
const (
	DefaultMulRows       = 1600
	DefaultMulCols       = 2000
	DefaultTransposeRows = 10
	DefaultTransposeCols = 20
	DefaultEntryBound    = 100
)

// Shape bounds a random shape; both ranges are inclusive.
type Shape struct {
	RowsMin, RowsMax int
	ColsMin, ColsMax int
}

// Fixed returns the Shape that always yields rows×cols.
func Fixed(rows, cols int) Shape {
	return Shape{RowsMin: rows, RowsMax: rows, ColsMin: cols, ColsMax: cols}
}

// UniformInt returns a draw function producing T(r.Int(bound)).
func UniformInt[T matrix.Number](bound int) func(*rng.Rand) T {
	return func(r *rng.Rand) T { return T(r.Int(bound)) }
}

// RandomMatrix draws a shape from s and fills every cell with draw(r).
// Errors:
//   - matrix.ErrInvalidDimensions when the drawn shape is not positive.
func RandomMatrix[T matrix.Number](r *rng.Rand, s Shape, draw func(*rng.Rand) T, opts ...matrix.Option) (*matrix.Dense[T], error) {
	rows := r.IntRange(s.RowsMin, s.RowsMax+1)
	cols := r.IntRange(s.ColsMin, s.ColsMax+1)
	m, err := matrix.NewDense[T](rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if err = m.Set(i, j, draw(r)); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Timing is the outcome of one timed kernel call.
type Timing struct {
	Op       string
	LHS      [2]int
	RHS      [2]int // zero for unary operations
	Out      [2]int
	Kernel   string
	Duration time.Duration
}

// Millis returns the duration in fractional milliseconds.
func (t Timing) Millis() float64 {
	return float64(t.Duration.Microseconds()) / 1000
}

// TimeMultiply times a single a·b.
func TimeMultiply[T matrix.Number](a, b *matrix.Dense[T]) (Timing, error) {
	begin := time.Now()
	out, err := matrix.Mul(a, b)
	elapsed := time.Since(begin)
	if err != nil {
		return Timing{}, err
	}

	return Timing{
		Op:       "multiply",
		LHS:      [2]int{a.Rows(), a.Cols()},
		RHS:      [2]int{b.Rows(), b.Cols()},
		Out:      [2]int{out.Rows(), out.Cols()},
		Kernel:   a.KernelName(),
		Duration: elapsed,
	}, nil
}

// TimeTranspose times a single mᵀ.
func TimeTranspose[T matrix.Number](m *matrix.Dense[T]) (Timing, error) {
	begin := time.Now()
	out, err := matrix.Transpose(m)
	elapsed := time.Since(begin)
	if err != nil {
		return Timing{}, err
	}

	return Timing{
		Op:       "transpose",
		LHS:      [2]int{m.Rows(), m.Cols()},
		Out:      [2]int{out.Rows(), out.Cols()},
		Kernel:   m.KernelName(),
		Duration: elapsed,
	}, nil
}

// CheckConfig drives CheckTrials.
type CheckConfig struct {
	Trials    int     // number of random (A, B) pairs
	MaxDim    int     // every dimension is drawn from [1, MaxDim]
	Tolerance float64 // relative tolerance passed to oracle.Compare
	Seed      int64
	Options   []matrix.Option
}

// CheckReport summarizes a CheckTrials run.
type CheckReport struct {
	Trials           int
	Passed           int
	Failures         []string
	MismatchRejected bool // a deliberately incompatible product failed with ErrDimensionMismatch
}

// OK reports whether every trial passed and the mismatch probe was rejected.
func (r CheckReport) OK() bool {
	return r.Passed == r.Trials && r.MismatchRejected
}

// CheckTrials multiplies and transposes random float32 matrices with integer
// entries in [0, DefaultEntryBound) and compares both against the oracle.
// It finally multiplies A by a matrix with one extra row and expects
// ErrDimensionMismatch.
// Errors are returned only for harness failures (invalid config); kernel
// disagreements are reported in CheckReport.Failures.
func CheckTrials(cfg CheckConfig) (CheckReport, error) {
	if cfg.Trials <= 0 || cfg.MaxDim <= 0 {
		return CheckReport{}, fmt.Errorf("harness: trials=%d maxDim=%d: %w",
			cfg.Trials, cfg.MaxDim, matrix.ErrInvalidDimensions)
	}

	r := rng.New(cfg.Seed)
	draw := UniformInt[float32](DefaultEntryBound)
	rep := CheckReport{Trials: cfg.Trials}

	var last *matrix.Dense[float32]
	for trial := 0; trial < cfg.Trials; trial++ {
		m, k, n := r.IntRange(1, cfg.MaxDim+1), r.IntRange(1, cfg.MaxDim+1), r.IntRange(1, cfg.MaxDim+1)
		a, err := RandomMatrix(r, Fixed(m, k), draw, cfg.Options...)
		if err != nil {
			return rep, err
		}
		b, err := RandomMatrix(r, Fixed(k, n), draw, cfg.Options...)
		if err != nil {
			return rep, err
		}
		last = a

		if msg := checkPair(a, b, cfg.Tolerance); msg != "" {
			rep.Failures = append(rep.Failures, fmt.Sprintf("trial %d (%dx%d * %dx%d): %s", trial, m, k, k, n, msg))
			continue
		}
		rep.Passed++
	}

	bad, err := matrix.NewDense[float32](last.Cols()+1, 1, cfg.Options...)
	if err != nil {
		return rep, err
	}
	if _, err = matrix.Mul(last, bad); errors.Is(err, matrix.ErrDimensionMismatch) {
		rep.MismatchRejected = true
	}

	return rep, nil
}

// checkPair returns "" when a·b and aᵀ match the oracle.
func checkPair(a, b *matrix.Dense[float32], tol float64) string {
	got, err := matrix.Mul(a, b)
	if err != nil {
		return err.Error()
	}
	want, err := oracle.Product(a, b)
	if err != nil {
		return err.Error()
	}
	if err = oracle.Compare(got, want, tol); err != nil {
		return err.Error()
	}

	tr, err := matrix.Transpose(a)
	if err != nil {
		return err.Error()
	}
	if err = oracle.Compare(tr, oracle.Transpose(a), 0); err != nil {
		return err.Error()
	}

	return ""
}
