// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/colmat/internal/harness"
	"github.com/katalvlaran/colmat/matrix"
	"github.com/katalvlaran/colmat/rng"
)

func newProfileCmd() *cobra.Command {
	var (
		kf        kernelFlags
		rows      int
		cols      int
		tRows     int
		tCols     int
		seed      int64
		precision string
	)

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Time a large multiply and a transpose",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := kf.options()
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			r := rng.New(seed)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Execution time of the matrix kernel.")
			fmt.Fprintln(out, sectionBreak)
			switch precision {
			case "f32":
				err = profile[float32](out, r, rows, cols, tRows, tCols, opts)
			case "f64":
				err = profile[float64](out, r, rows, cols, tRows, tCols, opts)
			case "i32":
				err = profile[int32](out, r, rows, cols, tRows, tCols, opts)
			default:
				err = fmt.Errorf("matprof: unknown --type %q (f32, f64, i32)", precision)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, sectionBreak)

			return nil
		},
	}

	fs := cmd.Flags()
	kf.register(fs)
	fs.IntVar(&rows, "rows", harness.DefaultMulRows, "rows of A (and columns of B)")
	fs.IntVar(&cols, "cols", harness.DefaultMulCols, "columns of A (and rows of B)")
	fs.IntVar(&tRows, "transpose-rows", harness.DefaultTransposeRows, "rows of the transposed matrix")
	fs.IntVar(&tCols, "transpose-cols", harness.DefaultTransposeCols, "columns of the transposed matrix")
	fs.Int64Var(&seed, "seed", 0, "random seed (0 = clock)")
	fs.StringVar(&precision, "type", "f32", "element type: f32, f64 or i32")

	return cmd
}

func profile[T matrix.Number](out io.Writer, r *rng.Rand, rows, cols, tRows, tCols int, opts []matrix.Option) error {
	draw := harness.UniformInt[T](harness.DefaultEntryBound)

	a, err := harness.RandomMatrix(r, harness.Fixed(rows, cols), draw, opts...)
	if err != nil {
		return err
	}
	b, err := harness.RandomMatrix(r, harness.Fixed(cols, rows), draw, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Matrix A is %dx%d\nMatrix B is %dx%d\n", a.Rows(), a.Cols(), b.Rows(), b.Cols())

	tm, err := harness.TimeMultiply(a, b)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Multiplication of a %dx%d matrix and a %dx%d matrix took %.3f ms (kernel %s)\n",
		tm.LHS[0], tm.LHS[1], tm.RHS[0], tm.RHS[1], tm.Millis(), tm.Kernel)
	fmt.Fprintln(out, sectionBreak)

	c, err := harness.RandomMatrix(r, harness.Fixed(tRows, tCols), draw, opts...)
	if err != nil {
		return err
	}
	tt, err := harness.TimeTranspose(c)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Matrix A is %dx%d\nThe transpose of matrix A is %dx%d\nTranspose took %.3f ms\n",
		tt.LHS[0], tt.LHS[1], tt.Out[0], tt.Out[1], tt.Millis())

	return nil
}
