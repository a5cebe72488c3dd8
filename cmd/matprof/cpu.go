// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/colmat/matrix"
)

func newCPUCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpu",
		Short: "Print the detected vector level and the kernel chosen per type",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "GOOS/GOARCH: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(out, "GOMAXPROCS:  %d\n", runtime.GOMAXPROCS(0))
			fmt.Fprintf(out, "dispatch:    %s (%d bytes)\n", matrix.DispatchName(), matrix.VectorBytes())

			f32, err := matrix.NewDense[float32](1, 1)
			if err != nil {
				return err
			}
			f64, err := matrix.NewDense[float64](1, 1)
			if err != nil {
				return err
			}
			i64, err := matrix.NewDense[int64](1, 1)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "float32:     %s\n", f32.KernelName())
			fmt.Fprintf(out, "float64:     %s\n", f64.KernelName())
			fmt.Fprintf(out, "int64:       %s\n", i64.KernelName())

			return nil
		},
	}
}
