// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/colmat/matrix"
)

// kernelFlags are shared by every subcommand that builds matrices.
type kernelFlags struct {
	workers   int
	threshold int
	scalar    bool
	noPadding bool
}

func (f *kernelFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&f.workers, "workers", matrix.DefaultWorkers, "workers for multiply/transpose (0 = GOMAXPROCS)")
	fs.IntVar(&f.threshold, "parallel-threshold", matrix.DefaultParallelThreshold, "minimum work before fanning out rows")
	fs.BoolVar(&f.scalar, "scalar", false, "force the scalar dot kernel")
	fs.BoolVar(&f.noPadding, "no-padding", false, "use the tight (unaligned) layout")
}

// options converts flags into matrix options. Negative values are rejected
// here so the option constructors never panic on user input.
func (f *kernelFlags) options() ([]matrix.Option, error) {
	if f.workers < 0 || f.threshold < 0 {
		return nil, errNegativeFlag
	}
	opts := []matrix.Option{
		matrix.WithWorkers(f.workers),
		matrix.WithParallelThreshold(f.threshold),
	}
	if f.scalar {
		opts = append(opts, matrix.WithScalarKernel())
	}
	if f.noPadding {
		opts = append(opts, matrix.WithNoPadding())
	}

	return opts, nil
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "matprof",
		Short:        "Profile and verify the column-major matrix kernel",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			matrix.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log kernel decisions at debug level")
	root.SetOut(os.Stdout)

	root.AddCommand(newProfileCmd(), newCheckCmd(), newCPUCmd())

	return root
}

// sectionBreak separates report sections.
var sectionBreak = strings.Repeat("=", 79)
