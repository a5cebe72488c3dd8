// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/colmat/internal/harness"
)

func newCheckCmd() *cobra.Command {
	var (
		kf  kernelFlags
		cfg harness.CheckConfig
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare multiply/transpose against the gonum reference",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := kf.options()
			if err != nil {
				return err
			}
			cfg.Options = opts

			rep, err := harness.CheckTrials(cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, f := range rep.Failures {
				fmt.Fprintln(out, "FAIL", f)
			}
			fmt.Fprintf(out, "%d/%d trials passed\n", rep.Passed, rep.Trials)
			if rep.MismatchRejected {
				fmt.Fprintln(out, "Caught dimension mismatch")
			} else {
				fmt.Fprintln(out, "FAIL incompatible product was not rejected")
			}
			if !rep.OK() {
				return errCheckFailed
			}
			fmt.Fprintln(out, "PASS")

			return nil
		},
	}

	fs := cmd.Flags()
	kf.register(fs)
	fs.IntVar(&cfg.Trials, "trials", 100, "number of random products")
	fs.IntVar(&cfg.MaxDim, "max-dim", 50, "maximum dimension of random operands")
	fs.Float64Var(&cfg.Tolerance, "tol", 1e-6, "relative tolerance")
	fs.Int64Var(&cfg.Seed, "seed", 1, "random seed")

	return cmd
}
