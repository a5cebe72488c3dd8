// SPDX-License-Identifier: MIT

// Command matprof profiles and cross-checks the matrix kernel.
//
//	matprof profile [--rows 1600 --cols 2000 --workers 0 --scalar]
//	matprof check   [--trials 100 --max-dim 50 --seed 1]
//	matprof cpu
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
