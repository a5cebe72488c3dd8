// SPDX-License-Identifier: MIT

package main

import "errors"

var (
	errNegativeFlag = errors.New("matprof: --workers and --parallel-threshold must be >= 0")
	errCheckFailed  = errors.New("matprof: correctness check failed")
)
