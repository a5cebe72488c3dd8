// SPDX-License-Identifier: MIT

//go:build arm64

package matrix

import "golang.org/x/sys/cpu"

// ASIMD (NEON) is part of ARMv8-A; 128-bit registers.
func init() {
	if noSimdEnv() {
		setScalarMode()
		return
	}
	if cpu.ARM64.HasASIMD {
		dispatchName = DispatchNEON
		dispatchBytes = 16
		return
	}
	setScalarMode()
}
