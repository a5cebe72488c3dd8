// SPDX-License-Identifier: MIT

//go:build amd64

package matrix

import "golang.org/x/sys/cpu"

// SSE2 is baseline on amd64; the check keeps detection honest under emulators.
func init() {
	if noSimdEnv() {
		setScalarMode()
		return
	}
	if cpu.X86.HasSSE2 {
		dispatchName = DispatchSSE2
		dispatchBytes = 16
		return
	}
	setScalarMode()
}
