// SPDX-License-Identifier: MIT

package matrix

import "os"

// noSimdEnvVar forces the scalar kernel process-wide when set to a value
// other than "" or "0".
const noSimdEnvVar = "MATRIX_NO_SIMD"

// Dispatch level names.
const (
	DispatchScalar = "scalar"
	DispatchSSE2   = "sse2"
	DispatchNEON   = "neon"
)

// Set once by the per-architecture init in dispatch_*.go.
var (
	dispatchName  = DispatchScalar
	dispatchBytes = 0
)

// noSimdEnv reports whether MATRIX_NO_SIMD disables lane kernels.
func noSimdEnv() bool {
	v := os.Getenv(noSimdEnvVar)
	return v != "" && v != "0"
}

func setScalarMode() {
	dispatchName = DispatchScalar
	dispatchBytes = 0
}

// VectorAvailable reports whether lane kernels may be selected on this machine.
func VectorAvailable() bool { return dispatchBytes >= AlignBytes }

// DispatchName returns the detected vector level ("sse2", "neon" or "scalar").
func DispatchName() string { return dispatchName }

// VectorBytes returns the width of one vector register in bytes, 0 when scalar.
func VectorBytes() int { return dispatchBytes }
