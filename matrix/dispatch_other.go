// SPDX-License-Identifier: MIT

//go:build !amd64 && !arm64

package matrix

func init() {
	setScalarMode()
}
