//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	hasNEON = cpu.ARM64.HasASIMD
	hasSVE = cpu.ARM64.HasSVE
	initDispatch()
}
