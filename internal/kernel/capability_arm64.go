//go:build arm64

package kernel

import "golang.org/x/sys/cpu"

func init() {
	hasWideVector = cpu.ARM64.HasASIMD
	initCapabilities()
}
