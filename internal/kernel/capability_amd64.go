//go:build amd64

package kernel

import "golang.org/x/sys/cpu"

func init() {
	hasWideVector = cpu.X86.HasAVX2 && cpu.X86.HasFMA
	initCapabilities()
}
