package kernel

import (
	"os"
	"strings"
)

// Kind selects a kernel implementation.
type Kind uint8

const (
	// Scalar transforms one element per iteration.
	Scalar Kind = iota
	// Blocked transforms four elements per iteration.
	Blocked
)

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Blocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// ParseKind parses a kernel name.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar":
		return Scalar, true
	case "blocked":
		return Blocked, true
	default:
		return Scalar, false
	}
}

// EnvOverride names the environment variable that forces a kernel.
const EnvOverride = "VECMATH_KERNEL"

// Set once at init, read-only afterwards.
var (
	active      Kind
	hasOverride bool

	// Set by the platform init before initCapabilities runs.
	hasWideVector bool
)

func initCapabilities() {
	active, hasOverride = selectKind(os.Getenv(EnvOverride), hasWideVector)
}

func selectKind(override string, wide bool) (Kind, bool) {
	if override != "" {
		if k, ok := ParseKind(override); ok {
			return k, true
		}
	}
	if wide {
		return Blocked, false
	}
	return Scalar, false
}

// Active returns the kernel selected at init.
func Active() Kind {
	return active
}

// IsOverridden reports whether VECMATH_KERNEL chose the active kernel.
func IsOverridden() bool {
	return hasOverride
}

// HasWideVector reports whether the CPU has 256-bit FMA (x86-64) or ASIMD
// (ARM64) units.
func HasWideVector() bool {
	return hasWideVector
}
