package mat

import (
	"fmt"
	"strings"

	"github.com/hupe1980/vecmath/scalar"
	"github.com/hupe1980/vecmath/vec"
)

// Euler holds pitch (about X), heading (about Y) and bank (about Z).
// The unit (radians or degrees) is defined by the function consuming it.
type Euler[T scalar.Float] struct {
	Pitch, Heading, Bank T
}

// NewEuler returns Euler{pitch, heading, bank}.
func NewEuler[T scalar.Float](pitch, heading, bank T) Euler[T] {
	return Euler[T]{Pitch: pitch, Heading: heading, Bank: bank}
}

// EulerFromVec3 maps x, y, z to pitch, heading, bank.
func EulerFromVec3[T scalar.Float](v vec.Vec3[T]) Euler[T] {
	return Euler[T]{Pitch: v.X, Heading: v.Y, Bank: v.Z}
}

// Vec3 maps pitch, heading, bank to x, y, z.
func (e Euler[T]) Vec3() vec.Vec3[T] {
	return vec.Vec3[T]{X: e.Pitch, Y: e.Heading, Z: e.Bank}
}

// ToRadians converts every angle from degrees to radians.
func (e Euler[T]) ToRadians() Euler[T] {
	return Euler[T]{
		Pitch:   scalar.ToRadians(e.Pitch),
		Heading: scalar.ToRadians(e.Heading),
		Bank:    scalar.ToRadians(e.Bank),
	}
}

// ToDegrees converts every angle from radians to degrees.
func (e Euler[T]) ToDegrees() Euler[T] {
	return Euler[T]{
		Pitch:   scalar.ToDegrees(e.Pitch),
		Heading: scalar.ToDegrees(e.Heading),
		Bank:    scalar.ToDegrees(e.Bank),
	}
}

// Angle returns the angle about axis a.
func (e Euler[T]) Angle(a Axis) T {
	switch a {
	case AxisPitch:
		return e.Pitch
	case AxisHeading:
		return e.Heading
	case AxisBank:
		return e.Bank
	default:
		panic(fmt.Sprintf("mat: invalid axis %d", a))
	}
}

// ApproxEqual compares the three angles within the default epsilon.
func (e Euler[T]) ApproxEqual(o Euler[T]) bool {
	return scalar.ApproxEqual(e.Pitch, o.Pitch) &&
		scalar.ApproxEqual(e.Heading, o.Heading) &&
		scalar.ApproxEqual(e.Bank, o.Bank)
}

func (e Euler[T]) String() string {
	return fmt.Sprintf("(p=%.4f h=%.4f b=%.4f)", float64(e.Pitch), float64(e.Heading), float64(e.Bank))
}

// Axis names one elemental rotation.
type Axis uint8

const (
	// AxisPitch rotates about X.
	AxisPitch Axis = iota
	// AxisHeading rotates about Y.
	AxisHeading
	// AxisBank rotates about Z.
	AxisBank
)

// RotationOrder selects the product order of the three elemental rotations.
// The name reads left to right as the matrix product, so HPB is
// RotY(h)·RotX(p)·RotZ(b): bank is applied first, heading last.
type RotationOrder uint8

const (
	PHB RotationOrder = iota
	PBH
	HPB
	HBP
	BPH
	BHP
)

var rotationOrderNames = [...]string{"PHB", "PBH", "HPB", "HBP", "BPH", "BHP"}

var rotationOrderSequences = [...][3]Axis{
	PHB: {AxisPitch, AxisHeading, AxisBank},
	PBH: {AxisPitch, AxisBank, AxisHeading},
	HPB: {AxisHeading, AxisPitch, AxisBank},
	HBP: {AxisHeading, AxisBank, AxisPitch},
	BPH: {AxisBank, AxisPitch, AxisHeading},
	BHP: {AxisBank, AxisHeading, AxisPitch},
}

// Valid reports whether o is one of the six defined orders.
func (o RotationOrder) Valid() bool {
	return int(o) < len(rotationOrderNames)
}

// Sequence returns the axes in product order (leftmost factor first).
// It panics on an invalid order.
func (o RotationOrder) Sequence() [3]Axis {
	if !o.Valid() {
		panic(fmt.Sprintf("mat: invalid rotation order %d", o))
	}
	return rotationOrderSequences[o]
}

func (o RotationOrder) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Unknown(%d)", o)
	}
	return rotationOrderNames[o]
}

// ParseRotationOrder parses a case-insensitive order name such as "hpb".
func ParseRotationOrder(s string) (RotationOrder, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, name := range rotationOrderNames {
		if name == s {
			return RotationOrder(i), true
		}
	}
	return PHB, false
}

// Convention selects one of the two named Euler conventions with fused
// closed-form builders.
type Convention uint8

const (
	// ObjectToUpright maps object-space vectors to upright space:
	// RotY(h)·RotX(p)·RotZ(b), identical to FromEuler(e, HPB).
	ObjectToUpright Convention = iota
	// UprightToObject is the inverse (transpose) of ObjectToUpright, the fused
	// Z-X-Y form RotZ(-b)·RotX(-p)·RotY(-h).
	UprightToObject
)

func (c Convention) String() string {
	switch c {
	case ObjectToUpright:
		return "ObjectToUpright"
	case UprightToObject:
		return "UprightToObject"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}
