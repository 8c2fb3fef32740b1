package mat

import (
	"fmt"

	"github.com/hupe1980/vecmath/scalar"
	"github.com/hupe1980/vecmath/vec"
)

// RotationX returns the rotation by angle radians about X (pitch).
func RotationX[T scalar.Float](angle T) Mat3[T] {
	s, c := scalar.SinCos(angle)
	return Mat3[T]{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotationY returns the rotation by angle radians about Y (heading).
func RotationY[T scalar.Float](angle T) Mat3[T] {
	s, c := scalar.SinCos(angle)
	return Mat3[T]{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// RotationZ returns the rotation by angle radians about Z (bank).
func RotationZ[T scalar.Float](angle T) Mat3[T] {
	s, c := scalar.SinCos(angle)
	return Mat3[T]{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

func elemental[T scalar.Float](a Axis, angle T) Mat3[T] {
	switch a {
	case AxisPitch:
		return RotationX(angle)
	case AxisHeading:
		return RotationY(angle)
	case AxisBank:
		return RotationZ(angle)
	default:
		panic(fmt.Sprintf("mat: invalid axis %d", a))
	}
}

// FromEuler multiplies the three elemental rotations (radians) in the given
// order. It panics on an invalid order.
func FromEuler[T scalar.Float](e Euler[T], order RotationOrder) Mat3[T] {
	seq := order.Sequence()
	return elemental(seq[0], e.Angle(seq[0])).
		Mul(elemental(seq[1], e.Angle(seq[1]))).
		Mul(elemental(seq[2], e.Angle(seq[2])))
}

// FromEulerDeg is FromEuler with angles in degrees.
func FromEulerDeg[T scalar.Float](e Euler[T], order RotationOrder) Mat3[T] {
	return FromEuler(e.ToRadians(), order)
}

// FromEulerConvention evaluates the closed form of the convention directly
// from the sines and cosines of the three angles (radians).
func FromEulerConvention[T scalar.Float](e Euler[T], c Convention) Mat3[T] {
	sp, cp := scalar.SinCos(e.Pitch)
	sh, ch := scalar.SinCos(e.Heading)
	sb, cb := scalar.SinCos(e.Bank)

	m := Mat3[T]{
		{ch*cb + sh*sp*sb, -ch*sb + sh*sp*cb, sh * cp},
		{sb * cp, cb * cp, -sp},
		{-sh*cb + ch*sp*sb, sb*sh + ch*sp*cb, ch * cp},
	}

	switch c {
	case ObjectToUpright:
		return m
	case UprightToObject:
		return m.Transpose()
	default:
		panic(fmt.Sprintf("mat: invalid convention %d", c))
	}
}

// FromEulerConventionDeg is FromEulerConvention with angles in degrees.
func FromEulerConventionDeg[T scalar.Float](e Euler[T], c Convention) Mat3[T] {
	return FromEulerConvention(e.ToRadians(), c)
}

// FromAngleAxis returns the rotation by theta radians about the unit axis n
// (Rodrigues' formula). A non-unit axis yields an error matching
// vec.ErrNotUnit.
func FromAngleAxis[T scalar.Float](n vec.Vec3[T], theta T) (Mat3[T], error) {
	if err := vec.RequireUnit(n); err != nil {
		return Mat3[T]{}, fmt.Errorf("rotation axis: %w", err)
	}

	st, ct := scalar.SinCos(theta)
	k := 1 - ct

	return Mat3[T]{
		{n.X*n.X*k + ct, n.X*n.Y*k - n.Z*st, n.X*n.Z*k + n.Y*st},
		{n.X*n.Y*k + n.Z*st, n.Y*n.Y*k + ct, n.Y*n.Z*k - n.X*st},
		{n.X*n.Z*k - n.Y*st, n.Y*n.Z*k + n.X*st, n.Z*n.Z*k + ct},
	}, nil
}

// FromAngleAxisDeg is FromAngleAxis with theta in degrees.
func FromAngleAxisDeg[T scalar.Float](n vec.Vec3[T], theta T) (Mat3[T], error) {
	return FromAngleAxis(n, scalar.ToRadians(theta))
}

// Scaling returns the axis-aligned scale by factors.
func Scaling[T scalar.Float](factors vec.Vec3[T]) Mat3[T] {
	return Mat3[T]{
		{factors.X, 0, 0},
		{0, factors.Y, 0},
		{0, 0, factors.Z},
	}
}

// ScalingAlongAxis scales by s along the unit axis n: I + (s−1)·n⊗n.
func ScalingAlongAxis[T scalar.Float](n vec.Vec3[T], s T) (Mat3[T], error) {
	if err := vec.RequireUnit(n); err != nil {
		return Mat3[T]{}, fmt.Errorf("scale axis: %w", err)
	}

	k := s - 1

	return Mat3[T]{
		{1 + k*n.X*n.X, k * n.X * n.Y, k * n.X * n.Z},
		{k * n.X * n.Y, 1 + k*n.Y*n.Y, k * n.Y * n.Z},
		{k * n.X * n.Z, k * n.Y * n.Z, 1 + k*n.Z*n.Z},
	}, nil
}

// ToEuler recovers radians for the convention m was built with. m must be a
// rotation (ErrNotRotation otherwise).
//
// At gimbal lock (|sin(pitch)| > scalar.GimbalLockThreshold) bank is fixed to
// zero and heading absorbs the combined rotation.
func (m Mat3[T]) ToEuler(c Convention) (Euler[T], error) {
	if !m.IsRotation() {
		return Euler[T]{}, ErrNotRotation
	}

	switch c {
	case ObjectToUpright:
	case UprightToObject:
		m = m.Transpose()
	default:
		return Euler[T]{}, fmt.Errorf("mat: invalid convention %d", c)
	}

	sp := scalar.Clamp(-m[1][2], -1, 1)
	e := Euler[T]{Pitch: scalar.Asin(sp)}

	if scalar.Abs(sp) > scalar.GimbalLockThreshold {
		e.Heading = scalar.Atan2(-m[2][0], m[0][0])
		return e, nil
	}

	e.Heading = scalar.Atan2(m[0][2], m[2][2])
	e.Bank = scalar.Atan2(m[1][0], m[1][1])
	return e, nil
}

// ToEulerDeg is ToEuler returning degrees.
func (m Mat3[T]) ToEulerDeg(c Convention) (Euler[T], error) {
	e, err := m.ToEuler(c)
	if err != nil {
		return Euler[T]{}, err
	}
	return e.ToDegrees(), nil
}

// RotateEuler right-multiplies m by FromEuler(e, order).
func (m *Mat3[T]) RotateEuler(e Euler[T], order RotationOrder) {
	*m = m.Mul(FromEuler(e, order))
}

// RotateEulerDeg right-multiplies m by FromEulerDeg(e, order).
func (m *Mat3[T]) RotateEulerDeg(e Euler[T], order RotationOrder) {
	*m = m.Mul(FromEulerDeg(e, order))
}

// RotateConvention right-multiplies m by FromEulerConvention(e, c).
func (m *Mat3[T]) RotateConvention(e Euler[T], c Convention) {
	*m = m.Mul(FromEulerConvention(e, c))
}

// RotateAroundAxis right-multiplies m by FromAngleAxis(n, theta). m is left
// unchanged on error.
func (m *Mat3[T]) RotateAroundAxis(n vec.Vec3[T], theta T) error {
	r, err := FromAngleAxis(n, theta)
	if err != nil {
		return err
	}
	*m = m.Mul(r)
	return nil
}

// ScaleBy right-multiplies m by Scaling(factors).
func (m *Mat3[T]) ScaleBy(factors vec.Vec3[T]) {
	*m = m.Mul(Scaling(factors))
}

// ScaleAlongAxis right-multiplies m by ScalingAlongAxis(n, s).
func (m *Mat3[T]) ScaleAlongAxis(n vec.Vec3[T], s T) error {
	sm, err := ScalingAlongAxis(n, s)
	if err != nil {
		return err
	}
	*m = m.Mul(sm)
	return nil
}

// RotateEuler right-multiplies m by the 4×4 lift of FromEuler(e, order).
func (m *Mat4[T]) RotateEuler(e Euler[T], order RotationOrder) {
	*m = m.Mul(FromEuler(e, order).Mat4())
}

// RotateEulerDeg right-multiplies m by the 4×4 lift of FromEulerDeg(e, order).
func (m *Mat4[T]) RotateEulerDeg(e Euler[T], order RotationOrder) {
	*m = m.Mul(FromEulerDeg(e, order).Mat4())
}

// RotateConvention right-multiplies m by the 4×4 lift of
// FromEulerConvention(e, c).
func (m *Mat4[T]) RotateConvention(e Euler[T], c Convention) {
	*m = m.Mul(FromEulerConvention(e, c).Mat4())
}

// RotateAroundAxis right-multiplies m by the 4×4 lift of FromAngleAxis(n, theta).
func (m *Mat4[T]) RotateAroundAxis(n vec.Vec3[T], theta T) error {
	r, err := FromAngleAxis(n, theta)
	if err != nil {
		return err
	}
	*m = m.Mul(r.Mat4())
	return nil
}

// ScaleBy right-multiplies m by the 4×4 lift of Scaling(factors).
func (m *Mat4[T]) ScaleBy(factors vec.Vec3[T]) {
	*m = m.Mul(Scaling(factors).Mat4())
}

// ScaleAlongAxis right-multiplies m by the 4×4 lift of ScalingAlongAxis(n, s).
func (m *Mat4[T]) ScaleAlongAxis(n vec.Vec3[T], s T) error {
	sm, err := ScalingAlongAxis(n, s)
	if err != nil {
		return err
	}
	*m = m.Mul(sm.Mat4())
	return nil
}
