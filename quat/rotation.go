package quat

import (
	"fmt"

	"github.com/hupe1980/vecmath/mat"
	"github.com/hupe1980/vecmath/scalar"
	"github.com/hupe1980/vecmath/vec"
)

// elemental returns the half-angle quaternion for a rotation about one axis.
func elemental[T scalar.Float](a mat.Axis, angle T) Quat[T] {
	s, c := scalar.SinCos(angle / 2)
	switch a {
	case mat.AxisPitch:
		return New(c, s, 0, 0)
	case mat.AxisHeading:
		return New(c, 0, s, 0)
	case mat.AxisBank:
		return New(c, 0, 0, s)
	default:
		panic(fmt.Sprintf("quat: invalid axis %d", a))
	}
}

// FromEuler multiplies the elemental quaternions (radians) in the given
// order, matching mat.FromEuler. It panics on an invalid order.
func FromEuler[T scalar.Float](e mat.Euler[T], order mat.RotationOrder) Quat[T] {
	seq := order.Sequence()
	return elemental(seq[0], e.Angle(seq[0])).
		Mul(elemental(seq[1], e.Angle(seq[1]))).
		Mul(elemental(seq[2], e.Angle(seq[2])))
}

// FromEulerDeg is FromEuler with angles in degrees.
func FromEulerDeg[T scalar.Float](e mat.Euler[T], order mat.RotationOrder) Quat[T] {
	return FromEuler(e.ToRadians(), order)
}

// FromEulerConvention evaluates the closed form of the convention from the
// half-angle sines and cosines (radians).
func FromEulerConvention[T scalar.Float](e mat.Euler[T], c mat.Convention) Quat[T] {
	sp, cp := scalar.SinCos(e.Pitch / 2)
	sh, ch := scalar.SinCos(e.Heading / 2)
	sb, cb := scalar.SinCos(e.Bank / 2)

	q := New(
		ch*cp*cb+sh*sp*sb,
		ch*sp*cb+sh*cp*sb,
		sh*cp*cb-ch*sp*sb,
		ch*cp*sb-sh*sp*cb,
	)

	switch c {
	case mat.ObjectToUpright:
		return q
	case mat.UprightToObject:
		return q.Conjugate()
	default:
		panic(fmt.Sprintf("quat: invalid convention %d", c))
	}
}

// FromEulerConventionDeg is FromEulerConvention with angles in degrees.
func FromEulerConventionDeg[T scalar.Float](e mat.Euler[T], c mat.Convention) Quat[T] {
	return FromEulerConvention(e.ToRadians(), c)
}

// ToEuler recovers radians for the convention q was built with. q must be
// unit length.
//
// The gimbal-lock threshold and the clamp on sin(pitch) are the same as
// mat.Mat3.ToEuler, so both paths agree on the returned triple.
func (q Quat[T]) ToEuler(c mat.Convention) (mat.Euler[T], error) {
	if err := requireUnit(q); err != nil {
		return mat.Euler[T]{}, err
	}

	switch c {
	case mat.ObjectToUpright:
	case mat.UprightToObject:
		q = q.Conjugate()
	default:
		return mat.Euler[T]{}, fmt.Errorf("quat: invalid convention %d", c)
	}

	w, x, y, z := q.W, q.V.X, q.V.Y, q.V.Z

	sp := scalar.Clamp(-2*(y*z-w*x), -1, 1)
	e := mat.Euler[T]{Pitch: scalar.Asin(sp)}

	if scalar.Abs(sp) > scalar.GimbalLockThreshold {
		e.Heading = scalar.Atan2(w*y-x*z, 0.5-y*y-z*z)
		return e, nil
	}

	e.Heading = scalar.Atan2(x*z+w*y, 0.5-x*x-y*y)
	e.Bank = scalar.Atan2(x*y+w*z, 0.5-x*x-z*z)
	return e, nil
}

// ToEulerDeg is ToEuler returning degrees.
func (q Quat[T]) ToEulerDeg(c mat.Convention) (mat.Euler[T], error) {
	e, err := q.ToEuler(c)
	if err != nil {
		return mat.Euler[T]{}, err
	}
	return e.ToDegrees(), nil
}

// FromAngleAxis returns the rotation by theta radians about the unit axis n.
func FromAngleAxis[T scalar.Float](n vec.Vec3[T], theta T) (Quat[T], error) {
	if err := vec.RequireUnit(n); err != nil {
		return Quat[T]{}, fmt.Errorf("rotation axis: %w", err)
	}
	s, c := scalar.SinCos(theta / 2)
	return Quat[T]{W: c, V: n.Scale(s)}, nil
}

// FromAngleAxisDeg is FromAngleAxis with theta in degrees.
func FromAngleAxisDeg[T scalar.Float](n vec.Vec3[T], theta T) (Quat[T], error) {
	return FromAngleAxis(n, scalar.ToRadians(theta))
}

// ToAngleAxis returns the unit axis and angle in radians of a unit q.
// A rotation with no axis (the identity) yields the X axis and zero.
func (q Quat[T]) ToAngleAxis() (vec.Vec3[T], T) {
	s := q.V.Length()
	if scalar.IsZero(s) {
		return vec.Right[T](), 0
	}
	return q.V.Scale(1 / s), 2 * scalar.Atan2(s, q.W)
}

// Pow scales the rotation angle of a unit q by t. The half angle comes from
// atan2(|v|, w), which stays accurate for rotations arbitrarily close to
// ±identity. An exact -identity has no axis and is taken about Right.
func (q Quat[T]) Pow(t T) Quat[T] {
	s := q.V.Length()
	alpha := scalar.Atan2(s, q.W)
	sin, cos := scalar.SinCos(alpha * t)
	if s == 0 {
		return Quat[T]{W: cos, V: vec.Right[T]().Scale(sin)}
	}
	return Quat[T]{W: cos, V: q.V.Scale(sin / s)}
}
