package quat

import (
	"fmt"

	"github.com/hupe1980/vecmath/scalar"
	"github.com/hupe1980/vecmath/vec"
)

// Quat is the quaternion W + V.X·i + V.Y·j + V.Z·k.
type Quat[T scalar.Float] struct {
	W T
	V vec.Vec3[T]
}

// New returns w + xi + yj + zk.
func New[T scalar.Float](w, x, y, z T) Quat[T] {
	return Quat[T]{W: w, V: vec.New3(x, y, z)}
}

// FromParts returns the quaternion with scalar part w and vector part v.
func FromParts[T scalar.Float](w T, v vec.Vec3[T]) Quat[T] {
	return Quat[T]{W: w, V: v}
}

// Identity returns the multiplicative identity (no rotation).
func Identity[T scalar.Float]() Quat[T] {
	return Quat[T]{W: 1}
}

// FromArray reads w, x, y, z in that order.
func FromArray[T scalar.Float](a [4]T) Quat[T] {
	return New(a[0], a[1], a[2], a[3])
}

// Array returns w, x, y, z.
func (q Quat[T]) Array() [4]T {
	return [4]T{q.W, q.V.X, q.V.Y, q.V.Z}
}

// Dot returns the four-component dot product.
func (q Quat[T]) Dot(o Quat[T]) T {
	return q.W*o.W + q.V.Dot(o.V)
}

// LengthSquared returns the squared norm.
func (q Quat[T]) LengthSquared() T {
	return q.Dot(q)
}

// Length returns the norm.
func (q Quat[T]) Length() T {
	return scalar.Sqrt(q.LengthSquared())
}

// IsUnit reports whether |q|² ≈ 1.
func (q Quat[T]) IsUnit() bool {
	return scalar.ApproxEqual(q.LengthSquared(), 1)
}

// IsPure reports whether the scalar part is zero within epsilon.
func (q Quat[T]) IsPure() bool {
	return scalar.IsZero(q.W)
}

// IsPureUnit reports whether q is pure and unit length.
func (q Quat[T]) IsPureUnit() bool {
	return q.IsPure() && q.IsUnit()
}

// Conjugate negates the vector part.
func (q Quat[T]) Conjugate() Quat[T] {
	return Quat[T]{W: q.W, V: q.V.Neg()}
}

// Inverse returns Conjugate()/|q|². For a unit quaternion this is the
// conjugate.
func (q Quat[T]) Inverse() (Quat[T], error) {
	l2 := q.LengthSquared()
	if l2 == 0 {
		return Quat[T]{}, ErrZeroQuaternion
	}
	return q.Conjugate().Scale(1 / l2), nil
}

// Normalized returns q scaled to unit length.
// Returns false if q is zero.
func (q Quat[T]) Normalized() (Quat[T], bool) {
	if !q.Normalize() {
		return q, false
	}
	return q, true
}

// Normalize scales q to unit length in place.
// Returns false, leaving q unchanged, if q is zero.
func (q *Quat[T]) Normalize() bool {
	l2 := q.LengthSquared()
	if l2 == 0 {
		return false
	}
	*q = q.Scale(1 / scalar.Sqrt(l2))
	return true
}

// Mul returns the Hamilton product q·o. Rotations compose right to left:
// q.Mul(o) applies o first.
func (q Quat[T]) Mul(o Quat[T]) Quat[T] {
	return Quat[T]{
		W: q.W*o.W - q.V.Dot(o.V),
		V: o.V.Scale(q.W).Add(q.V.Scale(o.W)).Add(q.V.Cross(o.V)),
	}
}

// Div returns q·o⁻¹.
func (q Quat[T]) Div(o Quat[T]) (Quat[T], error) {
	inv, err := o.Inverse()
	if err != nil {
		return Quat[T]{}, err
	}
	return q.Mul(inv), nil
}

// Scale multiplies every component by s.
func (q Quat[T]) Scale(s T) Quat[T] {
	return Quat[T]{W: q.W * s, V: q.V.Scale(s)}
}

// Add returns the component-wise sum.
func (q Quat[T]) Add(o Quat[T]) Quat[T] {
	return Quat[T]{W: q.W + o.W, V: q.V.Add(o.V)}
}

// Sub returns the component-wise difference.
func (q Quat[T]) Sub(o Quat[T]) Quat[T] {
	return Quat[T]{W: q.W - o.W, V: q.V.Sub(o.V)}
}

// Neg negates every component. -q represents the same rotation as q.
func (q Quat[T]) Neg() Quat[T] {
	return Quat[T]{W: -q.W, V: q.V.Neg()}
}

// Rotate applies the sandwich product q·(0, v)·q⁻¹. q need not be unit
// length; a zero q yields ErrZeroQuaternion.
func (q Quat[T]) Rotate(v vec.Vec3[T]) (vec.Vec3[T], error) {
	inv, err := q.Inverse()
	if err != nil {
		return vec.Vec3[T]{}, err
	}
	return q.Mul(Quat[T]{V: v}).Mul(inv).V, nil
}

// ApproxEqual compares component-wise within the default epsilon.
func (q Quat[T]) ApproxEqual(o Quat[T]) bool {
	return scalar.ApproxEqual(q.W, o.W) && q.V.ApproxEqual(o.V)
}

// SameRotation reports whether q and o represent the same rotation, that is
// q ≈ o or q ≈ -o.
func (q Quat[T]) SameRotation(o Quat[T]) bool {
	return q.ApproxEqual(o) || q.ApproxEqual(o.Neg())
}

func (q Quat[T]) String() string {
	return fmt.Sprintf("(%.2f %s)", float64(q.W), q.V)
}
