package vec

import (
	"fmt"

	"github.com/hupe1980/vecmath/scalar"
)

// Vec3 is a three component vector.
type Vec3[T scalar.Float] struct {
	X, Y, Z T
}

// New3 returns (x, y, z).
func New3[T scalar.Float](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Splat3 returns (t, t, t).
func Splat3[T scalar.Float](t T) Vec3[T] {
	return Vec3[T]{X: t, Y: t, Z: t}
}

// Zero3 returns the zero vector.
func Zero3[T scalar.Float]() Vec3[T] {
	return Vec3[T]{}
}

// Right returns the unit X axis.
func Right[T scalar.Float]() Vec3[T] {
	return Vec3[T]{X: 1}
}

// Up returns the unit Y axis.
func Up[T scalar.Float]() Vec3[T] {
	return Vec3[T]{Y: 1}
}

// Forward returns the unit Z axis.
func Forward[T scalar.Float]() Vec3[T] {
	return Vec3[T]{Z: 1}
}

// FromArray3 builds a vector from a [3]T in x, y, z order.
func FromArray3[T scalar.Float](a [3]T) Vec3[T] {
	return Vec3[T]{X: a[0], Y: a[1], Z: a[2]}
}

// Array returns the components in x, y, z order.
func (v Vec3[T]) Array() [3]T {
	return [3]T{v.X, v.Y, v.Z}
}

// At returns component i (0 = x, 1 = y, 2 = z). It panics on other indices.
func (v Vec3[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic(fmt.Sprintf("vec: index %d out of range for Vec3", i))
	}
}

// Add returns v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Mul returns the component-wise product.
func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z}
}

// Div returns the component-wise quotient.
func (v Vec3[T]) Div(o Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X / o.X, Y: v.Y / o.Y, Z: v.Z / o.Z}
}

// Scale returns v * s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product.
func (v Vec3[T]) Dot(o Vec3[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the right-handed cross product v × o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// LengthSquared returns dot(v, v).
func (v Vec3[T]) LengthSquared() T {
	return v.Dot(v)
}

// Length returns the Euclidean length.
func (v Vec3[T]) Length() T {
	return scalar.Sqrt(v.LengthSquared())
}

// IsUnit reports whether dot(v, v) ≈ 1.
func (v Vec3[T]) IsUnit() bool {
	return scalar.ApproxEqual(v.LengthSquared(), 1)
}

// Normalized returns v scaled to unit length.
// Returns false if v has zero length.
func (v Vec3[T]) Normalized() (Vec3[T], bool) {
	if !v.Normalize() {
		return v, false
	}
	return v, true
}

// Normalize scales v to unit length in place.
// Returns false, leaving v unchanged, if v has zero length.
func (v *Vec3[T]) Normalize() bool {
	l2 := v.LengthSquared()
	if l2 == 0 {
		return false
	}
	inv := 1 / scalar.Sqrt(l2)
	v.X *= inv
	v.Y *= inv
	v.Z *= inv
	return true
}

// Lerp blends v towards o by t.
func (v Vec3[T]) Lerp(o Vec3[T], t T) Vec3[T] {
	return Vec3[T]{
		X: scalar.Lerp(v.X, o.X, t),
		Y: scalar.Lerp(v.Y, o.Y, t),
		Z: scalar.Lerp(v.Z, o.Z, t),
	}
}

// ApproxEqual compares component-wise within the default epsilon.
func (v Vec3[T]) ApproxEqual(o Vec3[T]) bool {
	return scalar.ApproxEqual(v.X, o.X) &&
		scalar.ApproxEqual(v.Y, o.Y) &&
		scalar.ApproxEqual(v.Z, o.Z)
}

// XY drops the z component.
func (v Vec3[T]) XY() Vec2[T] {
	return Vec2[T]{X: v.X, Y: v.Y}
}

// Extend appends w.
func (v Vec3[T]) Extend(w T) Vec4[T] {
	return Vec4[T]{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

func (v Vec3[T]) String() string {
	return fmt.Sprintf("(%.2f %.2f %.2f)", float64(v.X), float64(v.Y), float64(v.Z))
}
