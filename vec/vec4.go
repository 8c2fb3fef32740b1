package vec

import (
	"fmt"

	"github.com/hupe1980/vecmath/scalar"
)

// Vec4 is a four component vector, typically a homogeneous point (w = 1) or
// direction (w = 0).
type Vec4[T scalar.Float] struct {
	X, Y, Z, W T
}

// New4 returns (x, y, z, w).
func New4[T scalar.Float](x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: w}
}

// Splat4 returns (t, t, t, t).
func Splat4[T scalar.Float](t T) Vec4[T] {
	return Vec4[T]{X: t, Y: t, Z: t, W: t}
}

// Zero4 returns the zero vector.
func Zero4[T scalar.Float]() Vec4[T] {
	return Vec4[T]{}
}

// FromArray4 builds a vector from a [4]T in x, y, z, w order.
func FromArray4[T scalar.Float](a [4]T) Vec4[T] {
	return Vec4[T]{X: a[0], Y: a[1], Z: a[2], W: a[3]}
}

// Array returns the components in x, y, z, w order.
func (v Vec4[T]) Array() [4]T {
	return [4]T{v.X, v.Y, v.Z, v.W}
}

// At returns component i (0 = x ... 3 = w). It panics on other indices.
func (v Vec4[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	default:
		panic(fmt.Sprintf("vec: index %d out of range for Vec4", i))
	}
}

func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z, W: v.W + o.W}
}

func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z, W: v.W - o.W}
}

func (v Vec4[T]) Mul(o Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z, W: v.W * o.W}
}

func (v Vec4[T]) Div(o Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X / o.X, Y: v.Y / o.Y, Z: v.Z / o.Z, W: v.W / o.W}
}

func (v Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

func (v Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// Dot returns the dot product.
func (v Vec4[T]) Dot(o Vec4[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// LengthSquared returns dot(v, v).
func (v Vec4[T]) LengthSquared() T {
	return v.Dot(v)
}

// Length returns the Euclidean length.
func (v Vec4[T]) Length() T {
	return scalar.Sqrt(v.LengthSquared())
}

// IsUnit reports whether dot(v, v) ≈ 1.
func (v Vec4[T]) IsUnit() bool {
	return scalar.ApproxEqual(v.LengthSquared(), 1)
}

// Normalized returns v scaled to unit length.
// Returns false if v has zero length.
func (v Vec4[T]) Normalized() (Vec4[T], bool) {
	if !v.Normalize() {
		return v, false
	}
	return v, true
}

// Normalize scales v to unit length in place.
// Returns false, leaving v unchanged, if v has zero length.
func (v *Vec4[T]) Normalize() bool {
	l2 := v.LengthSquared()
	if l2 == 0 {
		return false
	}
	inv := 1 / scalar.Sqrt(l2)
	v.X *= inv
	v.Y *= inv
	v.Z *= inv
	v.W *= inv
	return true
}

// Lerp blends v towards o by t.
func (v Vec4[T]) Lerp(o Vec4[T], t T) Vec4[T] {
	return Vec4[T]{
		X: scalar.Lerp(v.X, o.X, t),
		Y: scalar.Lerp(v.Y, o.Y, t),
		Z: scalar.Lerp(v.Z, o.Z, t),
		W: scalar.Lerp(v.W, o.W, t),
	}
}

// ApproxEqual compares component-wise within the default epsilon.
func (v Vec4[T]) ApproxEqual(o Vec4[T]) bool {
	return scalar.ApproxEqual(v.X, o.X) &&
		scalar.ApproxEqual(v.Y, o.Y) &&
		scalar.ApproxEqual(v.Z, o.Z) &&
		scalar.ApproxEqual(v.W, o.W)
}

// Truncate drops the w component.
func (v Vec4[T]) Truncate() Vec3[T] {
	return Vec3[T]{X: v.X, Y: v.Y, Z: v.Z}
}

// Project divides x, y, z by w. Directions (w = 0) are returned truncated.
func (v Vec4[T]) Project() Vec3[T] {
	if v.W == 0 {
		return v.Truncate()
	}
	inv := 1 / v.W
	return Vec3[T]{X: v.X * inv, Y: v.Y * inv, Z: v.Z * inv}
}

func (v Vec4[T]) String() string {
	return fmt.Sprintf("(%.2f %.2f %.2f %.2f)", float64(v.X), float64(v.Y), float64(v.Z), float64(v.W))
}
