package vec

import (
	"fmt"

	"github.com/hupe1980/vecmath/scalar"
)

// Vec2 is a two component vector.
type Vec2[T scalar.Float] struct {
	X, Y T
}

// New2 returns (x, y).
func New2[T scalar.Float](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Splat2 returns (t, t).
func Splat2[T scalar.Float](t T) Vec2[T] {
	return Vec2[T]{X: t, Y: t}
}

// Zero2 returns the zero vector.
func Zero2[T scalar.Float]() Vec2[T] {
	return Vec2[T]{}
}

// FromArray2 builds a vector from a [2]T in x, y order.
func FromArray2[T scalar.Float](a [2]T) Vec2[T] {
	return Vec2[T]{X: a[0], Y: a[1]}
}

// Array returns the components in x, y order.
func (v Vec2[T]) Array() [2]T {
	return [2]T{v.X, v.Y}
}

// At returns component i (0 = x, 1 = y). It panics on other indices.
func (v Vec2[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		panic(fmt.Sprintf("vec: index %d out of range for Vec2", i))
	}
}

func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] { return Vec2[T]{X: v.X * o.X, Y: v.Y * o.Y} }
func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] { return Vec2[T]{X: v.X / o.X, Y: v.Y / o.Y} }
func (v Vec2[T]) Scale(s T) Vec2[T]     { return Vec2[T]{X: v.X * s, Y: v.Y * s} }
func (v Vec2[T]) Neg() Vec2[T]          { return Vec2[T]{X: -v.X, Y: -v.Y} }
func (v Vec2[T]) Dot(o Vec2[T]) T       { return v.X*o.X + v.Y*o.Y }

// Perp returns v rotated by +90 degrees.
func (v Vec2[T]) Perp() Vec2[T] {
	return Vec2[T]{X: -v.Y, Y: v.X}
}

// LengthSquared returns dot(v, v).
func (v Vec2[T]) LengthSquared() T {
	return v.Dot(v)
}

// Length returns the Euclidean length.
func (v Vec2[T]) Length() T {
	return scalar.Sqrt(v.LengthSquared())
}

// IsUnit reports whether dot(v, v) ≈ 1.
func (v Vec2[T]) IsUnit() bool {
	return scalar.ApproxEqual(v.LengthSquared(), 1)
}

// Normalized returns v scaled to unit length.
// Returns false if v has zero length.
func (v Vec2[T]) Normalized() (Vec2[T], bool) {
	if !v.Normalize() {
		return v, false
	}
	return v, true
}

// Normalize scales v to unit length in place.
// Returns false, leaving v unchanged, if v has zero length.
func (v *Vec2[T]) Normalize() bool {
	l2 := v.LengthSquared()
	if l2 == 0 {
		return false
	}
	inv := 1 / scalar.Sqrt(l2)
	v.X *= inv
	v.Y *= inv
	return true
}

// Lerp blends v towards o by t.
func (v Vec2[T]) Lerp(o Vec2[T], t T) Vec2[T] {
	return Vec2[T]{X: scalar.Lerp(v.X, o.X, t), Y: scalar.Lerp(v.Y, o.Y, t)}
}

// ApproxEqual compares component-wise within the default epsilon.
func (v Vec2[T]) ApproxEqual(o Vec2[T]) bool {
	return scalar.ApproxEqual(v.X, o.X) && scalar.ApproxEqual(v.Y, o.Y)
}

// Extend appends z.
func (v Vec2[T]) Extend(z T) Vec3[T] {
	return Vec3[T]{X: v.X, Y: v.Y, Z: z}
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("(%.2f %.2f)", float64(v.X), float64(v.Y))
}
