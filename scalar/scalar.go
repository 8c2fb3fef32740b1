package scalar

import (
	"math"
	"unsafe"
)

// Float is the numeric capability required by every vecmath value type.
type Float interface {
	~float32 | ~float64
}

const (
	// GimbalLockThreshold is the |sin(pitch)| above which heading and bank are
	// no longer separable during Euler-angle extraction.
	GimbalLockThreshold = 0.9999

	// SlerpLinearThreshold is the cos(omega) above which Slerp falls back to
	// linear blending to avoid dividing by sin(omega) ≈ 0.
	SlerpLinearThreshold = 0.9999

	epsilon32 = 1e-5
	epsilon64 = 1e-9
)

// Epsilon returns the default comparison tolerance for T.
func Epsilon[T Float]() T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(epsilon32)
	}
	return T(epsilon64)
}

// Bits returns the width of T in bits, 32 or 64.
func Bits[T Float]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// ApproxEqual reports whether a and b are equal within Epsilon[T]().
func ApproxEqual[T Float](a, b T) bool {
	return ApproxEqualEps(a, b, Epsilon[T]())
}

// ApproxEqualEps reports whether a and b are equal within eps, using an
// absolute tolerance below magnitude one and a relative tolerance above.
func ApproxEqualEps[T Float](a, b, eps T) bool {
	if a == b {
		return true
	}
	scale := max(T(1), Abs(a), Abs(b))
	return Abs(a-b) <= eps*scale
}

// RelativeEqual reports whether a and b agree within Epsilon[T]() of the
// larger magnitude. Unlike ApproxEqual there is no absolute floor, so values
// far below one are compared at their own scale.
func RelativeEqual[T Float](a, b T) bool {
	if a == b {
		return true
	}
	return Abs(a-b) <= Epsilon[T]()*max(Abs(a), Abs(b))
}

// IsZero reports whether v is zero within Epsilon[T]().
func IsZero[T Float](v T) bool {
	return Abs(v) <= Epsilon[T]()
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite[T Float](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Abs returns |v|.
func Abs[T Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sqrt returns the square root of v.
func Sqrt[T Float](v T) T {
	return T(math.Sqrt(float64(v)))
}

// Sin returns the sine of the radian argument a.
func Sin[T Float](a T) T {
	return T(math.Sin(float64(a)))
}

// Cos returns the cosine of the radian argument a.
func Cos[T Float](a T) T {
	return T(math.Cos(float64(a)))
}

// SinCos returns Sin(a) and Cos(a).
func SinCos[T Float](a T) (T, T) {
	s, c := math.Sincos(float64(a))
	return T(s), T(c)
}

// Tan returns the tangent of the radian argument a.
func Tan[T Float](a T) T {
	return T(math.Tan(float64(a)))
}

// Atan2 returns the arc tangent of y/x in the full (-π, π] range.
func Atan2[T Float](y, x T) T {
	return T(math.Atan2(float64(y), float64(x)))
}

// Asin returns the arc sine of v. The argument is clamped to [-1, 1] first so
// floating-point overshoot never produces NaN.
func Asin[T Float](v T) T {
	return T(math.Asin(float64(Clamp(v, -1, 1))))
}

// Acos returns the arc cosine of v, clamped like Asin.
func Acos[T Float](v T) T {
	return T(math.Acos(float64(Clamp(v, -1, 1))))
}

// Clamp limits v to [lo, hi].
func Clamp[T Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp blends a and b: a + (b-a)*t.
func Lerp[T Float](a, b, t T) T {
	return a + (b-a)*t
}

// ToRadians converts degrees to radians.
func ToRadians[T Float](deg T) T {
	return T(float64(deg) * (math.Pi / 180))
}

// ToDegrees converts radians to degrees.
func ToDegrees[T Float](rad T) T {
	return T(float64(rad) * (180 / math.Pi))
}

// HalfPi returns π/2 in T.
func HalfPi[T Float]() T {
	return T(math.Pi / 2)
}

// Pi returns π in T.
func Pi[T Float]() T {
	return T(math.Pi)
}
