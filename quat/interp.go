package quat

import "github.com/hupe1980/vecmath/scalar"

// Slerp interpolates between unit quaternions a and b along the shorter arc
// at constant angular speed. Nearly parallel inputs (cos ω above
// scalar.SlerpLinearThreshold) fall back to a normalized linear blend.
func Slerp[T scalar.Float](a, b Quat[T], t T) Quat[T] {
	cosOmega := a.Dot(b)
	if cosOmega < 0 {
		b = b.Neg()
		cosOmega = -cosOmega
	}

	if cosOmega > scalar.SlerpLinearThreshold {
		q := a.Scale(1 - t).Add(b.Scale(t))
		q.Normalize()
		return q
	}

	sinOmega := scalar.Sqrt(1 - cosOmega*cosOmega)
	omega := scalar.Atan2(sinOmega, cosOmega)
	inv := 1 / sinOmega
	k0 := scalar.Sin((1-t)*omega) * inv
	k1 := scalar.Sin(t*omega) * inv

	return a.Scale(k0).Add(b.Scale(k1))
}

// Lerp blends a and b component-wise along the shorter arc. The result is
// not normalized.
func Lerp[T scalar.Float](a, b Quat[T], t T) Quat[T] {
	if a.Dot(b) < 0 {
		b = b.Neg()
	}
	return a.Scale(1 - t).Add(b.Scale(t))
}

// Nlerp is Lerp renormalized to unit length.
func Nlerp[T scalar.Float](a, b Quat[T], t T) Quat[T] {
	q := Lerp(a, b, t)
	q.Normalize()
	return q
}
