package mat

import (
	"fmt"

	"github.com/hupe1980/vecmath/scalar"
	"github.com/hupe1980/vecmath/vec"
)

// Perspective returns a right-handed projection mapping the view frustum to
// clip space with depth in [-1, 1]. fovY is the vertical field of view in
// radians.
func Perspective[T scalar.Float](fovY, aspect, near, far T) (Mat4[T], error) {
	switch {
	case fovY <= 0 || fovY >= scalar.Pi[T]():
		return Mat4[T]{}, fmt.Errorf("%w: fovY %v out of (0, π)", ErrInvalidProjection, fovY)
	case aspect <= 0:
		return Mat4[T]{}, fmt.Errorf("%w: aspect %v", ErrInvalidProjection, aspect)
	case near <= 0 || far <= near:
		return Mat4[T]{}, fmt.Errorf("%w: near %v far %v", ErrInvalidProjection, near, far)
	}

	f := 1 / scalar.Tan(fovY/2)
	d := near - far

	return Mat4[T]{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) / d, 2 * far * near / d},
		{0, 0, -1, 0},
	}, nil
}

// LookAt returns the right-handed view matrix for a camera at eye looking
// along dir. up only needs to be non-parallel to dir.
func LookAt[T scalar.Float](eye, dir, up vec.Vec3[T]) (Mat4[T], error) {
	f, ok := dir.Normalized()
	if !ok {
		return Mat4[T]{}, fmt.Errorf("%w: zero view direction", ErrDegenerateBasis)
	}

	s := f.Cross(up)
	if scalar.IsZero(s.LengthSquared()) {
		return Mat4[T]{}, fmt.Errorf("%w: up is parallel to view direction", ErrDegenerateBasis)
	}

	s.Normalize()
	u := s.Cross(f)

	return Mat4[T]{
		{s.X, s.Y, s.Z, -s.Dot(eye)},
		{u.X, u.Y, u.Z, -u.Dot(eye)},
		{-f.X, -f.Y, -f.Z, f.Dot(eye)},
		{0, 0, 0, 1},
	}, nil
}
