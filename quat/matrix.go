package quat

import (
	"github.com/hupe1980/vecmath/mat"
	"github.com/hupe1980/vecmath/scalar"
)

// ToMat3 returns the column-vector rotation matrix of a unit q.
func ToMat3[T scalar.Float](q Quat[T]) mat.Mat3[T] {
	w, x, y, z := q.W, q.V.X, q.V.Y, q.V.Z
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return mat.Mat3[T]{
		{1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy)},
		{2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx)},
		{2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy)},
	}
}

// Mat3 is ToMat3(q).
func (q Quat[T]) Mat3() mat.Mat3[T] {
	return ToMat3(q)
}

// Mat4 returns the rotation lifted to a 4×4 affine matrix.
func (q Quat[T]) Mat4() mat.Mat4[T] {
	return ToMat3(q).Mat4()
}

// FromMat3 extracts the unit quaternion of the rotation m (Shepperd's method).
// The component with the largest magnitude is recovered with a square root
// and the other three from sums and differences of off-diagonal terms, which
// keeps the division well conditioned for every rotation angle.
func FromMat3[T scalar.Float](m mat.Mat3[T]) Quat[T] {
	trace := m[0][0] + m[1][1] + m[2][2]

	// Each candidate is 4c²−1 for the component c it recovers.
	candidates := [4]T{
		trace,
		m[0][0] - m[1][1] - m[2][2],
		-m[0][0] + m[1][1] - m[2][2],
		-m[0][0] - m[1][1] + m[2][2],
	}

	largest := 0
	for i := 1; i < 4; i++ {
		if candidates[i] > candidates[largest] {
			largest = i
		}
	}

	big := scalar.Sqrt(candidates[largest]+1) * 0.5
	mult := 0.25 / big

	switch largest {
	case 0:
		return New(big,
			(m[2][1]-m[1][2])*mult,
			(m[0][2]-m[2][0])*mult,
			(m[1][0]-m[0][1])*mult)
	case 1:
		return New((m[2][1]-m[1][2])*mult,
			big,
			(m[0][1]+m[1][0])*mult,
			(m[0][2]+m[2][0])*mult)
	case 2:
		return New((m[0][2]-m[2][0])*mult,
			(m[0][1]+m[1][0])*mult,
			big,
			(m[1][2]+m[2][1])*mult)
	default:
		return New((m[1][0]-m[0][1])*mult,
			(m[0][2]+m[2][0])*mult,
			(m[1][2]+m[2][1])*mult,
			big)
	}
}

// FromMat4 extracts the rotation of the upper-left 3×3 block of m.
func FromMat4[T scalar.Float](m mat.Mat4[T]) Quat[T] {
	return FromMat3(m.Mat3())
}
