package kernel

import (
	"github.com/hupe1980/vecmath/mat"
	"github.com/hupe1980/vecmath/scalar"
	"github.com/hupe1980/vecmath/vec"
)

// Affine writes m applied to every point of src into dst, dividing by the
// resulting w like mat.Mat4.MulPoint. dst must be at least len(src) long and
// may alias src.
func Affine[T scalar.Float](k Kind, m *mat.Mat4[T], src, dst []vec.Vec3[T]) {
	dst = dst[:len(src)]
	projective := m[3][0] != 0 || m[3][1] != 0 || m[3][2] != 0 || m[3][3] != 1

	if k == Blocked && !projective {
		affineBlocked(m, src, dst)
		return
	}
	for i, p := range src {
		dst[i] = affinePoint(m, p, projective)
	}
}

// Linear writes m applied to every vector of src into dst. dst must be at
// least len(src) long and may alias src.
func Linear[T scalar.Float](k Kind, m *mat.Mat3[T], src, dst []vec.Vec3[T]) {
	dst = dst[:len(src)]

	if k == Blocked {
		linearBlocked(m, src, dst)
		return
	}
	for i, v := range src {
		dst[i] = m.MulVec(v)
	}
}

func affinePoint[T scalar.Float](m *mat.Mat4[T], p vec.Vec3[T], projective bool) vec.Vec3[T] {
	r := vec.New3(
		m[0][0]*p.X+m[0][1]*p.Y+m[0][2]*p.Z+m[0][3],
		m[1][0]*p.X+m[1][1]*p.Y+m[1][2]*p.Z+m[1][3],
		m[2][0]*p.X+m[2][1]*p.Y+m[2][2]*p.Z+m[2][3],
	)
	if !projective {
		return r
	}
	w := m[3][0]*p.X + m[3][1]*p.Y + m[3][2]*p.Z + m[3][3]
	if w == 0 {
		return r
	}
	return r.Scale(1 / w)
}

func affineBlocked[T scalar.Float](m *mat.Mat4[T], src, dst []vec.Vec3[T]) {
	a00, a01, a02, a03 := m[0][0], m[0][1], m[0][2], m[0][3]
	a10, a11, a12, a13 := m[1][0], m[1][1], m[1][2], m[1][3]
	a20, a21, a22, a23 := m[2][0], m[2][1], m[2][2], m[2][3]

	n := len(src) &^ 3
	for i := 0; i < n; i += 4 {
		p0, p1, p2, p3 := src[i], src[i+1], src[i+2], src[i+3]

		dst[i] = vec.Vec3[T]{
			X: a00*p0.X + a01*p0.Y + a02*p0.Z + a03,
			Y: a10*p0.X + a11*p0.Y + a12*p0.Z + a13,
			Z: a20*p0.X + a21*p0.Y + a22*p0.Z + a23,
		}
		dst[i+1] = vec.Vec3[T]{
			X: a00*p1.X + a01*p1.Y + a02*p1.Z + a03,
			Y: a10*p1.X + a11*p1.Y + a12*p1.Z + a13,
			Z: a20*p1.X + a21*p1.Y + a22*p1.Z + a23,
		}
		dst[i+2] = vec.Vec3[T]{
			X: a00*p2.X + a01*p2.Y + a02*p2.Z + a03,
			Y: a10*p2.X + a11*p2.Y + a12*p2.Z + a13,
			Z: a20*p2.X + a21*p2.Y + a22*p2.Z + a23,
		}
		dst[i+3] = vec.Vec3[T]{
			X: a00*p3.X + a01*p3.Y + a02*p3.Z + a03,
			Y: a10*p3.X + a11*p3.Y + a12*p3.Z + a13,
			Z: a20*p3.X + a21*p3.Y + a22*p3.Z + a23,
		}
	}

	for i := n; i < len(src); i++ {
		dst[i] = affinePoint(m, src[i], false)
	}
}

func linearBlocked[T scalar.Float](m *mat.Mat3[T], src, dst []vec.Vec3[T]) {
	a00, a01, a02 := m[0][0], m[0][1], m[0][2]
	a10, a11, a12 := m[1][0], m[1][1], m[1][2]
	a20, a21, a22 := m[2][0], m[2][1], m[2][2]

	n := len(src) &^ 3
	for i := 0; i < n; i += 4 {
		v0, v1, v2, v3 := src[i], src[i+1], src[i+2], src[i+3]

		dst[i] = vec.Vec3[T]{
			X: a00*v0.X + a01*v0.Y + a02*v0.Z,
			Y: a10*v0.X + a11*v0.Y + a12*v0.Z,
			Z: a20*v0.X + a21*v0.Y + a22*v0.Z,
		}
		dst[i+1] = vec.Vec3[T]{
			X: a00*v1.X + a01*v1.Y + a02*v1.Z,
			Y: a10*v1.X + a11*v1.Y + a12*v1.Z,
			Z: a20*v1.X + a21*v1.Y + a22*v1.Z,
		}
		dst[i+2] = vec.Vec3[T]{
			X: a00*v2.X + a01*v2.Y + a02*v2.Z,
			Y: a10*v2.X + a11*v2.Y + a12*v2.Z,
			Z: a20*v2.X + a21*v2.Y + a22*v2.Z,
		}
		dst[i+3] = vec.Vec3[T]{
			X: a00*v3.X + a01*v3.Y + a02*v3.Z,
			Y: a10*v3.X + a11*v3.Y + a12*v3.Z,
			Z: a20*v3.X + a21*v3.Y + a22*v3.Z,
		}
	}

	for i := n; i < len(src); i++ {
		dst[i] = m.MulVec(src[i])
	}
}
