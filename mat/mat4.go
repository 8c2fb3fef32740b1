package mat

import (
	"fmt"
	"strings"

	"github.com/hupe1980/vecmath/scalar"
	"github.com/hupe1980/vecmath/vec"
)

// Mat4 is a row-major 4×4 matrix. Translation lives in column 3.
type Mat4[T scalar.Float] [4][4]T

// Identity4 returns the 4×4 identity.
func Identity4[T scalar.Float]() Mat4[T] {
	return Mat4[T]{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
}

// FromRows4 builds a matrix from four row vectors.
func FromRows4[T scalar.Float](r0, r1, r2, r3 vec.Vec4[T]) Mat4[T] {
	return Mat4[T]{r0.Array(), r1.Array(), r2.Array(), r3.Array()}
}

// Translation returns the affine translation by t.
func Translation[T scalar.Float](t vec.Vec3[T]) Mat4[T] {
	m := Identity4[T]()
	m[0][3] = t.X
	m[1][3] = t.Y
	m[2][3] = t.Z
	return m
}

// Row returns row i.
func (m Mat4[T]) Row(i int) vec.Vec4[T] { return vec.FromArray4(m[i]) }

// Col returns column j.
func (m Mat4[T]) Col(j int) vec.Vec4[T] { return vec.New4(m[0][j], m[1][j], m[2][j], m[3][j]) }

// Mul returns m·o.
func (m Mat4[T]) Mul(o Mat4[T]) Mat4[T] {
	var r Mat4[T]
	for i := range 4 {
		for j := range 4 {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j] + m[i][3]*o[3][j]
		}
	}
	return r
}

// MulVec returns m·v.
func (m Mat4[T]) MulVec(v vec.Vec4[T]) vec.Vec4[T] {
	return vec.New4(
		m[0][0]*v.X+m[0][1]*v.Y+m[0][2]*v.Z+m[0][3]*v.W,
		m[1][0]*v.X+m[1][1]*v.Y+m[1][2]*v.Z+m[1][3]*v.W,
		m[2][0]*v.X+m[2][1]*v.Y+m[2][2]*v.Z+m[2][3]*v.W,
		m[3][0]*v.X+m[3][1]*v.Y+m[3][2]*v.Z+m[3][3]*v.W,
	)
}

// MulPoint transforms p as a homogeneous point (w = 1) and divides by the
// resulting w.
func (m Mat4[T]) MulPoint(p vec.Vec3[T]) vec.Vec3[T] {
	return m.MulVec(p.Extend(1)).Project()
}

// MulDir transforms d as a direction (w = 0); translation is ignored.
func (m Mat4[T]) MulDir(d vec.Vec3[T]) vec.Vec3[T] {
	return m.MulVec(d.Extend(0)).Truncate()
}

// Scale multiplies every element by s.
func (m Mat4[T]) Scale(s T) Mat4[T] {
	for r := range 4 {
		for c := range 4 {
			m[r][c] *= s
		}
	}
	return m
}

// Add returns m + o.
func (m Mat4[T]) Add(o Mat4[T]) Mat4[T] {
	for r := range 4 {
		for c := range 4 {
			m[r][c] += o[r][c]
		}
	}
	return m
}

// Sub returns m - o.
func (m Mat4[T]) Sub(o Mat4[T]) Mat4[T] {
	return m.Add(o.Neg())
}

// Neg returns -m.
func (m Mat4[T]) Neg() Mat4[T] {
	return m.Scale(-1)
}

// Transpose swaps rows and columns.
func (m Mat4[T]) Transpose() Mat4[T] {
	var r Mat4[T]
	for i := range 4 {
		for j := range 4 {
			r[i][j] = m[j][i]
		}
	}
	return r
}

// subDeterminants returns the six 2×2 determinants of rows 0–1 (s) and of
// rows 2–3 (c), one per column pair. Every 4×4 cofactor is a signed
// combination of one row against these terms.
func (m Mat4[T]) subDeterminants() (s, c [6]T) {
	s[0] = m[0][0]*m[1][1] - m[1][0]*m[0][1]
	s[1] = m[0][0]*m[1][2] - m[1][0]*m[0][2]
	s[2] = m[0][0]*m[1][3] - m[1][0]*m[0][3]
	s[3] = m[0][1]*m[1][2] - m[1][1]*m[0][2]
	s[4] = m[0][1]*m[1][3] - m[1][1]*m[0][3]
	s[5] = m[0][2]*m[1][3] - m[1][2]*m[0][3]

	c[5] = m[2][2]*m[3][3] - m[3][2]*m[2][3]
	c[4] = m[2][1]*m[3][3] - m[3][1]*m[2][3]
	c[3] = m[2][1]*m[3][2] - m[3][1]*m[2][2]
	c[2] = m[2][0]*m[3][3] - m[3][0]*m[2][3]
	c[1] = m[2][0]*m[3][2] - m[3][0]*m[2][2]
	c[0] = m[2][0]*m[3][1] - m[3][0]*m[2][1]
	return s, c
}

func determinantFrom[T scalar.Float](s, c [6]T) T {
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

func (m Mat4[T]) adjugateFrom(s, c [6]T) Mat4[T] {
	return Mat4[T]{
		{
			m[1][1]*c[5] - m[1][2]*c[4] + m[1][3]*c[3],
			-m[0][1]*c[5] + m[0][2]*c[4] - m[0][3]*c[3],
			m[3][1]*s[5] - m[3][2]*s[4] + m[3][3]*s[3],
			-m[2][1]*s[5] + m[2][2]*s[4] - m[2][3]*s[3],
		},
		{
			-m[1][0]*c[5] + m[1][2]*c[2] - m[1][3]*c[1],
			m[0][0]*c[5] - m[0][2]*c[2] + m[0][3]*c[1],
			-m[3][0]*s[5] + m[3][2]*s[2] - m[3][3]*s[1],
			m[2][0]*s[5] - m[2][2]*s[2] + m[2][3]*s[1],
		},
		{
			m[1][0]*c[4] - m[1][1]*c[2] + m[1][3]*c[0],
			-m[0][0]*c[4] + m[0][1]*c[2] - m[0][3]*c[0],
			m[3][0]*s[4] - m[3][1]*s[2] + m[3][3]*s[0],
			-m[2][0]*s[4] + m[2][1]*s[2] - m[2][3]*s[0],
		},
		{
			-m[1][0]*c[3] + m[1][1]*c[1] - m[1][2]*c[0],
			m[0][0]*c[3] - m[0][1]*c[1] + m[0][2]*c[0],
			-m[3][0]*s[3] + m[3][1]*s[1] - m[3][2]*s[0],
			m[2][0]*s[3] - m[2][1]*s[1] + m[2][2]*s[0],
		},
	}
}

// Determinant returns the determinant via the shared sub-determinants.
func (m Mat4[T]) Determinant() T {
	s, c := m.subDeterminants()
	return determinantFrom(s, c)
}

// Adjugate returns the transposed cofactor matrix.
func (m Mat4[T]) Adjugate() Mat4[T] {
	s, c := m.subDeterminants()
	return m.adjugateFrom(s, c)
}

// Inverse returns Adjugate()/Determinant(), or a *SingularMatrixError.
// The sub-determinants are computed once for both.
func (m Mat4[T]) Inverse() (Mat4[T], error) {
	s, c := m.subDeterminants()
	det := determinantFrom(s, c)
	if singular(det, m.Row(0).Length()*m.Row(1).Length()*m.Row(2).Length()*m.Row(3).Length()) {
		return Mat4[T]{}, &SingularMatrixError{Size: 4, Determinant: float64(det)}
	}
	return m.adjugateFrom(s, c).Scale(1 / det), nil
}

// ApproxEqual compares element-wise within the default epsilon.
func (m Mat4[T]) ApproxEqual(o Mat4[T]) bool {
	for r := range 4 {
		for c := range 4 {
			if !scalar.ApproxEqual(m[r][c], o[r][c]) {
				return false
			}
		}
	}
	return true
}

// Mat3 returns the upper-left 3×3 block (the linear part of an affine map).
func (m Mat4[T]) Mat3() Mat3[T] {
	return Mat3[T]{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
}

// TranslationPart returns column 3 as a vector.
func (m Mat4[T]) TranslationPart() vec.Vec3[T] {
	return vec.New3(m[0][3], m[1][3], m[2][3])
}

// Translate right-multiplies m by Translation(t).
func (m *Mat4[T]) Translate(t vec.Vec3[T]) {
	*m = m.Mul(Translation(t))
}

func (m Mat4[T]) String() string {
	var sb strings.Builder
	for r := range 4 {
		if r > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "[%.2f %.2f %.2f %.2f]",
			float64(m[r][0]), float64(m[r][1]), float64(m[r][2]), float64(m[r][3]))
	}
	return sb.String()
}
