package mat

import (
	"fmt"

	"github.com/hupe1980/vecmath/scalar"
	"github.com/hupe1980/vecmath/vec"
)

// Mat2 is a row-major 2×2 matrix.
type Mat2[T scalar.Float] [2][2]T

// Identity2 returns the 2×2 identity.
func Identity2[T scalar.Float]() Mat2[T] {
	return Mat2[T]{{1, 0}, {0, 1}}
}

// FromRows2 builds a matrix from two row vectors.
func FromRows2[T scalar.Float](r0, r1 vec.Vec2[T]) Mat2[T] {
	return Mat2[T]{r0.Array(), r1.Array()}
}

// Rotation2 returns the counter-clockwise planar rotation by angle radians.
func Rotation2[T scalar.Float](angle T) Mat2[T] {
	s, c := scalar.SinCos(angle)
	return Mat2[T]{{c, -s}, {s, c}}
}

// Row returns row i.
func (m Mat2[T]) Row(i int) vec.Vec2[T] { return vec.FromArray2(m[i]) }

// Col returns column j.
func (m Mat2[T]) Col(j int) vec.Vec2[T] { return vec.New2(m[0][j], m[1][j]) }

// Mul returns m·o.
func (m Mat2[T]) Mul(o Mat2[T]) Mat2[T] {
	return Mat2[T]{
		{m[0][0]*o[0][0] + m[0][1]*o[1][0], m[0][0]*o[0][1] + m[0][1]*o[1][1]},
		{m[1][0]*o[0][0] + m[1][1]*o[1][0], m[1][0]*o[0][1] + m[1][1]*o[1][1]},
	}
}

// MulVec returns m·v.
func (m Mat2[T]) MulVec(v vec.Vec2[T]) vec.Vec2[T] {
	return vec.New2(m[0][0]*v.X+m[0][1]*v.Y, m[1][0]*v.X+m[1][1]*v.Y)
}

// Scale multiplies every element by s.
func (m Mat2[T]) Scale(s T) Mat2[T] {
	for r := range 2 {
		for c := range 2 {
			m[r][c] *= s
		}
	}
	return m
}

// Add returns m + o.
func (m Mat2[T]) Add(o Mat2[T]) Mat2[T] {
	for r := range 2 {
		for c := range 2 {
			m[r][c] += o[r][c]
		}
	}
	return m
}

// Sub returns m - o.
func (m Mat2[T]) Sub(o Mat2[T]) Mat2[T] {
	return m.Add(o.Neg())
}

// Neg returns -m.
func (m Mat2[T]) Neg() Mat2[T] {
	return m.Scale(-1)
}

// Transpose swaps rows and columns.
func (m Mat2[T]) Transpose() Mat2[T] {
	return Mat2[T]{{m[0][0], m[1][0]}, {m[0][1], m[1][1]}}
}

// Determinant returns a·d − b·c.
func (m Mat2[T]) Determinant() T {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Adjugate returns the transposed cofactor matrix.
func (m Mat2[T]) Adjugate() Mat2[T] {
	return Mat2[T]{
		{m[1][1], -m[0][1]},
		{-m[1][0], m[0][0]},
	}
}

// Inverse returns Adjugate()/Determinant(), or a *SingularMatrixError.
func (m Mat2[T]) Inverse() (Mat2[T], error) {
	det := m.Determinant()
	if singular(det, m.Row(0).Length()*m.Row(1).Length()) {
		return Mat2[T]{}, &SingularMatrixError{Size: 2, Determinant: float64(det)}
	}
	return m.Adjugate().Scale(1 / det), nil
}

// ApproxEqual compares element-wise within the default epsilon.
func (m Mat2[T]) ApproxEqual(o Mat2[T]) bool {
	for r := range 2 {
		for c := range 2 {
			if !scalar.ApproxEqual(m[r][c], o[r][c]) {
				return false
			}
		}
	}
	return true
}

// Mat3 embeds m in the upper-left corner of a 3×3 identity.
func (m Mat2[T]) Mat3() Mat3[T] {
	return Mat3[T]{
		{m[0][0], m[0][1], 0},
		{m[1][0], m[1][1], 0},
		{0, 0, 1},
	}
}

func (m Mat2[T]) String() string {
	return fmt.Sprintf("[%.2f %.2f]\n[%.2f %.2f]",
		float64(m[0][0]), float64(m[0][1]),
		float64(m[1][0]), float64(m[1][1]))
}
