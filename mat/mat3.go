package mat

import (
	"fmt"
	"strings"

	"github.com/hupe1980/vecmath/scalar"
	"github.com/hupe1980/vecmath/vec"
)

// Mat3 is a row-major 3×3 matrix.
type Mat3[T scalar.Float] [3][3]T

// Identity3 returns the 3×3 identity.
func Identity3[T scalar.Float]() Mat3[T] {
	return Mat3[T]{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// FromRows3 builds a matrix from three row vectors.
func FromRows3[T scalar.Float](r0, r1, r2 vec.Vec3[T]) Mat3[T] {
	return Mat3[T]{r0.Array(), r1.Array(), r2.Array()}
}

// Row returns row i.
func (m Mat3[T]) Row(i int) vec.Vec3[T] { return vec.FromArray3(m[i]) }

// Col returns column j.
func (m Mat3[T]) Col(j int) vec.Vec3[T] { return vec.New3(m[0][j], m[1][j], m[2][j]) }

// Mul returns m·o.
func (m Mat3[T]) Mul(o Mat3[T]) Mat3[T] {
	var r Mat3[T]
	for i := range 3 {
		for j := range 3 {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return r
}

// MulVec returns m·v.
func (m Mat3[T]) MulVec(v vec.Vec3[T]) vec.Vec3[T] {
	return vec.New3(
		m[0][0]*v.X+m[0][1]*v.Y+m[0][2]*v.Z,
		m[1][0]*v.X+m[1][1]*v.Y+m[1][2]*v.Z,
		m[2][0]*v.X+m[2][1]*v.Y+m[2][2]*v.Z,
	)
}

// Scale multiplies every element by s.
func (m Mat3[T]) Scale(s T) Mat3[T] {
	for r := range 3 {
		for c := range 3 {
			m[r][c] *= s
		}
	}
	return m
}

// Add returns m + o.
func (m Mat3[T]) Add(o Mat3[T]) Mat3[T] {
	for r := range 3 {
		for c := range 3 {
			m[r][c] += o[r][c]
		}
	}
	return m
}

// Sub returns m - o.
func (m Mat3[T]) Sub(o Mat3[T]) Mat3[T] {
	return m.Add(o.Neg())
}

// Neg returns -m.
func (m Mat3[T]) Neg() Mat3[T] {
	return m.Scale(-1)
}

// Transpose swaps rows and columns.
func (m Mat3[T]) Transpose() Mat3[T] {
	return Mat3[T]{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Determinant expands along the first row.
func (m Mat3[T]) Determinant() T {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Adjugate returns the transposed cofactor matrix (sign pattern + − +).
func (m Mat3[T]) Adjugate() Mat3[T] {
	return Mat3[T]{
		{
			m[1][1]*m[2][2] - m[1][2]*m[2][1],
			-(m[0][1]*m[2][2] - m[0][2]*m[2][1]),
			m[0][1]*m[1][2] - m[0][2]*m[1][1],
		},
		{
			-(m[1][0]*m[2][2] - m[1][2]*m[2][0]),
			m[0][0]*m[2][2] - m[0][2]*m[2][0],
			-(m[0][0]*m[1][2] - m[0][2]*m[1][0]),
		},
		{
			m[1][0]*m[2][1] - m[1][1]*m[2][0],
			-(m[0][0]*m[2][1] - m[0][1]*m[2][0]),
			m[0][0]*m[1][1] - m[0][1]*m[1][0],
		},
	}
}

// Inverse returns Adjugate()/Determinant(), or a *SingularMatrixError.
func (m Mat3[T]) Inverse() (Mat3[T], error) {
	adj := m.Adjugate()
	// First row of m against first column of adj is the first-row expansion.
	det := m[0][0]*adj[0][0] + m[0][1]*adj[1][0] + m[0][2]*adj[2][0]
	if singular(det, m.Row(0).Length()*m.Row(1).Length()*m.Row(2).Length()) {
		return Mat3[T]{}, &SingularMatrixError{Size: 3, Determinant: float64(det)}
	}
	return adj.Scale(1 / det), nil
}

// ApproxEqual compares element-wise within the default epsilon.
func (m Mat3[T]) ApproxEqual(o Mat3[T]) bool {
	for r := range 3 {
		for c := range 3 {
			if !scalar.ApproxEqual(m[r][c], o[r][c]) {
				return false
			}
		}
	}
	return true
}

// IsRotation reports whether m has unit, mutually orthogonal rows and a
// determinant of +1.
func (m Mat3[T]) IsRotation() bool {
	r0, r1, r2 := m.Row(0), m.Row(1), m.Row(2)
	if !r0.IsUnit() || !r1.IsUnit() || !r2.IsUnit() {
		return false
	}
	if !scalar.IsZero(r0.Dot(r1)) || !scalar.IsZero(r0.Dot(r2)) || !scalar.IsZero(r1.Dot(r2)) {
		return false
	}
	return scalar.ApproxEqual(m.Determinant(), 1)
}

// Mat4 embeds m in the upper-left corner of a 4×4 identity.
func (m Mat3[T]) Mat4() Mat4[T] {
	return Mat4[T]{
		{m[0][0], m[0][1], m[0][2], 0},
		{m[1][0], m[1][1], m[1][2], 0},
		{m[2][0], m[2][1], m[2][2], 0},
		{0, 0, 0, 1},
	}
}

// Mat2 returns the upper-left 2×2 block.
func (m Mat3[T]) Mat2() Mat2[T] {
	return Mat2[T]{{m[0][0], m[0][1]}, {m[1][0], m[1][1]}}
}

func (m Mat3[T]) String() string {
	var sb strings.Builder
	for r := range 3 {
		if r > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "[%.2f %.2f %.2f]", float64(m[r][0]), float64(m[r][1]), float64(m[r][2]))
	}
	return sb.String()
}
