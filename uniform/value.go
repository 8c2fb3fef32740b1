package uniform

import (
	"fmt"

	"github.com/hupe1980/vecmath/internal/half"
	"github.com/hupe1980/vecmath/mat"
	"github.com/hupe1980/vecmath/quat"
	"github.com/hupe1980/vecmath/scalar"
	"github.com/hupe1980/vecmath/vec"
)

// Kind is the shader type a Value encodes as.
type Kind uint8

const (
	Vec2 Kind = iota + 1
	Vec3
	Vec4
	Mat2
	Mat3
	Mat4
)

func (k Kind) String() string {
	switch k {
	case Vec2:
		return "vec2"
	case Vec3:
		return "vec3"
	case Vec4:
		return "vec4"
	case Mat2:
		return "mat2"
	case Mat3:
		return "mat3"
	case Mat4:
		return "mat4"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// shape returns the column count and rows per column.
func (k Kind) shape() (cols, rows int) {
	switch k {
	case Vec2:
		return 1, 2
	case Vec3:
		return 1, 3
	case Vec4:
		return 1, 4
	case Mat2:
		return 2, 2
	case Mat3:
		return 3, 3
	case Mat4:
		return 4, 4
	default:
		return 0, 0
	}
}

// Value is a column-major snapshot of a vector, matrix or quaternion.
// The zero Value has no kind and encodes to nothing.
type Value struct {
	kind Kind
	n    int
	data [16]float64
}

// Kind returns the shader type.
func (v Value) Kind() Kind { return v.kind }

// Len returns the number of components without padding.
func (v Value) Len() int { return v.n }

// At returns component i in column-major order.
func (v Value) At(i int) float64 {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("uniform: component %d out of range [0, %d)", i, v.n))
	}
	return v.data[i]
}

func fromComponents[T scalar.Float](k Kind, comps ...T) Value {
	v := Value{kind: k, n: len(comps)}
	for i, c := range comps {
		v.data[i] = float64(c)
	}
	return v
}

// FromVec2 captures x, y.
func FromVec2[T scalar.Float](v vec.Vec2[T]) Value {
	return fromComponents(Vec2, v.X, v.Y)
}

// FromVec3 captures x, y, z.
func FromVec3[T scalar.Float](v vec.Vec3[T]) Value {
	return fromComponents(Vec3, v.X, v.Y, v.Z)
}

// FromVec4 captures x, y, z, w.
func FromVec4[T scalar.Float](v vec.Vec4[T]) Value {
	return fromComponents(Vec4, v.X, v.Y, v.Z, v.W)
}

// FromQuat captures q as a vec4 in x, y, z, w order, the layout shaders use
// for rotation quaternions.
func FromQuat[T scalar.Float](q quat.Quat[T]) Value {
	return fromComponents(Vec4, q.V.X, q.V.Y, q.V.Z, q.W)
}

// FromMat2 captures m column by column.
func FromMat2[T scalar.Float](m mat.Mat2[T]) Value {
	return fromComponents(Mat2,
		m[0][0], m[1][0],
		m[0][1], m[1][1],
	)
}

// FromMat3 captures m column by column.
func FromMat3[T scalar.Float](m mat.Mat3[T]) Value {
	return fromComponents(Mat3,
		m[0][0], m[1][0], m[2][0],
		m[0][1], m[1][1], m[2][1],
		m[0][2], m[1][2], m[2][2],
	)
}

// FromMat4 captures m column by column.
func FromMat4[T scalar.Float](m mat.Mat4[T]) Value {
	return fromComponents(Mat4,
		m[0][0], m[1][0], m[2][0], m[3][0],
		m[0][1], m[1][1], m[2][1], m[3][1],
		m[0][2], m[1][2], m[2][2], m[3][2],
		m[0][3], m[1][3], m[2][3], m[3][3],
	)
}

// Float32s appends the packed components to dst.
func (v Value) Float32s(dst []float32) []float32 {
	for _, c := range v.data[:v.n] {
		dst = append(dst, float32(c))
	}
	return dst
}

// Float64s appends the packed components to dst.
func (v Value) Float64s(dst []float64) []float64 {
	return append(dst, v.data[:v.n]...)
}

// Halfs appends the packed components as IEEE-754 binary16 bit patterns.
func (v Value) Halfs(dst []uint16) []uint16 {
	for _, c := range v.data[:v.n] {
		dst = append(dst, uint16(half.FromFloat64(c)))
	}
	return dst
}
