package vecmath

import (
	"github.com/hupe1980/vecmath/mat"
	"github.com/hupe1980/vecmath/quat"
	"github.com/hupe1980/vecmath/transform"
	"github.com/hupe1980/vecmath/vec"
)

// Single-precision aliases, the common choice for GPU-bound data.
type (
	Vec2  = vec.Vec2[float32]
	Vec3  = vec.Vec3[float32]
	Vec4  = vec.Vec4[float32]
	Mat2  = mat.Mat2[float32]
	Mat3  = mat.Mat3[float32]
	Mat4  = mat.Mat4[float32]
	Quat  = quat.Quat[float32]
	Euler = mat.Euler[float32]

	Transform = transform.Transform[float32]
)

// Double-precision aliases.
type (
	Vec2d  = vec.Vec2[float64]
	Vec3d  = vec.Vec3[float64]
	Vec4d  = vec.Vec4[float64]
	Mat2d  = mat.Mat2[float64]
	Mat3d  = mat.Mat3[float64]
	Mat4d  = mat.Mat4[float64]
	Quatd  = quat.Quat[float64]
	Eulerd = mat.Euler[float64]

	Transformd = transform.Transform[float64]
)
