// Package vecmath is a generic linear-algebra toolkit for composing 3-D rigid
// transforms in real-time rendering.
//
// The value types live in sub-packages and are generic over scalar.Float:
//
//   - vec: Vec2, Vec3, Vec4
//   - mat: Mat2, Mat3, Mat4, Euler angles, projections
//   - quat: Hamilton quaternions, Slerp/Nlerp
//   - transform: translation·rotation·scale transforms
//   - uniform: GPU-uniform encoding (packed and std140)
//   - batch: concurrent bulk transforms of point and direction slices
//   - anim: keyframe tracks with compressed persistence
//
// This package re-exports float32 and float64 aliases, the shared error
// sentinels, and the Logger and MetricsCollector used by batch and anim.
//
// # Quick Start
//
//	m := mat.FromEulerConventionDeg(mat.NewEuler[float32](10, 45, 0), mat.ObjectToUpright)
//	q := quat.FromMat3(m)
//	p, _ := q.Rotate(vec.New3[float32](1, 0, 0))
//
//	inv, err := m.Inverse()
//	if errors.Is(err, vecmath.ErrSingularMatrix) {
//	    // handle degenerate input
//	}
//
// # Conventions
//
// Matrices are row-major and act on column vectors; a.Mul(b) applies b first.
// Pitch rotates about X, heading about Y and bank about Z. Core operations
// are pure value computations: they never log, never allocate and report
// precondition failures as errors.
package vecmath
