// Package quat provides Hamilton quaternions generic over scalar.Float.
//
// A quaternion is stored as a scalar part W and a vector part V. Unit
// quaternions represent rotations; q and -q represent the same rotation, which
// SameRotation accounts for.
//
// Conversions follow the conventions of package mat: q.Mat3() is the
// column-vector rotation matrix, so q.Rotate(v) equals q.Mat3().MulVec(v) and
// FromMat3(a.Mul(b)) equals FromMat3(a).Mul(FromMat3(b)) up to sign.
//
// # Interpolation
//
//	q := quat.Slerp(a, b, 0.25) // constant angular speed, shorter arc
//	q = quat.Nlerp(a, b, 0.25)  // cheaper, renormalized linear blend
package quat
