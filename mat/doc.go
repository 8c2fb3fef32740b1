// Package mat provides 2×2, 3×3 and 4×4 matrices generic over scalar.Float.
//
// Matrices are row-major arrays (m[row][col]) that act on column vectors, so
// a.Mul(b).MulVec(v) applies b first. Rotation builders use pitch about X,
// heading about Y and bank about Z.
//
// # Inversion
//
// Inverse is adjugate / determinant for every size. The 4×4 path computes six
// 2×2 sub-determinants of rows 0–1 and six of rows 2–3 once and derives every
// cofactor and the determinant from them. A matrix whose determinant is zero
// within epsilon is reported as a *SingularMatrixError (errors.Is
// ErrSingularMatrix) for all sizes.
//
// # Euler Angles
//
// Two kinds of entry points exist:
//
//	mat.FromEuler(e, mat.HPB)                      // explicit elemental product
//	mat.FromEulerConvention(e, mat.ObjectToUpright) // fused closed form
//
// FromEulerConvention(e, ObjectToUpright) equals FromEuler(e, HPB); the
// UprightToObject convention is its transpose. ToEuler recovers the angles and
// fixes bank to zero at gimbal lock.
package mat
