package vecmath

import (
	"github.com/hupe1980/vecmath/mat"
	"github.com/hupe1980/vecmath/quat"
	"github.com/hupe1980/vecmath/transform"
	"github.com/hupe1980/vecmath/vec"
)

// Sentinel errors shared by every sub-package. Match them with errors.Is;
// the typed errors (*mat.SingularMatrixError, *vec.NotUnitError) carry the
// offending values and are reachable with errors.As.
var (
	// ErrSingularMatrix is returned when inverting a matrix with a zero
	// determinant.
	ErrSingularMatrix = mat.ErrSingularMatrix

	// ErrNotUnit is returned when an axis or quaternion must have unit length.
	ErrNotUnit = vec.ErrNotUnit

	// ErrNotRotation is returned when Euler extraction receives a matrix that
	// is not orthonormal with determinant +1.
	ErrNotRotation = mat.ErrNotRotation

	// ErrZeroQuaternion is returned when inverting or dividing by zero.
	ErrZeroQuaternion = quat.ErrZeroQuaternion

	ErrInvalidProjection = mat.ErrInvalidProjection
	ErrDegenerateBasis   = mat.ErrDegenerateBasis

	// ErrNonUniformScale is returned when inverting a transform whose scale
	// differs per axis.
	ErrNonUniformScale = transform.ErrNonUniformScale
	ErrNotDecomposable = transform.ErrNotDecomposable
	ErrNonFinite       = transform.ErrNonFinite
)

type (
	// SingularMatrixError reports the size and determinant of a failed inversion.
	SingularMatrixError = mat.SingularMatrixError
	// NotUnitError reports the squared length that failed a unit check.
	NotUnitError = vec.NotUnitError
)
