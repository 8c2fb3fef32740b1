package mat

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vecmath/scalar"
)

var (
	// ErrSingularMatrix is returned when inverting a matrix whose determinant is
	// negligible against the product of its row lengths.
	ErrSingularMatrix = errors.New("matrix is singular")

	// ErrNotRotation is returned when an operation requires an orthonormal
	// matrix with determinant +1.
	ErrNotRotation = errors.New("matrix is not a rotation")

	// ErrInvalidProjection is returned for out-of-range projection parameters.
	ErrInvalidProjection = errors.New("invalid projection parameters")

	// ErrDegenerateBasis is returned when a view basis cannot be built
	// (zero direction or up parallel to direction).
	ErrDegenerateBasis = errors.New("degenerate basis")
)

// SingularMatrixError reports a failed inversion.
//
// It matches ErrSingularMatrix via errors.Is.
type SingularMatrixError struct {
	Size        int
	Determinant float64
}

func (e *SingularMatrixError) Error() string {
	return fmt.Sprintf("%dx%d matrix is singular: determinant %g", e.Size, e.Size, e.Determinant)
}

func (e *SingularMatrixError) Unwrap() error { return ErrSingularMatrix }

// singular reports whether det vanishes relative to bound, the product of the
// row lengths. By Hadamard's inequality |det| <= bound, so the ratio is
// independent of the overall scale of the matrix. A zero row gives bound 0.
func singular[T scalar.Float](det, bound T) bool {
	return scalar.Abs(det) <= scalar.Epsilon[T]()*bound
}
