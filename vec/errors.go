package vec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vecmath/scalar"
)

// ErrNotUnit is returned when an operation requires a unit-length vector.
var ErrNotUnit = errors.New("vector is not unit length")

// NotUnitError reports a failed unit-length precondition.
//
// It matches ErrNotUnit via errors.Is.
type NotUnitError struct {
	LengthSquared float64
}

func (e *NotUnitError) Error() string {
	return fmt.Sprintf("vector is not unit length: |v|^2 = %g", e.LengthSquared)
}

func (e *NotUnitError) Unwrap() error { return ErrNotUnit }

// RequireUnit returns a *NotUnitError unless v has unit length within the
// default epsilon. It is always enforced, independent of build flags.
func RequireUnit[T scalar.Float](v Vec3[T]) error {
	if !v.IsUnit() {
		return &NotUnitError{LengthSquared: float64(v.LengthSquared())}
	}
	return nil
}
