package quat

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vecmath/scalar"
	"github.com/hupe1980/vecmath/vec"
)

// ErrZeroQuaternion is returned when an operation needs a non-zero quaternion.
var ErrZeroQuaternion = errors.New("quaternion is zero")

// requireUnit returns an error matching vec.ErrNotUnit unless q has unit length.
func requireUnit[T scalar.Float](q Quat[T]) error {
	if !q.IsUnit() {
		return fmt.Errorf("quaternion: %w", &vec.NotUnitError{LengthSquared: float64(q.LengthSquared())})
	}
	return nil
}
