package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is matched by every conversion failure.
var ErrOverflow = errors.New("integer overflow")

// OverflowError reports the value that did not fit the target type.
type OverflowError struct {
	Value  int64
	Target string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("integer overflow: %d does not fit %s", e.Value, e.Target)
}

func (e *OverflowError) Unwrap() error { return ErrOverflow }

// IntToUint32 converts v, rejecting negatives and values above MaxUint32.
func IntToUint32(v int) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, &OverflowError{Value: int64(v), Target: "uint32"}
	}
	return uint32(v), nil
}

// IntToUint8 converts v, rejecting values outside [0, 255].
func IntToUint8(v int) (uint8, error) {
	if v < 0 || v > math.MaxUint8 {
		return 0, &OverflowError{Value: int64(v), Target: "uint8"}
	}
	return uint8(v), nil
}

// Uint32ToInt converts v; it only fails where int is 32 bits wide.
func Uint32ToInt(v uint32) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, &OverflowError{Value: int64(v), Target: "int"}
	}
	return int(v), nil
}

// AlignUp rounds offset up to a multiple of align, which must be a power of
// two. The result is checked against uint32.
func AlignUp(offset, align int) (uint32, error) {
	if align <= 0 || align&(align-1) != 0 {
		return 0, fmt.Errorf("alignment %d is not a power of two", align)
	}
	return IntToUint32((offset + align - 1) &^ (align - 1))
}
