package uniform

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/vecmath/internal/half"
)

// Layout selects the padding rules.
type Layout uint8

const (
	// Packed writes components back to back.
	Packed Layout = iota
	// Std140 follows the GLSL std140 uniform block rules.
	Std140
)

func (l Layout) String() string {
	switch l {
	case Packed:
		return "packed"
	case Std140:
		return "std140"
	default:
		return fmt.Sprintf("layout(%d)", uint8(l))
	}
}

// Precision selects the component encoding.
type Precision uint8

const (
	Float32 Precision = iota
	Float64
	Float16
)

func (p Precision) String() string {
	switch p {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Float16:
		return "float16"
	default:
		return fmt.Sprintf("precision(%d)", uint8(p))
	}
}

// Bytes returns the size of one component.
func (p Precision) Bytes() int {
	switch p {
	case Float64:
		return 8
	case Float16:
		return 2
	default:
		return 4
	}
}

var (
	// ErrUnsupported is returned for layout/precision pairs std140 does not
	// define (binary16) and for unknown enum values.
	ErrUnsupported = errors.New("unsupported uniform encoding")

	// ErrEmptyValue is returned when encoding the zero Value.
	ErrEmptyValue = errors.New("uniform value has no kind")
)

func checkEncoding(l Layout, p Precision) error {
	if l > Std140 || p > Float16 {
		return fmt.Errorf("%w: %s/%s", ErrUnsupported, l, p)
	}
	if l == Std140 && p == Float16 {
		return fmt.Errorf("%w: std140 has no half-precision types", ErrUnsupported)
	}
	return nil
}

// columnStride returns the number of components reserved per column.
// std140 pads every matrix column to a vec4.
func columnStride(k Kind, l Layout) int {
	cols, rows := k.shape()
	if l == Std140 && cols > 1 {
		return 4
	}
	return rows
}

// Size returns the encoded size in bytes. In std140 a matrix reserves a vec4
// per column; a vector's size is its components.
func (v Value) Size(l Layout, p Precision) int {
	cols, _ := v.kind.shape()
	return cols * columnStride(v.kind, l) * p.Bytes()
}

// Align returns the required byte alignment of the value's offset.
func (v Value) Align(l Layout, p Precision) int {
	if l == Packed {
		return p.Bytes()
	}
	cols, rows := v.kind.shape()
	if cols > 1 || rows >= 3 {
		return 4 * p.Bytes()
	}
	return rows * p.Bytes()
}

// AppendBytes appends the little-endian encoding of v to dst.
func (v Value) AppendBytes(dst []byte, l Layout, p Precision) ([]byte, error) {
	if v.kind == 0 {
		return dst, ErrEmptyValue
	}
	if err := checkEncoding(l, p); err != nil {
		return dst, err
	}

	cols, rows := v.kind.shape()
	stride := columnStride(v.kind, l)

	for c := range cols {
		for r := range stride {
			var x float64
			if r < rows {
				x = v.data[c*rows+r]
			}
			dst = appendComponent(dst, x, p)
		}
	}
	return dst, nil
}

func appendComponent(dst []byte, x float64, p Precision) []byte {
	switch p {
	case Float64:
		return binary.LittleEndian.AppendUint64(dst, math.Float64bits(x))
	case Float16:
		return binary.LittleEndian.AppendUint16(dst, uint16(half.FromFloat64(x)))
	default:
		return binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(x)))
	}
}
