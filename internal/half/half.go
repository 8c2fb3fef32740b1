// Package half converts between float32 and IEEE-754 binary16.
//
// binary16 is a storage format only: GPU uniform buffers declared as half
// precision receive these bit patterns, all arithmetic stays in float32.
package half

import "math"

// Float16 is a raw binary16 bit pattern: 1 sign bit, 5 exponent bits
// (bias 15) and 10 fraction bits.
type Float16 uint16

const (
	sign16 = 0x8000
	exp16  = 0x7C00
	frac16 = 0x03FF

	// Largest finite value, 65504.
	MaxValue = 65504
)

// PositiveInfinity and NegativeInfinity are the binary16 infinities.
const (
	PositiveInfinity Float16 = exp16
	NegativeInfinity Float16 = sign16 | exp16
)

// IsNaN reports whether h is a NaN.
func (h Float16) IsNaN() bool {
	return h&exp16 == exp16 && h&frac16 != 0
}

// IsInf reports whether h is an infinity.
func (h Float16) IsInf() bool {
	return h&^sign16 == exp16
}

// Float32 widens h exactly.
func (h Float16) Float32() float32 {
	s := uint32(h&sign16) << 16
	e := uint32(h&exp16) >> 10
	f := uint32(h & frac16)

	if e == 0x1F {
		return math.Float32frombits(s | 0x7F800000 | f<<13)
	}
	if e != 0 {
		return math.Float32frombits(s | (e+112)<<23 | f<<13)
	}
	if f == 0 {
		return math.Float32frombits(s)
	}

	// Subnormal: value is f·2⁻²⁴, exactly representable in float32.
	v := float32(f) * (1.0 / (1 << 24))
	if s != 0 {
		return -v
	}
	return v
}

// FromFloat32 narrows f with round-to-nearest-even. Values beyond MaxValue
// become infinities and NaN payloads collapse to a quiet NaN.
func FromFloat32(f float32) Float16 {
	b := math.Float32bits(f)
	s := Float16(b>>16) & sign16
	e := int32(b>>23) & 0xFF
	m := b & 0x007FFFFF

	switch {
	case e == 0xFF:
		if m != 0 {
			return s | exp16 | 0x0200
		}
		return s | exp16
	case e > 142:
		// Unbiased exponent above 15.
		return s | exp16
	case e >= 113:
		// Normal binary16: rebias and round off 13 fraction bits.
		h := uint32(e-112)<<10 | m>>13
		return s | Float16(roundShifted(h, m, 13))
	case e >= 102:
		// Subnormal binary16: shift the explicit leading 1 into place.
		shift := uint32(126 - e)
		return s | Float16(roundShifted((m|0x00800000)>>shift, m|0x00800000, shift))
	default:
		return s
	}
}

// roundShifted rounds truncated, the result of dropping the low shift bits of
// full, to nearest even. A carry out of the fraction correctly bumps the
// exponent, up to infinity.
func roundShifted(truncated, full, shift uint32) uint32 {
	rem := full & (1<<shift - 1)
	halfway := uint32(1) << (shift - 1)
	if rem > halfway || (rem == halfway && truncated&1 == 1) {
		truncated++
	}
	return truncated
}

// FromFloat64 narrows through float32.
func FromFloat64(f float64) Float16 {
	return FromFloat32(float32(f))
}

// Encode narrows src into dst, which must be at least len(src) long.
func Encode(dst []Float16, src []float32) {
	for i, v := range src {
		dst[i] = FromFloat32(v)
	}
}

// Decode widens src into dst, which must be at least len(src) long.
func Decode(dst []float32, src []Float16) {
	for i, h := range src {
		dst[i] = h.Float32()
	}
}
