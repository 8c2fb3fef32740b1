package scalar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEpsilon(t *testing.T) {
	assert.Equal(t, float32(1e-5), Epsilon[float32]())
	assert.Equal(t, 1e-9, Epsilon[float64]())

	type meters float32
	assert.Equal(t, meters(1e-5), Epsilon[meters]())
}

func TestApproxEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want bool
	}{
		{"Identical", 1.5, 1.5, true},
		{"Absolute near zero", 0, 1e-10, true},
		{"Absolute near zero fails", 0, 1e-6, false},
		{"Relative large magnitude", 1e6, 1e6 + 1e-4, true},
		{"Relative large magnitude fails", 1e6, 1e6 + 1e-2, false},
		{"Sign", -1, 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ApproxEqual(tc.a, tc.b))
		})
	}

	assert.True(t, ApproxEqual(float32(0.1)+float32(0.2), float32(0.3)))
}

func TestAsinAcosClamp(t *testing.T) {
	// Overshoot produced by rounding must not turn into NaN.
	assert.InDelta(t, math.Pi/2, Asin(1.0000001), 1e-15)
	assert.InDelta(t, -math.Pi/2, Asin(-1.0000001), 1e-15)
	assert.InDelta(t, 0.0, Acos(1.0000001), 1e-15)
	assert.InDelta(t, math.Pi, Acos(-1.0000001), 1e-15)
	assert.False(t, math.IsNaN(float64(Asin(float32(1.00001)))))
}

func TestAngleConversion(t *testing.T) {
	assert.InDelta(t, math.Pi, ToRadians(180.0), 1e-12)
	assert.InDelta(t, 90.0, ToDegrees(math.Pi/2), 1e-12)
	assert.InDelta(t, 75.2, ToDegrees(ToRadians(75.2)), 1e-12)
	assert.InDelta(t, float32(math.Pi/4), ToRadians(float32(45)), 1e-7)
}

func TestClampLerp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(3.0, -1, 1))
	assert.Equal(t, -1.0, Clamp(-3.0, -1, 1))
	assert.Equal(t, 0.25, Clamp(0.25, -1, 1))
	assert.Equal(t, 5.0, Lerp(0.0, 10, 0.5))
}

func TestTrig(t *testing.T) {
	s, c := SinCos(float32(math.Pi / 6))
	assert.InDelta(t, 0.5, s, 1e-6)
	assert.InDelta(t, math.Sqrt(3)/2, c, 1e-6)
	assert.InDelta(t, math.Pi*0.75, Atan2(1.0, -1), 1e-12)
	assert.Equal(t, 3.0, Sqrt(9.0))
	assert.True(t, IsZero(1e-12))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(1.5))
	assert.True(t, IsFinite(float32(-3e38)))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(-1)))
	assert.False(t, IsFinite(float32(math.Inf(1))))
}

func TestBits(t *testing.T) {
	assert.Equal(t, 32, Bits[float32]())
	assert.Equal(t, 64, Bits[float64]())
}

func TestRelativeEqual(t *testing.T) {
	assert.True(t, RelativeEqual(1e-6, 1e-6*(1+1e-12)))
	assert.False(t, RelativeEqual(1e-6, 2e-6))
	assert.True(t, ApproxEqual(1e-6, 2e-6))
	assert.True(t, RelativeEqual(float32(0.02), float32(0.02)))
	assert.True(t, RelativeEqual(0.0, 0.0))
	assert.False(t, RelativeEqual(0.0, 1e-300))
}
