package anim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecmath/quat"
	"github.com/hupe1980/vecmath/transform"
	"github.com/hupe1980/vecmath/vec"
)

func yaw(deg float64) quat.Quat[float64] {
	q, err := quat.FromAngleAxisDeg(vec.Up[float64](), deg)
	if err != nil {
		panic(err)
	}
	return q
}

func testKeys() []Keyframe[float64] {
	return []Keyframe[float64]{
		{Time: 0, Transform: transform.New(vec.Zero3[float64](), yaw(0), vec.Splat3(1.0))},
		{Time: 2, Transform: transform.New(vec.New3(10.0, 0, 0), yaw(90), vec.Splat3(2.0))},
		{Time: 3, Transform: transform.New(vec.New3(10.0, 5, 0), yaw(180), vec.Splat3(2.0))},
	}
}

func TestNewTrackValidation(t *testing.T) {
	good := testKeys()

	swapped := testKeys()
	swapped[1].Time = 3

	nonUnit := testKeys()
	nonUnit[2].Transform.Rotation = quat.New(1.0, 1, 0, 0)

	nan := testKeys()
	nan[1].Time = math.NaN()

	infScale := testKeys()
	infScale[0].Transform.Scale.Y = math.Inf(1)

	tests := []struct {
		name string
		mode Mode
		keys []Keyframe[float64]
		err  error
	}{
		{"Valid", Slerp, good, nil},
		{"Single key", Nlerp, good[:1], nil},
		{"Empty", Slerp, nil, ErrNoKeyframes},
		{"Equal times", Slerp, swapped, ErrUnordered},
		{"Non-unit rotation", Lerp, nonUnit, vec.ErrNotUnit},
		{"NaN time", Slerp, nan, transform.ErrNonFinite},
		{"Infinite scale", Slerp, infScale, transform.ErrNonFinite},
		{"Invalid mode", Mode(9), good, ErrInvalidMode},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			track, err := NewTrack(tc.mode, tc.keys...)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				assert.Nil(t, track)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tc.keys), track.Len())
		})
	}
}

func TestTrackCopiesKeys(t *testing.T) {
	keys := testKeys()
	track, err := NewTrack(Slerp, keys...)
	require.NoError(t, err)

	keys[0].Time = -100
	assert.Equal(t, 0.0, track.Start())

	out := track.Keyframes()
	out[1].Time = 99
	assert.Equal(t, 2.0, track.Keyframes()[1].Time)

	assert.Equal(t, 3.0, track.End())
	assert.Equal(t, 3.0, track.Duration())
	assert.Equal(t, Slerp, track.Mode())
}

func TestSampleClamps(t *testing.T) {
	keys := testKeys()
	track, err := NewTrack(Slerp, keys...)
	require.NoError(t, err)

	assert.Equal(t, keys[0].Transform, track.Sample(-5))
	assert.Equal(t, keys[0].Transform, track.Sample(0))
	assert.Equal(t, keys[2].Transform, track.Sample(3))
	assert.Equal(t, keys[2].Transform, track.Sample(1e9))
	assert.Equal(t, keys[1].Transform, track.Sample(2))
}

func TestSampleModes(t *testing.T) {
	tests := []struct {
		mode     Mode
		unit     bool
		midAngle float64
	}{
		{Slerp, true, 45},
		{Nlerp, true, 45},
		{Lerp, false, 45},
	}

	for _, tc := range tests {
		t.Run(tc.mode.String(), func(t *testing.T) {
			track, err := NewTrack(tc.mode, testKeys()...)
			require.NoError(t, err)

			got := track.Sample(1)
			assert.True(t, got.Translation.ApproxEqual(vec.New3(5.0, 0, 0)))
			assert.True(t, got.Scale.ApproxEqual(vec.Splat3(1.5)))
			assert.Equal(t, tc.unit, got.Rotation.IsUnit())

			// Symmetric midpoint: every mode lands on the half-angle axis.
			n, ok := got.Rotation.Normalized()
			require.True(t, ok)
			axis, angle := n.ToAngleAxis()
			assert.True(t, axis.ApproxEqual(vec.Up[float64]()))
			assert.InDelta(t, tc.midAngle*math.Pi/180, angle, 1e-9)
		})
	}
}

func TestSampleSlerpConstantSpeed(t *testing.T) {
	track, err := NewTrack(Slerp, testKeys()...)
	require.NoError(t, err)

	_, angle := track.Sample(0.5).Rotation.ToAngleAxis()
	assert.InDelta(t, math.Pi/8, angle, 1e-9)

	_, angle = track.Sample(2.5).Rotation.ToAngleAxis()
	assert.InDelta(t, 3*math.Pi/4, angle, 1e-9)
}

func TestSampleMatrix(t *testing.T) {
	track, err := NewTrack(Nlerp, testKeys()...)
	require.NoError(t, err)

	assert.True(t, track.SampleMatrix(2.5).ApproxEqual(track.Sample(2.5).Matrix()))
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{Slerp, Nlerp, Lerp} {
		got, ok := ParseMode(m.String())
		require.True(t, ok)
		assert.Equal(t, m, got)
	}
	_, ok := ParseMode("cubic")
	assert.False(t, ok)
	assert.Equal(t, "Mode(7)", Mode(7).String())
}

func BenchmarkSample(b *testing.B) {
	keys := make([]Keyframe[float32], 256)
	for i := range keys {
		q, _ := quat.FromAngleAxis(vec.Up[float32](), float32(i)*0.1)
		keys[i] = Keyframe[float32]{
			Time:      float32(i),
			Transform: transform.New(vec.New3(float32(i), 0, 0), q, vec.Splat3[float32](1)),
		}
	}
	track, _ := NewTrack(Slerp, keys...)

	var at float32
	for b.Loop() {
		_ = track.Sample(at)
		at += 0.37
		if at > 255 {
			at = 0
		}
	}
}
