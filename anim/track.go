package anim

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/hupe1980/vecmath/mat"
	"github.com/hupe1980/vecmath/quat"
	"github.com/hupe1980/vecmath/scalar"
	"github.com/hupe1980/vecmath/transform"
)

var (
	// ErrNoKeyframes is returned for a track without keys.
	ErrNoKeyframes = errors.New("track has no keyframes")

	// ErrUnordered is returned when key times are not strictly increasing.
	ErrUnordered = errors.New("keyframe times not strictly increasing")

	// ErrInvalidMode is returned for an unknown interpolation mode.
	ErrInvalidMode = errors.New("invalid interpolation mode")
)

// Mode selects how rotations are blended between keys. Translation and
// scale always blend linearly.
type Mode uint8

const (
	// Slerp rotates at constant angular speed.
	Slerp Mode = iota
	// Nlerp blends linearly and renormalizes. Cheaper than Slerp; the
	// angular speed varies slightly across the interval.
	Nlerp
	// Lerp blends linearly without renormalizing. Sampled rotations are
	// only unit at the keys.
	Lerp
)

func (m Mode) String() string {
	switch m {
	case Slerp:
		return "slerp"
	case Nlerp:
		return "nlerp"
	case Lerp:
		return "lerp"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m <= Lerp
}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(s) {
	case "slerp":
		return Slerp, true
	case "nlerp":
		return Nlerp, true
	case "lerp":
		return Lerp, true
	default:
		return 0, false
	}
}

// Keyframe pins a transform to a point in time.
type Keyframe[T scalar.Float] struct {
	Time      T
	Transform transform.Transform[T]
}

// Track is an immutable sequence of keyframes. It is safe for concurrent use.
type Track[T scalar.Float] struct {
	mode Mode
	keys []Keyframe[T]
}

// NewTrack validates keys and builds a track. Times must be finite and
// strictly increasing, and every transform must pass Transform.Validate.
// keys is copied.
func NewTrack[T scalar.Float](mode Mode, keys ...Keyframe[T]) (*Track[T], error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMode, mode)
	}
	if len(keys) == 0 {
		return nil, ErrNoKeyframes
	}

	for i, k := range keys {
		if !scalar.IsFinite(k.Time) {
			return nil, fmt.Errorf("keyframe %d time: %w", i, transform.ErrNonFinite)
		}
		if err := k.Transform.Validate(); err != nil {
			return nil, fmt.Errorf("keyframe %d: %w", i, err)
		}
		if i > 0 && k.Time <= keys[i-1].Time {
			return nil, fmt.Errorf("%w: key %d at %v follows %v", ErrUnordered, i, k.Time, keys[i-1].Time)
		}
	}

	return &Track[T]{
		mode: mode,
		keys: append([]Keyframe[T](nil), keys...),
	}, nil
}

// Mode returns the rotation interpolation mode.
func (t *Track[T]) Mode() Mode { return t.mode }

// Len returns the number of keyframes.
func (t *Track[T]) Len() int { return len(t.keys) }

// Keyframes returns a copy of the keys.
func (t *Track[T]) Keyframes() []Keyframe[T] {
	return append([]Keyframe[T](nil), t.keys...)
}

// Start returns the time of the first key.
func (t *Track[T]) Start() T { return t.keys[0].Time }

// End returns the time of the last key.
func (t *Track[T]) End() T { return t.keys[len(t.keys)-1].Time }

// Duration returns End − Start.
func (t *Track[T]) Duration() T { return t.End() - t.Start() }

// Sample returns the transform at time at.
func (t *Track[T]) Sample(at T) transform.Transform[T] {
	last := len(t.keys) - 1
	if at <= t.keys[0].Time {
		return t.keys[0].Transform
	}
	if at >= t.keys[last].Time {
		return t.keys[last].Transform
	}

	// First key strictly after at; 1 <= i <= last.
	i := sort.Search(len(t.keys), func(i int) bool { return t.keys[i].Time > at })
	a, b := t.keys[i-1], t.keys[i]
	if at == a.Time {
		return a.Transform
	}
	u := (at - a.Time) / (b.Time - a.Time)

	return t.blend(a.Transform, b.Transform, u)
}

// SampleMatrix returns Sample(at).Matrix().
func (t *Track[T]) SampleMatrix(at T) mat.Mat4[T] {
	return t.Sample(at).Matrix()
}

func (t *Track[T]) blend(a, b transform.Transform[T], u T) transform.Transform[T] {
	if t.mode == Slerp {
		return transform.Interpolate(a, b, u)
	}

	out := transform.Transform[T]{
		Translation: a.Translation.Lerp(b.Translation, u),
		Scale:       a.Scale.Lerp(b.Scale, u),
	}
	if t.mode == Nlerp {
		out.Rotation = quat.Nlerp(a.Rotation, b.Rotation, u)
	} else {
		out.Rotation = quat.Lerp(a.Rotation, b.Rotation, u)
	}
	return out
}
