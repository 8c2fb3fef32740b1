package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/vecmath/mat"
	"github.com/hupe1980/vecmath/quat"
	"github.com/hupe1980/vecmath/scalar"
	"github.com/hupe1980/vecmath/transform"
	"github.com/hupe1980/vecmath/vec"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Range returns a pseudo-random number in [minVal, maxVal).
func (r *RNG) Range(minVal, maxVal float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return minVal + r.rand.Float64()*(maxVal-minVal)
}

// Angle returns a radian angle in [-π, π).
func (r *RNG) Angle() float64 {
	return r.Range(-math.Pi, math.Pi)
}

// CanonicalEuler returns radian angles inside the canonical Euler range
// (heading and bank in [-π, π), pitch in (-π/2, π/2)) and away from gimbal
// lock, so a matrix round trip recovers them exactly.
func (r *RNG) CanonicalEuler() mat.Euler[float64] {
	r.mu.Lock()
	defer r.mu.Unlock()
	const pitchLimit = 1.5
	return mat.NewEuler(
		(r.rand.Float64()*2-1)*pitchLimit,
		(r.rand.Float64()*2-1)*math.Pi,
		(r.rand.Float64()*2-1)*math.Pi,
	)
}

// Vec3 returns a vector with components in [-extent, extent).
func (r *RNG) Vec3(extent float64) vec.Vec3[float64] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.vec3Locked(extent)
}

func (r *RNG) vec3Locked(extent float64) vec.Vec3[float64] {
	return vec.New3(
		(r.rand.Float64()*2-1)*extent,
		(r.rand.Float64()*2-1)*extent,
		(r.rand.Float64()*2-1)*extent,
	)
}

// UnitVec3 returns a direction uniformly distributed on the unit sphere.
func (r *RNG) UnitVec3() vec.Vec3[float64] {
	r.mu.Lock()
	defer r.mu.Unlock()
	for {
		v := vec.New3(r.rand.NormFloat64(), r.rand.NormFloat64(), r.rand.NormFloat64())
		if v.Normalize() {
			return v
		}
	}
}

// UnitQuat returns a rotation uniformly distributed over SO(3) with w >= 0.
func (r *RNG) UnitQuat() quat.Quat[float64] {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Shoemake's subgroup algorithm.
	u1, u2, u3 := r.rand.Float64(), r.rand.Float64()*2*math.Pi, r.rand.Float64()*2*math.Pi
	a, b := math.Sqrt(1-u1), math.Sqrt(u1)
	q := quat.New(b*math.Cos(u3), a*math.Sin(u2), a*math.Cos(u2), b*math.Sin(u3))
	if q.W < 0 {
		q = q.Neg()
	}
	return q
}

// InvertibleMat3 returns a matrix whose determinant magnitude is at least 0.1.
func (r *RNG) InvertibleMat3() mat.Mat3[float64] {
	r.mu.Lock()
	defer r.mu.Unlock()
	for {
		var m mat.Mat3[float64]
		for i := range m {
			for j := range m[i] {
				m[i][j] = r.rand.Float64()*2 - 1
			}
		}
		if math.Abs(m.Determinant()) >= 0.1 {
			return m
		}
	}
}

// InvertibleMat4 returns a matrix whose determinant magnitude is at least 0.1.
func (r *RNG) InvertibleMat4() mat.Mat4[float64] {
	r.mu.Lock()
	defer r.mu.Unlock()
	for {
		var m mat.Mat4[float64]
		for i := range m {
			for j := range m[i] {
				m[i][j] = r.rand.Float64()*2 - 1
			}
		}
		if math.Abs(m.Determinant()) >= 0.1 {
			return m
		}
	}
}

// Transform returns a transform with a random rotation, a translation in
// [-extent, extent) and a uniform scale in [0.5, 2).
func (r *RNG) Transform(extent float64) transform.Transform[float64] {
	q := r.UnitQuat()
	s := r.Range(0.5, 2)

	r.mu.Lock()
	t := r.vec3Locked(extent)
	r.mu.Unlock()

	return transform.New(t, q, vec.Splat3(s))
}

// Points returns n points with components in [-extent, extent).
// Uses a single lock for the whole slice.
func Points[T scalar.Float](r *RNG, n int, extent T) []vec.Vec3[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	pts := make([]vec.Vec3[T], n)
	for i := range pts {
		p := r.vec3Locked(float64(extent))
		pts[i] = vec.New3(T(p.X), T(p.Y), T(p.Z))
	}
	return pts
}

// Cast converts a float64 quaternion to another precision.
func Cast[T scalar.Float](q quat.Quat[float64]) quat.Quat[T] {
	return quat.New(T(q.W), T(q.V.X), T(q.V.Y), T(q.V.Z))
}

// CastMat4 converts a float64 matrix to another precision.
func CastMat4[T scalar.Float](m mat.Mat4[float64]) mat.Mat4[T] {
	var out mat.Mat4[T]
	for i := range m {
		for j := range m[i] {
			out[i][j] = T(m[i][j])
		}
	}
	return out
}
