// Package testutil provides testing utilities for vecmath.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG with helpers for the geometric
// inputs the library works on.
//
// # Random Inputs
//
//	rng := testutil.NewRNG(seed)
//	axis := rng.UnitVec3()           // uniform on the unit sphere
//	q := rng.UnitQuat()              // uniform over rotations
//	m := rng.InvertibleMat4()        // |det| bounded away from zero
//	pts := testutil.Points[float32](rng, 1024, 100)
package testutil
