// Package scalar defines the floating-point types supported by vecmath and the
// approximate-equality rule used by every other package.
//
// All value types (vectors, matrices, quaternions) are generic over Float and are
// instantiated for float32 (render-side data) and float64 (simulation-side data).
// Transcendental functions are evaluated in float64 and converted back, so both
// widths share one implementation.
//
// # Epsilon Policy
//
// Two scalars compare equal when
//
//	|a-b| <= eps * max(1, |a|, |b|)
//
// which is an absolute test near zero and a relative test for large magnitudes.
// eps is 1e-5 for float32 and 1e-9 for float64 (see Epsilon).
package scalar
