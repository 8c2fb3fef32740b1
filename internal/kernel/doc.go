// Package kernel holds the loops behind package batch.
//
// Two kernels exist for every operation: Scalar transforms one element per
// iteration and Blocked transforms four, keeping the matrix in locals so wide
// out-of-order cores can overlap the independent products. The active kernel
// is chosen once at init from CPU features (AVX2+FMA on x86-64, ASIMD on
// ARM64) and can be forced with the VECMATH_KERNEL environment variable
// ("scalar" or "blocked").
package kernel
