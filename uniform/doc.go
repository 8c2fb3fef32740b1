// Package uniform turns vectors, matrices and quaternions into the flat,
// column-major component arrays that shader uniforms expect.
//
// A Value snapshots one source value. It can be flattened to float32, float64
// or binary16 components, or appended as little-endian bytes in one of two
// layouts:
//
//   - Packed: components back to back, no padding.
//   - Std140: the GLSL std140 rules. vec3 and vec4 align to four components
//     and every matrix column is padded to a vec4.
//
// Block assembles several named values into one std140 or packed uniform
// buffer and reports each member's byte offset.
//
//	b, _ := uniform.NewBlock(uniform.Std140, uniform.Float32)
//	_ = b.Set("model", uniform.FromMat4(model))
//	_ = b.Set("tint", uniform.FromVec3(tint))
//	buf, _ := b.Bytes()
package uniform
