// Package vec provides 2, 3 and 4 component vectors generic over scalar.Float.
//
// Vectors are plain values with a fixed component order (x, y[, z][, w]) so a
// slice of vectors can be reinterpreted as a flat scalar array by the uniform
// adapter. Every operation returns a new vector; Normalize is the only method
// that mutates its receiver.
//
// # Usage
//
//	a := vec.New3(1.0, 0, 0)
//	b := vec.New3(0.0, 1, 0)
//	n := a.Cross(b)             // (0 0 1)
//	if err := vec.RequireUnit(n); err != nil {
//	    // n is not a valid rotation axis
//	}
package vec
