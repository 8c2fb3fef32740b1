// Package conv provides bounds-checked integer conversions.
//
// They guard values that cross a format boundary: uniform block offsets and
// sizes, and lengths read back from encoded animation tracks. Loop indices and
// other values bounded by construction use plain casts.
package conv
