// Package anim samples keyframed transforms and persists them.
//
// A Track is an immutable, time-ordered list of keyframes. Sample returns
// the interpolated transform at any time; times before the first key or
// after the last clamp to that key.
//
//	track, err := anim.NewTrack(anim.Slerp,
//	    anim.Keyframe[float32]{Time: 0, Transform: rest},
//	    anim.Keyframe[float32]{Time: 1.5, Transform: raised},
//	)
//	pose := track.Sample(0.75)
//
// # Encoding
//
// Encode writes a small binary header followed by the codec payload
// compressed with internal/compress:
//
//	[magic "VMTK"][version uint16][compression uint8][codec name len uint8]
//	[codec name][frame len uint32][frame]
//
// Decode selects the codec named in the header, so tracks written with any
// built-in codec can be read back without configuration.
package anim
