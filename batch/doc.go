// Package batch applies one transform to many vectors.
//
// Work is split into fixed-size chunks that run concurrently on a bounded
// number of goroutines. Each chunk is handled by the compute kernel selected
// for the CPU at startup (see VECMATH_KERNEL), so results are identical to
// calling the per-vector methods in mat and quat in a loop.
//
//	err := batch.TransformPoints(ctx, model, vertices, vertices,
//	    batch.WithWorkers(4),
//	    batch.WithLogger(logger),
//	)
//
// dst may alias src. Cancelling ctx stops chunks that have not started and
// returns the context error; chunks already written are left in place.
package batch
