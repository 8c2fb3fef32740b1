package batch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/vecmath/internal/kernel"
	"github.com/hupe1980/vecmath/mat"
	"github.com/hupe1980/vecmath/quat"
	"github.com/hupe1980/vecmath/scalar"
	"github.com/hupe1980/vecmath/vec"
)

// ErrLengthMismatch is returned when dst and src differ in length.
var ErrLengthMismatch = errors.New("batch: dst and src lengths differ")

// Operation names reported to loggers and metrics collectors.
const (
	OpTransformPoints     = "transform_points"
	OpTransformDirections = "transform_directions"
	OpRotateVectors       = "rotate_vectors"
)

// TransformPoints writes m·(p, 1) for every p in src to dst, dividing by w
// when m is projective.
func TransformPoints[T scalar.Float](ctx context.Context, m mat.Mat4[T], src, dst []vec.Vec3[T], opts ...Option) error {
	o := applyOptions(opts)
	return run(ctx, OpTransformPoints, len(src), len(dst), o, func(lo, hi int) {
		kernel.Affine(o.kernel, &m, src[lo:hi], dst[lo:hi])
	})
}

// TransformDirections writes the upper 3×3 block of m applied to every d in
// src to dst. Translation does not affect directions.
func TransformDirections[T scalar.Float](ctx context.Context, m mat.Mat4[T], src, dst []vec.Vec3[T], opts ...Option) error {
	o := applyOptions(opts)
	linear := m.Mat3()
	return run(ctx, OpTransformDirections, len(src), len(dst), o, func(lo, hi int) {
		kernel.Linear(o.kernel, &linear, src[lo:hi], dst[lo:hi])
	})
}

// RotateVectors writes q·v·q* for every v in src to dst. q must be a unit
// quaternion; otherwise an error wrapping vec.ErrNotUnit is returned and dst
// is untouched.
func RotateVectors[T scalar.Float](ctx context.Context, q quat.Quat[T], src, dst []vec.Vec3[T], opts ...Option) error {
	o := applyOptions(opts)
	if !q.IsUnit() {
		err := fmt.Errorf("rotation: %w", &vec.NotUnitError{LengthSquared: float64(q.LengthSquared())})
		o.metrics.RecordBatch(OpRotateVectors, len(src), 0, err)
		o.logger.LogBatch(ctx, OpRotateVectors, len(src), 0, 0, err)
		return err
	}
	r := q.Mat3()
	return run(ctx, OpRotateVectors, len(src), len(dst), o, func(lo, hi int) {
		kernel.Linear(o.kernel, &r, src[lo:hi], dst[lo:hi])
	})
}

func run(ctx context.Context, op string, n, dstLen int, o options, fn func(lo, hi int)) error {
	start := time.Now()
	chunks := (n + o.chunkSize - 1) / o.chunkSize

	var err error
	if dstLen != n {
		err = fmt.Errorf("%w: src %d, dst %d", ErrLengthMismatch, n, dstLen)
	} else {
		err = fanOut(ctx, n, o, fn)
	}

	elapsed := time.Since(start)
	o.metrics.RecordBatch(op, n, elapsed, err)
	o.logger.WithKernel(o.kernel.String()).LogBatch(ctx, op, n, chunks, elapsed, err)
	return err
}

func fanOut(ctx context.Context, n int, o options, fn func(lo, hi int)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if n <= o.chunkSize || o.workers == 1 {
		for lo := 0; lo < n; lo += o.chunkSize {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(lo, min(lo+o.chunkSize, n))
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for lo := 0; lo < n; lo += o.chunkSize {
		hi := min(lo+o.chunkSize, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(lo, hi)
			return nil
		})
	}
	return g.Wait()
}
