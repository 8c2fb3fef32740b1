package batch

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/mat"
	"github.com/hupe1980/vecmath/quat"
	"github.com/hupe1980/vecmath/testutil"
	"github.com/hupe1980/vecmath/vec"
)

func testModel() mat.Mat4[float64] {
	m := mat.Translation(vec.New3(1.0, -2, 3))
	m.RotateConvention(mat.NewEuler(0.3, 1.1, -0.4), mat.ObjectToUpright)
	m.ScaleBy(vec.New3(2.0, 2, 2))
	return m
}

func TestTransformPoints(t *testing.T) {
	rng := testutil.NewRNG(4711)
	m := testModel()
	src := testutil.Points(rng, 1000, 50.0)

	tests := []struct {
		name string
		opts []Option
	}{
		{"Defaults", nil},
		{"Scalar single chunk", []Option{WithKernel("scalar")}},
		{"Blocked small chunks", []Option{WithKernel("blocked"), WithChunkSize(7), WithWorkers(3)}},
		{"Sequential", []Option{WithChunkSize(64), WithWorkers(1)}},
		{"Unknown kernel", []Option{WithKernel("avx512"), WithChunkSize(100)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dst := make([]vec.Vec3[float64], len(src))
			require.NoError(t, TransformPoints(context.Background(), m, src, dst, tc.opts...))

			for i, p := range src {
				assert.True(t, m.MulPoint(p).ApproxEqual(dst[i]), "index %d", i)
			}
		})
	}
}

func TestTransformPointsProjective(t *testing.T) {
	p, err := mat.Perspective(1.2, 1.5, 0.1, 100.0)
	require.NoError(t, err)

	src := []vec.Vec3[float64]{{X: 1, Y: 2, Z: -5}, {X: -3, Y: 0.5, Z: -40}, {X: 0, Y: 0, Z: -0.1}}
	dst := make([]vec.Vec3[float64], len(src))
	require.NoError(t, TransformPoints(context.Background(), p, src, dst, WithKernel("blocked")))

	for i, v := range src {
		assert.True(t, p.MulPoint(v).ApproxEqual(dst[i]))
	}
	assert.InDelta(t, -1.0, dst[2].Z, 1e-9)
}

func TestTransformDirections(t *testing.T) {
	rng := testutil.NewRNG(4711)
	m := testModel()
	src := testutil.Points(rng, 333, float32(1))
	m32 := testutil.CastMat4[float32](m)

	dst := make([]vec.Vec3[float32], len(src))
	require.NoError(t, TransformDirections(context.Background(), m32, src, dst, WithChunkSize(50)))

	for i, d := range src {
		assert.True(t, m32.MulDir(d).ApproxEqual(dst[i]), "index %d", i)
	}
}

func TestRotateVectorsInPlace(t *testing.T) {
	rng := testutil.NewRNG(4711)
	q := rng.UnitQuat()
	src := testutil.Points(rng, 513, 10.0)
	want := make([]vec.Vec3[float64], len(src))
	for i, v := range src {
		var err error
		want[i], err = q.Rotate(v)
		require.NoError(t, err)
	}

	require.NoError(t, RotateVectors(context.Background(), q, src, src, WithChunkSize(16)))
	for i := range src {
		assert.True(t, want[i].ApproxEqual(src[i]), "index %d", i)
	}
}

func TestRotateVectorsNotUnit(t *testing.T) {
	src := []vec.Vec3[float64]{{X: 1}}
	dst := []vec.Vec3[float64]{{X: 42}}
	metrics := &vecmath.BasicMetricsCollector{}

	err := RotateVectors(context.Background(), quat.New(2.0, 0, 0, 0), src, dst, WithMetricsCollector(metrics))
	require.Error(t, err)
	assert.ErrorIs(t, err, vec.ErrNotUnit)
	assert.Equal(t, vec.New3(42.0, 0, 0), dst[0])
	assert.Equal(t, int64(1), metrics.GetStats().BatchErrors)
}

func TestLengthMismatch(t *testing.T) {
	src := make([]vec.Vec3[float64], 3)
	dst := make([]vec.Vec3[float64], 2)

	err := TransformPoints(context.Background(), mat.Identity4[float64](), src, dst)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestEmpty(t *testing.T) {
	require.NoError(t, TransformPoints[float32](context.Background(), mat.Identity4[float32](), nil, nil))
}

func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := make([]vec.Vec3[float64], 100)
	dst := make([]vec.Vec3[float64], 100)

	for _, workers := range []int{1, 4} {
		err := TransformPoints(ctx, testModel(), src, dst, WithWorkers(workers), WithChunkSize(10))
		assert.True(t, errors.Is(err, context.Canceled), "workers %d", workers)
	}
	assert.Equal(t, vec.Zero3[float64](), dst[0])
}

func TestObservability(t *testing.T) {
	var buf bytes.Buffer
	logger := vecmath.NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	metrics := &vecmath.BasicMetricsCollector{}

	src := make([]vec.Vec3[float64], 10)
	dst := make([]vec.Vec3[float64], 10)
	require.NoError(t, TransformPoints(context.Background(), testModel(), src, dst,
		WithLogger(logger),
		WithMetricsCollector(metrics),
		WithKernel("scalar"),
		WithChunkSize(4),
	))

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.BatchCount)
	assert.Equal(t, int64(10), stats.BatchItems)
	assert.Zero(t, stats.BatchErrors)

	out := buf.String()
	assert.Contains(t, out, `"msg":"batch completed"`)
	assert.Contains(t, out, `"op":"transform_points"`)
	assert.Contains(t, out, `"kernel":"scalar"`)
	assert.Contains(t, out, `"chunks":3`)
}

func TestNilOptions(t *testing.T) {
	o := applyOptions([]Option{WithLogger(nil), WithMetricsCollector(nil), WithWorkers(0), WithChunkSize(-1)})
	assert.NotNil(t, o.logger)
	assert.NotNil(t, o.metrics)
	assert.Positive(t, o.workers)
	assert.Equal(t, DefaultChunkSize, o.chunkSize)
}

func BenchmarkTransformPoints(b *testing.B) {
	rng := testutil.NewRNG(4711)
	m := testutil.CastMat4[float32](testModel())
	src := testutil.Points(rng, 100_000, float32(100))
	dst := make([]vec.Vec3[float32], len(src))
	ctx := context.Background()

	for _, k := range []string{"scalar", "blocked"} {
		b.Run(k, func(b *testing.B) {
			for b.Loop() {
				_ = TransformPoints(ctx, m, src, dst, WithKernel(k))
			}
		})
	}
}
