package vecmath

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newBufferLogger(buf *bytes.Buffer) *Logger {
	return NewLogger(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf).WithOperation("rotate").WithKernel("blocked").WithCount(12)

	l.Info("done")

	out := buf.String()
	assert.Contains(t, out, `"op":"rotate"`)
	assert.Contains(t, out, `"kernel":"blocked"`)
	assert.Contains(t, out, `"count":12`)
}

func TestLogBatch(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	l := newBufferLogger(&buf)

	l.LogBatch(ctx, "transform_points", 100, 4, time.Millisecond, nil)
	assert.Contains(t, buf.String(), `"level":"DEBUG"`)
	assert.Contains(t, buf.String(), `"chunks":4`)

	buf.Reset()
	l.LogBatch(ctx, "transform_points", 100, 4, time.Millisecond, errors.New("boom"))
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"error":"boom"`)
}

func TestLogEncodeDecode(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	l := newBufferLogger(&buf)

	l.LogEncode(ctx, 3, 512, "zstd", nil)
	assert.Contains(t, buf.String(), `"msg":"track encoded"`)
	assert.Contains(t, buf.String(), `"bytes":512`)

	buf.Reset()
	l.LogDecode(ctx, 0, 8, "json", errors.New("bad magic"))
	assert.Contains(t, buf.String(), `"msg":"track decode failed"`)
	assert.Contains(t, buf.String(), `"codec":"json"`)
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	l.LogBatch(context.Background(), "x", 1, 1, 0, errors.New("ignored"))
}
