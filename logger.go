package vecmath

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with vecmath-specific fields.
// Only the batch and anim packages log; value types never do.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// WithOperation tags every record with the operation name.
func (l *Logger) WithOperation(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// WithKernel tags every record with the selected compute kernel.
func (l *Logger) WithKernel(kernel string) *Logger {
	return &Logger{
		Logger: l.Logger.With("kernel", kernel),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogBatch logs a completed bulk transform.
func (l *Logger) LogBatch(ctx context.Context, op string, count, chunks int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch failed",
			"op", op,
			"count", count,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "batch completed",
		"op", op,
		"count", count,
		"chunks", chunks,
		"elapsed", elapsed,
	)
}

// LogEncode logs a track encode.
func (l *Logger) LogEncode(ctx context.Context, keys, bytes int, compression string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "track encode failed",
			"keys", keys,
			"compression", compression,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "track encoded",
		"keys", keys,
		"bytes", bytes,
		"compression", compression,
	)
}

// LogDecode logs a track decode.
func (l *Logger) LogDecode(ctx context.Context, keys, bytes int, codec string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "track decode failed",
			"bytes", bytes,
			"codec", codec,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "track decoded",
		"keys", keys,
		"bytes", bytes,
		"codec", codec,
	)
}
