package anim

import (
	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/codec"
	"github.com/hupe1980/vecmath/internal/compress"
)

// Compression names the algorithm applied to the encoded payload.
type Compression = compress.Type

const (
	CompressionNone = compress.None
	CompressionLZ4  = compress.LZ4
	CompressionZstd = compress.Zstd
)

type options struct {
	codec       codec.Codec
	compression Compression
	logger      *vecmath.Logger
	metrics     vecmath.MetricsCollector
}

// Option configures Encode and Decode.
type Option func(*options)

func applyOptions(opts []Option) options {
	o := options{
		codec:       codec.Default,
		compression: CompressionZstd,
		logger:      vecmath.NoopLogger(),
		metrics:     vecmath.NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCodec sets the payload codec used by Encode. Decode always uses the
// codec named in the header.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression sets the payload compression used by Encode.
// The default is CompressionZstd.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithLogger sets the logger. If nil, logging is disabled.
func WithLogger(l *vecmath.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = vecmath.NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics sink. If nil, metrics are discarded.
func WithMetricsCollector(m vecmath.MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = vecmath.NoopMetricsCollector{}
		}
		o.metrics = m
	}
}
