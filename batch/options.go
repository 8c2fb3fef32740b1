package batch

import (
	"runtime"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/internal/kernel"
)

// DefaultChunkSize is the number of vectors per chunk.
const DefaultChunkSize = 4096

type options struct {
	workers   int
	chunkSize int
	kernel    kernel.Kind
	logger    *vecmath.Logger
	metrics   vecmath.MetricsCollector
}

// Option configures a batch call.
type Option func(*options)

func defaultOptions() options {
	return options{
		workers:   runtime.GOMAXPROCS(0),
		chunkSize: DefaultChunkSize,
		kernel:    kernel.Active(),
		logger:    vecmath.NoopLogger(),
		metrics:   vecmath.NoopMetricsCollector{},
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithWorkers bounds the number of chunks processed concurrently.
// n <= 0 uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithChunkSize sets the number of vectors per chunk.
// n <= 0 uses DefaultChunkSize.
func WithChunkSize(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultChunkSize
		}
		o.chunkSize = n
	}
}

// WithKernel forces a compute kernel by name ("scalar" or "blocked").
// Unknown names keep the kernel selected at startup.
func WithKernel(name string) Option {
	return func(o *options) {
		if k, ok := kernel.ParseKind(name); ok {
			o.kernel = k
		}
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
