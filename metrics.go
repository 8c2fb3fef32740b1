package vecmath

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives operational metrics from batch and anim.
// Implement it to forward to a monitoring system.
type MetricsCollector interface {
	// RecordBatch is called after each bulk transform. count is the number of
	// elements and err is nil on success.
	RecordBatch(op string, count int, duration time.Duration, err error)

	// RecordEncode is called after a track is serialized. bytes is the
	// encoded size.
	RecordEncode(bytes int, duration time.Duration, err error)

	// RecordDecode is called after a track is deserialized.
	RecordDecode(bytes int, duration time.Duration, err error)
}

// NoopMetricsCollector discards every metric.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBatch(string, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordEncode(int, time.Duration, error)        {}
func (NoopMetricsCollector) RecordDecode(int, time.Duration, error)        {}

// BasicMetricsCollector keeps in-memory atomic counters.
type BasicMetricsCollector struct {
	BatchCount      atomic.Int64
	BatchItems      atomic.Int64
	BatchErrors     atomic.Int64
	BatchTotalNanos atomic.Int64
	EncodeCount     atomic.Int64
	EncodeBytes     atomic.Int64
	EncodeErrors    atomic.Int64
	DecodeCount     atomic.Int64
	DecodeBytes     atomic.Int64
	DecodeErrors    atomic.Int64
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(_ string, count int, duration time.Duration, err error) {
	b.BatchCount.Add(1)
	b.BatchItems.Add(int64(count))
	b.BatchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BatchErrors.Add(1)
	}
}

// RecordEncode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEncode(bytes int, _ time.Duration, err error) {
	b.EncodeCount.Add(1)
	if err != nil {
		b.EncodeErrors.Add(1)
		return
	}
	b.EncodeBytes.Add(int64(bytes))
}

// RecordDecode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDecode(bytes int, _ time.Duration, err error) {
	b.DecodeCount.Add(1)
	b.DecodeBytes.Add(int64(bytes))
	if err != nil {
		b.DecodeErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BatchCount:    b.BatchCount.Load(),
		BatchItems:    b.BatchItems.Load(),
		BatchErrors:   b.BatchErrors.Load(),
		BatchAvgNanos: b.avgBatchNanos(),
		EncodeCount:   b.EncodeCount.Load(),
		EncodeBytes:   b.EncodeBytes.Load(),
		EncodeErrors:  b.EncodeErrors.Load(),
		DecodeCount:   b.DecodeCount.Load(),
		DecodeBytes:   b.DecodeBytes.Load(),
		DecodeErrors:  b.DecodeErrors.Load(),
	}
}

func (b *BasicMetricsCollector) avgBatchNanos() int64 {
	count := b.BatchCount.Load()
	if count == 0 {
		return 0
	}
	return b.BatchTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BatchCount    int64
	BatchItems    int64
	BatchErrors   int64
	BatchAvgNanos int64
	EncodeCount   int64
	EncodeBytes   int64
	EncodeErrors  int64
	DecodeCount   int64
	DecodeBytes   int64
	DecodeErrors  int64
}
