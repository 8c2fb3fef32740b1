package vecmath

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	var m BasicMetricsCollector

	m.RecordBatch("transform_points", 100, 4*time.Millisecond, nil)
	m.RecordBatch("rotate_vectors", 50, 2*time.Millisecond, errors.New("not unit"))
	m.RecordEncode(1024, time.Millisecond, nil)
	m.RecordEncode(0, time.Millisecond, errors.New("write failed"))
	m.RecordDecode(1024, time.Millisecond, nil)

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats.BatchCount)
	assert.Equal(t, int64(150), stats.BatchItems)
	assert.Equal(t, int64(1), stats.BatchErrors)
	assert.Equal(t, (3 * time.Millisecond).Nanoseconds(), stats.BatchAvgNanos)
	assert.Equal(t, int64(2), stats.EncodeCount)
	assert.Equal(t, int64(1024), stats.EncodeBytes)
	assert.Equal(t, int64(1), stats.EncodeErrors)
	assert.Equal(t, int64(1), stats.DecodeCount)
	assert.Zero(t, stats.DecodeErrors)
}

func TestBasicMetricsCollectorConcurrent(t *testing.T) {
	var (
		m  BasicMetricsCollector
		wg sync.WaitGroup
	)

	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				m.RecordBatch("op", 1, time.Microsecond, nil)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(800), m.GetStats().BatchItems)
}

func TestEmptyStats(t *testing.T) {
	var m BasicMetricsCollector
	assert.Zero(t, m.GetStats().BatchAvgNanos)

	var _ MetricsCollector = NoopMetricsCollector{}
	var _ MetricsCollector = &m
}
