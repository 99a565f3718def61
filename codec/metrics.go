package codec

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/doubleint"
)

// MetricsCollector defines an interface for collecting codec metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordEncode is called after each Marshal.
	// duration is the time taken, err is nil if successful.
	RecordEncode(codec string, duration time.Duration, err error)

	// RecordDecode is called after each Unmarshal.
	RecordDecode(codec string, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordEncode(string, time.Duration, error) {}
func (NoopMetricsCollector) RecordDecode(string, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Counters are shared across codecs.
type BasicMetricsCollector struct {
	EncodeCount       atomic.Int64
	EncodeErrors      atomic.Int64
	EncodeTotalNanos  atomic.Int64
	DecodeCount       atomic.Int64
	DecodeErrors      atomic.Int64
	DecodeTotalNanos  atomic.Int64
	DecodeOutOfRange  atomic.Int64
	DecodeTypeMisfits atomic.Int64
}

// RecordEncode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEncode(_ string, duration time.Duration, err error) {
	b.EncodeCount.Add(1)
	b.EncodeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.EncodeErrors.Add(1)
	}
}

// RecordDecode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDecode(_ string, duration time.Duration, err error) {
	b.DecodeCount.Add(1)
	b.DecodeTotalNanos.Add(duration.Nanoseconds())
	if err == nil {
		return
	}
	b.DecodeErrors.Add(1)
	switch {
	case doubleint.IsOutOfRange(err):
		b.DecodeOutOfRange.Add(1)
	case doubleint.IsTypeMismatch(err):
		b.DecodeTypeMisfits.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		EncodeCount:       b.EncodeCount.Load(),
		EncodeErrors:      b.EncodeErrors.Load(),
		EncodeAvgNanos:    avgNanos(&b.EncodeTotalNanos, &b.EncodeCount),
		DecodeCount:       b.DecodeCount.Load(),
		DecodeErrors:      b.DecodeErrors.Load(),
		DecodeAvgNanos:    avgNanos(&b.DecodeTotalNanos, &b.DecodeCount),
		DecodeOutOfRange:  b.DecodeOutOfRange.Load(),
		DecodeTypeMisfits: b.DecodeTypeMisfits.Load(),
	}
}

func avgNanos(total, count *atomic.Int64) int64 {
	n := count.Load()
	if n == 0 {
		return 0
	}
	return total.Load() / n
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	EncodeCount       int64
	EncodeErrors      int64
	EncodeAvgNanos    int64
	DecodeCount       int64
	DecodeErrors      int64
	DecodeAvgNanos    int64
	DecodeOutOfRange  int64
	DecodeTypeMisfits int64
}

type metricsCodec struct {
	Codec
	mc MetricsCollector
}

// WithMetrics wraps c so that every Marshal and Unmarshal is recorded in mc.
// A nil collector returns c unchanged.
func WithMetrics(c Codec, mc MetricsCollector) Codec {
	if mc == nil {
		return c
	}
	return &metricsCodec{Codec: c, mc: mc}
}

func (c *metricsCodec) Marshal(v any) ([]byte, error) {
	start := time.Now()
	b, err := c.Codec.Marshal(v)
	c.mc.RecordEncode(c.Name(), time.Since(start), err)
	return b, err
}

func (c *metricsCodec) Unmarshal(data []byte, v any) error {
	start := time.Now()
	err := c.Codec.Unmarshal(data, v)
	c.mc.RecordDecode(c.Name(), time.Since(start), err)
	return err
}
