package colstore

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAppend is called after each insert.
	RecordAppend(duration time.Duration, err error)

	// RecordScan is called after each scan. matches is the number of
	// selected rows, 0 on error.
	RecordScan(matches int, duration time.Duration, err error)

	// RecordCompress is called after each chunk compression with the
	// estimated chunk size before and after.
	RecordCompress(bytesBefore, bytesAfter int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAppend(time.Duration, error)             {}
func (NoopMetricsCollector) RecordScan(int, time.Duration, error)          {}
func (NoopMetricsCollector) RecordCompress(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AppendCount        atomic.Int64
	AppendErrors       atomic.Int64
	ScanCount          atomic.Int64
	ScanErrors         atomic.Int64
	ScanMatches        atomic.Int64
	ScanTotalNanos     atomic.Int64
	CompressCount      atomic.Int64
	CompressErrors     atomic.Int64
	CompressTotalNanos atomic.Int64
	BytesBefore        atomic.Int64
	BytesAfter         atomic.Int64
}

// RecordAppend implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAppend(_ time.Duration, err error) {
	b.AppendCount.Add(1)
	if err != nil {
		b.AppendErrors.Add(1)
	}
}

// RecordScan implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScan(matches int, duration time.Duration, err error) {
	b.ScanCount.Add(1)
	b.ScanTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ScanErrors.Add(1)
		return
	}
	b.ScanMatches.Add(int64(matches))
}

// RecordCompress implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCompress(bytesBefore, bytesAfter int, duration time.Duration, err error) {
	b.CompressCount.Add(1)
	b.CompressTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.CompressErrors.Add(1)
		return
	}
	b.BytesBefore.Add(int64(bytesBefore))
	b.BytesAfter.Add(int64(bytesAfter))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AppendCount:      b.AppendCount.Load(),
		AppendErrors:     b.AppendErrors.Load(),
		ScanCount:        b.ScanCount.Load(),
		ScanErrors:       b.ScanErrors.Load(),
		ScanMatches:      b.ScanMatches.Load(),
		ScanAvgNanos:     avg(b.ScanTotalNanos.Load(), b.ScanCount.Load()),
		CompressCount:    b.CompressCount.Load(),
		CompressErrors:   b.CompressErrors.Load(),
		CompressAvgNanos: avg(b.CompressTotalNanos.Load(), b.CompressCount.Load()),
		BytesBefore:      b.BytesBefore.Load(),
		BytesAfter:       b.BytesAfter.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AppendCount      int64
	AppendErrors     int64
	ScanCount        int64
	ScanErrors       int64
	ScanMatches      int64
	ScanAvgNanos     int64
	CompressCount    int64
	CompressErrors   int64
	CompressAvgNanos int64
	BytesBefore      int64
	BytesAfter       int64
}
