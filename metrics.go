package bigseq

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; package
// prom provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordSwitch is called after each segment switch attempt.
	RecordSwitch(duration time.Duration, err error)

	// RecordFlush is called after each write of the active segment to the store.
	RecordFlush(bytes int, duration time.Duration, err error)

	// RecordLoad is called after each attempt to read a segment from the store.
	// found is false when the slot was absent and the segment was zero-filled.
	RecordLoad(bytes int, found bool, duration time.Duration, err error)

	// RecordShift is called after each insert or remove with the number of
	// elements moved.
	RecordShift(op string, moved int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSwitch(time.Duration, error)          {}
func (NoopMetricsCollector) RecordFlush(int, time.Duration, error)      {}
func (NoopMetricsCollector) RecordLoad(int, bool, time.Duration, error) {}
func (NoopMetricsCollector) RecordShift(string, int)                    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SwitchCount      atomic.Int64
	SwitchErrors     atomic.Int64
	SwitchTotalNanos atomic.Int64
	FlushCount       atomic.Int64
	FlushErrors      atomic.Int64
	FlushBytes       atomic.Int64
	LoadCount        atomic.Int64
	LoadMisses       atomic.Int64
	LoadErrors       atomic.Int64
	LoadBytes        atomic.Int64
	InsertCount      atomic.Int64
	InsertMoved      atomic.Int64
	RemoveCount      atomic.Int64
	RemoveMoved      atomic.Int64
}

// RecordSwitch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSwitch(duration time.Duration, err error) {
	b.SwitchCount.Add(1)
	b.SwitchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SwitchErrors.Add(1)
	}
}

// RecordFlush implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFlush(bytes int, duration time.Duration, err error) {
	b.FlushCount.Add(1)
	if err != nil {
		b.FlushErrors.Add(1)
		return
	}
	b.FlushBytes.Add(int64(bytes))
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(bytes int, found bool, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	switch {
	case err != nil:
		b.LoadErrors.Add(1)
	case !found:
		b.LoadMisses.Add(1)
	default:
		b.LoadBytes.Add(int64(bytes))
	}
}

// RecordShift implements MetricsCollector.
func (b *BasicMetricsCollector) RecordShift(op string, moved int) {
	switch op {
	case opInsert:
		b.InsertCount.Add(1)
		b.InsertMoved.Add(int64(moved))
	case opRemove:
		b.RemoveCount.Add(1)
		b.RemoveMoved.Add(int64(moved))
	}
}

// MetricsStats is a snapshot of BasicMetricsCollector.
type MetricsStats struct {
	SwitchCount    int64
	SwitchErrors   int64
	SwitchAvgNanos int64
	FlushCount     int64
	FlushErrors    int64
	FlushBytes     int64
	LoadCount      int64
	LoadMisses     int64
	LoadErrors     int64
	LoadBytes      int64
	InsertCount    int64
	InsertMoved    int64
	RemoveCount    int64
	RemoveMoved    int64
}

// GetStats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) GetStats() MetricsStats {
	stats := MetricsStats{
		SwitchCount:  b.SwitchCount.Load(),
		SwitchErrors: b.SwitchErrors.Load(),
		FlushCount:   b.FlushCount.Load(),
		FlushErrors:  b.FlushErrors.Load(),
		FlushBytes:   b.FlushBytes.Load(),
		LoadCount:    b.LoadCount.Load(),
		LoadMisses:   b.LoadMisses.Load(),
		LoadErrors:   b.LoadErrors.Load(),
		LoadBytes:    b.LoadBytes.Load(),
		InsertCount:  b.InsertCount.Load(),
		InsertMoved:  b.InsertMoved.Load(),
		RemoveCount:  b.RemoveCount.Load(),
		RemoveMoved:  b.RemoveMoved.Load(),
	}
	if stats.SwitchCount > 0 {
		stats.SwitchAvgNanos = b.SwitchTotalNanos.Load() / stats.SwitchCount
	}
	return stats
}

// Reset zeroes all counters.
func (b *BasicMetricsCollector) Reset() {
	for _, c := range []*atomic.Int64{
		&b.SwitchCount, &b.SwitchErrors, &b.SwitchTotalNanos,
		&b.FlushCount, &b.FlushErrors, &b.FlushBytes,
		&b.LoadCount, &b.LoadMisses, &b.LoadErrors, &b.LoadBytes,
		&b.InsertCount, &b.InsertMoved, &b.RemoveCount, &b.RemoveMoved,
	} {
		c.Store(0)
	}
}
