package vec3

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting registry metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordCreate is called after each Create. err is nil if successful.
	RecordCreate(err error)

	// RecordDestroy is called after each Destroy. err is non-nil when the
	// handle was rejected.
	RecordDestroy(err error)

	// RecordDot is called after each Dot. err is non-nil when either handle
	// was rejected.
	RecordDot(err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCreate(error)  {}
func (NoopMetricsCollector) RecordDestroy(error) {}
func (NoopMetricsCollector) RecordDot(error)     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CreateCount   atomic.Int64
	CreateErrors  atomic.Int64
	DestroyCount  atomic.Int64
	DestroyErrors atomic.Int64
	DotCount      atomic.Int64
	DotErrors     atomic.Int64
}

// RecordCreate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCreate(err error) {
	b.CreateCount.Add(1)
	if err != nil {
		b.CreateErrors.Add(1)
	}
}

// RecordDestroy implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDestroy(err error) {
	b.DestroyCount.Add(1)
	if err != nil {
		b.DestroyErrors.Add(1)
	}
}

// RecordDot implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDot(err error) {
	b.DotCount.Add(1)
	if err != nil {
		b.DotErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		CreateCount:   b.CreateCount.Load(),
		CreateErrors:  b.CreateErrors.Load(),
		DestroyCount:  b.DestroyCount.Load(),
		DestroyErrors: b.DestroyErrors.Load(),
		DotCount:      b.DotCount.Load(),
		DotErrors:     b.DotErrors.Load(),
	}
}

// Live returns the number of successfully created handles that were not yet
// successfully destroyed.
func (b *BasicMetricsCollector) Live() int64 {
	created := b.CreateCount.Load() - b.CreateErrors.Load()
	destroyed := b.DestroyCount.Load() - b.DestroyErrors.Load()
	return created - destroyed
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	CreateCount   int64
	CreateErrors  int64
	DestroyCount  int64
	DestroyErrors int64
	DotCount      int64
	DotErrors     int64
}
