package telemetry

import "sync/atomic"

// AllocMetrics counts element allocations made on behalf of queues.
//
// An allocation is recorded when it is attempted. A failed attempt records a
// failure and no release; an attempt that is rolled back records both the
// allocation and its release, so Live stays exact either way.
type AllocMetrics struct {
	allocations atomic.Uint64
	releases    atomic.Uint64
	failures    atomic.Uint64
}

var defaultAllocMetrics AllocMetrics

// DefaultAllocMetrics returns the process-wide metrics.
func DefaultAllocMetrics() *AllocMetrics {
	return &defaultAllocMetrics
}

// TraceAlloc starts an allocation attempt and returns a function that settles
// it. Passing a non-nil error marks the attempt as failed.
func (m *AllocMetrics) TraceAlloc() func(error) {
	return func(err error) {
		if err != nil {
			m.failures.Add(1)
			return
		}
		m.allocations.Add(1)
	}
}

// Release records that one previously allocated block was given back.
func (m *AllocMetrics) Release() {
	m.releases.Add(1)
}

// Snapshot returns the collected counters.
func (m *AllocMetrics) Snapshot() (allocations, releases, failures uint64) {
	return m.allocations.Load(), m.releases.Load(), m.failures.Load()
}

// Live returns the number of blocks allocated and not yet released.
func (m *AllocMetrics) Live() int64 {
	return int64(m.allocations.Load()) - int64(m.releases.Load())
}

// Reset zeroes every counter.
func (m *AllocMetrics) Reset() {
	m.allocations.Store(0)
	m.releases.Store(0)
	m.failures.Store(0)
}
