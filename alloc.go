package stringqueue

import (
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/timzifer/string_queue/internal/telemetry"
)

// ErrAllocation is returned internally when a simulated allocation fails.
// Public operations translate it into their neutral failure value.
var ErrAllocation = errors.New("stringqueue: allocation failed")

// FaultInjector decides whether the next allocation should fail.
type FaultInjector interface {
	Fail() bool
}

// FaultFunc adapts a plain function to FaultInjector.
type FaultFunc func() bool

// Fail calls f.
func (f FaultFunc) Fail() bool { return f() }

type probabilityInjector struct {
	rng *rand.Rand
	p   float64
}

func (i *probabilityInjector) Fail() bool {
	return i.rng.Float64() < i.p
}

// AllocatorOption configures an Allocator.
type AllocatorOption func(*Allocator)

// WithFaultInjector makes the allocator consult f before every allocation.
func WithFaultInjector(f FaultInjector) AllocatorOption {
	return func(a *Allocator) {
		a.faults = f
	}
}

// WithFailureProbability fails each allocation with probability p, drawn
// from a PCG source seeded with seed so that runs are reproducible.
func WithFailureProbability(p float64, seed uint64) AllocatorOption {
	return func(a *Allocator) {
		a.faults = &probabilityInjector{
			rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
			p:   p,
		}
	}
}

// AllocStats is a point-in-time copy of an allocator's counters.
type AllocStats struct {
	Allocations uint64
	Releases    uint64
	Failures    uint64
}

// Live returns the number of blocks still outstanding.
func (s AllocStats) Live() int64 {
	return int64(s.Allocations) - int64(s.Releases)
}

// Allocator hands out queue sentinels and elements and accounts for them.
// Queues created without WithAllocator share a process-wide allocator that
// never fails.
type Allocator struct {
	metrics *telemetry.AllocMetrics
	faults  FaultInjector
}

var defaultAllocator = &Allocator{metrics: telemetry.DefaultAllocMetrics()}

// DefaultAllocator returns the process-wide allocator.
func DefaultAllocator() *Allocator {
	return defaultAllocator
}

// NewAllocator creates an allocator with its own counters.
func NewAllocator(opts ...AllocatorOption) *Allocator {
	a := &Allocator{metrics: new(telemetry.AllocMetrics)}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Stats returns the allocator's counters.
func (a *Allocator) Stats() AllocStats {
	allocations, releases, failures := a.metrics.Snapshot()
	return AllocStats{
		Allocations: allocations,
		Releases:    releases,
		Failures:    failures,
	}
}

func (a *Allocator) alloc() error {
	finish := a.metrics.TraceAlloc()
	if a.faults != nil && a.faults.Fail() {
		finish(ErrAllocation)
		return ErrAllocation
	}
	finish(nil)
	return nil
}

func (a *Allocator) release() {
	a.metrics.Release()
}

// newElement builds an element owning a private copy of s. The element record
// and the payload copy are two separate allocations; if the copy fails the
// record is released before returning.
func (a *Allocator) newElement(s string) (*Element, error) {
	if err := a.alloc(); err != nil {
		return nil, err
	}
	e := &Element{alloc: a}

	if err := a.alloc(); err != nil {
		a.release()
		return nil, err
	}
	e.Value = strings.Clone(s)
	e.link.Bind(e)
	return e, nil
}
