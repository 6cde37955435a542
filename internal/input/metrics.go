package input

import (
	"sync"
	"sync/atomic"
	"time"
)

// latencySamples is the size of the tick latency ring buffer.
const latencySamples = 256

// Metrics tracks tick processing counters and latency. Unlike the
// manager it is safe for concurrent use, so a monitoring goroutine may
// snapshot it while ticks run.
type Metrics struct {
	ticksTotal  atomic.Uint64
	eventsTotal atomic.Uint64

	peakTickLatency atomic.Int64

	// mu guards the latency ring and start time.
	mu         sync.RWMutex
	latencies  [latencySamples]time.Duration
	latencyIdx int
	sampled    int
	startTime  time.Time

	enabled atomic.Bool
}

// NewMetrics creates a metrics tracker with collection enabled.
func NewMetrics() *Metrics {
	m := &Metrics{startTime: time.Now()}
	m.enabled.Store(true)
	return m
}

// SetEnabled enables or disables metrics collection.
func (m *Metrics) SetEnabled(enabled bool) {
	m.enabled.Store(enabled)
}

// RecordTick records one completed tick with its processing time.
func (m *Metrics) RecordTick(latency time.Duration) {
	if !m.enabled.Load() {
		return
	}
	m.ticksTotal.Add(1)

	ns := latency.Nanoseconds()
	for {
		current := m.peakTickLatency.Load()
		if ns <= current {
			break
		}
		if m.peakTickLatency.CompareAndSwap(current, ns) {
			break
		}
	}

	m.mu.Lock()
	m.latencies[m.latencyIdx] = latency
	m.latencyIdx = (m.latencyIdx + 1) % latencySamples
	if m.sampled < latencySamples {
		m.sampled++
	}
	m.mu.Unlock()
}

// RecordEvent records one fired binding event.
func (m *Metrics) RecordEvent() {
	if !m.enabled.Load() {
		return
	}
	m.eventsTotal.Add(1)
}

// Stats is a point-in-time metrics snapshot.
type Stats struct {
	TicksTotal      uint64
	EventsTotal     uint64
	AvgTickLatency  time.Duration
	PeakTickLatency time.Duration
	Uptime          time.Duration
}

// Snapshot returns current counter values and latency aggregates.
func (m *Metrics) Snapshot() Stats {
	m.mu.RLock()
	var avg time.Duration
	if m.sampled > 0 {
		var total time.Duration
		for i := 0; i < m.sampled; i++ {
			total += m.latencies[i]
		}
		avg = total / time.Duration(m.sampled)
	}
	start := m.startTime
	m.mu.RUnlock()

	return Stats{
		TicksTotal:      m.ticksTotal.Load(),
		EventsTotal:     m.eventsTotal.Load(),
		AvgTickLatency:  avg,
		PeakTickLatency: time.Duration(m.peakTickLatency.Load()),
		Uptime:          time.Since(start),
	}
}

// Reset zeroes all counters and samples.
func (m *Metrics) Reset() {
	m.ticksTotal.Store(0)
	m.eventsTotal.Store(0)
	m.peakTickLatency.Store(0)

	m.mu.Lock()
	m.latencyIdx = 0
	m.sampled = 0
	m.startTime = time.Now()
	m.mu.Unlock()
}
