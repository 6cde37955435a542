package input

import (
	"sync"
	"testing"
	"time"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.RecordTick(2 * time.Millisecond)
	m.RecordTick(4 * time.Millisecond)
	m.RecordEvent()

	stats := m.Snapshot()
	if stats.TicksTotal != 2 {
		t.Errorf("TicksTotal = %d, want 2", stats.TicksTotal)
	}
	if stats.EventsTotal != 1 {
		t.Errorf("EventsTotal = %d, want 1", stats.EventsTotal)
	}
	if stats.AvgTickLatency != 3*time.Millisecond {
		t.Errorf("AvgTickLatency = %v, want 3ms", stats.AvgTickLatency)
	}
	if stats.PeakTickLatency != 4*time.Millisecond {
		t.Errorf("PeakTickLatency = %v, want 4ms", stats.PeakTickLatency)
	}
}

func TestMetricsDisabled(t *testing.T) {
	m := NewMetrics()
	m.SetEnabled(false)

	m.RecordTick(time.Millisecond)
	m.RecordEvent()

	stats := m.Snapshot()
	if stats.TicksTotal != 0 || stats.EventsTotal != 0 {
		t.Errorf("disabled metrics recorded: %+v", stats)
	}
}

func TestMetricsRingWrapsAround(t *testing.T) {
	m := NewMetrics()
	for i := 0; i < latencySamples*2; i++ {
		m.RecordTick(time.Millisecond)
	}

	stats := m.Snapshot()
	if stats.TicksTotal != uint64(latencySamples*2) {
		t.Errorf("TicksTotal = %d, want %d", stats.TicksTotal, latencySamples*2)
	}
	if stats.AvgTickLatency != time.Millisecond {
		t.Errorf("AvgTickLatency = %v, want 1ms", stats.AvgTickLatency)
	}
}

func TestMetricsConcurrentRecordAndSnapshot(t *testing.T) {
	m := NewMetrics()

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				m.RecordTick(time.Microsecond)
				m.RecordEvent()
				m.Snapshot()
			}
		}()
	}
	wg.Wait()

	stats := m.Snapshot()
	if stats.TicksTotal != 2000 {
		t.Errorf("TicksTotal = %d, want 2000", stats.TicksTotal)
	}
	if stats.EventsTotal != 2000 {
		t.Errorf("EventsTotal = %d, want 2000", stats.EventsTotal)
	}
}

func TestMetricsReset(t *testing.T) {
	m := NewMetrics()
	m.RecordTick(time.Millisecond)
	m.RecordEvent()
	m.Reset()

	stats := m.Snapshot()
	if stats.TicksTotal != 0 || stats.EventsTotal != 0 || stats.PeakTickLatency != 0 {
		t.Errorf("Reset left state: %+v", stats)
	}
}
