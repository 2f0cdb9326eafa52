package fitpair

import (
	"sync"
	"testing"
)

func TestMetricsIncAndGet(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	m.Inc(MetricLoginSuccess)
	m.Inc(MetricLoginSuccess)
	m.Inc(MetricLogout)

	if got := m.Get(MetricLoginSuccess); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := m.Get(MetricLogout); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := m.Get(MetricLoginFailure); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestMetricsDisabledIsNoOp(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: false})

	m.Inc(MetricLoginSuccess)

	if got := m.Get(MetricLoginSuccess); got != 0 {
		t.Fatalf("disabled metrics counted: %d", got)
	}
	if snap := m.Snapshot(); len(snap.Counters) != 0 {
		t.Fatalf("disabled snapshot not empty: %+v", snap)
	}
}

func TestMetricsSnapshotIsACopy(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})
	m.Inc(MetricBootstrapCompleted)

	snap := m.Snapshot()
	m.Inc(MetricBootstrapCompleted)

	if snap.Counters[MetricBootstrapCompleted] != 1 {
		t.Fatalf("snapshot not point-in-time: %d", snap.Counters[MetricBootstrapCompleted])
	}
}

func TestMetricsOutOfRangeIDIsIgnored(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	m.Inc(MetricID(1000))
	if got := m.Get(MetricID(1000)); got != 0 {
		t.Fatalf("out-of-range id counted: %d", got)
	}
}

func TestMetricsConcurrentInc(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				m.Inc(MetricNavigationEmitted)
			}
		}()
	}
	wg.Wait()

	if got := m.Get(MetricNavigationEmitted); got != 8000 {
		t.Fatalf("expected 8000, got %d", got)
	}
}
