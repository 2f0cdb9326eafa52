package fitpair

import "sync/atomic"

// MetricID identifies one counter in the in-process metrics system.
type MetricID uint16

const (
	// MetricLoginSuccess counts logins that produced a live, persisted session.
	MetricLoginSuccess MetricID = iota
	// MetricLoginFailure counts logins rejected by the backend or transport.
	MetricLoginFailure
	// MetricLoginNotPersisted counts logins whose durable write failed after the state write.
	MetricLoginNotPersisted
	// MetricBootstrapCompleted counts bootstrap runs that released the loading latch.
	MetricBootstrapCompleted
	// MetricStorageError counts persisted-store failures that were degraded, not surfaced.
	MetricStorageError
	// MetricRoleDiscarded counts persisted roles rejected for being corrupt or token-less.
	MetricRoleDiscarded
	// MetricLogout counts logout flows.
	MetricLogout
	// MetricNavigationEmitted counts route-guard decisions that changed the rendered area.
	MetricNavigationEmitted
	// MetricNavigationSuppressed counts route-guard decisions that were idempotent no-ops.
	MetricNavigationSuppressed
	metricIDCount
)

// MetricsConfig controls the in-process counters.
type MetricsConfig struct {
	Enabled bool
}

// Metrics holds atomic counters for session lifecycle outcomes. When built
// with Enabled=false every operation is a no-op.
type Metrics struct {
	enabled  bool
	counters [metricIDCount]atomic.Uint64
}

// NewMetrics creates a [Metrics] instance configured by cfg.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{enabled: cfg.Enabled}
}

// Inc increments one counter.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	m.counters[id].Add(1)
}

// Get returns the current value of one counter.
func (m *Metrics) Get(id MetricID) uint64 {
	if m == nil || !m.enabled || id >= metricIDCount {
		return 0
	}
	return m.counters[id].Load()
}

// MetricsSnapshot is a point-in-time copy of all counters.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// Snapshot returns a deep copy of the current counter values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{Counters: make(map[MetricID]uint64, int(metricIDCount))}
	if m == nil || !m.enabled {
		return snap
	}
	for id := MetricID(0); id < metricIDCount; id++ {
		snap.Counters[id] = m.counters[id].Load()
	}
	return snap
}
