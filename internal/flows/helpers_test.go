package flows

import (
	"context"
	"sync"

	"github.com/fitpair/fitpair/internal/state"
)

// metricRecorder counts increments per metric ID.
type metricRecorder struct {
	mu     sync.Mutex
	counts map[int]int
}

func newMetricRecorder() *metricRecorder {
	return &metricRecorder{counts: make(map[int]int)}
}

func (m *metricRecorder) inc(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[id]++
}

func (m *metricRecorder) get(id int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[id]
}

// auditRecorder captures emitted audit events in order.
type auditRecord struct {
	EventType string
	Success   bool
	Email     string
	Role      string
	Err       error
	Metadata  map[string]string
}

type auditRecorder struct {
	mu     sync.Mutex
	events []auditRecord
}

func (a *auditRecorder) emit(_ context.Context, eventType string, success bool, email, role string, err error, metadata func() map[string]string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	rec := auditRecord{EventType: eventType, Success: success, Email: email, Role: role, Err: err}
	if metadata != nil {
		rec.Metadata = metadata()
	}
	a.events = append(a.events, rec)
}

func (a *auditRecorder) byType(eventType string) []auditRecord {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []auditRecord
	for _, e := range a.events {
		if e.EventType == eventType {
			out = append(out, e)
		}
	}
	return out
}

func commonFor(store *state.Store, metrics *metricRecorder, audit *auditRecorder) Common {
	c := Common{
		Replace: store.Replace,
		Current: store.Current,
	}
	if metrics != nil {
		c.MetricInc = metrics.inc
	}
	if audit != nil {
		c.EmitAudit = audit.emit
	}
	return c
}
