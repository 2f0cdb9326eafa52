package fitpair

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/fitpair/fitpair/authapi"
	"github.com/fitpair/fitpair/internal/state"
	"github.com/fitpair/fitpair/session"
)

// Client is the session core of a running app instance. It owns the
// persisted store, the in-memory session state, and the auth backend, and is
// the only component allowed to mutate session state. Construct through
// [Builder.Build]; methods are safe for concurrent use afterwards.
type Client struct {
	config  Config
	store   *session.Store
	state   *state.Store
	backend authapi.Backend
	audit   *auditDispatcher
	metrics *Metrics
	logger  *slog.Logger

	deviceID     atomic.Value // string, set lazily
	bootstrapRan atomic.Bool
	bootstrapMu  sync.Mutex
}

// Close flushes and stops the audit dispatcher. The Client must not be used
// afterwards.
func (c *Client) Close() {
	if c == nil {
		return
	}
	c.audit.Close()
}

// Current returns the session snapshot as of now.
func (c *Client) Current() Snapshot {
	if c == nil || c.state == nil {
		return Snapshot{}
	}
	return c.state.Current()
}

// Subscribe registers an observer of session state changes. Every mutation
// (bootstrap completion, login, logout) delivers a whole new snapshot. The
// cancel func unregisters the observer.
func (c *Client) Subscribe() (<-chan Snapshot, func()) {
	return c.state.Subscribe()
}

// Store exposes the persisted session store, mainly for diagnostics.
func (c *Client) Store() *session.Store {
	return c.store
}

// DeviceID returns the stable per-install identifier once Bootstrap has
// established it, or "" before that.
func (c *Client) DeviceID() string {
	if c == nil {
		return ""
	}
	id, _ := c.deviceID.Load().(string)
	return id
}

// MetricsSnapshot returns a point-in-time copy of all counters.
func (c *Client) MetricsSnapshot() MetricsSnapshot {
	if c == nil || c.metrics == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return c.metrics.Snapshot()
}

// AuditDropped reports how many audit events the dispatcher discarded under
// backpressure.
func (c *Client) AuditDropped() uint64 {
	if c == nil {
		return 0
	}
	return c.audit.Dropped()
}

func (c *Client) metricInc(id MetricID) {
	if c == nil || c.metrics == nil {
		return
	}
	c.metrics.Inc(id)
}

func (c *Client) metricIncInt(id int) {
	c.metricInc(MetricID(id))
}

func (c *Client) emitAudit(
	ctx context.Context,
	eventType string,
	success bool,
	email, roleName string,
	err error,
	metadata func() map[string]string,
) {
	c.audit.emit(ctx, eventType, success, email, roleName, err, metadata)
}

func (c *Client) warn(msg string, args ...any) {
	if c == nil || c.logger == nil {
		return
	}
	c.logger.Warn(msg, args...)
}
