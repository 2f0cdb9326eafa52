package fitpair

import (
	"context"

	"github.com/fitpair/fitpair/internal/flows"
	"github.com/fitpair/fitpair/role"
	"github.com/fitpair/fitpair/session"
)

// Bootstrap runs the one-time reconciliation of the persisted session store
// into in-memory state and releases the loading latch. It runs exactly once
// per Client lifetime; later calls return [ErrBootstrapRan] without touching
// state. Storage failures are degraded to "no persisted session" — Bootstrap
// itself never fails for them.
//
// Before Bootstrap returns, the snapshot's Loading field is false and stays
// false for the rest of the Client's life.
func (c *Client) Bootstrap(ctx context.Context) (Snapshot, error) {
	if c == nil || c.state == nil {
		return Snapshot{}, ErrClientNotReady
	}

	c.bootstrapMu.Lock()
	defer c.bootstrapMu.Unlock()

	if c.bootstrapRan.Load() {
		return c.state.Current(), ErrBootstrapRan
	}

	// Device identity is established here so audit events carry it from the
	// first login on. Failure is non-fatal; events simply go out without it.
	if id, err := c.store.EnsureDeviceID(ctx); err != nil {
		c.warn("bootstrap: device identity unavailable", "error", err)
	} else {
		c.deviceID.Store(id)
	}

	snap := flows.RunBootstrap(ctx, flows.BootstrapDeps{
		Common:     c.flowCommon(),
		LoadRecord: c.store.LoadRecord,
		ClearRole: func(ctx context.Context) error {
			return c.store.Clear(ctx, session.KeyRole)
		},
		NormalizeRole: role.Normalize,
		Metrics: flows.BootstrapMetrics{
			Completed:     int(MetricBootstrapCompleted),
			StorageError:  int(MetricStorageError),
			RoleDiscarded: int(MetricRoleDiscarded),
		},
		Events: flows.BootstrapEvents{
			Complete:      EventBootstrapComplete,
			RoleDiscarded: EventRoleDiscarded,
		},
	})

	c.bootstrapRan.Store(true)

	return snap, nil
}

// flowCommon binds the shared flow hooks to this Client.
func (c *Client) flowCommon() flows.Common {
	return flows.Common{
		Replace:   c.state.Replace,
		Current:   c.state.Current,
		MetricInc: c.metricIncInt,
		EmitAudit: c.emitAudit,
		Warn:      c.warn,
	}
}
