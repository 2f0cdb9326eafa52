package fitpair

import (
	"context"

	"github.com/fitpair/fitpair/internal/flows"
)

// Logout destroys the current session: in-memory state is cleared first,
// then the persisted record is cleared and awaited, and only then does
// Logout return — so navigation to sign-in always happens after no trace of
// the session can survive a crash.
//
// A store failure is returned (wrapped [ErrStoreUnavailable]) so the caller
// may retry the durable clear; in-memory state is already gone either way.
func (c *Client) Logout(ctx context.Context) error {
	if c == nil || c.state == nil {
		return ErrClientNotReady
	}

	return flows.RunLogout(ctx, flows.LogoutDeps{
		Common:      c.flowCommon(),
		ClearRecord: c.store.ClearRecord,
		Metrics: flows.LogoutMetrics{
			Logout:       int(MetricLogout),
			StorageError: int(MetricStorageError),
		},
		Events: flows.LogoutEvents{
			Logout: EventLogout,
		},
	})
}
