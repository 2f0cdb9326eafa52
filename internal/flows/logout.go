package flows

import (
	"context"

	"github.com/fitpair/fitpair/internal/state"
)

// LogoutMetrics carries the metric IDs the logout flow increments.
type LogoutMetrics struct {
	Logout       int
	StorageError int
}

// LogoutEvents carries the audit event names the logout flow emits.
type LogoutEvents struct {
	Logout string
}

// LogoutDeps captures the logout flow's dependencies.
type LogoutDeps struct {
	Common

	ClearRecord func(ctx context.Context) error

	Metrics LogoutMetrics
	Events  LogoutEvents
}

// RunLogout clears in-memory state first, then awaits the durable clear, and
// only then returns — so no stale persisted session can survive a crash that
// lands immediately after logout. The store clear failing is surfaced (the
// caller may retry) but in-memory state stays cleared either way.
func RunLogout(ctx context.Context, deps LogoutDeps) error {
	deps.fill()

	prev := deps.Current()
	deps.Replace(state.Snapshot{Loading: prev.Loading})

	var clearErr error
	if deps.ClearRecord != nil {
		clearErr = deps.ClearRecord(ctx)
	}
	if clearErr != nil {
		deps.MetricInc(deps.Metrics.StorageError)
		deps.Warn("logout: persisted session clear failed", "error", clearErr)
	}

	deps.MetricInc(deps.Metrics.Logout)
	deps.EmitAudit(ctx, deps.Events.Logout, clearErr == nil, prev.Email, prev.Role, clearErr, nil)

	return clearErr
}
