package flows

import (
	"context"
	"fmt"

	"github.com/fitpair/fitpair/authapi"
	"github.com/fitpair/fitpair/internal/state"
	"github.com/fitpair/fitpair/session"
)

// LoginMetrics carries the metric IDs the login flow increments.
type LoginMetrics struct {
	Success      int
	Failure      int
	NotPersisted int
}

// LoginEvents carries the audit event names the login flow emits.
type LoginEvents struct {
	Success string
	Failure string
}

// LoginErrors carries host-level sentinel errors used by the login flow.
type LoginErrors struct {
	NotPersisted error
}

// LoginDeps captures the login flow's dependencies.
type LoginDeps struct {
	Common

	Login   func(ctx context.Context, email, password string) (*authapi.Fragment, error)
	Persist func(ctx context.Context, rec session.Record) error

	Metrics LoginMetrics
	Events  LoginEvents
	Errors  LoginErrors
}

// RunLogin executes the login flow with its ordering contract intact:
// backend call, then ONE combined state write, then the durable write, and
// only then return — the caller navigates after, never before. A backend
// failure leaves state untouched; a persist failure leaves state live but
// reports ErrSessionNotPersisted so the caller knows the session will not
// survive a restart.
func RunLogin(ctx context.Context, email, password string, deps LoginDeps) (state.Snapshot, error) {
	deps.fill()

	frag, err := deps.Login(ctx, email, password)
	if err != nil {
		deps.MetricInc(deps.Metrics.Failure)
		deps.EmitAudit(ctx, deps.Events.Failure, false, email, "", err, nil)
		return state.Snapshot{}, err
	}

	// Loading is carried over unchanged: a login that settles before the
	// bootstrap does must not release the latch on its behalf.
	cur := deps.Current()
	snap := deps.Replace(state.Snapshot{
		Token:   frag.Token,
		Role:    frag.Role,
		Name:    frag.Name,
		Email:   frag.Email,
		Loading: cur.Loading,
	})

	if deps.Persist != nil {
		if err := deps.Persist(ctx, session.Record{
			Token: frag.Token,
			Role:  frag.Role,
			Name:  frag.Name,
			Email: frag.Email,
		}); err != nil {
			deps.MetricInc(deps.Metrics.NotPersisted)
			deps.Warn("login: session state updated but durable write failed", "error", err)
			deps.EmitAudit(ctx, deps.Events.Success, true, frag.Email, frag.Role, err, func() map[string]string {
				return map[string]string{"persisted": "false"}
			})
			if deps.Errors.NotPersisted != nil {
				return snap, fmt.Errorf("%w: %v", deps.Errors.NotPersisted, err)
			}
			return snap, err
		}
	}

	deps.MetricInc(deps.Metrics.Success)
	deps.EmitAudit(ctx, deps.Events.Success, true, frag.Email, frag.Role, nil, nil)

	return snap, nil
}
