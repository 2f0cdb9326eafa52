package fitpair

import (
	"context"

	"github.com/fitpair/fitpair/internal/flows"
)

// Login authenticates against the backend and, on success, installs the
// resulting session in strict order: one combined state write, then the
// durable store write, then return. Callers navigate only after Login
// returns nil — never between the state write and the persist.
//
// A backend rejection or transport failure leaves session state untouched
// and is returned for user display ([ErrInvalidCredentials],
// [ErrAuthUnavailable], [ErrMalformedResponse]). If the backend accepted the
// login but the durable write failed, the in-memory session stays live and
// [ErrSessionNotPersisted] is returned: the user is signed in, but the
// session will not survive a restart.
func (c *Client) Login(ctx context.Context, email, password string) (Snapshot, error) {
	if c == nil || c.state == nil {
		return Snapshot{}, ErrClientNotReady
	}

	return flows.RunLogin(ctx, email, password, flows.LoginDeps{
		Common:  c.flowCommon(),
		Login:   c.backend.Login,
		Persist: c.store.SaveRecord,
		Metrics: flows.LoginMetrics{
			Success:      int(MetricLoginSuccess),
			Failure:      int(MetricLoginFailure),
			NotPersisted: int(MetricLoginNotPersisted),
		},
		Events: flows.LoginEvents{
			Success: EventLoginSuccess,
			Failure: EventLoginFailure,
		},
		Errors: flows.LoginErrors{
			NotPersisted: ErrSessionNotPersisted,
		},
	})
}
