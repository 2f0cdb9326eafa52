package fitpair

import (
	"context"
	"sync"
)

// Destination is one of the fixed navigation targets the route guard can
// select. The UI maps these onto actual screens; the guard itself never
// renders anything.
type Destination uint8

const (
	// DestStay is the idempotent no-op: the current location already matches.
	DestStay Destination = iota
	// DestLoading renders the neutral waiting state; no navigation decision yet.
	DestLoading
	// DestSignIn is the public sign-in screen, reachable in every state.
	DestSignIn
	// DestMemberArea is the private student area.
	DestMemberArea
	// DestCoachArea is the private instructor area.
	DestCoachArea
)

// String returns the destination's navigation name.
func (d Destination) String() string {
	switch d {
	case DestStay:
		return "stay"
	case DestLoading:
		return "loading"
	case DestSignIn:
		return "sign-in"
	case DestMemberArea:
		return "member-area"
	case DestCoachArea:
		return "coach-area"
	default:
		return "unknown"
	}
}

// Decide is the pure routing decision over a session snapshot:
//
//	loading                      → loading indicator, nothing else
//	no token                     → sign-in
//	token + student              → member area
//	token + instructor           → coach area
//	token without a usable role  → sign-in (a roleless session cannot pick an
//	                               area; it is a data defect, not a state)
//
// Decide never returns DestStay; idempotence against the current location is
// [Guard]'s job.
func Decide(s Snapshot) Destination {
	switch {
	case s.Loading:
		return DestLoading
	case !s.Authenticated():
		return DestSignIn
	case s.Role == RoleStudent:
		return DestMemberArea
	case s.Role == RoleInstructor:
		return DestCoachArea
	default:
		return DestSignIn
	}
}

// NavigateFunc performs one navigation. It is invoked outside the guard's
// lock and must tolerate being called from the guard's observing goroutine.
type NavigateFunc func(Destination)

// Guard turns session snapshots into idempotent navigation commands. It
// tracks the currently rendered location so re-observing an unchanged state
// can never produce a navigation loop.
type Guard struct {
	mu       sync.Mutex
	located  bool
	location Destination
}

// NewGuard returns a Guard that has not rendered any location yet; the first
// observation always navigates.
func NewGuard() *Guard {
	return &Guard{}
}

// Observe evaluates the snapshot and returns the destination to navigate to,
// or [DestStay] when the decision matches the current location.
func (g *Guard) Observe(s Snapshot) Destination {
	want := Decide(s)

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.located && g.location == want {
		return DestStay
	}
	g.located = true
	g.location = want
	return want
}

// Location returns the currently rendered destination and whether any
// navigation happened yet.
func (g *Guard) Location() (Destination, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.location, g.located
}

// RunGuard subscribes a fresh [Guard] to this Client's session state and
// invokes navigate for every location change, starting with the current
// snapshot, until ctx is done. The decision re-runs on every state change —
// login, logout, bootstrap completion — not just once.
func (c *Client) RunGuard(ctx context.Context, navigate NavigateFunc) error {
	if c == nil || c.state == nil {
		return ErrClientNotReady
	}
	if navigate == nil {
		return ErrClientNotReady
	}

	guard := NewGuard()
	updates, cancel := c.Subscribe()
	defer cancel()

	dispatch := func(snap Snapshot) {
		dest := guard.Observe(snap)
		if dest == DestStay {
			c.metricInc(MetricNavigationSuppressed)
			return
		}
		c.metricInc(MetricNavigationEmitted)
		c.emitAudit(ctx, EventNavigate, true, snap.Email, snap.Role, nil, func() map[string]string {
			return map[string]string{"destination": dest.String()}
		})
		navigate(dest)
	}

	dispatch(c.Current())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case snap := <-updates:
			dispatch(snap)
		}
	}
}
