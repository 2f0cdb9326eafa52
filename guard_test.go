package fitpair

import (
	"context"
	"errors"
	"testing"

	"github.com/fitpair/fitpair/authapi"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want Destination
	}{
		{"loading", Snapshot{Loading: true}, DestLoading},
		{"loading outranks token", Snapshot{Token: "T1", Role: RoleStudent, Loading: true}, DestLoading},
		{"signed out", Snapshot{}, DestSignIn},
		{"student", Snapshot{Token: "T1", Role: RoleStudent}, DestMemberArea},
		{"instructor", Snapshot{Token: "T1", Role: RoleInstructor}, DestCoachArea},
		{"token without role", Snapshot{Token: "T1"}, DestSignIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.snap); got != tt.want {
				t.Fatalf("Decide(%+v) = %s, want %s", tt.snap, got, tt.want)
			}
		})
	}
}

func TestGuardFirstObservationAlwaysNavigates(t *testing.T) {
	guard := NewGuard()

	if got := guard.Observe(Snapshot{Loading: true}); got != DestLoading {
		t.Fatalf("expected loading, got %s", got)
	}
	if loc, ok := guard.Location(); !ok || loc != DestLoading {
		t.Fatalf("location not tracked: %s ok=%v", loc, ok)
	}
}

func TestGuardSuppressesRepeatDecisions(t *testing.T) {
	guard := NewGuard()
	snap := Snapshot{Token: "T1", Role: RoleStudent}

	if got := guard.Observe(snap); got != DestMemberArea {
		t.Fatalf("expected member area, got %s", got)
	}
	for i := 0; i < 3; i++ {
		if got := guard.Observe(snap); got != DestStay {
			t.Fatalf("repeat observation navigated to %s", got)
		}
	}

	// a real state change navigates again
	if got := guard.Observe(Snapshot{}); got != DestSignIn {
		t.Fatalf("expected sign-in, got %s", got)
	}
}

func TestRunGuardDrivesTheSessionLifecycle(t *testing.T) {
	_, rdb := newTestRedis(t)
	frag := authapi.Fragment{Token: "T1", Role: RoleStudent, Name: "Ada", Email: "ada@example.com"}
	client := newTestClient(t, rdb, staticBackend("ada@example.com", "pw", frag))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	navs := make(chan Destination, 16)
	done := make(chan error, 1)
	go func() {
		done <- client.RunGuard(ctx, func(dest Destination) { navs <- dest })
	}()

	if got := waitNav(t, navs); got != DestLoading {
		t.Fatalf("expected loading first, got %s", got)
	}

	if _, err := client.Bootstrap(ctx); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	if got := waitNav(t, navs); got != DestSignIn {
		t.Fatalf("expected sign-in after cold bootstrap, got %s", got)
	}

	if _, err := client.Login(ctx, "ada@example.com", "pw"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if got := waitNav(t, navs); got != DestMemberArea {
		t.Fatalf("expected member area after login, got %s", got)
	}
	expectNoNav(t, navs)

	if err := client.Logout(ctx); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if got := waitNav(t, navs); got != DestSignIn {
		t.Fatalf("expected sign-in after logout, got %s", got)
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunGuardRoutesInstructorsToCoachArea(t *testing.T) {
	_, rdb := newTestRedis(t)
	frag := authapi.Fragment{Token: "T2", Role: RoleInstructor, Email: "c@x.io"}
	client := newTestClient(t, rdb, staticBackend("c@x.io", "pw", frag))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// bootstrap and login settle before the guard starts; it must pick up
	// the current state, not wait for the next change
	if _, err := client.Bootstrap(ctx); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	if _, err := client.Login(ctx, "c@x.io", "pw"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	navs := make(chan Destination, 16)
	go func() { _ = client.RunGuard(ctx, func(dest Destination) { navs <- dest }) }()

	if got := waitNav(t, navs); got != DestCoachArea {
		t.Fatalf("expected coach area, got %s", got)
	}
}

func TestRunGuardCountsNavigations(t *testing.T) {
	_, rdb := newTestRedis(t)
	client := newTestClient(t, rdb, staticBackend("a@b.co", "pw", authapi.Fragment{}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	navs := make(chan Destination, 16)
	go func() { _ = client.RunGuard(ctx, func(dest Destination) { navs <- dest }) }()

	waitNav(t, navs) // loading
	if _, err := client.Bootstrap(ctx); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	waitNav(t, navs) // sign-in

	counters := client.MetricsSnapshot().Counters
	if counters[MetricNavigationEmitted] != 2 {
		t.Fatalf("expected 2 emitted navigations, got %d", counters[MetricNavigationEmitted])
	}
}

func TestRunGuardRequiresNavigate(t *testing.T) {
	_, rdb := newTestRedis(t)
	client := newTestClient(t, rdb, staticBackend("a@b.co", "pw", authapi.Fragment{}))

	if err := client.RunGuard(context.Background(), nil); !errors.Is(err, ErrClientNotReady) {
		t.Fatalf("expected ErrClientNotReady, got %v", err)
	}
}

func TestDestinationString(t *testing.T) {
	tests := map[Destination]string{
		DestStay:       "stay",
		DestLoading:    "loading",
		DestSignIn:     "sign-in",
		DestMemberArea: "member-area",
		DestCoachArea:  "coach-area",
	}
	for dest, want := range tests {
		if got := dest.String(); got != want {
			t.Fatalf("String(%d) = %q, want %q", dest, got, want)
		}
	}
}
