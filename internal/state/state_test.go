package state

import (
	"testing"

	"github.com/fitpair/fitpair/role"
)

func TestNewStoreStartsLoading(t *testing.T) {
	s := NewStore()

	cur := s.Current()
	if !cur.Loading {
		t.Fatal("expected Loading latched on at start")
	}
	if cur.Authenticated() || cur.Role != "" {
		t.Fatalf("expected empty pre-bootstrap snapshot, got %+v", cur)
	}
}

func TestReplaceDiscardsRoleWithoutToken(t *testing.T) {
	s := NewStore()

	got := s.Replace(Snapshot{Role: role.Student})
	if got.Role != "" {
		t.Fatalf("role without token survived: %+v", got)
	}
	if s.Current().Role != "" {
		t.Fatal("sanitized role leaked into current snapshot")
	}
}

func TestReplaceDiscardsUnknownRole(t *testing.T) {
	s := NewStore()

	got := s.Replace(Snapshot{Token: "T1", Role: "admin"})
	if got.Role != "" {
		t.Fatalf("unknown role survived: %+v", got)
	}
	if got.Token != "T1" {
		t.Fatal("token must survive role sanitization")
	}
}

func TestReplaceNormalizesRoleCase(t *testing.T) {
	s := NewStore()

	got := s.Replace(Snapshot{Token: "T1", Role: " Student "})
	if got.Role != role.Student {
		t.Fatalf("expected normalized role, got %q", got.Role)
	}
}

func TestLoadingLatchesOffOnce(t *testing.T) {
	s := NewStore()

	s.Replace(Snapshot{Loading: false})
	if s.Current().Loading {
		t.Fatal("expected Loading released")
	}

	// a later write cannot re-latch it
	got := s.Replace(Snapshot{Token: "T1", Role: role.Student, Loading: true})
	if got.Loading {
		t.Fatal("Loading went back to true")
	}
	if s.Current().Loading {
		t.Fatal("Loading went back to true in current snapshot")
	}
}

func TestLoadingCanStayOnBeforeRelease(t *testing.T) {
	s := NewStore()

	// a login that lands before bootstrap finishes keeps the latch on
	got := s.Replace(Snapshot{Token: "T1", Role: role.Student, Loading: true})
	if !got.Loading {
		t.Fatal("expected Loading preserved before first release")
	}
}

func TestSubscribeReceivesInstalledSnapshots(t *testing.T) {
	s := NewStore()

	ch, cancel := s.Subscribe()
	defer cancel()

	s.Replace(Snapshot{Token: "T1", Role: role.Instructor, Loading: true})

	got := <-ch
	if got.Token != "T1" || got.Role != role.Instructor {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
}

func TestSubscribeCollapsesToLatest(t *testing.T) {
	s := NewStore()

	ch, cancel := s.Subscribe()
	defer cancel()

	// nobody is reading; a burst of writes must not block
	s.Replace(Snapshot{Token: "T1", Role: role.Student, Loading: true})
	s.Replace(Snapshot{Token: "T2", Role: role.Student, Loading: true})
	s.Replace(Snapshot{Token: "T3", Role: role.Student, Loading: true})

	got := <-ch
	if got.Token != "T3" {
		t.Fatalf("expected latest snapshot, got token %q", got.Token)
	}
}

func TestCancelledSubscriberStopsReceiving(t *testing.T) {
	s := NewStore()

	ch, cancel := s.Subscribe()
	cancel()

	s.Replace(Snapshot{Token: "T1", Role: role.Student, Loading: true})

	select {
	case snap := <-ch:
		t.Fatalf("cancelled subscriber received %+v", snap)
	default:
	}
}

func TestAuthenticated(t *testing.T) {
	if (Snapshot{}).Authenticated() {
		t.Fatal("empty snapshot must not be authenticated")
	}
	if !(Snapshot{Token: "T1"}).Authenticated() {
		t.Fatal("snapshot with token must be authenticated")
	}
}
