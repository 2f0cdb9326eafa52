package fitpair

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/fitpair/fitpair/authapi"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return mr, rdb
}

// fakeBackend is an in-process auth backend with per-test behavior.
type fakeBackend struct {
	login func(ctx context.Context, email, password string) (*authapi.Fragment, error)
}

func (f *fakeBackend) Login(ctx context.Context, email, password string) (*authapi.Fragment, error) {
	return f.login(ctx, email, password)
}

// staticBackend accepts exactly one credential pair and returns a fixed
// session fragment for it.
func staticBackend(email, password string, frag authapi.Fragment) *fakeBackend {
	return &fakeBackend{
		login: func(_ context.Context, gotEmail, gotPassword string) (*authapi.Fragment, error) {
			if gotEmail != email || gotPassword != password {
				return nil, authapi.ErrInvalidCredentials
			}
			out := frag
			return &out, nil
		},
	}
}

func newTestClient(t *testing.T, rdb redis.UniversalClient, backend authapi.Backend) *Client {
	t.Helper()

	client, err := New().
		WithRedis(rdb).
		WithBackend(backend).
		Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	t.Cleanup(client.Close)

	return client
}

// captureSink collects audit events on a channel for assertions.
type captureSink struct {
	events chan AuditEvent
}

func newCaptureSink(buffer int) *captureSink {
	if buffer <= 0 {
		buffer = 16
	}
	return &captureSink{events: make(chan AuditEvent, buffer)}
}

func (s *captureSink) Emit(_ context.Context, event AuditEvent) {
	select {
	case s.events <- event:
	default:
	}
}

func (s *captureSink) waitFor(t *testing.T, eventType string) AuditEvent {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case event := <-s.events:
			if event.EventType == eventType {
				return event
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %q audit event", eventType)
		}
	}
}

func waitNav(t *testing.T, navs <-chan Destination) Destination {
	t.Helper()

	select {
	case dest := <-navs:
		return dest
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a navigation")
		return DestStay
	}
}

func expectNoNav(t *testing.T, navs <-chan Destination) {
	t.Helper()

	select {
	case dest := <-navs:
		t.Fatalf("unexpected navigation to %s", dest)
	case <-time.After(100 * time.Millisecond):
	}
}
