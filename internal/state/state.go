// Package state holds the process-wide in-memory session snapshot and its
// observer fan-out. It is the single writable home of "what session do we
// currently have"; every screen-level decision reads from here.
package state

import (
	"sync"

	"github.com/fitpair/fitpair/role"
)

// Snapshot is the in-memory session record. Empty strings stand for absent
// values. Loading is true only between process start and the completion of
// the one-time bootstrap.
type Snapshot struct {
	Token   string
	Role    string
	Name    string
	Email   string
	Loading bool
}

// Authenticated reports whether the snapshot carries a token.
func (s Snapshot) Authenticated() bool {
	return s.Token != ""
}

// Store is an observable container for the current Snapshot. All mutation
// goes through Replace; observers receive whole snapshots, never partial
// field updates.
type Store struct {
	mu      sync.Mutex
	current Snapshot
	subs    map[uint64]chan Snapshot
	nextSub uint64
}

// NewStore creates a Store in the pre-bootstrap state: all fields absent,
// Loading latched on.
func NewStore() *Store {
	return &Store{
		current: Snapshot{Loading: true},
		subs:    make(map[uint64]chan Snapshot),
	}
}

// Current returns the snapshot as of now.
func (s *Store) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Replace installs next as the current snapshot in one atomic step and fans
// the sanitized result out to every subscriber. Two invariants are enforced
// on the way in regardless of caller:
//
//   - a role without a token is discarded (a role is never trusted alone)
//   - a role outside the enumeration is discarded
//   - Loading transitions true→false exactly once and never back
//
// The sanitized snapshot is returned.
func (s *Store) Replace(next Snapshot) Snapshot {
	if next.Token == "" {
		next.Role = ""
	} else if r, ok := role.Normalize(next.Role); ok {
		next.Role = r
	} else {
		next.Role = ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.current.Loading {
		next.Loading = false
	}
	s.current = next

	for _, ch := range s.subs {
		// Latest-wins per subscriber: a slow observer sees the newest
		// snapshot, not a backlog. Only Replace sends on these channels,
		// so the second send cannot block.
		select {
		case ch <- next:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- next
		}
	}

	return next
}

// Subscribe registers an observer. The returned channel carries every
// snapshot installed after the call (collapsed to latest under pressure).
// The cancel func unregisters and must be called exactly once.
func (s *Store) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++

	ch := make(chan Snapshot, 1)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}

	return ch, cancel
}
