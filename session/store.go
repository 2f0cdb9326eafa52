package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrStoreUnavailable is returned when the backing store cannot be reached
// or answers with a transport-level failure.
var ErrStoreUnavailable = errors.New("session store unavailable")

// Fixed keys of the persisted session record. The "@" prefix is part of the
// on-disk contract and must survive migrations unchanged.
const (
	KeyToken  = "@token"
	KeyRole   = "@role"
	KeyName   = "@name"
	KeyEmail  = "@email"
	KeyDevice = "@device"
)

// Record is the durable slice of a session: exactly the fields written by a
// successful login and read back by the bootstrapper. Empty strings mean the
// field is absent.
type Record struct {
	Token string
	Role  string
	Name  string
	Email string
}

// Empty reports whether the record carries nothing worth restoring.
func (r Record) Empty() bool {
	return r.Token == "" && r.Role == "" && r.Name == "" && r.Email == ""
}

// Store is a Redis-backed persisted session store scoped by key prefix and
// profile, so several app profiles can share one backing instance without
// leaking sessions into each other.
type Store struct {
	redis   redis.UniversalClient
	prefix  string
	profile string
}

// NewStore creates a Store. prefix sets the key namespace ("fp" when empty);
// profile isolates independent sign-ins ("default" when empty).
func NewStore(client redis.UniversalClient, prefix, profile string) *Store {
	if prefix == "" {
		prefix = "fp"
	}
	if profile == "" {
		profile = "default"
	}
	return &Store{
		redis:   client,
		prefix:  prefix,
		profile: profile,
	}
}

func (s *Store) key(field string) string {
	return s.prefix + ":" + s.profile + ":" + field
}

// Get reads one field. Absent keys report ok=false with a nil error; only
// transport failures are errors.
func (s *Store) Get(ctx context.Context, field string) (string, bool, error) {
	value, err := s.redis.Get(ctx, s.key(field)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return value, true, nil
}

// Set writes one field with no expiry; persisted session fields survive until
// logout removes them.
func (s *Store) Set(ctx context.Context, field, value string) error {
	if err := s.redis.Set(ctx, s.key(field), value, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Clear removes one field. Clearing an absent key is not an error.
func (s *Store) Clear(ctx context.Context, field string) error {
	if err := s.redis.Del(ctx, s.key(field)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// LoadRecord reads all session fields in one pipelined round-trip. Fields
// that are absent come back empty; a first launch yields the zero Record.
func (s *Store) LoadRecord(ctx context.Context) (Record, error) {
	pipe := s.redis.Pipeline()
	tokenCmd := pipe.Get(ctx, s.key(KeyToken))
	roleCmd := pipe.Get(ctx, s.key(KeyRole))
	nameCmd := pipe.Get(ctx, s.key(KeyName))
	emailCmd := pipe.Get(ctx, s.key(KeyEmail))

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return Record{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var rec Record
	for _, f := range []struct {
		cmd *redis.StringCmd
		dst *string
	}{
		{tokenCmd, &rec.Token},
		{roleCmd, &rec.Role},
		{nameCmd, &rec.Name},
		{emailCmd, &rec.Email},
	} {
		value, err := f.cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return Record{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		*f.dst = value
	}

	return rec, nil
}

// SaveRecord persists a full record atomically. Empty fields are deleted
// rather than written, so a record without a role cannot leave a stale role
// behind. The multi-key write is transactional: a crash mid-login can never
// persist a token without its companion fields.
func (s *Store) SaveRecord(ctx context.Context, rec Record) error {
	_, err := s.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, f := range []struct {
			field string
			value string
		}{
			{KeyToken, rec.Token},
			{KeyRole, rec.Role},
			{KeyName, rec.Name},
			{KeyEmail, rec.Email},
		} {
			if f.value == "" {
				pipe.Del(ctx, s.key(f.field))
				continue
			}
			pipe.Set(ctx, s.key(f.field), f.value, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// ClearRecord deletes every session field in one transactional round-trip.
// The device identity is kept; it belongs to the install, not the session.
func (s *Store) ClearRecord(ctx context.Context) error {
	_, err := s.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx,
			s.key(KeyToken),
			s.key(KeyRole),
			s.key(KeyName),
			s.key(KeyEmail),
		)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// EnsureDeviceID returns the stable per-install identifier, creating it on
// first use. SetNX makes concurrent first launches converge on one value.
func (s *Store) EnsureDeviceID(ctx context.Context) (string, error) {
	key := s.key(KeyDevice)

	candidate := uuid.NewString()
	if err := s.redis.SetNX(ctx, key, candidate, 0).Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	id, err := s.redis.Get(ctx, key).Result()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return id, nil
}

// Ping returns a point-in-time availability check and its latency.
func (s *Store) Ping(ctx context.Context) (time.Duration, error) {
	start := time.Now()
	if err := s.redis.Ping(ctx).Err(); err != nil {
		return time.Since(start), fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return time.Since(start), nil
}
