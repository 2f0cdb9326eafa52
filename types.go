package fitpair

import (
	"io"

	internalaudit "github.com/fitpair/fitpair/internal/audit"
	"github.com/fitpair/fitpair/internal/state"
	"github.com/fitpair/fitpair/role"
)

// Snapshot is the authoritative in-memory session record: token, role,
// profile metadata, and the one-shot loading latch. Empty strings stand for
// absent values.
type Snapshot = state.Snapshot

// Canonical role values. The UI's "member"/"coach" labels never reach this
// layer; they are translated at the presentation boundary.
const (
	// RoleStudent is a user training under a coach.
	RoleStudent = role.Student
	// RoleInstructor is a coach managing students.
	RoleInstructor = role.Instructor
)

// ValidRole reports whether r is a member of the closed role enumeration.
func ValidRole(r string) bool {
	return role.Valid(r)
}

// AuditEvent is a structured session lifecycle record emitted by the client.
type AuditEvent = internalaudit.Event

// AuditSink receives [AuditEvent] values from the client's audit dispatcher.
type AuditSink = internalaudit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = internalaudit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes JSON-encoded events to an
// [io.Writer].
type JSONWriterSink = internalaudit.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] that writes to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}
