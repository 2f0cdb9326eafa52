package fitpair

import (
	"context"
	"time"

	internalaudit "github.com/fitpair/fitpair/internal/audit"
)

// Audit event types emitted by the client.
const (
	// EventLoginSuccess marks a login that produced a session.
	EventLoginSuccess = "login_success"
	// EventLoginFailure marks a rejected or failed login attempt.
	EventLoginFailure = "login_failure"
	// EventBootstrapComplete marks the one-time release of the loading latch.
	EventBootstrapComplete = "bootstrap_complete"
	// EventRoleDiscarded marks a persisted role rejected during bootstrap.
	EventRoleDiscarded = "role_discarded"
	// EventLogout marks a logout flow, successful or not.
	EventLogout = "logout"
	// EventNavigate marks a route-guard decision that changed the rendered area.
	EventNavigate = "navigate"
)

// auditDispatcher stamps client-level context (timestamp, device identity)
// onto events before handing them to the internal dispatcher.
type auditDispatcher struct {
	dispatcher *internalaudit.Dispatcher
	deviceID   func() string
}

func newAuditDispatcher(cfg AuditConfig, sink AuditSink, deviceID func() string) *auditDispatcher {
	if deviceID == nil {
		deviceID = func() string { return "" }
	}
	return &auditDispatcher{
		dispatcher: internalaudit.NewDispatcher(internalaudit.Config{
			Enabled:    cfg.Enabled,
			BufferSize: cfg.BufferSize,
			DropIfFull: cfg.DropIfFull,
		}, sink),
		deviceID: deviceID,
	}
}

func (a *auditDispatcher) emit(
	ctx context.Context,
	eventType string,
	success bool,
	email, roleName string,
	err error,
	metadata func() map[string]string,
) {
	if a == nil || a.dispatcher == nil {
		return
	}

	event := internalaudit.Event{
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		Email:     email,
		Role:      roleName,
		DeviceID:  a.deviceID(),
		Success:   success,
	}
	if err != nil {
		event.Error = err.Error()
	}
	if metadata != nil {
		event.Metadata = metadata()
	}

	a.dispatcher.Emit(ctx, event)
}

func (a *auditDispatcher) Close() {
	if a == nil {
		return
	}
	a.dispatcher.Close()
}

func (a *auditDispatcher) Dropped() uint64 {
	if a == nil {
		return 0
	}
	return a.dispatcher.Dropped()
}
