package flows

import (
	"context"

	"github.com/fitpair/fitpair/internal/state"
)

// EmitAuditFunc publishes one audit event. The metadata func is only invoked
// when a dispatcher is attached, so flows can build maps lazily.
type EmitAuditFunc func(ctx context.Context, eventType string, success bool, email, role string, err error, metadata func() map[string]string)

// Common holds the hooks every flow shares. Nil members are replaced with
// no-ops so flows never nil-check mid-algorithm.
type Common struct {
	Replace   func(state.Snapshot) state.Snapshot
	Current   func() state.Snapshot
	MetricInc func(int)
	EmitAudit EmitAuditFunc
	Warn      func(string, ...any)
}

func (c *Common) fill() {
	if c.Replace == nil {
		c.Replace = func(s state.Snapshot) state.Snapshot { return s }
	}
	if c.Current == nil {
		c.Current = func() state.Snapshot { return state.Snapshot{} }
	}
	if c.MetricInc == nil {
		c.MetricInc = func(int) {}
	}
	if c.EmitAudit == nil {
		c.EmitAudit = func(context.Context, string, bool, string, string, error, func() map[string]string) {}
	}
	if c.Warn == nil {
		c.Warn = func(string, ...any) {}
	}
}
