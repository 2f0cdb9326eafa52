package flows

import (
	"context"

	"github.com/fitpair/fitpair/internal/state"
	"github.com/fitpair/fitpair/session"
)

// BootstrapMetrics carries the metric IDs the bootstrap flow increments.
type BootstrapMetrics struct {
	Completed     int
	StorageError  int
	RoleDiscarded int
}

// BootstrapEvents carries the audit event names the bootstrap flow emits.
type BootstrapEvents struct {
	Complete      string
	RoleDiscarded string
}

// BootstrapDeps captures the bootstrap flow's dependencies.
type BootstrapDeps struct {
	Common

	LoadRecord    func(ctx context.Context) (session.Record, error)
	ClearRole     func(ctx context.Context) error
	NormalizeRole func(raw string) (string, bool)

	Metrics BootstrapMetrics
	Events  BootstrapEvents
}

// RunBootstrap reconciles the persisted session record into in-memory state
// and releases the loading latch. The algorithm is deliberately rigid:
//
//  1. read the persisted record (a failure degrades to an empty record)
//  2. trust the token as-is
//  3. trust the role only with a token present AND inside the enumeration;
//     a corrupt persisted role is discarded and best-effort cleared
//  4. publish the result as ONE combined snapshot with Loading=false
//
// Step 4 runs on every path, including storage failure. Nothing in this flow
// may leave the loading latch stuck — that is the single most important
// failure property of the client.
func RunBootstrap(ctx context.Context, deps BootstrapDeps) state.Snapshot {
	deps.fill()
	if deps.NormalizeRole == nil {
		deps.NormalizeRole = func(string) (string, bool) { return "", false }
	}

	var rec session.Record
	if deps.LoadRecord != nil {
		loaded, err := deps.LoadRecord(ctx)
		if err != nil {
			deps.MetricInc(deps.Metrics.StorageError)
			deps.Warn("bootstrap: persisted session unreadable, starting signed out", "error", err)
		} else {
			rec = loaded
		}
	}

	next := state.Snapshot{Loading: false}
	if rec.Token != "" {
		next.Token = rec.Token
		next.Name = rec.Name
		next.Email = rec.Email
	}

	if rec.Role != "" {
		normalized, ok := deps.NormalizeRole(rec.Role)
		if ok && next.Token != "" {
			next.Role = normalized
		} else {
			deps.MetricInc(deps.Metrics.RoleDiscarded)
			deps.EmitAudit(ctx, deps.Events.RoleDiscarded, false, rec.Email, "", nil, func() map[string]string {
				return map[string]string{"stored_role": rec.Role, "has_token": boolString(rec.Token != "")}
			})
			if deps.ClearRole != nil {
				if err := deps.ClearRole(ctx); err != nil {
					deps.Warn("bootstrap: could not clear discarded role", "error", err)
				}
			}
		}
	}

	// A login that won the race against this bootstrap already holds newer
	// state than storage does; keep it and only release the latch.
	if cur := deps.Current(); cur.Authenticated() && cur.Token != next.Token {
		next = cur
		next.Loading = false
	}

	snap := deps.Replace(next)

	deps.MetricInc(deps.Metrics.Completed)
	deps.EmitAudit(ctx, deps.Events.Complete, true, snap.Email, snap.Role, nil, func() map[string]string {
		return map[string]string{"authenticated": boolString(snap.Authenticated())}
	})

	return snap
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
