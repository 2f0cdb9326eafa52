// Package prometheus renders fitpair session metrics in Prometheus text
// exposition format without depending on a Prometheus client library. The
// output is served by embedded debug endpoints or printed by the CLI.
package prometheus

import (
	"net/http"
	"strconv"
	"strings"

	fitpair "github.com/fitpair/fitpair"
)

type counterDef struct {
	id   fitpair.MetricID
	name string
	help string
}

var counterDefs = []counterDef{
	{fitpair.MetricLoginSuccess, "fitpair_login_success_total", "Logins that produced a live, persisted session."},
	{fitpair.MetricLoginFailure, "fitpair_login_failure_total", "Logins rejected by the backend or transport."},
	{fitpair.MetricLoginNotPersisted, "fitpair_login_not_persisted_total", "Logins whose durable write failed after the state write."},
	{fitpair.MetricBootstrapCompleted, "fitpair_bootstrap_completed_total", "Bootstrap runs that released the loading latch."},
	{fitpair.MetricStorageError, "fitpair_storage_error_total", "Persisted-store failures degraded to absent data."},
	{fitpair.MetricRoleDiscarded, "fitpair_role_discarded_total", "Persisted roles rejected as corrupt or token-less."},
	{fitpair.MetricLogout, "fitpair_logout_total", "Logout flows."},
	{fitpair.MetricNavigationEmitted, "fitpair_navigation_emitted_total", "Route guard decisions that changed the rendered area."},
	{fitpair.MetricNavigationSuppressed, "fitpair_navigation_suppressed_total", "Route guard decisions suppressed as idempotent."},
}

type metricsSource interface {
	MetricsSnapshot() fitpair.MetricsSnapshot
	AuditDropped() uint64
}

// Exporter renders a metrics source in Prometheus text exposition format.
type Exporter struct {
	source metricsSource
}

// NewExporter creates an Exporter reading from the given [fitpair.Client].
func NewExporter(client *fitpair.Client) *Exporter {
	return &Exporter{source: client}
}

// NewExporterFromSource creates an Exporter from a custom source.
func NewExporterFromSource(source metricsSource) *Exporter {
	return &Exporter{source: source}
}

// Handler returns an http.Handler serving the rendered metrics.
func (e *Exporter) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
		_, _ = w.Write([]byte(e.Render()))
	})
}

// Render writes the current counters in Prometheus text exposition format.
func (e *Exporter) Render() string {
	if e == nil || e.source == nil {
		return ""
	}

	snapshot := e.source.MetricsSnapshot()

	var b strings.Builder
	for _, def := range counterDefs {
		b.WriteString("# HELP ")
		b.WriteString(def.name)
		b.WriteString(" ")
		b.WriteString(def.help)
		b.WriteString("\n# TYPE ")
		b.WriteString(def.name)
		b.WriteString(" counter\n")
		b.WriteString(def.name)
		b.WriteString(" ")
		b.WriteString(strconv.FormatUint(snapshot.Counters[def.id], 10))
		b.WriteString("\n")
	}

	b.WriteString("# HELP fitpair_audit_dropped_total Audit events dropped under dispatcher backpressure.\n")
	b.WriteString("# TYPE fitpair_audit_dropped_total counter\n")
	b.WriteString("fitpair_audit_dropped_total ")
	b.WriteString(strconv.FormatUint(e.source.AuditDropped(), 10))
	b.WriteString("\n")

	return b.String()
}
