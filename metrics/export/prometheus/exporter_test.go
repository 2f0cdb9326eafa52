package prometheus

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	fitpair "github.com/fitpair/fitpair"
)

type fakeSource struct {
	counters map[fitpair.MetricID]uint64
	dropped  uint64
}

func (f *fakeSource) MetricsSnapshot() fitpair.MetricsSnapshot {
	return fitpair.MetricsSnapshot{Counters: f.counters}
}

func (f *fakeSource) AuditDropped() uint64 {
	return f.dropped
}

func TestRender(t *testing.T) {
	exporter := NewExporterFromSource(&fakeSource{
		counters: map[fitpair.MetricID]uint64{
			fitpair.MetricLoginSuccess:       3,
			fitpair.MetricNavigationEmitted:  7,
			fitpair.MetricBootstrapCompleted: 1,
		},
		dropped: 2,
	})

	out := exporter.Render()

	for _, want := range []string{
		"# TYPE fitpair_login_success_total counter",
		"fitpair_login_success_total 3",
		"fitpair_navigation_emitted_total 7",
		"fitpair_bootstrap_completed_total 1",
		"fitpair_login_failure_total 0",
		"fitpair_audit_dropped_total 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderEveryCounterHasHelpAndType(t *testing.T) {
	out := NewExporterFromSource(&fakeSource{}).Render()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines)%3 != 0 {
		t.Fatalf("expected HELP/TYPE/value triples, got %d lines", len(lines))
	}
	for i := 0; i < len(lines); i += 3 {
		if !strings.HasPrefix(lines[i], "# HELP ") {
			t.Fatalf("line %d is not a HELP line: %q", i, lines[i])
		}
		if !strings.HasPrefix(lines[i+1], "# TYPE ") {
			t.Fatalf("line %d is not a TYPE line: %q", i+1, lines[i+1])
		}
	}
}

func TestHandler(t *testing.T) {
	srv := httptest.NewServer(NewExporterFromSource(&fakeSource{}).Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("unexpected content type %q", ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !strings.Contains(string(body), "fitpair_logout_total 0") {
		t.Fatalf("unexpected body:\n%s", body)
	}
}
