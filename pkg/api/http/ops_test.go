package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/aescanero/fargate-hello/internal/application/health"
	promadapter "github.com/aescanero/fargate-hello/pkg/adapters/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func newTestOpsServer(monitor *health.Monitor, metrics http.Handler) *OpsServer {
	return NewOpsServer(&OpsConfig{
		Port:     0,
		Timeouts: testTimeouts(),
		Monitor:  monitor,
		Metrics:  metrics,
		Logger:   zap.NewNop(),
	})
}

func TestHealthReflectsMonitor(t *testing.T) {
	monitor := health.NewMonitor("v-test", zap.NewNop())
	o := newTestOpsServer(monitor, nil)

	w := doRequest(o.Handler(), http.MethodGet, "/health", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status before serving = %d, want 503", w.Code)
	}

	monitor.SetServing(true)

	w = doRequest(o.Handler(), http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status while serving = %d, want 200", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "healthy" || body["version"] != "v-test" {
		t.Errorf("body = %v", body)
	}
	if _, err := time.Parse(time.RFC3339, body["timestamp"].(string)); err != nil {
		t.Errorf("timestamp not RFC3339: %v", err)
	}

	monitor.SetServing(false)

	w = doRequest(o.Handler(), http.MethodGet, "/health", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status after drain = %d, want 503", w.Code)
	}
}

func TestOpsMetricsFromSiteTraffic(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := promadapter.NewCollector(reg)

	site := newTestServer(collector)
	ops := newTestOpsServer(health.NewMonitor("v-test", zap.NewNop()), promadapter.Handler(reg))

	doRequest(site.Handler(), http.MethodGet, "/", nil)
	doRequest(site.Handler(), http.MethodGet, "/missing", nil)

	w := doRequest(ops.Handler(), http.MethodGet, "/metrics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", w.Code)
	}

	body := w.Body.String()
	for _, want := range []string{
		`hello_http_requests_total{method="GET",route="/",status="200"} 1`,
		`hello_http_requests_total{method="GET",route="unmatched",status="404"} 1`,
		"hello_http_requests_in_flight 0",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %q", want)
		}
	}
}

func TestOpsDoesNotServePage(t *testing.T) {
	o := newTestOpsServer(health.NewMonitor("v-test", zap.NewNop()), nil)

	w := doRequest(o.Handler(), http.MethodGet, "/", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("GET / on ops status = %d, want 404", w.Code)
	}
}
