package prometheus

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRequest("GET", "/", 200, 2*time.Millisecond)
	c.RecordRequest("GET", "/", 200, 3*time.Millisecond)
	c.RecordRequest("GET", "", 404, time.Millisecond)

	if got := testutil.ToFloat64(c.requestsTotal.WithLabelValues("GET", "/", "200")); got != 2 {
		t.Errorf("requests{route=/} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.requestsTotal.WithLabelValues("GET", UnmatchedRoute, "404")); got != 1 {
		t.Errorf("requests{route=unmatched} = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(c.requestDuration); got != 2 {
		t.Errorf("duration series = %d, want 2", got)
	}
}

func TestInFlight(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.IncInFlight()
	c.IncInFlight()
	c.DecInFlight()

	if got := testutil.ToFloat64(c.requestsInFlight); got != 1 {
		t.Errorf("in flight = %v, want 1", got)
	}
}

func TestHandlerExposesSeries(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.SetBuildInfo("v1.2.3", "now")
	c.RecordRequest("GET", "/", 200, time.Millisecond)

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET metrics: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	for _, want := range []string{
		`hello_build_info{build_time="now",version="v1.2.3"} 1`,
		`hello_http_requests_total{method="GET",route="/",status="200"} 1`,
		"hello_http_request_duration_seconds_bucket",
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("exposition missing %q", want)
		}
	}
}
