package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// UnmatchedRoute labels requests that did not hit a registered route
const UnmatchedRoute = "unmatched"

// Collector records HTTP metrics for the site listener
type Collector struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
	buildInfo        *prometheus.GaugeVec
}

// NewCollector creates a new Prometheus metrics collector registered with reg
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hello_http_requests_total",
				Help: "Total number of HTTP requests served",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hello_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"method", "route"},
		),
		requestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "hello_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),
		buildInfo: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "hello_build_info",
				Help: "Build information, always 1",
			},
			[]string{"version", "build_time"},
		),
	}
}

// SetBuildInfo publishes the binary version
func (c *Collector) SetBuildInfo(version, buildTime string) {
	c.buildInfo.WithLabelValues(version, buildTime).Set(1)
}

// RecordRequest records a completed request. An empty route is labelled UnmatchedRoute.
func (c *Collector) RecordRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = UnmatchedRoute
	}

	c.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// IncInFlight marks a request as started
func (c *Collector) IncInFlight() {
	c.requestsInFlight.Inc()
}

// DecInFlight marks a request as finished
func (c *Collector) DecInFlight() {
	c.requestsInFlight.Dec()
}

// Handler returns the exposition handler for the metrics gathered by g
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
