// Package http provides the HTTP listeners.
//
// The site server exposes exactly one route:
//   - GET / returns the static demo page
//
// Everything else falls through to gin's default 404. Operational endpoints
// live on the separate ops server:
//   - Health checks
//   - Prometheus metrics
package http
