// Package prometheus implements request metrics using the Prometheus client.
package prometheus
