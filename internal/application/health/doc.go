// Package health tracks whether the process is ready to receive traffic.
//
// The Monitor starts in the not-serving state. The entrypoint marks it serving
// once every listener is up and flips it back before shutdown begins, so that
// load balancer probes drain the task before connections are closed.
package health
