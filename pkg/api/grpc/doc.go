// Package grpc exposes the standard grpc.health.v1 service for load balancers
// and orchestrators that probe over gRPC.
package grpc
