package grpc

import (
	"context"
	"fmt"
	"net"

	"github.com/aescanero/fargate-hello/internal/application/health"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// SiteService is the service name reported alongside the overall ("") status
const SiteService = "hello.Site"

// Server represents the gRPC health server
type Server struct {
	server   *grpc.Server
	listener net.Listener
	health   *grpchealth.Server
	logger   *zap.Logger
}

// Config holds gRPC server configuration
type Config struct {
	Port    int
	Monitor *health.Monitor
	Logger  *zap.Logger
}

// NewServer creates a new gRPC server bound to the configured port
func NewServer(cfg *Config) (*Server, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return nil, fmt.Errorf("failed to create listener: %w", err)
	}

	s := newServer(cfg)
	s.listener = listener

	return s, nil
}

// newServer builds the server without binding a listener
func newServer(cfg *Config) *Server {
	grpcServer := grpc.NewServer()
	healthServer := grpchealth.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	s := &Server{
		server: grpcServer,
		health: healthServer,
		logger: cfg.Logger,
	}

	s.setServing(cfg.Monitor.IsServing())
	cfg.Monitor.OnChange(s.setServing)

	return s
}

// setServing mirrors the monitor state into the health service
func (s *Server) setServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(SiteService, status)
}

// Start starts the gRPC server
func (s *Server) Start() error {
	return s.Serve(s.listener)
}

// Serve accepts connections on lis
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("starting gRPC server", zap.String("addr", lis.Addr().String()))

	if err := s.server.Serve(lis); err != nil && err != grpc.ErrServerStopped {
		return fmt.Errorf("failed to serve gRPC: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server, forcing it closed if ctx expires first
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down gRPC server")

	// Marks every service NOT_SERVING and ignores later updates.
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.server.Stop()
		<-done
		return fmt.Errorf("gRPC graceful stop interrupted: %w", ctx.Err())
	}

	s.logger.Info("gRPC server shut down complete")
	return nil
}
