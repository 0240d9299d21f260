package http

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/aescanero/fargate-hello/internal/config"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MetricsRecorder receives per-request observations from the site server
type MetricsRecorder interface {
	RecordRequest(method, route string, status int, duration time.Duration)
	IncInFlight()
	DecInFlight()
}

// Server represents the public site server
type Server struct {
	router *gin.Engine
	server *http.Server
	logger *zap.Logger
}

// Config holds HTTP server configuration
type Config struct {
	Port     int
	Timeouts config.TimeoutConfig
	Metrics  MetricsRecorder
	Logger   *zap.Logger
}

// NewServer creates a new site server
func NewServer(cfg *Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(cfg.Logger))
	if cfg.Metrics != nil {
		router.Use(requestMetrics(cfg.Metrics))
	}

	s := &Server{
		router: router,
		logger: cfg.Logger,
	}

	s.setupRoutes()

	s.server = newHTTPServer(cfg.Port, cfg.Timeouts, router)

	return s
}

// setupRoutes configures the site routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.HEAD("/", s.handleIndex)
}

// Handler returns the routed handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the site server
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	return serve(s.server, nil)
}

// Serve accepts connections on lis instead of binding the configured port
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("starting HTTP server", zap.String("addr", lis.Addr().String()))

	return serve(s.server, lis)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("HTTP server shut down complete")
	return nil
}

func newHTTPServer(port int, timeouts config.TimeoutConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
		ReadTimeout:       timeouts.Read,
		WriteTimeout:      timeouts.Write,
		IdleTimeout:       timeouts.Idle,
	}
}

// serve runs srv on lis, or on its own address when lis is nil.
// http.ErrServerClosed is a clean exit.
func serve(srv *http.Server, lis net.Listener) error {
	var err error
	if lis == nil {
		err = srv.ListenAndServe()
	} else {
		err = srv.Serve(lis)
	}

	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}
