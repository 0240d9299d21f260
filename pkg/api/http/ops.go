package http

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/aescanero/fargate-hello/internal/application/health"
	"github.com/aescanero/fargate-hello/internal/config"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OpsServer serves health and metrics on a listener separate from the site
type OpsServer struct {
	router  *gin.Engine
	server  *http.Server
	monitor *health.Monitor
	logger  *zap.Logger
}

// OpsConfig holds ops server configuration
type OpsConfig struct {
	Port     int
	Timeouts config.TimeoutConfig
	Monitor  *health.Monitor
	Metrics  http.Handler
	Logger   *zap.Logger
}

// NewOpsServer creates a new ops server
func NewOpsServer(cfg *OpsConfig) *OpsServer {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	o := &OpsServer{
		router:  router,
		monitor: cfg.Monitor,
		logger:  cfg.Logger,
	}

	router.GET("/health", o.handleHealth)
	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(cfg.Metrics))
	}

	o.server = newHTTPServer(cfg.Port, cfg.Timeouts, router)

	return o
}

// Handler returns the routed handler, mainly for tests
func (o *OpsServer) Handler() http.Handler {
	return o.router
}

// Start starts the ops server
func (o *OpsServer) Start() error {
	o.logger.Info("starting ops server", zap.String("addr", o.server.Addr))

	return serve(o.server, nil)
}

// Serve accepts connections on lis instead of binding the configured port
func (o *OpsServer) Serve(lis net.Listener) error {
	o.logger.Info("starting ops server", zap.String("addr", lis.Addr().String()))

	return serve(o.server, lis)
}

// Shutdown gracefully shuts down the ops server
func (o *OpsServer) Shutdown(ctx context.Context) error {
	if err := o.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown ops server: %w", err)
	}

	o.logger.Info("ops server shut down complete")
	return nil
}
