package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aescanero/fargate-hello/internal/application/health"
	"github.com/aescanero/fargate-hello/internal/config"
	"github.com/aescanero/fargate-hello/pkg/adapters/metrics/prometheus"
	"github.com/aescanero/fargate-hello/pkg/api/grpc"
	"github.com/aescanero/fargate-hello/pkg/api/http"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Version is set by build flags
	Version   = "dev"
	BuildTime = "unknown"
)

// shutdowner is implemented by every listener started from main
type shutdowner interface {
	Shutdown(ctx context.Context) error
}

type namedServer struct {
	name string
	srv  shutdowner
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting demo website",
		zap.String("version", Version),
		zap.String("build_time", BuildTime))

	metricsCollector := prometheus.NewCollector(promclient.DefaultRegisterer)
	metricsCollector.SetBuildInfo(Version, BuildTime)

	monitor := health.NewMonitor(Version, logger)

	// Initialize servers
	httpServer := http.NewServer(&http.Config{
		Port:     cfg.HTTPPort,
		Timeouts: cfg.Timeouts,
		Metrics:  metricsCollector,
		Logger:   logger,
	})

	opsServer := http.NewOpsServer(&http.OpsConfig{
		Port:     cfg.OpsPort,
		Timeouts: cfg.Timeouts,
		Monitor:  monitor,
		Metrics:  prometheus.Handler(promclient.DefaultGatherer),
		Logger:   logger,
	})

	var grpcServer *grpc.Server
	if cfg.GRPCEnabled() {
		grpcServer, err = grpc.NewServer(&grpc.Config{
			Port:    cfg.GRPCPort,
			Monitor: monitor,
			Logger:  logger,
		})
		if err != nil {
			logger.Fatal("failed to create gRPC server", zap.Error(err))
		}
	}

	// Start servers
	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	go func() {
		if err := opsServer.Start(); err != nil {
			logger.Fatal("ops server failed", zap.Error(err))
		}
	}()

	if grpcServer != nil {
		go func() {
			if err := grpcServer.Start(); err != nil {
				logger.Fatal("gRPC server failed", zap.Error(err))
			}
		}()
	}

	monitor.SetServing(true)

	logger.Info("demo website started",
		zap.Int("http_port", cfg.HTTPPort),
		zap.Int("ops_port", cfg.OpsPort),
		zap.Int("grpc_port", cfg.GRPCPort))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh

	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	// Fail probes first so the load balancer stops routing to this task
	monitor.SetServing(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.Shutdown)
	defer cancel()

	servers := []namedServer{
		{"HTTP", httpServer},
		{"ops", opsServer},
	}
	if grpcServer != nil {
		servers = append(servers, namedServer{"gRPC", grpcServer})
	}

	for _, s := range servers {
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(s.name+" server shutdown error", zap.Error(err))
		}
	}

	logger.Info("demo website shut down complete")
}

// initLogger initializes the logger based on log level
func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger
}
