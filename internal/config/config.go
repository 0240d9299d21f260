package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the demo website
type Config struct {
	// Server configuration
	HTTPPort int    `env:"HELLO_HTTP_PORT" envDefault:"8080"`
	OpsPort  int    `env:"HELLO_OPS_PORT" envDefault:"9100"`
	GRPCPort int    `env:"HELLO_GRPC_PORT" envDefault:"0"` // 0 disables the gRPC health listener
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Timeouts
	Timeouts TimeoutConfig
}

// TimeoutConfig holds the HTTP server and shutdown timeouts
type TimeoutConfig struct {
	ReadHeader time.Duration `env:"TIMEOUT_READ_HEADER" envDefault:"5s"`
	Read       time.Duration `env:"TIMEOUT_READ" envDefault:"10s"`
	Write      time.Duration `env:"TIMEOUT_WRITE" envDefault:"10s"`
	Idle       time.Duration `env:"TIMEOUT_IDLE" envDefault:"60s"`
	Shutdown   time.Duration `env:"TIMEOUT_SHUTDOWN" envDefault:"15s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate server ports
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if c.OpsPort < 1 || c.OpsPort > 65535 {
		return fmt.Errorf("invalid ops port: %d", c.OpsPort)
	}
	if c.GRPCPort < 0 || c.GRPCPort > 65535 {
		return fmt.Errorf("invalid gRPC port: %d", c.GRPCPort)
	}
	if c.HTTPPort == c.OpsPort {
		return fmt.Errorf("HTTP and ops ports must differ: %d", c.HTTPPort)
	}
	if c.GRPCEnabled() && (c.GRPCPort == c.HTTPPort || c.GRPCPort == c.OpsPort) {
		return fmt.Errorf("gRPC port %d collides with another listener", c.GRPCPort)
	}

	// Validate timeouts
	timeouts := map[string]time.Duration{
		"read header": c.Timeouts.ReadHeader,
		"read":        c.Timeouts.Read,
		"write":       c.Timeouts.Write,
		"idle":        c.Timeouts.Idle,
		"shutdown":    c.Timeouts.Shutdown,
	}
	for name, d := range timeouts {
		if d <= 0 {
			return fmt.Errorf("%s timeout must be positive, got %s", name, d)
		}
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// GRPCEnabled reports whether the gRPC health listener should be started
func (c *Config) GRPCEnabled() bool {
	return c.GRPCPort != 0
}

// GetHTTPAddr returns the site server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// GetOpsAddr returns the ops (health, metrics) server address
func (c *Config) GetOpsAddr() string {
	return fmt.Sprintf(":%d", c.OpsPort)
}

// GetGRPCAddr returns the gRPC health server address
func (c *Config) GetGRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}
