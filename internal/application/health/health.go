package health

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Monitor holds the serving state shared by the HTTP and gRPC probes
type Monitor struct {
	version   string
	startedAt time.Time
	logger    *zap.Logger

	serving atomic.Bool

	mu        sync.Mutex
	listeners []func(serving bool)
}

// Status represents the health status reported to probes
type Status struct {
	Serving   bool
	Version   string
	Uptime    time.Duration
	Timestamp time.Time
}

// NewMonitor creates a new health monitor in the not-serving state
func NewMonitor(version string, logger *zap.Logger) *Monitor {
	return &Monitor{
		version:   version,
		startedAt: time.Now(),
		logger:    logger,
	}
}

// OnChange registers fn to be called on every serving state transition.
// Callbacks run synchronously in the goroutine calling SetServing.
func (m *Monitor) OnChange(fn func(serving bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.listeners = append(m.listeners, fn)
}

// SetServing updates the serving state and notifies listeners on change
func (m *Monitor) SetServing(serving bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.serving.Swap(serving) == serving {
		return
	}

	m.logger.Info("serving state changed", zap.Bool("serving", serving))

	for _, fn := range m.listeners {
		fn(serving)
	}
}

// IsServing returns true if the process accepts traffic
func (m *Monitor) IsServing() bool {
	return m.serving.Load()
}

// GetStatus returns the current health status
func (m *Monitor) GetStatus() *Status {
	now := time.Now()

	return &Status{
		Serving:   m.IsServing(),
		Version:   m.version,
		Uptime:    now.Sub(m.startedAt),
		Timestamp: now,
	}
}
