package database

import (
	"fmt"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/meta-model/internal/domain/port/core"
)

// ConnectionPoolMetrics tracks database connection pool metrics
type ConnectionPoolMetrics struct {
	OpenConnections    int
	IdleConnections    int
	MaxOpenConnections int
	InUse              int
	WaitCount          int64
	WaitDuration       time.Duration
	MaxIdleClosed      int64
	MaxLifetimeClosed  int64
}

// ConnectionPoolMonitor periodically samples the pool of every registered connection
type ConnectionPoolMonitor struct {
	connections  *Connections
	logger       coreport.Logger
	metricsCache map[string]ConnectionPoolMetrics
	mutex        sync.RWMutex
	stopChan     chan struct{}
	stopOnce     sync.Once
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(connections *Connections, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		connections: connections,
		logger:      logger,
		stopChan:    make(chan struct{}),
	}
}

// Start collects metrics once, then every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) error {
	if err := m.collectMetrics(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := m.collectMetrics(); err != nil {
					m.logger.Error("Failed to collect connection pool metrics", map[string]any{
						"error": err.Error(),
					})
				}
			case <-m.stopChan:
				return
			}
		}
	}()

	return nil
}

// Stop stops the monitoring; it may be called more than once
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

// GetMetrics returns a copy of the last collected metrics keyed by connection name
func (m *ConnectionPoolMonitor) GetMetrics() map[string]ConnectionPoolMetrics {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	metrics := make(map[string]ConnectionPoolMetrics, len(m.metricsCache))
	for name, metric := range m.metricsCache {
		metrics[name] = metric
	}
	return metrics
}

func (m *ConnectionPoolMonitor) collectMetrics() error {
	collected := make(map[string]ConnectionPoolMetrics)

	for _, name := range m.connections.Names() {
		db, err := m.connections.Connection(name)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get database connection %s: %w", name, err)
		}

		stats := sqlDB.Stats()
		collected[name] = ConnectionPoolMetrics{
			OpenConnections:    stats.OpenConnections,
			IdleConnections:    stats.Idle,
			MaxOpenConnections: stats.MaxOpenConnections,
			InUse:              stats.InUse,
			WaitCount:          stats.WaitCount,
			WaitDuration:       stats.WaitDuration,
			MaxIdleClosed:      stats.MaxIdleClosed,
			MaxLifetimeClosed:  stats.MaxLifetimeClosed,
		}

		threshold := float64(stats.MaxOpenConnections) * 0.8
		if stats.MaxOpenConnections > 0 && float64(stats.InUse) > threshold {
			m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
				"connection": name,
				"in_use":     stats.InUse,
				"max_open":   stats.MaxOpenConnections,
				"idle":       stats.Idle,
				"wait_count": stats.WaitCount,
				"wait_time":  stats.WaitDuration.String(),
			})
		}
	}

	m.mutex.Lock()
	m.metricsCache = collected
	m.mutex.Unlock()
	return nil
}
