package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/meta-model/internal/domain/port/core"
	"github.com/amirhossein-jamali/meta-model/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/meta-model/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/meta-model/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/meta-model/internal/infrastructure/config"
	"gorm.io/gorm"
)

// Manager opens and owns every configured database connection
type Manager struct {
	configs       []*Config
	retryAttempts int
	retryDelay    time.Duration
	logger        coreport.Logger
	timeProvider  coreport.TimeProvider
	connections   *Connections
	opened        []*Connection
	monitor       *ConnectionPoolMonitor
}

// NewManager creates a new database manager from the application configuration
func NewManager(conf *config.Config, logger coreport.Logger, timeProvider coreport.TimeProvider) (*Manager, error) {
	morphKeyType, err := conf.DefaultMorphKeyType()
	if err != nil {
		return nil, err
	}
	return &Manager{
		configs:       NewConfigs(conf),
		retryAttempts: max(conf.Database.RetryAttempts, 1),
		retryDelay:    conf.Database.RetryDelay,
		logger:        logger,
		timeProvider:  timeProvider,
		connections:   NewConnections(conf.Database.Default, logger, WithMorphKeyType(morphKeyType)),
	}, nil
}

// Connect opens every configured connection, retrying each one before giving up
func (m *Manager) Connect(ctx context.Context) (*Connections, error) {
	for _, cfg := range m.configs {
		conn, err := m.connect(ctx, cfg)
		if err != nil {
			_ = m.Close()
			return nil, err
		}
		m.opened = append(m.opened, conn)
		m.connections.Add(cfg.Name, conn.DB, cfg.QueryTimeout)
	}

	m.monitor = NewConnectionPoolMonitor(m.connections, m.logger)
	if err := m.monitor.Start(30 * time.Second); err != nil {
		m.logger.Warn("Failed to start connection pool monitoring", map[string]any{"error": err.Error()})
	}
	return m.connections, nil
}

func (m *Manager) connect(ctx context.Context, cfg *Config) (*Connection, error) {
	m.logger.Info("Connecting to database", map[string]any{
		"connection": cfg.Name,
		"driver":     cfg.Driver,
		"host":       cfg.Host,
		"port":       cfg.Port,
		"name":       cfg.Database,
	})

	gormConfig := &gorm.Config{
		Logger: NewDatabaseLogger(m.logger.With(map[string]any{"connection": cfg.Name}), m.timeProvider, cfg.LogLevel),
		NowFunc: func() time.Time {
			return m.timeProvider.Now()
		},
	}

	var err error
	for attempt := 0; attempt < m.retryAttempts; attempt++ {
		if attempt > 0 {
			m.logger.Warn("Retrying database connection", map[string]any{
				"connection": cfg.Name,
				"attempt":    attempt + 1,
				"of":         m.retryAttempts,
				"delay":      m.retryDelay.String(),
			})
			select {
			case <-time.After(m.retryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		var conn *Connection
		conn, err = NewConnection(ctx, cfg, gormConfig)
		if err == nil {
			m.logger.Info("Successfully connected to database", map[string]any{
				"connection":     cfg.Name,
				"max_open_conns": cfg.MaxOpenConns,
				"max_idle_conns": cfg.MaxIdleConns,
				"query_timeout":  cfg.QueryTimeout.String(),
			})
			return conn, nil
		}

		m.logger.Error("Failed to connect to database", map[string]any{
			"connection": cfg.Name,
			"error":      err.Error(),
			"attempt":    attempt + 1,
		})
	}
	return nil, fmt.Errorf("failed to connect to database %s after %d attempts: %w", cfg.Name, m.retryAttempts, err)
}

// Connections returns the registry of opened connections
func (m *Manager) Connections() *Connections {
	return m.connections
}

// ModelRepository returns a model repository resolving each model's connection
func (m *Manager) ModelRepository() persistence.ModelRepository {
	return repository.NewModelRepository(m.connections, m.timeProvider, m.logger)
}

// CreateUnitOfWork creates a new UnitOfWork on the default connection
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.connections, m.logger, m.timeProvider)
}

// MigrationManager returns a migration manager keeping its records on the default connection
func (m *Manager) MigrationManager() (*migration.Manager, error) {
	db, err := m.connections.Connection("")
	if err != nil {
		return nil, err
	}
	repo := repository.NewMigrationVersionRepository(db, m.timeProvider, m.logger)
	return migration.NewManager(repo, m.connections, m.logger), nil
}

// PoolMetrics returns the last collected pool metrics per connection
func (m *Manager) PoolMetrics() map[string]ConnectionPoolMetrics {
	if m.monitor == nil {
		return nil
	}
	return m.monitor.GetMetrics()
}

// Close stops monitoring and closes every opened connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connections", nil)

	if m.monitor != nil {
		m.monitor.Stop()
		m.monitor = nil
	}

	var errs []error
	for _, conn := range m.opened {
		if err := conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", conn.Config.Name, err))
		}
	}
	m.opened = nil
	return errors.Join(errs...)
}
