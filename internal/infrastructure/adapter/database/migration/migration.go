package migration

import (
	"context"
	"fmt"
	"slices"

	errs "github.com/amirhossein-jamali/meta-model/internal/domain/error"
	"github.com/amirhossein-jamali/meta-model/internal/domain/metamodel"
	coreport "github.com/amirhossein-jamali/meta-model/internal/domain/port/core"
	"github.com/amirhossein-jamali/meta-model/internal/domain/port/persistence"
)

const (
	directionUp   = "up"
	directionDown = "down"
)

// Runnable is a schema change that can be applied and reverted
type Runnable interface {
	Up(ctx context.Context, builder metamodel.SchemaBuilder) error
	Down(ctx context.Context, builder metamodel.SchemaBuilder) error
}

// Factory builds a fresh Runnable for every run; migration instances are single-use
type Factory func() Runnable

// BuilderResolver hands out the schema builder of a named connection,
// the empty name selecting the default connection
type BuilderResolver interface {
	SchemaBuilder(connection string) (metamodel.SchemaBuilder, error)
}

// Status describes a registered migration
type Status struct {
	Name       string
	Connection string
	Applied    bool
	Batch      int
}

type entry struct {
	connection string
	factory    Factory
}

// Manager applies registered migrations in batches and rolls back the latest batch
type Manager struct {
	repo     persistence.MigrationRepository
	builders BuilderResolver
	logger   coreport.Logger
	names    []string
	entries  map[string]entry
}

// NewManager creates a new migration manager
func NewManager(repo persistence.MigrationRepository, builders BuilderResolver, logger coreport.Logger) *Manager {
	return &Manager{
		repo:     repo,
		builders: builders,
		logger:   logger,
		entries:  make(map[string]entry),
	}
}

// Register adds a migration run on the named connection. Migrations run in registration order.
func (m *Manager) Register(name, connection string, factory Factory) error {
	if _, ok := m.entries[name]; ok {
		return fmt.Errorf("%w: %s", errs.ErrDuplicateMigration, name)
	}
	m.names = append(m.names, name)
	m.entries[name] = entry{connection: connection, factory: factory}
	return nil
}

// MigrateAll applies every pending migration under the next batch number and
// returns the names applied
func (m *Manager) MigrateAll(ctx context.Context) ([]string, error) {
	if err := m.repo.EnsureStore(ctx); err != nil {
		return nil, err
	}

	applied, err := m.appliedBatches(ctx)
	if err != nil {
		return nil, err
	}

	var pending []string
	for _, name := range m.names {
		if _, ok := applied[name]; !ok {
			pending = append(pending, name)
		}
	}
	if len(pending) == 0 {
		m.logger.Info("Nothing to migrate", nil)
		return nil, nil
	}

	lastBatch, err := m.repo.LastBatch(ctx)
	if err != nil {
		return nil, err
	}
	batch := lastBatch + 1

	m.logger.Info("Starting database migrations", map[string]any{
		"batch":   batch,
		"pending": len(pending),
	})

	done := make([]string, 0, len(pending))
	for _, name := range pending {
		if err := m.run(ctx, name, directionUp); err != nil {
			return done, err
		}
		if err := m.repo.Record(ctx, name, batch); err != nil {
			return done, &errs.MigrationError{Migration: name, Direction: directionUp, Err: err}
		}
		done = append(done, name)
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"batch":    batch,
		"migrated": done,
	})
	return done, nil
}

// Rollback reverts the latest batch in reverse order and returns the names reverted
func (m *Manager) Rollback(ctx context.Context) ([]string, error) {
	if err := m.repo.EnsureStore(ctx); err != nil {
		return nil, err
	}

	records, err := m.repo.Applied(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		m.logger.Info("Nothing to roll back", nil)
		return nil, nil
	}

	lastBatch := 0
	for _, record := range records {
		lastBatch = max(lastBatch, record.Batch)
	}

	var names []string
	for _, record := range records {
		if record.Batch == lastBatch {
			names = append(names, record.Name)
		}
	}
	slices.Reverse(names)

	m.logger.Info("Rolling back migrations", map[string]any{
		"batch":      lastBatch,
		"migrations": names,
	})

	done := make([]string, 0, len(names))
	for _, name := range names {
		if err := m.run(ctx, name, directionDown); err != nil {
			return done, err
		}
		if err := m.repo.Forget(ctx, name); err != nil {
			return done, &errs.MigrationError{Migration: name, Direction: directionDown, Err: err}
		}
		done = append(done, name)
	}
	return done, nil
}

// Status lists every registered migration with its batch, followed by applied
// migrations that are no longer registered
func (m *Manager) Status(ctx context.Context) ([]Status, error) {
	if err := m.repo.EnsureStore(ctx); err != nil {
		return nil, err
	}

	records, err := m.repo.Applied(ctx)
	if err != nil {
		return nil, err
	}
	batches := make(map[string]int, len(records))
	for _, record := range records {
		batches[record.Name] = record.Batch
	}

	statuses := make([]Status, 0, len(m.names))
	for _, name := range m.names {
		batch, applied := batches[name]
		statuses = append(statuses, Status{
			Name:       name,
			Connection: m.entries[name].connection,
			Applied:    applied,
			Batch:      batch,
		})
	}
	for _, record := range records {
		if _, ok := m.entries[record.Name]; !ok {
			statuses = append(statuses, Status{Name: record.Name, Applied: true, Batch: record.Batch})
		}
	}
	return statuses, nil
}

func (m *Manager) appliedBatches(ctx context.Context) (map[string]int, error) {
	records, err := m.repo.Applied(ctx)
	if err != nil {
		return nil, err
	}
	applied := make(map[string]int, len(records))
	for _, record := range records {
		applied[record.Name] = record.Batch
	}
	return applied, nil
}

func (m *Manager) run(ctx context.Context, name, direction string) error {
	e, ok := m.entries[name]
	if !ok {
		return &errs.MigrationError{Migration: name, Direction: direction, Err: errs.ErrMigrationNotRegistered}
	}

	builder, err := m.builders.SchemaBuilder(e.connection)
	if err != nil {
		return &errs.MigrationError{Migration: name, Direction: direction, Err: err}
	}

	migration := e.factory()
	if direction == directionUp {
		err = migration.Up(ctx, builder)
	} else {
		err = migration.Down(ctx, builder)
	}
	if err != nil {
		migrationErr := &errs.MigrationError{Migration: name, Direction: direction, Err: err}
		m.logger.Error("Migration failed", migrationErr.LogFields())
		return migrationErr
	}

	m.logger.Info("Migration applied", map[string]any{
		"migration":  name,
		"direction":  direction,
		"connection": e.connection,
	})
	return nil
}
