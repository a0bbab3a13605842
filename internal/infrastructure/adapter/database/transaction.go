package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/meta-model/internal/domain/port/core"
	"github.com/amirhossein-jamali/meta-model/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/meta-model/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// UnitOfWork runs repository operations on the default connection inside one transaction.
// Models on other connections are not part of the transaction.
type UnitOfWork struct {
	connections  *Connections
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(connections *Connections, logger coreport.Logger, timeProvider coreport.TimeProvider) persistence.UnitOfWork {
	return &UnitOfWork{
		connections:  connections,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	db, err := u.connections.Connection("")
	if err != nil {
		return ctx, err
	}

	u.logger.Debug("Beginning database transaction", map[string]any{
		"connection": u.connections.DefaultName(),
	})

	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return errors.New("no transaction found in context")
	}

	u.logger.Debug("Committing database transaction", nil)
	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Rollback rolls back the current transaction; rolling back a finished transaction is not an error
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return errors.New("no transaction found in context")
	}

	u.logger.Debug("Rolling back database transaction", nil)

	err := tx.Rollback().Error
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}
	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// Models returns a model repository using the transaction in ctx for the default connection
func (u *UnitOfWork) Models(ctx context.Context) persistence.ModelRepository {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return repository.NewModelRepository(u.connections, u.timeProvider, u.logger)
	}
	// no retries inside a transaction
	return repository.NewModelRepository(txConnections{tx: tx, base: u.connections}, u.timeProvider, u.logger).
		WithRetryConfig(repository.RetryConfig{MaxRetries: 1})
}

// txConnections hands out the transaction for the default connection
type txConnections struct {
	tx   *gorm.DB
	base *Connections
}

func (c txConnections) Connection(name string) (*gorm.DB, error) {
	if c.base.IsDefault(name) {
		return c.tx, nil
	}
	return c.base.Connection(name)
}

func (c txConnections) QueryTimeout(name string) time.Duration {
	return c.base.QueryTimeout(name)
}
