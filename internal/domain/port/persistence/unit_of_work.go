package persistence

import (
	"context"
)

// UnitOfWork coordinates repository operations within one database transaction
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Models returns a model repository bound to the transaction in ctx, if any
	Models(ctx context.Context) ModelRepository
}
