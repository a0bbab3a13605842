package persistence

import (
	"context"

	"github.com/amirhossein-jamali/meta-model/internal/domain/entity"
)

// MigrationRepository keeps track of applied migrations
type MigrationRepository interface {
	// EnsureStore creates the bookkeeping table when missing
	EnsureStore(ctx context.Context) error

	// Applied lists applied migrations ordered by batch, then by application order
	Applied(ctx context.Context) ([]entity.MigrationRecord, error)

	// LastBatch returns the highest batch number, 0 when nothing was applied
	LastBatch(ctx context.Context) (int, error)

	// Record marks a migration as applied in the batch
	Record(ctx context.Context, name string, batch int) error

	// Forget removes the record of a rolled back migration
	Forget(ctx context.Context, name string) error
}
