package persistence

import (
	"context"

	"github.com/amirhossein-jamali/meta-model/internal/domain/entity"
)

// ModelRepository stores attribute models in the table and connection they declare
type ModelRepository interface {
	// Create inserts the model and marks it as existing. A database assigned key is
	// written back to the model.
	Create(ctx context.Context, model *entity.Model) error

	// FindByKey fills the model with the row holding the given primary key
	FindByKey(ctx context.Context, model *entity.Model, key any) error

	// Update writes every attribute of an existing model
	Update(ctx context.Context, model *entity.Model) error

	// Delete removes the row of an existing model
	Delete(ctx context.Context, model *entity.Model) error

	// DeleteWhere removes every row of the model's table matching all conditions
	DeleteWhere(ctx context.Context, model *entity.Model, conditions map[string]any) (int64, error)
}
