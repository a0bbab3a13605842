package repository

import (
	"context"

	"github.com/amirhossein-jamali/meta-model/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/meta-model/internal/domain/port/core"
	"github.com/amirhossein-jamali/meta-model/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/meta-model/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// MigrationVersionRepository stores applied migrations in the migration_versions table
type MigrationVersionRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.MigrationRepository = (*MigrationVersionRepository)(nil)

// NewMigrationVersionRepository creates a new MigrationVersionRepository instance
func NewMigrationVersionRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *MigrationVersionRepository {
	return &MigrationVersionRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// EnsureStore creates the migration_versions table when missing
func (r *MigrationVersionRepository) EnsureStore(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		r.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return r.errorClassifier.MapError(err, "creating migration table")
	}
	return nil
}

// Applied lists applied migrations ordered by batch and application order
func (r *MigrationVersionRepository) Applied(ctx context.Context) ([]entity.MigrationRecord, error) {
	var versions []model.MigrationVersion
	if err := r.db.WithContext(ctx).Order("batch asc, id asc").Find(&versions).Error; err != nil {
		return nil, r.errorClassifier.MapError(err, "listing migrations")
	}

	records := make([]entity.MigrationRecord, len(versions))
	for i, v := range versions {
		records[i] = entity.MigrationRecord{Name: v.Name, Batch: v.Batch, AppliedAt: v.AppliedAt}
	}
	return records, nil
}

// LastBatch returns the highest batch number
func (r *MigrationVersionRepository) LastBatch(ctx context.Context) (int, error) {
	var batch int
	err := r.db.WithContext(ctx).Model(&model.MigrationVersion{}).
		Select("COALESCE(MAX(batch), 0)").
		Scan(&batch).Error
	if err != nil {
		return 0, r.errorClassifier.MapError(err, "reading last batch")
	}
	return batch, nil
}

// Record marks the migration as applied
func (r *MigrationVersionRepository) Record(ctx context.Context, name string, batch int) error {
	version := model.MigrationVersion{
		Name:      name,
		Batch:     batch,
		AppliedAt: r.timeProvider.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&version).Error; err != nil {
		return r.errorClassifier.MapError(err, "recording migration")
	}
	return nil
}

// Forget removes the record of the migration
func (r *MigrationVersionRepository) Forget(ctx context.Context, name string) error {
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Delete(&model.MigrationVersion{}).Error
	if err != nil {
		return r.errorClassifier.MapError(err, "forgetting migration")
	}
	return nil
}
