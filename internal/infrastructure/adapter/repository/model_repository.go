package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/amirhossein-jamali/meta-model/internal/domain/entity"
	errs "github.com/amirhossein-jamali/meta-model/internal/domain/error"
	coreport "github.com/amirhossein-jamali/meta-model/internal/domain/port/core"
	"github.com/amirhossein-jamali/meta-model/internal/domain/port/persistence"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConnectionResolver hands out the gorm connection registered under a name;
// the empty name selects the default connection
type ConnectionResolver interface {
	Connection(name string) (*gorm.DB, error)
	// QueryTimeout bounds every statement on the connection; zero means no bound
	QueryTimeout(name string) time.Duration
}

// ModelRepository implements persistence.ModelRepository with plain SQL on gorm connections,
// addressing each model's declared connection and table
type ModelRepository struct {
	connections     ConnectionResolver
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
	retry           RetryConfig
}

var _ persistence.ModelRepository = (*ModelRepository)(nil)

// NewModelRepository creates a new ModelRepository instance
func NewModelRepository(connections ConnectionResolver, timeProvider coreport.TimeProvider, logger coreport.Logger) *ModelRepository {
	return &ModelRepository{
		connections:     connections,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
		retry:           DefaultRetryConfig(),
	}
}

// WithRetryConfig returns a copy of the repository using the retry settings
func (r *ModelRepository) WithRetryConfig(config RetryConfig) *ModelRepository {
	clone := *r
	clone.retry = config
	return &clone
}

// Create inserts the model. Models with application assigned keys get a UUID when
// no key was set; database assigned keys are read back with RETURNING.
func (r *ModelRepository) Create(ctx context.Context, model *entity.Model) error {
	db, timeout, err := r.db(model)
	if err != nil {
		return err
	}

	if model.UsesTimestamps() {
		now := r.timeProvider.Now()
		if _, ok := model.Raw("created_at"); !ok {
			if err := model.Set("created_at", now); err != nil {
				return fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err.Error())
			}
		}
		if err := model.Set("updated_at", now); err != nil {
			return fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err.Error())
		}
	}
	if !model.Incrementing() && model.Key() == nil {
		if err := model.Set(model.KeyName(), uuid.NewString()); err != nil {
			return fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err.Error())
		}
	}

	columns, values, err := storableColumns(model.Attributes(), "")
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err.Error())
	}

	table := db.Statement.Quote(model.TableName())
	var sql string
	if len(columns) == 0 {
		sql = "INSERT INTO " + table + " DEFAULT VALUES"
	} else {
		sql = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, quoteAll(db, columns), placeholders(len(columns)))
	}

	r.logger.Debug("Creating model", map[string]any{
		"table":      model.TableName(),
		"connection": model.Connection(),
	})

	returnsKey := model.Incrementing() && model.Key() == nil
	var key int64
	err = r.run(ctx, db, timeout, func(db *gorm.DB) error {
		if returnsKey {
			return db.Raw(sql+" RETURNING "+db.Statement.Quote(model.KeyName()), values...).Scan(&key).Error
		}
		return db.Exec(sql, values...).Error
	})
	if err != nil {
		return r.handleDatabaseError("creating model", err, model)
	}
	if returnsKey {
		if err := model.Set(model.KeyName(), key); err != nil {
			return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
		}
	}

	model.SetExists(true)
	r.logger.Info("Model created successfully", map[string]any{
		"table": model.TableName(),
		"key":   model.Key(),
	})
	return nil
}

// FindByKey fills the model with the row holding the key
func (r *ModelRepository) FindByKey(ctx context.Context, model *entity.Model, key any) error {
	db, timeout, err := r.db(model)
	if err != nil {
		return err
	}

	sql := fmt.Sprintf("SELECT * FROM %s WHERE %s = ? LIMIT 1",
		db.Statement.Quote(model.TableName()), db.Statement.Quote(model.KeyName()))

	var rows []map[string]any
	err = r.run(ctx, db, timeout, func(db *gorm.DB) error {
		rows = rows[:0]
		return db.Raw(sql, key).Scan(&rows).Error
	})
	if err != nil {
		return r.handleDatabaseError("finding model", err, model)
	}
	if len(rows) == 0 {
		r.logger.Debug("Model not found", map[string]any{
			"table": model.TableName(),
			"key":   key,
		})
		return errs.ErrNotFound
	}

	if err := model.ForceFill(rows[0]); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}
	model.SetExists(true)
	return nil
}

// Update writes every attribute except the key
func (r *ModelRepository) Update(ctx context.Context, model *entity.Model) error {
	if !model.Exists() || model.Key() == nil {
		return errs.ErrNotFound
	}

	db, timeout, err := r.db(model)
	if err != nil {
		return err
	}

	if model.UsesTimestamps() {
		if err := model.Set("updated_at", r.timeProvider.Now()); err != nil {
			return fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err.Error())
		}
	}

	columns, values, err := storableColumns(model.Attributes(), model.KeyName())
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err.Error())
	}
	if len(columns) == 0 {
		return nil
	}

	assignments := make([]string, len(columns))
	for i, column := range columns {
		assignments[i] = db.Statement.Quote(column) + " = ?"
	}
	sql := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
		db.Statement.Quote(model.TableName()), strings.Join(assignments, ", "), db.Statement.Quote(model.KeyName()))

	affected, err := r.exec(ctx, db, timeout, sql, append(values, model.Key())...)
	if err != nil {
		return r.handleDatabaseError("updating model", err, model)
	}
	if affected == 0 {
		return errs.ErrNotFound
	}

	r.logger.Info("Model updated successfully", map[string]any{
		"table": model.TableName(),
		"key":   model.Key(),
	})
	return nil
}

// Delete removes the model's row
func (r *ModelRepository) Delete(ctx context.Context, model *entity.Model) error {
	if !model.Exists() || model.Key() == nil {
		return errs.ErrNotFound
	}

	db, timeout, err := r.db(model)
	if err != nil {
		return err
	}

	sql := fmt.Sprintf("DELETE FROM %s WHERE %s = ?",
		db.Statement.Quote(model.TableName()), db.Statement.Quote(model.KeyName()))

	affected, err := r.exec(ctx, db, timeout, sql, model.Key())
	if err != nil {
		return r.handleDatabaseError("deleting model", err, model)
	}
	if affected == 0 {
		return errs.ErrNotFound
	}

	model.SetExists(false)
	r.logger.Info("Model deleted successfully", map[string]any{
		"table": model.TableName(),
		"key":   model.Key(),
	})
	return nil
}

// DeleteWhere removes the rows matching every condition; at least one condition is required
func (r *ModelRepository) DeleteWhere(ctx context.Context, model *entity.Model, conditions map[string]any) (int64, error) {
	if len(conditions) == 0 {
		return 0, fmt.Errorf("%w: delete without conditions", errs.ErrInvalidRequest)
	}

	db, timeout, err := r.db(model)
	if err != nil {
		return 0, err
	}

	columns, values, err := storableColumns(conditions, "")
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err.Error())
	}

	predicates := make([]string, len(columns))
	for i, column := range columns {
		predicates[i] = db.Statement.Quote(column) + " = ?"
	}
	sql := fmt.Sprintf("DELETE FROM %s WHERE %s", db.Statement.Quote(model.TableName()), strings.Join(predicates, " AND "))

	affected, err := r.exec(ctx, db, timeout, sql, values...)
	if err != nil {
		return 0, r.handleDatabaseError("deleting models", err, model)
	}
	return affected, nil
}

func (r *ModelRepository) db(model *entity.Model) (*gorm.DB, time.Duration, error) {
	db, err := r.connections.Connection(model.Connection())
	if err != nil {
		return nil, 0, err
	}
	return db, r.connections.QueryTimeout(model.Connection()), nil
}

// run retries statement on transient errors, giving each attempt its own deadline when timeout is set
func (r *ModelRepository) run(ctx context.Context, db *gorm.DB, timeout time.Duration, statement func(*gorm.DB) error) error {
	return retryOnTransientError(ctx, r.retry, r.errorClassifier, r.logger, func() error {
		return withQueryTimeout(ctx, timeout, func(ctx context.Context) error {
			return statement(db.WithContext(ctx))
		})
	})
}

func (r *ModelRepository) exec(ctx context.Context, db *gorm.DB, timeout time.Duration, sql string, values ...any) (int64, error) {
	var affected int64
	err := r.run(ctx, db, timeout, func(db *gorm.DB) error {
		result := db.Exec(sql, values...)
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}

// withQueryTimeout runs fn under a deadline of timeout. A failure caused by that
// deadline is reported as context.DeadlineExceeded whatever the driver returned.
func withQueryTimeout(ctx context.Context, timeout time.Duration, fn func(context.Context) error) error {
	if timeout <= 0 {
		return fn(ctx)
	}

	stmtCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := fn(stmtCtx)
	if err != nil && ctx.Err() == nil && errors.Is(stmtCtx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("query timeout of %s exceeded: %w (%s)", timeout, context.DeadlineExceeded, err.Error())
	}
	return err
}

// handleDatabaseError standardizes database error handling
func (r *ModelRepository) handleDatabaseError(operation string, err error, model *entity.Model) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"table":      model.TableName(),
		"connection": model.Connection(),
		"key":        model.Key(),
		"error":      err.Error(),
	})
	return r.errorClassifier.MapError(err, operation)
}

// storableColumns returns sorted column names and their values, skipping the excluded
// column. Maps and slices are stored as JSON so gorm does not expand them into lists.
func storableColumns(attributes map[string]any, exclude string) ([]string, []any, error) {
	columns := make([]string, 0, len(attributes))
	for column := range attributes {
		if column != exclude {
			columns = append(columns, column)
		}
	}
	sort.Strings(columns)

	values := make([]any, len(columns))
	for i, column := range columns {
		value := attributes[column]
		switch reflect.ValueOf(value).Kind() {
		case reflect.Map, reflect.Slice, reflect.Array:
			if _, ok := value.([]byte); ok {
				break
			}
			encoded, err := json.Marshal(value)
			if err != nil {
				return nil, nil, fmt.Errorf("encode column %s: %w", column, err)
			}
			value = string(encoded)
		}
		values[i] = value
	}
	return columns, values, nil
}

func quoteAll(db *gorm.DB, columns []string) string {
	quoted := make([]string, len(columns))
	for i, column := range columns {
		quoted[i] = db.Statement.Quote(column)
	}
	return strings.Join(quoted, ", ")
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
