package schema

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/meta-model/internal/domain/metamodel"
	coreport "github.com/amirhossein-jamali/meta-model/internal/domain/port/core"
	domainschema "github.com/amirhossein-jamali/meta-model/internal/domain/schema"
	"gorm.io/gorm"
)

// Builder executes blueprints on a gorm connection
type Builder struct {
	db           *gorm.DB
	grammar      *Grammar
	logger       coreport.Logger
	morphKeyType domainschema.MorphKeyType
	queryTimeout time.Duration
}

// Option configures a Builder
type Option func(*Builder)

// WithDefaultMorphKeyType sets the key type handed to every blueprint for Morphs and NullableMorphs
func WithDefaultMorphKeyType(keyType domainschema.MorphKeyType) Option {
	return func(b *Builder) {
		b.morphKeyType = keyType
	}
}

// WithQueryTimeout bounds each statement the builder runs; zero leaves them unbounded
func WithQueryTimeout(timeout time.Duration) Option {
	return func(b *Builder) {
		b.queryTimeout = timeout
	}
}

// NewBuilder creates a schema builder for the connection
func NewBuilder(db *gorm.DB, logger coreport.Logger, opts ...Option) *Builder {
	b := &Builder{
		db:           db,
		grammar:      NewGrammar(),
		logger:       logger,
		morphKeyType: domainschema.MorphKeyInt,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

var _ metamodel.SchemaBuilder = (*Builder)(nil)

// Create creates a table from the blueprint filled by define
func (b *Builder) Create(ctx context.Context, table string, define metamodel.DefineFunc) error {
	bp := b.blueprint(table)
	if err := define(bp); err != nil {
		return err
	}
	return b.execute(ctx, table, b.grammar.CompileCreate(bp))
}

// Table alters an existing table with the blueprint filled by define
func (b *Builder) Table(ctx context.Context, table string, define metamodel.DefineFunc) error {
	bp := b.blueprint(table)
	if err := define(bp); err != nil {
		return err
	}
	return b.execute(ctx, table, b.grammar.CompileAlter(bp))
}

// DropIfExists drops the table when present
func (b *Builder) DropIfExists(ctx context.Context, table string) error {
	return b.execute(ctx, table, []string{b.grammar.CompileDropIfExists(table)})
}

// HasTable reports whether the table exists in the current schema
func (b *Builder) HasTable(ctx context.Context, table string) (bool, error) {
	ctx, cancel := b.statementContext(ctx)
	defer cancel()

	var count int64
	if err := b.db.WithContext(ctx).Raw(b.grammar.CompileTableExists(), table).Scan(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check table %s: %w", table, err)
	}
	return count > 0, nil
}

func (b *Builder) blueprint(table string) *domainschema.Blueprint {
	return domainschema.NewBlueprint(table, domainschema.WithDefaultMorphKeyType(b.morphKeyType))
}

// execute runs the statements in one transaction, DDL being transactional on PostgreSQL
func (b *Builder) execute(ctx context.Context, table string, statements []string) error {
	if len(statements) == 0 {
		return nil
	}

	err := b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, statement := range statements {
			b.logger.Debug("Executing schema statement", map[string]any{
				"table": table,
				"sql":   statement,
			})
			if err := b.exec(ctx, tx, statement); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		b.logger.Error("Schema change failed", map[string]any{
			"table": table,
			"error": err.Error(),
		})
		return fmt.Errorf("failed to change schema of %s: %w", table, err)
	}
	return nil
}

func (b *Builder) exec(ctx context.Context, tx *gorm.DB, statement string) error {
	ctx, cancel := b.statementContext(ctx)
	defer cancel()

	if err := tx.WithContext(ctx).Exec(statement).Error; err != nil {
		if b.queryTimeout > 0 && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("query timeout of %s exceeded: %w (%s)", b.queryTimeout, context.DeadlineExceeded, err.Error())
		}
		return err
	}
	return nil
}

func (b *Builder) statementContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if b.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, b.queryTimeout)
}
