package metamodel

import (
	"context"
	"fmt"
	"strings"

	domainerr "github.com/amirhossein-jamali/meta-model/internal/domain/error"
	"github.com/amirhossein-jamali/meta-model/internal/domain/schema"
)

// MorphType selects how the id column of a morph relation is encoded
type MorphType string

const (
	// MorphDefault defers to the schema builder's default morph key type
	MorphDefault MorphType = ""
	MorphNumeric MorphType = "numeric"
	MorphUUID    MorphType = "uuid"
	MorphULID    MorphType = "ulid"
)

// ParseMorphType parses a morph type name, ignoring case
func ParseMorphType(s string) (MorphType, error) {
	switch MorphType(strings.ToLower(strings.TrimSpace(s))) {
	case MorphDefault, "default":
		return MorphDefault, nil
	case MorphNumeric:
		return MorphNumeric, nil
	case MorphUUID:
		return MorphUUID, nil
	case MorphULID:
		return MorphULID, nil
	}
	return MorphDefault, fmt.Errorf("%w: %q", domainerr.ErrUnknownMorphType, s)
}

// DefineFunc declares columns and commands on a table blueprint
type DefineFunc func(table *schema.Blueprint) error

// SchemaBuilder executes blueprints against a database
type SchemaBuilder interface {
	// Create creates a table from the blueprint filled by define; nothing is
	// executed when define fails
	Create(ctx context.Context, table string, define DefineFunc) error

	// Table alters an existing table with the blueprint filled by define
	Table(ctx context.Context, table string, define DefineFunc) error

	// DropIfExists drops the table, succeeding when it does not exist
	DropIfExists(ctx context.Context, table string) error

	// HasTable reports whether the table exists
	HasTable(ctx context.Context, table string) (bool, error)
}

// ColumnsFunc mutates a table blueprint; it is used for additional columns and hooks
type ColumnsFunc func(table *schema.Blueprint)

// Creator defines the primary columns of a customizable table
type Creator interface {
	Create(m *Migration, table *schema.Blueprint) error
}

// CreatorFunc adapts a function to the Creator interface
type CreatorFunc func(m *Migration, table *schema.Blueprint) error

// Create calls f(m, table)
func (f CreatorFunc) Create(m *Migration, table *schema.Blueprint) error {
	return f(m, table)
}

// MigrationOption configures a migration at construction
type MigrationOption func(*Migration)

// WithColumns registers additional column callbacks
func WithColumns(callbacks ...ColumnsFunc) MigrationOption {
	return func(m *Migration) {
		m.with = append(m.with, callbacks...)
	}
}

// WithAfterUp registers callbacks run after the table is created
func WithAfterUp(callbacks ...ColumnsFunc) MigrationOption {
	return func(m *Migration) {
		m.afterUp = append(m.afterUp, callbacks...)
	}
}

// WithBeforeDown registers callbacks run before the table is dropped
func WithBeforeDown(callbacks ...ColumnsFunc) MigrationOption {
	return func(m *Migration) {
		m.beforeDown = append(m.beforeDown, callbacks...)
	}
}

// WithMorph sets the morph type and index name override
func WithMorph(morphType MorphType, indexName string) MigrationOption {
	return func(m *Migration) {
		m.morphType = morphType
		m.morphIndexName = indexName
	}
}

// Migration creates and drops the table of a customizable model.
// An instance is meant for a single up or down run and is not safe for concurrent use.
type Migration struct {
	table          string
	creator        Creator
	with           []ColumnsFunc
	afterUp        []ColumnsFunc
	beforeDown     []ColumnsFunc
	morphType      MorphType
	morphIndexName string
	morphCalled    bool
	morphRelation  string
}

// NewMigration creates a migration for the table of the given model
func NewMigration(model Tabler, creator Creator, opts ...MigrationOption) *Migration {
	if creator == nil {
		panic("metamodel: migration for " + model.TableName() + " has no creator")
	}

	m := &Migration{
		table:   model.TableName(),
		creator: creator,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Table returns the table this migration owns
func (m *Migration) Table() string {
	return m.table
}

// MorphType returns the configured morph type
func (m *Migration) MorphType() MorphType {
	return m.morphType
}

// MorphIndexName returns the index name override, empty when unset
func (m *Migration) MorphIndexName() string {
	return m.morphIndexName
}

// AddColumns runs every additional column callback, in registration order
func (m *Migration) AddColumns(table *schema.Blueprint) {
	for _, callback := range m.with {
		callback(table)
	}
}

// CreateMorph adds the morph relation using the configured morph type.
// Only one morph relation may be created per migration instance.
func (m *Migration) CreateMorph(table *schema.Blueprint, name, indexName string) error {
	if err := m.claimMorph(name); err != nil {
		return err
	}

	indexName = m.resolveIndexName(indexName)

	switch MorphType(strings.ToLower(string(m.morphType))) {
	case MorphNumeric:
		table.NumericMorphs(name, indexName)
	case MorphUUID:
		table.UUIDMorphs(name, indexName)
	case MorphULID:
		table.ULIDMorphs(name, indexName)
	default:
		table.Morphs(name, indexName)
	}
	return nil
}

// CreateNullableMorph adds a nullable morph relation using the configured morph type.
// Only one morph relation may be created per migration instance.
func (m *Migration) CreateNullableMorph(table *schema.Blueprint, name, indexName string) error {
	if err := m.claimMorph(name); err != nil {
		return err
	}

	indexName = m.resolveIndexName(indexName)

	switch MorphType(strings.ToLower(string(m.morphType))) {
	case MorphNumeric:
		table.NullableNumericMorphs(name, indexName)
	case MorphUUID:
		table.NullableUUIDMorphs(name, indexName)
	case MorphULID:
		table.NullableULIDMorphs(name, indexName)
	default:
		table.NullableMorphs(name, indexName)
	}
	return nil
}

func (m *Migration) claimMorph(name string) error {
	if m.morphCalled {
		return domainerr.NewConfigurationConflictError(m.table, name, m.morphRelation)
	}
	m.morphCalled = true
	m.morphRelation = name
	return nil
}

// resolveIndexName prefers the instance override, then the per-call name; an empty
// result lets the blueprint pick its conventional name.
func (m *Migration) resolveIndexName(indexName string) string {
	if m.morphIndexName != "" {
		return m.morphIndexName
	}
	return indexName
}

// Morph sets the morph type and index name override
func (m *Migration) Morph(morphType MorphType, indexName string) *Migration {
	m.morphType = morphType
	m.morphIndexName = indexName
	return m
}

// MorphNumeric uses unsigned big integer keys for the morph relation
func (m *Migration) MorphNumeric() *Migration {
	return m.Morph(MorphNumeric, "")
}

// MorphUUID uses UUID keys for the morph relation
func (m *Migration) MorphUUID() *Migration {
	return m.Morph(MorphUUID, "")
}

// MorphULID uses ULID keys for the morph relation
func (m *Migration) MorphULID() *Migration {
	return m.Morph(MorphULID, "")
}

// Accessor applies a morph shorthand by name: morphNumeric, morphUuid or morphUlid
func (m *Migration) Accessor(name string) (*Migration, error) {
	switch name {
	case "morphNumeric":
		return m.MorphNumeric(), nil
	case "morphUuid":
		return m.MorphUUID(), nil
	case "morphUlid":
		return m.MorphULID(), nil
	}
	return nil, domainerr.NewUndefinedPropertyError(fmt.Sprintf("%T", m), name)
}

// With registers additional column callbacks
func (m *Migration) With(callbacks ...ColumnsFunc) *Migration {
	m.with = append(m.with, callbacks...)
	return m
}

// AfterUp registers callbacks run against the table once it exists
func (m *Migration) AfterUp(callbacks ...ColumnsFunc) *Migration {
	m.afterUp = append(m.afterUp, callbacks...)
	return m
}

// BeforeDown registers callbacks run against the table before it is dropped
func (m *Migration) BeforeDown(callbacks ...ColumnsFunc) *Migration {
	m.beforeDown = append(m.beforeDown, callbacks...)
	return m
}

// Up creates the table, then runs the after-up callbacks in order
func (m *Migration) Up(ctx context.Context, builder SchemaBuilder) error {
	err := builder.Create(ctx, m.table, func(table *schema.Blueprint) error {
		return m.creator.Create(m, table)
	})
	if err != nil {
		return err
	}

	for _, callback := range m.afterUp {
		if err := builder.Table(ctx, m.table, alter(callback)); err != nil {
			return err
		}
	}
	return nil
}

// Down runs the before-down callbacks in order, then drops the table if it exists
func (m *Migration) Down(ctx context.Context, builder SchemaBuilder) error {
	for _, callback := range m.beforeDown {
		if err := builder.Table(ctx, m.table, alter(callback)); err != nil {
			return err
		}
	}
	return builder.DropIfExists(ctx, m.table)
}

func alter(callback ColumnsFunc) DefineFunc {
	return func(table *schema.Blueprint) error {
		callback(table)
		return nil
	}
}
