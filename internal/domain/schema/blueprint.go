package schema

import (
	"strings"
)

// CommandType identifies a table-level operation recorded on a blueprint
type CommandType string

// Supported commands
const (
	CommandIndex      CommandType = "index"
	CommandUnique     CommandType = "unique"
	CommandPrimary    CommandType = "primary"
	CommandDropColumn CommandType = "dropColumn"
	CommandDropIndex  CommandType = "dropIndex"
)

// Command is a table-level operation such as an index or a column drop
type Command struct {
	Type    CommandType
	Name    string
	Columns []string
}

// Blueprint records the columns and commands declared for one table.
// It performs no I/O; a schema builder compiles and executes it.
type Blueprint struct {
	table        string
	morphKeyType MorphKeyType
	columns      []*ColumnDefinition
	commands     []*Command
}

// Option configures a blueprint
type Option func(*Blueprint)

// WithDefaultMorphKeyType sets the key type used by Morphs and NullableMorphs
func WithDefaultMorphKeyType(keyType MorphKeyType) Option {
	return func(b *Blueprint) {
		b.morphKeyType = keyType
	}
}

// NewBlueprint creates an empty blueprint for the given table
func NewBlueprint(table string, opts ...Option) *Blueprint {
	b := &Blueprint{
		table:        table,
		morphKeyType: MorphKeyInt,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Table returns the table the blueprint applies to
func (b *Blueprint) Table() string {
	return b.table
}

// DefaultMorphKeyType returns the key type used by Morphs and NullableMorphs
func (b *Blueprint) DefaultMorphKeyType() MorphKeyType {
	return b.morphKeyType
}

// Columns returns the added columns in declaration order
func (b *Blueprint) Columns() []*ColumnDefinition {
	return b.columns
}

// HasColumn reports whether a column with the given name was added
func (b *Blueprint) HasColumn(name string) bool {
	for _, c := range b.columns {
		if c.Name == name {
			return true
		}
	}
	return false
}

// Commands returns the explicit commands followed by the indexes declared fluently on columns
func (b *Blueprint) Commands() []*Command {
	commands := make([]*Command, 0, len(b.commands))
	commands = append(commands, b.commands...)

	for _, c := range b.columns {
		if c.IsUnique {
			commands = append(commands, &Command{
				Type:    CommandUnique,
				Name:    b.indexName(CommandUnique, []string{c.Name}),
				Columns: []string{c.Name},
			})
		}
		if c.IsIndexed {
			commands = append(commands, &Command{
				Type:    CommandIndex,
				Name:    b.indexName(CommandIndex, []string{c.Name}),
				Columns: []string{c.Name},
			})
		}
	}

	return commands
}

func (b *Blueprint) addColumn(typ ColumnType, name string) *ColumnDefinition {
	column := &ColumnDefinition{Name: name, Type: typ}
	b.columns = append(b.columns, column)
	return column
}

func (b *Blueprint) addCommand(typ CommandType, name string, columns []string) *Command {
	if name == "" && typ != CommandDropColumn {
		name = b.indexName(typ, columns)
	}
	command := &Command{Type: typ, Name: name, Columns: columns}
	b.commands = append(b.commands, command)
	return command
}

// indexName builds the conventional index name: {table}_{columns}_{type}
func (b *Blueprint) indexName(typ CommandType, columns []string) string {
	name := strings.ToLower(b.table + "_" + strings.Join(columns, "_") + "_" + string(typ))
	return strings.NewReplacer("-", "_", ".", "_").Replace(name)
}

// ID adds an auto-incrementing big integer primary key named "id"
func (b *Blueprint) ID() *ColumnDefinition {
	return b.BigIncrements("id")
}

// Increments adds an auto-incrementing integer primary key
func (b *Blueprint) Increments(name string) *ColumnDefinition {
	c := b.addColumn(TypeIncrements, name)
	c.AutoIncrement = true
	c.IsPrimary = true
	return c
}

// BigIncrements adds an auto-incrementing big integer primary key
func (b *Blueprint) BigIncrements(name string) *ColumnDefinition {
	c := b.addColumn(TypeBigIncrements, name)
	c.AutoIncrement = true
	c.IsPrimary = true
	return c
}

// String adds a varchar column; a non-positive length falls back to DefaultStringLength
func (b *Blueprint) String(name string, length int) *ColumnDefinition {
	if length <= 0 {
		length = DefaultStringLength
	}
	c := b.addColumn(TypeString, name)
	c.Length = length
	return c
}

// Char adds a fixed-length character column
func (b *Blueprint) Char(name string, length int) *ColumnDefinition {
	if length <= 0 {
		length = DefaultStringLength
	}
	c := b.addColumn(TypeChar, name)
	c.Length = length
	return c
}

func (b *Blueprint) Text(name string) *ColumnDefinition {
	return b.addColumn(TypeText, name)
}

func (b *Blueprint) Integer(name string) *ColumnDefinition {
	return b.addColumn(TypeInteger, name)
}

func (b *Blueprint) BigInteger(name string) *ColumnDefinition {
	return b.addColumn(TypeBigInteger, name)
}

func (b *Blueprint) UnsignedBigInteger(name string) *ColumnDefinition {
	return b.addColumn(TypeUnsignedBigInteger, name)
}

func (b *Blueprint) Boolean(name string) *ColumnDefinition {
	return b.addColumn(TypeBoolean, name)
}

func (b *Blueprint) JSON(name string) *ColumnDefinition {
	return b.addColumn(TypeJSON, name)
}

func (b *Blueprint) JSONB(name string) *ColumnDefinition {
	return b.addColumn(TypeJSONB, name)
}

func (b *Blueprint) UUID(name string) *ColumnDefinition {
	return b.addColumn(TypeUUID, name)
}

// ULID adds a 26 character column holding a sortable unique lexicographic identifier
func (b *Blueprint) ULID(name string) *ColumnDefinition {
	c := b.addColumn(TypeULID, name)
	c.Length = 26
	return c
}

func (b *Blueprint) Binary(name string) *ColumnDefinition {
	return b.addColumn(TypeBinary, name)
}

func (b *Blueprint) Timestamp(name string) *ColumnDefinition {
	return b.addColumn(TypeTimestamp, name)
}

// Timestamps adds nullable created_at and updated_at columns
func (b *Blueprint) Timestamps() {
	b.Timestamp("created_at").Nullable()
	b.Timestamp("updated_at").Nullable()
}

// SoftDeletes adds a nullable deleted_at column
func (b *Blueprint) SoftDeletes() *ColumnDefinition {
	return b.Timestamp("deleted_at").Nullable()
}

// Index adds a composite index; an empty name uses the conventional one
func (b *Blueprint) Index(columns []string, name string) *Command {
	return b.addCommand(CommandIndex, name, columns)
}

// Unique adds a composite unique index; an empty name uses the conventional one
func (b *Blueprint) Unique(columns []string, name string) *Command {
	return b.addCommand(CommandUnique, name, columns)
}

// Primary declares a composite primary key
func (b *Blueprint) Primary(columns []string, name string) *Command {
	return b.addCommand(CommandPrimary, name, columns)
}

// DropColumn removes one or more columns
func (b *Blueprint) DropColumn(names ...string) *Command {
	return b.addCommand(CommandDropColumn, "", names)
}

// DropIndex removes an index by name
func (b *Blueprint) DropIndex(name string) *Command {
	return b.addCommand(CommandDropIndex, name, nil)
}
