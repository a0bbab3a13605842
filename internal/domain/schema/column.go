package schema

// ColumnType identifies the logical type of a column; grammars map it to SQL
type ColumnType string

// Supported column types
const (
	TypeIncrements         ColumnType = "increments"
	TypeBigIncrements      ColumnType = "bigIncrements"
	TypeString             ColumnType = "string"
	TypeChar               ColumnType = "char"
	TypeText               ColumnType = "text"
	TypeInteger            ColumnType = "integer"
	TypeBigInteger         ColumnType = "bigInteger"
	TypeUnsignedBigInteger ColumnType = "unsignedBigInteger"
	TypeBoolean            ColumnType = "boolean"
	TypeJSON               ColumnType = "json"
	TypeJSONB              ColumnType = "jsonb"
	TypeUUID               ColumnType = "uuid"
	TypeULID               ColumnType = "ulid"
	TypeBinary             ColumnType = "binary"
	TypeTimestamp          ColumnType = "timestamp"
)

// DefaultStringLength is used when a string column is declared without a length
const DefaultStringLength = 255

// Expression is a raw SQL fragment used as a default value without quoting
type Expression string

// ColumnDefinition describes a single column added by a blueprint
type ColumnDefinition struct {
	Name           string
	Type           ColumnType
	Length         int
	AllowNull      bool
	DefaultValue   any
	HasDefault     bool
	DefaultCurrent bool
	AutoIncrement  bool
	IsPrimary      bool
	IsUnique       bool
	IsIndexed      bool
	CommentText    string
}

// Nullable allows NULL values in the column
func (c *ColumnDefinition) Nullable() *ColumnDefinition {
	c.AllowNull = true
	return c
}

// Default sets the default value of the column
func (c *ColumnDefinition) Default(value any) *ColumnDefinition {
	c.DefaultValue = value
	c.HasDefault = true
	return c
}

// UseCurrent defaults a timestamp column to CURRENT_TIMESTAMP
func (c *ColumnDefinition) UseCurrent() *ColumnDefinition {
	c.DefaultCurrent = true
	return c
}

// Primary marks the column as the primary key
func (c *ColumnDefinition) Primary() *ColumnDefinition {
	c.IsPrimary = true
	return c
}

// Unique adds a single-column unique index
func (c *ColumnDefinition) Unique() *ColumnDefinition {
	c.IsUnique = true
	return c
}

// Index adds a single-column index
func (c *ColumnDefinition) Index() *ColumnDefinition {
	c.IsIndexed = true
	return c
}

// Comment attaches a comment to the column
func (c *ColumnDefinition) Comment(comment string) *ColumnDefinition {
	c.CommentText = comment
	return c
}
