package schema

import (
	"fmt"
	"strings"
	"time"

	domainschema "github.com/amirhossein-jamali/meta-model/internal/domain/schema"
)

// Grammar compiles blueprints into PostgreSQL statements
type Grammar struct{}

// NewGrammar creates a PostgreSQL grammar
func NewGrammar() *Grammar {
	return &Grammar{}
}

// CompileCreate returns the create table statement followed by index and comment statements
func (g *Grammar) CompileCreate(bp *domainschema.Blueprint) []string {
	definitions := make([]string, 0, len(bp.Columns())+1)
	var primary []string

	for _, column := range bp.Columns() {
		definitions = append(definitions, g.wrap(column.Name)+" "+g.columnDefinition(column))
		if column.IsPrimary && !column.AutoIncrement {
			primary = append(primary, column.Name)
		}
	}
	if len(primary) > 0 {
		definitions = append(definitions, "primary key ("+g.columnize(primary)+")")
	}

	statements := []string{
		fmt.Sprintf("create table %s (%s)", g.wrap(bp.Table()), strings.Join(definitions, ", ")),
	}
	statements = append(statements, g.compileCommands(bp)...)
	return append(statements, g.compileComments(bp)...)
}

// CompileAlter returns the statements adding the blueprint's columns and running its commands
func (g *Grammar) CompileAlter(bp *domainschema.Blueprint) []string {
	var statements []string

	if columns := bp.Columns(); len(columns) > 0 {
		additions := make([]string, 0, len(columns))
		for _, column := range columns {
			additions = append(additions, "add column "+g.wrap(column.Name)+" "+g.columnDefinition(column))
		}
		statements = append(statements, fmt.Sprintf("alter table %s %s", g.wrap(bp.Table()), strings.Join(additions, ", ")))

		for _, column := range columns {
			if column.IsPrimary && !column.AutoIncrement {
				statements = append(statements, fmt.Sprintf("alter table %s add primary key (%s)", g.wrap(bp.Table()), g.wrap(column.Name)))
			}
		}
	}

	statements = append(statements, g.compileCommands(bp)...)
	return append(statements, g.compileComments(bp)...)
}

// CompileDropIfExists returns the statement dropping a table when present
func (g *Grammar) CompileDropIfExists(table string) string {
	return "drop table if exists " + g.wrap(table)
}

// CompileTableExists returns the query counting tables with a given name in the current schema
func (g *Grammar) CompileTableExists() string {
	return "select count(*) from information_schema.tables where table_schema = current_schema() and table_name = ? and table_type = 'BASE TABLE'"
}

func (g *Grammar) compileCommands(bp *domainschema.Blueprint) []string {
	table := g.wrap(bp.Table())

	var statements []string
	for _, command := range bp.Commands() {
		switch command.Type {
		case domainschema.CommandIndex:
			statements = append(statements, fmt.Sprintf("create index %s on %s (%s)", g.wrap(command.Name), table, g.columnize(command.Columns)))
		case domainschema.CommandUnique:
			statements = append(statements, fmt.Sprintf("alter table %s add constraint %s unique (%s)", table, g.wrap(command.Name), g.columnize(command.Columns)))
		case domainschema.CommandPrimary:
			statements = append(statements, fmt.Sprintf("alter table %s add primary key (%s)", table, g.columnize(command.Columns)))
		case domainschema.CommandDropColumn:
			drops := make([]string, 0, len(command.Columns))
			for _, column := range command.Columns {
				drops = append(drops, "drop column "+g.wrap(column))
			}
			statements = append(statements, fmt.Sprintf("alter table %s %s", table, strings.Join(drops, ", ")))
		case domainschema.CommandDropIndex:
			statements = append(statements, "drop index "+g.wrap(command.Name))
		}
	}
	return statements
}

func (g *Grammar) compileComments(bp *domainschema.Blueprint) []string {
	var statements []string
	for _, column := range bp.Columns() {
		if column.CommentText == "" {
			continue
		}
		statements = append(statements, fmt.Sprintf("comment on column %s.%s is %s",
			g.wrap(bp.Table()), g.wrap(column.Name), g.quote(column.CommentText)))
	}
	return statements
}

func (g *Grammar) columnDefinition(column *domainschema.ColumnDefinition) string {
	var sql strings.Builder
	sql.WriteString(g.typeOf(column))

	if column.AllowNull {
		sql.WriteString(" null")
	} else {
		sql.WriteString(" not null")
	}

	switch {
	case column.HasDefault:
		sql.WriteString(" default " + g.defaultValue(column.DefaultValue))
	case column.DefaultCurrent:
		sql.WriteString(" default CURRENT_TIMESTAMP")
	}

	if column.AutoIncrement && column.IsPrimary {
		sql.WriteString(" primary key")
	}
	return sql.String()
}

func (g *Grammar) typeOf(column *domainschema.ColumnDefinition) string {
	switch column.Type {
	case domainschema.TypeIncrements:
		return "serial"
	case domainschema.TypeBigIncrements:
		return "bigserial"
	case domainschema.TypeString:
		return fmt.Sprintf("varchar(%d)", column.Length)
	case domainschema.TypeChar, domainschema.TypeULID:
		return fmt.Sprintf("char(%d)", column.Length)
	case domainschema.TypeText:
		return "text"
	case domainschema.TypeInteger:
		return "integer"
	case domainschema.TypeBigInteger, domainschema.TypeUnsignedBigInteger:
		return "bigint"
	case domainschema.TypeBoolean:
		return "boolean"
	case domainschema.TypeJSON:
		return "json"
	case domainschema.TypeJSONB:
		return "jsonb"
	case domainschema.TypeUUID:
		return "uuid"
	case domainschema.TypeBinary:
		return "bytea"
	case domainschema.TypeTimestamp:
		return "timestamp(0) without time zone"
	}
	return string(column.Type)
}

func (g *Grammar) defaultValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case domainschema.Expression:
		return string(v)
	case bool:
		if v {
			return "true"
		}
		return "false"
	case string:
		return g.quote(v)
	case time.Time:
		return g.quote(v.UTC().Format("2006-01-02 15:04:05"))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(v)
	}
	return g.quote(fmt.Sprint(value))
}

func (g *Grammar) columnize(columns []string) string {
	wrapped := make([]string, len(columns))
	for i, column := range columns {
		wrapped[i] = g.wrap(column)
	}
	return strings.Join(wrapped, ", ")
}

func (g *Grammar) wrap(identifier string) string {
	return `"` + strings.ReplaceAll(identifier, `"`, `""`) + `"`
}

func (g *Grammar) quote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}
