package metamodel

import (
	"reflect"
	"strings"

	"gorm.io/gorm/schema"
)

// Model is the surface of the base attribute model that customizations are merged into
type Model interface {
	SetConnection(name string)
	SetTable(name string)
	MergeCasts(casts map[string]string)
	MergeFillable(fillable []string)
	MergeGuarded(guarded []string)
	SetGuarded(guarded []string)
	TotallyGuarded() bool
	Hidden() []string
	SetHidden(hidden []string)
	Visible() []string
	SetVisible(visible []string)
	Appends() []string
	SetAppends(appends []string)
}

// Tabler is anything that knows the table it is stored in
type Tabler interface {
	TableName() string
}

// Customization declares how a model type differs from the base model.
// Every field is optional; the zero value means no customization.
type Customization struct {
	Connection string
	Table      string
	Casts      Value[map[string]string]
	Fillable   Value[[]string]
	Guarded    Value[[]string]
	Hidden     Value[[]string]
	Visible    Value[[]string]
	Appends    Value[[]string]
}

// MigrationFactory builds the migration governing a model type's table
type MigrationFactory func(model Tabler, columns []ColumnsFunc) *Migration

// Composer applies a model type's customization to each of its instances.
// A Composer is immutable once built and may be shared between goroutines.
type Composer struct {
	typeName      string
	customization Customization
	migration     MigrationFactory
}

// NewComposer registers a model type. When no table is declared it is derived
// from the type name as a snake cased plural ("ApiToken" becomes "api_tokens").
func NewComposer(typeName string, customization Customization, migration MigrationFactory) *Composer {
	if migration == nil {
		panic("metamodel: " + typeName + " must declare the migration governing its table")
	}

	typeName = BaseName(typeName)
	if customization.Table == "" {
		customization.Table = TableNameFor(typeName)
	}

	return &Composer{
		typeName:      typeName,
		customization: customization,
		migration:     migration,
	}
}

// TypeName returns the registered model type name
func (c *Composer) TypeName() string {
	return c.typeName
}

// TableName returns the table used by every instance of the model type
func (c *Composer) TableName() string {
	return c.customization.Table
}

// Connection returns the connection override, empty for the default connection
func (c *Composer) Connection() string {
	return c.customization.Connection
}

// Customization returns a copy of the resolved declaration
func (c *Composer) Customization() Customization {
	return c.customization
}

// Initialize merges the customization into a freshly constructed model.
// Deferred values are resolved exactly once per call, receiving the model.
func (c *Composer) Initialize(model Model) {
	custom := c.customization

	model.SetConnection(custom.Connection)
	model.SetTable(custom.Table)

	model.MergeCasts(custom.Casts.Resolve(model))
	model.MergeFillable(custom.Fillable.Resolve(model))

	// fillable is merged first so a declared fillable list lifts the model out of totally guarded mode
	if model.TotallyGuarded() {
		model.SetGuarded(custom.Guarded.Resolve(model))
	} else {
		model.MergeGuarded(custom.Guarded.Resolve(model))
	}

	if custom.Hidden.Present() {
		model.SetHidden(mergeUnique(model.Hidden(), custom.Hidden.Resolve(model)))
	}
	if custom.Visible.Present() {
		model.SetVisible(mergeUnique(model.Visible(), custom.Visible.Resolve(model)))
	}
	if custom.Appends.Present() {
		model.SetAppends(mergeUnique(model.Appends(), custom.Appends.Resolve(model)))
	}
}

// Migration returns a new instance of the migration governing the model type,
// with the given callbacks registered as additional columns.
func (c *Composer) Migration(columns ...ColumnsFunc) *Migration {
	return c.migration(c, columns)
}

// TableNameFor derives the conventional table name of a model type
func TableNameFor(typeName string) string {
	return schema.NamingStrategy{}.TableName(BaseName(typeName))
}

// BaseName strips any package or path qualifier from a type name
func BaseName(typeName string) string {
	if i := strings.LastIndexAny(typeName, "./\\"); i >= 0 {
		return typeName[i+1:]
	}
	return typeName
}

// TypeName returns the name of the struct type behind v, dereferencing pointers
func TypeName(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.Name()
}

func mergeUnique(base, extra []string) []string {
	seen := make(map[string]struct{}, len(base)+len(extra))
	merged := make([]string, 0, len(base)+len(extra))
	for _, list := range [][]string{base, extra} {
		for _, v := range list {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			merged = append(merged, v)
		}
	}
	return merged
}
