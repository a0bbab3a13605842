package entity

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/meta-model/internal/domain/error"
	"github.com/spf13/cast"
)

// DefaultKeyName is the primary key column of every model unless overridden
const DefaultKeyName = "id"

// AccessorFunc produces the value of a computed attribute
type AccessorFunc func(m *Model) any

// Model is an attribute bag with mass assignment rules, attribute casts and
// serialization visibility. A Model is not safe for concurrent use.
type Model struct {
	connection   string
	table        string
	keyName      string
	incrementing bool
	timestamps   bool
	exists       bool

	casts    map[string]string
	fillable []string
	guarded  []string
	hidden   []string
	visible  []string
	appends  []string

	attributes map[string]any
	accessors  map[string]AccessorFunc
}

// NewModel creates a totally guarded model with no attributes
func NewModel() *Model {
	return &Model{
		keyName:      DefaultKeyName,
		incrementing: true,
		timestamps:   true,
		casts:        map[string]string{},
		guarded:      []string{"*"},
		attributes:   map[string]any{},
		accessors:    map[string]AccessorFunc{},
	}
}

// Connection returns the name of the database connection, empty for the default one
func (m *Model) Connection() string { return m.connection }

// SetConnection sets the database connection name
func (m *Model) SetConnection(name string) { m.connection = name }

// TableName returns the table backing the model
func (m *Model) TableName() string { return m.table }

// SetTable sets the table backing the model
func (m *Model) SetTable(name string) { m.table = name }

// KeyName returns the primary key column
func (m *Model) KeyName() string { return m.keyName }

// SetKeyName sets the primary key column
func (m *Model) SetKeyName(name string) { m.keyName = name }

// UsesTimestamps reports whether created_at and updated_at are maintained
func (m *Model) UsesTimestamps() bool { return m.timestamps }

// SetTimestamps enables or disables created_at and updated_at maintenance
func (m *Model) SetTimestamps(enabled bool) { m.timestamps = enabled }

// Exists reports whether the model was loaded from or stored in the database
func (m *Model) Exists() bool { return m.exists }

// SetExists marks the model as persisted or not
func (m *Model) SetExists(exists bool) { m.exists = exists }

// Fillable returns a copy of the mass assignable attributes
func (m *Model) Fillable() []string { return slices.Clone(m.fillable) }

// Guarded returns a copy of the guarded attributes
func (m *Model) Guarded() []string { return slices.Clone(m.guarded) }

// SetGuarded replaces the guarded list
func (m *Model) SetGuarded(guarded []string) { m.guarded = guarded }

// Hidden returns a copy of the attributes left out of serialization
func (m *Model) Hidden() []string { return slices.Clone(m.hidden) }

// SetHidden replaces the hidden list
func (m *Model) SetHidden(hidden []string) { m.hidden = hidden }

// Visible returns a copy of the attributes serialization is restricted to
func (m *Model) Visible() []string { return slices.Clone(m.visible) }

// SetVisible replaces the visible list
func (m *Model) SetVisible(visible []string) { m.visible = visible }

// Appends returns a copy of the accessor names added to serialization
func (m *Model) Appends() []string { return slices.Clone(m.appends) }

// SetAppends replaces the appended accessor names
func (m *Model) SetAppends(appends []string) { m.appends = appends }

// Incrementing reports whether the database assigns the primary key
func (m *Model) Incrementing() bool { return m.incrementing }

// SetIncrementing switches between database assigned and application assigned keys
func (m *Model) SetIncrementing(incrementing bool) { m.incrementing = incrementing }

// SetFillable replaces the fillable list
func (m *Model) SetFillable(fillable []string) { m.fillable = fillable }

// Casts returns a copy of the cast mapping
func (m *Model) Casts() map[string]string {
	casts := make(map[string]string, len(m.casts))
	for k, v := range m.casts {
		casts[k] = v
	}
	return casts
}

// MergeCasts adds casts, replacing existing ones for the same attribute
func (m *Model) MergeCasts(casts map[string]string) {
	for k, v := range casts {
		m.casts[k] = v
	}
}

// MergeFillable appends attributes to the fillable list, skipping duplicates
func (m *Model) MergeFillable(fillable []string) {
	m.fillable = appendUnique(m.fillable, fillable)
}

// MergeGuarded appends attributes to the guarded list, skipping duplicates
func (m *Model) MergeGuarded(guarded []string) {
	m.guarded = appendUnique(m.guarded, guarded)
}

// TotallyGuarded reports whether no attribute can be mass assigned
func (m *Model) TotallyGuarded() bool {
	return len(m.fillable) == 0 && len(m.guarded) == 1 && m.guarded[0] == "*"
}

// IsGuarded reports whether the attribute is explicitly or wildcard guarded
func (m *Model) IsGuarded(key string) bool {
	if len(m.guarded) == 0 {
		return false
	}
	return slices.Contains(m.guarded, "*") || slices.Contains(m.guarded, key)
}

// IsFillable reports whether the attribute may be mass assigned
func (m *Model) IsFillable(key string) bool {
	if slices.Contains(m.fillable, key) {
		return true
	}
	if m.IsGuarded(key) {
		return false
	}
	return len(m.fillable) == 0 && !strings.Contains(key, ".") && !strings.HasPrefix(key, "_")
}

// Fill mass assigns attributes. Non-fillable attributes are discarded, unless the
// model is totally guarded, in which case the first one is reported as an error
// and nothing is assigned.
func (m *Model) Fill(attributes map[string]any) error {
	totallyGuarded := m.TotallyGuarded()

	keys := make([]string, 0, len(attributes))
	for key := range attributes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	accepted := make([]string, 0, len(keys))
	for _, key := range keys {
		if m.IsFillable(key) {
			accepted = append(accepted, key)
			continue
		}
		if totallyGuarded {
			return errs.NewMassAssignmentError(m.table, key)
		}
	}

	for _, key := range accepted {
		if err := m.Set(key, attributes[key]); err != nil {
			return err
		}
	}
	return nil
}

// ForceFill assigns attributes without checking mass assignment rules
func (m *Model) ForceFill(attributes map[string]any) error {
	for key, value := range attributes {
		if err := m.Set(key, value); err != nil {
			return err
		}
	}
	return nil
}

// Set stores a raw attribute; values of JSON cast attributes are encoded on the way in
func (m *Model) Set(key string, value any) error {
	if isJSONCast(m.casts[key]) {
		encoded, err := encodeJSON(value)
		if err != nil {
			return fmt.Errorf("encode attribute %s: %w", key, err)
		}
		value = encoded
	}
	m.attributes[key] = value
	return nil
}

// Raw returns the stored value of an attribute without casting
func (m *Model) Raw(key string) (any, bool) {
	value, ok := m.attributes[key]
	return value, ok
}

// Attributes returns a copy of the stored attributes, ready to be persisted
func (m *Model) Attributes() map[string]any {
	attributes := make(map[string]any, len(m.attributes))
	for k, v := range m.attributes {
		attributes[k] = v
	}
	return attributes
}

// Key returns the primary key value, nil when the model has none yet
func (m *Model) Key() any {
	return m.attributes[m.keyName]
}

// Accessor registers a computed attribute, which can be read with Get and serialized through appends
func (m *Model) Accessor(name string, fn AccessorFunc) {
	m.accessors[name] = fn
}

// Get returns an attribute with its cast applied; accessors take precedence over stored values
func (m *Model) Get(key string) (any, error) {
	var value any
	if accessor, ok := m.accessors[key]; ok {
		value = accessor(m)
	} else {
		value = m.attributes[key]
	}

	castType, ok := m.casts[key]
	if !ok || value == nil {
		return value, nil
	}

	casted, err := castValue(castType, value)
	if err != nil {
		return nil, fmt.Errorf("cast attribute %s to %s: %w", key, castType, err)
	}
	return casted, nil
}

// ToMap serializes the model: the visible list restricts the output when set,
// hidden attributes are removed and appended accessors are added.
func (m *Model) ToMap() (map[string]any, error) {
	keys := make([]string, 0, len(m.attributes)+len(m.appends))
	for key := range m.attributes {
		keys = append(keys, key)
	}
	keys = appendUnique(keys, m.appends)

	result := make(map[string]any, len(keys))
	for _, key := range keys {
		if len(m.visible) > 0 && !slices.Contains(m.visible, key) {
			continue
		}
		if slices.Contains(m.hidden, key) {
			continue
		}

		value, err := m.Get(key)
		if err != nil {
			return nil, err
		}
		result[key] = value
	}
	return result, nil
}

func castValue(castType string, value any) (any, error) {
	switch strings.ToLower(castType) {
	case "int", "integer":
		return cast.ToInt64E(value)
	case "float", "double", "real":
		return cast.ToFloat64E(value)
	case "string":
		return cast.ToStringE(value)
	case "bool", "boolean":
		return cast.ToBoolE(value)
	case "date", "datetime", "timestamp":
		return cast.ToTimeInDefaultLocationE(value, time.UTC)
	case "array", "json", "collection", "object":
		return decodeJSON(value)
	}
	return value, nil
}

func isJSONCast(castType string) bool {
	switch strings.ToLower(castType) {
	case "array", "json", "collection", "object":
		return true
	}
	return false
}

func encodeJSON(value any) (any, error) {
	switch value.(type) {
	case nil, string, []byte:
		return value, nil
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return string(encoded), nil
}

func decodeJSON(value any) (any, error) {
	var raw []byte
	switch v := value.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return value, nil
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}
	return decoded, nil
}

func appendUnique(base, extra []string) []string {
	merged := slices.Clone(base)
	for _, v := range extra {
		if !slices.Contains(merged, v) {
			merged = append(merged, v)
		}
	}
	return merged
}
