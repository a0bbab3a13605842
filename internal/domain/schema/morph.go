package schema

import (
	"fmt"
	"strings"
)

// MorphKeyType is the identifier encoding used by Morphs and NullableMorphs
type MorphKeyType string

const (
	MorphKeyInt  MorphKeyType = "int"
	MorphKeyUUID MorphKeyType = "uuid"
	MorphKeyULID MorphKeyType = "ulid"
)

// ParseMorphKeyType parses a configured default morph key type
func ParseMorphKeyType(s string) (MorphKeyType, error) {
	switch MorphKeyType(strings.ToLower(strings.TrimSpace(s))) {
	case "", MorphKeyInt:
		return MorphKeyInt, nil
	case MorphKeyUUID:
		return MorphKeyUUID, nil
	case MorphKeyULID:
		return MorphKeyULID, nil
	}
	return "", fmt.Errorf("morph key type must be one of int, uuid or ulid, got %q", s)
}

// MorphColumns returns the type and id column names of a morph relation
func MorphColumns(name string) (typeColumn, idColumn string) {
	return name + "_type", name + "_id"
}

// Morphs adds a morph relation keyed by the blueprint's default morph key type
func (b *Blueprint) Morphs(name, indexName string) {
	switch b.morphKeyType {
	case MorphKeyUUID:
		b.UUIDMorphs(name, indexName)
	case MorphKeyULID:
		b.ULIDMorphs(name, indexName)
	default:
		b.NumericMorphs(name, indexName)
	}
}

// NullableMorphs adds a nullable morph relation keyed by the default morph key type
func (b *Blueprint) NullableMorphs(name, indexName string) {
	switch b.morphKeyType {
	case MorphKeyUUID:
		b.NullableUUIDMorphs(name, indexName)
	case MorphKeyULID:
		b.NullableULIDMorphs(name, indexName)
	default:
		b.NullableNumericMorphs(name, indexName)
	}
}

// NumericMorphs adds a morph relation keyed by an unsigned big integer
func (b *Blueprint) NumericMorphs(name, indexName string) {
	b.morphs(name, indexName, false, b.UnsignedBigInteger)
}

// NullableNumericMorphs adds a nullable morph relation keyed by an unsigned big integer
func (b *Blueprint) NullableNumericMorphs(name, indexName string) {
	b.morphs(name, indexName, true, b.UnsignedBigInteger)
}

// UUIDMorphs adds a morph relation keyed by a UUID
func (b *Blueprint) UUIDMorphs(name, indexName string) {
	b.morphs(name, indexName, false, b.UUID)
}

// NullableUUIDMorphs adds a nullable morph relation keyed by a UUID
func (b *Blueprint) NullableUUIDMorphs(name, indexName string) {
	b.morphs(name, indexName, true, b.UUID)
}

// ULIDMorphs adds a morph relation keyed by a ULID
func (b *Blueprint) ULIDMorphs(name, indexName string) {
	b.morphs(name, indexName, false, b.ULID)
}

// NullableULIDMorphs adds a nullable morph relation keyed by a ULID
func (b *Blueprint) NullableULIDMorphs(name, indexName string) {
	b.morphs(name, indexName, true, b.ULID)
}

// DropMorphs drops the morph index and both morph columns
func (b *Blueprint) DropMorphs(name, indexName string) {
	typeColumn, idColumn := MorphColumns(name)
	if indexName == "" {
		indexName = b.indexName(CommandIndex, []string{typeColumn, idColumn})
	}
	b.DropIndex(indexName)
	b.DropColumn(typeColumn, idColumn)
}

func (b *Blueprint) morphs(name, indexName string, nullable bool, idColumn func(string) *ColumnDefinition) {
	typeName, idName := MorphColumns(name)

	typ := b.String(typeName, DefaultStringLength)
	id := idColumn(idName)
	if nullable {
		typ.Nullable()
		id.Nullable()
	}

	b.Index([]string{typeName, idName}, indexName)
}
