package metamodel

import (
	"testing"

	"github.com/amirhossein-jamali/meta-model/internal/domain/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeModel mirrors the base model's merge rules closely enough to observe the composer
type fakeModel struct {
	connection string
	table      string
	casts      map[string]string
	fillable   []string
	guarded    []string
	hidden     []string
	visible    []string
	appends    []string
}

func newFakeModel() *fakeModel {
	return &fakeModel{casts: map[string]string{}, guarded: []string{"*"}}
}

func (m *fakeModel) SetConnection(name string) { m.connection = name }
func (m *fakeModel) SetTable(name string)      { m.table = name }
func (m *fakeModel) MergeCasts(casts map[string]string) {
	for k, v := range casts {
		m.casts[k] = v
	}
}
func (m *fakeModel) MergeFillable(fillable []string) { m.fillable = mergeUnique(m.fillable, fillable) }
func (m *fakeModel) MergeGuarded(guarded []string)   { m.guarded = mergeUnique(m.guarded, guarded) }
func (m *fakeModel) SetGuarded(guarded []string)     { m.guarded = guarded }
func (m *fakeModel) TotallyGuarded() bool {
	return len(m.fillable) == 0 && len(m.guarded) == 1 && m.guarded[0] == "*"
}
func (m *fakeModel) Hidden() []string            { return m.hidden }
func (m *fakeModel) SetHidden(hidden []string)   { m.hidden = hidden }
func (m *fakeModel) Visible() []string           { return m.visible }
func (m *fakeModel) SetVisible(visible []string) { m.visible = visible }
func (m *fakeModel) Appends() []string           { return m.appends }
func (m *fakeModel) SetAppends(appends []string) { m.appends = appends }

func noMigration(model Tabler, columns []ColumnsFunc) *Migration {
	return NewMigration(model, CreatorFunc(createNothing), WithColumns(columns...))
}

func TestTableNameDerivation(t *testing.T) {
	testCases := []struct {
		typeName string
		expected string
	}{
		{"ApiToken", "api_tokens"},
		{"entity.WebAuthnCredential", "web_authn_credentials"},
		{"App/Models/Person", "people"},
		{"TwoFactorAuthentication", "two_factor_authentications"},
		{"Category", "categories"},
		{"HTTPLog", "http_logs"},
	}

	for _, tc := range testCases {
		t.Run(tc.typeName, func(t *testing.T) {
			c := NewComposer(tc.typeName, Customization{}, noMigration)
			assert.Equal(t, tc.expected, c.TableName())
		})
	}
}

func TestDeclaredTableIsKept(t *testing.T) {
	c := NewComposer("ApiToken", Customization{Table: "tokens", Connection: "audit"}, noMigration)

	assert.Equal(t, "tokens", c.TableName())
	assert.Equal(t, "audit", c.Connection())
	assert.Equal(t, "ApiToken", c.TypeName())

	m := newFakeModel()
	c.Initialize(m)
	assert.Equal(t, "tokens", m.table)
	assert.Equal(t, "audit", m.connection)
}

func TestNewComposerRequiresMigration(t *testing.T) {
	assert.Panics(t, func() {
		NewComposer("ApiToken", Customization{}, nil)
	})
}

func TestCastsAreMerged(t *testing.T) {
	c := NewComposer("ApiToken", Customization{
		Casts: Casts(map[string]string{"abilities": "json", "expires_at": "datetime"}),
	}, noMigration)

	m := newFakeModel()
	m.casts["id"] = "int"
	m.casts["abilities"] = "array"
	c.Initialize(m)

	assert.Equal(t, map[string]string{
		"id":         "int",
		"abilities":  "json",
		"expires_at": "datetime",
	}, m.casts)
}

func TestGuardedMergedWhenNotTotallyGuarded(t *testing.T) {
	c := NewComposer("ApiToken", Customization{
		Fillable: Strings("name"),
		Guarded:  Strings("token", "id"),
	}, noMigration)

	m := newFakeModel()
	m.guarded = []string{"id", "secret"}
	c.Initialize(m)

	assert.Equal(t, []string{"name"}, m.fillable)
	assert.Equal(t, []string{"id", "secret", "token"}, m.guarded)
}

func TestGuardedReplacedWhenTotallyGuarded(t *testing.T) {
	c := NewComposer("ApiToken", Customization{
		Guarded: Strings("token"),
	}, noMigration)

	m := newFakeModel()
	require.True(t, m.TotallyGuarded())
	c.Initialize(m)

	assert.Equal(t, []string{"token"}, m.guarded)
}

func TestDeclaredFillableLiftsTotallyGuarded(t *testing.T) {
	c := NewComposer("ApiToken", Customization{
		Fillable: Strings("name"),
		Guarded:  Strings("token"),
	}, noMigration)

	m := newFakeModel()
	c.Initialize(m)

	assert.Equal(t, []string{"*", "token"}, m.guarded)
}

func TestHiddenVisibleAppendsMergedUnique(t *testing.T) {
	c := NewComposer("ApiToken", Customization{
		Hidden:  Strings("token", "secret"),
		Visible: Strings("name"),
		Appends: Strings("is_expired", "is_expired"),
	}, noMigration)

	m := newFakeModel()
	m.hidden = []string{"secret"}
	m.visible = []string{"id", "name"}
	c.Initialize(m)

	assert.Equal(t, []string{"secret", "token"}, m.hidden)
	assert.Equal(t, []string{"id", "name"}, m.visible)
	assert.Equal(t, []string{"is_expired"}, m.appends)
}

func TestEmptyDeclarationsLeaveListsUntouched(t *testing.T) {
	c := NewComposer("ApiToken", Customization{}, noMigration)

	m := newFakeModel()
	m.hidden = []string{"secret"}
	c.Initialize(m)

	assert.Equal(t, []string{"secret"}, m.hidden)
	assert.Nil(t, m.visible)
	assert.Nil(t, m.appends)
}

func TestDeferredValuesResolvedOncePerInstance(t *testing.T) {
	calls := map[string][]Model{}
	track := func(slot string, result []string) Value[[]string] {
		return Deferred(func(m Model) []string {
			calls[slot] = append(calls[slot], m)
			return result
		})
	}

	c := NewComposer("ApiToken", Customization{
		Casts: Deferred(func(m Model) map[string]string {
			calls["casts"] = append(calls["casts"], m)
			return map[string]string{"abilities": "json"}
		}),
		Fillable: track("fillable", []string{"name"}),
		Guarded:  track("guarded", []string{"token"}),
		Hidden:   track("hidden", []string{"token", "token"}),
		Visible:  track("visible", nil),
		Appends:  track("appends", []string{"is_expired"}),
	}, noMigration)

	first := newFakeModel()
	second := newFakeModel()
	c.Initialize(first)
	c.Initialize(second)

	for _, slot := range []string{"casts", "fillable", "guarded", "hidden", "visible", "appends"} {
		require.Len(t, calls[slot], 2, slot)
		assert.Same(t, first, calls[slot][0], slot)
		assert.Same(t, second, calls[slot][1], slot)
	}

	assert.Equal(t, "json", first.casts["abilities"])
	assert.Equal(t, []string{"name"}, first.fillable)
	assert.Equal(t, []string{"*", "token"}, first.guarded)
	assert.Equal(t, []string{"token"}, first.hidden)
	assert.Equal(t, []string{"is_expired"}, first.appends)
}

func TestDeferredGuardedReplacesWhenTotallyGuarded(t *testing.T) {
	c := NewComposer("ApiToken", Customization{
		Guarded: Deferred(func(m Model) []string {
			return []string{"token", "abilities"}
		}),
	}, noMigration)

	m := newFakeModel()
	c.Initialize(m)

	assert.Equal(t, []string{"token", "abilities"}, m.guarded)
}

func TestComposerMigrationPassesColumns(t *testing.T) {
	var order []string
	c := NewComposer("ApiToken", Customization{}, noMigration)

	m := c.Migration(
		func(table *schema.Blueprint) { order = append(order, "first") },
		func(table *schema.Blueprint) { order = append(order, "second") },
	)

	assert.Equal(t, "api_tokens", m.Table())
	m.AddColumns(schema.NewBlueprint("api_tokens"))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestValue(t *testing.T) {
	var empty Value[[]string]
	assert.False(t, empty.Present())
	assert.False(t, empty.IsDeferred())
	assert.Nil(t, empty.Resolve(nil))

	literal := Strings("a")
	assert.True(t, literal.Present())
	assert.Equal(t, []string{"a"}, literal.Resolve(nil))

	deferred := Deferred(func(Model) []string { return nil })
	assert.True(t, deferred.Present())
	assert.True(t, deferred.IsDeferred())
}

func TestTypeName(t *testing.T) {
	type ApiToken struct{}

	assert.Equal(t, "ApiToken", TypeName(&ApiToken{}))
	assert.Equal(t, "ApiToken", TypeName(ApiToken{}))
	assert.Equal(t, "", TypeName(nil))
}
