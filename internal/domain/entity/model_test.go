package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/meta-model/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModelIsTotallyGuarded(t *testing.T) {
	m := NewModel()

	assert.True(t, m.TotallyGuarded())
	assert.Equal(t, []string{"*"}, m.Guarded())
	assert.Empty(t, m.Fillable())
	assert.Equal(t, DefaultKeyName, m.KeyName())
	assert.True(t, m.Incrementing())
	assert.True(t, m.UsesTimestamps())
	assert.False(t, m.Exists())
}

func TestFill(t *testing.T) {
	t.Run("totally guarded model rejects mass assignment", func(t *testing.T) {
		m := NewModel()
		m.SetTable("api_tokens")

		err := m.Fill(map[string]any{"name": "ci", "token": "secret"})

		require.Error(t, err)
		assert.True(t, errs.IsMassAssignmentError(err))
		assert.Contains(t, err.Error(), "[name]")
		assert.Contains(t, err.Error(), "[api_tokens]")
		assert.Empty(t, m.Attributes())
	})

	t.Run("fillable keys are kept and others discarded", func(t *testing.T) {
		m := NewModel()
		m.MergeFillable([]string{"name"})

		require.NoError(t, m.Fill(map[string]any{"name": "ci", "token": "secret"}))

		assert.Equal(t, map[string]any{"name": "ci"}, m.Attributes())
	})

	t.Run("empty guarded list accepts plain keys only", func(t *testing.T) {
		m := NewModel()
		m.SetGuarded(nil)

		require.NoError(t, m.Fill(map[string]any{"name": "ci", "meta.key": 1, "_token": "x"}))

		assert.Equal(t, map[string]any{"name": "ci"}, m.Attributes())
	})

	t.Run("explicit guard wins over empty fillable", func(t *testing.T) {
		m := NewModel()
		m.SetGuarded([]string{"token"})

		require.NoError(t, m.Fill(map[string]any{"name": "ci", "token": "secret"}))

		assert.Equal(t, map[string]any{"name": "ci"}, m.Attributes())
		assert.True(t, m.IsGuarded("token"))
		assert.False(t, m.IsGuarded("name"))
	})

	t.Run("force fill ignores the rules", func(t *testing.T) {
		m := NewModel()

		require.NoError(t, m.ForceFill(map[string]any{"token": "secret"}))

		raw, ok := m.Raw("token")
		assert.True(t, ok)
		assert.Equal(t, "secret", raw)
	})
}

func TestMergeKeepsOrderAndSkipsDuplicates(t *testing.T) {
	m := NewModel()
	m.MergeFillable([]string{"a", "b"})
	m.MergeFillable([]string{"b", "c"})
	m.MergeGuarded([]string{"*", "id"})
	m.MergeCasts(map[string]string{"a": "int"})
	m.MergeCasts(map[string]string{"a": "string", "b": "bool"})

	assert.Equal(t, []string{"a", "b", "c"}, m.Fillable())
	assert.Equal(t, []string{"*", "id"}, m.Guarded())
	assert.Equal(t, map[string]string{"a": "string", "b": "bool"}, m.Casts())
	assert.False(t, m.TotallyGuarded())
}

func TestGetAppliesCasts(t *testing.T) {
	m := NewModel()
	m.MergeCasts(map[string]string{
		"counter":  "integer",
		"ratio":    "float",
		"active":   "boolean",
		"label":    "string",
		"seen_at":  "datetime",
		"settings": "json",
	})

	require.NoError(t, m.ForceFill(map[string]any{
		"counter":  "42",
		"ratio":    "0.5",
		"active":   1,
		"label":    7,
		"seen_at":  "2024-03-01T10:00:00Z",
		"settings": map[string]any{"theme": "dark"},
		"note":     "raw",
	}))

	testCases := []struct {
		key      string
		expected any
	}{
		{"counter", int64(42)},
		{"ratio", 0.5},
		{"active", true},
		{"label", "7"},
		{"seen_at", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"settings", map[string]any{"theme": "dark"}},
		{"note", "raw"},
		{"missing", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			value, err := m.Get(tc.key)
			require.NoError(t, err)
			if expectedTime, ok := tc.expected.(time.Time); ok {
				assert.True(t, expectedTime.Equal(value.(time.Time)))
				return
			}
			assert.Equal(t, tc.expected, value)
		})
	}

	raw, _ := m.Raw("settings")
	assert.Equal(t, `{"theme":"dark"}`, raw)
}

func TestGetReportsCastFailure(t *testing.T) {
	m := NewModel()
	m.MergeCasts(map[string]string{"counter": "int"})
	require.NoError(t, m.ForceFill(map[string]any{"counter": "many"}))

	_, err := m.Get("counter")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "counter")
}

func TestToMap(t *testing.T) {
	m := NewModel()
	m.MergeCasts(map[string]string{"counter": "int"})
	m.SetHidden([]string{"secret"})
	m.SetAppends([]string{"label"})
	m.Accessor("label", func(m *Model) any {
		name, _ := m.Raw("name")
		return "key " + name.(string)
	})
	require.NoError(t, m.ForceFill(map[string]any{"id": 1, "name": "ci", "secret": "s", "counter": "3"}))

	t.Run("hidden removed and appends added", func(t *testing.T) {
		out, err := m.ToMap()
		require.NoError(t, err)

		assert.Equal(t, map[string]any{
			"id":      1,
			"name":    "ci",
			"counter": int64(3),
			"label":   "key ci",
		}, out)
	})

	t.Run("visible restricts output", func(t *testing.T) {
		m.SetVisible([]string{"name", "label", "secret"})
		defer m.SetVisible(nil)

		out, err := m.ToMap()
		require.NoError(t, err)

		assert.Equal(t, map[string]any{"name": "ci", "label": "key ci"}, out)
	})
}

func TestCollectionsAreCopied(t *testing.T) {
	m := NewModel()
	m.SetHidden([]string{"secret"})

	hidden := m.Hidden()
	hidden[0] = "changed"
	casts := m.Casts()
	casts["x"] = "int"

	assert.Equal(t, []string{"secret"}, m.Hidden())
	assert.NotContains(t, m.Casts(), "x")
}
