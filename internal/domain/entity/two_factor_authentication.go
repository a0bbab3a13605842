package entity

import (
	"time"

	"github.com/amirhossein-jamali/meta-model/internal/domain/metamodel"
	"github.com/amirhossein-jamali/meta-model/internal/domain/schema"
	"github.com/spf13/cast"
)

// TwoFactorAuthentication holds the time based one time password settings of an authenticatable record
type TwoFactorAuthentication struct {
	*Model
}

// TwoFactorAuthenticationType registers the two factor model with the given customization.
// The table is derived from the type name unless declared.
func TwoFactorAuthenticationType(custom metamodel.Customization) *metamodel.Composer {
	return metamodel.NewComposer(metamodel.TypeName(TwoFactorAuthentication{}), custom, TwoFactorAuthenticationMigration)
}

// NewTwoFactorAuthentication creates a two factor record carrying the composer's customization
func NewTwoFactorAuthentication(composer *metamodel.Composer) *TwoFactorAuthentication {
	m := NewModel()
	m.MergeFillable([]string{"digits", "seconds", "window", "algorithm"})
	m.MergeCasts(map[string]string{
		"digits":                      "integer",
		"seconds":                     "integer",
		"window":                      "integer",
		"enabled_at":                  "datetime",
		"recovery_codes":              "collection",
		"recovery_codes_generated_at": "datetime",
		"safe_devices":                "collection",
	})
	m.SetHidden([]string{"shared_secret", "recovery_codes", "safe_devices"})

	composer.Initialize(m)
	return &TwoFactorAuthentication{Model: m}
}

// ID returns the database assigned key
func (t *TwoFactorAuthentication) ID() int64 {
	return cast.ToInt64(t.Key())
}

// Digits returns the length of generated codes
func (t *TwoFactorAuthentication) Digits() int {
	digits, _ := t.Get("digits")
	return cast.ToInt(digits)
}

// IsEnabled reports whether the second factor has been confirmed
func (t *TwoFactorAuthentication) IsEnabled() bool {
	enabledAt, _ := t.Raw("enabled_at")
	return enabledAt != nil
}

// Enable confirms the second factor
func (t *TwoFactorAuthentication) Enable(now time.Time) error {
	return t.Set("enabled_at", now)
}

// Authenticatable attaches the record to its owner through the morph relation
func (t *TwoFactorAuthentication) Authenticatable(ownerType string, ownerID any) error {
	if err := t.Set("authenticatable_type", ownerType); err != nil {
		return err
	}
	return t.Set("authenticatable_id", ownerID)
}

// TwoFactorAuthenticationMigration builds the migration creating the two factor table
func TwoFactorAuthenticationMigration(model metamodel.Tabler, columns []metamodel.ColumnsFunc) *metamodel.Migration {
	return metamodel.NewMigration(model, metamodel.CreatorFunc(createTwoFactorAuthentications), metamodel.WithColumns(columns...))
}

func createTwoFactorAuthentications(m *metamodel.Migration, table *schema.Blueprint) error {
	table.ID()

	if err := m.CreateMorph(table, "authenticatable", "2fa_auth_type_auth_id_index"); err != nil {
		return err
	}

	table.Text("shared_secret")
	table.Timestamp("enabled_at").Nullable()
	table.String("label", 0)
	table.Integer("digits").Default(6)
	table.Integer("seconds").Default(30)
	table.Integer("window").Default(0)
	table.String("algorithm", 16).Default("sha1")
	table.JSON("recovery_codes").Nullable()
	table.Timestamp("recovery_codes_generated_at").Nullable()
	table.JSON("safe_devices").Nullable()

	m.AddColumns(table)

	table.Timestamps()
	return nil
}
