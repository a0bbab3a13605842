package entity

import (
	"time"

	"github.com/amirhossein-jamali/meta-model/internal/domain/metamodel"
	"github.com/amirhossein-jamali/meta-model/internal/domain/schema"
	"github.com/spf13/cast"
)

// WebAuthnCredentialTable is the table used when no other is declared
const WebAuthnCredentialTable = "webauthn_credentials"

// WebAuthnCredential stores a public key credential registered by an authenticatable record
type WebAuthnCredential struct {
	*Model
}

// WebAuthnCredentialType registers the credential model with the given customization
func WebAuthnCredentialType(custom metamodel.Customization) *metamodel.Composer {
	if custom.Table == "" {
		custom.Table = WebAuthnCredentialTable
	}
	return metamodel.NewComposer(metamodel.TypeName(WebAuthnCredential{}), custom, WebAuthnCredentialMigration)
}

// NewWebAuthnCredential creates a credential carrying the composer's customization
func NewWebAuthnCredential(composer *metamodel.Composer) *WebAuthnCredential {
	m := NewModel()
	m.SetIncrementing(false)
	m.MergeFillable([]string{
		"id", "authenticatable_type", "authenticatable_id", "user_id", "alias", "counter",
		"rp_id", "origin", "transports", "aaguid", "public_key", "attestation_format", "certificates",
	})
	m.MergeCasts(map[string]string{
		"counter":      "integer",
		"transports":   "array",
		"certificates": "array",
		"disabled_at":  "timestamp",
	})
	m.SetHidden([]string{"public_key"})
	m.SetAppends([]string{"is_enabled"})
	m.Accessor("is_enabled", func(m *Model) any {
		disabledAt, _ := m.Raw("disabled_at")
		return disabledAt == nil
	})

	composer.Initialize(m)
	return &WebAuthnCredential{Model: m}
}

// ID returns the credential id
func (c *WebAuthnCredential) ID() string {
	return cast.ToString(c.Key())
}

// Alias returns the user given name of the authenticator
func (c *WebAuthnCredential) Alias() string {
	alias, _ := c.Get("alias")
	return cast.ToString(alias)
}

// Counter returns the signature counter
func (c *WebAuthnCredential) Counter() int64 {
	counter, _ := c.Get("counter")
	return cast.ToInt64(counter)
}

// IsEnabled reports whether the credential may still be used
func (c *WebAuthnCredential) IsEnabled() bool {
	enabled, _ := c.Get("is_enabled")
	return cast.ToBool(enabled)
}

// Disable marks the credential as unusable from now on
func (c *WebAuthnCredential) Disable(now time.Time) error {
	return c.Set("disabled_at", now)
}

// WebAuthnCredentialMigration builds the migration creating the credentials table
func WebAuthnCredentialMigration(model metamodel.Tabler, columns []metamodel.ColumnsFunc) *metamodel.Migration {
	return metamodel.NewMigration(model, metamodel.CreatorFunc(createWebAuthnCredentials), metamodel.WithColumns(columns...))
}

func createWebAuthnCredentials(m *metamodel.Migration, table *schema.Blueprint) error {
	table.String("id", 510).Primary()

	if err := m.CreateMorph(table, "authenticatable", "webauthn_user_index"); err != nil {
		return err
	}

	table.UUID("user_id")
	table.String("alias", 0).Nullable()
	table.UnsignedBigInteger("counter").Nullable()
	table.String("rp_id", 0)
	table.String("origin", 0)
	table.JSON("transports").Nullable()
	table.UUID("aaguid").Nullable()
	table.Text("public_key")
	table.String("attestation_format", 0).Default("none")
	table.JSON("certificates").Nullable()
	table.Timestamp("disabled_at").Nullable()

	m.AddColumns(table)

	table.Timestamps()
	return nil
}
