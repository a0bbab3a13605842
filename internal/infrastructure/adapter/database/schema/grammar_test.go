package schema

import (
	"testing"
	"time"

	domainschema "github.com/amirhossein-jamali/meta-model/internal/domain/schema"
	"github.com/stretchr/testify/assert"
)

func TestCompileCreate(t *testing.T) {
	bp := domainschema.NewBlueprint("api_tokens")
	bp.ID()
	bp.String("name", 0)
	bp.UUID("owner").Nullable()
	bp.Boolean("active").Default(true)
	bp.Timestamp("expires_at").UseCurrent()
	bp.String("token", 64).Unique()
	bp.NumericMorphs("tokenable", "")
	bp.Text("note").Comment("it's")

	statements := NewGrammar().CompileCreate(bp)

	assert.Equal(t, []string{
		`create table "api_tokens" (` +
			`"id" bigserial not null primary key, ` +
			`"name" varchar(255) not null, ` +
			`"owner" uuid null, ` +
			`"active" boolean not null default true, ` +
			`"expires_at" timestamp(0) without time zone not null default CURRENT_TIMESTAMP, ` +
			`"token" varchar(64) not null, ` +
			`"tokenable_type" varchar(255) not null, ` +
			`"tokenable_id" bigint not null, ` +
			`"note" text not null)`,
		`create index "api_tokens_tokenable_type_tokenable_id_index" on "api_tokens" ("tokenable_type", "tokenable_id")`,
		`alter table "api_tokens" add constraint "api_tokens_token_unique" unique ("token")`,
		`comment on column "api_tokens"."note" is 'it''s'`,
	}, statements)
}

func TestCompileCreateWithDeclaredPrimaryKey(t *testing.T) {
	bp := domainschema.NewBlueprint("webauthn_credentials")
	bp.String("id", 510).Primary()
	bp.ULIDMorphs("authenticatable", "webauthn_user_index")

	statements := NewGrammar().CompileCreate(bp)

	assert.Equal(t, `create table "webauthn_credentials" (`+
		`"id" varchar(510) not null, `+
		`"authenticatable_type" varchar(255) not null, `+
		`"authenticatable_id" char(26) not null, `+
		`primary key ("id"))`, statements[0])
	assert.Equal(t, `create index "webauthn_user_index" on "webauthn_credentials" ("authenticatable_type", "authenticatable_id")`, statements[1])
}

func TestCompileAlter(t *testing.T) {
	bp := domainschema.NewBlueprint("two_factor_authentications")
	bp.String("device", 0).Nullable().Index()
	bp.DropMorphs("authenticatable", "")

	statements := NewGrammar().CompileAlter(bp)

	assert.Equal(t, []string{
		`alter table "two_factor_authentications" add column "device" varchar(255) null`,
		`drop index "two_factor_authentications_authenticatable_type_authenticatable_id_index"`,
		`alter table "two_factor_authentications" drop column "authenticatable_type", drop column "authenticatable_id"`,
		`create index "two_factor_authentications_device_index" on "two_factor_authentications" ("device")`,
	}, statements)
}

func TestCompileAlterWithoutChanges(t *testing.T) {
	assert.Empty(t, NewGrammar().CompileAlter(domainschema.NewBlueprint("notes")))
}

func TestDefaultValues(t *testing.T) {
	g := NewGrammar()

	testCases := []struct {
		value    any
		expected string
	}{
		{nil, "null"},
		{"none", "'none'"},
		{"o'clock", "'o''clock'"},
		{false, "false"},
		{6, "6"},
		{1.5, "1.5"},
		{domainschema.Expression("gen_random_uuid()"), "gen_random_uuid()"},
		{time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC), "'2024-05-01 08:30:00'"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, g.defaultValue(tc.value))
	}
}

func TestWrapEscapesQuotes(t *testing.T) {
	assert.Equal(t, `"we""ird"`, NewGrammar().wrap(`we"ird`))
	assert.Equal(t, `drop table if exists "notes"`, NewGrammar().CompileDropIfExists("notes"))
}
