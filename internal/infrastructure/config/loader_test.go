package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/amirhossein-jamali/meta-model/internal/domain/metamodel"
	"github.com/amirhossein-jamali/meta-model/internal/domain/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
server:
  port: 9090
database:
  default: main
  connections:
    main:
      driver: postgres
      host: localhost
      port: "5432"
      username: app
      password: secret
      database: metamodel
      maxOpenConns: 10
      connMaxLifetime: 30
      queryTimeout: 5
    auth:
      driver: postgres
      host: auth-db
      database: auth
logger:
  level: debug
migration:
  morphKeyType: uuid
models:
  WebAuthnCredential:
    connection: auth
    table: passkeys
    hidden: [counter]
    casts:
      counter: integer
`

func writeConfig(t *testing.T, env, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(content), 0o600))
	return dir
}

func TestLoadConfigFrom(t *testing.T) {
	dir := writeConfig(t, Test, testConfig)

	cfg, err := LoadConfigFrom(Test, dir)
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "main", cfg.Database.Default)
	assert.Equal(t, 3, cfg.Database.RetryAttempts)

	main := cfg.Database.Connections["main"]
	assert.Equal(t, "localhost", main.Host)
	assert.Equal(t, 10, main.MaxOpenConns)
	assert.Equal(t, 30*time.Minute, main.ConnMaxLifetime)
	assert.Equal(t, 5*time.Second, main.QueryTimeout)
	assert.Equal(t, "auth-db", cfg.Database.Connections["auth"].Host)

	morphType, err := cfg.MorphType()
	require.NoError(t, err)
	assert.Equal(t, metamodel.MorphUUID, morphType)
	assert.True(t, cfg.Migration.AutoRun)

	keyType, err := cfg.DefaultMorphKeyType()
	require.NoError(t, err)
	assert.Equal(t, schema.MorphKeyInt, keyType)
}

func TestLoadConfigFromEnvOverrides(t *testing.T) {
	dir := writeConfig(t, Test, testConfig)
	t.Setenv("MM_DB_HOST", "db.internal")
	t.Setenv("MM_DB_PASSWORD", "from-env")
	t.Setenv("MM_LOGGER_LEVEL", "warn")
	t.Setenv("MM_MORPH_KEY_TYPE", "ulid")
	t.Setenv("MM_DB_DEFAULT_MORPH_KEY_TYPE", "uuid")

	cfg, err := LoadConfigFrom(Test, dir)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Connections["main"].Host)
	assert.Equal(t, "from-env", cfg.Database.Connections["main"].Password)
	assert.Equal(t, "auth-db", cfg.Database.Connections["auth"].Host)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "ulid", cfg.Migration.MorphKeyType)

	keyType, err := cfg.DefaultMorphKeyType()
	require.NoError(t, err)
	assert.Equal(t, schema.MorphKeyUUID, keyType)
}

func TestLoadConfigFromRejectsInvalidSettings(t *testing.T) {
	tests := map[string]string{
		"missing default connection": `
database:
  default: main
  connections:
    other:
      host: localhost
`,
		"unknown model connection": `
database:
  connections:
    default:
      host: localhost
models:
  TwoFactorAuthentication:
    connection: audit
`,
		"unknown morph key type": `
database:
  connections:
    default:
      host: localhost
migration:
  morphKeyType: snowflake
`,
		"unknown default morph key type": `
database:
  defaultMorphKeyType: bigint
  connections:
    default:
      host: localhost
`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfigFrom(Test, writeConfig(t, Test, content))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigFromMissingFile(t *testing.T) {
	_, err := LoadConfigFrom(Production, t.TempDir())
	assert.Error(t, err)
}

func TestModelCustomization(t *testing.T) {
	cfg, err := LoadConfigFrom(Test, writeConfig(t, Test, testConfig))
	require.NoError(t, err)

	custom := cfg.ModelCustomization("entity.WebAuthnCredential")
	assert.Equal(t, "auth", custom.Connection)
	assert.Equal(t, "passkeys", custom.Table)
	assert.Equal(t, []string{"counter"}, custom.Hidden.Resolve(nil))
	assert.Equal(t, map[string]string{"counter": "integer"}, custom.Casts.Resolve(nil))
	assert.False(t, custom.Fillable.Present())
	assert.False(t, custom.Guarded.Present())

	assert.Equal(t, metamodel.Customization{}, cfg.ModelCustomization("TwoFactorAuthentication"))
}
