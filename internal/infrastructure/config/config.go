package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirhossein-jamali/meta-model/internal/domain/metamodel"
	"github.com/amirhossein-jamali/meta-model/internal/domain/port/core"
	"github.com/amirhossein-jamali/meta-model/internal/domain/schema"
)

// Config holds all configuration for the application
type Config struct {
	Environment string                 `mapstructure:"environment"`
	Server      ServerConfig           `mapstructure:"server"`
	Database    DatabaseConfig         `mapstructure:"database"`
	Logger      LoggerConfig           `mapstructure:"logger"`
	Migration   MigrationConfig        `mapstructure:"migration"`
	Models      map[string]ModelConfig `mapstructure:"models"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig names the default connection and lists every connection models may use
type DatabaseConfig struct {
	Default             string                      `mapstructure:"default"`
	Connections         map[string]ConnectionConfig `mapstructure:"connections"`
	RetryAttempts       int                         `mapstructure:"retryAttempts"`
	RetryDelay          time.Duration               `mapstructure:"retryDelay"` // seconds
	DefaultMorphKeyType string                      `mapstructure:"defaultMorphKeyType"`
}

// ConnectionConfig contains the settings of one database connection
type ConnectionConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MigrationConfig controls the migrations run at startup
type MigrationConfig struct {
	AutoRun      bool   `mapstructure:"autoRun"`
	Rollback     bool   `mapstructure:"rollback"`
	MorphKeyType string `mapstructure:"morphKeyType"`
}

// ModelConfig customizes one model type. Omitted lists leave the model's own declaration untouched.
type ModelConfig struct {
	Connection string            `mapstructure:"connection"`
	Table      string            `mapstructure:"table"`
	Casts      map[string]string `mapstructure:"casts"`
	Fillable   []string          `mapstructure:"fillable"`
	Guarded    []string          `mapstructure:"guarded"`
	Hidden     []string          `mapstructure:"hidden"`
	Visible    []string          `mapstructure:"visible"`
	Appends    []string          `mapstructure:"appends"`
}

// Customization converts the declaration for the model composer
func (m ModelConfig) Customization() metamodel.Customization {
	return metamodel.Customization{
		Connection: m.Connection,
		Table:      m.Table,
		Casts:      metamodel.Casts(m.Casts),
		Fillable:   metamodel.Strings(m.Fillable...),
		Guarded:    metamodel.Strings(m.Guarded...),
		Hidden:     metamodel.Strings(m.Hidden...),
		Visible:    metamodel.Strings(m.Visible...),
		Appends:    metamodel.Strings(m.Appends...),
	}
}

// ModelCustomization returns the customization declared for a model type.
// Model keys are matched ignoring case since viper lowercases map keys.
func (c *Config) ModelCustomization(typeName string) metamodel.Customization {
	model, ok := c.Models[strings.ToLower(metamodel.BaseName(typeName))]
	if !ok {
		return metamodel.Customization{}
	}
	return model.Customization()
}

// MorphType returns the configured morph key encoding of bundled migrations
func (c *Config) MorphType() (metamodel.MorphType, error) {
	return metamodel.ParseMorphType(c.Migration.MorphKeyType)
}

// DefaultMorphKeyType returns the key type used by Morphs and NullableMorphs
// when a migration keeps the framework default
func (c *Config) DefaultMorphKeyType() (schema.MorphKeyType, error) {
	return schema.ParseMorphKeyType(c.Database.DefaultMorphKeyType)
}

// Validate checks the settings that cannot be defaulted
func (c *Config) Validate() error {
	if len(c.Database.Connections) == 0 {
		return errors.New("at least one database connection is required")
	}
	if _, ok := c.Database.Connections[c.Database.Default]; !ok {
		return fmt.Errorf("default database connection %q is not configured", c.Database.Default)
	}
	for name, model := range c.Models {
		if model.Connection == "" {
			continue
		}
		if _, ok := c.Database.Connections[model.Connection]; !ok {
			return fmt.Errorf("model %s uses unknown database connection %q", name, model.Connection)
		}
	}
	if _, err := c.MorphType(); err != nil {
		return err
	}
	if _, err := c.DefaultMorphKeyType(); err != nil {
		return err
	}
	if _, err := core.ParseLogLevel(c.Logger.Level); err != nil {
		return err
	}
	return nil
}
