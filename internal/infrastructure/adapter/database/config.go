package database

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/meta-model/internal/infrastructure/config"
)

// Config represents the configuration of one named connection
type Config struct {
	Name            string
	Driver          string
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	QueryTimeout    time.Duration
	LogLevel        string
}

// DefaultConfig returns a Config with default values for the named connection
func DefaultConfig(name string) *Config {
	return &Config{
		Name:            name,
		Driver:          "postgres",
		Port:            5432,
		SSLMode:         "disable",
		MaxOpenConns:    25,
		MaxIdleConns:    25,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    10 * time.Second,
		LogLevel:        "info",
	}
}

// NewConfigs adapts the application configuration to one Config per connection, sorted by name
func NewConfigs(conf *config.Config) []*Config {
	configs := make([]*Config, 0, len(conf.Database.Connections))
	for name, conn := range conf.Database.Connections {
		c := DefaultConfig(name)
		c.Host = conn.Host
		c.Username = conn.Username
		c.Password = conn.Password
		c.Database = conn.Database
		if conn.Driver != "" {
			c.Driver = conn.Driver
		}
		if port := ParsePort(conn.Port); port > 0 {
			c.Port = port
		}
		if conn.SSLMode != "" {
			c.SSLMode = conn.SSLMode
		}
		if conn.MaxOpenConns > 0 {
			c.MaxOpenConns = conn.MaxOpenConns
		}
		if conn.MaxIdleConns > 0 {
			c.MaxIdleConns = conn.MaxIdleConns
		}
		if conn.ConnMaxLifetime > 0 {
			c.ConnMaxLifetime = conn.ConnMaxLifetime
		}
		if conn.ConnMaxIdleTime > 0 {
			c.ConnMaxIdleTime = conn.ConnMaxIdleTime
		}
		if conn.QueryTimeout > 0 {
			c.QueryTimeout = conn.QueryTimeout
		}
		if conf.Logger.Level != "" {
			c.LogLevel = conf.Logger.Level
		}
		configs = append(configs, c)
	}
	sort.Slice(configs, func(i, j int) bool { return configs[i].Name < configs[j].Name })
	return configs
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("database host is required for connection %q", c.Name)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Port)
	}
	if c.Username == "" {
		return errors.New("database username is required")
	}
	if c.Database == "" {
		return errors.New("database name is required")
	}
	if c.Driver != "postgres" {
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	validSSLModes := map[string]bool{
		"disable":     true,
		"require":     true,
		"verify-ca":   true,
		"verify-full": true,
		"prefer":      true,
	}
	if !validSSLModes[c.SSLMode] {
		return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns <= 0 {
		return fmt.Errorf("max idle connections must be positive, got: %d", c.MaxIdleConns)
	}
	if c.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}
	return nil
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}

// ParsePort converts a port string to an int, 0 when unset or invalid
func ParsePort(port string) int {
	p, err := strconv.Atoi(port)
	if err != nil || p <= 0 || p > 65535 {
		return 0
	}
	return p
}
