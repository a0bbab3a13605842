package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment variable read by the loader
const EnvPrefix = "MM"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig loads configuration for the environment named by MM_ENV
func LoadConfig() (*Config, error) {
	// a missing .env file is normal outside development
	_ = loadDotEnvFile()

	return LoadConfigFrom(getEnvironment(), ConfigPaths...)
}

// LoadConfigFrom reads {env}.yaml from the first path containing it, then applies
// MM_ prefixed environment overrides
func LoadConfigFrom(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.Environment = env

	processDurations(&config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

// loadDotEnvFile loads the first .env file found
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("could not load %s: %w", path, err)
		}
		return nil
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.default", "default")
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.defaultMorphKeyType", "int")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("migration.autoRun", true)
	v.SetDefault("migration.rollback", false)
	v.SetDefault("migration.morphKeyType", "numeric")
}

// getEnvironment determines the environment to use based on MM_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides lets the short MM_DB_* variables override the default connection
func processEnvOverrides(v *viper.Viper) {
	connection := "database.connections." + v.GetString("database.default") + "."

	stringOverrides := map[string]string{
		"DB_DRIVER":   "driver",
		"DB_HOST":     "host",
		"DB_PORT":     "port",
		"DB_USERNAME": "username",
		"DB_PASSWORD": "password",
		"DB_NAME":     "database",
		"DB_SSL_MODE": "sslMode",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(EnvPrefix + "_" + env); value != "" {
			v.Set(connection+key, value)
		}
	}

	if maxOpenConns := getEnvInt(EnvPrefix+"_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set(connection+"maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt(EnvPrefix+"_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set(connection+"maxIdleConns", maxIdleConns)
	}
	if retryAttempts := getEnvInt(EnvPrefix+"_DB_RETRY_ATTEMPTS", -1); retryAttempts >= 0 {
		v.Set("database.retryAttempts", retryAttempts)
	}

	if serverHost := os.Getenv(EnvPrefix + "_SERVER_HOST"); serverHost != "" {
		v.Set("server.host", serverHost)
	}
	if serverPort := getEnvInt(EnvPrefix+"_SERVER_PORT", 0); serverPort > 0 {
		v.Set("server.port", serverPort)
	}
	if logLevel := os.Getenv(EnvPrefix + "_LOGGER_LEVEL"); logLevel != "" {
		v.Set("logger.level", logLevel)
	}
	if morphKeyType := os.Getenv(EnvPrefix + "_MORPH_KEY_TYPE"); morphKeyType != "" {
		v.Set("migration.morphKeyType", morphKeyType)
	}
	if defaultKeyType := os.Getenv(EnvPrefix + "_DB_DEFAULT_MORPH_KEY_TYPE"); defaultKeyType != "" {
		v.Set("database.defaultMorphKeyType", defaultKeyType)
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout *= time.Second
	config.Server.WriteTimeout *= time.Second
	config.Server.IdleTimeout *= time.Second
	config.Server.ReadHeaderTimeout *= time.Second
	config.Server.ShutdownTimeout *= time.Second

	config.Database.RetryDelay *= time.Second

	for name, conn := range config.Database.Connections {
		conn.ConnMaxLifetime *= time.Minute
		conn.ConnMaxIdleTime *= time.Minute
		conn.QueryTimeout *= time.Second
		config.Database.Connections[name] = conn
	}
}
