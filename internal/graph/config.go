package graph

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Default connection settings, matching a stock local Neo4j install.
const (
	DefaultURI      = "bolt://localhost:7687"
	DefaultUsername = "neo4j"
	DefaultPassword = "password"
	DefaultDatabase = "neo4j"
)

// Config holds the connection settings for a Neo4j server. It is a plain
// value: With* methods return modified copies and never mutate the receiver.
type Config struct {
	URI      string // server endpoint, e.g. "bolt://localhost:7687"
	Username string
	Password string
	Database string // logical database name sessions are bound to
}

// LoadConfig resolves settings from the process environment with hardcoded
// fallbacks. A .env file in the working directory is honored when present.
// Explicit overrides go through the With* methods afterwards.
func LoadConfig() Config {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	return Config{
		URI:      getEnv("NEO4J_URI", DefaultURI),
		Username: getEnv("NEO4J_USERNAME", DefaultUsername),
		Password: getEnv("NEO4J_PASSWORD", DefaultPassword),
		Database: getEnv("NEO4J_DATABASE", DefaultDatabase),
	}
}

// WithURI returns a copy of the config with the endpoint URI replaced.
func (c Config) WithURI(uri string) Config {
	c.URI = uri
	return c
}

// WithUsername returns a copy of the config with the username replaced.
func (c Config) WithUsername(username string) Config {
	c.Username = username
	return c
}

// WithPassword returns a copy of the config with the password replaced.
func (c Config) WithPassword(password string) Config {
	c.Password = password
	return c
}

// WithDatabase returns a copy of the config with the database name replaced.
func (c Config) WithDatabase(database string) Config {
	c.Database = database
	return c
}

// Validate checks that every setting is present.
func (c Config) Validate() error {
	if c.URI == "" {
		return &ConfigError{Field: "URI", Message: "must not be empty"}
	}
	if c.Username == "" {
		return &ConfigError{Field: "Username", Message: "must not be empty"}
	}
	if c.Password == "" {
		return &ConfigError{Field: "Password", Message: "must not be empty"}
	}
	if c.Database == "" {
		return &ConfigError{Field: "Database", Message: "must not be empty"}
	}
	return nil
}

// String renders the config without the password.
func (c Config) String() string {
	return fmt.Sprintf("Config{URI: %q, Username: %q, Database: %q}",
		c.URI, c.Username, c.Database)
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
