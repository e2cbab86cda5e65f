package database

import (
	"fmt"
	"strings"
)

// Supported drivers for the nutrition cache
const (
	DriverNone     = "none"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (postgres, sqlite, none)
	Driver string

	// PostgreSQL-specific configuration
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLite-specific configuration
	Path string
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s}",
		c.Driver, c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path)
}

// Enabled reports whether a database should be opened at all
func (c *DatabaseConfig) Enabled() bool {
	driver := c.normalizedDriver()
	return driver != DriverNone && driver != ""
}

// DSN builds a Data Source Name string based on the driver
func (c *DatabaseConfig) DSN() string {
	switch c.normalizedDriver() {
	case DriverPostgres:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case DriverSQLite:
		if c.Path == "" {
			return ":memory:"
		}
		return c.Path
	default:
		return ""
	}
}

// inMemory reports whether the DSN points at a private SQLite memory database
func (c *DatabaseConfig) inMemory() bool {
	return c.normalizedDriver() == DriverSQLite && strings.Contains(c.DSN(), ":memory:")
}

func (c *DatabaseConfig) normalizedDriver() string {
	switch driver := strings.ToLower(strings.TrimSpace(c.Driver)); driver {
	case "postgresql":
		return DriverPostgres
	case "sqlite3":
		return DriverSQLite
	default:
		return driver
	}
}
