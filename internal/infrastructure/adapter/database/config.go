package database

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config represents database configuration
type Config struct {
	Driver          string
	URL             string // full connection string; takes precedence over the discrete fields
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	SSLMode         string
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	QueryTimeout    time.Duration
	LogLevel        string
	RetryAttempts   int
	RetryDelay      time.Duration
}

// DefaultConfig returns a Config with default values for a local SQLite file
func DefaultConfig() *Config {
	return &Config{
		Driver:          DriverSQLite,
		Port:            5432,
		SSLMode:         "disable",
		SQLitePath:      "currency_detector.db",
		MaxOpenConns:    25,
		MaxIdleConns:    25,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    10 * time.Second,
		LogLevel:        "warn",
		RetryAttempts:   3,
		RetryDelay:      time.Second,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		if c.URL == "" {
			if err := c.validatePostgresFields(); err != nil {
				return err
			}
		}
	case DriverSQLite:
		if c.URL == "" && c.SQLitePath == "" {
			return errors.New("sqlite path is required")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
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
	if c.RetryAttempts < 1 {
		return fmt.Errorf("retry attempts must be at least 1, got: %d", c.RetryAttempts)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay must be non-negative, got: %s", c.RetryDelay)
	}

	validLogLevels := map[string]bool{
		"silent": true,
		"debug":  true,
		"info":   true,
		"warn":   true,
		"error":  true,
	}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}

func (c *Config) validatePostgresFields() error {
	if c.Host == "" {
		return errors.New("database host is required")
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
	return nil
}

// DSN returns the connection string for the configured driver
func (c *Config) DSN() string {
	url := stripDriverSuffix(c.URL)
	if c.Driver == DriverSQLite {
		path := c.SQLitePath
		if url != "" {
			path = strings.TrimPrefix(url, "sqlite:///")
		}
		return sqliteDSN(path)
	}
	if url != "" {
		return url
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}

// Redacted returns a loggable description of the target database
func (c *Config) Redacted() string {
	switch {
	case c.Driver == DriverSQLite && c.URL == "":
		return c.SQLitePath
	case c.URL != "":
		if i := strings.LastIndex(c.URL, "@"); i >= 0 {
			return c.URL[i+1:]
		}
		return c.Driver
	default:
		return fmt.Sprintf("%s:%d/%s", c.Host, c.Port, c.Database)
	}
}

// DriverFromURL infers the driver from a connection URL, defaulting to postgres
func DriverFromURL(url string) string {
	lower := strings.ToLower(stripDriverSuffix(url))
	switch {
	case strings.HasPrefix(lower, "sqlite:"), strings.HasPrefix(lower, "file:"):
		return DriverSQLite
	default:
		return DriverPostgres
	}
}

// sqliteDSN enables foreign keys, which SQLite leaves off per connection
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// stripDriverSuffix drops the "+driver" part of a scheme such as
// postgresql+asyncpg:// or sqlite+aiosqlite:///
func stripDriverSuffix(url string) string {
	scheme, rest, ok := strings.Cut(url, "://")
	if !ok {
		return url
	}
	if i := strings.Index(scheme, "+"); i >= 0 {
		scheme = scheme[:i]
	}
	return scheme + "://" + rest
}
