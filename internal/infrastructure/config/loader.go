package config

import (
	"errors"
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

// EnvPrefix prefixes every environment override, e.g. CD_SERVER_PORT
const EnvPrefix = "CD"

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

// unprefixedEnv maps the plain variable names used by hosting platforms onto config keys
var unprefixedEnv = map[string]string{
	"DATABASE_URL":                "database.url",
	"SECRET_KEY":                  "auth.secretKey",
	"ALGORITHM":                   "auth.algorithm",
	"ACCESS_TOKEN_EXPIRE_MINUTES": "auth.accessTokenExpireMinutes",
	"GEMINI_API_KEY":              "gemini.apiKey",
	"GEMINI_MODEL":                "gemini.model",
	"PORT":                        "server.port",
}

// durationKeys hold plain numbers in files and the environment; processDurations applies the unit
var durationKeys = []string{
	"server.readTimeout",
	"server.writeTimeout",
	"server.idleTimeout",
	"server.readHeaderTimeout",
	"server.shutdownTimeout",
	"database.connMaxLifetime",
	"database.connMaxIdleTime",
	"database.queryTimeout",
	"database.retryDelay",
	"auth.accessTokenExpireMinutes",
}

// LoadConfig loads configuration for the environment named by CD_ENV
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	return Load(getEnvironment(), ConfigPaths)
}

// Load reads <env>.yaml from the first matching path, then applies environment overrides.
// A missing file is not an error; defaults and the environment still apply.
func Load(env string, paths []string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
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
	config.Auth.Algorithm = strings.ToUpper(strings.TrimSpace(config.Auth.Algorithm))
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found. Existing variables are not overwritten.
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	return lastError
}

// setDefaults registers every key so AutomaticEnv can override it
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.readTimeout", 30)  // seconds; uploads and classifier calls are slow
	v.SetDefault("server.writeTimeout", 90) // seconds
	v.SetDefault("server.idleTimeout", 120)
	v.SetDefault("server.readHeaderTimeout", 10)
	v.SetDefault("server.shutdownTimeout", 15)

	// Database defaults
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.url", "")
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.sqlitePath", "currency_detector.db")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 5) // minutes
	v.SetDefault("database.connMaxIdleTime", 5) // minutes
	v.SetDefault("database.queryTimeout", 10)   // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 2) // seconds
	v.SetDefault("database.logLevel", "warn")

	// Auth defaults
	v.SetDefault("auth.secretKey", "")
	v.SetDefault("auth.algorithm", "HS256")
	v.SetDefault("auth.accessTokenExpireMinutes", 60)
	v.SetDefault("auth.bcryptCost", 12)

	// Classifier defaults
	v.SetDefault("gemini.apiKey", "")
	v.SetDefault("gemini.model", "gemini-2.5-flash")

	// Upload defaults
	v.SetDefault("upload.staticDir", "static")
	v.SetDefault("upload.subdir", "uploads")
	v.SetDefault("upload.maxSizeBytes", 10<<20)

	// Logger defaults
	v.SetDefault("logger.level", "info")
}

// getEnvironment determines the environment to use based on the CD_ENV environment variable
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides applies the unprefixed variables on top of file and prefixed values
func processEnvOverrides(v *viper.Viper) {
	for envName, key := range unprefixedEnv {
		if value := os.Getenv(envName); value != "" {
			v.Set(key, value)
		}
	}

	// Environment values arrive as strings, which the duration decode hook would reject
	for _, key := range durationKeys {
		if n, err := strconv.Atoi(v.GetString(key)); err == nil {
			v.Set(key, n)
		}
	}
}

// processDurations converts the raw numbers decoded into time.Duration fields into real durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Auth.AccessTokenExpiry = time.Duration(config.Auth.AccessTokenExpiry) * time.Minute
}

// Validate ensures all required configuration values are present
func (c *Config) Validate() error {
	var missing []string

	if c.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if c.Server.ShutdownTimeout == 0 {
		missing = append(missing, "server.shutdownTimeout")
	}
	if c.Database.URL == "" && c.Database.Driver == "" {
		missing = append(missing, "database.driver (or DATABASE_URL)")
	}
	if c.Auth.SecretKey == "" {
		missing = append(missing, "auth.secretKey (or SECRET_KEY)")
	}
	if c.Auth.AccessTokenExpiry <= 0 {
		missing = append(missing, "auth.accessTokenExpireMinutes")
	}
	if c.Gemini.APIKey == "" {
		missing = append(missing, "gemini.apiKey (or GEMINI_API_KEY)")
	}
	if c.Upload.StaticDir == "" {
		missing = append(missing, "upload.staticDir")
	}
	if c.Upload.MaxSizeBytes <= 0 {
		missing = append(missing, "upload.maxSizeBytes")
	}
	if c.Logger.Level == "" {
		missing = append(missing, "logger.level")
	}

	if c.Environment != Development && c.Environment != Production && c.Environment != Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			c.Environment, Development, Production, Test)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}

	switch c.Auth.Algorithm {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("unsupported token algorithm: %s", c.Auth.Algorithm)
	}

	return nil
}

// IsProduction reports whether the production profile is active
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}
