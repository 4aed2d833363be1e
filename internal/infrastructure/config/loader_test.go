package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
server:
  port: 9000
  readTimeout: 7
  shutdownTimeout: 4
database:
  driver: sqlite
  sqlitePath: app.db
  connMaxLifetime: 3
  queryTimeout: 2
  retryDelay: 1
auth:
  secretKey: from-file
  accessTokenExpireMinutes: 45
gemini:
  apiKey: file-key
logger:
  level: debug
`

func writeConfig(t *testing.T, env, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(body), 0o644))
	return dir
}

func TestLoad_FileValues(t *testing.T) {
	dir := writeConfig(t, Test, sampleYAML)

	cfg, err := Load(Test, []string{dir})

	require.NoError(t, err)
	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 7*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 4*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "app.db", cfg.Database.SQLitePath)
	assert.Equal(t, 3*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 2*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, time.Second, cfg.Database.RetryDelay)
	assert.Equal(t, 45*time.Minute, cfg.Auth.AccessTokenExpiry)
	assert.Equal(t, "debug", cfg.Logger.Level)

	// Defaults fill what the file leaves out
	assert.Equal(t, "HS256", cfg.Auth.Algorithm)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxSizeBytes)
	assert.Equal(t, "uploads", cfg.Upload.Subdir)
	assert.Equal(t, 90*time.Second, cfg.Server.WriteTimeout)

	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(Test, []string{t.TempDir()})

	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 60*time.Minute, cfg.Auth.AccessTokenExpiry)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	dir := writeConfig(t, Test, sampleYAML)
	t.Setenv("CD_SERVER_READTIMEOUT", "11")
	t.Setenv("CD_LOGGER_LEVEL", "warn")
	t.Setenv("DATABASE_URL", "postgresql://u:p@db:5432/app")
	t.Setenv("SECRET_KEY", "from-env")
	t.Setenv("ALGORITHM", "HS512")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "30")
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("GEMINI_MODEL", "gemini-2.0-flash")
	t.Setenv("PORT", "10000")

	cfg, err := Load(Test, []string{dir})

	require.NoError(t, err)
	assert.Equal(t, 11*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "postgresql://u:p@db:5432/app", cfg.Database.URL)
	assert.Equal(t, "from-env", cfg.Auth.SecretKey)
	assert.Equal(t, "HS512", cfg.Auth.Algorithm)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenExpiry)
	assert.Equal(t, "env-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, 10000, cfg.Server.Port)
}

func TestLoad_AlgorithmCaseIsNormalized(t *testing.T) {
	dir := writeConfig(t, Test, sampleYAML)
	t.Setenv("ALGORITHM", " hs384 ")

	cfg, err := Load(Test, []string{dir})

	require.NoError(t, err)
	assert.Equal(t, "HS384", cfg.Auth.Algorithm)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := writeConfig(t, Test, "server: [unclosed")

	_, err := Load(Test, []string{dir})

	assert.ErrorContains(t, err, "error reading config file")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load(Test, []string{writeConfig(t, Test, sampleYAML)})
		require.NoError(t, err)
		return cfg
	}

	t.Run("Missing secrets", func(t *testing.T) {
		cfg := valid()
		cfg.Auth.SecretKey = ""
		cfg.Gemini.APIKey = ""

		err := cfg.Validate()

		assert.ErrorContains(t, err, "auth.secretKey")
		assert.ErrorContains(t, err, "gemini.apiKey")
	})

	t.Run("Unknown environment", func(t *testing.T) {
		cfg := valid()
		cfg.Environment = "staging"

		assert.ErrorContains(t, cfg.Validate(), "invalid environment value")
	})

	t.Run("Unsupported algorithm", func(t *testing.T) {
		cfg := valid()
		cfg.Auth.Algorithm = "RS256"

		assert.ErrorContains(t, cfg.Validate(), "unsupported token algorithm")
	})
}
