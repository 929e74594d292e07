package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sells-group/paygap/internal/dataset"
	"github.com/sells-group/paygap/internal/model"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, dataset.DefaultSourceURL, cfg.Source.URL)
	assert.Equal(t, "paygap/1.0", cfg.Source.UserAgent)
	assert.Equal(t, 60, cfg.Source.TimeoutSecs)
	assert.Equal(t, time.Minute, cfg.Source.Timeout())
	assert.Equal(t, 0, cfg.Source.MaxRetries)
	assert.Empty(t, cfg.Source.Charset)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeoutSecs)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, model.DefaultYear, cfg.View.DefaultYear)
}

func TestLoadFromYAML(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
source:
  url: ./testdata/irish-pay-gap.csv
  charset: windows-1252
log:
  level: debug
  format: console
server:
  port: 9090
  cors_origins:
    - https://example.ie
view:
  default_year: 2022
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./testdata/irish-pay-gap.csv", cfg.Source.URL)
	assert.Equal(t, "windows-1252", cfg.Source.Charset)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"https://example.ie"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 2022, cfg.View.DefaultYear)
	// Defaults still apply for unset values
	assert.Equal(t, 60, cfg.Source.TimeoutSecs)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
source:
  max_retries: 1
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("PAYGAP_SOURCE_MAX_RETRIES", "3")
	t.Setenv("PAYGAP_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	// Env overrides file
	assert.Equal(t, 3, cfg.Source.MaxRetries)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	chdirTemp(t)

	t.Setenv("PAYGAP_SERVER_PORT", "3000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PAYGAP_SOURCE_USER_AGENT=dotenv-agent\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("PAYGAP_SOURCE_USER_AGENT") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dotenv-agent", cfg.Source.UserAgent)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("invalid: [yaml: bad"), 0644))

	_, err := Load()
	assert.Error(t, err)
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}

// validDefaults returns a Config with all defaults populated for validation tests.
func validDefaults() *Config {
	cfg := &Config{}
	cfg.Source.URL = dataset.DefaultSourceURL
	cfg.Source.TimeoutSecs = 60
	cfg.Server.Port = 8080
	cfg.View.DefaultYear = model.DefaultYear
	return cfg
}

func TestValidate_Modes(t *testing.T) {
	cfg := validDefaults()
	assert.NoError(t, cfg.Validate(ModeCLI))
	assert.NoError(t, cfg.Validate(ModeServe))

	err := cfg.Validate("unknown")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}

func TestValidateServe_InvalidPort(t *testing.T) {
	cfg := validDefaults()
	cfg.Server.Port = 0

	err := cfg.Validate(ModeServe)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "server.port must be > 0")

	// The CLI never binds a port.
	assert.NoError(t, cfg.Validate(ModeCLI))
}

func TestValidate_Source(t *testing.T) {
	cfg := validDefaults()
	cfg.Source.URL = ""
	assert.ErrorContains(t, cfg.Validate(ModeCLI), "source.url is required")

	cfg = validDefaults()
	cfg.Source.MaxRetries = -1
	assert.ErrorContains(t, cfg.Validate(ModeCLI), "max_retries")

	cfg = validDefaults()
	cfg.Source.TimeoutSecs = 0
	assert.ErrorContains(t, cfg.Validate(ModeCLI), "timeout_secs")
}

func TestValidate_DefaultYear(t *testing.T) {
	cfg := validDefaults()
	cfg.View.DefaultYear = 2019

	err := cfg.Validate(ModeCLI)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrUnsupportedYear))
}
