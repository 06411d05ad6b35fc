package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv(EnvHome, "/tmp/countrydex-home")

	cfg := New()

	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultAPIVersion, cfg.API.Version)
	assert.Equal(t, DefaultTimeout, cfg.API.Timeout)
	assert.Equal(t, 4*time.Second, cfg.UI.ErrorTimeout)
	assert.Equal(t, FilterModeCombined, cfg.UI.FilterMode)
	assert.True(t, cfg.UI.Mouse)
	assert.Equal(t, filepath.Join("/tmp/countrydex-home", "logs", "countrydex.log"), cfg.Logging.File)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvHome, dir)

	globalPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(globalPath, []byte(`
api:
  base_url: https://countries.example.com
  timeout: 30s
ui:
  filter_mode: independent
`), 0o600))

	projectDir := t.TempDir()
	require.NoError(t, os.WriteFile(ProjectConfigPath(projectDir), []byte(`
api:
  timeout: 5s
`), 0o600))

	t.Setenv("COUNTRYDEX_UI__ERROR_TIMEOUT", "2s")

	cfg, err := Load(globalPath, projectDir)
	require.NoError(t, err)

	assert.Equal(t, "https://countries.example.com", cfg.API.BaseURL, "global file overrides default")
	assert.Equal(t, 5*time.Second, cfg.API.Timeout, "project overlay overrides global file")
	assert.Equal(t, FilterModeIndependent, cfg.UI.FilterMode)
	assert.Equal(t, 2*time.Second, cfg.UI.ErrorTimeout, "env overrides files")
	assert.Equal(t, DefaultAPIVersion, cfg.API.Version, "unset keys keep defaults")
}

func TestLoad_MissingFilesUseDefaults(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), "")
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [unterminated"), 0o600))

	_, err := Load(path, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := New()
	cfg.API.Timeout = 42 * time.Second
	cfg.UI.Mouse = false
	require.NoError(t, cfg.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "timeout: 42s")

	loaded, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid defaults", mutate: func(*Config) {}},
		{
			name:    "relative base url",
			mutate:  func(c *Config) { c.API.BaseURL = "restcountries.com" },
			wantErr: "api.base_url",
		},
		{
			name:    "unsupported major version",
			mutate:  func(c *Config) { c.API.Version = "4.0" },
			wantErr: "not supported",
		},
		{
			name:    "too old version",
			mutate:  func(c *Config) { c.API.Version = "2" },
			wantErr: "not supported",
		},
		{
			name:    "garbage version",
			mutate:  func(c *Config) { c.API.Version = "latest" },
			wantErr: "not a valid version",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.API.Timeout = 0 },
			wantErr: "api.timeout",
		},
		{
			name:    "negative banner timeout",
			mutate:  func(c *Config) { c.UI.ErrorTimeout = -time.Second },
			wantErr: "ui.error_timeout",
		},
		{
			name:    "unknown filter mode",
			mutate:  func(c *Config) { c.UI.FilterMode = "union" },
			wantErr: "ui.filter_mode",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	cfg := New()
	cfg.API.Timeout = 0
	cfg.UI.FilterMode = "bogus"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api.timeout")
	assert.Contains(t, err.Error(), "ui.filter_mode")
}

func TestAPIPathVersion(t *testing.T) {
	assert.Equal(t, "v3.1", APIPathVersion("3.1"))
}

func TestGlobalConfig(t *testing.T) {
	t.Cleanup(func() { SetGlobalConfig(nil) })

	assert.Equal(t, DefaultBaseURL, GetGlobalConfig().API.BaseURL)

	cfg := New()
	cfg.API.BaseURL = "http://localhost:9999"
	SetGlobalConfig(cfg)
	assert.Same(t, cfg, GetGlobalConfig())
}
