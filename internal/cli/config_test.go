package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigInit(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	_, stderr, err := execute(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Configuration initialized at")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "base_url: https://restcountries.com")

	_, _, err = execute(t, "config", "init", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = execute(t, "config", "init", "--config", path, "--force")
	require.NoError(t, err)
}

func TestConfigInit_ReplacesMalformedFile(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [unclosed\n"), 0o600))

	_, _, err := execute(t, "config", "validate", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading configuration")

	_, stderr, err := execute(t, "config", "init", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.Contains(t, stderr, "ignoring unreadable configuration")

	_, _, err = execute(t, "config", "init", "--config", path, "--force")
	require.NoError(t, err)

	_, stderr, err = execute(t, "config", "validate", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Configuration is valid")
}

func TestConfigInit_DefaultPath(t *testing.T) {
	setupCLITest(t)
	home := t.TempDir()
	t.Setenv("COUNTRYDEX_HOME", home)

	_, _, err := execute(t, "config", "init")
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(home, "config.yaml"))
	assert.NoError(t, statErr)
}

func TestConfigShow_AppliesLayers(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  timeout: 30s\nui:\n  filter_mode: independent\n"), 0o600))
	t.Setenv("COUNTRYDEX_API__TIMEOUT", "45s")

	out, _, err := execute(t, "config", "show", "--config", path, "--api-url", "http://localhost:9999")
	require.NoError(t, err)

	assert.Contains(t, out, "timeout: 45s")
	assert.Contains(t, out, "filter_mode: independent")
	assert.Contains(t, out, "base_url: http://localhost:9999")
}

func TestConfigValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		setupCLITest(t)
		_, stderr, err := execute(t, "config", "validate")
		require.NoError(t, err)
		assert.Contains(t, stderr, "Configuration is valid")
	})

	t.Run("reports every bad field", func(t *testing.T) {
		setupCLITest(t)
		t.Setenv("COUNTRYDEX_API__VERSION", "2.0")
		t.Setenv("COUNTRYDEX_UI__FILTER_MODE", "sideways")

		_, _, err := execute(t, "config", "validate")
		require.Error(t, err)
		msg := err.Error()
		assert.Contains(t, msg, "configuration validation failed")
		assert.True(t, strings.Contains(msg, "2.0"), msg)
		assert.Contains(t, msg, "sideways")
	})

	t.Run("invalid config blocks api commands", func(t *testing.T) {
		setupCLITest(t)
		t.Setenv("COUNTRYDEX_API__VERSION", "2.0")

		_, _, err := execute(t, "list")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})
}

func TestRegions(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "regions")
	require.NoError(t, err)
	assert.Equal(t, "all\nafrica\namericas\nantarctic\nasia\neurope\noceania\n", out)
}

func TestVersionFlag(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "test")
}
