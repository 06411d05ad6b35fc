// Package config loads countrydex settings from defaults, YAML files and the
// environment, and exposes the process-wide configuration.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

const (
	// EnvPrefix prefixes every environment override, e.g. COUNTRYDEX_API__TIMEOUT.
	EnvPrefix = "COUNTRYDEX_"
	// EnvHome overrides the configuration directory.
	EnvHome = "COUNTRYDEX_HOME"

	// envSectionSeparator splits a section from its key in environment names.
	envSectionSeparator = "__"

	configDirName     = ".countrydex"
	configFileName    = "config.yaml"
	projectConfigFile = ".countrydex.yaml"
	logDirName        = "logs"
	logFileName       = "countrydex.log"
)

// Defaults.
const (
	DefaultBaseURL      = "https://restcountries.com"
	DefaultAPIVersion   = "3.1"
	DefaultTimeout      = 15 * time.Second
	DefaultErrorTimeout = 4 * time.Second
)

// Filter modes.
const (
	FilterModeCombined    = "combined"
	FilterModeIndependent = "independent"
)

// Config is the top-level countrydex configuration.
type Config struct {
	API     APIConfig     `yaml:"api" koanf:"api"`
	UI      UIConfig      `yaml:"ui" koanf:"ui"`
	Logging LoggingConfig `yaml:"logging" koanf:"logging"`
}

// APIConfig configures the REST Countries client.
type APIConfig struct {
	BaseURL string        `yaml:"base_url" koanf:"base_url"`
	Version string        `yaml:"version" koanf:"version"`
	Timeout time.Duration `yaml:"timeout" koanf:"timeout"`
}

// UIConfig configures the interactive directory.
type UIConfig struct {
	// ErrorTimeout is how long the error banner stays visible.
	ErrorTimeout time.Duration `yaml:"error_timeout" koanf:"error_timeout"`
	// FilterMode is "combined" (search and region both apply) or
	// "independent" (applying one clears the other).
	FilterMode string `yaml:"filter_mode" koanf:"filter_mode"`
	Mouse      bool   `yaml:"mouse" koanf:"mouse"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
			Version: DefaultAPIVersion,
			Timeout: DefaultTimeout,
		},
		UI: UIConfig{
			ErrorTimeout: DefaultErrorTimeout,
			FilterMode:   FilterModeCombined,
			Mouse:        true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			File:   filepath.Join(ConfigDir(), logDirName, logFileName),
		},
	}
}

// ConfigDir returns the countrydex configuration directory.
func ConfigDir() string {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return configDirName
	}
	return filepath.Join(home, configDirName)
}

// DefaultConfigPath returns the path of the global configuration file.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), configFileName)
}

// ProjectConfigPath returns the path of the project overlay in dir.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, projectConfigFile)
}

// Load layers defaults, the file at path, the project overlay in projectDir
// and COUNTRYDEX_* environment variables. Missing files are skipped.
func Load(path, projectDir string) (*Config, error) {
	k := koanf.New(".")
	cfg := New()

	paths := []string{path}
	if projectDir != "" {
		paths = append(paths, ProjectConfigPath(projectDir))
	}

	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			if loadErr := k.Load(file.Provider(p), yaml.Parser()); loadErr != nil {
				return nil, fmt.Errorf("reading config %s: %w", p, loadErr)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", p, err)
		}
	}

	// COUNTRYDEX_API__BASE_URL -> api.base_url
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, envSectionSeparator, ".")
}

// Save writes the configuration as YAML to path, creating its directory.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if mkErr := os.MkdirAll(filepath.Dir(path), 0o750); mkErr != nil {
		return fmt.Errorf("creating config directory: %w", mkErr)
	}
	if writeErr := os.WriteFile(path, data, 0o600); writeErr != nil {
		return fmt.Errorf("writing config to %s: %w", path, writeErr)
	}
	return nil
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	var errs []error

	if u, err := url.Parse(c.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("api.base_url %q is not an absolute URL", c.API.BaseURL))
	}
	if err := ValidateAPIVersion(c.API.Version); err != nil {
		errs = append(errs, err)
	}
	if c.API.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("api.timeout must be > 0, got %s", c.API.Timeout))
	}
	if c.UI.ErrorTimeout <= 0 {
		errs = append(errs, fmt.Errorf("ui.error_timeout must be > 0, got %s", c.UI.ErrorTimeout))
	}
	switch c.UI.FilterMode {
	case FilterModeCombined, FilterModeIndependent:
	default:
		errs = append(errs, fmt.Errorf("ui.filter_mode must be %q or %q, got %q",
			FilterModeCombined, FilterModeIndependent, c.UI.FilterMode))
	}
	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// global holds the configuration loaded for this invocation.
//
//nolint:gochecknoglobals // Process-wide configuration, set once by the CLI.
var (
	global   *Config
	globalMu sync.RWMutex
)

// SetGlobalConfig replaces the process-wide configuration.
func SetGlobalConfig(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = cfg
}

// GetGlobalConfig returns the process-wide configuration, or defaults when
// none has been loaded.
func GetGlobalConfig() *Config {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if global == nil {
		return New()
	}
	return global
}
