package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rshade/countrydex/internal/logging"
)

// LoggingConfig is the logging section of the configuration file.
type LoggingConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
	// File is the log file; empty means stderr.
	File string `yaml:"file" koanf:"file"`
}

// Validate checks the level and format names.
func (lc *LoggingConfig) Validate() error {
	if lc.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(lc.Level)); err != nil {
			return fmt.Errorf("logging.level %q is not a valid level", lc.Level)
		}
	}
	switch strings.ToLower(lc.Format) {
	case "", logging.FormatJSON, logging.FormatConsole:
		return nil
	default:
		return fmt.Errorf("logging.format must be %q or %q, got %q",
			logging.FormatJSON, logging.FormatConsole, lc.Format)
	}
}

// ToLoggingConfig converts the file settings into a logging.Config.
//
// If File is set, Output becomes "file"; otherwise output goes to stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// EnsureLogDir creates the directory of the configured log file.
func (lc *LoggingConfig) EnsureLogDir() error {
	if lc.File == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(lc.File), 0o750); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	return nil
}
