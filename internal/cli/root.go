package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/countrydex/internal/config"
	"github.com/rshade/countrydex/internal/logging"
)

// annotationIgnoreConfigErrors marks commands that must run even when the
// existing configuration cannot be loaded.
const annotationIgnoreConfigErrors = "countrydex/ignore-config-errors"

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the countrydex CLI.
// Run without a subcommand it opens the interactive directory.
// It wires up configuration, logging and tracing before any subcommand runs.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult *logging.LogPathResult
		browse    browseFlags
	)

	cmd := &cobra.Command{
		Use:           "countrydex",
		Short:         "Browse the countries of the world from your terminal",
		Long:          "countrydex: search, filter and inspect countries from the REST Countries API",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				if cmd.Annotations[annotationIgnoreConfigErrors] != "true" {
					return err
				}
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: ignoring unreadable configuration: %v\n", err)
				cfg = config.New()
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd, cfg)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, browse)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default ~/.countrydex/config.yaml)")
	cmd.PersistentFlags().String("api-url", "", "REST Countries base URL (overrides config)")
	cmd.PersistentFlags().Duration("timeout", 0, "HTTP timeout, e.g. 10s (overrides config)")
	addBrowseFlags(cmd, &browse)

	cmd.AddCommand(newBrowseCmd(), newListCmd(), newShowCmd(), newRegionsCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Open the interactive directory
  countrydex

  # Start with Europe selected and "land" typed in the search box
  countrydex browse --region europe --search land

  # List Asian countries as JSON
  countrydex list --region asia --output json

  # Show details for several countries
  countrydex show Chile Peru "Côte d'Ivoire"

  # Write a default configuration file
  countrydex config init`

// loadConfig layers the configuration files, environment and CLI flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}

	projectDir, err := os.Getwd()
	if err != nil {
		projectDir = ""
	}

	cfg, err := config.Load(path, projectDir)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	// CLI flags override environment variables and config files
	if cmd.Flags().Changed("api-url") {
		cfg.API.BaseURL, _ = cmd.Flags().GetString("api-url")
	}
	if cmd.Flags().Changed("timeout") {
		var timeout time.Duration
		timeout, _ = cmd.Flags().GetDuration("timeout")
		cfg.API.Timeout = timeout
	}

	return cfg, nil
}
