package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/countrydex/internal/config"
	"github.com/rshade/countrydex/internal/tui"
)

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage countrydex configuration",
		Long: `Configuration is layered: built-in defaults, then ~/.countrydex/config.yaml,
then ./.countrydex.yaml, then COUNTRYDEX_SECTION__KEY environment variables
(for example COUNTRYDEX_API__TIMEOUT=30s), then command-line flags.`,
	}

	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Example: `  # Create ~/.countrydex/config.yaml
  countrydex config init

  # Overwrite an existing file
  countrydex config init --force`,
		Args: cobra.NoArgs,
		// init replaces a broken file, so a parse failure must not block it.
		Annotations: map[string]string{annotationIgnoreConfigErrors: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				path = config.DefaultConfigPath()
			}

			// Check if config already exists and force isn't set
			if !force {
				_, err := os.Stat(path)
				switch {
				case err == nil:
					answer := ConfirmOverwrite(cmd.ErrOrStderr(), cmd.InOrStdin(), tui.IsTTY(), path)
					if !answer.Accepted {
						return errors.New("configuration file already exists, use --force to overwrite")
					}
				case !os.IsNotExist(err):
					return fmt.Errorf("cannot access config path %s: %w", path, err)
				}
			}

			if err := config.New().Save(path); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			cmd.Printf("Configuration initialized at %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration after every layer has been applied.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := yaml.Marshal(config.GetGlobalConfig())
			if err != nil {
				return fmt.Errorf("marshalling config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the effective configuration",
		Long: `Validates the configuration after all layers are applied:
the API base URL, the API version against the supported range, timeouts,
the filter mode and the logging settings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.GetGlobalConfig().Validate(); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
			cmd.Println("Configuration is valid")
			return nil
		},
	}
}
