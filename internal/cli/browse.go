package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/countrydex/internal/directory"
	"github.com/rshade/countrydex/internal/logging"
	"github.com/rshade/countrydex/internal/tui"
)

// fallbackWidth is used for styled output when the terminal size is unknown.
const fallbackWidth = 100

// browseFlags configure the interactive directory.
type browseFlags struct {
	filterFlags

	noMouse bool
	plain   bool
}

func addBrowseFlags(cmd *cobra.Command, f *browseFlags) {
	addFilterFlags(cmd, &f.filterFlags)
	cmd.Flags().BoolVar(&f.noMouse, "no-mouse", false, "disable mouse support")
	cmd.Flags().BoolVar(&f.plain, "plain", false, "print a plain table instead of the interactive view")
}

func newBrowseCmd() *cobra.Command {
	var flags browseFlags

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive country directory (default command)",
		Long: `Opens a grid of country cards with live search, region filtering and a
detail view for the selected country.

When stdout is not a terminal the directory is printed as a table instead.`,
		Example: `  # Browse all countries
  countrydex browse

  # Start filtered to Oceania, without mouse capture
  countrydex browse --region oceania --no-mouse`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, flags)
		},
	}
	addBrowseFlags(cmd, &flags)

	return cmd
}

// runBrowse routes to the interactive, styled or plain renderer depending on
// the detected output mode.
func runBrowse(cmd *cobra.Command, flags browseFlags) error {
	client, cfg, err := newClient()
	if err != nil {
		return err
	}

	mode := tui.DetectOutputMode(flags.plain)
	logger.Debug().Ctx(cmd.Context()).Str("output_mode", mode.String()).Msg("browse")

	switch mode {
	case tui.OutputModeInteractive:
		region, parseErr := directory.ParseRegion(flags.region)
		if parseErr != nil {
			return parseErr
		}
		filterMode, parseErr := directory.ParseFilterMode(cfg.UI.FilterMode)
		if parseErr != nil {
			return parseErr
		}

		// Log lines on stderr would be drawn over the alternate screen.
		ctx := logging.ScreenSafeContext(cmd.Context())
		model := tui.NewDirectoryModel(ctx, client, tui.Options{
			FilterMode:    filterMode,
			ErrorTimeout:  cfg.UI.ErrorTimeout,
			InitialRegion: region,
			InitialQuery:  flags.search,
		})

		opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
		if cfg.UI.Mouse && !flags.noMouse {
			opts = append(opts, tea.WithMouseCellMotion())
		}

		if _, runErr := tea.NewProgram(model, opts...).Run(); runErr != nil {
			return fmt.Errorf("failed to run interactive directory: %w", runErr)
		}
		return nil

	case tui.OutputModeStyled:
		countries, fetchErr := filteredCountries(cmd, client, cfg, flags.filterFlags)
		if fetchErr != nil {
			return fetchErr
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderCountries(countries, -1, tui.TerminalWidth(fallbackWidth)))
		return err

	case tui.OutputModePlain:
		fallthrough
	default:
		countries, fetchErr := filteredCountries(cmd, client, cfg, flags.filterFlags)
		if fetchErr != nil {
			return fetchErr
		}
		return renderSummaries(cmd.OutOrStdout(), outputTable, countries)
	}
}
