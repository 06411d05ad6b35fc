package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/countrydex/internal/config"
	"github.com/rshade/countrydex/internal/country"
	"github.com/rshade/countrydex/internal/directory"
	"github.com/rshade/countrydex/internal/restcountries"
)

// Output formats.
const (
	outputTable  = "table"
	outputJSON   = "json"
	outputNDJSON = "ndjson"
)

// newClient validates the loaded configuration and builds the REST client.
func newClient() (*restcountries.Client, *config.Config, error) {
	cfg := config.GetGlobalConfig()
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return restcountries.NewClient(cfg.API), cfg, nil
}

// filterFlags are the search and region flags shared by browse and list.
type filterFlags struct {
	region string
	search string
}

func addFilterFlags(cmd *cobra.Command, f *filterFlags) {
	cmd.Flags().StringVar(&f.region, "region", "",
		"only show countries in this region ("+strings.Join(regionNames(), ", ")+")")
	cmd.Flags().StringVar(&f.search, "search", "", "only show countries whose name contains this text")
}

// filteredCountries fetches the country list and applies the filter flags.
func filteredCountries(
	cmd *cobra.Command,
	client *restcountries.Client,
	cfg *config.Config,
	f filterFlags,
) ([]country.Summary, error) {
	region, err := directory.ParseRegion(f.region)
	if err != nil {
		return nil, err
	}
	mode, err := directory.ParseFilterMode(cfg.UI.FilterMode)
	if err != nil {
		return nil, err
	}

	countries, err := client.FetchAllCountries(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("fetching country list: %w", err)
	}

	dir := directory.New(countries, mode)
	if region != directory.RegionAll {
		dir.Filter(region)
	}
	if f.search != "" {
		dir.Search(f.search)
	}
	return dir.Visible(), nil
}

func regionNames() []string {
	names := make([]string, 0, len(directory.Regions()))
	for _, r := range directory.Regions() {
		names = append(names, strings.ToLower(r.Label()))
	}
	return names
}

func validateOutputFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format %q (use %s)", format, strings.Join(allowed, ", "))
}
