package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/countrydex/internal/cli/pagination"
)

func newListCmd() *cobra.Command {
	var (
		filters filterFlags
		output  string
		sortBy  string
		paging  pagination.Params
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print countries, optionally filtered by region and name",
		Example: `  # Every country as a table
  countrydex list

  # South American and other Americas countries containing "gu"
  countrydex list --region americas --search gu

  # The ten most populous countries
  countrydex list --sort population:desc --limit 10

  # Second page of 25, alphabetically
  countrydex list --sort name --page 2 --page-size 25

  # Machine-readable output
  countrydex list --output ndjson`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateOutputFormat(output, outputTable, outputJSON, outputNDJSON); err != nil {
				return err
			}
			if err := paging.Validate(); err != nil {
				return err
			}
			sorter := pagination.NewCountrySorter()
			field, order, err := pagination.ParseCountrySort(sorter, sortBy)
			if err != nil {
				return err
			}

			client, cfg, err := newClient()
			if err != nil {
				return err
			}

			countries, err := filteredCountries(cmd, client, cfg, filters)
			if err != nil {
				return err
			}
			countries = sorter.Sort(countries, field, order)
			page := pagination.Apply(paging, countries)
			logger.Debug().Ctx(cmd.Context()).
				Int("matched", len(countries)).
				Int("shown", len(page)).
				Str("sort", sortBy).
				Msg("listing countries")

			if err := renderSummaries(cmd.OutOrStdout(), output, page); err != nil {
				return err
			}
			if output == outputTable && paging.IsEnabled() && len(page) > 0 {
				return renderPageFooter(cmd.OutOrStdout(), pagination.NewMeta(paging, len(countries)))
			}
			return nil
		},
	}

	addFilterFlags(cmd, &filters)
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table, json or ndjson")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort by name, population or region, optionally suffixed with :asc or :desc")
	cmd.Flags().IntVar(&paging.Limit, "limit", 0, "show at most this many countries (0 for no limit)")
	cmd.Flags().IntVar(&paging.Offset, "offset", 0, "skip this many countries before printing")
	cmd.Flags().IntVar(&paging.Page, "page", 0, "1-based page number (requires --page-size)")
	cmd.Flags().IntVar(&paging.PageSize, "page-size", 0, "countries per page (requires --page)")

	return cmd
}
