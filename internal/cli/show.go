package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/countrydex/internal/country"
	"github.com/rshade/countrydex/internal/restcountries"
)

// showConcurrency bounds parallel detail requests.
const showConcurrency = 4

func newShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show NAME...",
		Short: "Print capital, languages, currencies, timezones and map link for countries",
		Long: `Fetches the details of each named country. Names must match the common
name exactly (case-insensitive), as shown by "countrydex list".`,
		Example: `  countrydex show Chile
  countrydex show Japan Kenya --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutputFormat(output, outputTable, outputJSON); err != nil {
				return err
			}

			client, _, err := newClient()
			if err != nil {
				return err
			}

			details, err := fetchDetails(cmd.Context(), client, args)
			if err != nil {
				return err
			}
			return renderDetails(cmd.OutOrStdout(), output, details)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table or json")

	return cmd
}

// fetchDetails fetches every name concurrently and returns the details in
// argument order. The first failure cancels the remaining requests.
func fetchDetails(
	ctx context.Context,
	client *restcountries.Client,
	names []string,
) ([]*country.Detail, error) {
	details := make([]*country.Detail, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(showConcurrency)

	for i, name := range names {
		g.Go(func() error {
			d, err := client.FetchCountryDetails(gctx, name)
			if err != nil {
				return fmt.Errorf("fetching %q: %w", name, err)
			}
			details[i] = d
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return details, nil
}
