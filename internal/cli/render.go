package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rshade/countrydex/internal/cli/pagination"
	"github.com/rshade/countrydex/internal/country"
)

// tabPadding is the minimum gap between table columns.
const tabPadding = 2

// renderSummaries writes countries as a table, a JSON array or one JSON
// object per line.
func renderSummaries(w io.Writer, format string, countries []country.Summary) error {
	switch format {
	case outputJSON:
		return renderJSON(w, countries)
	case outputNDJSON:
		return renderNDJSON(w, countries)
	default:
		return renderSummaryTable(w, countries)
	}
}

func renderSummaryTable(w io.Writer, countries []country.Summary) error {
	if len(countries) == 0 {
		_, err := fmt.Fprintln(w, "No countries found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "Name\tRegion\tPopulation")
	fmt.Fprintln(tw, "----\t------\t----------")
	for _, c := range countries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.CommonName, c.Region, country.FormatPopulation(c.Population))
	}
	return tw.Flush()
}

// renderPageFooter writes the position of a paged table within the full
// result set.
func renderPageFooter(w io.Writer, meta pagination.Meta) error {
	_, err := fmt.Fprintf(w, "\nShowing %d-%d of %d countries (page %d of %d)\n",
		meta.From, meta.To, meta.TotalItems, meta.CurrentPage, meta.TotalPages)
	return err
}

// renderDetails writes details as labelled blocks or a JSON array.
func renderDetails(w io.Writer, format string, details []*country.Detail) error {
	if format == outputJSON {
		return renderJSON(w, details)
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	for i, d := range details {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		mapURL := d.MapURL
		if mapURL == "" {
			mapURL = country.NotAvailable
		}
		fmt.Fprintf(tw, "%s %s\n", country.FlagEmoji(d.FlagImageURL), d.CommonName)
		fmt.Fprintf(tw, "  Capital:\t%s\n", d.CapitalText())
		fmt.Fprintf(tw, "  Languages:\t%s\n", d.LanguagesText())
		fmt.Fprintf(tw, "  Currencies:\t%s\n", d.CurrenciesText())
		fmt.Fprintf(tw, "  Timezones:\t%s\n", d.TimezonesText())
		fmt.Fprintf(tw, "  Map:\t%s\n", mapURL)
	}
	return tw.Flush()
}

func renderJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func renderNDJSON(w io.Writer, countries []country.Summary) error {
	encoder := json.NewEncoder(w)
	for _, c := range countries {
		if err := encoder.Encode(c); err != nil {
			return fmt.Errorf("writing NDJSON line: %w", err)
		}
	}
	return nil
}
