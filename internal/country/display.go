package country

import (
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NotAvailable is rendered for detail fields the API did not return.
const NotAvailable = "N/A"

// listSeparator joins multi-valued detail fields.
const listSeparator = ", "

// fallbackFlag is shown when no flag can be derived from the image URL.
const fallbackFlag = "⚑"

// printer groups digits with English thousands separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatPopulation formats a population with thousands separators.
// Example: FormatPopulation(206139589) returns "206,139,589".
func FormatPopulation(n int64) string {
	return printer.Sprintf("%d", n)
}

// CapitalText returns the capitals joined with ", " or N/A.
func (d *Detail) CapitalText() string {
	return joinOrNA(d.Capitals)
}

// LanguagesText returns the language names ordered by language code, or N/A.
func (d *Detail) LanguagesText() string {
	if len(d.Languages) == 0 {
		return NotAvailable
	}
	names := make([]string, 0, len(d.Languages))
	for _, code := range sortedKeys(d.Languages) {
		names = append(names, d.Languages[code])
	}
	return joinOrNA(names)
}

// CurrenciesText returns the currency names ordered by ISO 4217 code, or N/A.
func (d *Detail) CurrenciesText() string {
	if len(d.Currencies) == 0 {
		return NotAvailable
	}
	names := make([]string, 0, len(d.Currencies))
	for _, code := range sortedKeys(d.Currencies) {
		names = append(names, d.Currencies[code].Name)
	}
	return joinOrNA(names)
}

// TimezonesText returns the timezones joined with ", " or N/A.
func (d *Detail) TimezonesText() string {
	return joinOrNA(d.Timezones)
}

// FlagEmoji derives a regional-indicator flag from the two-letter code that
// the flag CDN uses as the image file name, e.g. ".../w320/cl.png" -> 🇨🇱.
func FlagEmoji(flagURL string) string {
	base := path.Base(flagURL)
	code := strings.ToUpper(strings.TrimSuffix(base, path.Ext(base)))
	if len(code) != 2 { //nolint:mnd // ISO 3166-1 alpha-2.
		return fallbackFlag
	}

	const regionalIndicatorA = 0x1F1E6
	var sb strings.Builder
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return fallbackFlag
		}
		sb.WriteRune(rune(regionalIndicatorA + (c - 'A')))
	}
	return sb.String()
}

func joinOrNA(values []string) string {
	if len(values) == 0 {
		return NotAvailable
	}
	return strings.Join(values, listSeparator)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
