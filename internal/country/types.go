// Package country holds the country records shown by countrydex and the
// presentation defaults shared by the terminal UI and the plain CLI output.
package country

// Summary is the list-endpoint view of a country: enough to render a card.
type Summary struct {
	CommonName   string `json:"commonName"`
	FlagImageURL string `json:"flagImageUrl"`
	Region       string `json:"region"`
	Population   int64  `json:"population"`
}

// Currency is one entry of a country's currency map.
type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
}

// Detail is the expanded record displayed in the detail modal.
// Nil slices and maps mean the API omitted the field.
type Detail struct {
	CommonName   string              `json:"commonName"`
	Capitals     []string            `json:"capitals,omitempty"`
	Languages    map[string]string   `json:"languages,omitempty"`
	Currencies   map[string]Currency `json:"currencies,omitempty"`
	Timezones    []string            `json:"timezones,omitempty"`
	MapURL       string              `json:"mapUrl,omitempty"`
	FlagImageURL string              `json:"flagImageUrl,omitempty"`
}
