// Package directory owns the canonical country list and derives the visible
// subset from the current search query and region filter.
package directory

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rshade/countrydex/internal/country"
)

// FilterMode decides how search and region filtering interact.
type FilterMode int

const (
	// FilterModeCombined applies the query and the region together.
	FilterModeCombined FilterMode = iota
	// FilterModeIndependent lets the most recent filter win: searching
	// clears the region and choosing a region clears the query.
	FilterModeIndependent
)

// ParseFilterMode maps a configuration value to a FilterMode.
func ParseFilterMode(s string) (FilterMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "combined":
		return FilterModeCombined, nil
	case "independent":
		return FilterModeIndependent, nil
	default:
		return FilterModeCombined, fmt.Errorf("unknown filter mode %q", s)
	}
}

// Directory holds the canonical list for a session. Filtering never
// modifies it; every result is a fresh slice.
type Directory struct {
	all    []country.Summary
	query  string
	region Region
	mode   FilterMode
}

// New creates a directory over countries.
func New(countries []country.Summary, mode FilterMode) *Directory {
	return &Directory{all: slices.Clone(countries), mode: mode}
}

// Replace swaps the canonical list after a fresh full fetch. Active filters
// are kept.
func (d *Directory) Replace(countries []country.Summary) []country.Summary {
	d.all = slices.Clone(countries)
	return d.Visible()
}

// Search sets the query (lower-cased, trimmed) and returns the visible list.
func (d *Directory) Search(query string) []country.Summary {
	d.query = normalizeQuery(query)
	if d.mode == FilterModeIndependent {
		d.region = RegionAll
	}
	return d.Visible()
}

// Filter sets the region and returns the visible list.
func (d *Directory) Filter(region Region) []country.Summary {
	d.region = region
	if d.mode == FilterModeIndependent {
		d.query = ""
	}
	return d.Visible()
}

// Visible returns the countries matching the active query and region in
// canonical order.
func (d *Directory) Visible() []country.Summary {
	visible := make([]country.Summary, 0, len(d.all))
	for _, c := range d.all {
		if d.matchesRegion(c) && d.matchesQuery(c) {
			visible = append(visible, c)
		}
	}
	return visible
}

// All returns a copy of the canonical list.
func (d *Directory) All() []country.Summary {
	return slices.Clone(d.all)
}

// Len returns the size of the canonical list.
func (d *Directory) Len() int {
	return len(d.all)
}

// Query returns the normalised active query.
func (d *Directory) Query() string {
	return d.query
}

// Region returns the active region.
func (d *Directory) Region() Region {
	return d.region
}

// Mode returns the filter mode.
func (d *Directory) Mode() FilterMode {
	return d.mode
}

func (d *Directory) matchesQuery(c country.Summary) bool {
	return d.query == "" || strings.Contains(strings.ToLower(c.CommonName), d.query)
}

func (d *Directory) matchesRegion(c country.Summary) bool {
	return d.region == RegionAll || c.Region == string(d.region)
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}
