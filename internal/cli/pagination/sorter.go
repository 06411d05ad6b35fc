package pagination

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/rshade/countrydex/internal/country"
)

// Sort fields accepted by CountrySorter.
const (
	SortFieldName       = "name"
	SortFieldRegion     = "region"
	SortFieldPopulation = "population"
)

// Sorter sorts country summaries by a named field.
type Sorter interface {
	Sort(countries []country.Summary, field, order string) []country.Summary
	IsValidField(field string) bool
	ValidFields() []string
}

// CountrySorter implements Sorter for country.Summary.
// Names and regions compare with English collation so that "Åland Islands"
// sorts next to "Albania" instead of after "Zimbabwe".
type CountrySorter struct{}

// NewCountrySorter creates a CountrySorter.
func NewCountrySorter() *CountrySorter {
	return &CountrySorter{}
}

// IsValidField checks if the field is valid for sorting.
func (s *CountrySorter) IsValidField(field string) bool {
	return slices.Contains(s.ValidFields(), field)
}

// ValidFields returns the accepted sort fields in alphabetical order.
func (s *CountrySorter) ValidFields() []string {
	return []string{SortFieldName, SortFieldPopulation, SortFieldRegion}
}

// Sort returns a sorted copy of countries. Ties keep their input order.
// An empty or unknown field returns the input unchanged.
func (s *CountrySorter) Sort(countries []country.Summary, field, order string) []country.Summary {
	if !s.IsValidField(field) {
		return countries
	}

	col := collate.New(language.English, collate.Loose)
	compare := func(a, b country.Summary) int {
		switch field {
		case SortFieldPopulation:
			return cmp.Compare(a.Population, b.Population)
		case SortFieldRegion:
			return col.CompareString(a.Region, b.Region)
		default:
			return col.CompareString(a.CommonName, b.CommonName)
		}
	}

	sorted := slices.Clone(countries)
	slices.SortStableFunc(sorted, func(a, b country.Summary) int {
		if order == SortOrderDesc {
			return compare(b, a)
		}
		return compare(a, b)
	})
	return sorted
}

// ParseCountrySort parses a sort expression and checks the field against
// the sorter's valid fields.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseCountrySort(s Sorter, expr string) (field, order string, err error) {
	field, order, err = ParseSort(expr)
	if err != nil || field == "" {
		return field, order, err
	}
	if !s.IsValidField(field) {
		return "", "", fmt.Errorf("%w: %q (use %s)", ErrInvalidSortField, field, strings.Join(s.ValidFields(), ", "))
	}
	return field, order, nil
}
