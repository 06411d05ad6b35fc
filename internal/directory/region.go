package directory

import (
	"fmt"
	"strings"
)

// Region is a coarse geographic grouping reported by the API.
type Region string

// RegionAll is the "all regions" sentinel.
const RegionAll Region = ""

// Known regions.
const (
	RegionAfrica    Region = "Africa"
	RegionAmericas  Region = "Americas"
	RegionAntarctic Region = "Antarctic"
	RegionAsia      Region = "Asia"
	RegionEurope    Region = "Europe"
	RegionOceania   Region = "Oceania"
)

// allLabel is how RegionAll is spelled in flags and labels.
const allLabel = "all"

// Regions returns the selectable regions in display order, RegionAll first.
func Regions() []Region {
	return []Region{
		RegionAll,
		RegionAfrica,
		RegionAmericas,
		RegionAntarctic,
		RegionAsia,
		RegionEurope,
		RegionOceania,
	}
}

// ParseRegion matches s case-insensitively against the known regions.
// "" and "all" yield RegionAll.
func ParseRegion(s string) (Region, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, allLabel) {
		return RegionAll, nil
	}
	for _, r := range Regions() {
		if strings.EqualFold(s, string(r)) {
			return r, nil
		}
	}
	return RegionAll, fmt.Errorf("unknown region %q (valid: %s)", s, validRegionList())
}

// Label returns the display name, "All" for RegionAll.
func (r Region) Label() string {
	if r == RegionAll {
		return "All"
	}
	return string(r)
}

// NextRegion returns the region after r in display order, wrapping around.
func NextRegion(r Region) Region {
	return stepRegion(r, 1)
}

// PrevRegion returns the region before r in display order, wrapping around.
func PrevRegion(r Region) Region {
	return stepRegion(r, -1)
}

func stepRegion(r Region, step int) Region {
	regions := Regions()
	for i, candidate := range regions {
		if candidate == r {
			return regions[(i+step+len(regions))%len(regions)]
		}
	}
	return RegionAll
}

func validRegionList() string {
	names := []string{allLabel}
	for _, r := range Regions()[1:] {
		names = append(names, string(r))
	}
	return strings.Join(names, ", ")
}
