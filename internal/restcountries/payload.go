package restcountries

import "github.com/rshade/countrydex/internal/country"

// Wire shapes of the v3.x API, limited to the requested fields.

type namePayload struct {
	Common string `json:"common"`
}

type flagsPayload struct {
	PNG string `json:"png"`
}

type mapsPayload struct {
	GoogleMaps string `json:"googleMaps"`
}

type currencyPayload struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type summaryPayload struct {
	Name       namePayload  `json:"name"`
	Flags      flagsPayload `json:"flags"`
	Region     string       `json:"region"`
	Population int64        `json:"population"`
}

func (p summaryPayload) toSummary() country.Summary {
	return country.Summary{
		CommonName:   p.Name.Common,
		FlagImageURL: p.Flags.PNG,
		Region:       p.Region,
		Population:   p.Population,
	}
}

type detailPayload struct {
	Name       namePayload                `json:"name"`
	Capital    []string                   `json:"capital"`
	Languages  map[string]string          `json:"languages"`
	Currencies map[string]currencyPayload `json:"currencies"`
	Timezones  []string                   `json:"timezones"`
	Maps       mapsPayload                `json:"maps"`
	Flags      flagsPayload               `json:"flags"`
}

func (p detailPayload) toDetail() country.Detail {
	d := country.Detail{
		CommonName:   p.Name.Common,
		Capitals:     p.Capital,
		Languages:    p.Languages,
		Timezones:    p.Timezones,
		MapURL:       p.Maps.GoogleMaps,
		FlagImageURL: p.Flags.PNG,
	}
	if p.Currencies != nil {
		d.Currencies = make(map[string]country.Currency, len(p.Currencies))
		for code, c := range p.Currencies {
			d.Currencies[code] = country.Currency{Name: c.Name, Symbol: c.Symbol}
		}
	}
	return d
}
