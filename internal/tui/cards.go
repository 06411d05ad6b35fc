package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/rshade/countrydex/internal/country"
	gridview "github.com/rshade/countrydex/internal/tui/grid"
)

const (
	// cardWidth and cardHeight are the outer size of a card, border included.
	cardWidth  = 30
	cardHeight = 5

	// cardTextWidth is the text width inside the border and padding.
	cardTextWidth = cardWidth - 4

	truncationTail = "…"

	// NoCountriesText replaces the grid when nothing matches.
	NoCountriesText = "No countries found."
)

// renderCard renders one country card: flag and name, region, population.
func renderCard(c country.Summary, selected bool) string {
	name := c.CommonName
	if selected {
		name = HeaderStyle.Render(name)
	}

	lines := []string{
		country.FlagEmoji(c.FlagImageURL) + " " + name,
		LabelStyle.Render("Region: ") + ValueStyle.Render(c.Region),
		LabelStyle.Render("Population: ") + ValueStyle.Render(country.FormatPopulation(c.Population)),
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, cardTextWidth, truncationTail)
	}

	style := CardStyle
	if selected {
		style = SelectedCardStyle
	}
	// Width includes padding but not the border.
	return style.Width(cardWidth - 2).Render(strings.Join(lines, "\n"))
}

// newCardGrid lays out countries as cards in a viewport of the given size.
func newCardGrid(countries []country.Summary, height, width int) *gridview.VirtualGridModel[country.Summary] {
	return gridview.NewVirtualGridModel(countries, height, width, cardWidth, cardHeight, renderCard)
}

// RenderCountries renders every country as a card, in input order, in as many
// columns as width allows. A negative selected highlights no card. An empty
// list renders the no-results placeholder. The output is rebuilt from scratch
// on every call.
func RenderCountries(countries []country.Summary, selected, width int) string {
	if len(countries) == 0 {
		return InfoStyle.Render(NoCountriesText)
	}

	render := renderCard
	if selected < 0 {
		render = func(c country.Summary, _ bool) string { return renderCard(c, false) }
	}

	// One row per country is always tall enough to show every row.
	g := gridview.NewVirtualGridModel(countries, len(countries)*cardHeight, width, cardWidth, cardHeight, render)
	g.SetSelected(selected)
	return g.View()
}
