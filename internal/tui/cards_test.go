package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/rshade/countrydex/internal/country"
)

func TestRenderCountries_Empty(t *testing.T) {
	for _, list := range [][]country.Summary{nil, {}} {
		out := RenderCountries(list, 0, 80)
		assert.Equal(t, NoCountriesText, strings.TrimSpace(out))
		assert.NotContains(t, out, "Population:")
	}
}

func TestRenderCountries_OneCardPerCountry(t *testing.T) {
	countries := fixtureCountries()

	out := RenderCountries(countries, 0, 100)

	assert.Equal(t, len(countries), strings.Count(out, "Population:"))
	assert.NotContains(t, out, NoCountriesText)

	// Input order within the first row.
	nameLine := strings.Split(out, "\n")[1]
	assert.Less(t, strings.Index(nameLine, "Chile"), strings.Index(nameLine, "Peru"))
	assert.Less(t, strings.Index(nameLine, "Peru"), strings.Index(nameLine, "France"))
}

func TestRenderCountries_ColumnsFollowWidth(t *testing.T) {
	countries := fixtureCountries()

	narrow := RenderCountries(countries, 0, 40)
	wide := RenderCountries(countries, 0, 200)

	assert.Equal(t, len(countries)*cardHeight, lipgloss.Height(narrow))
	assert.Equal(t, cardHeight, lipgloss.Height(wide))
}

func TestRenderCard(t *testing.T) {
	c := country.Summary{
		CommonName:   "Chile",
		Region:       "Americas",
		Population:   19116209,
		FlagImageURL: "https://flagcdn.com/w320/cl.png",
	}

	card := renderCard(c, false)

	assert.Equal(t, cardWidth, lipgloss.Width(card))
	assert.Equal(t, cardHeight, lipgloss.Height(card))
	assert.Contains(t, card, "🇨🇱 Chile")
	assert.Contains(t, card, "Region: Americas")
	assert.Contains(t, card, "Population: 19,116,209")
}

func TestRenderCard_TruncatesLongNames(t *testing.T) {
	c := country.Summary{
		CommonName: "South Georgia and the South Sandwich Islands",
		Region:     "Antarctic",
		Population: 30,
	}

	card := renderCard(c, true)

	assert.Equal(t, cardWidth, lipgloss.Width(card))
	assert.Equal(t, cardHeight, lipgloss.Height(card))
	assert.Contains(t, card, truncationTail)
}

func TestRenderCountries_Selection(t *testing.T) {
	countries := fixtureCountries()[:1]

	selected := RenderCountries(countries, 0, 100)
	none := RenderCountries(countries, -1, 100)

	assert.Equal(t, renderCard(countries[0], true), selected)
	assert.Equal(t, renderCard(countries[0], false), none)
}
