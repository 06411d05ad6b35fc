package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/rshade/countrydex/internal/country"
)

const (
	// closeControl is drawn at the right end of the modal's first line.
	closeControl = "[x]"

	mapLinkText = "View on Google Maps"

	// modal outer width bounds, border included.
	modalMinWidth = 40
	modalMaxWidth = 72
	modalMargin   = 4

	// labelWidth aligns detail values.
	labelWidth = 12
)

// detailField is one labelled line of the detail modal.
type detailField struct {
	Label string
	Value string
}

// detailFields returns the modal's fields in display order, with absent
// values already replaced by N/A.
func detailFields(d *country.Detail) []detailField {
	mapURL := d.MapURL
	if mapURL == "" {
		mapURL = country.NotAvailable
	}
	flagURL := d.FlagImageURL
	if flagURL == "" {
		flagURL = country.NotAvailable
	}

	return []detailField{
		{Label: "Capital", Value: d.CapitalText()},
		{Label: "Languages", Value: d.LanguagesText()},
		{Label: "Currencies", Value: d.CurrenciesText()},
		{Label: "Timezones", Value: d.TimezonesText()},
		{Label: "Map", Value: mapURL},
		{Label: "Flag", Value: flagURL},
	}
}

// modalWidth returns the modal's outer width for a terminal width.
func modalWidth(termWidth int) int {
	return min(modalMaxWidth, max(modalMinWidth, termWidth-modalMargin))
}

// RenderDetailModal renders the detail modal box for d.
func RenderDetailModal(d *country.Detail, termWidth int) string {
	outer := modalWidth(termWidth)
	// border and padding, one column each side
	inner := outer - 4

	var content strings.Builder

	title := ansi.Truncate(country.FlagEmoji(d.FlagImageURL)+" "+d.CommonName,
		inner-len(closeControl)-1, truncationTail)
	title = HeaderStyle.Render(title)
	gap := max(1, inner-lipgloss.Width(title)-len(closeControl))
	content.WriteString(title + strings.Repeat(" ", gap) + CloseControlStyle.Render(closeControl))
	content.WriteString("\n\n")

	valueWidth := inner - labelWidth
	for _, f := range detailFields(d) {
		value := f.Value
		if f.Label == "Map" && d.MapURL != "" {
			value = ansi.SetHyperlink(d.MapURL) + LinkStyle.Render(mapLinkText) + ansi.ResetHyperlink()
		} else {
			value = ValueStyle.Width(valueWidth).Render(value)
		}
		label := LabelStyle.Width(labelWidth).Render(f.Label + ":")
		content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, value))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(SubtleStyle.Render("esc/x: close"))

	return BoxStyle.Width(outer - 2).Render(content.String())
}

// modalLayout is where a rendered modal box sits when centred on the screen.
type modalLayout struct {
	left, top     int
	width, height int
}

// newModalLayout centres a box of the given rendering the way lipgloss.Place
// does: the extra space is split with the odd cell after the box.
func newModalLayout(box string, screenWidth, screenHeight int) modalLayout {
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	return modalLayout{
		left:   max(0, (screenWidth-w)/2),
		top:    max(0, (screenHeight-h)/2),
		width:  w,
		height: h,
	}
}

// Contains reports whether the screen cell x, y lies on the box.
func (l modalLayout) Contains(x, y int) bool {
	return x >= l.left && x < l.left+l.width && y >= l.top && y < l.top+l.height
}

// OnClose reports whether the screen cell x, y lies on the close control.
// The control ends at the content's right edge, inside the border and padding.
func (l modalLayout) OnClose(x, y int) bool {
	if y != l.top+1 {
		return false
	}
	right := l.left + l.width - 2
	return x >= right-len(closeControl) && x < right
}
