package tui

import "github.com/charmbracelet/lipgloss"

// Colour palette (ANSI 256).
const (
	colorAccent   = lipgloss.Color("12")
	colorSubtle   = lipgloss.Color("245")
	colorValue    = lipgloss.Color("255")
	colorBorder   = lipgloss.Color("62")
	colorSelected = lipgloss.Color("212")
	colorError    = lipgloss.Color("196")
	colorLink     = lipgloss.Color("39")
)

//nolint:gochecknoglobals // Shared lipgloss styles are package-level by convention.
var (
	// HeaderStyle renders titles.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	// LabelStyle renders field labels.
	LabelStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	// ValueStyle renders field values.
	ValueStyle = lipgloss.NewStyle().Foreground(colorValue)

	// InfoStyle renders informational messages such as empty results.
	InfoStyle = lipgloss.NewStyle().Italic(true).Foreground(colorSubtle)

	// SubtleStyle renders help text.
	SubtleStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	// LinkStyle renders hyperlinks.
	LinkStyle = lipgloss.NewStyle().Underline(true).Foreground(colorLink)

	// BoxStyle frames the detail modal.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	// CardStyle frames a country card.
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1)

	// SelectedCardStyle frames the selected country card.
	SelectedCardStyle = CardStyle.BorderForeground(colorSelected)

	// ErrorBannerStyle renders the transient error notifier.
	ErrorBannerStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorValue).
				Background(colorError).
				Padding(0, 1)

	// ActiveRegionStyle highlights the active region in the region bar.
	ActiveRegionStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSelected)

	// CloseControlStyle renders the modal's close control.
	CloseControlStyle = lipgloss.NewStyle().Bold(true).Foreground(colorError)
)
