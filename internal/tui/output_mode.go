package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how the directory is presented.
type OutputMode int

const (
	// OutputModePlain prints a plain table, for pipes and files.
	OutputModePlain OutputMode = iota
	// OutputModeStyled prints the card grid once without interaction.
	OutputModeStyled
	// OutputModeInteractive runs the full TUI.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// DetectOutputMode chooses the output mode for the current process.
// plain forces OutputModePlain.
func DetectOutputMode(plain bool) OutputMode {
	return detectOutputMode(
		plain,
		term.IsTerminal(int(os.Stdin.Fd())),
		term.IsTerminal(int(os.Stdout.Fd())),
		os.Getenv("CI") != "",
	)
}

func detectOutputMode(plain, stdinTTY, stdoutTTY, ci bool) OutputMode {
	switch {
	case plain || !stdoutTTY:
		return OutputModePlain
	case !stdinTTY || ci:
		return OutputModeStyled
	default:
		return OutputModeInteractive
	}
}

// TerminalWidth returns the width of stdout, or fallback when it is not a
// terminal.
func TerminalWidth(fallback int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// IsTTY reports whether both stdin and stdout are terminals, so a prompt
// can be shown and answered.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
