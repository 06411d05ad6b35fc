package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultLoadingMessage is shown when Show is called with an empty message.
const DefaultLoadingMessage = "Loading..."

// DefaultErrorTimeout is how long the error banner stays visible.
const DefaultErrorTimeout = 4 * time.Second

// LoadingState is the loading indicator: a spinner plus a message.
// It is either hidden or visible with one message; the last call wins.
type LoadingState struct {
	spinner spinner.Model
	message string
	visible bool
}

// NewLoadingState creates a hidden loading indicator.
func NewLoadingState() *LoadingState {
	s := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(HeaderStyle))
	return &LoadingState{spinner: s, message: DefaultLoadingMessage}
}

// Show makes the indicator visible with message and starts the spinner.
func (l *LoadingState) Show(message string) tea.Cmd {
	if message == "" {
		message = DefaultLoadingMessage
	}
	l.message = message
	l.visible = true
	return l.spinner.Tick
}

// Hide hides the indicator. Hiding an already hidden indicator is a no-op.
func (l *LoadingState) Hide() {
	l.visible = false
}

// Visible reports whether the indicator is shown.
func (l *LoadingState) Visible() bool {
	return l.visible
}

// Message returns the current message.
func (l *LoadingState) Message() string {
	return l.message
}

// Init starts the spinner.
func (l *LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner while visible. Ticks received while hidden are
// dropped, which stops the animation until the next Show.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(spinner.TickMsg)
	if !ok || !l.visible {
		return nil
	}
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(tick)
	return cmd
}

// RenderLoading returns the string to display for the loading indicator, or
// an empty string when it is hidden.
func RenderLoading(loading *LoadingState) string {
	if loading == nil || !loading.visible {
		return ""
	}
	return fmt.Sprintf("%s %s", loading.spinner.View(), loading.message)
}

// errorBannerExpiredMsg hides the banner when its timer fires.
type errorBannerExpiredMsg struct{}

// ErrorBanner is the transient error notifier. Each Show schedules its own
// timer; timers are never cancelled, so an earlier timer can hide a later
// message.
type ErrorBanner struct {
	message string
	visible bool
	timeout time.Duration
}

// NewErrorBanner creates a hidden banner that hides itself timeout after each
// Show. A non-positive timeout uses DefaultErrorTimeout.
func NewErrorBanner(timeout time.Duration) *ErrorBanner {
	if timeout <= 0 {
		timeout = DefaultErrorTimeout
	}
	return &ErrorBanner{timeout: timeout}
}

// Show displays message and returns the command that expires it.
func (b *ErrorBanner) Show(message string) tea.Cmd {
	b.message = message
	b.visible = true
	return tea.Tick(b.timeout, func(time.Time) tea.Msg {
		return errorBannerExpiredMsg{}
	})
}

// Expire hides the banner. The message text is kept.
func (b *ErrorBanner) Expire() {
	b.visible = false
}

// Visible reports whether the banner is shown.
func (b *ErrorBanner) Visible() bool {
	return b.visible
}

// Message returns the last message shown.
func (b *ErrorBanner) Message() string {
	return b.message
}

// Timeout returns how long each message stays visible.
func (b *ErrorBanner) Timeout() time.Duration {
	return b.timeout
}

// View renders the banner, or an empty string when hidden.
func (b *ErrorBanner) View() string {
	if !b.visible {
		return ""
	}
	return ErrorBannerStyle.Render(b.message)
}
