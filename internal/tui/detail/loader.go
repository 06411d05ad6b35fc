package detail

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// ResultMsg is delivered to the model when a load started by Load finishes.
type ResultMsg[T any] struct {
	RequestID uint64
	Value     T
	Err       error
}

// FetchFunc fetches one record. It must honour ctx cancellation.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Loader tracks the one detail request that may currently update the view.
// It is owned by the Bubble Tea model and must only be used from Update.
type Loader struct {
	lastID  uint64
	current uint64
	cancel  context.CancelFunc
}

// NewLoader creates an idle loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Begin cancels any pending request and starts tracking a new one.
// It returns the new request id and a context derived from parent that is
// cancelled when the request is superseded or cancelled.
func (l *Loader) Begin(parent context.Context) (uint64, context.Context) {
	l.Cancel()

	l.lastID++
	ctx, cancel := context.WithCancel(parent)
	l.current = l.lastID
	l.cancel = cancel

	return l.current, ctx
}

// IsCurrent reports whether id belongs to the pending request.
func (l *Loader) IsCurrent(id uint64) bool {
	return id != 0 && id == l.current
}

// Complete accepts the result for id. It returns false for stale ids, in which
// case the result must be discarded. On success the loader becomes idle.
func (l *Loader) Complete(id uint64) bool {
	if !l.IsCurrent(id) {
		return false
	}
	l.release()
	return true
}

// Cancel abandons the pending request, if any.
func (l *Loader) Cancel() {
	l.release()
}

// Pending reports whether a request is in flight.
func (l *Loader) Pending() bool {
	return l.current != 0
}

func (l *Loader) release() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.current = 0
}

// Load begins a request on l and returns the command that performs it.
func Load[T any](l *Loader, parent context.Context, fetch FetchFunc[T]) tea.Cmd {
	id, ctx := l.Begin(parent)
	return func() tea.Msg {
		value, err := fetch(ctx)
		return ResultMsg[T]{RequestID: id, Value: value, Err: err}
	}
}
