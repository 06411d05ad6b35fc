package tui

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/rshade/countrydex/internal/country"
)

var errFakeOffline = errors.New("offline")

func fixtureCountries() []country.Summary {
	return []country.Summary{
		{CommonName: "Chile", Region: "Americas", Population: 19116209, FlagImageURL: "https://flagcdn.com/w320/cl.png"},
		{CommonName: "Peru", Region: "Americas", Population: 32971846, FlagImageURL: "https://flagcdn.com/w320/pe.png"},
		{CommonName: "France", Region: "Europe", Population: 67391582, FlagImageURL: "https://flagcdn.com/w320/fr.png"},
		{CommonName: "Japan", Region: "Asia", Population: 125836021, FlagImageURL: "https://flagcdn.com/w320/jp.png"},
		{CommonName: "Kenya", Region: "Africa", Population: 53771300, FlagImageURL: "https://flagcdn.com/w320/ke.png"},
	}
}

func chileDetail() *country.Detail {
	return &country.Detail{
		CommonName:   "Chile",
		Capitals:     []string{"Santiago"},
		Languages:    map[string]string{"spa": "Spanish"},
		Currencies:   map[string]country.Currency{"CLP": {Name: "Chilean peso", Symbol: "$"}},
		Timezones:    []string{"UTC-06:00", "UTC-04:00"},
		MapURL:       "https://goo.gl/maps/XboxyNHh2fAjCPNn9",
		FlagImageURL: "https://flagcdn.com/w320/cl.png",
	}
}

// fakeFetcher serves fixed data and records detail requests.
type fakeFetcher struct {
	countries []country.Summary
	listErr   error
	details   map[string]*country.Detail

	mu        sync.Mutex
	requested []string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		countries: fixtureCountries(),
		details: map[string]*country.Detail{
			"Chile": chileDetail(),
			"Peru":  {CommonName: "Peru", Capitals: []string{"Lima"}},
		},
	}
}

func (f *fakeFetcher) FetchAllCountries(_ context.Context) ([]country.Summary, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.countries, nil
}

func (f *fakeFetcher) FetchCountryDetails(ctx context.Context, name string) (*country.Detail, error) {
	f.mu.Lock()
	f.requested = append(f.requested, name)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d, ok := f.details[name]
	if !ok {
		return nil, errFakeOffline
	}
	return d, nil
}

// newLoadedModel returns a model sized 100x40 with the fixture list loaded.
func newLoadedModel(t *testing.T, opts Options) (*DirectoryModel, *fakeFetcher) {
	t.Helper()

	fetcher := newFakeFetcher()
	m := NewDirectoryModel(context.Background(), fetcher, opts)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.Init()

	msg := m.fetchCountries()()
	m.Update(msg)
	require.Equal(t, ViewStateList, m.State())
	return m, fetcher
}

// collectMsgs runs cmd and every command batched inside it. Only use it with
// commands that return immediately (no timers).
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// detailMsg runs cmd and returns the detail result it produced.
func detailMsg(t *testing.T, cmd tea.Cmd) detailLoadedMsg {
	t.Helper()
	for _, msg := range collectMsgs(cmd) {
		if d, ok := msg.(detailLoadedMsg); ok {
			return d
		}
	}
	require.FailNow(t, "command produced no detail result")
	return detailLoadedMsg{}
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// typeText types s into the focused search input one rune at a time.
func typeText(m *DirectoryModel, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func visibleNames(m *DirectoryModel) []string {
	var names []string
	for _, c := range m.Directory().Visible() {
		names = append(names, c.CommonName)
	}
	return names
}
