package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/countrydex/internal/country"
	"github.com/rshade/countrydex/internal/directory"
	"github.com/rshade/countrydex/internal/logging"
	"github.com/rshade/countrydex/internal/tui/detail"
	gridview "github.com/rshade/countrydex/internal/tui/grid"
)

// ViewState represents the current view of the directory.
type ViewState int

const (
	// ViewStateLoading is shown while the country list is fetched.
	ViewStateLoading ViewState = iota
	// ViewStateList shows the card grid.
	ViewStateList
	// ViewStateDetail shows the detail modal over the grid.
	ViewStateDetail
	// ViewStateQuitting is set once the program is exiting.
	ViewStateQuitting
)

const (
	// Banner texts.
	loadCountriesFailedText = "Failed to load countries. Please try again."
	loadDetailsFailedText   = "Could not load details."

	defaultWidth  = 80
	defaultHeight = 24

	// headerHeight is title, search, region bar and status line.
	headerHeight = 4
	footerHeight = 1

	searchInputCharLimit = 64
	searchInputWidth     = 40

	helpText = "/ search • f/F region • a all • enter open • esc clear • q quit"
)

// Fetcher retrieves country data. *restcountries.Client implements it.
type Fetcher interface {
	FetchAllCountries(ctx context.Context) ([]country.Summary, error)
	FetchCountryDetails(ctx context.Context, name string) (*country.Detail, error)
}

// Options configures a DirectoryModel.
type Options struct {
	FilterMode    directory.FilterMode
	ErrorTimeout  time.Duration
	InitialRegion directory.Region
	InitialQuery  string
}

// countriesLoadedMsg carries the result of the initial list fetch.
type countriesLoadedMsg struct {
	countries []country.Summary
	err       error
}

// detailLoadedMsg carries the result of a detail fetch.
type detailLoadedMsg = detail.ResultMsg[*country.Detail]

// DirectoryModel is the Bubble Tea model for the interactive country directory.
type DirectoryModel struct {
	ctx     context.Context //nolint:containedctx // Bubble Tea commands need the program context.
	fetcher Fetcher
	opts    Options

	// View state
	state ViewState
	dir   *directory.Directory // Owns the canonical list
	grid  *gridview.VirtualGridModel[country.Summary]

	// Search input
	search        textinput.Model
	searchFocused bool

	// Status notifiers
	loading *LoadingState
	banner  *ErrorBanner

	// Detail modal
	loader  *detail.Loader
	current *country.Detail // Held only while the modal is open

	width  int
	height int
}

// NewDirectoryModel creates a model that starts by fetching the country list.
// ctx bounds every request the model issues.
func NewDirectoryModel(ctx context.Context, fetcher Fetcher, opts Options) *DirectoryModel {
	m := &DirectoryModel{
		ctx:     ctx,
		fetcher: fetcher,
		opts:    opts,
		state:   ViewStateLoading,
		dir:     directory.New(nil, opts.FilterMode),
		search:  newSearchInput(),
		loading: NewLoadingState(),
		banner:  NewErrorBanner(opts.ErrorTimeout),
		loader:  detail.NewLoader(),
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.rebuildGrid(false)
	return m
}

// newSearchInput creates the text input for the name search.
func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Search countries..."
	ti.CharLimit = searchInputCharLimit
	ti.Width = searchInputWidth
	return ti
}

// Init shows the loading indicator and starts the list fetch.
func (m *DirectoryModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Show(""), m.fetchCountries())
}

func (m *DirectoryModel) fetchCountries() tea.Cmd {
	ctx, fetcher := m.ctx, m.fetcher
	return func() tea.Msg {
		countries, err := fetcher.FetchAllCountries(ctx)
		return countriesLoadedMsg{countries: countries, err: err}
	}
}

// Update handles messages and updates the model state.
func (m *DirectoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildGrid(true)
		return m, nil
	case countriesLoadedMsg:
		return m.handleCountriesLoaded(msg)
	case detailLoadedMsg:
		return m.handleDetailLoaded(msg)
	case errorBannerExpiredMsg:
		m.banner.Expire()
		return m, nil
	case spinner.TickMsg:
		return m, m.loading.Update(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	if m.searchFocused && m.state == ViewStateList {
		return m.handleSearchInput(msg)
	}

	switch m.state {
	case ViewStateLoading:
		return m.handleLoadingUpdate(msg)
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateDetail:
		return m.handleDetailUpdate(msg)
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m *DirectoryModel) handleCountriesLoaded(msg countriesLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading.Hide()
	m.state = ViewStateList

	if msg.err != nil {
		logging.FromContext(m.ctx).Error().Ctx(m.ctx).
			Str("component", "tui").
			Err(msg.err).
			Msg("country list unavailable")
		m.rebuildGrid(false)
		return m, m.banner.Show(loadCountriesFailedText)
	}

	m.dir.Replace(msg.countries)
	if m.opts.InitialRegion != directory.RegionAll {
		m.dir.Filter(m.opts.InitialRegion)
	}
	if m.opts.InitialQuery != "" {
		m.dir.Search(m.opts.InitialQuery)
		m.search.SetValue(m.opts.InitialQuery)
	}
	m.syncSearchInput()
	m.rebuildGrid(false)
	return m, nil
}

func (m *DirectoryModel) handleDetailLoaded(msg detailLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.loader.Complete(msg.RequestID) {
		// Superseded or cancelled.
		return m, nil
	}
	m.loading.Hide()

	if msg.Err != nil || msg.Value == nil {
		logging.FromContext(m.ctx).Error().Ctx(m.ctx).
			Str("component", "tui").
			Err(msg.Err).
			Msg("country details unavailable")
		return m, m.banner.Show(loadDetailsFailedText)
	}

	m.blurSearch()
	m.current = msg.Value
	m.state = ViewStateDetail
	return m, nil
}

func (m *DirectoryModel) handleSearchInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyCtrlC:
			return m.quit()
		case keyEnter, keyEsc:
			m.blurSearch()
			return m, nil
		}
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.applySearch(m.search.Value())
	}
	return m, cmd
}

func (m *DirectoryModel) handleLoadingUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			return m.quit()
		}
	}
	return m, nil
}

func (m *DirectoryModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		return m.quit()
	case keySlash:
		m.searchFocused = true
		return m, m.search.Focus()
	case keyRegion:
		m.applyRegion(directory.NextRegion(m.dir.Region()))
		return m, nil
	case keyRegionB:
		m.applyRegion(directory.PrevRegion(m.dir.Region()))
		return m, nil
	case keyAll:
		m.applyRegion(directory.RegionAll)
		return m, nil
	case keyEnter:
		return m, m.openSelected()
	case keyEsc:
		if m.loader.Pending() {
			m.loader.Cancel()
			m.loading.Hide()
			return m, nil
		}
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.applySearch("")
		}
		return m, nil
	}

	// Forward navigation to the grid
	updated, cmd := m.grid.Update(msg)
	if g, ok := updated.(*gridview.VirtualGridModel[country.Summary]); ok {
		m.grid = g
	}
	return m, cmd
}

func (m *DirectoryModel) handleDetailUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			return m.quit()
		case keyEsc, keyClose:
			m.closeModal()
			return m, nil
		}
	}
	return m, nil
}

//nolint:exhaustive // Only left presses act.
func (m *DirectoryModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch m.state {
	case ViewStateDetail:
		layout := newModalLayout(m.modalView(), m.width, m.height)
		if layout.OnClose(msg.X, msg.Y) || !layout.Contains(msg.X, msg.Y) {
			m.closeModal()
		}
		return m, nil
	case ViewStateList:
		index, ok := m.grid.ItemAt(msg.X, msg.Y-headerHeight)
		if !ok {
			return m, nil
		}
		m.blurSearch()
		m.grid.SetSelected(index)
		return m, m.openSelected()
	default:
		return m, nil
	}
}

// openSelected starts loading the selected country's details.
func (m *DirectoryModel) openSelected() tea.Cmd {
	selected := m.grid.GetSelectedItem()
	if selected == nil {
		return nil
	}

	name := selected.CommonName
	fetcher := m.fetcher
	load := detail.Load(m.loader, m.ctx, func(ctx context.Context) (*country.Detail, error) {
		return fetcher.FetchCountryDetails(ctx, name)
	})
	return tea.Batch(m.loading.Show(""), load)
}

// blurSearch returns keyboard focus from the search box to the grid.
func (m *DirectoryModel) blurSearch() {
	m.searchFocused = false
	m.search.Blur()
}

// closeModal discards the detail record and returns to the grid.
func (m *DirectoryModel) closeModal() {
	m.current = nil
	m.state = ViewStateList
}

func (m *DirectoryModel) quit() (tea.Model, tea.Cmd) {
	m.loader.Cancel()
	m.state = ViewStateQuitting
	return m, tea.Quit
}

func (m *DirectoryModel) applySearch(query string) {
	m.dir.Search(query)
	m.rebuildGrid(false)
}

func (m *DirectoryModel) applyRegion(region directory.Region) {
	m.dir.Filter(region)
	m.syncSearchInput()
	m.rebuildGrid(false)
}

// syncSearchInput clears the input when the directory dropped the query.
func (m *DirectoryModel) syncSearchInput() {
	if m.dir.Query() == "" && strings.TrimSpace(m.search.Value()) != "" {
		m.search.SetValue("")
	}
}

// rebuildGrid re-lays out the visible countries. Selection is kept only for
// resizes; a changed result set starts from the first card.
func (m *DirectoryModel) rebuildGrid(keepSelection bool) {
	selected := 0
	if keepSelection && m.grid != nil {
		selected = m.grid.Selected()
	}
	m.grid = newCardGrid(m.dir.Visible(), m.gridHeight(), m.width)
	m.grid.SetSelected(selected)
}

func (m *DirectoryModel) gridHeight() int {
	return max(cardHeight, m.height-headerHeight-footerHeight)
}

// State returns the current view state.
func (m *DirectoryModel) State() ViewState {
	return m.state
}

// Directory returns the filter/search state.
func (m *DirectoryModel) Directory() *directory.Directory {
	return m.dir
}

// Current returns the detail record shown in the modal, or nil.
func (m *DirectoryModel) Current() *country.Detail {
	return m.current
}

// View renders the model.
func (m *DirectoryModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateDetail:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.modalView())
	case ViewStateLoading, ViewStateList:
		return m.listView()
	default:
		return ""
	}
}

func (m *DirectoryModel) modalView() string {
	if m.current == nil {
		return ""
	}
	return RenderDetailModal(m.current, m.width)
}

func (m *DirectoryModel) listView() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n")

	switch {
	case m.state == ViewStateLoading:
		b.WriteString("\n")
	case m.grid.ItemCount() == 0:
		b.WriteString(InfoStyle.Render(NoCountriesText))
	default:
		b.WriteString(m.grid.View())
	}
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render(helpText))

	return b.String()
}

// headerView renders exactly headerHeight lines.
func (m *DirectoryModel) headerView() string {
	title := HeaderStyle.Render("countrydex") +
		SubtleStyle.Render(fmt.Sprintf("  %d of %d countries", m.grid.ItemCount(), m.dir.Len()))

	search := LabelStyle.Render("Search: ") + m.search.View()

	regions := make([]string, 0, len(directory.Regions()))
	for _, r := range directory.Regions() {
		if r == m.dir.Region() {
			regions = append(regions, ActiveRegionStyle.Render("["+r.Label()+"]"))
		} else {
			regions = append(regions, SubtleStyle.Render(" "+r.Label()+" "))
		}
	}
	regionBar := LabelStyle.Render("Region: ") + strings.Join(regions, "")

	status := ""
	switch {
	case m.banner.Visible():
		status = m.banner.View()
	case m.loading.Visible():
		status = RenderLoading(m.loading)
	}

	return strings.Join([]string{title, search, regionBar, status}, "\n")
}
