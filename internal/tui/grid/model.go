package gridview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// cellGap is the number of blank columns between two cells of a row.
const cellGap = 1

// RenderFunc renders one cell. The selected parameter indicates whether this
// item is currently selected. Every cell must render to the same size.
type RenderFunc[T any] func(item T, selected bool) string

// VirtualGridModel renders items as a grid of fixed-size cells and scrolls
// by whole rows so the selected cell is always visible.
type VirtualGridModel[T any] struct {
	items      []T
	renderFunc RenderFunc[T]

	// selected is the selected item index (0-based)
	selected int

	// rowFrom and rowTo bound the visible rows, rowTo exclusive
	rowFrom int
	rowTo   int

	// viewport size in terminal cells
	height int
	width  int

	// cell size in terminal cells, excluding the gap
	cellWidth  int
	cellHeight int
}

// NewVirtualGridModel creates a grid over items.
// height and width are the viewport size; cellWidth and cellHeight the size
// every rendered cell occupies.
func NewVirtualGridModel[T any](
	items []T,
	height, width, cellWidth, cellHeight int,
	renderFunc RenderFunc[T],
) *VirtualGridModel[T] {
	m := &VirtualGridModel[T]{
		items:      items,
		renderFunc: renderFunc,
		height:     height,
		width:      width,
		cellWidth:  max(1, cellWidth),
		cellHeight: max(1, cellHeight),
	}

	m.updateVisibleRange()
	return m
}

// Init initializes the model (required for tea.Model interface).
func (m *VirtualGridModel[T]) Init() tea.Cmd {
	return nil
}

// Update handles keyboard and resize messages.
func (m *VirtualGridModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg), nil
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width
		m.updateVisibleRange()
		return m, nil
	}

	return m, nil
}

// handleKeyMsg moves the selection.
//
//nolint:exhaustive // Only navigation keys are relevant.
func (m *VirtualGridModel[T]) handleKeyMsg(msg tea.KeyMsg) tea.Model {
	if len(m.items) == 0 {
		return m
	}

	switch msg.Type {
	case tea.KeyUp:
		m.moveRows(-1)
	case tea.KeyDown:
		m.moveRows(1)
	case tea.KeyLeft:
		m.SetSelected(m.selected - 1)
	case tea.KeyRight:
		m.SetSelected(m.selected + 1)
	case tea.KeyPgUp:
		m.moveRows(-m.VisibleRows())
	case tea.KeyPgDown:
		m.moveRows(m.VisibleRows())
	case tea.KeyHome:
		m.SetSelected(0)
	case tea.KeyEnd:
		m.SetSelected(len(m.items) - 1)
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			switch msg.Runes[0] {
			case 'k':
				m.moveRows(-1)
			case 'j':
				m.moveRows(1)
			case 'h':
				m.SetSelected(m.selected - 1)
			case 'l':
				m.SetSelected(m.selected + 1)
			}
		}
	default:
	}

	return m
}

// moveRows moves the selection by n rows, keeping the column where possible.
// Moving down from the row above a short last row lands on its last item.
func (m *VirtualGridModel[T]) moveRows(n int) {
	cols := m.Columns()
	target := m.selected + n*cols
	lastRow := m.totalRows() - 1

	switch {
	case target < 0:
		target = m.selected % cols
		if n < -1 {
			target = 0
		}
		if m.selected < cols {
			return
		}
	case target >= len(m.items):
		if m.selected/cols >= lastRow {
			return
		}
		target = len(m.items) - 1
	}

	m.SetSelected(target)
}

// updateVisibleRange scrolls the minimum number of rows needed to keep the
// selected row on screen.
func (m *VirtualGridModel[T]) updateVisibleRange() {
	if len(m.items) == 0 {
		m.rowFrom = 0
		m.rowTo = 0
		return
	}

	rows := m.VisibleRows()
	total := m.totalRows()
	selRow := m.selected / m.Columns()

	if selRow < m.rowFrom {
		m.rowFrom = selRow
	}
	if selRow >= m.rowFrom+rows {
		m.rowFrom = selRow - rows + 1
	}
	if maxFrom := max(0, total-rows); m.rowFrom > maxFrom {
		m.rowFrom = maxFrom
	}

	m.rowTo = min(total, m.rowFrom+rows)
}

// View renders the visible rows.
func (m *VirtualGridModel[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	cols := m.Columns()
	gap := strings.Repeat(" ", cellGap)
	rows := make([]string, 0, m.rowTo-m.rowFrom)

	for row := m.rowFrom; row < m.rowTo; row++ {
		start := row * cols
		end := min(start+cols, len(m.items))

		cells := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, gap)
			}
			cells = append(cells, m.renderFunc(m.items[i], i == m.selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return strings.Join(rows, "\n")
}

// ItemAt returns the index of the item drawn at column x, row y of the grid
// (relative to the grid's top-left corner).
func (m *VirtualGridModel[T]) ItemAt(x, y int) (int, bool) {
	if x < 0 || y < 0 || len(m.items) == 0 {
		return 0, false
	}

	stride := m.cellWidth + cellGap
	col := x / stride
	if x%stride >= m.cellWidth || col >= m.Columns() {
		return 0, false
	}

	rowOffset := y / m.cellHeight
	if rowOffset >= m.rowTo-m.rowFrom {
		return 0, false
	}

	index := (m.rowFrom+rowOffset)*m.Columns() + col
	if index >= len(m.items) {
		return 0, false
	}
	return index, true
}

// Columns returns how many cells fit side by side, at least one.
func (m *VirtualGridModel[T]) Columns() int {
	return max(1, (m.width+cellGap)/(m.cellWidth+cellGap))
}

// VisibleRows returns how many rows fit in the viewport, at least one.
func (m *VirtualGridModel[T]) VisibleRows() int {
	return max(1, m.height/m.cellHeight)
}

func (m *VirtualGridModel[T]) totalRows() int {
	cols := m.Columns()
	return (len(m.items) + cols - 1) / cols
}

// ItemCount returns the total number of items in the grid.
func (m *VirtualGridModel[T]) ItemCount() int {
	return len(m.items)
}

// Selected returns the currently selected item index.
func (m *VirtualGridModel[T]) Selected() int {
	return m.selected
}

// SetSelected sets the selected item index, capping to valid bounds.
func (m *VirtualGridModel[T]) SetSelected(index int) {
	if len(m.items) == 0 {
		m.selected = 0
		return
	}

	switch {
	case index < 0:
		m.selected = 0
	case index >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = index
	}

	m.updateVisibleRange()
}

// RowFrom returns the first visible row (inclusive).
func (m *VirtualGridModel[T]) RowFrom() int {
	return m.rowFrom
}

// RowTo returns the last visible row (exclusive).
func (m *VirtualGridModel[T]) RowTo() int {
	return m.rowTo
}

// GetSelectedItem returns the currently selected item, or nil if the grid is
// empty.
func (m *VirtualGridModel[T]) GetSelectedItem() *T {
	if len(m.items) == 0 || m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return &m.items[m.selected]
}
