package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// browseTable is a sortable, paginated, searchable table over one of the
// ranked collections.
type browseTable[T any] struct {
	tableModel
	title string
	empty string // shown when no row matches

	sortRows   func(rows []T, col int, desc bool) []T
	filterRows func(rows []T, search string) []T
	cells      func(r T) []string
	detail     func(r T) string

	allRows     []T // collection order, as ranked
	displayRows []T // after filter + sort applied
}

// SetData applies the current search filter and sort to rows, storing the
// result as displayRows ready for rendering.
func (m *browseTable[T]) SetData(rows []T) {
	m.allRows = rows
	m.refresh()
}

func (m *browseTable[T]) refresh() {
	filtered := m.filterRows(m.allRows, m.search)
	m.displayRows = m.sortRows(filtered, m.sortCol, m.sortDesc)
	m.clampPage(len(m.displayRows))
	m.clampCursor(m.currentPageRowCount(len(m.displayRows)))
}

// Update handles keyboard events for sorting, pagination, and search. It
// delegates to the embedded tableModel and re-applies filter/sort when the
// sort column, direction, or search term changes.
func (m *browseTable[T]) Update(msg tea.Msg) tea.Cmd {
	prevSort := m.sortCol
	prevDesc := m.sortDesc
	prevSearch := m.search

	base, cmd := m.tableModel.Update(msg)
	m.tableModel = base

	if m.sortCol != prevSort || m.sortDesc != prevDesc || m.search != prevSearch {
		m.refresh()
	}
	m.clampPage(len(m.displayRows)) // always clamp after any key (e.g. NextPage)
	m.clampCursor(m.currentPageRowCount(len(m.displayRows)))
	return cmd
}

// Selected returns the row under the cursor.
func (m *browseTable[T]) Selected() (T, bool) {
	var zero T
	if len(m.displayRows) == 0 {
		return zero, false
	}
	idx := m.page*m.pageSize + m.cursor
	if idx < 0 || idx >= len(m.displayRows) {
		return zero, false
	}
	return m.displayRows[idx], true
}

// View renders the title bar, the current page and, when focused, a detail
// line for the selected row.
func (m *browseTable[T]) View(width int) string {
	hdr := m.renderHeader(m.title, len(m.displayRows))

	allIdx := make([]int, len(m.displayRows))
	for i := range m.displayRows {
		allIdx[i] = i
	}
	pageIdx := currentPageIndices(allIdx, m.page, m.pageSize)
	if len(pageIdx) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, hdr, StyleDim.Render("  "+m.empty))
	}

	rows := make([][]string, 0, len(pageIdx))
	for _, idx := range pageIdx {
		rows = append(rows, m.cells(m.displayRows[idx]))
	}
	body := m.renderBody(rows, width)

	if m.focused && m.detail != nil {
		if r, ok := m.Selected(); ok {
			return lipgloss.JoinVertical(lipgloss.Left, hdr, body, StyleDim.Render("  "+m.detail(r)))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, hdr, body)
}
