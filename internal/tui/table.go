package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
)

// minColWidth is the narrowest a column is squeezed to.
const minColWidth = 4

// columnDef describes a single column in a table.
type columnDef struct {
	Title string
	Width int  // preferred width, used as a proportion of the terminal
	Right bool // right-align cells
}

// tableModel is the generic base for sortable, paginated, searchable tables.
type tableModel struct {
	columns   []columnDef
	sortCol   int // -1 = collection order
	sortDesc  bool
	page      int // 0-indexed
	pageSize  int // default 10
	cursor    int // row within the current page
	search    string
	searching bool
	input     textinput.Model
	focused   bool
}

// newTableModel initialises a tableModel with sensible defaults.
func newTableModel(cols []columnDef) tableModel {
	ti := textinput.New()
	ti.Placeholder = "filter..."
	ti.CharLimit = 80
	return tableModel{
		columns:  cols,
		sortCol:  -1,
		pageSize: 10,
		input:    ti,
	}
}

// Update handles keyboard input for sorting, pagination, cursor movement and
// search.
func (t tableModel) Update(msg tea.Msg) (tableModel, tea.Cmd) {
	if !t.focused {
		return t, nil
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	if t.searching {
		switch {
		case key.Matches(km, keys.Escape):
			t.searching = false
			t.input.Blur()
			if t.input.Value() == "" {
				t.search = ""
			}
			return t, nil
		case km.String() == "enter":
			t.search = t.input.Value()
			t.searching = false
			t.input.Blur()
			t.page = 0
			t.cursor = 0
			return t, nil
		default:
			var cmd tea.Cmd
			t.input, cmd = t.input.Update(km)
			return t, cmd
		}
	}

	// Not searching: handle navigation keys.
	switch {
	case key.Matches(km, keys.Search):
		t.searching = true
		t.input.SetValue(t.search)
		t.input.Focus()
		return t, textinput.Blink
	case key.Matches(km, keys.Escape):
		t.search = ""
		t.input.SetValue("")
		t.page = 0
		t.cursor = 0
	case key.Matches(km, keys.Up):
		if t.cursor > 0 {
			t.cursor--
		}
	case key.Matches(km, keys.Down):
		t.cursor++
	case key.Matches(km, keys.PrevPage):
		if t.page > 0 {
			t.page--
			t.cursor = 0
		}
	case key.Matches(km, keys.NextPage):
		t.page++
		t.cursor = 0
	default:
		// Digit keys 1-9 → set sort column; 0 restores collection order.
		if km.String() == "0" {
			t.sortCol = -1
			t.page = 0
			return t, nil
		}
		col := digitToCol(km.String())
		if col >= 0 && col < len(t.columns) {
			if col == t.sortCol {
				t.sortDesc = !t.sortDesc
			} else {
				t.sortCol = col
				t.sortDesc = t.columns[col].Right // numbers high to low, text A to Z
			}
			t.page = 0
			t.cursor = 0
		}
	}
	return t, nil
}

// digitToCol converts a "1"–"9" key string to a 0-indexed column number.
// Returns -1 for any other string.
func digitToCol(s string) int {
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return int(s[0] - '1')
	}
	return -1
}

// pageCount returns the total number of pages for totalRows rows at pageSize rows per page.
// Always at least 1.
func pageCount(totalRows, pageSize int) int {
	if totalRows == 0 || pageSize <= 0 {
		return 1
	}
	c := totalRows / pageSize
	if totalRows%pageSize != 0 {
		c++
	}
	return c
}

// currentPageIndices returns the slice of row indices visible on the current page.
// allIndices is typically [0, 1, 2, ... n-1] or a pre-filtered subset.
func currentPageIndices(allIndices []int, page, pageSize int) []int {
	if pageSize <= 0 || len(allIndices) == 0 {
		return allIndices
	}
	start := page * pageSize
	if start >= len(allIndices) {
		start = 0
	}
	end := start + pageSize
	if end > len(allIndices) {
		end = len(allIndices)
	}
	return allIndices[start:end]
}

// clampPage ensures the page index stays within valid bounds given the total
// number of rows and the configured pageSize.
func (t *tableModel) clampPage(totalRows int) {
	pc := pageCount(totalRows, t.pageSize)
	if t.page >= pc {
		t.page = pc - 1
	}
	if t.page < 0 {
		t.page = 0
	}
}

// clampCursor keeps the cursor on a visible row.
func (t *tableModel) clampCursor(rowsOnPage int) {
	if t.cursor >= rowsOnPage {
		t.cursor = rowsOnPage - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

// currentPageRowCount returns how many rows the current page shows.
func (t *tableModel) currentPageRowCount(totalRows int) int {
	start := t.page * t.pageSize
	if t.pageSize <= 0 {
		return totalRows
	}
	if start >= totalRows {
		return 0
	}
	if n := totalRows - start; n < t.pageSize {
		return n
	}
	return t.pageSize
}

// headerTitles returns the column titles with a sort arrow on the active
// sort column.
func (t *tableModel) headerTitles() []string {
	headers := make([]string, len(t.columns))
	for i, c := range t.columns {
		if i == t.sortCol {
			arrow := "↓"
			if !t.sortDesc {
				arrow = "↑"
			}
			headers[i] = c.Title + arrow
		} else {
			headers[i] = c.Title
		}
	}
	return headers
}

// renderHeader renders the title bar with search/sort/page hints.
// When searching, the live textinput view is shown instead of hints.
func (t *tableModel) renderHeader(title string, totalRows int) string {
	pageInfo := fmt.Sprintf("Page %d/%d", t.page+1, pageCount(totalRows, t.pageSize))

	var right string
	switch {
	case t.searching:
		right = "Search: " + t.input.View()
	case t.search != "":
		right = fmt.Sprintf("filter=%q  %s", t.search, pageInfo)
	default:
		right = "[/: search]  [1-9: sort]  [←→: page]  " + pageInfo
	}
	return StyleDim.Render(title + "  " + right)
}

// renderBody lays out one page of cells as a lipgloss table. cells[i] is
// the i-th row of the page.
func (t *tableModel) renderBody(cells [][]string, width int) string {
	var colWidths []int
	if width > 0 {
		colWidths = columnWidths(width, t.columns)
	}

	headers := t.headerTitles()
	// Pad headers to target column widths so the table allocates proportional space.
	if len(colWidths) == len(t.columns) {
		for i, h := range headers {
			if w := runewidth.StringWidth(h); w < colWidths[i] {
				headers[i] = h + strings.Repeat(" ", colWidths[i]-w)
			}
		}
	}

	sortCol := t.sortCol
	focused := t.focused
	cursor := t.cursor
	columns := t.columns
	lt := ltable.New().
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				if col == sortCol {
					return lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
				}
				return lipgloss.NewStyle().Bold(true).Foreground(colorGray)
			}
			base := lipgloss.NewStyle().Foreground(colorWhite)
			if focused && row == cursor {
				base = base.Background(colorSelectedBg)
			} else if row%2 == 0 {
				base = base.Background(colorAlt)
			}
			if col < len(columns) && columns[col].Right {
				base = base.Align(lipgloss.Right)
			}
			return base
		}).
		BorderStyle(lipgloss.NewStyle().Foreground(colorGray)).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(true).
		BorderColumn(false)

	if width > 0 {
		lt = lt.Width(width)
	}

	for _, row := range cells {
		// Prevent cell wrapping: truncate the first column to its width.
		if len(colWidths) > 0 && len(row) > 0 {
			row[0] = truncateName(row[0], colWidths[0])
		}
		lt = lt.Row(row...)
	}
	return lt.String()
}

// columnWidths distributes available terminal columns across defs in
// proportion to their preferred widths. The last column takes the rounding
// remainder. Non-positive available returns the preferred widths.
func columnWidths(available int, defs []columnDef) []int {
	out := make([]int, len(defs))
	if available <= 0 {
		for i, d := range defs {
			out[i] = d.Width
		}
		return out
	}
	total := 0
	for _, d := range defs {
		total += d.Width
	}
	if total == 0 {
		return out
	}
	used := 0
	for i, d := range defs {
		if i == len(defs)-1 {
			out[i] = max(available-used, minColWidth)
			break
		}
		out[i] = max(available*d.Width/total, minColWidth)
		used += out[i]
	}
	return out
}

// truncateName shortens s to at most maxWidth terminal cells, ending in "..."
// when there is room for it.
func truncateName(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	tail := "..."
	if maxWidth <= len(tail) {
		tail = ""
	}
	limit := maxWidth - len(tail)

	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > limit {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String() + tail
}
