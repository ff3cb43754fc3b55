package report

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
)

const textColumns = 3

// Render lays the table out as plain text: a header line, a separator, then
// one line per node and the totals line. Numeric columns are right aligned.
func Render(t Table) string {
	cell := lipgloss.NewStyle().Padding(0, 1)
	lt := ltable.New().
		Headers(t.Headers()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col >= textColumns {
				return cell.Align(lipgloss.Right)
			}
			return cell
		}).
		Border(lipgloss.NormalBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(true).
		BorderColumn(false)

	for _, r := range t.Rows {
		lt = lt.Row(cells(r)...)
	}
	lt = lt.Row(cells(t.Total)...)

	return lt.String() + "\n"
}

func cells(r Row) []string {
	out := make([]string, 0, textColumns+len(r.Values))
	out = append(out, r.Name, r.ID, r.Roles)
	for _, v := range r.Values {
		out = append(out, strconv.FormatInt(v, 10))
	}
	return out
}
