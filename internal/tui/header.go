package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top header bar.
//
// Layout:
//
//	left:   "hotspot" and the input directory
//	center: the report metric
//	right:  "top N" cutoff of the report
func renderHeader(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}

	left := "hotspot  " + sanitize(app.source)
	center := StyleWarn.Render("● " + strings.ToUpper(string(app.result.Metric)))
	right := StyleDim.Render(fmt.Sprintf("top %d", app.size))

	// Build row: left + padding + center + padding + right, filling innerWidth.
	// StyleHeader has Padding(0, 1) so inner content width = total width - 2.
	innerWidth := width - 2
	spacing := innerWidth - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right)
	if spacing < 0 {
		spacing = 0
	}
	leftSpacing := spacing / 2
	rightSpacing := spacing - leftSpacing

	row := left +
		strings.Repeat(" ", leftSpacing) +
		center +
		strings.Repeat(" ", rightSpacing) +
		right

	return StyleHeader.Width(width).Render(row)
}

// renderTabs renders the view selector.
func renderTabs(app *App) string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		if tab(i) == app.activeTab {
			parts[i] = StyleTabActive.Render(name)
		} else {
			parts[i] = StyleTabInactive.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
