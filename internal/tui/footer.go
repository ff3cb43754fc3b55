package tui

import "strings"

// renderFooter renders the key hint line at full terminal width. The short
// hint names the views tab cycles through and adds the table keys only where
// a table has focus; ? swaps it for the full key list.
func renderFooter(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}
	if app.showHelp {
		return StyleDim.Width(width).Render(helpText)
	}
	return StyleDim.Width(width).Render(footerHint(app.activeTab))
}

func footerHint(active tab) string {
	views := make([]string, len(tabNames))
	for i, name := range tabNames {
		views[i] = strings.ToLower(name)
	}
	hint := "tab: " + strings.Join(views, "/")
	if active != tabReport {
		hint += "  /: search  1-9: sort"
	}
	return hint + "  q: quit  ?: help"
}
