package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/hotspot/internal/model"
)

// overviewCounts are the numbers shown on the overview cards.
type overviewCounts struct {
	nodes       int
	indices     int
	shards      int
	restarts    int
	nonHot      int
	acrossRoles int
}

func countOverview(nodes []model.NodeSnapshot, indices []model.IndexSummary, shards int) overviewCounts {
	c := overviewCounts{nodes: len(nodes), indices: len(indices), shards: shards}
	for _, n := range nodes {
		if n.UptimeReset {
			c.restarts++
		}
		if n.NonHotIndexing || n.NonHotPoolIndexing {
			c.nonHot++
		}
	}
	for _, ix := range indices {
		if ix.ShardsAcrossRoles {
			c.acrossRoles++
		}
	}
	return c
}

// renderOverview renders the 6-card summary bar.
// Wide terminals (>= 80 cols): all cards in a single horizontal row.
// Narrow terminals (< 80 cols): cards stacked in rows of 2.
func renderOverview(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}

	narrowMode := width < 80

	var cardWidth int
	if narrowMode {
		cardWidth = (width - 4) / 2
		if cardWidth < 10 {
			cardWidth = 10
		}
	} else {
		cardWidth = (width - 12) / 6
		if cardWidth < 8 {
			cardWidth = 8
		}
	}

	c := app.overview
	cards := []string{
		StyleOverviewCard.Foreground(colorBlue).Width(cardWidth).
			Render(fmt.Sprintf("%d\nNodes", c.nodes)),
		StyleOverviewCard.Foreground(colorPurple).Width(cardWidth).
			Render(fmt.Sprintf("%d\nIndices", c.indices)),
		StyleOverviewCard.Foreground(colorWhite).Width(cardWidth).
			Render(fmt.Sprintf("%d\nShards", c.shards)),
		countStyle(c.restarts, colorRed).Width(cardWidth).
			Render(fmt.Sprintf("%d\nRestarted", c.restarts)),
		countStyle(c.nonHot, colorRed).Width(cardWidth).
			Render(fmt.Sprintf("%d\nNon-hot Idx", c.nonHot)),
		countStyle(c.acrossRoles, colorYellow).Width(cardWidth).
			Render(fmt.Sprintf("%d\nMixed Roles", c.acrossRoles)),
	}

	if !narrowMode {
		return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}
	var rows []string
	for i := 0; i < len(cards); i += 2 {
		end := min(i+2, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
