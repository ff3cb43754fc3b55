package tui

import "github.com/charmbracelet/lipgloss"

// Color constants: hotspot palette.
var (
	colorGreen      = lipgloss.Color("#10b981")
	colorYellow     = lipgloss.Color("#f59e0b")
	colorRed        = lipgloss.Color("#ef4444")
	colorGray       = lipgloss.Color("#6b7280")
	colorBlue       = lipgloss.Color("#3b82f6")
	colorPurple     = lipgloss.Color("#8b5cf6")
	colorWhite      = lipgloss.Color("#f8fafc")
	colorDark       = lipgloss.Color("#1e293b")
	colorAlt        = lipgloss.Color("#0f172a")
	colorSelectedBg = lipgloss.Color("#334155")
)

// StyleHeader: full-width dark header bar.
var StyleHeader = lipgloss.NewStyle().
	Background(colorDark).
	Foreground(colorWhite).
	Padding(0, 1)

// StyleOverviewCard: card for the summary counts above the tables.
var StyleOverviewCard = lipgloss.NewStyle().
	Background(colorAlt).
	Foreground(colorWhite).
	Padding(0, 1).
	Margin(0).
	Align(lipgloss.Center)

// StyleTabActive: the selected view in the tab bar.
var StyleTabActive = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorWhite).
	Background(colorBlue).
	Padding(0, 1)

// StyleTabInactive: the other views in the tab bar.
var StyleTabInactive = lipgloss.NewStyle().
	Foreground(colorGray).
	Padding(0, 1)

// Utility styles.
var (
	StyleWarn = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	StyleDim  = lipgloss.NewStyle().Foreground(colorGray)
)

// countStyle picks a card colour for a count of flagged records: green when
// nothing is flagged, warn otherwise.
func countStyle(n int, warn lipgloss.Color) lipgloss.Style {
	if n == 0 {
		return StyleOverviewCard.Foreground(colorGreen)
	}
	return StyleOverviewCard.Foreground(warn)
}
