// Package tui is the interactive browser over the results of a hot spot run.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dm/hotspot/internal/engine"
	"github.com/dm/hotspot/internal/report"
)

type tab int

const (
	tabReport tab = iota
	tabNodes
	tabIndices
	tabShards
)

var tabNames = []string{"Report", "Nodes", "Indices", "Shards"}

// App is the root Bubble Tea model for the results browser.
type App struct {
	result *engine.Result
	table  report.Table
	source string // input directory, shown in the header
	size   int

	overview overviewCounts
	nodes    *NodeTable
	indices  *IndexTable
	shards   *ShardTable

	// Layout
	width, height int

	// UI state
	activeTab tab
	showHelp  bool
}

// NewApp creates an App over the ranked collections of res. tbl is the
// report table built for the same run.
func NewApp(res *engine.Result, tbl report.Table, source string, size int) *App {
	app := &App{
		result:   res,
		table:    tbl,
		source:   source,
		size:     size,
		overview: countOverview(res.Nodes, res.Indices, len(res.Shards)),
		nodes:    NewNodeTable(),
		indices:  NewIndexTable(),
		shards:   NewShardTable(),
	}
	app.nodes.SetData(res.Nodes)
	app.indices.SetData(res.Indices)
	app.shards.SetData(res.Shards)
	return app
}

// Run starts the browser and blocks until the user quits.
func Run(res *engine.Result, tbl report.Table, source string, size int) error {
	_, err := tea.NewProgram(NewApp(res, tbl, source, size), tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model. All data is loaded up front.
func (app *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model, the single state-mutation entry point.
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.height = msg.Height
		return app, nil

	case tea.KeyMsg:
		// While a search box is open every key belongs to it.
		if t := app.activeTable(); t != nil && t.searching {
			return app, app.updateActive(msg)
		}
		switch {
		case key.Matches(msg, keys.Quit):
			return app, tea.Quit
		case key.Matches(msg, keys.Tab):
			app.setTab((app.activeTab + 1) % tab(len(tabNames)))
			return app, nil
		case key.Matches(msg, keys.ShiftTab):
			app.setTab((app.activeTab + tab(len(tabNames)) - 1) % tab(len(tabNames)))
			return app, nil
		case key.Matches(msg, keys.Help):
			app.showHelp = !app.showHelp
			return app, nil
		}
		return app, app.updateActive(msg)
	}

	return app, nil
}

// setTab switches the visible view and moves keyboard focus to its table.
func (app *App) setTab(t tab) {
	app.activeTab = t
	app.nodes.focused = t == tabNodes
	app.indices.focused = t == tabIndices
	app.shards.focused = t == tabShards
}

// activeTable returns the table model of the active view, nil on the report
// view.
func (app *App) activeTable() *tableModel {
	switch app.activeTab {
	case tabNodes:
		return &app.nodes.tableModel
	case tabIndices:
		return &app.indices.tableModel
	case tabShards:
		return &app.shards.tableModel
	}
	return nil
}

func (app *App) updateActive(msg tea.Msg) tea.Cmd {
	switch app.activeTab {
	case tabNodes:
		return app.nodes.Update(msg)
	case tabIndices:
		return app.indices.Update(msg)
	case tabShards:
		return app.shards.Update(msg)
	}
	return nil
}

// View implements tea.Model. Renders the full TUI.
func (app *App) View() string {
	parts := []string{
		renderHeader(app),
		renderOverview(app),
		renderTabs(app),
	}

	switch app.activeTab {
	case tabReport:
		parts = append(parts, StyleDim.Render("Top indices by "+string(app.result.Metric)), report.Render(app.table))
	case tabNodes:
		parts = append(parts, app.nodes.View(app.width))
	case tabIndices:
		parts = append(parts, app.indices.View(app.width))
	case tabShards:
		parts = append(parts, app.shards.View(app.width))
	}
	parts = append(parts, renderFooter(app))

	return strings.Join(parts, "\n")
}
