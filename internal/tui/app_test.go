package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/hotspot/internal/engine"
	"github.com/dm/hotspot/internal/model"
	"github.com/dm/hotspot/internal/report"
)

// testResult returns a small ranked run: two nodes, one index with a copy on
// each, the warm node restarted and indexing.
func testResult() *engine.Result {
	hot := model.NewNodeSnapshot("A", "es-hot-1", "10.0.0.1", "hs",
		model.NodeCounters{Uptime: 100},
		model.NodeCounters{Index: 100, Uptime: 200})
	warm := model.NewNodeSnapshot("B", "es-warm-1", "10.0.0.2", "w",
		model.NodeCounters{Uptime: 900},
		model.NodeCounters{Index: 30, Uptime: 50})

	refs := []model.NodeRef{{ID: "A", Name: hot.Name, Roles: hot.Roles}, {ID: "B", Name: warm.Name, Roles: warm.Roles}}
	key := model.ShardKey{Index: "logs-1", Shard: "0"}
	p := key
	p.HistoryUUID = "u1"
	r := key
	r.HistoryUUID = "u2"
	shards := []model.ShardSnapshot{
		model.NewShardSnapshot(p, "A", true, &refs[0], model.ShardCounters{}, model.ShardCounters{Index: 100}),
		model.NewShardSnapshot(r, "B", false, &refs[1], model.ShardCounters{}, model.ShardCounters{Index: 30}),
	}
	idx := model.NewIndexSummary("logs-1", 2, 2, 2, model.ShardCounters{}, model.ShardCounters{Index: 130}, model.ShardCounters{Index: 130})

	field := model.MetricIndex.DiffField()
	return &engine.Result{
		Metric:  model.MetricIndex,
		Nodes:   []model.NodeSnapshot{hot.WithRank(field, 1), warm.WithRank(field, 2)},
		Shards:  shards,
		Indices: []model.IndexSummary{idx.WithRank(field, 1)},
	}
}

func newTestApp() *App {
	res := testResult()
	tbl := report.Build(res.Metric, res.Indices, res.Nodes, res.Shards, 3)
	return NewApp(res, tbl, "/data/run1", 3)
}

func press(app *App, msg tea.KeyMsg) tea.Cmd {
	_, cmd := app.Update(msg)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewApp_LoadsTables(t *testing.T) {
	app := newTestApp()
	assert.Equal(t, tabReport, app.activeTab)
	assert.Len(t, app.nodes.displayRows, 2)
	assert.Len(t, app.indices.displayRows, 1)
	assert.Len(t, app.shards.displayRows, 2)
	assert.False(t, app.nodes.focused)
	assert.Nil(t, app.Init())
}

func TestCountOverview(t *testing.T) {
	res := testResult()
	c := countOverview(res.Nodes, res.Indices, len(res.Shards))
	assert.Equal(t, overviewCounts{nodes: 2, indices: 1, shards: 2, restarts: 1, nonHot: 1, acrossRoles: 1}, c)
}

func TestApp_TabCycles(t *testing.T) {
	app := newTestApp()

	press(app, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabNodes, app.activeTab)
	assert.True(t, app.nodes.focused)

	press(app, tea.KeyMsg{Type: tea.KeyTab})
	press(app, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabShards, app.activeTab)
	assert.False(t, app.nodes.focused)
	assert.True(t, app.shards.focused)

	press(app, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabReport, app.activeTab, "tab wraps around")

	press(app, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, tabShards, app.activeTab, "shift+tab wraps backwards")
}

func TestApp_Quit(t *testing.T) {
	app := newTestApp()
	cmd := press(app, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_SearchBoxSwallowsQuit(t *testing.T) {
	app := newTestApp()
	press(app, tea.KeyMsg{Type: tea.KeyTab})
	press(app, runes("/"))
	require.True(t, app.nodes.searching)

	press(app, runes("q"))
	assert.True(t, app.nodes.searching, "q is typed into the search box")
	assert.Equal(t, "q", app.nodes.input.Value())

	press(app, tea.KeyMsg{Type: tea.KeyEscape})
	assert.False(t, app.nodes.searching)
}

func TestApp_KeysReachActiveTable(t *testing.T) {
	app := newTestApp()
	press(app, tea.KeyMsg{Type: tea.KeyTab})
	press(app, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, app.nodes.cursor)
	assert.Equal(t, 0, app.shards.cursor)
}

func TestApp_HelpToggle(t *testing.T) {
	app := newTestApp()
	assert.Contains(t, app.View(), "tab: report/nodes/indices/shards")

	press(app, runes("?"))
	assert.True(t, app.showHelp)
	assert.Contains(t, app.View(), "switch view")

	press(app, runes("?"))
	assert.False(t, app.showHelp)
}

func TestFooterHint(t *testing.T) {
	hint := footerHint(tabReport)
	assert.Equal(t, "tab: report/nodes/indices/shards  q: quit  ?: help", hint)
	assert.NotContains(t, hint, "search", "the report view has no table to search")

	for _, v := range []tab{tabNodes, tabIndices, tabShards} {
		assert.Contains(t, footerHint(v), "/: search  1-9: sort")
	}
}

func TestApp_WindowSize(t *testing.T) {
	app := newTestApp()
	app.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	assert.Equal(t, 140, app.width)
	assert.Equal(t, 40, app.height)
}

func TestApp_View(t *testing.T) {
	app := newTestApp()
	app.Update(tea.WindowSizeMsg{Width: 140, Height: 40})

	v := app.View()
	for _, name := range tabNames {
		assert.Contains(t, v, name)
	}
	assert.Contains(t, v, report.TotalLabel)
	assert.Contains(t, v, "logs-1")

	press(app, tea.KeyMsg{Type: tea.KeyTab})
	v = app.View()
	assert.Contains(t, v, "es-warm-1")
	assert.Contains(t, v, "Page 1/1")
}

func TestRenderHeader(t *testing.T) {
	app := newTestApp()
	app.width = 100
	h := renderHeader(app)
	assert.Contains(t, h, "hotspot")
	assert.Contains(t, h, "/data/run1")
	assert.Contains(t, h, "INDEX")
	assert.Contains(t, h, "top 3")
}

func TestRenderOverview_NarrowStacks(t *testing.T) {
	app := newTestApp()

	app.width = 120
	wide := renderOverview(app)
	app.width = 60
	narrow := renderOverview(app)

	assert.Contains(t, wide, "Restarted")
	assert.Contains(t, narrow, "Mixed Roles")
	assert.Greater(t, len(splitLines(narrow)), len(splitLines(wide)))
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := range len(s) {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}
