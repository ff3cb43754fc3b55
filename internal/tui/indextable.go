package tui

import (
	"fmt"
	"strconv"

	"github.com/dm/hotspot/internal/format"
	"github.com/dm/hotspot/internal/model"
)

// IndexTable browses the ranked index rollup.
type IndexTable = browseTable[model.IndexSummary]

// NewIndexTable returns an index table in ranked order.
func NewIndexTable() *IndexTable {
	cols := []columnDef{
		{Title: "Index Name", Width: 25},
		{Title: "Shards", Width: 6, Right: true},
		{Title: "Nodes", Width: 6, Right: true},
		{Title: "Roles", Width: 6, Right: true},
		{Title: "Δindex", Width: 10, Right: true},
		{Title: "Δrefresh", Width: 9, Right: true},
		{Title: "Δsearch", Width: 10, Right: true},
		{Title: "Δsize", Width: 10, Right: true},
		{Title: "Shards/Node", Width: 8, Right: true},
	}
	return &IndexTable{
		tableModel: newTableModel(cols),
		title:      "Indices",
		empty:      "(no indices)",
		sortRows: func(rows []model.IndexSummary, col int, desc bool) []model.IndexSummary {
			return sortBy(rows, col, desc, compareIndices)
		},
		filterRows: func(rows []model.IndexSummary, search string) []model.IndexSummary {
			return filterBy(rows, search, func(s model.IndexSummary) []string {
				return []string{s.Index}
			})
		},
		cells:  indexCells,
		detail: indexDetail,
	}
}

// indexCells formats an index summary for the table columns. A role count
// above one is marked, the index spans node types.
func indexCells(s model.IndexSummary) []string {
	roles := strconv.Itoa(s.RoleSets)
	if s.ShardsAcrossRoles {
		roles += "!"
	}
	return []string{
		sanitize(s.Index),
		strconv.Itoa(s.Shards),
		strconv.Itoa(s.NodeIDs),
		roles,
		format.FormatDelta(s.Diff.Index),
		format.FormatDelta(s.Diff.Refresh),
		format.FormatDelta(s.Diff.Search),
		format.FormatBytes(s.Diff.Size),
		format.FormatRatio(s.ShardsPerNode),
	}
}

func indexDetail(s model.IndexSummary) string {
	var ranks string
	for _, m := range model.Metrics {
		r, ok := s.Rank(m.DiffField())
		ranks += fmt.Sprintf("  %s %s", m, format.FormatRank(r, ok))
	}
	return sanitize(s.Index) + "  ranks:" + ranks
}
