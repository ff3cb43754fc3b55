package tui

import (
	"github.com/dm/hotspot/internal/format"
	"github.com/dm/hotspot/internal/model"
)

// ShardTable browses the ranked shard copies.
type ShardTable = browseTable[model.ShardSnapshot]

// NewShardTable returns a shard table in ranked order.
func NewShardTable() *ShardTable {
	cols := []columnDef{
		{Title: "Index Name", Width: 25},
		{Title: "Shard", Width: 5, Right: true},
		{Title: "P/R", Width: 3},
		{Title: "Node", Width: 18},
		{Title: "Roles", Width: 6},
		{Title: "Δindex", Width: 10, Right: true},
		{Title: "Δrefresh", Width: 9, Right: true},
		{Title: "Δsearch", Width: 10, Right: true},
		{Title: "Δsize", Width: 10, Right: true},
	}
	return &ShardTable{
		tableModel: newTableModel(cols),
		title:      "Shards",
		empty:      "(no shards)",
		sortRows: func(rows []model.ShardSnapshot, col int, desc bool) []model.ShardSnapshot {
			return sortBy(rows, col, desc, compareShards)
		},
		filterRows: func(rows []model.ShardSnapshot, search string) []model.ShardSnapshot {
			return filterBy(rows, search, func(s model.ShardSnapshot) []string {
				return []string{s.Key.Index, s.NodeID, s.NodeName()}
			})
		},
		cells:  shardCells,
		detail: shardDetail,
	}
}

func shardCells(s model.ShardSnapshot) []string {
	roles, _ := s.NodeRoles()
	return []string{
		sanitize(s.Key.Index),
		s.Key.Shard,
		primaryLabel(s.Primary),
		sanitize(shardNodeLabel(s)),
		sanitize(roles),
		format.FormatDelta(s.Index.Diff),
		format.FormatDelta(s.Refresh.Diff),
		format.FormatDelta(s.Search.Diff),
		format.FormatBytes(s.Size.Diff),
	}
}

func primaryLabel(primary bool) string {
	if primary {
		return "p"
	}
	return "r"
}

// shardNodeLabel is the owning node's name, or its id when the node is not
// in the node stats.
func shardNodeLabel(s model.ShardSnapshot) string {
	if s.Node == nil {
		return s.NodeID + " (unknown)"
	}
	return s.Node.Name
}

func shardDetail(s model.ShardSnapshot) string {
	return sanitize(s.Key.Index) + "/" + s.Key.Shard + "  history_uuid " + sanitize(s.Key.HistoryUUID) + "  node " + sanitize(s.NodeID)
}
