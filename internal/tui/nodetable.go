package tui

import (
	"fmt"
	"strings"

	"github.com/dm/hotspot/internal/format"
	"github.com/dm/hotspot/internal/model"
)

// NodeTable browses the ranked node collection.
type NodeTable = browseTable[model.NodeSnapshot]

// NewNodeTable returns a node table in ranked order.
func NewNodeTable() *NodeTable {
	cols := []columnDef{
		{Title: "Node Name", Width: 20},
		{Title: "Roles", Width: 7},
		{Title: "Δindex", Width: 10, Right: true},
		{Title: "Δpool.index", Width: 10, Right: true},
		{Title: "Δrefresh", Width: 9, Right: true},
		{Title: "Δsearch", Width: 10, Right: true},
		{Title: "Δsize", Width: 10, Right: true},
		{Title: "Δshards", Width: 7, Right: true},
		{Title: "Flags", Width: 14},
	}
	return &NodeTable{
		tableModel: newTableModel(cols),
		title:      "Nodes",
		empty:      "(no nodes)",
		sortRows: func(rows []model.NodeSnapshot, col int, desc bool) []model.NodeSnapshot {
			return sortBy(rows, col, desc, compareNodes)
		},
		filterRows: func(rows []model.NodeSnapshot, search string) []model.NodeSnapshot {
			return filterBy(rows, search, func(n model.NodeSnapshot) []string {
				return []string{n.Name, n.ID, n.IP, n.Roles}
			})
		},
		cells:  nodeCells,
		detail: nodeDetail,
	}
}

// nodeCells formats a node for the table columns.
func nodeCells(n model.NodeSnapshot) []string {
	return []string{
		sanitize(n.Name),
		sanitize(n.Roles),
		format.FormatDelta(n.Index.Diff),
		format.FormatDelta(n.PoolIndex.Diff),
		format.FormatDelta(n.Refresh.Diff),
		format.FormatDelta(n.Search.Diff),
		format.FormatBytes(n.Size.Diff),
		format.FormatDelta(n.Shards.Diff),
		strings.Join(nodeFlags(n), ","),
	}
}

// nodeFlags lists the raised flags of n in a fixed order.
func nodeFlags(n model.NodeSnapshot) []string {
	var flags []string
	if n.UptimeReset {
		flags = append(flags, "restart")
	}
	if n.NonHotIndexing {
		flags = append(flags, "non-hot")
	}
	if n.NonHotPoolIndexing {
		flags = append(flags, "non-hot-pool")
	}
	return flags
}

func nodeDetail(n model.NodeSnapshot) string {
	rank, ok := n.Rank(model.MetricIndex.DiffField())
	return fmt.Sprintf("%s  %s  %s  rejects i/s/r: %d/%d/%d  index rank %s",
		sanitize(n.Name), sanitize(n.ID), sanitize(n.IP),
		n.PoolIndexReject.Diff, n.PoolSearchReject.Diff, n.PoolRefreshReject.Diff,
		format.FormatRank(rank, ok))
}

// sanitize strips control characters so cluster supplied names cannot
// inject terminal escapes.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
