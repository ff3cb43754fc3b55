package tui

import (
	"cmp"
	"slices"
	"sort"
	"strings"

	"github.com/dm/hotspot/internal/model"
)

// sortBy returns a sorted copy of rows. compare orders two rows on col; ties
// keep collection order, which is rank order. col -1 means no sort.
func sortBy[T any](rows []T, col int, desc bool, compare func(a, b T, col int) int) []T {
	out := slices.Clone(rows)
	if col < 0 {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		c := compare(out[i], out[j], col)
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

// filterBy returns rows for which any of the fields contains search
// (case-insensitive). Returns all rows when search is empty.
func filterBy[T any](rows []T, search string, fields func(T) []string) []T {
	if search == "" {
		return rows
	}
	lower := strings.ToLower(search)
	out := rows[:0:0]
	for _, r := range rows {
		for _, f := range fields(r) {
			if strings.Contains(strings.ToLower(f), lower) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

func compareText(a, b string) int {
	return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
}

// Column mapping:
//
//	0=Name, 1=Roles, 2=Δindex, 3=Δpool.index, 4=Δrefresh, 5=Δsearch,
//	6=Δsize, 7=Δshards, 8=Flags
func compareNodes(a, b model.NodeSnapshot, col int) int {
	switch col {
	case 0:
		return compareText(a.Name, b.Name)
	case 1:
		return compareText(a.Roles, b.Roles)
	case 2:
		return cmp.Compare(a.Index.Diff, b.Index.Diff)
	case 3:
		return cmp.Compare(a.PoolIndex.Diff, b.PoolIndex.Diff)
	case 4:
		return cmp.Compare(a.Refresh.Diff, b.Refresh.Diff)
	case 5:
		return cmp.Compare(a.Search.Diff, b.Search.Diff)
	case 6:
		return cmp.Compare(a.Size.Diff, b.Size.Diff)
	case 7:
		return cmp.Compare(a.Shards.Diff, b.Shards.Diff)
	case 8:
		return cmp.Compare(len(nodeFlags(a)), len(nodeFlags(b)))
	}
	return 0
}

// Column mapping:
//
//	0=Index, 1=Shards, 2=Nodes, 3=Roles, 4=Δindex, 5=Δrefresh, 6=Δsearch,
//	7=Δsize, 8=Shards/Node
func compareIndices(a, b model.IndexSummary, col int) int {
	switch col {
	case 0:
		return compareText(a.Index, b.Index)
	case 1:
		return cmp.Compare(a.Shards, b.Shards)
	case 2:
		return cmp.Compare(a.NodeIDs, b.NodeIDs)
	case 3:
		return cmp.Compare(a.RoleSets, b.RoleSets)
	case 4:
		return cmp.Compare(a.Diff.Index, b.Diff.Index)
	case 5:
		return cmp.Compare(a.Diff.Refresh, b.Diff.Refresh)
	case 6:
		return cmp.Compare(a.Diff.Search, b.Diff.Search)
	case 7:
		return cmp.Compare(a.Diff.Size, b.Diff.Size)
	case 8:
		return cmp.Compare(a.ShardsPerNode, b.ShardsPerNode)
	}
	return 0
}

// Column mapping:
//
//	0=Index, 1=Shard, 2=P/R, 3=Node, 4=Roles, 5=Δindex, 6=Δrefresh,
//	7=Δsearch, 8=Δsize
func compareShards(a, b model.ShardSnapshot, col int) int {
	switch col {
	case 0:
		return compareText(a.Key.Index, b.Key.Index)
	case 1:
		return compareShardNumbers(a.Key.Shard, b.Key.Shard)
	case 2:
		return cmp.Compare(primaryLabel(a.Primary), primaryLabel(b.Primary))
	case 3:
		return compareText(shardNodeLabel(a), shardNodeLabel(b))
	case 4:
		ra, _ := a.NodeRoles()
		rb, _ := b.NodeRoles()
		return compareText(ra, rb)
	case 5:
		return cmp.Compare(a.Index.Diff, b.Index.Diff)
	case 6:
		return cmp.Compare(a.Refresh.Diff, b.Refresh.Diff)
	case 7:
		return cmp.Compare(a.Search.Diff, b.Search.Diff)
	case 8:
		return cmp.Compare(a.Size.Diff, b.Size.Diff)
	}
	return 0
}

// compareShardNumbers orders "2" before "10".
func compareShardNumbers(a, b string) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}
