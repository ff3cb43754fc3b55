package engine

import "github.com/dm/hotspot/internal/model"

type indexGroup struct {
	shards  int
	nodeIDs map[string]struct{}
	roles   map[string]struct{}

	index, refresh, search, size model.Counter
}

// CalcIndexSummaries rolls shards up by index name. Indices are returned in
// the order their first shard appears in shards.
func CalcIndexSummaries(shards []model.ShardSnapshot) []model.IndexSummary {
	var order []string
	groups := make(map[string]*indexGroup)

	for _, s := range shards {
		g, ok := groups[s.Key.Index]
		if !ok {
			g = &indexGroup{
				nodeIDs: make(map[string]struct{}),
				roles:   make(map[string]struct{}),
			}
			groups[s.Key.Index] = g
			order = append(order, s.Key.Index)
		}
		g.shards++
		g.nodeIDs[s.NodeID] = struct{}{}
		// An unknown node and a node without roles share the empty key.
		roles, _ := s.NodeRoles()
		g.roles[roles] = struct{}{}
		g.index = g.index.Add(s.Index)
		g.refresh = g.refresh.Add(s.Refresh)
		g.search = g.search.Add(s.Search)
		g.size = g.size.Add(s.Size)
	}

	out := make([]model.IndexSummary, 0, len(order))
	for _, name := range order {
		g := groups[name]
		begin := model.ShardCounters{Index: g.index.Begin, Refresh: g.refresh.Begin, Search: g.search.Begin, Size: g.size.Begin}
		end := model.ShardCounters{Index: g.index.End, Refresh: g.refresh.End, Search: g.search.End, Size: g.size.End}
		diff := model.ShardCounters{Index: g.index.Diff, Refresh: g.refresh.Diff, Search: g.search.Diff, Size: g.size.Diff}
		out = append(out, model.NewIndexSummary(name, g.shards, len(g.nodeIDs), len(g.roles), begin, end, diff))
	}
	return out
}
