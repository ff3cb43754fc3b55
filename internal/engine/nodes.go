package engine

import (
	"fmt"
	"sort"

	"github.com/dm/hotspot/internal/client"
	"github.com/dm/hotspot/internal/model"
)

// Thread pool groups summed into the pool.* counters.
var (
	indexPools   = []string{"write", "system_write", "system_critical_write"}
	searchPools  = []string{"search", "system_read", "system_critical_read", "search_worker", "search_coordination", "esql", "auto_complete"}
	refreshPools = []string{"refresh"}
)

// CalcNodeSnapshots compares every node of end against the same node id in
// begin. A node missing from begin joined mid-window and makes the comparison
// invalid, so it is an error rather than a skip. Nodes are returned in node
// id order.
func CalcNodeSnapshots(begin, end client.NodeStatsResponse) ([]model.NodeSnapshot, error) {
	ids := make([]string, 0, len(end.Nodes))
	for id := range end.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]model.NodeSnapshot, 0, len(ids))
	for _, id := range ids {
		e := end.Nodes[id]
		b, ok := begin.Nodes[id]
		if !ok {
			return nil, fmt.Errorf("%w: node %s (%s) is absent from the begin node stats", ErrMissingJoinKey, id, e.Name)
		}
		roles, err := model.ShortenRoles(e.Roles)
		if err != nil {
			return nil, fmt.Errorf("%w: node %s (%s): %w", ErrMissingJoinKey, id, e.Name, err)
		}
		out = append(out, model.NewNodeSnapshot(id, e.Name, e.IP, roles, nodeCounters(b), nodeCounters(e)))
	}
	return out, nil
}

// nodeCounters reads the raw counters of one node. Pools an older cluster
// does not report count as zero.
func nodeCounters(s client.NodeStats) model.NodeCounters {
	return model.NodeCounters{
		Index:   s.Indices.Indexing.IndexTotal,
		Refresh: s.Indices.Refresh.Total,
		Search:  s.Indices.Search.Ops(),
		Size:    s.Indices.Store.SizeInBytes,
		Shards:  s.Indices.ShardStats.TotalCount,
		Uptime:  s.JVM.UptimeInMillis,

		PoolIndex:         poolCompleted(s.ThreadPool, indexPools),
		PoolSearch:        poolCompleted(s.ThreadPool, searchPools),
		PoolRefresh:       poolCompleted(s.ThreadPool, refreshPools),
		PoolIndexReject:   poolRejected(s.ThreadPool, indexPools),
		PoolSearchReject:  poolRejected(s.ThreadPool, searchPools),
		PoolRefreshReject: poolRejected(s.ThreadPool, refreshPools),
	}
}

func poolCompleted(pools map[string]client.ThreadPoolStats, names []string) int64 {
	var sum int64
	for _, n := range names {
		sum += pools[n].Completed
	}
	return sum
}

func poolRejected(pools map[string]client.ThreadPoolStats, names []string) int64 {
	var sum int64
	for _, n := range names {
		sum += pools[n].Rejected
	}
	return sum
}

// NodeRefs reduces nodes to the metadata the shard join needs.
func NodeRefs(nodes []model.NodeSnapshot) []model.NodeRef {
	refs := make([]model.NodeRef, len(nodes))
	for i, n := range nodes {
		refs[i] = model.NodeRef{ID: n.ID, Name: n.Name, Roles: n.Roles}
	}
	return refs
}
