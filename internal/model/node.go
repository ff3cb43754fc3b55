package model

import "encoding/json"

// NodeCounters holds the raw counter readings of one node at one point in time.
type NodeCounters struct {
	Index   int64
	Refresh int64
	Search  int64
	Size    int64
	Shards  int64
	Uptime  int64

	PoolIndex         int64
	PoolSearch        int64
	PoolRefresh       int64
	PoolIndexReject   int64
	PoolSearchReject  int64
	PoolRefreshReject int64
}

// NodeSnapshot is the begin/end comparison of a single cluster node.
type NodeSnapshot struct {
	ID    string
	Name  string
	IP    string
	Roles string // compacted role letters, see ShortenRoles

	Index   Counter
	Refresh Counter
	Search  Counter
	Size    Counter
	Shards  Counter
	Uptime  Counter

	PoolIndex         Counter
	PoolSearch        Counter
	PoolRefresh       Counter
	PoolIndexReject   Counter
	PoolSearchReject  Counter
	PoolRefreshReject Counter

	// UptimeReset is set when the JVM restarted inside the window; the
	// node's deltas are then meaningless.
	UptimeReset bool
	// NonHotIndexing is set when a cold/warm node without hot or content
	// roles indexed documents inside the window.
	NonHotIndexing bool
	// NonHotPoolIndexing is the same check against the write thread pools.
	NonHotPoolIndexing bool

	Ranks Ranks
}

// NewNodeSnapshot builds a fully populated NodeSnapshot. Diffs and flags are
// derived here and nowhere else.
func NewNodeSnapshot(id, name, ip, roles string, begin, end NodeCounters) NodeSnapshot {
	n := NodeSnapshot{
		ID:    id,
		Name:  name,
		IP:    ip,
		Roles: roles,

		Index:   NewCounter(begin.Index, end.Index),
		Refresh: NewCounter(begin.Refresh, end.Refresh),
		Search:  NewCounter(begin.Search, end.Search),
		Size:    NewCounter(begin.Size, end.Size),
		Shards:  NewCounter(begin.Shards, end.Shards),
		Uptime:  NewCounter(begin.Uptime, end.Uptime),

		PoolIndex:         NewCounter(begin.PoolIndex, end.PoolIndex),
		PoolSearch:        NewCounter(begin.PoolSearch, end.PoolSearch),
		PoolRefresh:       NewCounter(begin.PoolRefresh, end.PoolRefresh),
		PoolIndexReject:   NewCounter(begin.PoolIndexReject, end.PoolIndexReject),
		PoolSearchReject:  NewCounter(begin.PoolSearchReject, end.PoolSearchReject),
		PoolRefreshReject: NewCounter(begin.PoolRefreshReject, end.PoolRefreshReject),

		Ranks: Ranks{},
	}
	nonHot := IsNonHotTier(roles)
	n.UptimeReset = n.Uptime.Diff <= 0
	n.NonHotIndexing = n.Index.Diff > 0 && nonHot
	n.NonHotPoolIndexing = n.PoolIndex.Diff > 0 && nonHot
	return n
}

func (n NodeSnapshot) counters() []namedCounter {
	return []namedCounter{
		{"index", n.Index},
		{"refresh", n.Refresh},
		{"search", n.Search},
		{"size", n.Size},
		{"shards", n.Shards},
		{"uptime", n.Uptime},
		{"pool.index", n.PoolIndex},
		{"pool.search", n.PoolSearch},
		{"pool.refresh", n.PoolRefresh},
		{"pool.index.reject", n.PoolIndexReject},
		{"pool.search.reject", n.PoolSearchReject},
		{"pool.refresh.reject", n.PoolRefreshReject},
	}
}

// FieldValue returns a counter by dotted name, e.g. "diff.pool.index".
func (n NodeSnapshot) FieldValue(field string) (int64, bool) {
	return lookupCounter(n.counters(), field)
}

// WithRank returns a copy of n carrying rank for field.
func (n NodeSnapshot) WithRank(field string, rank int) NodeSnapshot {
	n.Ranks = n.Ranks.with(field, rank)
	return n
}

// Rank returns the rank of n for field, if it has been ranked on it.
func (n NodeSnapshot) Rank(field string) (int, bool) {
	r, ok := n.Ranks[field]
	return r, ok
}

// MarshalJSON emits n as a flat object with dotted keys. encoding/json sorts
// map keys, which keeps dumps stable across runs.
func (n NodeSnapshot) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"id":                      n.ID,
		"name":                    n.Name,
		"ip":                      n.IP,
		"roles":                   nullIfEmpty(n.Roles),
		"flag.uptime":             n.UptimeReset,
		"flag.index_not_hot":      n.NonHotIndexing,
		"flag.pool_index_not_hot": n.NonHotPoolIndexing,
	}
	putCounters(out, n.counters())
	n.Ranks.put(out)
	return json.Marshal(out)
}

// nullIfEmpty maps an empty role string to a JSON null: a node without roles
// dumps the same as a shard whose node is unknown.
func nullIfEmpty(roles string) any {
	if roles == "" {
		return nil
	}
	return roles
}
