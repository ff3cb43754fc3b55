package client

// NodeStatsResponse represents the response from /_nodes/stats.
type NodeStatsResponse struct {
	Nodes map[string]NodeStats `json:"nodes"`
}

// NodeStats holds the per-node fields the hot spot analysis reads.
type NodeStats struct {
	Name       string                     `json:"name"`
	IP         string                     `json:"ip"`
	Roles      []string                   `json:"roles"`
	Indices    NodeIndicesStats           `json:"indices"`
	JVM        NodeJVMStats               `json:"jvm"`
	ThreadPool map[string]ThreadPoolStats `json:"thread_pool"`
}

// NodeIndicesStats holds the node-wide index counters.
type NodeIndicesStats struct {
	Indexing   IndexingStats   `json:"indexing"`
	Refresh    RefreshStats    `json:"refresh"`
	Search     SearchStats     `json:"search"`
	Store      StoreStats      `json:"store"`
	ShardStats ShardCountStats `json:"shard_stats"`
}

// NodeJVMStats holds JVM process metrics.
type NodeJVMStats struct {
	UptimeInMillis int64 `json:"uptime_in_millis"`
}

// ShardCountStats holds the number of shards allocated to a node.
type ShardCountStats struct {
	TotalCount int64 `json:"total_count"`
}

// ThreadPoolStats holds the counters of a single named thread pool.
type ThreadPoolStats struct {
	Completed int64 `json:"completed"`
	Rejected  int64 `json:"rejected"`
}

// IndexingStats holds indexing operation counters.
type IndexingStats struct {
	IndexTotal int64 `json:"index_total"`
}

// RefreshStats holds refresh operation counters.
type RefreshStats struct {
	Total int64 `json:"total"`
}

// SearchStats holds the search phase counters.
type SearchStats struct {
	QueryTotal   int64 `json:"query_total"`
	FetchTotal   int64 `json:"fetch_total"`
	ScrollTotal  int64 `json:"scroll_total"`
	SuggestTotal int64 `json:"suggest_total"`
}

// Ops returns the combined query, fetch, scroll and suggest count.
func (s SearchStats) Ops() int64 {
	return s.QueryTotal + s.FetchTotal + s.ScrollTotal + s.SuggestTotal
}

// StoreStats holds storage size.
type StoreStats struct {
	SizeInBytes int64 `json:"size_in_bytes"`
}

// ShardStatsResponse represents the response from /_stats?level=shards.
type ShardStatsResponse struct {
	Indices map[string]IndexShardStats `json:"indices"`
}

// IndexShardStats maps a shard number (as ES reports it, a decimal string)
// to the stats of every copy of that shard.
type IndexShardStats struct {
	Shards map[string][]ShardCopyStats `json:"shards"`
}

// ShardCopyStats holds the stats of one physical shard copy.
type ShardCopyStats struct {
	Routing  ShardRouting  `json:"routing"`
	Commit   ShardCommit   `json:"commit"`
	Indexing IndexingStats `json:"indexing"`
	Refresh  RefreshStats  `json:"refresh"`
	Search   SearchStats   `json:"search"`
	Store    StoreStats    `json:"store"`
}

// ShardRouting tells where a shard copy lives.
type ShardRouting struct {
	Node    string `json:"node"`
	Primary bool   `json:"primary"`
}

// ShardCommit holds the Lucene commit metadata of a shard copy.
type ShardCommit struct {
	UserData struct {
		HistoryUUID string `json:"history_uuid"`
	} `json:"user_data"`
}

// HistoryUUID returns the commit history uuid, the identity of a shard copy
// across snapshots.
func (s ShardCopyStats) HistoryUUID() string {
	return s.Commit.UserData.HistoryUUID
}
