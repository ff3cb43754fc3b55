package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortenRoles(t *testing.T) {
	cases := []struct {
		name  string
		roles []string
		want  string
	}{
		{"no roles", nil, ""},
		{"single hot", []string{"data_hot"}, "h"},
		{"full vocabulary", []string{
			"data_cold", "data", "data_frozen", "data_hot", "ingest", "ml", "master",
			"remote_cluster_client", "data_content", "transform", "data_warm", "voting_only",
		}, "cdfhilmrstwv"},
		{"keeps list order", []string{"master", "data_hot", "ingest"}, "mhi"},
		{"blank entry", []string{"data_warm", ""}, "w"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ShortenRoles(tc.roles)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestShortenRoles_UnknownRole(t *testing.T) {
	_, err := ShortenRoles([]string{"data_hot", "coordinating"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownRole))
	assert.Contains(t, err.Error(), "coordinating")
}

func TestParseRole_UnknownIsDistinctFromBlank(t *testing.T) {
	r, err := ParseRole("")
	require.NoError(t, err)
	assert.Equal(t, RoleBlank, r)
	assert.Equal(t, "", r.Letter())

	r, err = ParseRole("bogus")
	require.Error(t, err)
	assert.Equal(t, RoleUnknown, r)
}

func TestIsNonHotTier(t *testing.T) {
	cases := []struct {
		roles string
		want  bool
	}{
		{"", false},
		{"w", true},
		{"c", true},
		{"cw", true},
		{"dimw", true},
		{"h", false},
		{"hw", false},
		{"cs", false},
		{"d", false},
		{"m", false},
	}
	for _, tc := range cases {
		t.Run(tc.roles, func(t *testing.T) {
			assert.Equal(t, tc.want, IsNonHotTier(tc.roles))
		})
	}
}

func TestParseMetric(t *testing.T) {
	for _, m := range Metrics {
		got, err := ParseMetric(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := ParseMetric("latency")
	assert.Error(t, err)
}

func TestMetricFields(t *testing.T) {
	assert.Equal(t, "diff.search", MetricSearch.DiffField())
	assert.Equal(t, "diff.pool.search", MetricSearch.PoolField())
	assert.Equal(t, "diff.pool.search.reject", MetricSearch.PoolRejectField())
	assert.True(t, MetricIndex.HasPool())
	assert.True(t, MetricRefresh.HasPool())
	assert.False(t, MetricSize.HasPool())
}

func TestNewNodeSnapshot_Diffs(t *testing.T) {
	begin := NodeCounters{
		Index: 100, Refresh: 10, Search: 1000, Size: 5000, Shards: 4, Uptime: 1000,
		PoolIndex: 20, PoolSearch: 30, PoolRefresh: 40,
		PoolIndexReject: 1, PoolSearchReject: 2, PoolRefreshReject: 3,
	}
	end := NodeCounters{
		Index: 150, Refresh: 12, Search: 900, Size: 6000, Shards: 5, Uptime: 2000,
		PoolIndex: 25, PoolSearch: 31, PoolRefresh: 44,
		PoolIndexReject: 1, PoolSearchReject: 7, PoolRefreshReject: 3,
	}
	n := NewNodeSnapshot("n1", "node-1", "10.0.0.1", "h", begin, end)

	for _, nc := range n.counters() {
		assert.Equal(t, nc.c.End-nc.c.Begin, nc.c.Diff, nc.name)
	}
	assert.Equal(t, int64(50), n.Index.Diff)
	assert.Equal(t, int64(-100), n.Search.Diff, "counters are not clamped")
	assert.Equal(t, int64(5), n.PoolSearchReject.Diff)
	assert.False(t, n.UptimeReset)
	assert.NotNil(t, n.Ranks)
}

func TestNewNodeSnapshot_UptimeReset(t *testing.T) {
	n := NewNodeSnapshot("n1", "node-1", "", "h", NodeCounters{Uptime: 5000}, NodeCounters{Uptime: 200})
	assert.True(t, n.UptimeReset)

	n = NewNodeSnapshot("n1", "node-1", "", "h", NodeCounters{Uptime: 5000}, NodeCounters{Uptime: 5000})
	assert.True(t, n.UptimeReset, "zero uptime delta also counts as a reset")
}

func TestNewNodeSnapshot_NonHotFlags(t *testing.T) {
	cases := []struct {
		name      string
		roles     string
		indexDiff int64
		poolDiff  int64
		wantIndex bool
		wantPool  bool
	}{
		{"warm indexing", "w", 10, 0, true, false},
		{"cold pool only", "c", 0, 3, false, true},
		{"warm idle", "w", 0, 0, false, false},
		{"hot never flagged", "h", 10, 10, false, false},
		{"content never flagged", "sw", 10, 10, false, false},
		{"hot and warm", "hw", 10, 10, false, false},
		{"generic data", "d", 10, 10, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := NewNodeSnapshot("n", "n", "", tc.roles,
				NodeCounters{},
				NodeCounters{Index: tc.indexDiff, PoolIndex: tc.poolDiff, Uptime: 1})
			assert.Equal(t, tc.wantIndex, n.NonHotIndexing)
			assert.Equal(t, tc.wantPool, n.NonHotPoolIndexing)
		})
	}
}

func TestFieldValue(t *testing.T) {
	n := NewNodeSnapshot("n1", "node-1", "", "h",
		NodeCounters{PoolIndexReject: 2},
		NodeCounters{PoolIndexReject: 9})

	v, ok := n.FieldValue("diff.pool.index.reject")
	require.True(t, ok)
	assert.Equal(t, int64(7), v)

	v, ok = n.FieldValue("end.pool.index.reject")
	require.True(t, ok)
	assert.Equal(t, int64(9), v)

	_, ok = n.FieldValue("diff.latency")
	assert.False(t, ok)
	_, ok = n.FieldValue("rate.index")
	assert.False(t, ok)
	_, ok = n.FieldValue("index")
	assert.False(t, ok)
}

func TestWithRank_DoesNotMutateReceiver(t *testing.T) {
	n := NewNodeSnapshot("n1", "node-1", "", "h", NodeCounters{}, NodeCounters{})
	ranked := n.WithRank("diff.index", 3)

	_, ok := n.Rank("diff.index")
	assert.False(t, ok, "original must stay unranked")
	r, ok := ranked.Rank("diff.index")
	require.True(t, ok)
	assert.Equal(t, 3, r)

	twice := ranked.WithRank("diff.size", 1)
	assert.Len(t, ranked.Ranks, 1)
	assert.Len(t, twice.Ranks, 2)
}

func TestNodeSnapshot_MarshalJSON(t *testing.T) {
	n := NewNodeSnapshot("n1", "node-1", "10.0.0.1", "w",
		NodeCounters{Index: 1, Uptime: 10},
		NodeCounters{Index: 4, Uptime: 20}).WithRank("diff.index", 1)

	b, err := json.Marshal(n)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "n1", got["id"])
	assert.Equal(t, "w", got["roles"])
	assert.Equal(t, float64(3), got["diff.index"])
	assert.Equal(t, float64(1), got["begin.index"])
	assert.Equal(t, float64(1), got["diff.index.rank"])
	assert.Equal(t, true, got["flag.index_not_hot"])
	assert.Equal(t, false, got["flag.uptime"])
	assert.Contains(t, got, "diff.pool.refresh.reject")
	assert.NotContains(t, got, "diff.size.rank")
}

func TestMarshalJSON_NoRolesIsNull(t *testing.T) {
	n := NewNodeSnapshot("n1", "coord-1", "10.0.0.9", "", NodeCounters{}, NodeCounters{})
	b, err := json.Marshal(n)
	require.NoError(t, err)
	var node map[string]any
	require.NoError(t, json.Unmarshal(b, &node))
	assert.Contains(t, node, "roles")
	assert.Nil(t, node["roles"])

	key := ShardKey{Index: "logs-1", Shard: "0", HistoryUUID: "u1"}
	s := NewShardSnapshot(key, "n1", true, &NodeRef{ID: "n1", Name: "coord-1"}, ShardCounters{}, ShardCounters{})
	b, err = json.Marshal(s)
	require.NoError(t, err)
	var shard map[string]any
	require.NoError(t, json.Unmarshal(b, &shard))
	assert.Equal(t, "coord-1", shard["node.name"])
	assert.Nil(t, shard["node.roles"])

	_, ok := s.NodeRoles()
	assert.False(t, ok, "a node without roles reads like an unknown one")
}

func TestShardSnapshot_MarshalJSON_UnknownNode(t *testing.T) {
	key := ShardKey{Index: "logs-1", Shard: "0", HistoryUUID: "u"}
	s := NewShardSnapshot(key, "gone", true, nil, ShardCounters{}, ShardCounters{Size: 10})

	b, err := json.Marshal(s)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "logs-1", got["index"])
	assert.Equal(t, "0", got["shard"])
	assert.Equal(t, "gone", got["node.id"])
	assert.Nil(t, got["node.name"])
	assert.Nil(t, got["node.roles"])
	assert.Equal(t, float64(10), got["diff.size"])

	roles, ok := s.NodeRoles()
	assert.False(t, ok)
	assert.Empty(t, roles)
}

func TestNewIndexSummary_Flags(t *testing.T) {
	cases := []struct {
		name        string
		shards      int
		nodeIDs     int
		roleSets    int
		wantAcross  bool
		wantPerNode float64
	}{
		{"one shard one node", 1, 1, 1, false, 1.0},
		{"two roles", 2, 2, 2, true, 1.0},
		{"thirds", 2, 3, 1, false, 0.67},
		{"half to even", 5, 8, 1, false, 0.62},
		{"stacked", 6, 2, 1, false, 3.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewIndexSummary("i", tc.shards, tc.nodeIDs, tc.roleSets, ShardCounters{}, ShardCounters{}, ShardCounters{})
			assert.Equal(t, tc.wantAcross, s.ShardsAcrossRoles)
			assert.Equal(t, tc.wantPerNode, s.ShardsPerNode)
		})
	}
}

func TestCounterAdd(t *testing.T) {
	got := NewCounter(1, 5).Add(NewCounter(10, 12))
	assert.Equal(t, Counter{Begin: 11, End: 17, Diff: 6}, got)
}
