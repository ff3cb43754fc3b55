package engine

import (
	"github.com/dm/hotspot/internal/client"
)

// node builds a node stats record with the counters the tests vary.
func node(name string, roles []string, index, uptime int64) client.NodeStats {
	var n client.NodeStats
	n.Name = name
	n.IP = "10.0.0.1"
	n.Roles = roles
	n.Indices.Indexing.IndexTotal = index
	n.JVM.UptimeInMillis = uptime
	return n
}

// shardCopy builds one shard copy record.
func shardCopy(nodeID string, primary bool, uuid string, index int64) client.ShardCopyStats {
	var c client.ShardCopyStats
	c.Routing.Node = nodeID
	c.Routing.Primary = primary
	c.Commit.UserData.HistoryUUID = uuid
	c.Indexing.IndexTotal = index
	return c
}

func shardDoc(indices map[string]map[string][]client.ShardCopyStats) client.ShardStatsResponse {
	resp := client.ShardStatsResponse{Indices: make(map[string]client.IndexShardStats, len(indices))}
	for name, shards := range indices {
		resp.Indices[name] = client.IndexShardStats{Shards: shards}
	}
	return resp
}
