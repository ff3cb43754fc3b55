package client

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	endpointClusterHealth = "/_cluster/health?filter_path=cluster_name,status"
	endpointNodeStats     = "/_nodes/stats/indices,jvm,thread_pool"
	endpointShardStats    = "/_stats?level=shards&expand_wildcards=open,hidden"
)

// GetNodeStats fetches the raw /_nodes/stats document. The body is verified
// to decode as a NodeStatsResponse but is returned untouched so the capture
// keeps every field the cluster reported.
func (c *DefaultClient) GetNodeStats(ctx context.Context) ([]byte, error) {
	body, err := c.get(ctx, endpointNodeStats)
	if err != nil {
		return nil, fmt.Errorf("GetNodeStats: %w", err)
	}

	var result NodeStatsResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetNodeStats decode: %w", err)
	}
	if len(result.Nodes) == 0 {
		return nil, fmt.Errorf("GetNodeStats: response has no nodes")
	}
	return body, nil
}

// GetShardStats fetches the raw shard-level /_stats document.
func (c *DefaultClient) GetShardStats(ctx context.Context) ([]byte, error) {
	body, err := c.get(ctx, endpointShardStats)
	if err != nil {
		return nil, fmt.Errorf("GetShardStats: %w", err)
	}

	var result ShardStatsResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetShardStats decode: %w", err)
	}
	return body, nil
}
