package engine

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/dm/hotspot/internal/model"
	"github.com/dm/hotspot/internal/snapshot"
)

// Result holds the three ranked collections of one run. Each collection is
// ordered descending by the last field it was ranked on.
type Result struct {
	Metric  model.Metric
	Nodes   []model.NodeSnapshot
	Shards  []model.ShardSnapshot
	Indices []model.IndexSummary
}

// Field orders the collections are ranked in. The report metric is ranked
// once more at the end so the final order follows it.
var (
	nodeRankFields = []string{
		model.MetricIndex.DiffField(),
		model.MetricIndex.PoolField(),
		model.MetricRefresh.DiffField(),
		model.MetricSearch.DiffField(),
		model.MetricSize.DiffField(),
	}
	shardRankFields = []string{
		model.MetricIndex.DiffField(),
		model.MetricRefresh.DiffField(),
		model.MetricSearch.DiffField(),
		model.MetricSize.DiffField(),
	}
	indexRankFields = shardRankFields
)

// Analyze runs the whole pipeline over a loaded snapshot set: node deltas,
// shard deltas joined to node metadata, index rollup, and ranking of all
// three collections.
func Analyze(set *snapshot.Set, metric model.Metric, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}

	nodes, err := CalcNodeSnapshots(set.NodeStatsBegin, set.NodeStatsEnd)
	if err != nil {
		return nil, fmt.Errorf("node deltas: %w", err)
	}
	for _, n := range nodes {
		if n.UptimeReset {
			log.Warn("node restarted inside the capture window, deltas are unreliable",
				zap.String("node", n.Name), zap.String("id", n.ID))
		}
		if n.NonHotIndexing || n.NonHotPoolIndexing {
			log.Warn("non-hot node is indexing",
				zap.String("node", n.Name), zap.String("roles", n.Roles),
				zap.Int64("diff.index", n.Index.Diff), zap.Int64("diff.pool.index", n.PoolIndex.Diff))
		}
	}
	nodes, err = RankAll(nodes, slices.Concat(nodeRankFields, []string{metric.DiffField()})...)
	if err != nil {
		return nil, err
	}
	log.Debug("node deltas computed", zap.Int("nodes", len(nodes)))

	shards, err := CalcShardSnapshots(set.ShardStatsBegin, set.ShardStatsEnd, NodeRefs(nodes))
	if err != nil {
		return nil, fmt.Errorf("shard deltas: %w", err)
	}
	shards, err = RankAll(shards, shardRankFields...)
	if err != nil {
		return nil, err
	}
	log.Debug("shard deltas computed", zap.Int("shards", len(shards)))

	indices := CalcIndexSummaries(shards)
	indices, err = RankAll(indices, slices.Concat(indexRankFields, []string{metric.DiffField()})...)
	if err != nil {
		return nil, err
	}
	for _, ix := range indices {
		if ix.ShardsAcrossRoles {
			log.Info("index spans node roles", zap.String("index", ix.Index), zap.Int("nodes.roles", ix.RoleSets))
		}
	}
	log.Debug("index rollup computed", zap.Int("indices", len(indices)))

	return &Result{Metric: metric, Nodes: nodes, Shards: shards, Indices: indices}, nil
}
