package engine

import (
	"sort"
	"strconv"

	"github.com/dm/hotspot/internal/client"
	"github.com/dm/hotspot/internal/model"
)

// CalcShardSnapshots compares every shard copy of end against the copy with
// the same history uuid in the same (index, shard) slot of begin. Owning node
// name and roles are joined from nodes; a node id without metadata leaves the
// join empty.
//
// Copies are returned ordered by index name, then shard number, then the
// order the cluster listed them in.
func CalcShardSnapshots(begin, end client.ShardStatsResponse, nodes []model.NodeRef) ([]model.ShardSnapshot, error) {
	byID := make(map[string]*model.NodeRef, len(nodes))
	for i := range nodes {
		byID[nodes[i].ID] = &nodes[i]
	}

	indexNames := make([]string, 0, len(end.Indices))
	for name := range end.Indices {
		indexNames = append(indexNames, name)
	}
	sort.Strings(indexNames)

	var out []model.ShardSnapshot
	for _, index := range indexNames {
		shards := end.Indices[index].Shards
		for _, shard := range sortedShardNumbers(shards) {
			for _, e := range shards[shard] {
				uuid := e.HistoryUUID()
				b, err := findBeginCopy(begin, index, shard, uuid)
				if err != nil {
					return nil, err
				}
				key := model.ShardKey{Index: index, Shard: shard, HistoryUUID: uuid}
				nodeID := e.Routing.Node
				out = append(out, model.NewShardSnapshot(key, nodeID, e.Routing.Primary, byID[nodeID], shardCounters(b), shardCounters(e)))
			}
		}
	}
	return out, nil
}

// findBeginCopy returns the begin copy of (index, shard) whose history uuid
// equals uuid.
func findBeginCopy(begin client.ShardStatsResponse, index, shard, uuid string) (client.ShardCopyStats, error) {
	mismatch := func(reason string) error {
		return &ShardMismatchError{Index: index, Shard: shard, HistoryUUID: uuid, Reason: reason}
	}
	if uuid == "" {
		return client.ShardCopyStats{}, mismatch("end copy has no history uuid")
	}
	idx, ok := begin.Indices[index]
	if !ok {
		return client.ShardCopyStats{}, mismatch("index is absent from the begin shard stats")
	}
	copies, ok := idx.Shards[shard]
	if !ok {
		return client.ShardCopyStats{}, mismatch("shard is absent from the begin shard stats")
	}
	for _, c := range copies {
		if c.HistoryUUID() == uuid {
			return c, nil
		}
	}
	return client.ShardCopyStats{}, mismatch("no begin copy with this history uuid")
}

func shardCounters(s client.ShardCopyStats) model.ShardCounters {
	return model.ShardCounters{
		Index:   s.Indexing.IndexTotal,
		Refresh: s.Refresh.Total,
		Search:  s.Search.Ops(),
		Size:    s.Store.SizeInBytes,
	}
}

// sortedShardNumbers orders shard keys numerically ("2" before "10"). Keys
// that are not numbers sort after numbers, by string.
func sortedShardNumbers(shards map[string][]client.ShardCopyStats) []string {
	keys := make([]string, 0, len(shards))
	for k := range shards {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}
