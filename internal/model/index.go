package model

import (
	"encoding/json"
	"math"
)

// IndexSummary rolls the shard copies of one index up into a single row.
type IndexSummary struct {
	Index    string
	Shards   int
	NodeIDs  int // distinct nodes holding a copy
	RoleSets int // distinct role strings among those nodes
	Begin    ShardCounters
	End      ShardCounters
	Diff     ShardCounters

	// ShardsAcrossRoles is set when copies of the index live on nodes with
	// differing role sets, e.g. one on a hot node and one on a warm node.
	ShardsAcrossRoles bool
	// ShardsPerNode is Shards / NodeIDs rounded to 2 decimals.
	ShardsPerNode float64

	Ranks Ranks
}

// NewIndexSummary builds a fully populated IndexSummary from its counts and
// summed counters.
func NewIndexSummary(index string, shards, nodeIDs, roleSets int, begin, end, diff ShardCounters) IndexSummary {
	s := IndexSummary{
		Index:    index,
		Shards:   shards,
		NodeIDs:  nodeIDs,
		RoleSets: roleSets,
		Begin:    begin,
		End:      end,
		Diff:     diff,
		Ranks:    Ranks{},
	}
	s.ShardsAcrossRoles = roleSets > 1
	if nodeIDs > 0 {
		s.ShardsPerNode = Round2(float64(shards) / float64(nodeIDs))
	}
	return s
}

// Round2 rounds f to 2 decimal places, halves to even (5/8 gives 0.62).
func Round2(f float64) float64 {
	return math.RoundToEven(f*100) / 100
}

func (s IndexSummary) counters() []namedCounter {
	return []namedCounter{
		{"index", Counter{Begin: s.Begin.Index, End: s.End.Index, Diff: s.Diff.Index}},
		{"refresh", Counter{Begin: s.Begin.Refresh, End: s.End.Refresh, Diff: s.Diff.Refresh}},
		{"search", Counter{Begin: s.Begin.Search, End: s.End.Search, Diff: s.Diff.Search}},
		{"size", Counter{Begin: s.Begin.Size, End: s.End.Size, Diff: s.Diff.Size}},
	}
}

// FieldValue returns a summed counter by dotted name, e.g. "diff.refresh".
func (s IndexSummary) FieldValue(field string) (int64, bool) {
	return lookupCounter(s.counters(), field)
}

// WithRank returns a copy of s carrying rank for field.
func (s IndexSummary) WithRank(field string, rank int) IndexSummary {
	s.Ranks = s.Ranks.with(field, rank)
	return s
}

// Rank returns the rank of s for field, if it has been ranked on it.
func (s IndexSummary) Rank(field string) (int, bool) {
	r, ok := s.Ranks[field]
	return r, ok
}

// MarshalJSON emits s as a flat object with dotted keys.
func (s IndexSummary) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"index":                    s.Index,
		"shards":                   s.Shards,
		"nodes.ids":                s.NodeIDs,
		"nodes.roles":              s.RoleSets,
		"flag.shards_across_roles": s.ShardsAcrossRoles,
		"flag.shards_per_node":     s.ShardsPerNode,
	}
	putCounters(out, s.counters())
	s.Ranks.put(out)
	return json.Marshal(out)
}
