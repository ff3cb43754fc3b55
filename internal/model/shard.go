package model

import "encoding/json"

// ShardCounters holds the raw counter readings of one shard copy.
type ShardCounters struct {
	Index   int64
	Refresh int64
	Search  int64
	Size    int64
}

// NodeRef is the node metadata joined onto shards.
type NodeRef struct {
	ID    string
	Name  string
	Roles string
}

// ShardKey identifies a physical shard copy across snapshots. The history
// uuid survives relocation, so a copy that moved between nodes still matches.
type ShardKey struct {
	Index       string
	Shard       string
	HistoryUUID string
}

// ShardSnapshot is the begin/end comparison of one shard copy.
type ShardSnapshot struct {
	Key     ShardKey
	NodeID  string
	Primary bool

	// Node is the owning node's metadata, nil when the node id is not in
	// the node snapshot set.
	Node *NodeRef

	Index   Counter
	Refresh Counter
	Search  Counter
	Size    Counter

	Ranks Ranks
}

// NewShardSnapshot builds a fully populated ShardSnapshot.
func NewShardSnapshot(key ShardKey, nodeID string, primary bool, node *NodeRef, begin, end ShardCounters) ShardSnapshot {
	return ShardSnapshot{
		Key:     key,
		NodeID:  nodeID,
		Primary: primary,
		Node:    node,
		Index:   NewCounter(begin.Index, end.Index),
		Refresh: NewCounter(begin.Refresh, end.Refresh),
		Search:  NewCounter(begin.Search, end.Search),
		Size:    NewCounter(begin.Size, end.Size),
		Ranks:   Ranks{},
	}
}

// NodeName returns the joined node name, or "" when the node is unknown.
func (s ShardSnapshot) NodeName() string {
	if s.Node == nil {
		return ""
	}
	return s.Node.Name
}

// NodeRoles returns the joined node roles. ok is false when the node is
// unknown or has no roles; both cases count as the same absent role set.
func (s ShardSnapshot) NodeRoles() (roles string, ok bool) {
	if s.Node == nil || s.Node.Roles == "" {
		return "", false
	}
	return s.Node.Roles, true
}

func (s ShardSnapshot) counters() []namedCounter {
	return []namedCounter{
		{"index", s.Index},
		{"refresh", s.Refresh},
		{"search", s.Search},
		{"size", s.Size},
	}
}

// FieldValue returns a counter by dotted name, e.g. "diff.size".
func (s ShardSnapshot) FieldValue(field string) (int64, bool) {
	return lookupCounter(s.counters(), field)
}

// WithRank returns a copy of s carrying rank for field.
func (s ShardSnapshot) WithRank(field string, rank int) ShardSnapshot {
	s.Ranks = s.Ranks.with(field, rank)
	return s
}

// Rank returns the rank of s for field, if it has been ranked on it.
func (s ShardSnapshot) Rank(field string) (int, bool) {
	r, ok := s.Ranks[field]
	return r, ok
}

// MarshalJSON emits s as a flat object with dotted keys. An unknown node
// serializes its name and roles as null.
func (s ShardSnapshot) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"index":      s.Key.Index,
		"shard":      s.Key.Shard,
		"uuid":       s.Key.HistoryUUID,
		"node.id":    s.NodeID,
		"primary":    s.Primary,
		"node.name":  nil,
		"node.roles": nil,
	}
	if s.Node != nil {
		out["node.name"] = s.Node.Name
		out["node.roles"] = nullIfEmpty(s.Node.Roles)
	}
	putCounters(out, s.counters())
	s.Ranks.put(out)
	return json.Marshal(out)
}
