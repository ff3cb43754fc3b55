// Package report turns the ranked collections of a run into the node by
// top-index contribution table and the JSON dumps.
package report

import (
	"github.com/dm/hotspot/internal/model"
)

// TotalLabel names the totals row.
const TotalLabel = "+= (all)"

// Row is one line of the table. Values follow Table.Columns.
type Row struct {
	Name   string
	ID     string
	Roles  string
	Values []int64
}

// Table is the node × top-index matrix for one metric.
type Table struct {
	Metric model.Metric
	// Columns names the numeric columns: the metric, its thread pool
	// completed and rejected counts when it has one, then the top indices.
	Columns    []string
	TopIndices []string
	Rows       []Row
	Total      Row
}

// Headers returns every column title, text columns first.
func (t Table) Headers() []string {
	return append([]string{"name", "id", "roles"}, t.Columns...)
}

// Build assembles the table. Top indices are the indices ranked within size
// on the metric, kept in collection order. Each node row carries the node's
// own diff values followed by the diff of its shards of every top index;
// the totals row sums node columns over nodes and index columns over every
// shard of the index, including shards on nodes missing from nodes.
func Build(metric model.Metric, indices []model.IndexSummary, nodes []model.NodeSnapshot, shards []model.ShardSnapshot, size int) Table {
	field := metric.DiffField()

	t := Table{Metric: metric}
	t.Columns = append(t.Columns, string(metric))
	nodeFields := []string{field}
	if metric.HasPool() {
		t.Columns = append(t.Columns, "pool."+string(metric), "pool."+string(metric)+".reject")
		nodeFields = append(nodeFields, metric.PoolField(), metric.PoolRejectField())
	}

	for _, ix := range indices {
		if r, ok := ix.Rank(field); ok && r <= size {
			t.TopIndices = append(t.TopIndices, ix.Index)
		}
	}
	t.Columns = append(t.Columns, t.TopIndices...)

	top := make(map[string]bool, len(t.TopIndices))
	for _, name := range t.TopIndices {
		top[name] = true
	}
	perNode := make(map[string]map[string]int64) // index -> node id -> diff
	perIndex := make(map[string]int64)
	for _, s := range shards {
		if !top[s.Key.Index] {
			continue
		}
		v, _ := s.FieldValue(field)
		if perNode[s.Key.Index] == nil {
			perNode[s.Key.Index] = make(map[string]int64)
		}
		perNode[s.Key.Index][s.NodeID] += v
		perIndex[s.Key.Index] += v
	}

	t.Total = Row{Name: TotalLabel, Values: make([]int64, len(t.Columns))}
	for _, n := range nodes {
		row := Row{Name: n.Name, ID: n.ID, Roles: n.Roles, Values: make([]int64, 0, len(t.Columns))}
		for i, f := range nodeFields {
			v, _ := n.FieldValue(f)
			row.Values = append(row.Values, v)
			t.Total.Values[i] += v
		}
		for _, name := range t.TopIndices {
			row.Values = append(row.Values, perNode[name][n.ID])
		}
		t.Rows = append(t.Rows, row)
	}
	for i, name := range t.TopIndices {
		t.Total.Values[len(nodeFields)+i] = perIndex[name]
	}
	return t
}
