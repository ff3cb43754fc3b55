package model

import "fmt"

// Metric selects the load vector a report is built along.
type Metric string

const (
	MetricIndex   Metric = "index"
	MetricRefresh Metric = "refresh"
	MetricSearch  Metric = "search"
	MetricSize    Metric = "size"
)

// Metrics lists every supported metric in ranking order.
var Metrics = []Metric{MetricIndex, MetricRefresh, MetricSearch, MetricSize}

// ParseMetric validates a metric name given on the command line.
func ParseMetric(s string) (Metric, error) {
	for _, m := range Metrics {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown metric %q (must be one of index, refresh, search, size)", s)
}

// DiffField returns the name of the delta field for m, e.g. "diff.search".
func (m Metric) DiffField() string {
	return "diff." + string(m)
}

// HasPool reports whether m has a matching thread pool group. Storage size
// is not driven by a pool.
func (m Metric) HasPool() bool {
	return m == MetricIndex || m == MetricRefresh || m == MetricSearch
}

// PoolField returns the completed-tasks delta field of m's thread pool group.
func (m Metric) PoolField() string {
	return "diff.pool." + string(m)
}

// PoolRejectField returns the rejected-tasks delta field of m's thread pool group.
func (m Metric) PoolRejectField() string {
	return "diff.pool." + string(m) + ".reject"
}
