package model

import "strings"

// Counter is a monotonic stats counter read at the begin and end of the
// capture window.
type Counter struct {
	Begin int64
	End   int64
	Diff  int64
}

// NewCounter returns a Counter with Diff = end - begin.
func NewCounter(begin, end int64) Counter {
	return Counter{Begin: begin, End: end, Diff: end - begin}
}

// Add returns the element-wise sum of c and o.
func (c Counter) Add(o Counter) Counter {
	return Counter{Begin: c.Begin + o.Begin, End: c.End + o.End, Diff: c.Diff + o.Diff}
}

// namedCounter pairs a counter with its base name ("index", "pool.search", ...).
type namedCounter struct {
	name string
	c    Counter
}

// lookupCounter resolves "begin.<name>", "end.<name>" or "diff.<name>"
// against cs.
func lookupCounter(cs []namedCounter, field string) (int64, bool) {
	phase, name, ok := strings.Cut(field, ".")
	if !ok {
		return 0, false
	}
	for _, nc := range cs {
		if nc.name != name {
			continue
		}
		switch phase {
		case "begin":
			return nc.c.Begin, true
		case "end":
			return nc.c.End, true
		case "diff":
			return nc.c.Diff, true
		}
		return 0, false
	}
	return 0, false
}

// putCounters writes the begin/end/diff keys of every counter into out.
func putCounters(out map[string]any, cs []namedCounter) {
	for _, nc := range cs {
		out["begin."+nc.name] = nc.c.Begin
		out["end."+nc.name] = nc.c.End
		out["diff."+nc.name] = nc.c.Diff
	}
}

// Ranks holds the 1-based rank of a record per ranked field, keyed by field
// name (e.g. "diff.index").
type Ranks map[string]int

// with returns a copy of r with field set to rank. r is left untouched.
func (r Ranks) with(field string, rank int) Ranks {
	out := make(Ranks, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	out[field] = rank
	return out
}

// put writes every rank as "<field>.rank" into out.
func (r Ranks) put(out map[string]any) {
	for field, rank := range r {
		out[field+".rank"] = rank
	}
}

// Rankable is implemented by records the ranker can order. WithRank must not
// modify the receiver.
type Rankable[T any] interface {
	FieldValue(field string) (int64, bool)
	WithRank(field string, rank int) T
}
