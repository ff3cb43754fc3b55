package engine

import (
	"fmt"
	"sort"

	"github.com/dm/hotspot/internal/model"
)

// Rank returns a copy of rows sorted descending by field, with every row
// carrying its 1-based position as the rank for field. The sort is stable:
// equal values keep their input order. rows is not modified.
func Rank[T model.Rankable[T]](rows []T, field string) ([]T, error) {
	type keyed struct {
		row T
		v   int64
	}
	ks := make([]keyed, len(rows))
	for i, r := range rows {
		v, ok := r.FieldValue(field)
		if !ok {
			return nil, fmt.Errorf("rank: unknown field %q", field)
		}
		ks[i] = keyed{row: r, v: v}
	}

	sort.SliceStable(ks, func(i, j int) bool {
		return ks[i].v > ks[j].v
	})

	out := make([]T, len(ks))
	for i, k := range ks {
		out[i] = k.row.WithRank(field, i+1)
	}
	return out, nil
}

// RankAll applies Rank once per field, in order. Ranks accumulate; the
// returned order is the one of the last field.
func RankAll[T model.Rankable[T]](rows []T, fields ...string) ([]T, error) {
	out := rows
	for _, f := range fields {
		var err error
		out, err = Rank(out, f)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
