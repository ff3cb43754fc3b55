package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/dm/hotspot/internal/engine"
	"github.com/dm/hotspot/internal/model"
)

// Output file names.
const (
	NodesFile   = "hotspot_nodes.json"
	IndicesFile = "hotspot_indices.json"
	ShardsFile  = "hotspot_shards.json"
)

// TextFile returns the name of the table report for metric.
func TextFile(metric string) string {
	return "hotspot_" + metric + ".txt"
}

// Writer writes the outputs of a run into Dir, replacing earlier ones.
type Writer struct {
	Dir string
	Log *zap.Logger
}

// NewWriter returns a Writer for dir. A nil logger discards.
func NewWriter(dir string, log *zap.Logger) *Writer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Writer{Dir: dir, Log: log}
}

// WriteAll writes the three JSON dumps and the table for res. Everything is
// encoded before the first file is touched, so an encoding failure leaves
// earlier outputs in place.
func (w *Writer) WriteAll(res *engine.Result, size int) (Table, error) {
	t := Build(res.Metric, res.Indices, res.Nodes, res.Shards, size)

	outputs := []struct {
		name string
		data any
	}{
		{NodesFile, res.Nodes},
		{IndicesFile, res.Indices},
		{ShardsFile, res.Shards},
	}
	files := make(map[string][]byte, len(outputs)+1)
	order := make([]string, 0, len(outputs)+1)
	for _, o := range outputs {
		b, err := encodeJSON(o.data)
		if err != nil {
			return Table{}, fmt.Errorf("encode %s: %w", o.name, err)
		}
		files[o.name] = b
		order = append(order, o.name)
	}
	text := TextFile(string(res.Metric))
	files[text] = []byte(Render(t))
	order = append(order, text)

	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return Table{}, fmt.Errorf("create output dir: %w", err)
	}
	for _, name := range order {
		path := filepath.Join(w.Dir, name)
		if err := os.WriteFile(path, files[name], 0o644); err != nil {
			return Table{}, fmt.Errorf("write %s: %w", name, err)
		}
		w.Log.Debug("wrote output", zap.String("file", path), zap.Int("bytes", len(files[name])))
	}
	return t, nil
}

// encodeJSON pretty prints v with 4 space indentation. Object keys come out
// sorted since every entity marshals through a map. A nil collection is
// written as an empty list.
func encodeJSON(v any) ([]byte, error) {
	switch s := v.(type) {
	case []model.NodeSnapshot:
		if s == nil {
			v = []model.NodeSnapshot{}
		}
	case []model.IndexSummary:
		if s == nil {
			v = []model.IndexSummary{}
		}
	case []model.ShardSnapshot:
		if s == nil {
			v = []model.ShardSnapshot{}
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
