// Package snapshot reads the captured stats documents a hot spot run compares.
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/dm/hotspot/internal/client"
)

// Error taxonomy. Every one of these aborts the run.
var (
	ErrMissingFile      = errors.New("missing input file")
	ErrUnreadable       = errors.New("error reading file")
	ErrTaintedContent   = errors.New("problem with file content")
	ErrMalformedContent = errors.New("error decoding file content")
)

// taintMarkers are fragments of upstream error responses. A document that
// contains one was captured from a failed request.
var taintMarkers = []string{
	"root.permission_denied",
	"Bad Request. Rejected",
	"Server timed out after 60 seconds",
	"index_closed_exception",
}

// Default input file names.
const (
	DefaultShardStatsBegin = "indices_stats.json"
	DefaultShardStatsEnd   = "indices_stats_end.json"
	DefaultNodeStatsBegin  = "nodes_stats.json"
	DefaultNodeStatsEnd    = "nodes_stats_end.json"
)

// Files names the four input documents.
type Files struct {
	ShardStatsBegin string `mapstructure:"shard_stats_begin"`
	ShardStatsEnd   string `mapstructure:"shard_stats_end"`
	NodeStatsBegin  string `mapstructure:"node_stats_begin"`
	NodeStatsEnd    string `mapstructure:"node_stats_end"`
}

// DefaultFiles returns the conventional input names.
func DefaultFiles() Files {
	return Files{
		ShardStatsBegin: DefaultShardStatsBegin,
		ShardStatsEnd:   DefaultShardStatsEnd,
		NodeStatsBegin:  DefaultNodeStatsBegin,
		NodeStatsEnd:    DefaultNodeStatsEnd,
	}
}

// Validate checks that every name is set, a plain file name and unique.
func (f Files) Validate() error {
	seen := make(map[string]bool, 4)
	for _, name := range f.Names() {
		if name == "" {
			return errors.New("input file names must not be empty")
		}
		if name != filepath.Base(name) {
			return fmt.Errorf("input file name %q must not contain a directory", name)
		}
		if seen[name] {
			return fmt.Errorf("input file name %q is used twice", name)
		}
		seen[name] = true
	}
	return nil
}

// Names returns the file names in load order.
func (f Files) Names() []string {
	return []string{f.ShardStatsBegin, f.ShardStatsEnd, f.NodeStatsBegin, f.NodeStatsEnd}
}

// Set is the four decoded documents of one run.
type Set struct {
	ShardStatsBegin client.ShardStatsResponse
	ShardStatsEnd   client.ShardStatsResponse
	NodeStatsBegin  client.NodeStatsResponse
	NodeStatsEnd    client.NodeStatsResponse
}

// CheckPresent verifies every named file exists in dir. It runs before any
// file is read so a missing capture is reported up front.
func CheckPresent(dir string, names ...string) error {
	for _, name := range names {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("%w: %s", ErrMissingFile, name)
		}
		if info.IsDir() {
			return fmt.Errorf("%w: %s is a directory", ErrMissingFile, name)
		}
	}
	return nil
}

// Load reads dir/name, rejects tainted content and decodes it into v.
func Load(dir, name string, v any) error {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnreadable, name, err)
	}
	if err := checkTaint(name, data); err != nil {
		return err
	}
	if err := decode(name, data, v); err != nil {
		return err
	}
	return nil
}

// LoadAll checks presence of all four files, then loads them in order.
func LoadAll(dir string, files Files) (*Set, error) {
	if err := CheckPresent(dir, files.Names()...); err != nil {
		return nil, err
	}

	var set Set
	targets := []struct {
		name string
		v    any
	}{
		{files.ShardStatsBegin, &set.ShardStatsBegin},
		{files.ShardStatsEnd, &set.ShardStatsEnd},
		{files.NodeStatsBegin, &set.NodeStatsBegin},
		{files.NodeStatsEnd, &set.NodeStatsEnd},
	}
	for _, t := range targets {
		if err := Load(dir, t.name, t.v); err != nil {
			return nil, err
		}
	}
	for _, name := range []string{files.NodeStatsBegin, files.NodeStatsEnd} {
		if err := checkNodes(dir, name); err != nil {
			return nil, err
		}
	}
	return &set, nil
}

// nodeFields records which of the sections the node delta needs were present.
// A decoded int64 cannot tell a missing counter from a zero one.
type nodeFields struct {
	Nodes map[string]struct {
		Indices *json.RawMessage `json:"indices"`
		JVM     *struct {
			UptimeInMillis *int64 `json:"uptime_in_millis"`
		} `json:"jvm"`
	} `json:"nodes"`
}

// checkNodes rejects a node document without nodes, or with a node that lacks
// its indices section or its JVM uptime. Such a node would otherwise decode
// to zeros and yield a delta over nothing.
func checkNodes(dir, name string) error {
	var doc nodeFields
	if err := Load(dir, name, &doc); err != nil {
		return err
	}
	if len(doc.Nodes) == 0 {
		return fmt.Errorf("%w: %s: no nodes", ErrMalformedContent, name)
	}
	for _, id := range slices.Sorted(maps.Keys(doc.Nodes)) {
		n := doc.Nodes[id]
		if n.Indices == nil {
			return fmt.Errorf("%w: %s: node %s has no indices stats", ErrMalformedContent, name, id)
		}
		if n.JVM == nil || n.JVM.UptimeInMillis == nil {
			return fmt.Errorf("%w: %s: node %s has no jvm.uptime_in_millis", ErrMalformedContent, name, id)
		}
	}
	return nil
}

// TaintError reports which upstream failure marker was found in a file.
type TaintError struct {
	File   string
	Marker string
}

func (e *TaintError) Error() string {
	return fmt.Sprintf("%s: %s (found %q)", ErrTaintedContent, e.File, e.Marker)
}

func (e *TaintError) Unwrap() error { return ErrTaintedContent }

func checkTaint(name string, data []byte) error {
	for _, m := range taintMarkers {
		if bytes.Contains(data, []byte(m)) {
			return &TaintError{File: name, Marker: m}
		}
	}
	return nil
}

func decode(name string, data []byte, v any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return fmt.Errorf("%w: %s: empty document", ErrMalformedContent, name)
	}
	if err := json.Unmarshal(trimmed, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedContent, name, err)
	}
	return nil
}
