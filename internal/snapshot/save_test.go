package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePhase(t *testing.T) {
	p, err := ParsePhase("begin")
	require.NoError(t, err)
	assert.Equal(t, PhaseBegin, p)

	p, err = ParsePhase("end")
	require.NoError(t, err)
	assert.Equal(t, PhaseEnd, p)

	_, err = ParsePhase("middle")
	assert.Error(t, err)
}

func TestFiles_ForPhase(t *testing.T) {
	f := DefaultFiles()

	shards, nodes := f.ForPhase(PhaseBegin)
	assert.Equal(t, DefaultShardStatsBegin, shards)
	assert.Equal(t, DefaultNodeStatsBegin, nodes)

	shards, nodes = f.ForPhase(PhaseEnd)
	assert.Equal(t, DefaultShardStatsEnd, shards)
	assert.Equal(t, DefaultNodeStatsEnd, nodes)
}

func TestFiles_Validate(t *testing.T) {
	require.NoError(t, DefaultFiles().Validate())

	renamed := Files{ShardStatsBegin: "s0.json", ShardStatsEnd: "s1.json", NodeStatsBegin: "n0.json", NodeStatsEnd: "n1.json"}
	require.NoError(t, renamed.Validate())

	for name, mutate := range map[string]func(*Files){
		"empty":     func(f *Files) { f.ShardStatsEnd = "" },
		"directory": func(f *Files) { f.NodeStatsBegin = "captures/n0.json" },
		"duplicate": func(f *Files) { f.NodeStatsEnd = f.ShardStatsEnd },
	} {
		t.Run(name, func(t *testing.T) {
			f := renamed
			mutate(&f)
			assert.Error(t, f.Validate())
		})
	}
}

func TestSave_WritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	require.NoError(t, Save(dir, "nodes_stats.json", []byte(`{"nodes":{}}`)))

	data, err := os.ReadFile(filepath.Join(dir, "nodes_stats.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"nodes":{}}`, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestSave_RefusesTaintedContent(t *testing.T) {
	dir := t.TempDir()
	err := Save(dir, "x.json", []byte(`{"error":"index_closed_exception"}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTaintedContent))

	_, statErr := os.Stat(filepath.Join(dir, "x.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSave_ThenLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Save(dir, DefaultNodeStatsBegin, []byte(`{"nodes":{"n1":{"name":"a"}}}`)))
	require.NoError(t, CheckPresent(dir, DefaultNodeStatsBegin))
}
