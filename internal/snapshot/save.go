package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
)

// Phase selects which half of the capture window a document belongs to.
type Phase string

const (
	PhaseBegin Phase = "begin"
	PhaseEnd   Phase = "end"
)

// ParsePhase validates a phase name.
func ParsePhase(s string) (Phase, error) {
	switch p := Phase(s); p {
	case PhaseBegin, PhaseEnd:
		return p, nil
	}
	return "", fmt.Errorf("invalid phase %q (want begin or end)", s)
}

// ForPhase returns the shard stats and node stats file names of phase p.
func (f Files) ForPhase(p Phase) (shardStats, nodeStats string) {
	if p == PhaseEnd {
		return f.ShardStatsEnd, f.NodeStatsEnd
	}
	return f.ShardStatsBegin, f.NodeStatsBegin
}

// Save writes data to dir/name through a temp file and rename, so an
// interrupted capture never leaves a half written document behind. Tainted
// content is refused: the analysis would reject it anyway.
func Save(dir, name string, data []byte) error {
	if err := checkTaint(name, data); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("save %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(dir, name)); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}
