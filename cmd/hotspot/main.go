package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dm/hotspot/internal/config"
	"github.com/dm/hotspot/internal/engine"
	"github.com/dm/hotspot/internal/logging"
	"github.com/dm/hotspot/internal/report"
	"github.com/dm/hotspot/internal/snapshot"
	"github.com/dm/hotspot/internal/tui"
)

// runTUI is swapped out in tests.
var runTUI = tui.Run

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "hotspot",
		Short: "Find the nodes, indices and shards carrying the load of an Elasticsearch cluster",
		Long: `hotspot compares two captures of /_nodes/stats and /_stats?level=shards and
ranks nodes, indices and shard copies by how much work they did in between.

examples:
  hotspot capture http://localhost:9200
  hotspot capture --phase end http://localhost:9200
  hotspot --report search --size 5
  hotspot -r size -i --dir ./captures`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, configFile)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file (default ./hotspot.yaml if present)")
	pf.String("dir", ".", "directory holding the captured stats documents")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "console", "log format (console or json)")

	f := cmd.Flags()
	f.StringP("report", "r", "index", "metric to report on (index, refresh, search, size)")
	f.IntP("size", "s", 10, "number of top indices in the report")
	f.String("out-dir", ".", "directory the reports are written to")
	f.BoolP("interactive", "i", false, "browse the ranked results after writing the reports")

	cmd.AddCommand(newCaptureCmd(&configFile))
	return cmd
}

// runAnalyze loads the four documents, ranks the collections and writes the
// reports. Any failure aborts before the first output is written.
func runAnalyze(cmd *cobra.Command, configFile string) error {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	metric, _ := cfg.Metric()

	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	log.Info("loading snapshots", zap.String("dir", cfg.Dir), zap.String("report", string(metric)), zap.Int("size", cfg.Size))
	set, err := snapshot.LoadAll(cfg.Dir, cfg.Files)
	if err != nil {
		log.Error("failed to load snapshots", zap.Error(err))
		return err
	}

	res, err := engine.Analyze(set, metric, log)
	if err != nil {
		log.Error("analysis failed", zap.Error(err))
		return err
	}

	tbl, err := report.NewWriter(cfg.OutDir, log).WriteAll(res, cfg.Size)
	if err != nil {
		log.Error("failed to write reports", zap.Error(err))
		return err
	}
	log.Info("reports written", zap.String("dir", cfg.OutDir),
		zap.Int("nodes", len(res.Nodes)), zap.Int("indices", len(res.Indices)), zap.Int("shards", len(res.Shards)))

	if cfg.Interactive {
		return runTUI(res, tbl, cfg.Dir, cfg.Size)
	}
	fmt.Fprint(cmd.OutOrStdout(), report.Render(tbl))
	return nil
}
