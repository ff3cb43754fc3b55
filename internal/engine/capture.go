package engine

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dm/hotspot/internal/client"
)

// Capture is one phase of raw stats documents, as returned by the cluster.
type Capture struct {
	NodeStats  []byte
	ShardStats []byte
	FetchedAt  time.Time
}

// FetchCapture requests the node stats and shard stats documents
// concurrently. Either failure aborts the capture: a phase with only one of
// the two documents cannot be compared.
func FetchCapture(ctx context.Context, c client.ESClient) (*Capture, error) {
	var nodeStats, shardStats []byte

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		nodeStats, err = c.GetNodeStats(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		shardStats, err = c.GetShardStats(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(nodeStats) == 0 || len(shardStats) == 0 {
		return nil, fmt.Errorf("FetchCapture: incomplete response (empty body)")
	}

	return &Capture{
		NodeStats:  nodeStats,
		ShardStats: shardStats,
		FetchedAt:  time.Now(),
	}, nil
}
