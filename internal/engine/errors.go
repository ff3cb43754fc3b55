package engine

import (
	"errors"
	"fmt"
)

// ErrMissingJoinKey is returned when a cross reference between the begin
// and end snapshots cannot be resolved. The whole run is invalid then.
var ErrMissingJoinKey = errors.New("missing join key")

// ShardMismatchError reports a shard copy in the end snapshot with no copy of
// the same history uuid in the begin snapshot. This happens when a shard was
// recovered from scratch or replaced inside the capture window.
type ShardMismatchError struct {
	Index       string
	Shard       string
	HistoryUUID string
	Reason      string
}

func (e *ShardMismatchError) Error() string {
	return fmt.Sprintf("%s: index %q shard %s history_uuid %q: %s",
		ErrMissingJoinKey, e.Index, e.Shard, e.HistoryUUID, e.Reason)
}

func (e *ShardMismatchError) Unwrap() error { return ErrMissingJoinKey }
