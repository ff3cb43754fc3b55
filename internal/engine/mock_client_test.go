package engine

import (
	"context"
	"errors"
)

// MockESClient implements client.ESClient for testing.
type MockESClient struct {
	NodeStatsFn  func(ctx context.Context) ([]byte, error)
	ShardStatsFn func(ctx context.Context) ([]byte, error)
}

func (m *MockESClient) GetNodeStats(ctx context.Context) ([]byte, error) {
	if m.NodeStatsFn != nil {
		return m.NodeStatsFn(ctx)
	}
	return []byte(`{"nodes":{"n1":{"name":"node1"}}}`), nil
}

func (m *MockESClient) GetShardStats(ctx context.Context) ([]byte, error) {
	if m.ShardStatsFn != nil {
		return m.ShardStatsFn(ctx)
	}
	return []byte(`{"indices":{}}`), nil
}

func (m *MockESClient) Ping(ctx context.Context) error {
	return nil
}

func (m *MockESClient) BaseURL() string {
	return "http://mock:9200"
}

var errMockFailure = errors.New("mock failure")
