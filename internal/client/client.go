// Package client fetches the stats documents a capture saves. Bodies come back
// exactly as the cluster sent them; decoding here only proves a document is
// worth saving.
package client

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultRequestTimeout = 60 * time.Second
	// Shard-level stats of a cluster with tens of thousands of shards run to
	// hundreds of MB.
	defaultMaxBodyBytes = 512 << 20
	pingTimeout         = 2 * time.Second
	snippetBytes        = 200
)

// ESClient is the cluster side of a capture: one health check, then the two
// raw stats documents.
type ESClient interface {
	GetNodeStats(ctx context.Context) ([]byte, error)
	GetShardStats(ctx context.Context) ([]byte, error)
	Ping(ctx context.Context) error
	BaseURL() string
}

// ClientConfig configures the capture transport. BaseURL must not carry
// credentials; they go in Username and Password. MaxBodyBytes caps a single
// document and defaults to 512 MB.
type ClientConfig struct {
	BaseURL            string
	Username           string
	Password           string
	InsecureSkipVerify bool
	RequestTimeout     time.Duration
	MaxBodyBytes       int64
}

// StatusError is a non-2xx answer from the cluster. Body holds the start of
// the error document, which names the failing privilege or index.
type StatusError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d: %s", e.Path, e.StatusCode, e.Body)
}

// DefaultClient talks to one cluster over HTTP(S) with optional basic auth.
type DefaultClient struct {
	http   *http.Client
	base   string
	config ClientConfig
}

// NewDefaultClient builds the transport for one capture.
func NewDefaultClient(cfg ClientConfig) (*DefaultClient, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		return nil, errors.New("client: base URL is required")
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: cfg.InsecureSkipVerify, //nolint:gosec
	}

	return &DefaultClient{
		http: &http.Client{
			Timeout:   cfg.RequestTimeout,
			Transport: transport,
		},
		base:   base,
		config: cfg,
	}, nil
}

// BaseURL returns the cluster address without a trailing slash.
func (c *DefaultClient) BaseURL() string {
	return c.base
}

// get fetches path and returns the raw body. A body over the cap is an error,
// never a truncated capture.
func (c *DefaultClient) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.config.Username != "" || c.config.Password != "" {
		req.SetBasicAuth(c.config.Username, c.config.Password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	limit := c.config.MaxBodyBytes
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("GET %s: read body: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Path: path, StatusCode: resp.StatusCode, Body: snippet(body)}
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("GET %s: body exceeds %d bytes", path, limit)
	}
	return body, nil
}

type clusterHealth struct {
	ClusterName string `json:"cluster_name"`
	Status      string `json:"status"`
}

// Ping gates a capture on /_cluster/health. It expects a health document back
// so that a proxy answering 200 with a login page is not taken for the cluster.
func (c *DefaultClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	body, err := c.get(ctx, endpointClusterHealth)
	if err != nil {
		return err
	}
	var h clusterHealth
	if err := json.Unmarshal(body, &h); err != nil || h.Status == "" {
		return fmt.Errorf("%s did not answer with a cluster health document: %s", c.base, snippet(body))
	}
	return nil
}

func snippet(b []byte) string {
	if len(b) <= snippetBytes {
		return string(b)
	}
	return string(b[:snippetBytes]) + "..."
}
