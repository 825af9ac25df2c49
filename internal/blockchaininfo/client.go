// Package blockchaininfo provides a client for the blockchain.info block
// explorer API.
package blockchaininfo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/ratelimit"

	"github.com/goodnatureofminers/blocktimes/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records metrics for API calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Client fetches block pages from a blockchain.info-compatible endpoint.
// Every request is paced by a client-side rate limiter so sequential page
// walks stay friendly to the public API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    ratelimit.Limiter
	metrics    Metrics
}

// NewClient constructs an instrumented API client. The base URL carries no
// trailing slash. A timeout of 0 leaves requests without a deadline; rps <= 0
// disables pacing.
func NewClient(baseURL string, timeout time.Duration, rps int, metrics Metrics) *Client {
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    limiter,
		metrics:    metrics,
	}
}

// page mirrors the response document. Elements stay raw so a malformed entry
// surfaces as a decode error naming that element.
type page struct {
	Blocks []json.RawMessage `json:"blocks"`
}

type blockRecord struct {
	Height    uint64 `json:"height"`
	Hash      string `json:"hash"`
	Time      int64  `json:"time"`
	MainChain bool   `json:"main_chain"`
}

// Blocks fetches the page anchored at the given unix-millisecond timestamp
// and returns its main-chain blocks in document order. Side-chain records are
// filtered out silently. Transport failures, non-200 statuses, and malformed
// payloads are errors; a page whose blocks were all filtered is not.
func (c *Client) Blocks(ctx context.Context, anchorMillis int64) (blocks []model.Block, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_blocks", err, started)
	}()

	c.limiter.Take()

	url := fmt.Sprintf("%s/blocks/%d?format=json", c.baseURL, anchorMillis)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build blocks request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get blocks at %d: %w", anchorMillis, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get blocks at %d: unexpected status %d", anchorMillis, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read blocks response: %w", err)
	}
	return decodePage(body)
}

func decodePage(data []byte) ([]model.Block, error) {
	var p page
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode blocks page: %w", err)
	}
	if len(p.Blocks) == 0 {
		return nil, errors.New("blocks field missing or empty")
	}

	blocks := make([]model.Block, 0, len(p.Blocks))
	for i, raw := range p.Blocks {
		var rec blockRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("decode block %d: %w", i, err)
		}
		if !rec.MainChain {
			continue
		}
		blocks = append(blocks, model.Block{Height: rec.Height, Hash: rec.Hash, Time: rec.Time})
	}
	return blocks, nil
}
