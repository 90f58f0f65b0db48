// Package cosmos reads blocks from a Cosmos SDK REST (LCD) endpoint and
// decodes their raw transactions.
package cosmos

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/pokt-explorer-backend/pkg/retry"
	"github.com/goodnatureofminers/pokt-explorer-backend/pkg/safe"
)

const (
	latestBlockPath = "/cosmos/base/tendermint/v1beta1/blocks/latest"
	blockPath       = "/cosmos/base/tendermint/v1beta1/blocks/"
	nodeInfoPath    = "/cosmos/base/tendermint/v1beta1/node_info"
)

// StatusError is a non-2xx node response.
type StatusError struct {
	Path   string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("node %s: status %d", e.Path, e.Status)
}

// Block is the subset of a block used to rebuild transactions.
type Block struct {
	Height  uint64
	Time    time.Time
	BlockID string
	ChainID string
	// Txs are the raw TxRaw bytes in block order.
	Txs [][]byte
}

// NodeInfo identifies the node's network.
type NodeInfo struct {
	Network string
	Moniker string
	Version string
}

// Opts configures a Client.
type Opts struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Metrics    RPCMetrics
	Logger     *zap.Logger
	// Retry is the Connect schedule; the zero value uses retry.NodePolicy.
	Retry      retry.Policy
}

// Client is a REST client of one node. It reports Ready once a node_info
// probe succeeded.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    RPCMetrics
	logger     *zap.Logger
	retry      retry.Policy
	ready      atomic.Bool
}

// NewClient constructs a Client. Call Connect to mark it ready.
func NewClient(o Opts) *Client {
	if o.Timeout <= 0 {
		o.Timeout = 10 * time.Second
	}
	client := o.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: o.Timeout}
	}
	if o.Retry == (retry.Policy{}) {
		o.Retry = retry.NodePolicy()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(o.BaseURL, "/"),
		httpClient: client,
		metrics:    o.Metrics,
		logger:     o.Logger.Named("cosmos"),
		retry:      o.Retry,
	}
}

// Ready reports whether the node answered a probe.
func (c *Client) Ready() bool {
	return c.ready.Load()
}

// Connect probes node_info with backoff until the node answers.
func (c *Client) Connect(ctx context.Context) error {
	return retry.Do(ctx, c.retry, c.probe, func(attempt int, delay time.Duration, err error) {
		c.logger.Warn("node probe failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", delay),
			zap.Error(err))
	})
}

// Monitor probes node_info every interval until ctx ends and keeps Ready in
// step with the outcome. A node that was down at startup becomes ready once
// it answers.
func (c *Client) Monitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = c.probe(ctx)
		}
	}
}

func (c *Client) probe(ctx context.Context) error {
	info, err := c.NodeInfo(ctx)
	if err != nil {
		if c.ready.Swap(false) {
			c.logger.Warn("node lost", zap.Error(err))
		}
		return err
	}
	if !c.ready.Swap(true) {
		c.logger.Info("node connected",
			zap.String("network", info.Network),
			zap.String("moniker", info.Moniker),
			zap.String("version", info.Version))
	}
	return nil
}

type nodeInfoResponse struct {
	DefaultNodeInfo struct {
		Network string `json:"network"`
		Moniker string `json:"moniker"`
	} `json:"default_node_info"`
	ApplicationVersion struct {
		Version string `json:"version"`
	} `json:"application_version"`
}

// NodeInfo returns the node identity.
func (c *Client) NodeInfo(ctx context.Context) (info NodeInfo, err error) {
	started := time.Now()
	defer func() {
		c.observe("node_info", err, started)
	}()

	var resp nodeInfoResponse
	if err := c.get(ctx, nodeInfoPath, &resp); err != nil {
		return NodeInfo{}, err
	}
	return NodeInfo{
		Network: resp.DefaultNodeInfo.Network,
		Moniker: resp.DefaultNodeInfo.Moniker,
		Version: resp.ApplicationVersion.Version,
	}, nil
}

// LatestBlock returns the most recent block.
func (c *Client) LatestBlock(ctx context.Context) (block *Block, err error) {
	started := time.Now()
	defer func() {
		c.observe("latest_block", err, started)
	}()
	return c.block(ctx, latestBlockPath)
}

// BlockAt returns the block at height.
func (c *Client) BlockAt(ctx context.Context, height uint64) (block *Block, err error) {
	started := time.Now()
	defer func() {
		c.observe("block_at", err, started)
	}()
	return c.block(ctx, blockPath+strconv.FormatUint(height, 10))
}

type blockResponse struct {
	BlockID struct {
		Hash string `json:"hash"`
	} `json:"block_id"`
	Block struct {
		Header struct {
			ChainID string    `json:"chain_id"`
			Height  string    `json:"height"`
			Time    time.Time `json:"time"`
		} `json:"header"`
		Data struct {
			Txs []string `json:"txs"`
		} `json:"data"`
	} `json:"block"`
}

func (c *Client) block(ctx context.Context, path string) (*Block, error) {
	var resp blockResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}

	height, err := safe.ParseHeight(resp.Block.Header.Height)
	if err != nil {
		return nil, fmt.Errorf("block %s: %w", path, err)
	}
	block := &Block{
		Height:  height,
		Time:    resp.Block.Header.Time,
		BlockID: blockHash(resp.BlockID.Hash),
		ChainID: resp.Block.Header.ChainID,
		Txs:     make([][]byte, 0, len(resp.Block.Data.Txs)),
	}
	for i, encoded := range resp.Block.Data.Txs {
		raw, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			c.logger.Warn("skip undecodable tx",
				zap.Uint64("height", height),
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		block.Txs = append(block.Txs, raw)
	}
	return block, nil
}

// blockHash converts the base64 block hash of the REST API to uppercase hex.
func blockHash(encoded string) string {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return encoded
	}
	return strings.ToUpper(hex.EncodeToString(raw))
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Path: path, Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) observe(operation string, err error, started time.Time) {
	if c.metrics != nil {
		c.metrics.Observe(operation, err, started)
	}
}
