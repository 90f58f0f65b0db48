// Package indexer is a client of the explorer indexer REST API. It picks GET
// or POST per request shape, merges multi-type transaction queries and
// collapses concurrent identical analytics lookups.
package indexer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	// maxQueryLength is the longest URL sent as GET before switching to POST.
	maxQueryLength = 2000
	// maxGetAddresses is the largest address list encoded in a query string.
	maxGetAddresses  = 5
	maxResponseBytes = 32 << 20
)

// Opts configures a Client.
type Opts struct {
	BaseURL    string
	Timeout    time.Duration
	RPS        int
	HTTPClient *http.Client
	Metrics    Metrics
	Logger     *zap.Logger
}

// Client talks to the indexer REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    ratelimit.Limiter
	metrics    Metrics
	logger     *zap.Logger
	inflight   *inflight
}

// NewClient constructs a Client. RPS <= 0 disables throttling.
func NewClient(o Opts) *Client {
	if o.Timeout <= 0 {
		o.Timeout = 15 * time.Second
	}
	client := o.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: o.Timeout}
	}
	limiter := ratelimit.NewUnlimited()
	if o.RPS > 0 {
		limiter = ratelimit.New(o.RPS)
	}
	if o.Metrics == nil {
		o.Metrics = nopMetrics{}
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	return &Client{
		baseURL:    strings.TrimRight(o.BaseURL, "/"),
		httpClient: client,
		limiter:    limiter,
		metrics:    o.Metrics,
		logger:     o.Logger.Named("indexer"),
		inflight:   newInflight(),
	}
}

type request struct {
	operation string
	method    string
	path      string
	query     url.Values
	body      any
	// shared requests are de-duplicated while in flight.
	shared bool
}

func (c *Client) url(path string, query url.Values) string {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return target
}

// tooLong reports whether a GET of path with query would exceed the URL
// length budget.
func tooLong(path string, query url.Values) bool {
	return len(path)+1+len(query.Encode()) > maxQueryLength
}

func (c *Client) send(ctx context.Context, req request) ([]byte, error) {
	target := c.url(req.path, req.query)

	var payload []byte
	if req.body != nil {
		b, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", req.operation, err)
		}
		payload = b
	}

	if !req.shared {
		return c.roundTrip(ctx, req, target, payload)
	}

	key := req.method + " " + target + ":" + string(payload)
	body, shared, err := c.inflight.do(ctx, key, func() ([]byte, error) {
		return c.roundTrip(ctx, req, target, payload)
	})
	if shared {
		c.metrics.ObserveShared(req.operation)
	}
	return body, err
}

func (c *Client) roundTrip(ctx context.Context, req request, target string, payload []byte) (body []byte, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(req.operation, req.method, err, started)
	}()

	c.limiter.Take()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", req.operation, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.method, req.path, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	body, err = io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", req.operation, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := newHTTPError(resp.StatusCode, body)
		c.logger.Debug("indexer request failed",
			zap.String("operation", req.operation),
			zap.String("method", req.method),
			zap.Int("status", resp.StatusCode),
			zap.String("message", httpErr.Message))
		return nil, httpErr
	}
	return body, nil
}

func decode[T any](operation string, body []byte) (T, error) {
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("decode %s response: %w", operation, err)
	}
	return out, nil
}

// splitList splits a comma separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
