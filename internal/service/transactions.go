package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/pokt-explorer-backend/internal/clock"
	"github.com/goodnatureofminers/pokt-explorer-backend/internal/cosmos"
	"github.com/goodnatureofminers/pokt-explorer-backend/internal/model"
	"github.com/goodnatureofminers/pokt-explorer-backend/pkg/safe"
)

const (
	sourceIndexer = "indexer"
	sourceRPC     = "rpc"
)

// FallbackConfig tunes the node fallback of TransactionService.
type FallbackConfig struct {
	// Chain labels rebuilt transactions when the filters name none.
	Chain string
	// Limit is the page size when the filters name none.
	Limit int
	// WindowBlocks is the number of blocks scanned per page.
	WindowBlocks int
	// ReadyAttempts and ReadyInterval bound the wait for the node client.
	ReadyAttempts int
	ReadyInterval time.Duration
	// Workers bounds concurrent block fetches.
	Workers int
}

// DefaultFallbackConfig returns the fallback defaults.
func DefaultFallbackConfig() FallbackConfig {
	return FallbackConfig{
		Chain:         "pocket-lego-testnet",
		Limit:         25,
		WindowBlocks:  50,
		ReadyAttempts: 10,
		ReadyInterval: 500 * time.Millisecond,
		Workers:       10,
	}
}

// TransactionService serves transaction pages from the indexer and rebuilds
// them from raw node blocks when the indexer fails.
type TransactionService struct {
	primary TransactionSource
	blocks  BlockSource
	cfg     FallbackConfig
	pool    pond.Pool
	metrics TransactionMetrics
	clock   clock.Clock
	logger  *zap.Logger
}

// NewTransactionService wires the service. blocks may be nil, in which case
// indexer errors are returned unchanged.
func NewTransactionService(
	primary TransactionSource,
	blocks BlockSource,
	cfg FallbackConfig,
	metrics TransactionMetrics,
	logger *zap.Logger,
) *TransactionService {
	def := DefaultFallbackConfig()
	if cfg.Chain == "" {
		cfg.Chain = def.Chain
	}
	if cfg.Limit <= 0 {
		cfg.Limit = def.Limit
	}
	if cfg.WindowBlocks <= 0 {
		cfg.WindowBlocks = def.WindowBlocks
	}
	if cfg.ReadyAttempts <= 0 {
		cfg.ReadyAttempts = def.ReadyAttempts
	}
	if cfg.ReadyInterval <= 0 {
		cfg.ReadyInterval = def.ReadyInterval
	}
	if cfg.Workers <= 0 {
		cfg.Workers = def.Workers
	}
	if metrics == nil {
		metrics = nopTransactionMetrics{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransactionService{
		primary: primary,
		blocks:  blocks,
		cfg:     cfg,
		pool:    pond.NewPool(cfg.Workers, pond.WithQueueSize(cfg.WindowBlocks)),
		metrics: metrics,
		clock:   clock.System{},
		logger:  logger.Named("transactions"),
	}
}

// Close stops the block fetch pool and waits for running fetches.
func (s *TransactionService) Close() {
	s.pool.StopAndWait()
}

// Fetch returns a page of transactions from the indexer. When the indexer
// fails and a block source is configured, the page is rebuilt from the most
// recent blocks and marked as an estimate. Invalid filters and canceled
// contexts are never retried against the node.
func (s *TransactionService) Fetch(ctx context.Context, filters model.TransactionFilters) (model.TransactionsResponse, error) {
	started := time.Now()
	resp, err := s.primary.FetchTransactions(ctx, filters)
	s.metrics.ObserveFetch(sourceIndexer, err, started)
	if err == nil {
		return resp, nil
	}
	if s.blocks == nil || errors.Is(err, model.ErrInvalidFilter) || ctx.Err() != nil {
		return model.TransactionsResponse{}, err
	}

	s.logger.Warn("indexer failed, falling back to node", zap.Error(err))
	started = time.Now()
	resp, nodeErr := s.fromBlocks(ctx, filters)
	s.metrics.ObserveFetch(sourceRPC, nodeErr, started)
	if nodeErr != nil {
		s.logger.Error("node fallback failed", zap.Error(nodeErr))
		return model.TransactionsResponse{}, &UnavailableError{Primary: err, Fallback: nodeErr}
	}
	return resp, nil
}

func (s *TransactionService) fromBlocks(ctx context.Context, filters model.TransactionFilters) (model.TransactionsResponse, error) {
	page := max(filters.Page, 1)
	limit := filters.Limit
	if limit <= 0 {
		limit = s.cfg.Limit
	}
	chain := filters.Chain
	if chain == "" {
		chain = s.cfg.Chain
	}

	ready, err := clock.Poll(ctx, s.cfg.ReadyAttempts, s.cfg.ReadyInterval, s.blocks.Ready)
	if err != nil {
		return model.TransactionsResponse{}, err
	}
	if !ready {
		return model.TransactionsResponse{}, errNodeNotReady
	}

	latest, err := s.blocks.LatestBlock(ctx)
	if err != nil {
		return model.TransactionsResponse{}, fmt.Errorf("latest block: %w", err)
	}
	if latest == nil || latest.Height == 0 {
		return model.TransactionsResponse{}, errNoBlocks
	}

	start, end := blockWindow(latest.Height, page, s.cfg.WindowBlocks)
	blocks := s.fetchWindow(ctx, start, end)
	if err := ctx.Err(); err != nil {
		return model.TransactionsResponse{}, err
	}

	wanted := filters.AddressList()
	var txs []model.Transaction
	for _, block := range blocks {
		if block == nil {
			continue
		}
		for i, raw := range block.Txs {
			tx, ok := s.rebuild(block, i, raw, chain)
			if !ok {
				continue
			}
			if len(wanted) > 0 && !slices.Contains(wanted, tx.Sender) && !slices.Contains(wanted, tx.Recipient) {
				continue
			}
			txs = append(txs, tx)
		}
	}

	observed := len(txs)
	if len(txs) > limit {
		txs = txs[:limit]
	}
	if txs == nil {
		txs = []model.Transaction{}
	}

	height, err := safe.Int64(latest.Height)
	if err != nil {
		return model.TransactionsResponse{}, fmt.Errorf("latest block: %w", err)
	}
	// observed transactions per block extrapolated over the chain; an empty
	// window counts as one per block
	total := height
	if observed > 0 {
		total = height * int64(observed) / int64(s.cfg.WindowBlocks)
	}
	var failed int64
	return model.TransactionsResponse{
		Data: txs,
		Meta: model.TransactionsMeta{
			Total:         total,
			Page:          page,
			Limit:         limit,
			TotalPages:    (total + int64(limit) - 1) / int64(limit),
			FailedLast24h: &failed,
			IsEstimate:    true,
		},
	}, nil
}

// blockWindow returns the inclusive height range scanned for page, newest
// page first, clamped at height 1. Pages past the chain start scan block 1.
func blockWindow(height uint64, page, window int) (start, end uint64) {
	skipped, err := safe.Uint64(page - 1)
	if err != nil {
		skipped = 0
	}
	w := uint64(window)
	end = 1
	if skipped <= height/w && height > skipped*w {
		end = height - skipped*w
	}
	start = 1
	if end > w {
		start = end - w + 1
	}
	return start, end
}

// fetchWindow loads blocks end..start (descending). Failed fetches leave a
// nil slot.
func (s *TransactionService) fetchWindow(ctx context.Context, start, end uint64) []*cosmos.Block {
	blocks := make([]*cosmos.Block, end-start+1)
	group := s.pool.NewGroupContext(ctx)
	groupCtx := group.Context()
	for i := range blocks {
		height := end - uint64(i)
		group.Submit(func() {
			if groupCtx.Err() != nil {
				return
			}
			block, err := s.blocks.BlockAt(groupCtx, height)
			if err != nil {
				s.logger.Debug("skip block", zap.Uint64("height", height), zap.Error(err))
				return
			}
			blocks[i] = block
		})
	}
	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, pond.ErrGroupStopped) {
		s.logger.Warn("block window fetch encountered error", zap.Error(err))
	}
	return blocks
}

// rebuild converts the i-th raw transaction of block into the indexer shape
// from its first message.
func (s *TransactionService) rebuild(block *cosmos.Block, i int, raw []byte, chain string) (model.Transaction, bool) {
	decoded, err := cosmos.DecodeTx(raw)
	if err != nil {
		s.metrics.ObserveDecodeFailure()
		s.logger.Warn("skip undecodable tx",
			zap.Uint64("height", block.Height),
			zap.Int("index", i),
			zap.Error(err))
		return model.Transaction{}, false
	}

	msg := decoded.Messages[0]
	amount := "0"
	if len(msg.Amount) > 0 {
		amount = msg.Amount[0].Amount
	}
	fee := "0"
	if len(decoded.Fee) > 0 {
		fee = decoded.Fee[0].Amount
	}
	timestamp := block.Time
	if timestamp.IsZero() {
		timestamp = s.clock.Now().UTC()
	}
	txData, err := json.Marshal(decoded)
	if err != nil {
		txData = nil
	}

	return model.Transaction{
		ID:          fmt.Sprintf("%d-%d", block.Height, i),
		Hash:        decoded.Hash,
		BlockID:     block.BlockID,
		BlockHeight: block.Height,
		Sender:      msg.Sender,
		Recipient:   msg.Recipient,
		Amount:      parseAmount(amount),
		Fee:         parseAmount(fee),
		Memo:        decoded.Memo,
		Type:        msg.Type(),
		Status:      model.TxStatusSuccess,
		Chain:       chain,
		Timestamp:   timestamp,
		TxData:      txData,
	}, true
}

func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
