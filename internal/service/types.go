package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/pokt-explorer-backend/internal/cosmos"
	"github.com/goodnatureofminers/pokt-explorer-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	TransactionSource interface {
		FetchTransactions(ctx context.Context, filters model.TransactionFilters) (model.TransactionsResponse, error)
	}
	BlockSource interface {
		Ready() bool
		LatestBlock(ctx context.Context) (*cosmos.Block, error)
		BlockAt(ctx context.Context, height uint64) (*cosmos.Block, error)
	}
	AnalyticsSource interface {
		Rewards(ctx context.Context, f model.RewardFilters) (model.RewardAnalyticsResponse, error)
		ValidatorPerformance(ctx context.Context, f model.PerformanceFilters) (model.ValidatorPerformanceResponse, error)
	}
	AveragesCache interface {
		Get(ctx context.Context, key string) (model.NetworkAverages, bool, error)
		Set(ctx context.Context, key string, value model.NetworkAverages) error
	}
	TransactionMetrics interface {
		ObserveFetch(source string, err error, started time.Time)
		ObserveDecodeFailure()
	}
)

type nopTransactionMetrics struct{}

func (nopTransactionMetrics) ObserveFetch(string, error, time.Time) {}

func (nopTransactionMetrics) ObserveDecodeFailure() {}
