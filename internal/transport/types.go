// Package transport exposes the explorer API over HTTP.
package transport

import (
	"context"
	"encoding/json"
	"time"

	"github.com/goodnatureofminers/pokt-explorer-backend/internal/model"
	"github.com/goodnatureofminers/pokt-explorer-backend/internal/service"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	TransactionFetcher interface {
		Fetch(ctx context.Context, filters model.TransactionFilters) (model.TransactionsResponse, error)
	}
	IndexerAPI interface {
		FetchTransactionStats(ctx context.Context, filters model.TransactionFilters) (json.RawMessage, error)
		ValidatorPerformance(ctx context.Context, f model.PerformanceFilters) (model.ValidatorPerformanceResponse, error)
		Domains(ctx context.Context, limit int, chain string) (model.DomainLeaderboardResponse, error)
		SearchSuppliers(ctx context.Context, f model.SupplierSearchFilters) (*model.SupplierSearchResponse, error)
	}
	Analytics interface {
		NetworkAverages(ctx context.Context, chain, start, end string) (model.NetworkAverages, error)
		TopPerformers(ctx context.Context, chain, start, end string) (model.TopPerformers, error)
		SupplierDashboard(ctx context.Context, q service.DashboardQuery) (model.SupplierDashboard, error)
	}
	Metrics interface {
		Observe(route string, code int, started time.Time)
	}
)

type nopMetrics struct{}

func (nopMetrics) Observe(string, int, time.Time) {}
