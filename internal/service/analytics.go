package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/pokt-explorer-backend/internal/analytics"
	"github.com/goodnatureofminers/pokt-explorer-backend/internal/model"
)

// SampleLimit is the number of samples requested for network-wide baselines.
const SampleLimit = 500

// DashboardQuery selects the supplier and the window of a dashboard.
type DashboardQuery struct {
	SupplierAddress string
	Chain           string
	StartDate       string
	EndDate         string
	// GroupBy is hour (reward samples) or day (performance samples).
	GroupBy model.GroupBy
	// Horizon is the number of forecast periods; zero uses the default.
	Horizon int
	// Threshold is the anomaly z-score; zero uses the default.
	Threshold float64
	// Baselines adds network averages and top performers to the dashboard.
	Baselines bool
}

// AnalyticsService fetches samples from the indexer and derives analytics.
type AnalyticsService struct {
	source AnalyticsSource
	cache  AveragesCache
	pool   pond.Pool
	logger *zap.Logger
}

// NewAnalyticsService wires the service. A nil cache disables caching of
// network averages.
func NewAnalyticsService(source AnalyticsSource, cache AveragesCache, logger *zap.Logger) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{
		source: source,
		cache:  cache,
		pool:   pond.NewPool(3),
		logger: logger.Named("analytics"),
	}
}

// Close stops the fan-out pool.
func (s *AnalyticsService) Close() {
	s.pool.StopAndWait()
}

// AveragesKey is the cache key of network averages for a chain and window.
func AveragesKey(chain, start, end string) string {
	return strings.Join([]string{chain, start, end}, "|")
}

// NetworkAverages returns relay-weighted network baselines. Results are
// cached per chain and date window; cache failures only cost a refetch.
func (s *AnalyticsService) NetworkAverages(ctx context.Context, chain, start, end string) (model.NetworkAverages, error) {
	key := AveragesKey(chain, start, end)
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn("averages cache read failed", zap.String("key", key), zap.Error(err))
		}
		if ok {
			return cached, nil
		}
	}

	resp, err := s.source.Rewards(ctx, model.RewardFilters{
		Chain:     chain,
		StartDate: start,
		EndDate:   end,
		Limit:     SampleLimit,
	})
	if err != nil {
		return model.NetworkAverages{}, fmt.Errorf("fetch reward samples: %w", err)
	}

	averages := analytics.NetworkAverages(resp.Data)
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, averages); err != nil {
			s.logger.Warn("averages cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return averages, nil
}

// TopPerformers returns the top decile of suppliers by relays over the
// window.
func (s *AnalyticsService) TopPerformers(ctx context.Context, chain, start, end string) (model.TopPerformers, error) {
	resp, err := s.source.ValidatorPerformance(ctx, model.PerformanceFilters{
		Chain:     chain,
		StartDate: start,
		EndDate:   end,
		GroupBy:   model.GroupByTotal,
		Limit:     SampleLimit,
	})
	if err != nil {
		return model.TopPerformers{}, fmt.Errorf("fetch performance samples: %w", err)
	}
	return analytics.TopPerformers(resp.Data), nil
}

// SupplierDashboard builds the trend of one supplier together with its
// forecast, anomalies and growth rates. Baselines are fetched concurrently
// and left out when they fail.
func (s *AnalyticsService) SupplierDashboard(ctx context.Context, q DashboardQuery) (model.SupplierDashboard, error) {
	supplier := strings.TrimSpace(q.SupplierAddress)
	if supplier == "" {
		return model.SupplierDashboard{}, fmt.Errorf("%w: supplier address is required", model.ErrInvalidFilter)
	}
	if q.GroupBy == "" {
		q.GroupBy = model.GroupByHour
	}
	if q.GroupBy != model.GroupByHour && q.GroupBy != model.GroupByDay {
		return model.SupplierDashboard{}, fmt.Errorf("%w: group_by %q", model.ErrInvalidFilter, q.GroupBy)
	}
	horizon := q.Horizon
	if horizon <= 0 {
		horizon = analytics.DefaultHorizon
	}

	var (
		samples    []analytics.Sample
		samplesErr error
		network    *model.NetworkAverages
		top        *model.TopPerformers
	)

	group := s.pool.NewGroupContext(ctx)
	groupCtx := group.Context()
	group.Submit(func() {
		samples, samplesErr = s.supplierSamples(groupCtx, supplier, q)
	})
	if q.Baselines {
		group.Submit(func() {
			avg, err := s.NetworkAverages(groupCtx, q.Chain, q.StartDate, q.EndDate)
			if err != nil {
				s.logger.Warn("network averages unavailable", zap.Error(err))
				return
			}
			network = &avg
		})
		group.Submit(func() {
			tp, err := s.TopPerformers(groupCtx, q.Chain, q.StartDate, q.EndDate)
			if err != nil {
				s.logger.Warn("top performers unavailable", zap.Error(err))
				return
			}
			top = &tp
		})
	}
	if err := group.Wait(); err != nil {
		return model.SupplierDashboard{}, err
	}
	if samplesErr != nil {
		return model.SupplierDashboard{}, samplesErr
	}

	hourly := q.GroupBy == model.GroupByHour
	trend := analytics.CalculateTrends(analytics.MergeByBucket(samples), hourly)
	return model.SupplierDashboard{
		SupplierAddress: supplier,
		Chain:           q.Chain,
		Trend:           trend,
		Predictions:     analytics.GeneratePredictions(trend, horizon),
		Anomalies:       analytics.DetectAnomalies(trend, q.Threshold),
		Growth:          analytics.CalculateGrowthRates(trend),
		Network:         network,
		TopPerformers:   top,
	}, nil
}

func (s *AnalyticsService) supplierSamples(ctx context.Context, supplier string, q DashboardQuery) ([]analytics.Sample, error) {
	if q.GroupBy == model.GroupByHour {
		resp, err := s.source.Rewards(ctx, model.RewardFilters{
			Chain:           q.Chain,
			SupplierAddress: supplier,
			StartDate:       q.StartDate,
			EndDate:         q.EndDate,
		})
		if err != nil {
			return nil, fmt.Errorf("fetch supplier rewards: %w", err)
		}
		return analytics.SamplesFromRewards(resp.Data), nil
	}

	resp, err := s.source.ValidatorPerformance(ctx, model.PerformanceFilters{
		SupplierAddress: supplier,
		Chain:           q.Chain,
		StartDate:       q.StartDate,
		EndDate:         q.EndDate,
		GroupBy:         model.GroupByDay,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch supplier performance: %w", err)
	}
	return analytics.SamplesFromPerformance(resp.Data), nil
}
