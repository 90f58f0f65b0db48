package analytics

import (
	"math"
	"sort"

	"github.com/goodnatureofminers/pokt-explorer-backend/internal/model"
)

// topFraction is the share of suppliers reported as top performers.
const topFraction = 0.1

// NetworkAverages computes simple means of rewards and relays, and weighted
// means of efficiency (weighted by rewards) and reward per relay (weighted by
// relays). A weighted mean with zero total weight is reported as nil. An
// empty sample set yields all zeros.
func NetworkAverages(samples []model.RewardAnalytics) model.NetworkAverages {
	if len(samples) == 0 {
		return model.NetworkAverages{AvgEfficiency: float(0), AvgRewardPerRelay: float(0)}
	}

	var (
		totalRewards     float64
		totalRelays      float64
		efficiencyWeight float64
		efficiencySum    float64
		rprWeight        float64
		rprSum           float64
	)
	for _, s := range samples {
		totalRewards += s.TotalRewardsUpokt
		totalRelays += s.TotalRelays

		efficiencyWeight += s.TotalRewardsUpokt
		efficiencySum += s.AvgEfficiencyPercent * s.TotalRewardsUpokt

		rprWeight += s.TotalRelays
		rprSum += s.AvgRewardPerRelay * s.TotalRelays
	}

	n := float64(len(samples))
	return model.NetworkAverages{
		AvgRewards:        totalRewards / n,
		AvgRelays:         totalRelays / n,
		AvgEfficiency:     weighted(efficiencySum, efficiencyWeight),
		AvgRewardPerRelay: weighted(rprSum, rprWeight),
		SampleSize:        len(samples),
	}
}

func weighted(total, weight float64) *float64 {
	if weight == 0 {
		return nil
	}
	return float(total / weight)
}

func float(v float64) *float64 {
	return &v
}

// TopPerformers ranks samples by relay count and summarises the top 10% (at
// least one sample). RelaysThreshold is the relay count of the last member of
// the cohort; RewardsThreshold is the lowest estimated reward
// (relays x reward per relay) inside the cohort.
func TopPerformers(samples []model.PerformanceDataPoint) model.TopPerformers {
	if len(samples) == 0 {
		return model.TopPerformers{Top10Percent: []model.PerformanceDataPoint{}}
	}

	sorted := make([]model.PerformanceDataPoint, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalRelays > sorted[j].TotalRelays
	})

	size := int(math.Floor(float64(len(sorted)) * topFraction))
	if size < 1 {
		size = 1
	}
	cohort := sorted[:size]

	relays := make([]float64, len(cohort))
	efficiency := make([]float64, len(cohort))
	minReward := math.Inf(1)
	for i, p := range cohort {
		relays[i] = p.TotalRelays
		efficiency[i] = p.AvgEfficiencyPercent
		if r := p.TotalRelays * p.AvgRewardPerRelay; r < minReward {
			minReward = r
		}
	}

	return model.TopPerformers{
		RelaysThreshold:  cohort[len(cohort)-1].TotalRelays,
		RewardsThreshold: minReward,
		AvgRelays:        mean(relays),
		AvgEfficiency:    mean(efficiency),
		SampleSize:       len(samples),
		Top10Percent:     cohort,
	}
}
