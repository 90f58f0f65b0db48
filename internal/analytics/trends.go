package analytics

import (
	"sort"
	"time"

	"github.com/goodnatureofminers/pokt-explorer-backend/internal/model"
)

// Moving average windows, in samples.
const (
	hourlyShortWindow = 7 * 24
	hourlyLongWindow  = 30 * 24
	dailyShortWindow  = 7
	dailyLongWindow   = 30
)

// Sample is one point of a reward/relay/efficiency series.
type Sample struct {
	Bucket     time.Time
	Rewards    float64
	Relays     float64
	Efficiency float64
}

// SamplesFromRewards projects hourly reward aggregates.
func SamplesFromRewards(rewards []model.RewardAnalytics) []Sample {
	out := make([]Sample, 0, len(rewards))
	for _, r := range rewards {
		out = append(out, Sample{
			Bucket:     r.HourBucket.Time,
			Rewards:    r.TotalRewardsUpokt,
			Relays:     r.TotalRelays,
			Efficiency: r.AvgEfficiencyPercent,
		})
	}
	return out
}

// SamplesFromPerformance projects bucketed performance aggregates. Points
// without a bucket are dropped. Rewards are approximated as relays times the
// average reward per relay.
func SamplesFromPerformance(points []model.PerformanceDataPoint) []Sample {
	out := make([]Sample, 0, len(points))
	for _, p := range points {
		if p.Bucket.IsZero() {
			continue
		}
		out = append(out, Sample{
			Bucket:     p.Bucket.Time,
			Rewards:    p.TotalRelays * p.AvgRewardPerRelay,
			Relays:     p.TotalRelays,
			Efficiency: p.AvgEfficiencyPercent,
		})
	}
	return out
}

// CalculateTrends sorts samples chronologically and derives the parallel
// series with trailing 7 and 30 day moving averages of rewards. Hourly series
// use windows of 7x24 and 30x24 samples. Windows are truncated at the start of
// the series.
func CalculateTrends(samples []Sample, hourly bool) model.TrendData {
	sorted := make([]Sample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Bucket.Before(sorted[j].Bucket)
	})

	n := len(sorted)
	trend := model.TrendData{
		Dates:      make([]time.Time, n),
		Rewards:    make([]float64, n),
		Relays:     make([]float64, n),
		Efficiency: make([]float64, n),
		Hourly:     hourly,
	}
	for i, s := range sorted {
		trend.Dates[i] = s.Bucket
		trend.Rewards[i] = s.Rewards
		trend.Relays[i] = s.Relays
		trend.Efficiency[i] = s.Efficiency
	}

	short, long := dailyShortWindow, dailyLongWindow
	if hourly {
		short, long = hourlyShortWindow, hourlyLongWindow
	}
	trend.MovingAvg7d = trailingMean(trend.Rewards, short)
	trend.MovingAvg30d = trailingMean(trend.Rewards, long)
	return trend
}

// trailingMean returns, for every index i, the mean of values[max(0,i-w+1)..i].
func trailingMean(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	prefix := make([]float64, len(values)+1)
	for i, v := range values {
		prefix[i+1] = prefix[i] + v
	}
	for i := range values {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		out[i] = (prefix[i+1] - prefix[start]) / float64(i+1-start)
	}
	return out
}

// MergeByBucket folds samples sharing a bucket into one, summing rewards and
// relays. Efficiency is weighted by relays, or a plain mean when the bucket
// carried no relays. Output is in first-seen bucket order.
func MergeByBucket(samples []Sample) []Sample {
	type acc struct {
		sample   Sample
		weighted float64
		plain    float64
		count    int
	}
	index := make(map[time.Time]int, len(samples))
	var merged []acc
	for _, s := range samples {
		key := s.Bucket.UTC()
		i, ok := index[key]
		if !ok {
			i = len(merged)
			index[key] = i
			merged = append(merged, acc{sample: Sample{Bucket: s.Bucket}})
		}
		a := &merged[i]
		a.sample.Rewards += s.Rewards
		a.sample.Relays += s.Relays
		a.weighted += s.Efficiency * s.Relays
		a.plain += s.Efficiency
		a.count++
	}

	out := make([]Sample, len(merged))
	for i, a := range merged {
		s := a.sample
		if s.Relays > 0 {
			s.Efficiency = a.weighted / s.Relays
		} else {
			s.Efficiency = a.plain / float64(a.count)
		}
		out[i] = s
	}
	return out
}
