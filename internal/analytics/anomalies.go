package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/goodnatureofminers/pokt-explorer-backend/internal/model"
)

// DefaultAnomalyThreshold is the z-score above which a sample is flagged.
const DefaultAnomalyThreshold = 2.5

// minAnomalySamples is the shortest series worth scanning.
const minAnomalySamples = 3

// DetectAnomalies flags reward and relay samples whose absolute z-score
// exceeds threshold as spikes or drops, and efficiency samples below
// mean - threshold*stddev as degradations. Efficiency spikes are not
// reported. A metric with zero standard deviation has no anomalies. The result
// is sorted by date.
func DetectAnomalies(trend model.TrendData, threshold float64) []model.Anomaly {
	if threshold <= 0 {
		threshold = DefaultAnomalyThreshold
	}
	out := []model.Anomaly{}
	if len(trend.Rewards) < minAnomalySamples {
		return out
	}

	out = appendZScoreAnomalies(out, trend.Dates, trend.Rewards, model.MetricRewards, threshold, false)
	out = appendZScoreAnomalies(out, trend.Dates, trend.Relays, model.MetricRelays, threshold, true)

	m, sd := meanStdDev(trend.Efficiency)
	if sd > 0 {
		floor := m - threshold*sd
		for i, v := range trend.Efficiency {
			if v < floor {
				out = append(out, model.Anomaly{
					Date:      trend.Dates[i],
					Type:      model.AnomalyEfficiencyDegradation,
					Metric:    model.MetricEfficiency,
					Value:     v,
					Expected:  m,
					Deviation: deviation(v, m),
				})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// appendZScoreAnomalies scans one metric. When dedupe is set, a second
// anomaly of the same metric on the same date is dropped.
func appendZScoreAnomalies(
	out []model.Anomaly,
	dates []time.Time,
	values []float64,
	metric string,
	threshold float64,
	dedupe bool,
) []model.Anomaly {
	m, sd := meanStdDev(values)
	if sd == 0 {
		return out
	}

	seen := make(map[time.Time]struct{})
	for i, v := range values {
		if math.Abs((v-m)/sd) <= threshold {
			continue
		}
		date := dates[i]
		if dedupe {
			if _, ok := seen[date]; ok {
				continue
			}
			seen[date] = struct{}{}
		}
		kind := model.AnomalyDrop
		if v > m {
			kind = model.AnomalySpike
		}
		out = append(out, model.Anomaly{
			Date:      date,
			Type:      kind,
			Metric:    metric,
			Value:     v,
			Expected:  m,
			Deviation: deviation(v, m),
		})
	}
	return out
}

// deviation is the percent distance of v from m, 0 when m is 0.
func deviation(v, m float64) float64 {
	if m == 0 {
		return 0
	}
	return (v - m) / m * 100
}
