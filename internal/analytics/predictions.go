package analytics

import (
	"math"
	"time"

	"github.com/goodnatureofminers/pokt-explorer-backend/internal/model"
)

// DefaultHorizon is the number of periods forecast when none is requested.
const DefaultHorizon = 24

// confidenceStdDevs is the half width of the confidence band in residual
// standard deviations (about 95% under normal residuals).
const confidenceStdDevs = 2

// GeneratePredictions extrapolates rewards and relays with independent least
// squares lines over the sample index, horizon periods past the last sample.
// Efficiency is forecast as its historical mean. The confidence band applies
// to rewards and only its lower bound is floored at zero. Fewer than two
// samples yield no predictions.
func GeneratePredictions(trend model.TrendData, horizon int) []model.Prediction {
	n := len(trend.Rewards)
	if n < 2 || horizon <= 0 {
		return []model.Prediction{}
	}

	rewards := fitLine(trend.Rewards)
	relays := fitLine(trend.Relays)
	efficiency := mean(trend.Efficiency)
	last := trend.Dates[len(trend.Dates)-1]

	out := make([]model.Prediction, 0, horizon)
	for i := 1; i <= horizon; i++ {
		x := float64(n + i - 1)
		predictedRewards := rewards.at(x)
		band := confidenceStdDevs * rewards.residualStdDev

		out = append(out, model.Prediction{
			Date:                step(last, i, trend.Hourly),
			PredictedRewards:    predictedRewards,
			PredictedRelays:     relays.at(x),
			PredictedEfficiency: efficiency,
			ConfidenceLower:     math.Max(0, predictedRewards-band),
			ConfidenceUpper:     predictedRewards + band,
		})
	}
	return out
}

func step(from time.Time, periods int, hourly bool) time.Time {
	if hourly {
		return from.Add(time.Duration(periods) * time.Hour)
	}
	return from.AddDate(0, 0, periods)
}
