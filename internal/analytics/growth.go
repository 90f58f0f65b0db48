package analytics

import "github.com/goodnatureofminers/pokt-explorer-backend/internal/model"

// Look-back offsets, in samples.
const (
	dayLookBack   = 24
	weekLookBack  = 168
	monthLookBack = 720
)

// CalculateGrowthRates compares the latest reward against the reward 24, 168
// and 720 samples earlier. Without enough history the latest value is its
// own baseline, which reports 0%.
func CalculateGrowthRates(trend model.TrendData) model.GrowthRates {
	n := len(trend.Rewards)
	if n == 0 {
		return model.GrowthRates{}
	}
	latest := trend.Rewards[n-1]
	return model.GrowthRates{
		DayOverDay:     percentChange(latest, lookBack(trend.Rewards, dayLookBack)),
		WeekOverWeek:   percentChange(latest, lookBack(trend.Rewards, weekLookBack)),
		MonthOverMonth: percentChange(latest, lookBack(trend.Rewards, monthLookBack)),
	}
}

func lookBack(values []float64, offset int) float64 {
	i := len(values) - 1 - offset
	if i < 0 {
		i = len(values) - 1
	}
	return values[i]
}
