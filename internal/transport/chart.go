package transport

import (
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/goodnatureofminers/pokt-explorer-backend/internal/model"
)

// renderTrend draws rewards with their moving averages on the primary axis
// and relays on the secondary axis. The trend needs at least two points.
func renderTrend(w io.Writer, trend model.TrendData) error {
	amountFormatter := func(v interface{}) string {
		return chart.FloatValueFormatterWithFormat(v, "%.0f")
	}
	graph := chart.Chart{
		Width:  1280,
		Height: 720,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatter,
		},
		YAxis: chart.YAxis{
			Name:           "Rewards (upokt)",
			ValueFormatter: amountFormatter,
			Range:          flatRange(trend.Rewards, trend.MovingAvg7d, trend.MovingAvg30d),
		},
		YAxisSecondary: chart.YAxis{
			Name:           "Relays",
			ValueFormatter: amountFormatter,
			Range:          flatRange(trend.Relays),
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Rewards",
				XValues: trend.Dates,
				YValues: trend.Rewards,
			},
			chart.TimeSeries{
				Name:    "7d average",
				XValues: trend.Dates,
				YValues: trend.MovingAvg7d,
			},
			chart.TimeSeries{
				Name:    "30d average",
				XValues: trend.Dates,
				YValues: trend.MovingAvg30d,
			},
			chart.TimeSeries{
				Name:    "Relays",
				XValues: trend.Dates,
				YValues: trend.Relays,
				YAxis:   chart.YAxisSecondary,
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph.Render(chart.PNG, w)
}

// flatRange returns a padded range for series without any spread, which the
// renderer cannot scale on its own. Other series keep the automatic range.
func flatRange(series ...[]float64) chart.Range {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, values := range series {
		for _, v := range values {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	if lo != hi {
		return nil
	}
	return &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
}
