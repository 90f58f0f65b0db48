// Package analytics derives comparison baselines, trend lines, forecasts and
// anomaly flags from reward and performance samples. Every function is pure;
// fetching and caching live in the service layer.
package analytics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// meanStdDev returns the mean and the population standard deviation. An
// empty series yields zeros.
func meanStdDev(values []float64) (m, sd float64) {
	if len(values) == 0 {
		return 0, 0
	}
	return stat.PopMeanStdDev(values, nil)
}

// line is y = slope*x + intercept fitted over x = 0..n-1.
type line struct {
	slope     float64
	intercept float64
	// residualStdDev is the population standard deviation of the residuals.
	residualStdDev float64
}

func (l line) at(x float64) float64 {
	return l.slope*x + l.intercept
}

// fitLine runs ordinary least squares of ys against their indices. Callers
// must pass at least two values.
func fitLine(ys []float64) line {
	xs := make([]float64, len(ys))
	floats.Span(xs, 0, float64(len(ys)-1))
	intercept, slope := stat.LinearRegression(xs, ys, nil, false)

	l := line{slope: slope, intercept: intercept}
	residuals := make([]float64, len(ys))
	for i, y := range ys {
		residuals[i] = y - l.at(xs[i])
	}
	l.residualStdDev = math.Sqrt(floats.Dot(residuals, residuals) / float64(len(ys)))
	return l
}

// percentChange returns (value-base)/base*100, or 0 when base is not positive.
func percentChange(value, base float64) float64 {
	if base <= 0 {
		return 0
	}
	return (value - base) / base * 100
}
