package accounting

import (
	"github.com/shopspring/decimal"
)

// recencyWeights returns the oldest-first weights for the last one, two or three monthly totals.
func recencyWeights(n int) []float64 {
	switch n {
	case 1:
		return []float64{1.0}
	case 2:
		return []float64{0.4, 0.6}
	default:
		return []float64{0.2, 0.3, 0.5}
	}
}

// WeightedRecency averages up to the last three values with weights that favour the newest.
// Values must be ordered oldest to newest. Returns false when values is empty.
func WeightedRecency(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	if len(values) > 3 {
		values = values[len(values)-3:]
	}
	weights := recencyWeights(len(values))
	sum := 0.0
	for i, v := range values {
		sum += v * weights[i]
	}
	return sum, true
}

// Mean returns the arithmetic mean, or false for an empty slice.
func Mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), true
}

// LinearRegressionSlope computes the ordinary least-squares slope of ys over xs.
// Returns 0 when fewer than two points exist or all xs are equal.
func LinearRegressionSlope(xs, ys []float64) float64 {
	n := float64(len(xs))
	if len(xs) < 2 || len(xs) != len(ys) {
		return 0
	}
	var sumX, sumY, sumXY, sumX2 float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumX2 += xs[i] * xs[i]
	}
	denom := n*sumX2 - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

// Clamp pins v into [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ToMoney converts a float into a cents-rounded decimal.
func ToMoney(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// SumAbs adds the absolute values of amounts.
func SumAbs(amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a.Abs())
	}
	return total
}
