package core

// -----------------------------------------------------------------------------

// CalculateChangePercent calculates percentage change.
func CalculateChangePercent(current, previous float64) float64 {
	if previous == 0 {
		return 0.0
	}
	return (current - previous) / previous
}

// -----------------------------------------------------------------------------

// DailyReturns computes simple percentage change between consecutive closes:
// r[t] = close[t]/close[t-1] - 1. The result has the same length as the
// input; r[0] is 0 because there is no prior close.
func DailyReturns(closes []float64) []float64 {
	returns := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		returns[i] = CalculateChangePercent(closes[i], closes[i-1])
	}
	return returns
}

// -----------------------------------------------------------------------------

// AdjustForSplits divides each close by its split factor, treating a zero
// factor as 1 (no split on that day).
func AdjustForSplits(closes, splits []float64) []float64 {
	adjusted := make([]float64, len(closes))
	for i, c := range closes {
		factor := 1.0
		if i < len(splits) && splits[i] != 0 {
			factor = splits[i]
		}
		adjusted[i] = c / factor
	}
	return adjusted
}

// -----------------------------------------------------------------------------

// CalculateAnomalyRatio computes volume anomaly relative to average volume.
func CalculateAnomalyRatio(currentVol, avgVol float64) float64 {
	if avgVol <= 0 {
		if currentVol == 0 {
			return 1.0
		}
		return currentVol
	}
	return currentVol / avgVol
}
