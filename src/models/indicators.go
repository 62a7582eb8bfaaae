package models

// MIndicatorSeries holds the derived series for one ticker, index-aligned
// with Dates. Leading values inside an indicator's lookback window are zero,
// matching go-talib output. Returns[0] is zero (no prior close).
type MIndicatorSeries struct {
	Ticker          string            `json:"ticker"`
	Dates           []string          `json:"dates"`
	Close           []float64         `json:"close"`
	Returns         []float64         `json:"returns"`
	SMA             map[int][]float64 `json:"sma"`
	RSI             []float64         `json:"rsi"`
	MACD            []float64         `json:"macd"`
	MACDSignal      []float64         `json:"macd_signal"`
	MACDHist        []float64         `json:"macd_hist"`
	BollingerUpper  []float64         `json:"bollinger_upper"`
	BollingerMiddle []float64         `json:"bollinger_middle"`
	BollingerLower  []float64         `json:"bollinger_lower"`
	Momentum        []float64         `json:"momentum"`
	VolumeAnomaly   []float64         `json:"volume_anomaly"`
}

// MIndicatorSnapshot is the last bar of an indicator series, as printed in
// the run summary.
type MIndicatorSnapshot struct {
	Ticker         string          `json:"ticker"`
	Date           string          `json:"date"`
	Close          float64         `json:"close"`
	DailyReturn    float64         `json:"daily_return"`
	SMA            map[int]float64 `json:"sma"`
	RSI            float64         `json:"rsi"`
	MACD           float64         `json:"macd"`
	MACDSignal     float64         `json:"macd_signal"`
	BollingerUpper float64         `json:"bollinger_upper"`
	BollingerLower float64         `json:"bollinger_lower"`
	Momentum       float64         `json:"momentum"`
	VolumeAnomaly  float64         `json:"volume_anomaly"`
}
