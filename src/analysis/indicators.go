package analysis

import (
	"github.com/markcheno/go-talib"

	"sentiment-observer/src/analysis/core"
	"sentiment-observer/src/logger"
	"sentiment-observer/src/models"
)

// -----------------------------------------------------------------------------

// IndicatorCalculator shapes a daily price series into derived series.
// All indicator math is delegated to go-talib; this component only prepares
// inputs and collects outputs. Series shorter than an indicator's lookback
// keep that indicator zero-filled.
type IndicatorCalculator struct {
	Config *models.MConfig
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewIndicatorCalculator(cfg *models.MConfig, log *logger.Logger) *IndicatorCalculator {
	return &IndicatorCalculator{Config: cfg, Logger: log}
}

// -----------------------------------------------------------------------------

// Compute derives returns and indicators for one ticker's price records.
// Records must be sorted by date (the preprocessor guarantees this).
func (c *IndicatorCalculator) Compute(ticker string, prices []models.MPriceRecord) models.MIndicatorSeries {
	n := len(prices)
	series := models.MIndicatorSeries{
		Ticker: ticker,
		Dates:  make([]string, n),
		Close:  make([]float64, n),
		SMA:    make(map[int][]float64),
	}

	closes := make([]float64, n)
	splits := make([]float64, n)
	volumes := make([]float64, n)
	for i, p := range prices {
		series.Dates[i] = p.Date
		closes[i] = p.Close
		splits[i] = p.StockSplits
		volumes[i] = float64(p.Volume)
	}

	adjusted := core.AdjustForSplits(closes, splits)
	copy(series.Close, adjusted)
	series.Returns = core.DailyReturns(adjusted)

	cfg := c.Config.Analysis
	for _, window := range cfg.SMAWindows {
		if n >= window {
			series.SMA[window] = talib.Sma(adjusted, window)
		} else {
			series.SMA[window] = make([]float64, n)
		}
	}

	if n >= cfg.RSIPeriod+1 {
		series.RSI = talib.Rsi(adjusted, cfg.RSIPeriod)
	} else {
		series.RSI = make([]float64, n)
	}

	// MACD(12,26,9) needs the slow EMA plus the signal lookback.
	if n >= 26+9 {
		series.MACD, series.MACDSignal, series.MACDHist = talib.Macd(adjusted, 12, 26, 9)
	} else {
		series.MACD = make([]float64, n)
		series.MACDSignal = make([]float64, n)
		series.MACDHist = make([]float64, n)
	}

	if n >= cfg.BollingerPeriod {
		series.BollingerUpper, series.BollingerMiddle, series.BollingerLower =
			talib.BBands(adjusted, cfg.BollingerPeriod, cfg.BollingerStdDev, cfg.BollingerStdDev, talib.SMA)
	} else {
		series.BollingerUpper = make([]float64, n)
		series.BollingerMiddle = make([]float64, n)
		series.BollingerLower = make([]float64, n)
	}

	if n >= cfg.MomentumPeriod+1 {
		series.Momentum = talib.Roc(adjusted, cfg.MomentumPeriod)
	} else {
		series.Momentum = make([]float64, n)
	}

	avgVolume, _ := core.CalculateMeanStd(volumes)
	series.VolumeAnomaly = make([]float64, n)
	for i, v := range volumes {
		series.VolumeAnomaly[i] = core.CalculateAnomalyRatio(v, avgVolume)
	}

	c.Logger.Debug("Computed indicators for %s over %d bars", ticker, n)
	return series
}

// -----------------------------------------------------------------------------

// ComputeAll groups price records by ticker and computes a series per ticker.
func (c *IndicatorCalculator) ComputeAll(prices []models.MPriceRecord) map[string]models.MIndicatorSeries {
	grouped := GroupPricesByTicker(prices)
	result := make(map[string]models.MIndicatorSeries, len(grouped))
	for ticker, records := range grouped {
		result[ticker] = c.Compute(ticker, records)
	}
	return result
}

// -----------------------------------------------------------------------------

// LatestSnapshot extracts the last bar of a series for the report. The
// second return value is false for an empty series.
func LatestSnapshot(series models.MIndicatorSeries) (models.MIndicatorSnapshot, bool) {
	n := len(series.Dates)
	if n == 0 {
		return models.MIndicatorSnapshot{}, false
	}
	last := n - 1

	sma := make(map[int]float64, len(series.SMA))
	for window, values := range series.SMA {
		sma[window] = values[last]
	}

	return models.MIndicatorSnapshot{
		Ticker:         series.Ticker,
		Date:           series.Dates[last],
		Close:          series.Close[last],
		DailyReturn:    series.Returns[last],
		SMA:            sma,
		RSI:            series.RSI[last],
		MACD:           series.MACD[last],
		MACDSignal:     series.MACDSignal[last],
		BollingerUpper: series.BollingerUpper[last],
		BollingerLower: series.BollingerLower[last],
		Momentum:       series.Momentum[last],
		VolumeAnomaly:  series.VolumeAnomaly[last],
	}, true
}
