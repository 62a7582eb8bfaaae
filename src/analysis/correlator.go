package analysis

import (
	"sort"

	"sentiment-observer/src/analysis/core"
	"sentiment-observer/src/logger"
	"sentiment-observer/src/models"
)

// -----------------------------------------------------------------------------

// Correlator aggregates per-day sentiment and correlates it with same-day
// returns. The missing-day policy decides what happens to trading days that
// have a return but no news:
//
//	"drop"    — the day is removed from the joined series (default)
//	"neutral" — the day is kept with mean sentiment 0
//
// The policy silently changes the statistics, so it is set in exactly one
// place (config) and echoed in every report.
type Correlator struct {
	Config *models.MConfig
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewCorrelator(cfg *models.MConfig, log *logger.Logger) *Correlator {
	return &Correlator{Config: cfg, Logger: log}
}

// -----------------------------------------------------------------------------

// Aggregate joins per-day mean sentiment with same-day returns, grouped by
// (ticker, date). The first date of each price series carries no return and
// is never part of the output. Output order is ticker then date, so repeated
// runs over the same inputs produce identical rows.
func (c *Correlator) Aggregate(scores []models.MSentimentScore, prices []models.MPriceRecord) []models.MDailyAggregate {
	type daySentiment struct {
		sum   float64
		count int
	}

	// Mean sentiment per (ticker, date).
	sentimentByDay := make(map[string]map[string]*daySentiment)
	for _, s := range scores {
		if s.TradingDate == "" {
			continue
		}
		byDate, ok := sentimentByDay[s.Ticker]
		if !ok {
			byDate = make(map[string]*daySentiment)
			sentimentByDay[s.Ticker] = byDate
		}
		day, ok := byDate[s.TradingDate]
		if !ok {
			day = &daySentiment{}
			byDate[s.TradingDate] = day
		}
		day.sum += s.Polarity
		day.count++
	}

	neutralFill := c.Config.Analysis.MissingDayPolicy == "neutral"

	var aggregates []models.MDailyAggregate
	for ticker, records := range GroupPricesByTicker(prices) {
		closes := make([]float64, len(records))
		splits := make([]float64, len(records))
		for i, p := range records {
			closes[i] = p.Close
			splits[i] = p.StockSplits
		}
		returns := core.DailyReturns(core.AdjustForSplits(closes, splits))

		byDate := sentimentByDay[ticker]
		for i := 1; i < len(records); i++ {
			date := records[i].Date

			var day *daySentiment
			if byDate != nil {
				day = byDate[date]
			}
			if day == nil && !neutralFill {
				continue
			}

			agg := models.MDailyAggregate{
				Ticker:      ticker,
				Date:        date,
				DailyReturn: returns[i],
			}
			if day != nil {
				agg.MeanSentiment = day.sum / float64(day.count)
				agg.RecordCount = day.count
			}
			aggregates = append(aggregates, agg)
		}
	}

	sort.Slice(aggregates, func(i, j int) bool {
		if aggregates[i].Ticker != aggregates[j].Ticker {
			return aggregates[i].Ticker < aggregates[j].Ticker
		}
		return aggregates[i].Date < aggregates[j].Date
	})

	c.Logger.Info("Built %d daily aggregates (policy: %s)", len(aggregates), c.Config.Analysis.MissingDayPolicy)
	return aggregates
}

// -----------------------------------------------------------------------------

// Correlate computes one Pearson report per ticker over the full joined
// series. An empty or degenerate series produces a zero-sample or undefined
// report, never an error.
func (c *Correlator) Correlate(aggregates []models.MDailyAggregate) []models.MCorrelationReport {
	byTicker := make(map[string][]models.MDailyAggregate)
	for _, agg := range aggregates {
		byTicker[agg.Ticker] = append(byTicker[agg.Ticker], agg)
	}

	tickers := make([]string, 0, len(byTicker))
	for ticker := range byTicker {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)

	reports := make([]models.MCorrelationReport, 0, len(tickers))
	for _, ticker := range tickers {
		rows := byTicker[ticker]

		sentiments := make([]float64, len(rows))
		returns := make([]float64, len(rows))
		for i, row := range rows {
			sentiments[i] = row.MeanSentiment
			returns[i] = row.DailyReturn
		}

		report := models.MCorrelationReport{
			Ticker:     ticker,
			SampleSize: len(rows),
			Policy:     c.Config.Analysis.MissingDayPolicy,
		}
		report.Coefficient, report.Defined = core.CalculateCorrelation(sentiments, returns)
		if report.Defined {
			report.PValue, report.PValueDefined = core.CalculatePValue(report.Coefficient, len(rows))
		}
		reports = append(reports, report)
	}

	return reports
}

// -----------------------------------------------------------------------------

// GroupPricesByTicker splits price records per ticker, preserving order.
func GroupPricesByTicker(prices []models.MPriceRecord) map[string][]models.MPriceRecord {
	grouped := make(map[string][]models.MPriceRecord)
	for _, p := range prices {
		grouped[p.Ticker] = append(grouped[p.Ticker], p)
	}
	return grouped
}
