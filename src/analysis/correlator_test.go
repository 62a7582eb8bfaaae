package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentiment-observer/src/logger"
	"sentiment-observer/src/models"
)

// -----------------------------------------------------------------------------

func testConfig(policy string) *models.MConfig {
	return &models.MConfig{
		Name:     "test",
		LogLevel: "error",
		Analysis: models.MAnalysisConfig{MissingDayPolicy: policy},
	}
}

func testLogger() *logger.Logger {
	return logger.NewLogger("critical", "test")
}

func pricesJanuary() []models.MPriceRecord {
	return []models.MPriceRecord{
		{Ticker: "AAPL", Date: "2024-01-02", Close: 100},
		{Ticker: "AAPL", Date: "2024-01-03", Close: 98},
		{Ticker: "AAPL", Date: "2024-01-04", Close: 99.96},
	}
}

// -----------------------------------------------------------------------------

func TestAggregateExampleScenario(t *testing.T) {
	// One positive and one negative headline on 2024-01-02, close falls from
	// 100 to 98 on 2024-01-03: mean sentiment near 0 for 01-02 and a -2%
	// return on 01-03.
	scores := []models.MSentimentScore{
		{Ticker: "AAPL", TradingDate: "2024-01-02", Polarity: 0.62},
		{Ticker: "AAPL", TradingDate: "2024-01-02", Polarity: -0.60},
		{Ticker: "AAPL", TradingDate: "2024-01-03", Polarity: -0.30},
	}

	c := NewCorrelator(testConfig("drop"), testLogger())
	aggs := c.Aggregate(scores, pricesJanuary())

	// 2024-01-02 is the first price date and has no return, so the joined
	// series starts at 2024-01-03.
	require.Len(t, aggs, 1)
	assert.Equal(t, "2024-01-03", aggs[0].Date)
	assert.Equal(t, 1, aggs[0].RecordCount)
	assert.InDelta(t, -0.30, aggs[0].MeanSentiment, 1e-9)
	assert.InDelta(t, -0.02, aggs[0].DailyReturn, 1e-9)
}

func TestAggregateMeanPerDay(t *testing.T) {
	scores := []models.MSentimentScore{
		{Ticker: "AAPL", TradingDate: "2024-01-03", Polarity: 0.62},
		{Ticker: "AAPL", TradingDate: "2024-01-03", Polarity: -0.60},
	}

	c := NewCorrelator(testConfig("drop"), testLogger())
	aggs := c.Aggregate(scores, pricesJanuary())

	require.Len(t, aggs, 1)
	assert.Equal(t, 2, aggs[0].RecordCount)
	assert.InDelta(t, 0.01, aggs[0].MeanSentiment, 1e-9)
}

func TestAggregateMissingDayPolicies(t *testing.T) {
	scores := []models.MSentimentScore{
		{Ticker: "AAPL", TradingDate: "2024-01-03", Polarity: 0.5},
	}

	// drop: 2024-01-04 has a return but no news and is removed.
	aggs := NewCorrelator(testConfig("drop"), testLogger()).Aggregate(scores, pricesJanuary())
	require.Len(t, aggs, 1)
	assert.Equal(t, "2024-01-03", aggs[0].Date)

	// neutral: 2024-01-04 is kept with sentiment 0 and no records.
	aggs = NewCorrelator(testConfig("neutral"), testLogger()).Aggregate(scores, pricesJanuary())
	require.Len(t, aggs, 2)
	assert.Equal(t, "2024-01-04", aggs[1].Date)
	assert.Equal(t, 0.0, aggs[1].MeanSentiment)
	assert.Equal(t, 0, aggs[1].RecordCount)
}

func TestAggregateIdempotent(t *testing.T) {
	scores := []models.MSentimentScore{
		{Ticker: "AAPL", TradingDate: "2024-01-03", Polarity: 0.4},
		{Ticker: "AAPL", TradingDate: "2024-01-04", Polarity: -0.1},
		{Ticker: "MSFT", TradingDate: "2024-01-03", Polarity: 0.2},
	}
	prices := append(pricesJanuary(),
		models.MPriceRecord{Ticker: "MSFT", Date: "2024-01-02", Close: 370},
		models.MPriceRecord{Ticker: "MSFT", Date: "2024-01-03", Close: 373.7},
	)

	c := NewCorrelator(testConfig("neutral"), testLogger())
	first := c.Aggregate(scores, prices)
	second := c.Aggregate(scores, prices)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestCorrelatePerfectSeries(t *testing.T) {
	// Sentiment equal to the return by construction: Pearson must be ~1.
	var aggs []models.MDailyAggregate
	returns := []float64{0.01, -0.02, 0.03, 0.005, -0.015, 0.02}
	dates := []string{"2024-01-03", "2024-01-04", "2024-01-05", "2024-01-08", "2024-01-09", "2024-01-10"}
	for i, r := range returns {
		aggs = append(aggs, models.MDailyAggregate{
			Ticker: "AAPL", Date: dates[i], MeanSentiment: r, RecordCount: 1, DailyReturn: r,
		})
	}

	reports := NewCorrelator(testConfig("drop"), testLogger()).Correlate(aggs)
	require.Len(t, reports, 1)
	require.True(t, reports[0].Defined)
	assert.InDelta(t, 1.0, reports[0].Coefficient, 1e-9)
	assert.Equal(t, 6, reports[0].SampleSize)
	assert.Equal(t, "drop", reports[0].Policy)
}

func TestCorrelateZeroVarianceUndefined(t *testing.T) {
	aggs := []models.MDailyAggregate{
		{Ticker: "AAPL", Date: "2024-01-03", MeanSentiment: 0, DailyReturn: 0.01},
		{Ticker: "AAPL", Date: "2024-01-04", MeanSentiment: 0, DailyReturn: -0.02},
		{Ticker: "AAPL", Date: "2024-01-05", MeanSentiment: 0, DailyReturn: 0.03},
	}

	reports := NewCorrelator(testConfig("neutral"), testLogger()).Correlate(aggs)
	require.Len(t, reports, 1)
	assert.False(t, reports[0].Defined)
	assert.Equal(t, 3, reports[0].SampleSize)
}

func TestCorrelateEmptySeries(t *testing.T) {
	reports := NewCorrelator(testConfig("drop"), testLogger()).Correlate(nil)
	assert.Empty(t, reports)
}
