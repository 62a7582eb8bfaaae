package models

// MDailyAggregate joins per-day mean sentiment with the same-day return.
type MDailyAggregate struct {
	Ticker        string  `json:"ticker" parquet:"ticker"`
	Date          string  `json:"date" parquet:"date"`
	MeanSentiment float64 `json:"mean_sentiment" parquet:"mean_sentiment"`
	RecordCount   int     `json:"record_count" parquet:"record_count"`
	DailyReturn   float64 `json:"daily_return" parquet:"daily_return"`
}

// MCorrelationReport holds the Pearson statistics for one ticker's
// joined sentiment/return series.
type MCorrelationReport struct {
	Ticker        string  `json:"ticker"`
	Coefficient   float64 `json:"coefficient"`
	Defined       bool    `json:"defined"` // false when the sample is too small or has zero variance
	PValue        float64 `json:"p_value"`
	PValueDefined bool    `json:"p_value_defined"`
	SampleSize    int     `json:"sample_size"`
	Policy        string  `json:"policy"`
}
