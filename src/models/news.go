package models

import "time"

// MNewsRecord represents one headline row from the news dataset.
// TradingDate is empty on raw records and set by the preprocessor
// (YYYY-MM-DD, already rolled back to a trading day).
type MNewsRecord struct {
	Headline    string    `json:"headline"`
	Publisher   string    `json:"publisher"`
	Timestamp   time.Time `json:"timestamp"`
	Ticker      string    `json:"ticker"`
	TradingDate string    `json:"trading_date,omitempty"`
}

// MSentimentScore is the polarity derived from one news record.
type MSentimentScore struct {
	RecordIndex int     `json:"record_index"`
	Ticker      string  `json:"ticker"`
	TradingDate string  `json:"trading_date"`
	Polarity    float64 `json:"polarity"` // in [-1, 1]
}
