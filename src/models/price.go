package models

// MPriceRecord represents one daily OHLCV bar.
// Date is the trading date formatted as YYYY-MM-DD.
type MPriceRecord struct {
	Ticker      string  `json:"ticker"`
	Date        string  `json:"date"`
	Open        float64 `json:"open"`
	High        float64 `json:"high"`
	Low         float64 `json:"low"`
	Close       float64 `json:"close"`
	Volume      int64   `json:"volume"`
	StockSplits float64 `json:"stock_splits,omitempty"`
}
