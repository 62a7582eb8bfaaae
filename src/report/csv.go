package report

import (
	"encoding/csv"
	"os"
	"strconv"

	"sentiment-observer/src/models"
)

// CSVSaver writes aggregates as CSV
// (header: ticker,date,mean_sentiment,record_count,daily_return).
type CSVSaver struct{}

func (CSVSaver) Extension() string { return "csv" }

func (CSVSaver) Save(aggs []models.MDailyAggregate, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"ticker", "date", "mean_sentiment", "record_count", "daily_return"}); err != nil {
		return err
	}
	for _, a := range aggs {
		if err := w.Write([]string{
			a.Ticker,
			a.Date,
			floatStr(a.MeanSentiment),
			strconv.Itoa(a.RecordCount),
			floatStr(a.DailyReturn),
		}); err != nil {
			return err
		}
	}
	return w.Error()
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
