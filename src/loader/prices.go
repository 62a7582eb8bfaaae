package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"sentiment-observer/src/logger"
	"sentiment-observer/src/models"
	"sentiment-observer/src/utils"
)

// -----------------------------------------------------------------------------

// LoadPrices reads the daily OHLCV CSV into memory. Rows with an unparseable
// date or price field are skipped and counted. When the file has no ticker
// column every row gets defaultTicker.
//
// Expected columns (by header name): date, open, high, low, close, volume,
// plus optional ticker (or stock) and stock_splits (or stock splits).
func LoadPrices(path, defaultTicker string, log *logger.Logger) ([]models.MPriceRecord, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open prices file '%s': %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read prices header from '%s': %w", path, err)
	}

	cols := columnIndex(header)
	required := []string{"date", "open", "high", "low", "close", "volume"}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, 0, fmt.Errorf("prices file '%s' has no %s column", path, name)
		}
	}
	tickerCol, hasTicker := pick(cols, "ticker", "stock")
	splitsCol, hasSplits := pick(cols, "stock_splits", "stock splits")

	var records []models.MPriceRecord
	skipped := 0

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			skipped++
			continue
		}

		date, dateErr := parsePriceDate(field(row, cols["date"]))
		open, e1 := strconv.ParseFloat(field(row, cols["open"]), 64)
		high, e2 := strconv.ParseFloat(field(row, cols["high"]), 64)
		low, e3 := strconv.ParseFloat(field(row, cols["low"]), 64)
		closePrice, e4 := strconv.ParseFloat(field(row, cols["close"]), 64)
		volume, e5 := strconv.ParseFloat(field(row, cols["volume"]), 64)

		if dateErr != nil || e1 != nil || e2 != nil || e3 != nil || e4 != nil || e5 != nil {
			skipped++
			continue
		}

		rec := models.MPriceRecord{
			Ticker: defaultTicker,
			Date:   date,
			Open:   open,
			High:   high,
			Low:    low,
			Close:  closePrice,
			Volume: int64(volume),
		}
		if hasTicker {
			if t := field(row, tickerCol); t != "" {
				rec.Ticker = t
			}
		}
		if hasSplits {
			if s, err := strconv.ParseFloat(field(row, splitsCol), 64); err == nil {
				rec.StockSplits = s
			}
		}
		if rec.Ticker == "" {
			skipped++
			continue
		}

		records = append(records, rec)
	}

	if skipped > 0 {
		log.Warning("Skipped %d malformed price rows in %s", skipped, path)
	}
	log.Info("Loaded %d price records from %s", len(records), path)
	return records, skipped, nil
}

// -----------------------------------------------------------------------------

func parsePriceDate(value string) (string, error) {
	if value == "" {
		return "", fmt.Errorf("empty date")
	}
	for _, layout := range []string{utils.DateLayout, time.RFC3339, "2006-01-02 15:04:05"} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.Format(utils.DateLayout), nil
		}
	}
	return "", fmt.Errorf("unrecognized date '%s'", value)
}

// -----------------------------------------------------------------------------

// SavePrices writes price records to CSV in the pipeline's input schema.
func SavePrices(path string, records []models.MPriceRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create prices file '%s': %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"ticker", "date", "open", "high", "low", "close", "volume", "stock_splits"}); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.Ticker,
			rec.Date,
			floatStr(rec.Open),
			floatStr(rec.High),
			floatStr(rec.Low),
			floatStr(rec.Close),
			strconv.FormatInt(rec.Volume, 10),
			floatStr(rec.StockSplits),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
