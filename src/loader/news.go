package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"sentiment-observer/src/logger"
	"sentiment-observer/src/models"
)

// -----------------------------------------------------------------------------

// newsTimeLayouts are tried in order when parsing the timestamp column.
var newsTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// -----------------------------------------------------------------------------

// LoadNews reads the news CSV into memory. Rows with a missing headline,
// missing ticker or unparseable timestamp are skipped and counted. A missing
// or unreadable file is an error.
//
// Expected columns (by header name): headline, publisher, date (or
// timestamp), stock (or ticker). Column order does not matter.
func LoadNews(path string, log *logger.Logger) ([]models.MNewsRecord, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open news file '%s': %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are handled as malformed below

	header, err := r.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read news header from '%s': %w", path, err)
	}

	cols := columnIndex(header)
	headlineCol, ok := pick(cols, "headline")
	if !ok {
		return nil, 0, fmt.Errorf("news file '%s' has no headline column", path)
	}
	publisherCol, _ := pick(cols, "publisher")
	timeCol, ok := pick(cols, "date", "timestamp")
	if !ok {
		return nil, 0, fmt.Errorf("news file '%s' has no date or timestamp column", path)
	}
	tickerCol, ok := pick(cols, "stock", "ticker")
	if !ok {
		return nil, 0, fmt.Errorf("news file '%s' has no stock or ticker column", path)
	}

	var records []models.MNewsRecord
	skipped := 0

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Row the csv reader could not parse; the reader has already
			// advanced past it.
			skipped++
			continue
		}

		headline := field(row, headlineCol)
		ticker := field(row, tickerCol)
		ts, tsErr := parseNewsTime(field(row, timeCol))

		if headline == "" || ticker == "" || tsErr != nil {
			skipped++
			continue
		}

		records = append(records, models.MNewsRecord{
			Headline:  headline,
			Publisher: field(row, publisherCol),
			Timestamp: ts,
			Ticker:    ticker,
		})
	}

	if skipped > 0 {
		log.Warning("Skipped %d malformed news rows in %s", skipped, path)
	}
	log.Info("Loaded %d news records from %s", len(records), path)
	return records, skipped, nil
}

// -----------------------------------------------------------------------------

func parseNewsTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range newsTimeLayouts {
		if ts, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp '%s'", value)
}

// -----------------------------------------------------------------------------

// SaveNews writes cleaned news records back to CSV, trading date included.
func SaveNews(path string, records []models.MNewsRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create news file '%s': %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"headline", "publisher", "date", "ticker", "trading_date"}); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.Headline,
			rec.Publisher,
			rec.Timestamp.Format(time.RFC3339),
			rec.Ticker,
			rec.TradingDate,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// -----------------------------------------------------------------------------

// columnIndex maps lower-cased header names to their positions.
func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

func pick(cols map[string]int, names ...string) (int, bool) {
	for _, name := range names {
		if idx, ok := cols[name]; ok {
			return idx, true
		}
	}
	return -1, false
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
