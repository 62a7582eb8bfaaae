package report

import (
	"strings"

	"sentiment-observer/src/models"
)

// AggregateSaver writes the daily aggregate rows to a flat file.
// High-level (cmd) injects the implementation picked from config.
type AggregateSaver interface {
	Save(aggs []models.MDailyAggregate, path string) error
	Extension() string
}

// NewAggregateSaver creates an implementation by format (csv, json, parquet).
// Returns nil if the format is not supported.
func NewAggregateSaver(format string) AggregateSaver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVSaver{}
	case "json":
		return JSONSaver{}
	case "parquet":
		return ParquetSaver{}
	default:
		return nil
	}
}
