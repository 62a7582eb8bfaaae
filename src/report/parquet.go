package report

import (
	"github.com/parquet-go/parquet-go"

	"sentiment-observer/src/models"
)

// ParquetSaver writes aggregates as Parquet.
type ParquetSaver struct{}

func (ParquetSaver) Extension() string { return "parquet" }

func (ParquetSaver) Save(aggs []models.MDailyAggregate, path string) error {
	return parquet.WriteFile(path, aggs)
}
