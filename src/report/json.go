package report

import (
	"encoding/json"
	"os"

	"sentiment-observer/src/models"
)

// JSONSaver writes aggregates as a JSON array (indented).
type JSONSaver struct{}

func (JSONSaver) Extension() string { return "json" }

func (JSONSaver) Save(aggs []models.MDailyAggregate, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(aggs)
}
