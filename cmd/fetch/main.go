package main

import (
	"flag"
	"fmt"
	"os"

	"sentiment-observer/src/config"
	"sentiment-observer/src/data_source/yahoo"
	"sentiment-observer/src/loader"
	"sentiment-observer/src/logger"
)

// -----------------------------------------------------------------------------

// One-shot download of daily OHLCV bars for the configured symbols into the
// price CSV schema the pipeline reads.
func main() {

	configPath := flag.String("config", "config/default.yaml", "path to config file")
	outPath := flag.String("out", "", "output prices CSV (defaults to the configured input path)")
	flag.Parse()

	config, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.NewLogger(config.LogLevel, config.Name+"-fetch")

	path := *outPath
	if path == "" {
		path = config.Input.PricesPath
	}

	client := yahoo.NewClient(config.MConfig, appLogger)
	bars, err := client.FetchAll()
	if err != nil {
		appLogger.Critical("Fetch failed: %v", err)
	}

	if err := loader.SavePrices(path, bars); err != nil {
		appLogger.Critical("Failed to write prices: %v", err)
	}
	appLogger.Info("Wrote %d price records to %s", len(bars), path)
}
