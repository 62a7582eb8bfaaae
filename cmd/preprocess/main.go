package main

import (
	"flag"
	"fmt"
	"os"

	"sentiment-observer/src/config"
	"sentiment-observer/src/loader"
	"sentiment-observer/src/logger"
	"sentiment-observer/src/preprocess"
)

// -----------------------------------------------------------------------------

// Standalone cleaning step: read the raw news and price files, drop malformed
// rows, align news to the trading calendar, and write cleaned CSVs. Flags
// override the paths from config.
func main() {

	configPath := flag.String("config", "config/default.yaml", "path to config file")
	newsPath := flag.String("news", "", "raw news CSV (overrides config)")
	pricesPath := flag.String("prices", "", "raw prices CSV (overrides config)")
	outNews := flag.String("out-news", "", "cleaned news CSV (overrides config)")
	outPrices := flag.String("out-prices", "", "cleaned prices CSV (overrides config)")
	flag.Parse()

	config, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *newsPath != "" {
		config.Input.NewsPath = *newsPath
	}
	if *pricesPath != "" {
		config.Input.PricesPath = *pricesPath
	}
	if *outNews != "" {
		config.Output.CleanNewsPath = *outNews
	}
	if *outPrices != "" {
		config.Output.CleanPricesPath = *outPrices
	}

	appLogger := logger.NewLogger(config.LogLevel, config.Name+"-preprocess")

	if config.Output.CleanNewsPath == "" || config.Output.CleanPricesPath == "" {
		appLogger.Critical("Cleaned output paths not set (use -out-news/-out-prices or config)")
	}

	news, _, err := loader.LoadNews(config.Input.NewsPath, appLogger)
	if err != nil {
		appLogger.Critical("Failed to load news: %v", err)
	}
	prices, _, err := loader.LoadPrices(config.Input.PricesPath, config.Input.DefaultTicker, appLogger)
	if err != nil {
		appLogger.Critical("Failed to load prices: %v", err)
	}

	cleaned := preprocess.NewPreprocessor(appLogger).Run(news, prices)

	if err := loader.SaveNews(config.Output.CleanNewsPath, cleaned.News); err != nil {
		appLogger.Critical("Failed to write cleaned news: %v", err)
	}
	if err := loader.SavePrices(config.Output.CleanPricesPath, cleaned.Prices); err != nil {
		appLogger.Critical("Failed to write cleaned prices: %v", err)
	}

	appLogger.Info("Wrote %d news records to %s", len(cleaned.News), config.Output.CleanNewsPath)
	appLogger.Info("Wrote %d price records to %s", len(cleaned.Prices), config.Output.CleanPricesPath)
}
