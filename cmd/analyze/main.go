package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"sentiment-observer/src/analysis"
	"sentiment-observer/src/config"
	"sentiment-observer/src/loader"
	"sentiment-observer/src/logger"
	"sentiment-observer/src/models"
	"sentiment-observer/src/preprocess"
	"sentiment-observer/src/report"
	"sentiment-observer/src/sentiment"
)

// -----------------------------------------------------------------------------

func main() {

	// Parse command line flags
	configPath := flag.String("config", "config/default.yaml", "path to config file")
	flag.Parse()

	// Load config from YAML file
	config, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	appLogger := logger.NewLogger(config.LogLevel, config.Name)

	// 1. Load raw datasets
	news, skippedNews, err := loader.LoadNews(config.Input.NewsPath, appLogger)
	if err != nil {
		appLogger.Critical("Failed to load news: %v", err)
	}
	prices, skippedPrices, err := loader.LoadPrices(config.Input.PricesPath, config.Input.DefaultTicker, appLogger)
	if err != nil {
		appLogger.Critical("Failed to load prices: %v", err)
	}

	// 2. Clean and align to the trading calendar
	pre := preprocess.NewPreprocessor(appLogger)
	cleaned := pre.Run(news, prices)

	// 3. Score headline sentiment
	scorer := sentiment.NewScorer()
	scores := scorer.ScoreAll(cleaned.News)
	appLogger.Info("Scored %d headlines", len(scores))

	// 4. Technical indicators per ticker, surfaced in the summary
	calc := analysis.NewIndicatorCalculator(config.MConfig, appLogger)
	var snapshots []models.MIndicatorSnapshot
	for ticker, series := range calc.ComputeAll(cleaned.Prices) {
		snap, ok := analysis.LatestSnapshot(series)
		if !ok {
			continue
		}
		snapshots = append(snapshots, snap)
		appLogger.Info("%s: %d bars, last close %.2f, last return %+.4f",
			ticker, len(series.Dates), snap.Close, snap.DailyReturn)
	}
	sort.Slice(snapshots, func(i, j int) bool { return snapshots[i].Ticker < snapshots[j].Ticker })

	// 5. Aggregate per ticker-day and correlate
	correlator := analysis.NewCorrelator(config.MConfig, appLogger)
	aggregates := correlator.Aggregate(scores, cleaned.Prices)
	reports := correlator.Correlate(aggregates)

	// 6. Write the aggregate file
	saver := report.NewAggregateSaver(config.Output.Format)
	if saver == nil {
		appLogger.Critical("Unsupported output format '%s'", config.Output.Format)
	}
	if err := saver.Save(aggregates, config.Output.AggregatesPath); err != nil {
		appLogger.Critical("Failed to write aggregates: %v", err)
	}
	appLogger.Info("Wrote %d aggregates to %s (%s)", len(aggregates), config.Output.AggregatesPath, saver.Extension())

	// 7. Print the run summary
	report.WriteSummary(os.Stdout, report.Summary{
		Correlations:  reports,
		Indicators:    snapshots,
		HeadlineStats: analysis.HeadlineLengthStats(cleaned.News),
		Publishers:    analysis.TopPublishers(cleaned.News, config.Analysis.TopPublishers),
		Domains:       analysis.PublisherDomains(cleaned.News, config.Analysis.TopPublishers),
		Hours:         analysis.ArticlesPerHour(cleaned.News),
		DailyCounts:   analysis.DailyArticleCounts(cleaned.News, config.Analysis.RollingWindow),
		DroppedNews:   cleaned.DroppedNews + skippedNews,
		DroppedPrices: cleaned.DroppedPrices + skippedPrices,
		ShiftedNews:   cleaned.ShiftedNews,
	})
}
