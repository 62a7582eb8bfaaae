package analysis

import (
	"sort"
	"strings"
	"unicode/utf8"

	"sentiment-observer/src/analysis/core"
	"sentiment-observer/src/models"
)

// Exploratory statistics over the cleaned news dataset. These feed the
// report summary only; nothing downstream depends on them.

// -----------------------------------------------------------------------------

// HeadlineLengthStats summarizes headline lengths in characters (runes, not
// bytes, so non-ASCII headlines are not overcounted).
func HeadlineLengthStats(news []models.MNewsRecord) models.MHeadlineLengthStats {
	if len(news) == 0 {
		return models.MHeadlineLengthStats{}
	}

	lengths := make([]float64, len(news))
	first := utf8.RuneCountInString(news[0].Headline)
	minLen, maxLen := first, first
	for i, rec := range news {
		n := utf8.RuneCountInString(rec.Headline)
		lengths[i] = float64(n)
		if n < minLen {
			minLen = n
		}
		if n > maxLen {
			maxLen = n
		}
	}

	mean, std := core.CalculateMeanStd(lengths)
	return models.MHeadlineLengthStats{
		Count: len(news),
		Mean:  mean,
		Std:   std,
		Min:   minLen,
		Max:   maxLen,
	}
}

// -----------------------------------------------------------------------------

// TopPublishers ranks publishers by article count, descending, capped at n.
func TopPublishers(news []models.MNewsRecord, n int) []models.MPublisherCount {
	counts := make(map[string]int)
	for _, rec := range news {
		if rec.Publisher != "" {
			counts[rec.Publisher]++
		}
	}
	return rankCounts(counts, n, func(name string, count int) models.MPublisherCount {
		return models.MPublisherCount{Publisher: name, Count: count}
	})
}

// -----------------------------------------------------------------------------

// PublisherDomains ranks publisher e-mail domains, descending, capped at n.
// Publishers that are not e-mail addresses count under "no-email".
func PublisherDomains(news []models.MNewsRecord, n int) []models.MDomainCount {
	counts := make(map[string]int)
	for _, rec := range news {
		domain := "no-email"
		if at := strings.LastIndex(rec.Publisher, "@"); at >= 0 && at < len(rec.Publisher)-1 {
			domain = strings.ToLower(rec.Publisher[at+1:])
		}
		counts[domain]++
	}
	return rankCounts(counts, n, func(name string, count int) models.MDomainCount {
		return models.MDomainCount{Domain: name, Count: count}
	})
}

// -----------------------------------------------------------------------------

// ArticlesPerHour buckets articles by UTC publication hour.
func ArticlesPerHour(news []models.MNewsRecord) [24]int {
	var hours [24]int
	for _, rec := range news {
		hours[rec.Timestamp.UTC().Hour()]++
	}
	return hours
}

// -----------------------------------------------------------------------------

// DailyArticleCounts counts articles per trading date, with a trailing
// rolling average over window days and a spike flag for days more than two
// standard deviations above the full-sample mean.
func DailyArticleCounts(news []models.MNewsRecord, window int) []models.MDailyCount {
	counts := make(map[string]int)
	for _, rec := range news {
		if rec.TradingDate != "" {
			counts[rec.TradingDate]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	dates := make([]string, 0, len(counts))
	for date := range counts {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	values := make([]float64, len(dates))
	for i, date := range dates {
		values[i] = float64(counts[date])
	}
	mean, std := core.CalculateMeanStd(values)

	result := make([]models.MDailyCount, len(dates))
	for i, date := range dates {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		rolling, _ := core.CalculateMeanStd(values[start : i+1])

		result[i] = models.MDailyCount{
			Date:    date,
			Count:   counts[date],
			Rolling: rolling,
			Spike:   core.CalculateZScore(values[i], mean, std) > 2,
		}
	}
	return result
}

// -----------------------------------------------------------------------------

func rankCounts[T any](counts map[string]int, n int, build func(string, int) T) []T {
	type entry struct {
		name  string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, entry{name, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})

	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	result := make([]T, len(entries))
	for i, e := range entries {
		result[i] = build(e.name, e.count)
	}
	return result
}
