package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentiment-observer/src/models"
)

// -----------------------------------------------------------------------------

func edaNews() []models.MNewsRecord {
	ts := func(hour int) time.Time {
		return time.Date(2024, 1, 3, hour, 0, 0, 0, time.UTC)
	}
	return []models.MNewsRecord{
		{Headline: "abcd", Publisher: "Reuters", Timestamp: ts(9), TradingDate: "2024-01-03"},
		{Headline: "abcdefgh", Publisher: "Reuters", Timestamp: ts(9), TradingDate: "2024-01-03"},
		{Headline: "ab", Publisher: "alice@news.example.com", Timestamp: ts(15), TradingDate: "2024-01-04"},
	}
}

// -----------------------------------------------------------------------------

func TestHeadlineLengthStats(t *testing.T) {
	stats := HeadlineLengthStats(edaNews())
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 2, stats.Min)
	assert.Equal(t, 8, stats.Max)
	assert.InDelta(t, (4.0+8.0+2.0)/3.0, stats.Mean, 1e-9)

	assert.Equal(t, models.MHeadlineLengthStats{}, HeadlineLengthStats(nil))
}

func TestHeadlineLengthStatsCountsRunes(t *testing.T) {
	// "Über" is 4 characters but 5 bytes in UTF-8.
	news := []models.MNewsRecord{
		{Headline: "Über", Publisher: "Reuters", Timestamp: time.Now(), TradingDate: "2024-01-03"},
	}

	stats := HeadlineLengthStats(news)
	assert.Equal(t, 4, stats.Min)
	assert.Equal(t, 4, stats.Max)
	assert.InDelta(t, 4.0, stats.Mean, 1e-9)
}

func TestTopPublishers(t *testing.T) {
	top := TopPublishers(edaNews(), 10)
	require.NotEmpty(t, top)
	assert.Equal(t, "Reuters", top[0].Publisher)
	assert.Equal(t, 2, top[0].Count)

	capped := TopPublishers(edaNews(), 1)
	assert.Len(t, capped, 1)
}

func TestPublisherDomains(t *testing.T) {
	domains := PublisherDomains(edaNews(), 10)
	require.Len(t, domains, 2)
	assert.Equal(t, "no-email", domains[0].Domain)
	assert.Equal(t, 2, domains[0].Count)
	assert.Equal(t, "news.example.com", domains[1].Domain)
}

func TestArticlesPerHour(t *testing.T) {
	hours := ArticlesPerHour(edaNews())
	assert.Equal(t, 2, hours[9])
	assert.Equal(t, 1, hours[15])
	assert.Equal(t, 0, hours[0])
}

func TestDailyArticleCounts(t *testing.T) {
	counts := DailyArticleCounts(edaNews(), 7)
	require.Len(t, counts, 2)
	assert.Equal(t, "2024-01-03", counts[0].Date)
	assert.Equal(t, 2, counts[0].Count)
	assert.InDelta(t, 2.0, counts[0].Rolling, 1e-9)
	assert.Equal(t, "2024-01-04", counts[1].Date)
	assert.InDelta(t, 1.5, counts[1].Rolling, 1e-9)

	assert.Nil(t, DailyArticleCounts(nil, 7))
}
