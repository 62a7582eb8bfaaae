package sentiment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentiment-observer/src/models"
)

func TestScoreRange(t *testing.T) {
	s := NewScorer()
	headlines := []string{
		"Great earnings, strong growth ahead",
		"Terrible quarter, awful losses and layoffs",
		"Company reports quarterly results",
		"Shares up after excellent guidance",
		"Fraud investigation is bad news for investors",
	}
	for _, h := range headlines {
		score := s.Score(h)
		assert.GreaterOrEqualf(t, score, -1.0, "headline %q", h)
		assert.LessOrEqualf(t, score, 1.0, "headline %q", h)
	}
}

func TestScoreNeutralOnEmpty(t *testing.T) {
	s := NewScorer()
	assert.Equal(t, 0.0, s.Score(""))
	assert.Equal(t, 0.0, s.Score("   "))
}

func TestScorePolarityDirection(t *testing.T) {
	s := NewScorer()
	assert.Greater(t, s.Score("Great earnings, strong growth ahead"), 0.0)
	assert.Less(t, s.Score("Terrible quarter, awful losses"), 0.0)
}

func TestScoreDeterministic(t *testing.T) {
	s := NewScorer()
	h := "Shares up after excellent guidance"
	assert.Equal(t, s.Score(h), s.Score(h))
}

func TestScoreAll(t *testing.T) {
	s := NewScorer()
	news := []models.MNewsRecord{
		{Headline: "Great earnings", Ticker: "AAPL", TradingDate: "2024-01-02", Timestamp: time.Now()},
		{Headline: "", Ticker: "AAPL", TradingDate: "2024-01-03", Timestamp: time.Now()},
	}

	scores := s.ScoreAll(news)
	require.Len(t, scores, 2)
	assert.Equal(t, 0, scores[0].RecordIndex)
	assert.Equal(t, "AAPL", scores[0].Ticker)
	assert.Equal(t, "2024-01-02", scores[0].TradingDate)
	assert.Greater(t, scores[0].Polarity, 0.0)
	assert.Equal(t, 0.0, scores[1].Polarity)
}
