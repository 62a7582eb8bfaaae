package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"

	"sentiment-observer/src/models"
)

// -----------------------------------------------------------------------------

// Scorer maps headline text to a polarity score in [-1, 1] using the VADER
// lexicon. Scoring is deterministic and keeps no state between calls; empty
// or blank input scores neutral (0).
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// -----------------------------------------------------------------------------

func NewScorer() *Scorer {
	return &Scorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// -----------------------------------------------------------------------------

// Score returns the compound polarity for one headline.
func (s *Scorer) Score(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	polarity := s.analyzer.PolarityScores(text).Compound
	// The compound score is normalized to [-1, 1] by the lexicon; clamp to
	// keep the contract independent of lexicon internals.
	if polarity > 1 {
		polarity = 1
	} else if polarity < -1 {
		polarity = -1
	}
	return polarity
}

// -----------------------------------------------------------------------------

// ScoreAll scores cleaned news records. Records are expected to carry a
// trading date (i.e. to have passed through the preprocessor).
func (s *Scorer) ScoreAll(news []models.MNewsRecord) []models.MSentimentScore {
	scores := make([]models.MSentimentScore, 0, len(news))
	for i, rec := range news {
		scores = append(scores, models.MSentimentScore{
			RecordIndex: i,
			Ticker:      rec.Ticker,
			TradingDate: rec.TradingDate,
			Polarity:    s.Score(rec.Headline),
		})
	}
	return scores
}
