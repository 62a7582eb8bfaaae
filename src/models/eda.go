package models

// MHeadlineLengthStats summarizes headline lengths in characters.
type MHeadlineLengthStats struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Min   int     `json:"min"`
	Max   int     `json:"max"`
}

// MPublisherCount is one row of the articles-per-publisher ranking.
type MPublisherCount struct {
	Publisher string `json:"publisher"`
	Count     int    `json:"count"`
}

// MDomainCount is one row of the publisher e-mail domain ranking.
// Publishers without an e-mail address fall under "no-email".
type MDomainCount struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}

// MDailyCount is the article count for one date, with the rolling average
// over the configured window and a spike flag (|z| > 2 against the full
// sample).
type MDailyCount struct {
	Date    string  `json:"date"`
	Count   int     `json:"count"`
	Rolling float64 `json:"rolling"`
	Spike   bool    `json:"spike"`
}
