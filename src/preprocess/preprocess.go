package preprocess

import (
	"sort"
	"strings"

	"sentiment-observer/src/logger"
	"sentiment-observer/src/models"
	"sentiment-observer/src/utils"
)

// -----------------------------------------------------------------------------

// Preprocessor cleans raw records and aligns news to the trading calendar.
type Preprocessor struct {
	Logger    *logger.Logger
	calendars map[string]*utils.TradingCalendar
}

// Result carries the cleaned collections plus the drop/shift counters.
// Drops are reported, never fatal.
type Result struct {
	News          []models.MNewsRecord
	Prices        []models.MPriceRecord
	DroppedNews   int
	DroppedPrices int
	ShiftedNews   int
}

// -----------------------------------------------------------------------------

func NewPreprocessor(log *logger.Logger) *Preprocessor {
	return &Preprocessor{
		Logger:    log,
		calendars: make(map[string]*utils.TradingCalendar),
	}
}

// -----------------------------------------------------------------------------

// Run produces cleaned, calendar-aligned copies of the raw collections.
// News on non-trading days is rolled back to the nearest prior trading day.
func (p *Preprocessor) Run(news []models.MNewsRecord, prices []models.MPriceRecord) Result {
	res := Result{}

	for _, rec := range news {
		rec.Headline = cleanText(rec.Headline)
		rec.Publisher = cleanText(rec.Publisher)
		rec.Ticker = strings.ToUpper(strings.TrimSpace(rec.Ticker))

		if rec.Headline == "" || rec.Ticker == "" || rec.Timestamp.IsZero() {
			res.DroppedNews++
			continue
		}

		date, shifted := p.calendar(rec.Ticker).AlignTradingDate(rec.Timestamp)
		if shifted {
			res.ShiftedNews++
		}
		rec.TradingDate = date
		res.News = append(res.News, rec)
	}

	for _, rec := range prices {
		rec.Ticker = strings.ToUpper(strings.TrimSpace(rec.Ticker))
		if rec.Ticker == "" || rec.Date == "" || rec.Close <= 0 {
			res.DroppedPrices++
			continue
		}
		res.Prices = append(res.Prices, rec)
	}

	// Stable order: ticker, then date. Downstream grouping and the report
	// output rely on this.
	sort.Slice(res.Prices, func(i, j int) bool {
		if res.Prices[i].Ticker != res.Prices[j].Ticker {
			return res.Prices[i].Ticker < res.Prices[j].Ticker
		}
		return res.Prices[i].Date < res.Prices[j].Date
	})
	sort.SliceStable(res.News, func(i, j int) bool {
		if res.News[i].Ticker != res.News[j].Ticker {
			return res.News[i].Ticker < res.News[j].Ticker
		}
		return res.News[i].TradingDate < res.News[j].TradingDate
	})

	p.Logger.Info("Preprocessed %d news records (%d dropped, %d shifted to prior trading day)",
		len(res.News), res.DroppedNews, res.ShiftedNews)
	p.Logger.Info("Preprocessed %d price records (%d dropped)", len(res.Prices), res.DroppedPrices)

	return res
}

// -----------------------------------------------------------------------------

func (p *Preprocessor) calendar(ticker string) *utils.TradingCalendar {
	if cal, ok := p.calendars[ticker]; ok {
		return cal
	}
	cal := utils.GetCalendar(ticker)
	p.calendars[ticker] = cal
	return cal
}

// -----------------------------------------------------------------------------

// cleanText trims and collapses internal whitespace.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
