package utils

import (
	"strings"
	"time"

	"github.com/scmhub/calendar"
)

// DateLayout is the canonical trading date format used across the pipeline.
const DateLayout = "2006-01-02"

// -----------------------------------------------------------------------------

// micBySuffix maps ticker suffixes to MIC codes (ISO 10383).
// See scmhub/calendar for the supported MICs.
var micBySuffix = map[string]string{
	".L":  "xlon",
	".PA": "xpar",
	".DE": "xfra",
	".AS": "xams",
	".BR": "xbru",
	".MI": "xmil",
	".MC": "xmad",
	".ST": "xsto",
	".CO": "xcse",
	".HE": "xhel",
	".VI": "xwbo",
	".SW": "xswx",
	".TO": "xtse",
	".V":  "xtsx",
	".T":  "xtks",
	".HK": "xhkg",
	".AX": "xasx",
	".KS": "xkrx",
	".TW": "xtai",
	".SS": "xshg",
	".SZ": "xshe",
}

// -----------------------------------------------------------------------------

// TradingCalendar resolves trading days for one exchange using scmhub/calendar.
type TradingCalendar struct {
	Calendar *calendar.Calendar
	Fallback bool
	Timezone *time.Location
}

// -----------------------------------------------------------------------------

// GetCalendar returns the calendar for a ticker, picked by suffix.
// Bare symbols default to NYSE.
func GetCalendar(ticker string) *TradingCalendar {
	mic := "xnys"
	for suffix, m := range micBySuffix {
		if strings.HasSuffix(ticker, suffix) {
			mic = m
			break
		}
	}

	cal := calendar.GetCalendar(mic)
	if cal == nil {
		cal = calendar.GetCalendar("xnys")
	}

	if cal == nil {
		// Simple fallback: Mon-Fri in New York time.
		nyLoc, _ := time.LoadLocation("America/New_York")
		if nyLoc == nil {
			nyLoc = time.UTC
		}
		return &TradingCalendar{Fallback: true, Timezone: nyLoc}
	}

	return &TradingCalendar{Calendar: cal, Fallback: false, Timezone: cal.Loc}
}

// -----------------------------------------------------------------------------

func (tc *TradingCalendar) IsTradingDay(date time.Time) bool {
	if tc.Timezone != nil {
		date = date.In(tc.Timezone)
	}

	if tc.Fallback {
		weekday := date.Weekday()
		return weekday != time.Saturday && weekday != time.Sunday
	}
	return tc.Calendar.IsBusinessDay(date)
}

// -----------------------------------------------------------------------------

// AlignTradingDate converts a timestamp to the exchange timezone, truncates
// it to a date and rolls non-trading days back to the nearest prior trading
// day. The scan is capped at 10 calendar days; if no trading day is found
// within the cap the truncated date is returned unshifted with shifted=false.
func (tc *TradingCalendar) AlignTradingDate(t time.Time) (date string, shifted bool) {
	if tc.Timezone != nil {
		t = t.In(tc.Timezone)
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())

	if tc.IsTradingDay(day) {
		return day.Format(DateLayout), false
	}

	for i := 0; i < 10; i++ {
		day = day.AddDate(0, 0, -1)
		if tc.IsTradingDay(day) {
			return day.Format(DateLayout), true
		}
	}
	return t.Format(DateLayout), false
}
