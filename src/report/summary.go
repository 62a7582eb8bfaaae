package report

import (
	"fmt"
	"io"
	"sort"

	"sentiment-observer/src/models"
)

// -----------------------------------------------------------------------------

// Summary collects everything the text report prints. Field order mirrors
// print order.
type Summary struct {
	Correlations  []models.MCorrelationReport
	Indicators    []models.MIndicatorSnapshot
	HeadlineStats models.MHeadlineLengthStats
	Publishers    []models.MPublisherCount
	Domains       []models.MDomainCount
	Hours         [24]int
	DailyCounts   []models.MDailyCount
	DroppedNews   int
	DroppedPrices int
	ShiftedNews   int
}

// -----------------------------------------------------------------------------

// WriteSummary prints the human-readable run report. There is no
// machine-readable contract here; the aggregate file is the stable output.
func WriteSummary(w io.Writer, s Summary) {
	fmt.Fprintln(w, "=== Sentiment / return correlation ===")
	if len(s.Correlations) == 0 {
		fmt.Fprintln(w, "no joined samples (no overlapping ticker-days between news and prices)")
	}
	for _, r := range s.Correlations {
		if !r.Defined {
			fmt.Fprintf(w, "%-8s n=%-5d pearson=undefined (sample too small or zero variance, policy=%s)\n",
				r.Ticker, r.SampleSize, r.Policy)
			continue
		}
		if r.PValueDefined {
			fmt.Fprintf(w, "%-8s n=%-5d pearson=%+.4f p=%.4f (policy=%s)\n",
				r.Ticker, r.SampleSize, r.Coefficient, r.PValue, r.Policy)
		} else {
			fmt.Fprintf(w, "%-8s n=%-5d pearson=%+.4f (policy=%s)\n",
				r.Ticker, r.SampleSize, r.Coefficient, r.Policy)
		}
	}

	if len(s.Indicators) > 0 {
		fmt.Fprintln(w, "\n=== Technical indicators (latest bar) ===")
		for _, snap := range s.Indicators {
			fmt.Fprintf(w, "%-8s %s close=%.2f return=%+.4f", snap.Ticker, snap.Date, snap.Close, snap.DailyReturn)
			windows := make([]int, 0, len(snap.SMA))
			for window := range snap.SMA {
				windows = append(windows, window)
			}
			sort.Ints(windows)
			for _, window := range windows {
				fmt.Fprintf(w, " sma%d=%.2f", window, snap.SMA[window])
			}
			fmt.Fprintf(w, " rsi=%.1f macd=%+.3f/%+.3f bb=[%.2f, %.2f] mom=%+.2f volx=%.2f\n",
				snap.RSI, snap.MACD, snap.MACDSignal,
				snap.BollingerLower, snap.BollingerUpper,
				snap.Momentum, snap.VolumeAnomaly)
		}
	}

	fmt.Fprintln(w, "\n=== Dataset ===")
	fmt.Fprintf(w, "dropped news rows:   %d\n", s.DroppedNews)
	fmt.Fprintf(w, "dropped price rows:  %d\n", s.DroppedPrices)
	fmt.Fprintf(w, "news shifted to prior trading day: %d\n", s.ShiftedNews)

	h := s.HeadlineStats
	fmt.Fprintln(w, "\n=== Headline lengths (chars) ===")
	fmt.Fprintf(w, "count=%d mean=%.1f std=%.1f min=%d max=%d\n", h.Count, h.Mean, h.Std, h.Min, h.Max)

	if len(s.Publishers) > 0 {
		fmt.Fprintln(w, "\n=== Top publishers ===")
		for _, p := range s.Publishers {
			fmt.Fprintf(w, "%6d  %s\n", p.Count, p.Publisher)
		}
	}

	if len(s.Domains) > 0 {
		fmt.Fprintln(w, "\n=== Publisher e-mail domains ===")
		for _, d := range s.Domains {
			fmt.Fprintf(w, "%6d  %s\n", d.Count, d.Domain)
		}
	}

	fmt.Fprintln(w, "\n=== Articles per hour (UTC) ===")
	for hour, count := range s.Hours {
		if count > 0 {
			fmt.Fprintf(w, "%02d:00  %d\n", hour, count)
		}
	}

	if len(s.DailyCounts) > 0 {
		fmt.Fprintln(w, "\n=== Article volume spikes ===")
		spikes := 0
		for _, d := range s.DailyCounts {
			if d.Spike {
				fmt.Fprintf(w, "%s  %d articles (rolling avg %.1f)\n", d.Date, d.Count, d.Rolling)
				spikes++
			}
		}
		if spikes == 0 {
			fmt.Fprintln(w, "none")
		}
	}
}
