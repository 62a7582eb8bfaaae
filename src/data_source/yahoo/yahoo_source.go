package yahoo

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"sentiment-observer/src/logger"
	"sentiment-observer/src/models"
	"sentiment-observer/src/utils"
)

// -----------------------------------------------------------------------------

// Client downloads historical daily bars from the Yahoo Finance chart API.
// One-shot, synchronous: fetch, parse, return. No polling, no push.
type Client struct {
	Config     *models.MConfig
	Logger     *logger.Logger
	HttpClient *http.Client
}

// -----------------------------------------------------------------------------

func NewClient(cfg *models.MConfig, log *logger.Logger) *Client {
	return &Client{
		Config: cfg,
		Logger: log,
		HttpClient: &http.Client{
			Timeout: time.Duration(cfg.Network.RequestTimeout) * time.Second,
		},
	}
}

// -----------------------------------------------------------------------------

// FetchDaily fetches up to rangeDays of daily OHLCV bars for one symbol.
func (c *Client) FetchDaily(symbol string, rangeDays int) ([]models.MPriceRecord, error) {
	endpoint := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s", url.PathEscape(symbol))

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", symbol, err)
	}
	q := req.URL.Query()
	q.Set("interval", "1d")
	q.Set("range", fmt.Sprintf("%dd", rangeDays))
	q.Set("includePrePost", "false")
	req.URL.RawQuery = q.Encode()
	if c.Config.Network.UserAgent != "" {
		req.Header.Set("User-Agent", c.Config.Network.UserAgent)
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error for %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, symbol)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response for %s: %w", symbol, err)
	}

	return c.parseChartResponse(symbol, body)
}

// -----------------------------------------------------------------------------

// FetchAll fetches every configured symbol in sequence. Per-symbol failures
// are logged and skipped; the call fails only when nothing was fetched.
func (c *Client) FetchAll() ([]models.MPriceRecord, error) {
	symbols := c.Config.Fetch.Symbols
	if len(symbols) == 0 {
		return nil, fmt.Errorf("no fetch symbols configured")
	}

	var all []models.MPriceRecord
	fetched := 0
	var lastErr error

	for _, symbol := range symbols {
		bars, err := c.FetchDaily(symbol, c.Config.Fetch.RangeDays)
		if err != nil {
			c.Logger.Warning("Fetch failed for %s: %v", symbol, err)
			lastErr = err
			continue
		}
		all = append(all, bars...)
		fetched++
	}

	c.Logger.Info("Fetched %d/%d symbols", fetched, len(symbols))
	if fetched == 0 {
		return nil, fmt.Errorf("all fetches failed: %w", lastErr)
	}
	return all, nil
}

// -----------------------------------------------------------------------------

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol               string `json:"symbol"`
				ExchangeTimezoneName string `json:"exchangeTimezoneName"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					High   []*float64 `json:"high"`   // Use pointers to handle null
					Low    []*float64 `json:"low"`    // Use pointers to handle null
					Open   []*float64 `json:"open"`   // Use pointers to handle null
					Close  []*float64 `json:"close"`  // Use pointers to handle null
					Volume []*float64 `json:"volume"` // Use pointers to handle null
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// -----------------------------------------------------------------------------

func (c *Client) parseChartResponse(symbol string, data []byte) ([]models.MPriceRecord, error) {
	var resp chartResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("json unmarshal failed: %w", err)
	}

	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s - %s", resp.Chart.Error.Code, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("no result in response for %s", symbol)
	}

	result := resp.Chart.Result[0]
	if len(result.Timestamp) == 0 {
		return nil, fmt.Errorf("no timestamps in response for %s", symbol)
	}
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no quote data in response for %s", symbol)
	}
	quote := result.Indicators.Quote[0]

	loc := time.UTC
	if result.Meta.ExchangeTimezoneName != "" {
		if l, err := time.LoadLocation(result.Meta.ExchangeTimezoneName); err == nil {
			loc = l
		}
	}

	bars := make([]models.MPriceRecord, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		open := deref(quote.Open, i)
		high := deref(quote.High, i)
		low := deref(quote.Low, i)
		closePrice := deref(quote.Close, i)
		volume := deref(quote.Volume, i)

		// Null bars happen on half-days and data gaps; skip them.
		if closePrice == nil || open == nil || high == nil || low == nil {
			continue
		}

		bar := models.MPriceRecord{
			Ticker: symbol,
			Date:   time.Unix(ts, 0).In(loc).Format(utils.DateLayout),
			Open:   *open,
			High:   *high,
			Low:    *low,
			Close:  *closePrice,
		}
		if volume != nil {
			bar.Volume = int64(*volume)
		}
		bars = append(bars, bar)
	}

	return bars, nil
}

func deref(values []*float64, i int) *float64 {
	if i >= len(values) {
		return nil
	}
	return values[i]
}
