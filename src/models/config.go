package models

// MConfig Structure
type MConfig struct {
	Name     string          `yaml:"name"`
	LogLevel string          `yaml:"log_level"`
	Input    MInputConfig    `yaml:"input"`
	Output   MOutputConfig   `yaml:"output"`
	Analysis MAnalysisConfig `yaml:"analysis"`
	Network  MNetworkConfig  `yaml:"network"`
	Fetch    MFetchConfig    `yaml:"fetch"`
}

type MInputConfig struct {
	NewsPath      string `yaml:"news_path"`
	PricesPath    string `yaml:"prices_path"`
	DefaultTicker string `yaml:"default_ticker"` // used when the price file has no ticker column
}

type MOutputConfig struct {
	AggregatesPath  string `yaml:"aggregates_path"`
	Format          string `yaml:"format"` // csv, json or parquet
	CleanNewsPath   string `yaml:"clean_news_path"`
	CleanPricesPath string `yaml:"clean_prices_path"`
}

type MAnalysisConfig struct {
	MissingDayPolicy string  `yaml:"missing_day_policy"` // "drop" or "neutral"
	SMAWindows       []int   `yaml:"sma_windows"`
	RSIPeriod        int     `yaml:"rsi_period"`
	MomentumPeriod   int     `yaml:"momentum_period"`
	BollingerPeriod  int     `yaml:"bollinger_period"`
	BollingerStdDev  float64 `yaml:"bollinger_std_dev"`
	RollingWindow    int     `yaml:"rolling_window"` // days, for the article-count rolling average
	TopPublishers    int     `yaml:"top_publishers"`
}

type MNetworkConfig struct {
	RequestTimeout int    `yaml:"timeout"`
	UserAgent      string `yaml:"user_agent"`
}

type MFetchConfig struct {
	Symbols   []string `yaml:"symbols"`
	RangeDays int      `yaml:"range_days"`
}
