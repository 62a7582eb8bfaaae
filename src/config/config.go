package config

import (
	"fmt"
	"os"

	"sentiment-observer/src/models"

	"gopkg.in/yaml.v3"
)

// -----------------------------------------------------------------------------

// Config wraps models.MConfig and provides business logic methods
type Config struct {
	*models.MConfig
}

// -----------------------------------------------------------------------------

// NewConfig creates a new MConfig instance from YAML file
func NewConfig(configPath string) (*Config, error) {
	// 1. Read the YAML file content
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", configPath, err)
	}

	// 2. Unmarshal data into the models struct
	var modelConfig models.MConfig
	if err := yaml.Unmarshal(data, &modelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config from YAML: %w", err)
	}

	config := &Config{MConfig: &modelConfig}
	config.applyDefaults()

	// 3. Validate the loaded configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// -----------------------------------------------------------------------------

// applyDefaults fills optional settings so a minimal config file works.
func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = "csv"
	}
	if c.Analysis.MissingDayPolicy == "" {
		c.Analysis.MissingDayPolicy = "drop"
	}
	if len(c.Analysis.SMAWindows) == 0 {
		c.Analysis.SMAWindows = []int{20, 50}
	}
	if c.Analysis.RSIPeriod == 0 {
		c.Analysis.RSIPeriod = 14
	}
	if c.Analysis.MomentumPeriod == 0 {
		c.Analysis.MomentumPeriod = 10
	}
	if c.Analysis.BollingerPeriod == 0 {
		c.Analysis.BollingerPeriod = 20
	}
	if c.Analysis.BollingerStdDev == 0 {
		c.Analysis.BollingerStdDev = 2.0
	}
	if c.Analysis.RollingWindow == 0 {
		c.Analysis.RollingWindow = 7
	}
	if c.Analysis.TopPublishers == 0 {
		c.Analysis.TopPublishers = 10
	}
	if c.Network.RequestTimeout == 0 {
		c.Network.RequestTimeout = 30
	}
	if c.Fetch.RangeDays == 0 {
		c.Fetch.RangeDays = 365
	}
}

// -----------------------------------------------------------------------------

// Validate performs basic configuration validation
func (c *Config) Validate() error {
	// Validate App configuration (Flattened)
	if c.Name == "" {
		return fmt.Errorf("application name cannot be empty")
	}

	// Validate Input configuration
	if c.Input.NewsPath == "" {
		return fmt.Errorf("news input path cannot be empty")
	}
	if c.Input.PricesPath == "" {
		return fmt.Errorf("prices input path cannot be empty")
	}

	// Validate Output configuration
	switch c.Output.Format {
	case "csv", "json", "parquet":
	default:
		return fmt.Errorf("invalid output format '%s' (use csv, json or parquet)", c.Output.Format)
	}
	if c.Output.AggregatesPath == "" {
		return fmt.Errorf("aggregates output path cannot be empty")
	}

	// Validate Analysis configuration
	switch c.Analysis.MissingDayPolicy {
	case "drop", "neutral":
	default:
		return fmt.Errorf("invalid missing day policy '%s' (use drop or neutral)", c.Analysis.MissingDayPolicy)
	}
	for i, w := range c.Analysis.SMAWindows {
		if w <= 0 {
			return fmt.Errorf("sma window %d must be greater than 0", i)
		}
	}
	if c.Analysis.RSIPeriod <= 0 {
		return fmt.Errorf("rsi period must be greater than 0")
	}
	if c.Analysis.RollingWindow <= 0 {
		return fmt.Errorf("rolling window must be greater than 0")
	}

	// Validate Network configuration
	if c.Network.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be greater than 0")
	}

	// Validate Fetch configuration
	if c.Fetch.RangeDays <= 0 {
		return fmt.Errorf("fetch range days must be greater than 0")
	}

	return nil
}

// -----------------------------------------------------------------------------

// Save persists the current configuration to the specified YAML file path
func (c *Config) Save(configPath string) error {
	// 1. Marshal the struct to YAML
	data, err := yaml.Marshal(c.MConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// 2. Write to file (0644 permissions)
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config to file '%s': %w", configPath, err)
	}

	return nil
}
