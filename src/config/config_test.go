package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------

const minimalYAML = `
name: test-run
input:
  news_path: data/news.csv
  prices_path: data/prices.csv
output:
  aggregates_path: out/aggregates.csv
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// -----------------------------------------------------------------------------

func TestNewConfigAppliesDefaults(t *testing.T) {
	cfg, err := NewConfig(writeConfig(t, minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, "csv", cfg.Output.Format)
	assert.Equal(t, "drop", cfg.Analysis.MissingDayPolicy)
	assert.Equal(t, []int{20, 50}, cfg.Analysis.SMAWindows)
	assert.Equal(t, 14, cfg.Analysis.RSIPeriod)
	assert.Equal(t, 20, cfg.Analysis.BollingerPeriod)
	assert.Equal(t, 2.0, cfg.Analysis.BollingerStdDev)
	assert.Equal(t, 7, cfg.Analysis.RollingWindow)
	assert.Equal(t, 30, cfg.Network.RequestTimeout)
}

func TestNewConfigMissingFile(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidateRejectsBadPolicy(t *testing.T) {
	_, err := NewConfig(writeConfig(t, minimalYAML+`
analysis:
  missing_day_policy: sometimes
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing day policy")
}

func TestValidateRejectsBadFormat(t *testing.T) {
	_, err := NewConfig(writeConfig(t, `
name: test-run
input:
  news_path: data/news.csv
  prices_path: data/prices.csv
output:
  aggregates_path: out/aggregates.xls
  format: xls
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output format")
}

func TestValidateRejectsMissingInputs(t *testing.T) {
	_, err := NewConfig(writeConfig(t, `
name: test-run
output:
  aggregates_path: out/aggregates.csv
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "news input path")
}

func TestValidateRejectsEmptyName(t *testing.T) {
	_, err := NewConfig(writeConfig(t, `
input:
  news_path: a.csv
  prices_path: b.csv
output:
  aggregates_path: c.csv
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name cannot be empty")
}

func TestSaveRoundTrip(t *testing.T) {
	cfg, err := NewConfig(writeConfig(t, minimalYAML))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, cfg.Save(path))

	reloaded, err := NewConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.MConfig, reloaded.MConfig)
}
