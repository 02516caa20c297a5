package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `
keywords:
  - 人工智能
  - 宠物经济
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"人工智能", "宠物经济"}, cfg.Keywords)
	assert.Equal(t, DefaultLatency, cfg.Latency)
	assert.Equal(t, "markdown", cfg.Output.Format)
	assert.Equal(t, "reports", cfg.Output.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 1, cfg.Concurrency.QPS)
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := writeConfig(t, `
latency:
  trends: 10ms
  pain_points: 0s
  competitors: 0s
  opportunities: 1s
output:
  format: html
  dir: out
concurrency:
  qps: 5
  rpm: 120
db:
  host: localhost
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 10*time.Millisecond, cfg.Latency.Trends)
	assert.Equal(t, time.Duration(0), cfg.Latency.PainPoints)
	assert.Equal(t, time.Second, cfg.Latency.Opportunities)
	assert.Equal(t, "html", cfg.Output.Format)
	assert.Equal(t, 5, cfg.Concurrency.QPS)
	assert.Equal(t, 5432, cfg.DB.Port)
}

func TestLoadConfig_BadFormat(t *testing.T) {
	path := writeConfig(t, "output:\n  format: pdf\n")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
