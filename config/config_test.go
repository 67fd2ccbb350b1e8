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
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "logger:\n  level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "https://api.iconomi.com/v1", cfg.Iconomi.BaseURL)
	assert.Equal(t, "EUR", cfg.Iconomi.Currency)
	assert.Equal(t, 15*time.Second, cfg.Iconomi.Timeout)
	assert.Equal(t, 500_000.0, cfg.Ranking.AUMMin)
	assert.Equal(t, 15, cfg.Ranking.TopN)
	assert.False(t, cfg.Telegram.Enabled())
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, `
ranking:
  aum_min: 1000000
  top_n: 5
  blacklist: [AAA, BBB]
telegram:
  bot_token: token
  chat_id: 42
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1_000_000.0, cfg.Ranking.AUMMin)
	assert.Equal(t, 5, cfg.Ranking.TopN)
	assert.Equal(t, []string{"AAA", "BBB"}, cfg.Ranking.Blacklist)
	assert.True(t, cfg.Telegram.Enabled())
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "ranking:\n  top_n: 5\n")
	t.Setenv("RANKING_TOP_N", "3")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Ranking.TopN)
}

func TestLoad_Invalid(t *testing.T) {
	path := writeConfig(t, "iconomi:\n  max_concurrency: 0\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
