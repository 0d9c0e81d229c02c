package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{}`))
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.Equal(t, 30, cfg.Scraper.ScrollLimit)
	require.Equal(t, 3, cfg.Scraper.StallLimit)
	require.Equal(t, 10, cfg.Scraper.BatchSize)
	require.Equal(t, 800, cfg.Scraper.ScrollStepPixels)
	require.Equal(t, 2, cfg.Scraper.StandardSleepSeconds)
}

func TestParseConfig_Override(t *testing.T) {
	raw := []byte(`{
		"scraper": {"scroll_limit": 5, "stall_limit": 2, "batch_size": 4},
		"chromedp": {"headless": true, "edge_exec_path": "/usr/bin/msedge"},
		"elasticsearch": {"enable": true, "address": "https://localhost:9200"}
	}`)
	cfg, err := ParseConfig(raw)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Scraper.ScrollLimit)
	require.Equal(t, 2, cfg.Scraper.StallLimit)
	require.Equal(t, 4, cfg.Scraper.BatchSize)
	require.True(t, cfg.Chromedp.Headless)
	require.Equal(t, "/usr/bin/msedge", cfg.Chromedp.EdgeExecPath)
	require.True(t, cfg.Elasticsearch.Enable)
}

func TestParseConfig_BadJSON(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{`))
	require.Error(t, err)
	require.Nil(t, cfg)
}
