package config

import (
	"encoding/json"
	"path/filepath"
)

func ParseConfig(byteConfig []byte) (*Config, error) {
	var cfg Config
	err := json.Unmarshal(byteConfig, &cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Chromedp.UserDataDir != "" {
		absPath, err := filepath.Abs(cfg.Chromedp.UserDataDir)
		if err != nil {
			return nil, err
		}
		cfg.Chromedp.UserDataDir = absPath
	}

	// 采集循环参数的默认值
	if cfg.Scraper.ScrollLimit == 0 {
		cfg.Scraper.ScrollLimit = 30
	}
	if cfg.Scraper.StallLimit == 0 {
		cfg.Scraper.StallLimit = 3
	}
	if cfg.Scraper.BatchSize == 0 {
		cfg.Scraper.BatchSize = 10
	}
	if cfg.Scraper.ScrollStepPixels == 0 {
		cfg.Scraper.ScrollStepPixels = 800
	}
	if cfg.Scraper.StandardSleepSeconds == 0 {
		cfg.Scraper.StandardSleepSeconds = 2
	}
	return &cfg, nil
}
