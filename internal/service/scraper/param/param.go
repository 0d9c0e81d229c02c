package param

import "github.com/LouYuanbo1/ytcrawler/internal/config"

// Collect 评论采集选项
// MaxComments为0表示不限量;ScrollLimit与StallLimit共同约束循环的最坏运行时间
type Collect struct {
	Url                  string `json:"url"`
	MaxComments          int    `json:"max_comments"`
	SortBy               string `json:"sort_by"`
	ScrollLimit          int    `json:"scroll_limit"`
	StallLimit           int    `json:"stall_limit"`
	BatchSize            int    `json:"batch_size"`
	ScrollStepPixels     int    `json:"scroll_step_pixels"`
	StandardSleepSeconds int    `json:"standard_sleep_seconds"`
	RandomDelaySeconds   int    `json:"random_delay_seconds"`
}

// FromConfig 用配置中的循环参数组装采集选项
func FromConfig(cfg *config.Config, url string, maxComments int, sortBy string) *Collect {
	return &Collect{
		Url:                  url,
		MaxComments:          maxComments,
		SortBy:               sortBy,
		ScrollLimit:          cfg.Scraper.ScrollLimit,
		StallLimit:           cfg.Scraper.StallLimit,
		BatchSize:            cfg.Scraper.BatchSize,
		ScrollStepPixels:     cfg.Scraper.ScrollStepPixels,
		StandardSleepSeconds: cfg.Scraper.StandardSleepSeconds,
		RandomDelaySeconds:   cfg.Scraper.RandomDelaySeconds,
	}
}
