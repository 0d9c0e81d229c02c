package chrome

import (
	"fmt"
	"strings"

	"github.com/LouYuanbo1/ytcrawler/internal/config"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

type rodCrawler struct {
	browser *rod.Browser
	page    *rod.Page
	cfg     *config.Config
}

func InitRodCrawler(cfg *config.Config) (ChromeCrawler, error) {
	l := launcher.New().
		Headless(cfg.Rod.Headless).
		Leakless(cfg.Rod.Leakless)
	if cfg.Rod.Bin != "" {
		l = l.Bin(cfg.Rod.Bin)
	}
	if cfg.Rod.UserDataDir != "" {
		l = l.UserDataDir(cfg.Rod.UserDataDir)
	}
	if cfg.Rod.NoSandbox {
		l = l.NoSandbox(true)
	}
	if cfg.Rod.DisableBlinkFeatures != "" {
		l = l.Set("disable-blink-features", cfg.Rod.DisableBlinkFeatures)
	}
	if cfg.Rod.DisableDevShmUsage {
		l = l.Set("disable-dev-shm-usage")
	}
	if cfg.Rod.Incognito {
		l = l.Set("incognito")
	}
	l = l.Set("disable-notifications").Set("mute-audio")

	urlStr, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("启动浏览器失败: %w", err)
	}

	browser := rod.New().ControlURL(urlStr).MustConnect()
	return &rodCrawler{
		browser: browser,
		cfg:     cfg,
	}, nil
}

func (rc *rodCrawler) Close() {
	rc.browser.MustClose()
}

func (rc *rodCrawler) InitAndNavigate(url string) error {
	// stealth页面自带自动化痕迹隐藏
	page, err := stealth.Page(rc.browser)
	if err != nil {
		return fmt.Errorf("创建页面失败: %w", err)
	}
	rc.page = page
	if rc.cfg.Rod.UserAgent != "" {
		if err := rc.page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
			UserAgent: rc.cfg.Rod.UserAgent,
		}); err != nil {
			return fmt.Errorf("设置UserAgent失败: %w", err)
		}
	}
	if err := rc.page.Navigate(url); err != nil {
		return fmt.Errorf("导航失败: %w", err)
	}
	if err := rc.page.WaitLoad(); err != nil {
		return fmt.Errorf("等待页面加载失败: %w", err)
	}
	return nil
}

func (rc *rodCrawler) ElementsHTML(selector string) ([]string, error) {
	els, err := rc.page.Elements(selector)
	if err != nil {
		return nil, fmt.Errorf("查询元素失败 (%s): %w", selector, err)
	}
	htmls := make([]string, 0, len(els))
	for _, el := range els {
		html, err := el.HTML()
		if err != nil {
			continue
		}
		htmls = append(htmls, html)
	}
	return htmls, nil
}

func (rc *rodCrawler) ClickByText(selector, substr string) (bool, error) {
	els, err := rc.page.Elements(selector)
	if err != nil {
		return false, fmt.Errorf("查询元素失败 (%s): %w", selector, err)
	}
	needle := strings.ToLower(substr)
	for _, el := range els {
		text, err := el.Text()
		if err != nil {
			continue
		}
		if strings.Contains(strings.ToLower(text), needle) {
			if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
				return false, fmt.Errorf("按文本点击失败 (%s): %w", selector, err)
			}
			return true, nil
		}
	}
	return false, nil
}

func (rc *rodCrawler) ScrollBy(pixels int) error {
	_, err := rc.page.Eval(fmt.Sprintf(`() => window.scrollBy(0, %d)`, pixels))
	if err != nil {
		return fmt.Errorf("滚动失败: %w", err)
	}
	return nil
}

func (rc *rodCrawler) RunScript(js string) error {
	_, err := rc.page.Eval(`() => { ` + js + ` }`)
	if err != nil {
		return fmt.Errorf("执行脚本失败: %w", err)
	}
	return nil
}
