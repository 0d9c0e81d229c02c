package chrome

import (
	"context"
	"fmt"
	"time"

	"github.com/LouYuanbo1/ytcrawler/internal/config"
	"github.com/chromedp/chromedp"
)

// 隐藏navigator.webdriver,减少被站点识别为自动化的概率
const maskWebdriverJS = `Object.defineProperty(navigator, 'webdriver', {get: () => undefined});`

type chromedpCrawler struct {
	allocCtx      context.Context
	allocCtxFuc   context.CancelFunc
	pageCtx       context.Context
	pageCtxFuc    context.CancelFunc
	timeoutCtxFuc context.CancelFunc
}

func InitChromedpCrawler(ctx context.Context, cfg *config.Config) ChromeCrawler {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Chromedp.Headless),
		chromedp.Flag("disable-blink-features", cfg.Chromedp.DisableBlinkFeatures),
		chromedp.Flag("incognito", cfg.Chromedp.Incognito),
		chromedp.Flag("disable-dev-shm-usage", cfg.Chromedp.DisableDevShmUsage),
		chromedp.Flag("no-sandbox", cfg.Chromedp.NoSandbox),
		chromedp.Flag("mute-audio", cfg.Chromedp.MuteAudio),
		chromedp.Flag("disable-notifications", true),
		chromedp.Flag("start-maximized", true),
		chromedp.UserDataDir(cfg.Chromedp.UserDataDir),
		chromedp.UserAgent(cfg.Chromedp.UserAgent),
	)
	// ExecPath为空时使用默认的Chrome,指向msedge二进制即可驱动Edge
	if cfg.Chromedp.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.Chromedp.ExecPath))
	}
	timeoutCtx, cancelTimeout := context.WithTimeout(ctx, time.Duration(cfg.Chromedp.LifeTime)*time.Second)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(timeoutCtx, opts...)
	pageCtx, cancelPage := chromedp.NewContext(allocCtx)

	return &chromedpCrawler{
		allocCtx:      allocCtx,
		allocCtxFuc:   cancelAlloc,
		pageCtx:       pageCtx,
		pageCtxFuc:    cancelPage,
		timeoutCtxFuc: cancelTimeout,
	}
}

func (cc *chromedpCrawler) Close() {
	cc.pageCtxFuc()
	cc.allocCtxFuc()
	cc.timeoutCtxFuc()
}

func (cc *chromedpCrawler) InitAndNavigate(url string) error {
	return chromedp.Run(cc.pageCtx,
		chromedp.Navigate(url),
		chromedp.Evaluate(maskWebdriverJS, nil),
		chromedp.Sleep(3*time.Second),
	)
}

func (cc *chromedpCrawler) ElementsHTML(selector string) ([]string, error) {
	js := fmt.Sprintf(
		`Array.from(document.querySelectorAll(%q)).map(el => el.outerHTML)`,
		selector,
	)
	var htmls []string
	if err := chromedp.Run(cc.pageCtx, chromedp.Evaluate(js, &htmls)); err != nil {
		return nil, fmt.Errorf("查询元素失败 (%s): %w", selector, err)
	}
	return htmls, nil
}

func (cc *chromedpCrawler) ClickByText(selector, substr string) (bool, error) {
	js := fmt.Sprintf(`(() => {
		const needle = %q.toLowerCase();
		const els = document.querySelectorAll(%q);
		for (const el of els) {
			const text = (el.innerText || '').toLowerCase();
			if (text.includes(needle)) {
				el.click();
				return true;
			}
		}
		return false;
	})()`, substr, selector)
	var clicked bool
	if err := chromedp.Run(cc.pageCtx, chromedp.Evaluate(js, &clicked)); err != nil {
		return false, fmt.Errorf("按文本点击失败 (%s): %w", selector, err)
	}
	return clicked, nil
}

func (cc *chromedpCrawler) ScrollBy(pixels int) error {
	js := fmt.Sprintf(`window.scrollBy(0, %d);`, pixels)
	if err := chromedp.Run(cc.pageCtx, chromedp.Evaluate(js, nil)); err != nil {
		return fmt.Errorf("滚动失败: %w", err)
	}
	return nil
}

func (cc *chromedpCrawler) RunScript(js string) error {
	if err := chromedp.Run(cc.pageCtx, chromedp.Evaluate(js, nil)); err != nil {
		return fmt.Errorf("执行脚本失败: %w", err)
	}
	return nil
}
