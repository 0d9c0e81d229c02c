package chrome

// ChromeCrawler 浏览器会话的抽象,采集服务只通过这个表面与浏览器交互
// 会话在进程内独占,Close只允许调用一次
type ChromeCrawler interface {
	// InitAndNavigate 打开页面并等待固定的稳定时间
	InitAndNavigate(url string) error
	// ElementsHTML 按DOM顺序返回所有匹配元素的outerHTML
	ElementsHTML(selector string) ([]string, error)
	// ClickByText 点击第一个可见文本包含substr(不区分大小写)的匹配元素
	// 返回是否发生了点击
	ClickByText(selector, substr string) (bool, error)
	// ScrollBy 向下滚动指定像素,触发懒加载
	ScrollBy(pixels int) error
	// RunScript 执行一段脚本,仅用于滚动定位和隐藏自动化痕迹
	RunScript(js string) error
	Close()
}
