package scraper

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/LouYuanbo1/ytcrawler/internal/service/scraper/param"
	"github.com/stretchr/testify/require"
)

// fakeCrawler 用固定的DOM快照模拟浏览器会话
type fakeCrawler struct {
	// serveComments 按查询轮次返回评论元素的outerHTML列表
	serveComments func(call int) []string
	// pages 页面级选择器到匹配元素的映射
	pages map[string][]string

	navigated   string
	queryCalls  int
	scrollCalls int
	scripts     []string
	clicks      [][2]string
}

func (f *fakeCrawler) InitAndNavigate(url string) error {
	f.navigated = url
	return nil
}

func (f *fakeCrawler) ElementsHTML(selector string) ([]string, error) {
	if selector != selCommentThread {
		return f.pages[selector], nil
	}
	call := f.queryCalls
	f.queryCalls++
	if f.serveComments == nil {
		return nil, nil
	}
	return f.serveComments(call), nil
}

func (f *fakeCrawler) ClickByText(selector, substr string) (bool, error) {
	f.clicks = append(f.clicks, [2]string{selector, substr})
	// 同意弹窗不存在,排序控件存在
	return selector != selConsentButton, nil
}

func (f *fakeCrawler) ScrollBy(pixels int) error {
	f.scrollCalls++
	return nil
}

func (f *fakeCrawler) RunScript(js string) error {
	f.scripts = append(f.scripts, js)
	return nil
}

func (f *fakeCrawler) Close() {}

func newTestService(f *fakeCrawler) *scrapeService {
	return &scrapeService{
		chromeCrawler: f,
		localRand:     rand.New(rand.NewSource(1)),
	}
}

// collectParams 无休眠的采集参数,循环常量取默认值
func collectParams(maxComments int, sortBy string) *param.Collect {
	return &param.Collect{
		Url:              "https://www.youtube.com/watch?v=abcEFG01234",
		MaxComments:      maxComments,
		SortBy:           sortBy,
		ScrollLimit:      30,
		StallLimit:       3,
		BatchSize:        10,
		ScrollStepPixels: 800,
	}
}

func commentHTML(i int) string {
	return fmt.Sprintf(`<ytd-comment-thread-renderer>
		<a id="author-text">@user%d</a>
		<yt-formatted-string id="content-text">comment %d</yt-formatted-string>
	</ytd-comment-thread-renderer>`, i, i)
}

func nComments(n int) []string {
	htmls := make([]string, 0, n)
	for i := range n {
		htmls = append(htmls, commentHTML(i))
	}
	return htmls
}

func TestScrapeComments_CapRespected(t *testing.T) {
	f := &fakeCrawler{
		serveComments: func(call int) []string { return nComments(40) },
	}
	result, err := newTestService(f).ScrapeComments(context.Background(), collectParams(25, "top"))
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Comments, 25)
	require.Equal(t, 25, result.Metadata.TotalCollected)
	// 发现顺序保持不变
	require.Equal(t, "@user0", result.Comments[0].Author)
	require.Equal(t, "@user24", result.Comments[24].Author)
}

func TestScrapeComments_CapBelowAvailable(t *testing.T) {
	f := &fakeCrawler{
		serveComments: func(call int) []string { return nComments(7) },
	}
	result, err := newTestService(f).ScrapeComments(context.Background(), collectParams(25, "top"))
	require.NoError(t, err)
	require.Len(t, result.Comments, 7)
}

func TestScrapeComments_StallStopsAfterThree(t *testing.T) {
	f := &fakeCrawler{
		serveComments: func(call int) []string { return nComments(5) },
	}
	result, err := newTestService(f).ScrapeComments(context.Background(), collectParams(0, "top"))
	require.NoError(t, err)
	require.Len(t, result.Comments, 5)
	// 第1轮有增长,随后3轮零增长后终止
	require.Equal(t, 4, f.queryCalls)
}

func TestScrapeComments_StallOnEmptyDOM(t *testing.T) {
	f := &fakeCrawler{
		serveComments: func(call int) []string { return nil },
	}
	result, err := newTestService(f).ScrapeComments(context.Background(), collectParams(0, "top"))
	require.NoError(t, err)
	require.Empty(t, result.Comments)
	// 从未出现增长,3轮即停,上限与否无关
	require.Equal(t, 3, f.queryCalls)
}

func TestScrapeComments_ScrollCeiling(t *testing.T) {
	f := &fakeCrawler{
		// 每轮都有源源不断的新元素,且无上限
		serveComments: func(call int) []string { return nComments((call + 1) * 15) },
	}
	result, err := newTestService(f).ScrapeComments(context.Background(), collectParams(0, "top"))
	require.NoError(t, err)
	require.Equal(t, 30, f.scrollCalls)
	// 每轮最多提取BatchSize条
	require.Len(t, result.Comments, 300)
}

func TestScrapeComments_WindowCapsPerIteration(t *testing.T) {
	f := &fakeCrawler{
		// 一次性出现50个元素,远超单轮窗口
		serveComments: func(call int) []string { return nComments(50) },
	}
	result, err := newTestService(f).ScrapeComments(context.Background(), collectParams(0, "top"))
	require.NoError(t, err)
	// 1轮增长+3轮停滞,每轮不超过10条
	require.Equal(t, 4, f.queryCalls)
	require.Len(t, result.Comments, 40)
}

func TestScrapeComments_SkipsInvalidElements(t *testing.T) {
	invalid := `<ytd-comment-thread-renderer><a id="author-text">@ghost</a></ytd-comment-thread-renderer>`
	f := &fakeCrawler{
		serveComments: func(call int) []string {
			return []string{commentHTML(0), commentHTML(1), invalid}
		},
	}
	result, err := newTestService(f).ScrapeComments(context.Background(), collectParams(0, "top"))
	require.NoError(t, err)
	require.Len(t, result.Comments, 2)
}

func TestScrapeComments_InvalidURL(t *testing.T) {
	f := &fakeCrawler{}
	params := collectParams(10, "top")
	params.Url = "definitely not a video"
	result, err := newTestService(f).ScrapeComments(context.Background(), params)
	require.NoError(t, err)
	require.Nil(t, result)
	require.Empty(t, f.navigated)
}

func TestScrapeComments_NewestTriggersSortClicks(t *testing.T) {
	f := &fakeCrawler{
		serveComments: func(call int) []string { return nComments(3) },
	}
	_, err := newTestService(f).ScrapeComments(context.Background(), collectParams(0, "newest"))
	require.NoError(t, err)
	require.Contains(t, f.clicks, [2]string{selSortMenu, ""})
	require.Contains(t, f.clicks, [2]string{selSortOption, "newest first"})
}

func TestScrapeComments_TopSkipsSortClicks(t *testing.T) {
	f := &fakeCrawler{
		serveComments: func(call int) []string { return nComments(3) },
	}
	_, err := newTestService(f).ScrapeComments(context.Background(), collectParams(0, "top"))
	require.NoError(t, err)
	require.NotContains(t, f.clicks, [2]string{selSortOption, "newest first"})
}

func TestIndexResult_NoopWithoutES(t *testing.T) {
	f := &fakeCrawler{
		serveComments: func(call int) []string { return nComments(3) },
	}
	svc := newTestService(f)
	result, err := svc.ScrapeComments(context.Background(), collectParams(0, "top"))
	require.NoError(t, err)
	require.NoError(t, svc.IndexResult(context.Background(), result))
}

func TestGetVideoInfo_FieldsAndDefaults(t *testing.T) {
	f := &fakeCrawler{
		pages: map[string][]string{
			selVideoTitle:  {`<yt-formatted-string> 测试视频 </yt-formatted-string>`},
			selChannelName: {`<a>某频道</a>`},
		},
	}
	info, err := newTestService(f).GetVideoInfo(context.Background(), "abcEFG01234")
	require.NoError(t, err)
	require.NotNil(t, info)
	require.Equal(t, "abcEFG01234", info.VideoID)
	require.Equal(t, "https://www.youtube.com/watch?v=abcEFG01234", info.URL)
	require.Equal(t, "测试视频", info.Title)
	require.Equal(t, "某频道", info.Channel)
	// 缺失字段落到缺省值
	require.Equal(t, "Unknown Views", info.Views)
	require.Equal(t, "Unknown Date", info.UploadDate)
	require.Equal(t, "Unknown Likes", info.Likes)
}
