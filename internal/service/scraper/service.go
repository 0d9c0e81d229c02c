package scraper

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/LouYuanbo1/ytcrawler/internal/domain/entity"
	"github.com/LouYuanbo1/ytcrawler/internal/domain/model"
	"github.com/LouYuanbo1/ytcrawler/internal/infra/crawler/chrome"
	"github.com/LouYuanbo1/ytcrawler/internal/infra/embedding"
	"github.com/LouYuanbo1/ytcrawler/internal/infra/persistence/es"
	"github.com/LouYuanbo1/ytcrawler/internal/service/scraper/param"
	"github.com/LouYuanbo1/ytcrawler/internal/videoid"
)

// ScrapeService 视频信息抓取与评论采集
type ScrapeService interface {
	// GetVideoInfo 导航到视频页并提取基础信息
	// 无法解析视频ID时返回(nil, nil),调用方按"无结果"处理
	GetVideoInfo(ctx context.Context, rawURL string) (*entity.VideoInfo, error)
	// ScrapeComments 执行完整采集:视频信息 + 增量评论收集
	ScrapeComments(ctx context.Context, params *param.Collect) (*entity.ScrapeResult, error)
	// IndexResult 将采集结果索引到Elasticsearch,未配置ES时为空操作
	IndexResult(ctx context.Context, result *entity.ScrapeResult) error
}

type scrapeService struct {
	chromeCrawler chrome.ChromeCrawler
	typedEsClient es.TypedEsClient[*model.CommentDoc]
	embedder      embedding.Embedder
	localRand     *rand.Rand
}

// InitScrapeService 组装采集服务
// typedEsClient和embedder可以为nil,对应的能力会被跳过
func InitScrapeService(
	chromeCrawler chrome.ChromeCrawler,
	typedEsClient es.TypedEsClient[*model.CommentDoc],
	embedder embedding.Embedder,
) ScrapeService {
	return &scrapeService{
		chromeCrawler: chromeCrawler,
		typedEsClient: typedEsClient,
		embedder:      embedder,
		localRand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *scrapeService) GetVideoInfo(ctx context.Context, rawURL string) (*entity.VideoInfo, error) {
	id, err := videoid.Extract(rawURL)
	if err != nil {
		log.Printf("无效的YouTube链接: %s", rawURL)
		return nil, nil
	}

	url := videoid.WatchURL(id)
	log.Printf("初始化浏览器并导航到: %s", url)
	if err := s.chromeCrawler.InitAndNavigate(url); err != nil {
		return nil, err
	}

	s.dismissConsent()

	info := &entity.VideoInfo{
		VideoID:    id,
		Title:      s.textOr(selVideoTitle, entity.UnknownTitle),
		Channel:    s.textOr(selChannelName, entity.UnknownChannel),
		Views:      s.textOr(selViewCount, entity.UnknownViews),
		UploadDate: s.textOr(selUploadDate, entity.UnknownDate),
		Likes:      s.textOr(selLikeCount, entity.UnknownLikes),
		URL:        url,
	}
	log.Printf("视频信息提取完成: '%s' by %s", info.Title, info.Channel)
	return info, nil
}

// textOr 页面级字段查找,无匹配或查找失败时返回缺省值
// 渲染慢的字段会静默落到缺省值,可选字段的缺失不允许中断运行
func (s *scrapeService) textOr(selector, fallback string) string {
	htmls, err := s.chromeCrawler.ElementsHTML(selector)
	if err != nil || len(htmls) == 0 {
		return fallback
	}
	text, ok := elementText(htmls[0])
	if !ok {
		return fallback
	}
	return text
}

// dismissConsent 关闭cookie同意弹窗,没有弹窗不算错误
func (s *scrapeService) dismissConsent() {
	for _, phrase := range []string{"accept", "agree"} {
		clicked, err := s.chromeCrawler.ClickByText(selConsentButton, phrase)
		if err != nil {
			return
		}
		if clicked {
			time.Sleep(1 * time.Second)
			return
		}
	}
}

// sortByNewest 把评论排序切换为最新优先,所有失败都静默忽略
func (s *scrapeService) sortByNewest() {
	clicked, err := s.chromeCrawler.ClickByText(selSortMenu, "")
	if err != nil || !clicked {
		return
	}
	time.Sleep(1 * time.Second)

	clicked, err = s.chromeCrawler.ClickByText(selSortOption, "newest first")
	if err != nil || !clicked {
		return
	}
	time.Sleep(2 * time.Second)
	log.Printf("评论排序已切换为: Newest first")
}

// settle 固定等待加随机延迟,给懒加载留出渲染时间
func (s *scrapeService) settle(standardSeconds, randomSeconds int) {
	d := time.Duration(standardSeconds) * time.Second
	if randomSeconds > 0 {
		d += time.Duration(s.localRand.Float64() * float64(randomSeconds) * float64(time.Second))
	}
	time.Sleep(d)
}
