package scraper

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/LouYuanbo1/ytcrawler/internal/domain/entity"
	"github.com/LouYuanbo1/ytcrawler/internal/service/scraper/param"
)

func (s *scrapeService) ScrapeComments(ctx context.Context, params *param.Collect) (*entity.ScrapeResult, error) {
	info, err := s.GetVideoInfo(ctx, params.Url)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, nil
	}

	log.Printf("滚动到评论区...")
	_ = s.chromeCrawler.RunScript(scrollToCommentsJS)
	s.settle(params.StandardSleepSeconds, params.RandomDelaySeconds)

	if strings.EqualFold(params.SortBy, "newest") {
		s.sortByNewest()
	}

	var comments []entity.Comment
	lastSeenCount := 0
	consecutiveStalls := 0
	scrollCount := 0

	if params.MaxComments > 0 {
		log.Printf("开始采集评论 (上限: %d)...", params.MaxComments)
	} else {
		log.Printf("开始采集评论 (不限量)...")
	}

	for (params.MaxComments == 0 || len(comments) < params.MaxComments) &&
		scrollCount < params.ScrollLimit &&
		consecutiveStalls < params.StallLimit {

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		elements, err := s.chromeCrawler.ElementsHTML(selCommentThread)
		if err != nil {
			// 查询失败按零增长处理,交给停滞计数终止循环
			elements = nil
		}

		if len(elements) > lastSeenCount {
			log.Printf("已加载 %d 条评论元素", len(elements))
			lastSeenCount = len(elements)
			consecutiveStalls = 0
		} else {
			consecutiveStalls++
		}

		// 只处理还没见过的元素,单轮最多BatchSize条,限制每轮的提取耗时
		start := len(comments)
		end := min(len(elements), start+params.BatchSize)
		if params.MaxComments > 0 {
			end = min(end, params.MaxComments)
		}
		for i := start; i < end; i++ {
			comment, ok := parseComment(elements[i])
			if !ok {
				continue
			}
			comments = append(comments, comment)
			if params.MaxComments > 0 && len(comments) >= params.MaxComments {
				break
			}
		}

		if len(comments) > 0 && len(comments)%10 == 0 {
			log.Printf("已提取 %d 条评论", len(comments))
		}

		if params.MaxComments > 0 && len(comments) >= params.MaxComments {
			log.Printf("已达到评论数量上限 (%d)", params.MaxComments)
			break
		}

		_ = s.chromeCrawler.ScrollBy(params.ScrollStepPixels)
		s.settle(params.StandardSleepSeconds, params.RandomDelaySeconds)
		scrollCount++
	}

	if params.MaxComments > 0 && len(comments) > params.MaxComments {
		comments = comments[:params.MaxComments]
	}

	result := &entity.ScrapeResult{
		VideoInfo: info,
		Comments:  comments,
		Metadata: entity.ScrapeMetadata{
			TotalCollected: len(comments),
			SortOrder:      params.SortBy,
			ScrapeDate:     time.Now().Format("2006-01-02 15:04:05"),
		},
	}
	log.Printf("采集完成,共 %d 条评论", len(result.Comments))
	return result, nil
}
