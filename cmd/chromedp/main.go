package main

import (
	"bufio"
	"context"
	_ "embed"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/LouYuanbo1/ytcrawler/internal/config"
	"github.com/LouYuanbo1/ytcrawler/internal/domain/model"
	"github.com/LouYuanbo1/ytcrawler/internal/export"
	"github.com/LouYuanbo1/ytcrawler/internal/infra/crawler/chrome"
	"github.com/LouYuanbo1/ytcrawler/internal/infra/embedding"
	"github.com/LouYuanbo1/ytcrawler/internal/infra/persistence/es"
	service "github.com/LouYuanbo1/ytcrawler/internal/service/scraper"
	"github.com/LouYuanbo1/ytcrawler/internal/service/scraper/param"
	"github.com/LouYuanbo1/ytcrawler/internal/videoid"
)

//使用go:embed嵌入appconfig.json文件
//实际使用时注意与文件名的对应,仓库里保存的是样例配置,以实际为准

//go:embed appconfig/appconfig.json
var appConfig []byte

func main() {
	appcfg, err := config.ParseConfig(appConfig)
	if err != nil {
		log.Fatalf("解析配置失败: %v", err)
	}

	fmt.Println("\n=== YouTube评论采集 ===")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	videoURL := prompt(reader, "输入YouTube视频链接: ", "")
	maxComments := promptInt(reader, "最大采集评论数 (回车表示不限): ")
	sortBy := strings.ToLower(prompt(reader, "评论排序 (top/newest, 默认: top): ", "top"))
	format := strings.ToLower(prompt(reader, "输出格式 (csv/json/both, 默认: json): ", "json"))
	browserChoice := strings.ToLower(prompt(reader, "浏览器 (edge/chrome, 默认: edge): ", "edge"))

	// edge与chrome共用chromedp驱动,区别只在可执行文件路径
	if browserChoice != "chrome" {
		appcfg.Chromedp.ExecPath = appcfg.Chromedp.EdgeExecPath
	}

	if err := run(appcfg, videoURL, maxComments, sortBy, format); err != nil {
		log.Fatalf("采集失败: %v", err)
	}
}

func run(appcfg *config.Config, videoURL string, maxComments int, sortBy, format string) error {
	ctx := context.Background()

	// 浏览器会话全程独占,无论成败都在这里释放一次
	scrollCrawler := chrome.InitChromedpCrawler(ctx, appcfg)
	defer scrollCrawler.Close()

	var esCommentClient es.TypedEsClient[*model.CommentDoc]
	var embedder embedding.Embedder
	if appcfg.Elasticsearch.Enable {
		var err error
		esCommentClient, err = es.InitTypedEsClient[*model.CommentDoc](appcfg)
		if err != nil {
			return fmt.Errorf("初始化Elasticsearch客户端失败: %w", err)
		}
		if err := esCommentClient.CreateIndexWithMapping(ctx); err != nil {
			log.Printf("创建索引失败: %v", err)
		}
		if appcfg.Embedder.Enable {
			embedder, err = embedding.InitEmbedder(ctx, appcfg)
			if err != nil {
				return fmt.Errorf("初始化Embedder失败: %w", err)
			}
		}
	}

	scrapeService := service.InitScrapeService(scrollCrawler, esCommentClient, embedder)

	result, err := scrapeService.ScrapeComments(ctx, param.FromConfig(appcfg, videoURL, maxComments, sortBy))
	if err != nil {
		return err
	}
	if result == nil {
		fmt.Println("未能采集到数据")
		return nil
	}

	base := baseFilename(videoURL)
	switch format {
	case "csv":
		if err := export.WriteCSV(result, base+".csv"); err != nil {
			return err
		}
	case "both":
		if err := export.WriteAll(result, base+".json", base+".csv"); err != nil {
			return err
		}
	default:
		if err := export.WriteJSON(result, base+".json"); err != nil {
			return err
		}
	}

	if esCommentClient != nil {
		if err := scrapeService.IndexResult(ctx, result); err != nil {
			log.Printf("索引评论失败: %v", err)
		}
	}

	fmt.Printf("\n采集完成! 共收集 %d 条评论\n", len(result.Comments))
	return nil
}

// baseFilename 输出文件名由视频ID和时间戳组成
func baseFilename(videoURL string) string {
	id, err := videoid.Extract(videoURL)
	if err != nil {
		id = "video"
	}
	return fmt.Sprintf("yt_comments_%s_%s", id, time.Now().Format("20060102_1504"))
}

func prompt(reader *bufio.Reader, label, fallback string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback
	}
	return line
}

// promptInt 非数字或非正数一律按不限量处理
func promptInt(reader *bufio.Reader, label string) int {
	n, err := strconv.Atoi(prompt(reader, label, ""))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
