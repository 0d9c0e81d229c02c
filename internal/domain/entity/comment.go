package entity

import (
	"fmt"

	"github.com/LouYuanbo1/ytcrawler/internal/domain/model"
)

// Comment 单条评论记录,仅当作者与正文都非空时才会被采集
type Comment struct {
	Author    string `json:"author"`
	Text      string `json:"text"`
	Likes     string `json:"likes"`
	Timestamp string `json:"timestamp"`
}

// ScrapeMetadata 一次采集运行的元信息
type ScrapeMetadata struct {
	TotalCollected int    `json:"total_comments_collected"`
	SortOrder      string `json:"sort_order"`
	ScrapeDate     string `json:"scrape_date"`
}

// ScrapeResult 完整的采集结果,采集循环结束后不再变化
// 评论顺序为发现顺序,不做重排
type ScrapeResult struct {
	VideoInfo *VideoInfo     `json:"video_info"`
	Comments  []Comment      `json:"comments"`
	Metadata  ScrapeMetadata `json:"metadata"`
}

// ToDocument 将评论转换为可索引的文档
// seq是该评论在采集序列中的下标,与视频ID一起构成文档ID
func (c *Comment) ToDocument(videoID string, seq int) *model.CommentDoc {
	return &model.CommentDoc{
		ID:        fmt.Sprintf("%s:%d", videoID, seq),
		VideoID:   videoID,
		Author:    c.Author,
		Text:      c.Text,
		Likes:     c.Likes,
		Timestamp: c.Timestamp,
	}
}
