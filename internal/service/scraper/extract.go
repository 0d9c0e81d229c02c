package scraper

import (
	"strings"

	"github.com/LouYuanbo1/ytcrawler/internal/domain/entity"
	"github.com/PuerkitoBio/goquery"
)

// firstText 在一段元素HTML里查找selector的第一个匹配
// 返回裁剪后的文本和是否命中,缺省值由调用方决定
func firstText(elementHTML, selector string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(elementHTML))
	if err != nil {
		return "", false
	}
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(sel.Text()), true
}

// elementText 取一段元素HTML自身的全部可见文本
func elementText(elementHTML string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(elementHTML))
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(doc.Text()), true
}

// parseComment 从单个评论元素的HTML中提取一条记录
// 作者或正文缺失时整条丢弃,这是唯一的有效性约束
func parseComment(elementHTML string) (entity.Comment, bool) {
	author, _ := firstText(elementHTML, selCommentAuthor)
	text, _ := firstText(elementHTML, selCommentText)
	if author == "" || text == "" {
		return entity.Comment{}, false
	}

	likes, _ := firstText(elementHTML, selCommentLikes)
	if likes == "" {
		likes = "0"
	}
	timestamp, _ := firstText(elementHTML, selCommentTime)
	if timestamp == "" {
		timestamp = "Unknown"
	}

	return entity.Comment{
		Author:    author,
		Text:      text,
		Likes:     likes,
		Timestamp: timestamp,
	}, true
}
