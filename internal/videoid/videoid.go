// Package videoid 将各种形态的YouTube链接解析为规范的视频ID
package videoid

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

// ErrNoVideoID 无法从输入中解析出视频ID
var ErrNoVideoID = errors.New("无法解析视频ID")

// 视频ID固定为11位,仅含字母数字下划线和连字符
var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// Extract 按顺序匹配四种链接形态:
// youtu.be短链 / watch页 / shorts与embed页 / 裸ID
func Extract(raw string) (string, error) {
	switch {
	case strings.Contains(raw, "youtu.be"):
		return lastSegment(raw), nil
	case strings.Contains(raw, "youtube.com/watch"):
		parsed, err := url.Parse(raw)
		if err != nil {
			return "", ErrNoVideoID
		}
		id := parsed.Query().Get("v")
		if id == "" {
			return "", ErrNoVideoID
		}
		return id, nil
	case strings.Contains(raw, "youtube.com/shorts"), strings.Contains(raw, "youtube.com/embed"):
		return lastSegment(raw), nil
	case idPattern.MatchString(raw):
		return raw, nil
	}
	return "", ErrNoVideoID
}

// WatchURL 由视频ID构造规范的观看页URL
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

// lastSegment 取最后一个路径段并去掉查询串
func lastSegment(raw string) string {
	seg := raw[strings.LastIndex(raw, "/")+1:]
	if i := strings.Index(seg, "?"); i >= 0 {
		seg = seg[:i]
	}
	return seg
}
