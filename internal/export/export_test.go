package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/LouYuanbo1/ytcrawler/internal/domain/entity"
	"github.com/stretchr/testify/require"
)

func sampleResult() *entity.ScrapeResult {
	return &entity.ScrapeResult{
		VideoInfo: &entity.VideoInfo{
			VideoID:    "abcEFG01234",
			Title:      "测试视频 <Title & More>",
			Channel:    "某频道",
			Views:      "1,234 views",
			UploadDate: "Jan 1, 2025",
			Likes:      "56",
			URL:        "https://www.youtube.com/watch?v=abcEFG01234",
		},
		Comments: []entity.Comment{
			{Author: "@first", Text: "第一条评论", Likes: "3", Timestamp: "1 day ago"},
			{Author: "@second", Text: "second, with \"quotes\"", Likes: "0", Timestamp: "Unknown"},
		},
		Metadata: entity.ScrapeMetadata{
			TotalCollected: 2,
			SortOrder:      "top",
			ScrapeDate:     "2025-01-02 03:04:05",
		},
	}
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	result := sampleResult()

	require.NoError(t, WriteJSON(result, path))

	got, err := ReadJSON(path)
	require.NoError(t, err)
	require.Equal(t, result, got)
}

func TestWriteJSON_PreservesNonASCII(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, WriteJSON(sampleResult(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "第一条评论")
	require.Contains(t, string(data), "<Title & More>")
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.csv")
	require.NoError(t, WriteCSV(sampleResult(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, utf8BOM))

	body := string(bytes.TrimPrefix(data, utf8BOM))
	lines := bytes.Split(bytes.TrimSpace(bytes.TrimPrefix(data, utf8BOM)), []byte("\n"))
	require.Len(t, lines, 3)
	require.Equal(t, "author,text,likes,timestamp", string(lines[0]))
	require.Contains(t, body, "第一条评论")
	require.Contains(t, body, "@second")
}

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "result.json")
	csvPath := filepath.Join(dir, "comments.csv")

	require.NoError(t, WriteAll(sampleResult(), jsonPath, csvPath))
	require.FileExists(t, jsonPath)
	require.FileExists(t, csvPath)
}
