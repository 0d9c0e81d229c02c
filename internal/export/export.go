package export

import (
	"github.com/LouYuanbo1/ytcrawler/internal/domain/entity"
	"golang.org/x/sync/errgroup"
)

// WriteAll 同时写出JSON和CSV两种格式
func WriteAll(result *entity.ScrapeResult, jsonPath, csvPath string) error {
	var g errgroup.Group
	g.Go(func() error {
		return WriteJSON(result, jsonPath)
	})
	g.Go(func() error {
		return WriteCSV(result, csvPath)
	})
	return g.Wait()
}
