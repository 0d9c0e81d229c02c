package export

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"

	"github.com/LouYuanbo1/ytcrawler/internal/domain/entity"
)

// utf8BOM 让Excel等表格工具按UTF-8识别非ASCII文本
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// csvHeader CSV列与评论记录字段一一对应
var csvHeader = []string{"author", "text", "likes", "timestamp"}

// WriteCSV 只导出评论行,一行一条,带BOM前缀
func WriteCSV(result *entity.ScrapeResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建CSV文件失败: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return fmt.Errorf("写入BOM失败: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("写入CSV表头失败: %w", err)
	}
	for _, c := range result.Comments {
		if err := w.Write([]string{c.Author, c.Text, c.Likes, c.Timestamp}); err != nil {
			return fmt.Errorf("写入CSV行失败: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("刷新CSV失败: %w", err)
	}
	log.Printf("评论已保存到: %s", path)
	return nil
}
