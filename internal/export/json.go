// Package export 把采集结果序列化落盘,只做结构转换不改数据
package export

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/LouYuanbo1/ytcrawler/internal/domain/entity"
)

// WriteJSON 将完整的采集结果写为UTF-8编码的JSON文件
func WriteJSON(result *entity.ScrapeResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建JSON文件失败: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	// 保留非ASCII文本原样输出
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("写入JSON失败: %w", err)
	}
	log.Printf("数据已保存到: %s", path)
	return nil
}

// ReadJSON 读回一个JSON结果文件
func ReadJSON(path string) (*entity.ScrapeResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取JSON文件失败: %w", err)
	}
	var result entity.ScrapeResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("解析JSON失败: %w", err)
	}
	return &result, nil
}
