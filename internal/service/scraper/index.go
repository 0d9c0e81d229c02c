package scraper

import (
	"context"
	"log"
	"time"

	"github.com/LouYuanbo1/ytcrawler/internal/domain/entity"
	"github.com/LouYuanbo1/ytcrawler/internal/domain/model"
)

func (s *scrapeService) IndexResult(ctx context.Context, result *entity.ScrapeResult) error {
	if s.typedEsClient == nil || result == nil || len(result.Comments) == 0 {
		return nil
	}

	docs := make([]*model.CommentDoc, 0, len(result.Comments))
	for i := range result.Comments {
		docs = append(docs, result.Comments[i].ToDocument(result.VideoInfo.VideoID, i))
	}

	if s.embedder != nil {
		s.embeddingDocs(docs)
	}
	return s.indexDocs(ctx, docs)
}

// embeddingDocs 分批向量化评论正文,单批失败只记日志不中断
func (s *scrapeService) embeddingDocs(docs []*model.CommentDoc) {
	batchSize := s.embedder.BatchSize()
	if batchSize <= 0 {
		batchSize = len(docs)
	}
	reqCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	embeddingStrings := make([]string, 0, len(docs))
	for _, doc := range docs {
		embeddingStrings = append(embeddingStrings, doc.GetEmbeddingString())
	}

	for i := 0; i < len(embeddingStrings); i += batchSize {
		end := min(i+batchSize, len(embeddingStrings))
		embeddingVectors, err := s.embedder.Embed(reqCtx, embeddingStrings[i:end])
		if err != nil {
			log.Printf("Embed error: %v", err)
			continue
		}
		for j := range embeddingVectors {
			docs[i+j].SetEmbedding(embeddingVectors[j])
		}
	}
}

func (s *scrapeService) indexDocs(ctx context.Context, docs []*model.CommentDoc) error {
	reqCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	if err := s.typedEsClient.BulkIndexDocsWithID(reqCtx, docs); err != nil {
		log.Printf("Bulk index error: %v", err)
		return err
	}
	return nil
}
