package model

import (
	"github.com/elastic/go-elasticsearch/v9/typedapi/types"
)

// Document 可索引文档的泛型约束
// 所有文档结构体要实现这些函数
type Document interface {
	*CommentDoc
	GetID() string
	GetIndex() string
	GetTypeMapping() *types.TypeMapping
	GetEmbeddingString() string
	SetEmbedding(embedding []float32)
	GetEmbedding() []float32
}
