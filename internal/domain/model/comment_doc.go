package model

import (
	"github.com/elastic/go-elasticsearch/v9/typedapi/types"
)

const commentIndex = "youtube_comments"

// 嵌入向量维度,与Embedder配置的模型保持一致
const embeddingDims = 768

// CommentDoc 评论在Elasticsearch中的文档形态
type CommentDoc struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"video_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Likes     string    `json:"likes"`
	Timestamp string    `json:"timestamp"`
	Embedding []float32 `json:"embedding,omitempty"`
}

func (d *CommentDoc) GetID() string {
	return d.ID
}

func (d *CommentDoc) GetIndex() string {
	return commentIndex
}

func (d *CommentDoc) GetTypeMapping() *types.TypeMapping {
	dims := embeddingDims
	vector := types.NewDenseVectorProperty()
	vector.Dims = &dims

	return &types.TypeMapping{
		Properties: map[string]types.Property{
			"id":        types.NewKeywordProperty(),
			"video_id":  types.NewKeywordProperty(),
			"author":    types.NewKeywordProperty(),
			"text":      types.NewTextProperty(),
			"likes":     types.NewKeywordProperty(),
			"timestamp": types.NewKeywordProperty(),
			"embedding": vector,
		},
	}
}

// GetEmbeddingString 参与向量化的文本,仅用评论正文
func (d *CommentDoc) GetEmbeddingString() string {
	return d.Text
}

func (d *CommentDoc) SetEmbedding(embedding []float32) {
	d.Embedding = embedding
}

func (d *CommentDoc) GetEmbedding() []float32 {
	return d.Embedding
}
