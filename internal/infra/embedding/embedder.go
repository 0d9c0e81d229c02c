package embedding

import "context"

// Embedder 文本向量化的抽象
type Embedder interface {
	BatchSize() int
	Embed(ctx context.Context, strings []string) ([][]float32, error)
}
