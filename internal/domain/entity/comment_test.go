package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComment_ToDocument(t *testing.T) {
	c := Comment{Author: "@someone", Text: "很好", Likes: "7", Timestamp: "2 hours ago"}
	doc := c.ToDocument("abcEFG01234", 3)

	require.Equal(t, "abcEFG01234:3", doc.GetID())
	require.Equal(t, "youtube_comments", doc.GetIndex())
	require.Equal(t, "abcEFG01234", doc.VideoID)
	require.Equal(t, "@someone", doc.Author)
	require.Equal(t, "很好", doc.GetEmbeddingString())

	doc.SetEmbedding([]float32{0.1, 0.2})
	require.Len(t, doc.GetEmbedding(), 2)
}
