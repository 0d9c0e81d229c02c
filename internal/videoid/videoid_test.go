package videoid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtract_AllShapes(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"短链", "https://youtu.be/abcEFG01234"},
		{"短链带参数", "https://youtu.be/abcEFG01234?t=42"},
		{"watch页", "https://www.youtube.com/watch?v=abcEFG01234"},
		{"watch页多参数", "https://www.youtube.com/watch?v=abcEFG01234&list=PL123"},
		{"shorts页", "https://www.youtube.com/shorts/abcEFG01234"},
		{"embed页", "https://www.youtube.com/embed/abcEFG01234?autoplay=1"},
		{"裸ID", "abcEFG01234"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			id, err := Extract(c.raw)
			require.NoError(t, err)
			require.Equal(t, "abcEFG01234", id)
		})
	}
}

func TestExtract_NotFound(t *testing.T) {
	cases := []string{
		"",
		"https://example.com/watch?v=abcEFG01234",
		"https://www.youtube.com/watch?list=PL123",
		"too-short",
		"waytoolongtobeavideoid",
		"abcEFG0123!",
	}
	for _, raw := range cases {
		_, err := Extract(raw)
		require.ErrorIs(t, err, ErrNoVideoID, "输入: %q", raw)
	}
}

func TestWatchURL(t *testing.T) {
	require.Equal(t, "https://www.youtube.com/watch?v=abcEFG01234", WatchURL("abcEFG01234"))
}
