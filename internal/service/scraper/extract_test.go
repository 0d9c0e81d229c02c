package scraper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const fullCommentHTML = `<ytd-comment-thread-renderer>
	<a id="author-text"><span>@someone</span></a>
	<yt-formatted-string id="content-text">这视频太棒了 great video!</yt-formatted-string>
	<span id="vote-count-middle"> 42 </span>
	<span class="published-time-text">3 days ago</span>
</ytd-comment-thread-renderer>`

func TestParseComment_Valid(t *testing.T) {
	c, ok := parseComment(fullCommentHTML)
	require.True(t, ok)
	require.Equal(t, "@someone", c.Author)
	require.Equal(t, "这视频太棒了 great video!", c.Text)
	require.Equal(t, "42", c.Likes)
	require.Equal(t, "3 days ago", c.Timestamp)
}

func TestParseComment_MissingAuthor(t *testing.T) {
	html := `<ytd-comment-thread-renderer>
		<yt-formatted-string id="content-text">no author here</yt-formatted-string>
	</ytd-comment-thread-renderer>`
	_, ok := parseComment(html)
	require.False(t, ok)
}

func TestParseComment_MissingText(t *testing.T) {
	html := `<ytd-comment-thread-renderer>
		<a id="author-text">@someone</a>
	</ytd-comment-thread-renderer>`
	_, ok := parseComment(html)
	require.False(t, ok)
}

func TestParseComment_OptionalFieldDefaults(t *testing.T) {
	html := `<ytd-comment-thread-renderer>
		<a id="author-text">@someone</a>
		<yt-formatted-string id="content-text">bare minimum</yt-formatted-string>
	</ytd-comment-thread-renderer>`
	c, ok := parseComment(html)
	require.True(t, ok)
	require.Equal(t, "0", c.Likes)
	require.Equal(t, "Unknown", c.Timestamp)
}

func TestFirstText_NoMatch(t *testing.T) {
	_, ok := firstText(`<div><span class="other">x</span></div>`, "#author-text")
	require.False(t, ok)
}

func TestElementText_Trims(t *testing.T) {
	text, ok := elementText("<span class=\"view-count\">\n\t 1,234,567 views \n</span>")
	require.True(t, ok)
	require.Equal(t, "1,234,567 views", text)
}
