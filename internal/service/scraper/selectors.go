package scraper

// YouTube的DOM选择器集中放在这里
// 页面结构变更频繁,抓取失效时先检查这些选择器

const (
	selVideoTitle  = "h1 yt-formatted-string"
	selChannelName = "ytd-channel-name a, #channel-name a"
	selViewCount   = "span.view-count"
	selUploadDate  = "#info-strings yt-formatted-string"
	selLikeCount   = "ytd-toggle-button-renderer yt-formatted-string"

	selCommentThread = "ytd-comment-thread-renderer"
	selCommentAuthor = "#author-text"
	selCommentText   = "#content-text"
	selCommentLikes  = "#vote-count-middle"
	selCommentTime   = ".published-time-text"

	selConsentButton = "button"
	selSortMenu      = "ytd-sort-filter-submenus-renderer yt-sort-filter-sub-menu-renderer"
	selSortOption    = "tp-yt-paper-item, paper-item"
)

// 定位到评论区,没有#comments时不做任何事
const scrollToCommentsJS = `var c = document.querySelector('#comments'); if (c) { window.scrollTo(0, c.offsetTop); }`
