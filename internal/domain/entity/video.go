package entity

// 字段缺失时的兜底文案,抓取失败不会中断流程
const (
	UnknownTitle   = "Unknown Title"
	UnknownChannel = "Unknown Channel"
	UnknownViews   = "Unknown Views"
	UnknownDate    = "Unknown Date"
	UnknownLikes   = "Unknown Likes"
)

// VideoInfo 视频基础信息,整个运行周期只抓取一次
type VideoInfo struct {
	VideoID    string `json:"video_id"`
	Title      string `json:"title"`
	Channel    string `json:"channel"`
	Views      string `json:"views"`
	UploadDate string `json:"upload_date"`
	Likes      string `json:"likes"`
	URL        string `json:"url"`
}
