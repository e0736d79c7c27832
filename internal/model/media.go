package model

import "time"

// 内容条目类型
const (
	ContentTypeImage = "image"
	ContentTypeVideo = "video"
)

// MediaItem 对应于数据库中的 'media_items' 表。
// 一条记录表示项目下的一个内容条目（图片或视频）。
// 视频可以只携带外部平台 ID（youtube_id/vimeo_id）而没有 content_url。
type MediaItem struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ContentID   string `gorm:"type:varchar(36);uniqueIndex;not null" json:"contentId"`
	ProjectID   uint   `gorm:"index;not null" json:"projectId"`
	ContentType string `gorm:"type:varchar(10);not null" json:"contentType"` // image 或 video
	// ContentURL 使用指针以接受 NULL 值：仅有外部平台 ID 的视频没有 URL。
	ContentURL   *string   `gorm:"type:varchar(512)" json:"contentUrl"`
	Title        string    `gorm:"type:varchar(255)" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	DisplayOrder int       `gorm:"not null;default:0" json:"displayOrder"`
	YoutubeID    string    `gorm:"type:varchar(20)" json:"youtubeId"`
	VimeoID      string    `gorm:"type:varchar(20)" json:"vimeoId"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (MediaItem) TableName() string {
	return "media_items"
}
