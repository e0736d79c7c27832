package model

// ContentDocument 定义了存储在 Elasticsearch 中的内容文档结构。
// 每个内容条目（图片/视频）一条文档，冗余携带创作者与项目信息，
// 使搜索结果无需回表即可完成聚合。
type ContentDocument struct {
	ContentID          string  `json:"content_id"`
	ContentType        string  `json:"content_type"`
	ContentURL         *string `json:"content_url"`
	ContentTitle       string  `json:"content_title"`
	ContentDescription string  `json:"content_description"`
	DisplayOrder       int     `json:"display_order"`
	YoutubeID          string  `json:"youtube_id,omitempty"`
	VimeoID            string  `json:"vimeo_id,omitempty"`

	ProjectID    uint   `json:"project_id"`
	ProjectTitle string `json:"project_title"`

	CreatorID       uint     `json:"creator_id"`
	CreatorUsername string   `json:"creator_username"`
	Location        string   `json:"location,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	PrimaryRoles    []string `json:"primary_roles,omitempty"`
	SocialLinks     []string `json:"social_links,omitempty"`
	WorkEmail       string   `json:"work_email,omitempty"`
	// CreatorScore 随行携带但当前不参与聚合排序。
	CreatorScore float64 `json:"creator_score,omitempty"`

	ModelVersion string    `json:"model_version"`
	Vector       []float32 `json:"vector"` // 内容文本的向量表示
}
