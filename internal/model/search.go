// Package model 定义了搜索链路使用的数据结构。
package model

// RawSearchResult 是相似度检索源返回的原始行：
// 每行唯一标识一个 (creator, project, content-item) 三元组，并携带相似度得分。
// 上游字段均不可盲信，缺失字段按约定取默认值，由聚合层做防御性校验。
type RawSearchResult struct {
	CreatorID       uint     `json:"creator_id"`
	CreatorUsername string   `json:"creator_username"`
	Location        string   `json:"location,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	PrimaryRoles    []string `json:"primary_roles,omitempty"`
	SocialLinks     []string `json:"social_links,omitempty"`
	WorkEmail       string   `json:"work_email,omitempty"`
	// CreatorScore 由检索源携带，但聚合排序不使用它（见 CreatorWithContent.TotalScore）。
	CreatorScore float64 `json:"creator_score,omitempty"`

	ContentID          string  `json:"content_id"`
	ContentType        string  `json:"content_type"` // image 或 video
	ContentURL         *string `json:"content_url"`  // 视频允许为 null，仅凭平台 ID 标识
	ContentTitle       string  `json:"content_title,omitempty"`
	ContentDescription string  `json:"content_description,omitempty"`
	// ContentScore 缺失时按 0 处理，该行仍会进入聚合结果。
	ContentScore float64 `json:"content_score"`
	DisplayOrder int     `json:"display_order"`

	ProjectID    uint   `json:"project_id"`
	ProjectTitle string `json:"project_title"`

	YoutubeID string `json:"youtube_id,omitempty"`
	VimeoID   string `json:"vimeo_id,omitempty"`
}

// CreatorProfile 是聚合输出中创作者的资料快照。
type CreatorProfile struct {
	ID           uint     `json:"id"`
	Username     string   `json:"username"`
	Location     string   `json:"location,omitempty"`
	Bio          string   `json:"bio,omitempty"`
	PrimaryRoles []string `json:"primary_roles,omitempty"`
	SocialLinks  []string `json:"social_links,omitempty"`
	WorkEmail    string   `json:"work_email,omitempty"`
}

// MediaEntry 是聚合输出中的单个内容条目。
type MediaEntry struct {
	ID          string  `json:"id"`
	URL         *string `json:"url"`
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Order       int     `json:"order"`
	YoutubeID   string  `json:"youtube_id,omitempty"`
	VimeoID     string  `json:"vimeo_id,omitempty"`
}

// ProjectContent 是聚合输出中创作者名下的单个项目。
// FinalScore 取该项目下最佳匹配条目的得分，而非累计值。
type ProjectContent struct {
	ID         uint         `json:"id"`
	Title      string       `json:"title"`
	FinalScore float64      `json:"final_score"`
	Images     []MediaEntry `json:"images"`
	Videos     []MediaEntry `json:"videos"`
}

// CreatorWithContent 是聚合输出的顶层单元。
// TotalScore 是该创作者所有匹配内容得分的最大值：
// 单条强匹配不应被多条弱匹配稀释，创作者按其最佳作品排序。
type CreatorWithContent struct {
	Creator    CreatorProfile   `json:"creator"`
	Projects   []ProjectContent `json:"projects"`
	TotalScore float64          `json:"total_score"`
}

// SearchResponse 定义了返回给前端的搜索响应信封。
type SearchResponse struct {
	Results        []CreatorWithContent `json:"results"`
	Page           int                  `json:"page"`
	Limit          int                  `json:"limit"`
	Total          int                  `json:"total"`
	Query          string               `json:"query"`
	ContentType    string               `json:"content_type"`
	ProcessedQuery string               `json:"processed_query"`
}
