package search

import (
	"creatorhub-go/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// row 构造一条最小合法的原始检索行。
func row(creatorID, projectID uint, contentID, contentType string, score float64) model.RawSearchResult {
	return model.RawSearchResult{
		CreatorID:       creatorID,
		CreatorUsername: "creator",
		ProjectID:       projectID,
		ProjectTitle:    "project",
		ContentID:       contentID,
		ContentType:     contentType,
		ContentURL:      strPtr("https://cdn.example.com/" + contentID),
		ContentScore:    score,
	}
}

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil)
	assert.Empty(t, got)

	got = Aggregate([]model.RawSearchResult{})
	assert.Empty(t, got)
}

func TestAggregateDeduplicatesContent(t *testing.T) {
	// 同一内容条目命中多个向量分块时会重复出现，输出必须只保留一份
	rows := []model.RawSearchResult{
		row(1, 10, "c-1", model.ContentTypeImage, 0.8),
		row(1, 10, "c-1", model.ContentTypeImage, 0.6),
	}
	got := Aggregate(rows)

	require.Len(t, got, 1)
	require.Len(t, got[0].Projects, 1)
	assert.Len(t, got[0].Projects[0].Images, 1)
}

func TestAggregateTotalScoreIsMax(t *testing.T) {
	// A 的得分 [0.3, 0.9, 0.1]，B 的得分 [0.5]：A 以 0.9 排在 B 之前
	rows := []model.RawSearchResult{
		row(1, 10, "a-1", model.ContentTypeImage, 0.3),
		row(2, 20, "b-1", model.ContentTypeImage, 0.5),
		row(1, 10, "a-2", model.ContentTypeImage, 0.9),
		row(1, 11, "a-3", model.ContentTypeImage, 0.1),
	}
	got := Aggregate(rows)

	require.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].Creator.ID)
	assert.Equal(t, 0.9, got[0].TotalScore)
	assert.Equal(t, uint(2), got[1].Creator.ID)
	assert.Equal(t, 0.5, got[1].TotalScore)
}

func TestAggregateMaxNotSum(t *testing.T) {
	// 区分最大值与求和两种策略的用例：
	// A=[0.2,0.2,0.2]（和 0.6），B=[0.5]（和 0.5）。
	// 按最大值 B(0.5) > A(0.2)；按求和会错误地得出 A > B。
	rows := []model.RawSearchResult{
		row(1, 10, "a-1", model.ContentTypeImage, 0.2),
		row(1, 10, "a-2", model.ContentTypeImage, 0.2),
		row(1, 10, "a-3", model.ContentTypeImage, 0.2),
		row(2, 20, "b-1", model.ContentTypeImage, 0.5),
	}
	got := Aggregate(rows)

	require.Len(t, got, 2)
	assert.Equal(t, uint(2), got[0].Creator.ID, "最佳单项 0.5 的创作者必须排第一")
	assert.Equal(t, 0.5, got[0].TotalScore)
	assert.Equal(t, uint(1), got[1].Creator.ID)
	assert.Equal(t, 0.2, got[1].TotalScore)
}

func TestAggregateProjectFinalScoreIsMaxRegardlessOfOrder(t *testing.T) {
	// final_score 不依赖行的到达顺序：得分升序到达时仍取最大值
	rows := []model.RawSearchResult{
		row(1, 10, "c-1", model.ContentTypeImage, 0.1),
		row(1, 10, "c-2", model.ContentTypeImage, 0.8),
		row(1, 10, "c-3", model.ContentTypeImage, 0.4),
	}
	got := Aggregate(rows)

	require.Len(t, got, 1)
	require.Len(t, got[0].Projects, 1)
	assert.Equal(t, 0.8, got[0].Projects[0].FinalScore)

	// 降序到达得到同样的结果
	reversed := []model.RawSearchResult{rows[1], rows[2], rows[0]}
	got = Aggregate(reversed)
	require.Len(t, got, 1)
	assert.Equal(t, 0.8, got[0].Projects[0].FinalScore)
}

func TestAggregateVideoWithoutURL(t *testing.T) {
	// 仅携带平台 ID 的视频（content_url 为 null）是合法条目
	r := row(1, 10, "v-1", model.ContentTypeVideo, 0.7)
	r.ContentURL = nil
	r.VimeoID = "987654321"

	got := Aggregate([]model.RawSearchResult{r})

	require.Len(t, got, 1)
	require.Len(t, got[0].Projects, 1)
	require.Len(t, got[0].Projects[0].Videos, 1)
	video := got[0].Projects[0].Videos[0]
	assert.Nil(t, video.URL)
	assert.Equal(t, "987654321", video.VimeoID)
}

func TestAggregateProjectsSortedByFinalScoreDesc(t *testing.T) {
	rows := []model.RawSearchResult{
		row(1, 10, "c-1", model.ContentTypeImage, 0.2),
		row(1, 11, "c-2", model.ContentTypeImage, 0.9),
		row(1, 12, "c-3", model.ContentTypeImage, 0.5),
	}
	got := Aggregate(rows)

	require.Len(t, got, 1)
	projects := got[0].Projects
	require.Len(t, projects, 3)
	assert.Equal(t, uint(11), projects[0].ID)
	assert.Equal(t, uint(12), projects[1].ID)
	assert.Equal(t, uint(10), projects[2].ID)
}

func TestAggregateImagesSortedByOrderAsc(t *testing.T) {
	r1 := row(1, 10, "c-1", model.ContentTypeImage, 0.5)
	r1.DisplayOrder = 3
	r2 := row(1, 10, "c-2", model.ContentTypeImage, 0.5)
	r2.DisplayOrder = 1
	r3 := row(1, 10, "c-3", model.ContentTypeImage, 0.5)
	// r3 未设置 order，按 0 处理，应排在最前

	got := Aggregate([]model.RawSearchResult{r1, r2, r3})

	require.Len(t, got, 1)
	images := got[0].Projects[0].Images
	require.Len(t, images, 3)
	assert.Equal(t, "c-3", images[0].ID)
	assert.Equal(t, "c-2", images[1].ID)
	assert.Equal(t, "c-1", images[2].ID)
}

func TestAggregateVideosKeepInsertionOrder(t *testing.T) {
	rows := []model.RawSearchResult{
		row(1, 10, "v-1", model.ContentTypeVideo, 0.9),
		row(1, 10, "v-2", model.ContentTypeVideo, 0.3),
		row(1, 10, "v-3", model.ContentTypeVideo, 0.6),
	}
	got := Aggregate(rows)

	videos := got[0].Projects[0].Videos
	require.Len(t, videos, 3)
	assert.Equal(t, "v-1", videos[0].ID)
	assert.Equal(t, "v-2", videos[1].ID)
	assert.Equal(t, "v-3", videos[2].ID)
}

func TestAggregateSkipsMalformedRows(t *testing.T) {
	bad1 := row(0, 10, "c-1", model.ContentTypeImage, 0.9) // 缺 creator_id
	bad2 := row(1, 0, "c-2", model.ContentTypeImage, 0.9)  // 缺 project_id
	bad3 := row(1, 10, "", model.ContentTypeImage, 0.9)    // 缺 content_id
	bad4 := row(1, 10, "c-4", "audio", 0.9)                // 未知内容类型
	good := row(1, 10, "c-5", model.ContentTypeImage, 0.4)

	got := Aggregate([]model.RawSearchResult{bad1, bad2, bad3, bad4, good})

	// 坏行被跳过，好行完整保留
	require.Len(t, got, 1)
	require.Len(t, got[0].Projects, 1)
	assert.Len(t, got[0].Projects[0].Images, 1)
	assert.Equal(t, "c-5", got[0].Projects[0].Images[0].ID)
}

func TestAggregateMissingScoreTreatedAsZero(t *testing.T) {
	// 无得分的行（例如来自直接过滤匹配的路径）仍需进入分组输出
	r := row(1, 10, "c-1", model.ContentTypeImage, 0)

	got := Aggregate([]model.RawSearchResult{r})

	require.Len(t, got, 1)
	assert.Equal(t, float64(0), got[0].TotalScore)
	assert.Len(t, got[0].Projects[0].Images, 1)
}

func TestAggregateCreatorProfileSnapshot(t *testing.T) {
	r := row(1, 10, "c-1", model.ContentTypeImage, 0.5)
	r.CreatorUsername = "ada"
	r.Location = "Berlin"
	r.Bio = "shoots analog"
	r.PrimaryRoles = []string{"photographer"}
	r.SocialLinks = []string{"https://ada.example.com"}
	r.WorkEmail = "ada@example.com"

	got := Aggregate([]model.RawSearchResult{r})

	require.Len(t, got, 1)
	profile := got[0].Creator
	assert.Equal(t, "ada", profile.Username)
	assert.Equal(t, "Berlin", profile.Location)
	assert.Equal(t, "shoots analog", profile.Bio)
	assert.Equal(t, []string{"photographer"}, profile.PrimaryRoles)
	assert.Equal(t, []string{"https://ada.example.com"}, profile.SocialLinks)
	assert.Equal(t, "ada@example.com", profile.WorkEmail)
}

func TestAggregateDeterministic(t *testing.T) {
	rows := []model.RawSearchResult{
		row(3, 30, "c-1", model.ContentTypeImage, 0.5),
		row(1, 10, "c-2", model.ContentTypeImage, 0.5),
		row(2, 20, "c-3", model.ContentTypeVideo, 0.5),
	}

	first := Aggregate(rows)
	second := Aggregate(rows)
	assert.Equal(t, first, second)

	// 同分创作者维持首次出现顺序（稳定排序）
	assert.Equal(t, uint(3), first[0].Creator.ID)
	assert.Equal(t, uint(1), first[1].Creator.ID)
	assert.Equal(t, uint(2), first[2].Creator.ID)
}
