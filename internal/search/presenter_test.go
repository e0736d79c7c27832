package search

import (
	"creatorhub-go/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func creatorsFixture(n int) []model.CreatorWithContent {
	creators := make([]model.CreatorWithContent, 0, n)
	for i := 1; i <= n; i++ {
		creators = append(creators, model.CreatorWithContent{
			Creator:    model.CreatorProfile{ID: uint(i)},
			Projects:   []model.ProjectContent{},
			TotalScore: float64(n - i),
		})
	}
	return creators
}

func TestPresentEnvelope(t *testing.T) {
	params := Params{Query: "sunset beach", ContentType: "images", Limit: 10, Page: 1}
	resp := Present(creatorsFixture(3), params, "sunset beach golden")

	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 10, resp.Limit)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, "sunset beach", resp.Query)
	assert.Equal(t, "images", resp.ContentType)
	assert.Equal(t, "sunset beach golden", resp.ProcessedQuery)
	assert.Len(t, resp.Results, 3)
}

func TestPresentPagination(t *testing.T) {
	params := Params{Limit: 2, Page: 2}
	resp := Present(creatorsFixture(5), params, "")

	assert.Equal(t, 5, resp.Total)
	require.Len(t, resp.Results, 2)
	// 第二页从第 3 个创作者开始
	assert.Equal(t, uint(3), resp.Results[0].Creator.ID)
	assert.Equal(t, uint(4), resp.Results[1].Creator.ID)
}

func TestPresentLastPartialPage(t *testing.T) {
	params := Params{Limit: 2, Page: 3}
	resp := Present(creatorsFixture(5), params, "")

	require.Len(t, resp.Results, 1)
	assert.Equal(t, uint(5), resp.Results[0].Creator.ID)
}

func TestPresentPageBeyondRange(t *testing.T) {
	params := Params{Limit: 10, Page: 7}
	resp := Present(creatorsFixture(3), params, "")

	assert.Equal(t, 3, resp.Total)
	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
}

func TestPresentEmptyInput(t *testing.T) {
	params := Params{Limit: 10, Page: 1}
	resp := Present(nil, params, "")

	assert.Equal(t, 0, resp.Total)
	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
}
