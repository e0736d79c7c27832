package service

import (
	"creatorhub-go/internal/search"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainForFilter(t *testing.T) {
	assert.Equal(t, search.DomainImages, domainForFilter(search.FilterImages))
	assert.Equal(t, search.DomainMedia, domainForFilter(search.FilterVideos))
	assert.Equal(t, search.DomainMedia, domainForFilter(search.FilterAll))
}

func TestContentTypeFilter(t *testing.T) {
	assert.Nil(t, contentTypeFilter(search.FilterAll))

	f := contentTypeFilter(search.FilterImages)
	require.NotNil(t, f)
	term := f["term"].(map[string]interface{})
	assert.Equal(t, "image", term["content_type"])

	f = contentTypeFilter(search.FilterVideos)
	require.NotNil(t, f)
	term = f["term"].(map[string]interface{})
	assert.Equal(t, "video", term["content_type"])
}

func TestTextQueryWithQueryAndFilter(t *testing.T) {
	params := search.Params{Query: "sunset", ContentType: search.FilterVideos}
	q := textQuery(params)

	boolQuery, ok := q["bool"].(map[string]interface{})
	require.True(t, ok)
	must := boolQuery["must"].(map[string]interface{})
	assert.Contains(t, must, "multi_match")
	assert.Contains(t, boolQuery, "filter")
}

func TestTextQueryEmptyQueryNoFilter(t *testing.T) {
	params := search.Params{Query: "", ContentType: search.FilterAll}
	q := textQuery(params)
	assert.Contains(t, q, "match_all")
}
