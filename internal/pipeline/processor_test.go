package pipeline

import (
	"creatorhub-go/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeDocumentText(t *testing.T) {
	url := "https://cdn.example.com/a.jpg"
	item := &model.MediaItem{
		ContentID:   "c-1",
		ContentType: model.ContentTypeImage,
		ContentURL:  &url,
		Title:       "Golden hour",
		Description: "Sunset over the bay",
	}
	project := &model.Project{ID: 7, Title: "Coastal series"}
	creator := &model.Creator{
		Username:     "ana",
		Location:     "Lisbon",
		Bio:          "Landscape photographer",
		PrimaryRoles: "photographer,editor",
	}

	text := composeDocumentText(item, project, creator)
	assert.Equal(t, "Golden hour. Sunset over the bay. Coastal series. photographer editor. Lisbon. Landscape photographer", text)
}

func TestComposeDocumentTextSkipsEmptyFields(t *testing.T) {
	item := &model.MediaItem{ContentID: "c-2", ContentType: model.ContentTypeVideo, Title: "Reel"}
	project := &model.Project{ID: 8, Title: "  "}
	creator := &model.Creator{Username: "bo"}

	assert.Equal(t, "Reel", composeDocumentText(item, project, creator))
}
