// Package pipeline 实现了内容索引管道：消费索引任务，
// 组装文档文本并生成向量，最终写入或删除 Elasticsearch 文档。
package pipeline

import (
	"context"
	"creatorhub-go/internal/config"
	"creatorhub-go/internal/model"
	"creatorhub-go/internal/repository"
	"creatorhub-go/internal/search"
	"creatorhub-go/pkg/embedding"
	"creatorhub-go/pkg/es"
	"creatorhub-go/pkg/log"
	"creatorhub-go/pkg/tasks"
	"fmt"
	"strings"
)

// Processor 处理媒体索引任务。
type Processor struct {
	mediaRepo       repository.MediaRepository
	projectRepo     repository.ProjectRepository
	creatorRepo     repository.CreatorRepository
	embeddingClient embedding.Client
	indexName       string
	modelVersion    string
}

// NewProcessor 创建一个新的 Processor 实例。
func NewProcessor(mediaRepo repository.MediaRepository, projectRepo repository.ProjectRepository, creatorRepo repository.CreatorRepository, embeddingClient embedding.Client, esCfg config.ElasticsearchConfig, embCfg config.EmbeddingConfig) *Processor {
	return &Processor{
		mediaRepo:       mediaRepo,
		projectRepo:     projectRepo,
		creatorRepo:     creatorRepo,
		embeddingClient: embeddingClient,
		indexName:       esCfg.IndexName,
		modelVersion:    embCfg.Model,
	}
}

// Process 执行一个媒体索引任务。
func (p *Processor) Process(ctx context.Context, task tasks.MediaIndexTask) error {
	switch task.Action {
	case tasks.ActionIndex:
		return p.index(ctx, task.ContentID)
	case tasks.ActionDelete:
		return es.DeleteContent(ctx, p.indexName, task.ContentID)
	default:
		return fmt.Errorf("unknown task action: %s", task.Action)
	}
}

// index 加载内容条目及其项目、创作者，生成向量后写入索引。
func (p *Processor) index(ctx context.Context, contentID string) error {
	// 步骤1: 加载内容条目与冗余字段来源
	item, err := p.mediaRepo.FindByContentID(contentID)
	if err != nil {
		return fmt.Errorf("failed to load media item %s: %w", contentID, err)
	}
	project, err := p.projectRepo.FindByID(item.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to load project %d: %w", item.ProjectID, err)
	}
	creator, err := p.creatorRepo.FindByID(project.CreatorID)
	if err != nil {
		return fmt.Errorf("failed to load creator %d: %w", project.CreatorID, err)
	}

	// 未通过审核的创作者内容不进入索引，顺手清理可能残留的文档
	if creator.Status != model.CreatorStatusApproved {
		log.Infof("[Processor] 创作者未通过审核, 跳过索引并清理文档, contentID: %s", contentID)
		return es.DeleteContent(ctx, p.indexName, contentID)
	}

	// 步骤2: 组装文档文本并生成向量
	text := composeDocumentText(item, project, creator)
	raw, err := p.embeddingClient.CreateEmbedding(ctx, text)
	if err != nil {
		return fmt.Errorf("failed to embed content %s: %w", contentID, err)
	}
	vector := search.SanitizeVector(raw)

	// 步骤3: 写入 Elasticsearch
	doc := model.ContentDocument{
		ContentID:          item.ContentID,
		ContentType:        item.ContentType,
		ContentURL:         item.ContentURL,
		ContentTitle:       item.Title,
		ContentDescription: item.Description,
		DisplayOrder:       item.DisplayOrder,
		YoutubeID:          item.YoutubeID,
		VimeoID:            item.VimeoID,
		ProjectID:          project.ID,
		ProjectTitle:       project.Title,
		CreatorID:          creator.ID,
		CreatorUsername:    creator.Username,
		Location:           creator.Location,
		Bio:                creator.Bio,
		PrimaryRoles:       creator.PrimaryRoleList(),
		SocialLinks:        creator.SocialLinkList(),
		WorkEmail:          creator.WorkEmail,
		ModelVersion:       p.modelVersion,
		Vector:             vector,
	}
	if err := es.IndexContent(ctx, p.indexName, doc); err != nil {
		return err
	}
	log.Infof("[Processor] 内容文档索引完成, contentID: %s, creator: %s", contentID, creator.Username)
	return nil
}

// composeDocumentText 把条目、项目与创作者的文本字段拼成嵌入输入。
// 字段顺序从具体到概括：条目标题/描述 -> 项目标题 -> 创作者角色/地点/简介。
func composeDocumentText(item *model.MediaItem, project *model.Project, creator *model.Creator) string {
	parts := make([]string, 0, 6)
	for _, s := range []string{
		item.Title,
		item.Description,
		project.Title,
		strings.Join(creator.PrimaryRoleList(), " "),
		creator.Location,
		creator.Bio,
	} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ". ")
}
