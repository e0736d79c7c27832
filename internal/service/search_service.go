package service

import (
	"bytes"
	"context"
	"creatorhub-go/internal/config"
	"creatorhub-go/internal/model"
	"creatorhub-go/internal/repository"
	"creatorhub-go/internal/search"
	"creatorhub-go/pkg/es"
	"creatorhub-go/pkg/log"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// 召回量上限：limit*page*10 条内容行足以覆盖一页创作者的聚合需求，
// 再高只会拖慢 knn 检索。
const maxRecallSize = 1000

// SearchService 接口定义了作品集搜索操作。
type SearchService interface {
	Search(ctx context.Context, userID uint, query, contentType, limitRaw, pageRaw string) (*model.SearchResponse, error)
	RecentSearches(ctx context.Context, userID uint) ([]string, error)
}

type searchService struct {
	generator   *search.Generator
	historyRepo repository.SearchHistoryRepository
	indexName   string
}

// NewSearchService 创建一个新的 SearchService 实例。
func NewSearchService(generator *search.Generator, historyRepo repository.SearchHistoryRepository, esCfg config.ElasticsearchConfig) SearchService {
	return &searchService{
		generator:   generator,
		historyRepo: historyRepo,
		indexName:   esCfg.IndexName,
	}
}

// Search 执行完整的搜索链路：
// 参数归一化 -> 查询增强与向量生成 -> 相似度检索 -> 按创作者聚合 -> 组装响应。
func (s *searchService) Search(ctx context.Context, userID uint, query, contentType, limitRaw, pageRaw string) (*model.SearchResponse, error) {
	// 步骤1: 归一化请求参数
	params := search.NormalizeParams(query, contentType, limitRaw, pageRaw)
	log.Infof("[SearchService] 步骤1: 参数归一化完成, query: %q, contentType: %s, limit: %d, page: %d",
		params.Query, params.ContentType, params.Limit, params.Page)

	// 步骤2: 生成查询向量（内部包含查询增强）
	embedding := s.generator.Embed(ctx, params.Query, domainForFilter(params.ContentType))
	processedQuery := params.Query
	if embedding != nil {
		processedQuery = embedding.ProcessedText
	}
	log.Infof("[SearchService] 步骤2: 查询向量生成完成, processedQuery: %q, hasVector: %t",
		processedQuery, embedding != nil)

	// 步骤3: 相似度检索
	rows, err := s.retrieve(ctx, params, embedding)
	if err != nil {
		log.Errorf("[SearchService] 步骤3: 相似度检索失败, error: %v", err)
		return nil, err
	}
	log.Infof("[SearchService] 步骤3: 相似度检索完成, 召回 %d 行", len(rows))

	// 步骤4: 按创作者聚合
	creators := search.Aggregate(rows)
	log.Infof("[SearchService] 步骤4: 聚合完成, 命中创作者 %d 个", len(creators))

	// 步骤5: 组装响应并尽力记录搜索历史
	response := search.Present(creators, params, processedQuery)
	if userID != 0 && params.Query != "" {
		if err := s.historyRepo.Record(ctx, userID, params.Query); err != nil {
			log.Warnf("[SearchService] 记录搜索历史失败, userID: %d, error: %v", userID, err)
		}
	}
	return response, nil
}

// RecentSearches 返回用户最近的搜索记录。
func (s *searchService) RecentSearches(ctx context.Context, userID uint) ([]string, error) {
	return s.historyRepo.Recent(ctx, userID)
}

// domainForFilter 把内容类型过滤映射到查询增强的领域。
// 仅图片时使用图片领域模板，其余情况统一走媒体领域。
func domainForFilter(contentType string) search.Domain {
	if contentType == search.FilterImages {
		return search.DomainImages
	}
	return search.DomainMedia
}

// retrieve 调用 Elasticsearch 执行检索。
// 有向量时走 knn 检索，无向量（空查询或嵌入失败）时退回文本匹配。
func (s *searchService) retrieve(ctx context.Context, params search.Params, embedding *search.QueryEmbedding) ([]model.RawSearchResult, error) {
	recall := params.Page * params.Limit * 10
	if recall > maxRecallSize {
		recall = maxRecallSize
	}

	var body map[string]interface{}
	if embedding != nil {
		knn := map[string]interface{}{
			"field":          "vector",
			"query_vector":   embedding.Values,
			"k":              recall,
			"num_candidates": recall * 2,
		}
		if f := contentTypeFilter(params.ContentType); f != nil {
			knn["filter"] = f
		}
		body = map[string]interface{}{
			"knn":  knn,
			"size": recall,
		}
	} else {
		body = map[string]interface{}{
			"query": textQuery(params),
			"size":  recall,
		}
	}

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	res, err := es.ESClient.Search(
		es.ESClient.Search.WithContext(ctx),
		es.ESClient.Search.WithIndex(s.indexName),
		es.ESClient.Search.WithBody(bytes.NewReader(bodyBytes)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		raw, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("elasticsearch search failed: %s", string(raw))
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Score  float64               `json:"_score"`
				Source model.ContentDocument `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, errors.New("failed to decode search response: " + err.Error())
	}

	rows := make([]model.RawSearchResult, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		doc := hit.Source
		rows = append(rows, model.RawSearchResult{
			CreatorID:          doc.CreatorID,
			CreatorUsername:    doc.CreatorUsername,
			Location:           doc.Location,
			Bio:                doc.Bio,
			PrimaryRoles:       doc.PrimaryRoles,
			SocialLinks:        doc.SocialLinks,
			WorkEmail:          doc.WorkEmail,
			CreatorScore:       doc.CreatorScore,
			ContentID:          doc.ContentID,
			ContentType:        doc.ContentType,
			ContentURL:         doc.ContentURL,
			ContentTitle:       doc.ContentTitle,
			ContentDescription: doc.ContentDescription,
			ContentScore:       hit.Score,
			DisplayOrder:       doc.DisplayOrder,
			ProjectID:          doc.ProjectID,
			ProjectTitle:       doc.ProjectTitle,
			YoutubeID:          doc.YoutubeID,
			VimeoID:            doc.VimeoID,
		})
	}
	return rows, nil
}

// contentTypeFilter 将 images/videos 过滤翻译成 content_type 精确匹配。
func contentTypeFilter(contentType string) map[string]interface{} {
	var value string
	switch contentType {
	case search.FilterImages:
		value = model.ContentTypeImage
	case search.FilterVideos:
		value = model.ContentTypeVideo
	default:
		return nil
	}
	return map[string]interface{}{
		"term": map[string]interface{}{"content_type": value},
	}
}

// textQuery 构造无向量时的退路查询：
// 有查询词做 multi_match，空查询返回全部（配合过滤）。
func textQuery(params search.Params) map[string]interface{} {
	var base map[string]interface{}
	if params.Query != "" {
		base = map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  params.Query,
				"fields": []string{"content_title^2", "content_description", "project_title^2", "bio"},
			},
		}
	} else {
		base = map[string]interface{}{"match_all": map[string]interface{}{}}
	}

	f := contentTypeFilter(params.ContentType)
	if f == nil {
		return base
	}
	return map[string]interface{}{
		"bool": map[string]interface{}{
			"must":   base,
			"filter": f,
		},
	}
}
