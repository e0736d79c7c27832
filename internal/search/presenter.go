package search

import "creatorhub-go/internal/model"

// Present 将聚合结果序列化为 UI 层消费的响应信封。
// 分页作用在创作者粒度上：total 为命中的创作者总数，
// results 为当前页的创作者切片。
func Present(creators []model.CreatorWithContent, params Params, processedQuery string) *model.SearchResponse {
	total := len(creators)

	offset := (params.Page - 1) * params.Limit
	if offset > total {
		offset = total
	}
	end := offset + params.Limit
	if end > total {
		end = total
	}

	results := make([]model.CreatorWithContent, 0, end-offset)
	results = append(results, creators[offset:end]...)

	return &model.SearchResponse{
		Results:        results,
		Page:           params.Page,
		Limit:          params.Limit,
		Total:          total,
		Query:          params.Query,
		ContentType:    params.ContentType,
		ProcessedQuery: processedQuery,
	}
}
