package search

import (
	"creatorhub-go/internal/model"
	"sort"
)

// Aggregate 将打平的原始检索行折叠为 creator -> project -> media 的嵌套结构。
// 纯函数：给定相同的输入顺序，输出完全确定；对行的原始顺序不做任何假设，
// 自身的排序结果是权威的。
//
// 规则：
//   - 创作者按首次出现顺序建档，total_score 取其所有匹配内容得分的最大值
//     （绝不求和、绝不平均：多产不该被惩罚，大量弱匹配也不该凑出高分）；
//   - 项目在创作者内线性查找（每次搜索单创作者的项目基数很小，无需索引），
//     final_score 取该项目下最佳匹配行的得分，与行到达顺序无关；
//   - 内容条目按 content_id 去重后路由进 images/videos（同一条目可能因
//     命中多个向量分块而重复出现）；
//   - 缺失 creator/project/content 标识的行防御性跳过，单条坏行不能拖垮整页结果；
//   - 全部行消费完后统一排序：项目按 final_score 降序，图片按 order 升序
//     （缺失按 0），视频保持插入顺序，创作者按 total_score 降序。
func Aggregate(rows []model.RawSearchResult) []model.CreatorWithContent {
	creators := make([]model.CreatorWithContent, 0)
	creatorIndex := make(map[uint]int)

	for _, row := range rows {
		// 防御性校验：身份缺失的行直接跳过
		if row.CreatorID == 0 || row.ProjectID == 0 || row.ContentID == "" {
			continue
		}
		if row.ContentType != model.ContentTypeImage && row.ContentType != model.ContentTypeVideo {
			continue
		}

		idx, ok := creatorIndex[row.CreatorID]
		if !ok {
			creators = append(creators, model.CreatorWithContent{
				Creator: model.CreatorProfile{
					ID:           row.CreatorID,
					Username:     row.CreatorUsername,
					Location:     row.Location,
					Bio:          row.Bio,
					PrimaryRoles: row.PrimaryRoles,
					SocialLinks:  row.SocialLinks,
					WorkEmail:    row.WorkEmail,
				},
				Projects:   []model.ProjectContent{},
				TotalScore: 0,
			})
			idx = len(creators) - 1
			creatorIndex[row.CreatorID] = idx
		}
		creator := &creators[idx]

		// 项目线性查找，final_score 对每条到达行取运行中的最大值
		var project *model.ProjectContent
		for i := range creator.Projects {
			if creator.Projects[i].ID == row.ProjectID {
				project = &creator.Projects[i]
				break
			}
		}
		if project != nil {
			if row.ContentScore > project.FinalScore {
				project.FinalScore = row.ContentScore
			}
		} else {
			creator.Projects = append(creator.Projects, model.ProjectContent{
				ID:         row.ProjectID,
				Title:      row.ProjectTitle,
				FinalScore: row.ContentScore,
				Images:     []model.MediaEntry{},
				Videos:     []model.MediaEntry{},
			})
			project = &creator.Projects[len(creator.Projects)-1]
		}

		entry := model.MediaEntry{
			ID:          row.ContentID,
			URL:         row.ContentURL,
			Title:       row.ContentTitle,
			Description: row.ContentDescription,
			Order:       row.DisplayOrder,
			YoutubeID:   row.YoutubeID,
			VimeoID:     row.VimeoID,
		}

		// content_id 去重：同一条目绝不在列表中出现两次
		switch row.ContentType {
		case model.ContentTypeImage:
			if !containsEntry(project.Images, row.ContentID) {
				project.Images = append(project.Images, entry)
			}
		case model.ContentTypeVideo:
			// URL 为 null 但携带 youtube_id/vimeo_id 的视频同样是合法条目
			if !containsEntry(project.Videos, row.ContentID) {
				project.Videos = append(project.Videos, entry)
			}
		}

		// 运行中的最大值，绝不累加
		if row.ContentScore > creator.TotalScore {
			creator.TotalScore = row.ContentScore
		}
	}

	// 统一排序（稳定排序保证同分时维持插入顺序）
	for i := range creators {
		c := &creators[i]
		sort.SliceStable(c.Projects, func(a, b int) bool {
			return c.Projects[a].FinalScore > c.Projects[b].FinalScore
		})
		for j := range c.Projects {
			images := c.Projects[j].Images
			sort.SliceStable(images, func(a, b int) bool {
				return images[a].Order < images[b].Order
			})
		}
	}
	sort.SliceStable(creators, func(a, b int) bool {
		return creators[a].TotalScore > creators[b].TotalScore
	})

	return creators
}

func containsEntry(entries []model.MediaEntry, contentID string) bool {
	for _, e := range entries {
		if e.ID == contentID {
			return true
		}
	}
	return false
}
