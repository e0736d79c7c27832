// Package search 实现了搜索链路的核心：参数归一化、查询增强、
// 向量生成、结果聚合与响应组装。
package search

import (
	"strconv"
	"strings"
)

// 分页与过滤参数的边界值。
const (
	DefaultLimit = 10
	MinLimit     = 1
	MaxLimit     = 50
	DefaultPage  = 1
)

// 内容类型过滤取值
const (
	FilterAll    = "all"
	FilterImages = "images"
	FilterVideos = "videos"
)

// Params 是归一化后的搜索参数集。
type Params struct {
	Query       string
	ContentType string // all、images 或 videos
	Limit       int
	Page        int
}

// NormalizeParams 将未经校验的原始请求参数归一化为安全的类型化参数。
// 搜索是尽力而为的用户侧功能：任何非法输入都静默回退到安全默认值，
// 绝不因参数畸形而拒绝请求。
func NormalizeParams(query, contentType, limitRaw, pageRaw string) Params {
	p := Params{
		Query:       strings.TrimSpace(query),
		ContentType: FilterAll,
		Limit:       DefaultLimit,
		Page:        DefaultPage,
	}

	// contentType 仅接受枚举值，其余一律回退到 all
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case FilterImages:
		p.ContentType = FilterImages
	case FilterVideos:
		p.ContentType = FilterVideos
	}

	// limit：非数字缺省为 10，数字则收敛到 [1, 50]
	if limitRaw != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(limitRaw)); err == nil {
			p.Limit = clamp(n, MinLimit, MaxLimit)
		}
	}

	// page：非数字缺省为 1，数字最小为 1
	if pageRaw != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(pageRaw)); err == nil {
			if n < DefaultPage {
				n = DefaultPage
			}
			p.Page = n
		}
	}

	return p
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
