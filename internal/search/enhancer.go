package search

import (
	"context"
	"creatorhub-go/pkg/log"
	"fmt"
	"regexp"
	"strings"
)

// CompletionClient 是查询增强所需的文本生成能力接口。
// 以接口注入而非绑定具体厂商 SDK，便于用桩实现测试。
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Domain 标识查询面向的检索域，不同域使用不同的改写模板与新增词上限。
type Domain string

const (
	DomainCreators Domain = "creators"
	DomainProjects Domain = "projects"
	DomainImages   Domain = "images"
	DomainMedia    Domain = "media"
)

// promptTemplate 携带域专属的改写指令与新增词上限。
// 上限过大会导致模型向通用营销词汇漂移，实测会降低向量召回质量。
type promptTemplate struct {
	instruction  string
	maxNewTokens int
}

var domainTemplates = map[Domain]promptTemplate{
	DomainCreators: {
		instruction:  "Rewrite this query for finding creative professionals by name, role or specialty. Keep every word from the original query. Add at most %d new word. Return only the rewritten query, nothing else.",
		maxNewTokens: 1,
	},
	DomainProjects: {
		instruction:  "Rewrite this query for finding creative portfolio projects. Keep every word from the original query. Add at most %d new words that describe the visual style or subject. Return only the rewritten query, nothing else.",
		maxNewTokens: 3,
	},
	DomainImages: {
		instruction:  "Rewrite this query for finding images in creative portfolios. Keep every word from the original query. Add at most %d new words. Return only the rewritten query, nothing else.",
		maxNewTokens: 2,
	},
	DomainMedia: {
		instruction:  "Rewrite this query for finding images and videos in creative portfolios. Keep every word from the original query. Add at most %d new words. Return only the rewritten query, nothing else.",
		maxNewTokens: 2,
	},
}

// genericSuffixes 枚举了模型无视指令也倾向于附加的通用尾词。
var genericSuffixes = map[string]struct{}{
	"portfolio":  {},
	"portfolios": {},
	"project":    {},
	"projects":   {},
	"image":      {},
	"images":     {},
	"photo":      {},
	"photos":     {},
	"work":       {},
	"works":      {},
}

var (
	rePunct = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)
	reSpace = regexp.MustCompile(`\s+`)
)

// Enhancer 将自由文本查询改写为更适合向量检索的形式。
type Enhancer struct {
	llm CompletionClient
}

// NewEnhancer 创建一个新的 Enhancer 实例。
func NewEnhancer(llm CompletionClient) *Enhancer {
	return &Enhancer{llm: llm}
}

// Enhance 对查询做域相关的改写，并保证两条不变式：
//  1. 词项保留：原查询的每个词（忽略大小写与标点）都出现在输出中；
//  2. 新增上限：新增词数不超过域上限。
//
// 增强是锦上添花而非硬依赖：文本生成调用的任何失败都会被捕获，
// 并原样返回用户输入的查询。
func (e *Enhancer) Enhance(ctx context.Context, query string, domain Domain) string {
	if strings.TrimSpace(query) == "" {
		return query
	}

	tpl, ok := domainTemplates[domain]
	if !ok {
		tpl = domainTemplates[DomainMedia]
	}

	prompt := fmt.Sprintf(tpl.instruction, tpl.maxNewTokens) + "\n\nQuery: " + query
	out, err := e.llm.Complete(ctx, prompt)
	if err != nil {
		// 失败时降级为字面查询，绝不让增强拖垮整个搜索请求
		log.Warnf("[Enhancer] 查询增强调用失败, 回退到原始查询, domain: %s, error: %v", domain, err)
		return query
	}

	origTokens := Tokenize(query)
	origSet := make(map[string]struct{}, len(origTokens))
	for _, t := range origTokens {
		origSet[t] = struct{}{}
	}

	tokens := Tokenize(out)

	// 去掉模型惯性附加的通用尾词（用户自己输入的除外）
	for len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		_, generic := genericSuffixes[last]
		_, fromUser := origSet[last]
		if !generic || fromUser {
			break
		}
		tokens = tokens[:len(tokens)-1]
	}

	// 新增词上限：超出上限的新词按出现顺序丢弃
	kept := make([]string, 0, len(tokens))
	newCount := 0
	for _, t := range tokens {
		if _, ok := origSet[t]; ok {
			kept = append(kept, t)
			continue
		}
		if newCount < tpl.maxNewTokens {
			kept = append(kept, t)
			newCount++
		}
	}

	// 词项保留：原查询中缺失的词全部补回，保证增强对调用方是严格可加的
	keptSet := make(map[string]struct{}, len(kept))
	for _, t := range kept {
		keptSet[t] = struct{}{}
	}
	for _, t := range origTokens {
		if _, ok := keptSet[t]; !ok {
			kept = append(kept, t)
			keptSet[t] = struct{}{}
		}
	}

	if len(kept) == 0 {
		return query
	}

	result := strings.Join(kept, " ")
	if result != query {
		log.Infof("[Enhancer] 查询增强完成, domain: %s, '%s' -> '%s'", domain, query, result)
	}
	return result
}

// Tokenize 将文本转为小写、去除标点并按空白切分。
// 增强器的词项比较与聚合测试共用这一套切词规则。
func Tokenize(s string) []string {
	lower := strings.ToLower(s)
	stripped := rePunct.ReplaceAllString(lower, " ")
	collapsed := strings.TrimSpace(reSpace.ReplaceAllString(stripped, " "))
	if collapsed == "" {
		return nil
	}
	return strings.Split(collapsed, " ")
}
