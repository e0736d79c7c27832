package search

import (
	"context"
	"creatorhub-go/pkg/log"
	"math"
	"strings"
)

// EmbeddingDimensions 是送入相似度检索的向量的固定维度。
// 无论上游嵌入模型返回多少维，这里都归一到恰好 768 维，
// 保证索引内的向量形状兼容，不受模型版本切换影响。
const EmbeddingDimensions = 768

// EmbeddingClient 是向量生成所需的外部嵌入能力接口。
type EmbeddingClient interface {
	CreateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// QueryEmbedding 是查询文本的定长向量表示。
// ProcessedText 暴露增强后的查询文本，便于调用方透传与排障。
type QueryEmbedding struct {
	Values        []float32
	ProcessedText string
}

// Generator 将查询文本转换为经过清洗的定长向量。
type Generator struct {
	enhancer *Enhancer
	client   EmbeddingClient
}

// NewGenerator 创建一个新的 Generator 实例。
func NewGenerator(enhancer *Enhancer, client EmbeddingClient) *Generator {
	return &Generator{enhancer: enhancer, client: client}
}

// Embed 先对文本执行查询增强，再调用外部嵌入函数并做两步防御处理：
//  1. 清洗：NaN/±Inf 元素置 0 —— 一个坏分量就足以污染整个相似度计算，
//     静默清零比传播或崩溃安全得多；
//  2. 维度归一：不足 768 补零，超出 768 截断。
//
// 空白输入直接返回 nil，不发起任何外部调用；嵌入调用失败同样返回 nil，
// 由调用方决定是否退回纯文本匹配路径。
func (g *Generator) Embed(ctx context.Context, text string, domain Domain) *QueryEmbedding {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	processed := g.enhancer.Enhance(ctx, text, domain)

	raw, err := g.client.CreateEmbedding(ctx, processed)
	if err != nil {
		log.Warnf("[Generator] 生成查询向量失败, 降级为无向量检索, error: %v", err)
		return nil
	}

	values := make([]float32, EmbeddingDimensions)
	n := len(raw)
	if n > EmbeddingDimensions {
		n = EmbeddingDimensions
	}
	for i := 0; i < n; i++ {
		v := float64(raw[i])
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue // 保持为 0
		}
		values[i] = raw[i]
	}
	if len(raw) != EmbeddingDimensions {
		log.Infof("[Generator] 原始向量维度 %d 已归一到 %d", len(raw), EmbeddingDimensions)
	}

	return &QueryEmbedding{
		Values:        values,
		ProcessedText: processed,
	}
}

// SanitizeVector 对索引侧向量做与查询侧相同的清洗与维度归一。
// 写入与查询共用同一套规则，避免索引里出现形状不兼容的向量。
func SanitizeVector(raw []float32) []float32 {
	values := make([]float32, EmbeddingDimensions)
	n := len(raw)
	if n > EmbeddingDimensions {
		n = EmbeddingDimensions
	}
	for i := 0; i < n; i++ {
		v := float64(raw[i])
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		values[i] = raw[i]
	}
	return values
}
