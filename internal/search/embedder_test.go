package search

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEmbedding 返回固定向量或固定错误的嵌入桩。
type stubEmbedding struct {
	vec []float32
	err error
}

func (s stubEmbedding) CreateEmbedding(_ context.Context, _ string) ([]float32, error) {
	return s.vec, s.err
}

// passthroughEnhancer 构造一个增强调用必然失败、从而原样透传查询的 Enhancer。
func passthroughEnhancer() *Enhancer {
	return NewEnhancer(stubCompletion{err: errors.New("llm down")})
}

func TestEmbedBlankInputReturnsNil(t *testing.T) {
	g := NewGenerator(passthroughEnhancer(), stubEmbedding{vec: []float32{1}})
	assert.Nil(t, g.Embed(context.Background(), "", DomainMedia))
	assert.Nil(t, g.Embed(context.Background(), "   \t ", DomainMedia))
}

func TestEmbedUpstreamFailureReturnsNil(t *testing.T) {
	g := NewGenerator(passthroughEnhancer(), stubEmbedding{err: errors.New("embedding api 503")})
	assert.Nil(t, g.Embed(context.Background(), "sunset", DomainMedia))
}

func TestEmbedPadsShortVector(t *testing.T) {
	g := NewGenerator(passthroughEnhancer(), stubEmbedding{vec: []float32{0.1, 0.2, 0.3}})
	emb := g.Embed(context.Background(), "sunset", DomainMedia)

	require.NotNil(t, emb)
	require.Len(t, emb.Values, EmbeddingDimensions)
	assert.Equal(t, float32(0.1), emb.Values[0])
	assert.Equal(t, float32(0.3), emb.Values[2])
	// 其余维度补零
	assert.Equal(t, float32(0), emb.Values[3])
	assert.Equal(t, float32(0), emb.Values[EmbeddingDimensions-1])
}

func TestEmbedTruncatesLongVector(t *testing.T) {
	long := make([]float32, 1024)
	for i := range long {
		long[i] = float32(i)
	}
	g := NewGenerator(passthroughEnhancer(), stubEmbedding{vec: long})
	emb := g.Embed(context.Background(), "sunset", DomainMedia)

	require.NotNil(t, emb)
	require.Len(t, emb.Values, EmbeddingDimensions)
	assert.Equal(t, float32(EmbeddingDimensions-1), emb.Values[EmbeddingDimensions-1])
}

func TestEmbedSanitizesNonFiniteValues(t *testing.T) {
	vec := []float32{float32(math.NaN()), float32(math.Inf(1)), float32(math.Inf(-1)), 1.5}
	g := NewGenerator(passthroughEnhancer(), stubEmbedding{vec: vec})
	emb := g.Embed(context.Background(), "sunset", DomainMedia)

	require.NotNil(t, emb)
	assert.Equal(t, float32(0), emb.Values[0])
	assert.Equal(t, float32(0), emb.Values[1])
	assert.Equal(t, float32(0), emb.Values[2])
	assert.Equal(t, float32(1.5), emb.Values[3])

	// 任何情况下都不允许残留非有限值
	for i, v := range emb.Values {
		f := float64(v)
		assert.False(t, math.IsNaN(f) || math.IsInf(f, 0), "index %d", i)
	}
}

func TestEmbedExposesProcessedText(t *testing.T) {
	enhancer := NewEnhancer(stubCompletion{out: "sunset beach golden"})
	g := NewGenerator(enhancer, stubEmbedding{vec: []float32{1}})
	emb := g.Embed(context.Background(), "sunset beach", DomainImages)

	require.NotNil(t, emb)
	assert.Equal(t, "sunset beach golden", emb.ProcessedText)
}

func TestSanitizeVector(t *testing.T) {
	out := SanitizeVector([]float32{float32(math.NaN()), 2})
	require.Len(t, out, EmbeddingDimensions)
	assert.Equal(t, float32(0), out[0])
	assert.Equal(t, float32(2), out[1])
}
