package search

import (
	"context"
	"creatorhub-go/pkg/log"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.Init("error", "console", "")
	os.Exit(m.Run())
}

// stubCompletion 返回固定补全结果或固定错误的文本生成桩。
type stubCompletion struct {
	out string
	err error
}

func (s stubCompletion) Complete(_ context.Context, _ string) (string, error) {
	return s.out, s.err
}

func TestEnhanceFailureReturnsOriginal(t *testing.T) {
	e := NewEnhancer(stubCompletion{err: errors.New("quota exceeded")})
	// 失败时必须逐字节原样返回，包括空白与标点
	query := "  Sunset Photography!  "
	assert.Equal(t, query, e.Enhance(context.Background(), query, DomainMedia))
}

func TestEnhanceBlankQueryPassthrough(t *testing.T) {
	e := NewEnhancer(stubCompletion{out: "should not matter"})
	assert.Equal(t, "", e.Enhance(context.Background(), "", DomainCreators))
	assert.Equal(t, "   ", e.Enhance(context.Background(), "   ", DomainCreators))
}

func TestEnhanceTermPreservation(t *testing.T) {
	// 模型把 sunset 弄丢了，增强器必须补回
	e := NewEnhancer(stubCompletion{out: "beach coastline"})
	got := e.Enhance(context.Background(), "sunset beach", DomainMedia)

	tokens := Tokenize(got)
	assert.Contains(t, tokens, "sunset")
	assert.Contains(t, tokens, "beach")
}

func TestEnhanceTermPreservationIgnoresCaseAndPunctuation(t *testing.T) {
	e := NewEnhancer(stubCompletion{out: "SUNSET, beach."})
	got := e.Enhance(context.Background(), "Sunset Beach!", DomainMedia)

	tokens := Tokenize(got)
	assert.Contains(t, tokens, "sunset")
	assert.Contains(t, tokens, "beach")
}

func TestEnhanceNewTokenCap(t *testing.T) {
	tests := []struct {
		name   string
		domain Domain
		cap    int
	}{
		{"creators 域上限 1", DomainCreators, 1},
		{"projects 域上限 3", DomainProjects, 3},
		{"images 域上限 2", DomainImages, 2},
		{"media 域上限 2", DomainMedia, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 模型塞进来 5 个新词，超出上限的必须被丢弃
			e := NewEnhancer(stubCompletion{out: "sunset beach golden warm glow coastal dusk"})
			got := e.Enhance(context.Background(), "sunset beach", tt.domain)

			origSet := map[string]struct{}{"sunset": {}, "beach": {}}
			newCount := 0
			for _, tok := range Tokenize(got) {
				if _, ok := origSet[tok]; !ok {
					newCount++
				}
			}
			assert.LessOrEqual(t, newCount, tt.cap)
			// 原词仍需全部保留
			assert.Contains(t, Tokenize(got), "sunset")
			assert.Contains(t, Tokenize(got), "beach")
		})
	}
}

func TestEnhanceStripsGenericTrailingWords(t *testing.T) {
	e := NewEnhancer(stubCompletion{out: "sunset beach portfolio images"})
	got := e.Enhance(context.Background(), "sunset beach", DomainProjects)

	// 尾部的 images 与 portfolio 都应被剥掉
	require.Equal(t, []string{"sunset", "beach"}, Tokenize(got))
}

func TestEnhanceKeepsGenericWordTypedByUser(t *testing.T) {
	// 用户自己输入的 portfolio 不算模型附加的通用尾词
	e := NewEnhancer(stubCompletion{out: "portfolio tips"})
	got := e.Enhance(context.Background(), "portfolio tips", DomainCreators)

	assert.Contains(t, Tokenize(got), "portfolio")
	assert.Contains(t, Tokenize(got), "tips")
}

func TestEnhanceAdditiveNewTokenKept(t *testing.T) {
	e := NewEnhancer(stubCompletion{out: "sunset beach golden"})
	got := e.Enhance(context.Background(), "sunset beach", DomainImages)

	assert.Equal(t, []string{"sunset", "beach", "golden"}, Tokenize(got))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"sunset", "beach", "4k"}, Tokenize("  Sunset,  BEACH! 4k "))
	assert.Nil(t, Tokenize("!!! ,,, ..."))
	assert.Nil(t, Tokenize(""))
}
