package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeParams(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		contentType string
		limit       string
		page        string
		want        Params
	}{
		{
			name: "全部缺省",
			want: Params{Query: "", ContentType: "all", Limit: 10, Page: 1},
		},
		{
			name:        "合法参数原样通过",
			query:       "sunset photography",
			contentType: "images",
			limit:       "25",
			page:        "3",
			want:        Params{Query: "sunset photography", ContentType: "images", Limit: 25, Page: 3},
		},
		{
			name:  "查询两端空白被裁剪",
			query: "  sunset  ",
			want:  Params{Query: "sunset", ContentType: "all", Limit: 10, Page: 1},
		},
		{
			name:        "非法内容类型回退到 all",
			contentType: "audio",
			want:        Params{Query: "", ContentType: "all", Limit: 10, Page: 1},
		},
		{
			name:        "内容类型大小写不敏感",
			contentType: "Videos",
			want:        Params{Query: "", ContentType: "videos", Limit: 10, Page: 1},
		},
		{
			name:  "limit 超上限收敛到 50",
			limit: "500",
			want:  Params{Query: "", ContentType: "all", Limit: 50, Page: 1},
		},
		{
			name:  "limit 为 0 收敛到 1",
			limit: "0",
			want:  Params{Query: "", ContentType: "all", Limit: 1, Page: 1},
		},
		{
			name:  "limit 为负数收敛到 1",
			limit: "-7",
			want:  Params{Query: "", ContentType: "all", Limit: 1, Page: 1},
		},
		{
			name:  "limit 非数字缺省为 10",
			limit: "abc",
			want:  Params{Query: "", ContentType: "all", Limit: 10, Page: 1},
		},
		{
			name: "page 为 0 缺省为 1",
			page: "0",
			want: Params{Query: "", ContentType: "all", Limit: 10, Page: 1},
		},
		{
			name: "page 非数字缺省为 1",
			page: "first",
			want: Params{Query: "", ContentType: "all", Limit: 10, Page: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeParams(tt.query, tt.contentType, tt.limit, tt.page)
			assert.Equal(t, tt.want, got)
		})
	}
}

// 不管输入多畸形，limit 必须落在 [1,50]，page 必须 >= 1。
func TestNormalizeParamsBounds(t *testing.T) {
	junk := []string{"", "-999999", "0", "1", "50", "51", "99999999", "NaN", "1.5", "  ", "ten", "0x10"}
	for _, l := range junk {
		for _, p := range junk {
			got := NormalizeParams("q", "junk", l, p)
			assert.GreaterOrEqual(t, got.Limit, MinLimit, "limit=%q", l)
			assert.LessOrEqual(t, got.Limit, MaxLimit, "limit=%q", l)
			assert.GreaterOrEqual(t, got.Page, DefaultPage, "page=%q", p)
		}
	}
}
