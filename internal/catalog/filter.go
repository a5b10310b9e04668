// Package catalog 电影列表查询的纯逻辑部分：过滤条件、排序规则与分页计算。
// 不依赖数据库，由 repository 负责把结果翻译成 SQL。
package catalog

import (
	"math"
	"strconv"
	"strings"
)

// All 表示"不限"的哨兵值
const All = "All"

// Filter 列表过滤条件，零值表示不过滤
type Filter struct {
	Text      string
	Genre     string
	MinRating *float64
	Year      *int
}

// FilterParams 原始查询参数
type FilterParams struct {
	Query     string
	Genre     string
	MinRating string
	Year      string
}

// BuildFilter 将原始参数转换为过滤条件。
// 无法解析的评分和年份视为未提供，不会产生恒假条件。
func BuildFilter(p FilterParams) Filter {
	f := Filter{
		Text: strings.TrimSpace(p.Query),
	}

	if g := strings.TrimSpace(p.Genre); g != "" && g != All {
		f.Genre = g
	}

	if r := strings.TrimSpace(p.MinRating); r != "" {
		if v, err := strconv.ParseFloat(r, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			f.MinRating = &v
		}
	}

	if y := strings.TrimSpace(p.Year); y != "" && y != All {
		if v, err := strconv.Atoi(y); err == nil {
			f.Year = &v
		}
	}

	return f
}

// HasText 是否包含全文检索
func (f Filter) HasText() bool {
	return f.Text != ""
}
