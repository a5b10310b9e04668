package catalog

import (
	"errors"

	"github.com/user/cinemax/internal/model"
)

// ErrQueryFailed 查询执行失败，不返回部分结果
var ErrQueryFailed = errors.New("query failed")

// Query 一次列表查询的完整描述
type Query struct {
	Filter Filter
	Order  Order
	Window Window
}

// NewQuery 组合过滤、排序与分页
func NewQuery(f Filter, sortKey string, w Window) Query {
	return Query{
		Filter: f,
		Order:  ResolveSort(sortKey, f.HasText()),
		Window: w,
	}
}

// Result 列表查询结果
type Result struct {
	Movies     []model.Movie `json:"movies"`
	Pagination Pagination    `json:"pagination"`
}
