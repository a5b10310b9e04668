package catalog

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultPageSize 前台列表每页条数
	DefaultPageSize = 18
	// AdminPageSize 后台"全部"列表的窗口大小
	AdminPageSize = 1000
)

// Window 分页窗口
type Window struct {
	Page int
	Size int
}

// MaxPage 页码上限，保证 (page-1)*size 在不超过 AdminPageSize 的窗口下不溢出
const MaxPage = math.MaxInt / AdminPageSize

// NewWindow 创建分页窗口，页码小于 1 时按第 1 页处理，超过 MaxPage 时截断
func NewWindow(page, size int) Window {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > AdminPageSize {
		size = AdminPageSize
	}
	return Window{Page: page, Size: size}
}

// ParsePage 解析页码参数，非法值返回第 1 页；过大的页码截断为 MaxPage（结果为空页）
func ParsePage(raw string) int {
	p, err := strconv.Atoi(raw)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
			return MaxPage
		}
		return 1
	}
	if p < 1 {
		return 1
	}
	if p > MaxPage {
		return MaxPage
	}
	return p
}

// ParseLimit 解析 limit 参数，只接受 1..DefaultPageSize
func ParseLimit(raw string) int {
	l, err := strconv.Atoi(raw)
	if err != nil || l < 1 || l > DefaultPageSize {
		return DefaultPageSize
	}
	return l
}

// Offset 跳过的条数
func (w Window) Offset() int {
	return (w.Page - 1) * w.Size
}

// Pagination 分页元数据
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalMovies int64 `json:"totalMovies"`
	HasMore     bool  `json:"hasMore"`
}

// Paginate 根据总数计算分页元数据
func (w Window) Paginate(total int64) Pagination {
	totalPages := 0
	if total > 0 {
		size := int64(w.Size)
		totalPages = int((total + size - 1) / size)
	}
	return Pagination{
		CurrentPage: w.Page,
		TotalPages:  totalPages,
		TotalMovies: total,
		HasMore:     w.Page < totalPages,
	}
}
