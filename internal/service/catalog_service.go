package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/user/cinemax/internal/catalog"
	"github.com/user/cinemax/internal/errs"
	"golang.org/x/sync/singleflight"
)

// MovieQuerier 列表查询所需的存储能力
type MovieQuerier interface {
	Search(ctx context.Context, q catalog.Query) (*catalog.Result, error)
	DistinctGenres(ctx context.Context) ([]string, error)
	DistinctYears(ctx context.Context) ([]int, error)
}

// ListParams 列表请求参数
type ListParams struct {
	catalog.FilterParams
	Sort  string
	Page  int
	Limit int
}

// GenrePage 类型页结果
type GenrePage struct {
	Genre string `json:"genre"`
	*catalog.Result
}

// CatalogService 所有列表入口（首页、分页、类型页、年份页、后台）共用的查询服务
type CatalogService struct {
	movies MovieQuerier
	group  singleflight.Group
}

// NewCatalogService 创建列表服务
func NewCatalogService(movies MovieQuerier) *CatalogService {
	return &CatalogService{movies: movies}
}

// List 按过滤条件分页查询
func (s *CatalogService) List(ctx context.Context, p ListParams) (*catalog.Result, error) {
	return s.run(ctx, catalog.BuildFilter(p.FilterParams), p.Sort, catalog.NewWindow(p.Page, p.Limit))
}

// AdminList 后台全量列表，使用固定的大窗口
func (s *CatalogService) AdminList(ctx context.Context, p ListParams) (*catalog.Result, error) {
	return s.run(ctx, catalog.BuildFilter(p.FilterParams), p.Sort, catalog.NewWindow(p.Page, catalog.AdminPageSize))
}

// ByGenre 类型页：slug 需能在类型目录中找到
func (s *CatalogService) ByGenre(ctx context.Context, slug, sort string, page int) (*GenrePage, error) {
	genres, err := s.Genres(ctx)
	if err != nil {
		return nil, err
	}

	genre, ok := catalog.ResolveGenre(genres, strings.ToLower(slug))
	if !ok {
		return nil, errs.Errorf(errs.ENOTFOUND, "Genre not found")
	}

	res, err := s.run(ctx, catalog.BuildFilter(catalog.FilterParams{Genre: genre}), sort, catalog.NewWindow(page, catalog.DefaultPageSize))
	if err != nil {
		return nil, err
	}
	return &GenrePage{Genre: genre, Result: res}, nil
}

// ByYear 年份页：非数字年份直接视为不存在，非四位年份且没有结果时同样视为不存在
func (s *CatalogService) ByYear(ctx context.Context, year, sort string, page int) (*catalog.Result, error) {
	if _, err := strconv.Atoi(year); err != nil {
		return nil, errs.Errorf(errs.ENOTFOUND, "Year not found")
	}

	res, err := s.run(ctx, catalog.BuildFilter(catalog.FilterParams{Year: year}), sort, catalog.NewWindow(page, catalog.DefaultPageSize))
	if err != nil {
		return nil, err
	}
	if res.Pagination.TotalMovies == 0 && !catalog.IsYear(year) {
		return nil, errs.Errorf(errs.ENOTFOUND, "Year not found")
	}
	return res, nil
}

// Genres 类型目录，首位为 All。并发请求共享同一次查询
func (s *CatalogService) Genres(ctx context.Context) ([]string, error) {
	// 共享的查询不能随第一个调用方的请求一起被取消
	shared := context.WithoutCancel(ctx)
	v, err, _ := s.group.Do("genres", func() (interface{}, error) {
		genres, err := s.movies.DistinctGenres(shared)
		if err != nil {
			return nil, err
		}
		return catalog.GenreDirectory(genres), nil
	})
	if err != nil {
		return nil, internalError("Failed to fetch genres", err)
	}

	// 调用方可能修改返回值，复制一份
	dir := v.([]string)
	out := make([]string, len(dir))
	copy(out, dir)
	return out, nil
}

// Years 出现过的上映年份，降序
func (s *CatalogService) Years(ctx context.Context) ([]int, error) {
	years, err := s.movies.DistinctYears(ctx)
	if err != nil {
		return nil, internalError("Failed to fetch years", err)
	}
	return years, nil
}

func (s *CatalogService) run(ctx context.Context, f catalog.Filter, sort string, w catalog.Window) (*catalog.Result, error) {
	res, err := s.movies.Search(ctx, catalog.NewQuery(f, sort, w))
	if err != nil {
		return nil, internalError(catalog.ErrQueryFailed.Error(), err)
	}
	return res, nil
}
