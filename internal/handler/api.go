package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/user/cinemax/internal/catalog"
	"github.com/user/cinemax/internal/service"
	"github.com/user/cinemax/internal/utils"
)

// listParams 从查询参数读取列表条件：q, genre, minRating, year, sort, page, limit
func listParams(c *gin.Context) service.ListParams {
	return service.ListParams{
		FilterParams: catalog.FilterParams{
			Query:     c.Query("q"),
			Genre:     c.Query("genre"),
			MinRating: c.Query("minRating"),
			Year:      c.Query("year"),
		},
		Sort:  c.Query("sort"),
		Page:  catalog.ParsePage(c.Query("page")),
		Limit: catalog.ParseLimit(c.Query("limit")),
	}
}

// ListMovies 首页/分页列表/搜索建议
// GET /api/movies?q&genre&minRating&year&sort&page&limit
func (h *Handler) ListMovies(c *gin.Context) {
	res, err := h.Catalog.List(c.Request.Context(), listParams(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.Success(c, res)
}

// Genres 类型目录，首位为 All
func (h *Handler) Genres(c *gin.Context) {
	genres, err := h.Catalog.Genres(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.Success(c, genres)
}

// Years 出现过的上映年份
func (h *Handler) Years(c *gin.Context) {
	years, err := h.Catalog.Years(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.Success(c, years)
}

// GenreMovies 类型页
func (h *Handler) GenreMovies(c *gin.Context) {
	page, err := h.Catalog.ByGenre(c.Request.Context(), c.Param("genre"), c.Query("sort"), catalog.ParsePage(c.Query("page")))
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.Success(c, page)
}

// YearMovies 年份页
func (h *Handler) YearMovies(c *gin.Context) {
	res, err := h.Catalog.ByYear(c.Request.Context(), c.Param("year"), c.Query("sort"), catalog.ParsePage(c.Query("page")))
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.Success(c, res)
}

// MovieDetail 电影详情
func (h *Handler) MovieDetail(c *gin.Context) {
	movie, err := h.Movies.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.Success(c, movie)
}
