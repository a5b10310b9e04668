package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/user/cinemax/internal/model"
	"github.com/user/cinemax/internal/utils"
)

// AdminMovies 后台电影列表（同一查询引擎，大窗口）
func (h *Handler) AdminMovies(c *gin.Context) {
	res, err := h.Catalog.AdminList(c.Request.Context(), listParams(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.Success(c, res)
}

// AdminMovieCreate 创建电影
func (h *Handler) AdminMovieCreate(c *gin.Context) {
	var in model.MovieInput
	if !h.bindJSON(c, &in) {
		return
	}

	movie, err := h.Movies.Create(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.Created(c, movie)
}

// AdminMovieGet 后台获取电影
func (h *Handler) AdminMovieGet(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	movie, err := h.Movies.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.Success(c, movie)
}

// AdminMovieUpdate 更新电影
func (h *Handler) AdminMovieUpdate(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var in model.MovieInput
	if !h.bindJSON(c, &in) {
		return
	}

	movie, err := h.Movies.Update(c.Request.Context(), id, in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.Success(c, movie)
}

// AdminMovieDelete 删除电影
func (h *Handler) AdminMovieDelete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.Movies.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	utils.Message(c, "Movie deleted successfully")
}

// AdminNotifications 最近的后台通知
func (h *Handler) AdminNotifications(c *gin.Context) {
	feed, err := h.Notifications.Recent(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.Success(c, feed)
}

// AdminNotificationsRead 全部标记已读
func (h *Handler) AdminNotificationsRead(c *gin.Context) {
	n, err := h.Notifications.MarkAllRead(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Notifications marked as read", "updated": n})
}
