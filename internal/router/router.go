package router

import (
	"github.com/gin-gonic/gin"
	"github.com/user/cinemax/internal/handler"
	"github.com/user/cinemax/internal/middleware"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	handler.RegisterValidators()

	requireAuth := middleware.RequireAuth(h.Config.AppSecret)
	limit := middleware.RateLimit(h.SubmitLimiter)

	// 健康检查
	r.GET("/health", h.Health)

	api := r.Group("/api")

	// ==================== 电影 ====================
	movies := api.Group("/movies")
	{
		movies.GET("", h.ListMovies)
		movies.GET("/genres", h.Genres)
		movies.GET("/years", h.Years)
		movies.GET("/genre/:genre", h.GenreMovies)
		movies.GET("/year/:year", h.YearMovies)
		movies.GET("/:slug", h.MovieDetail)

		movies.POST("", requireAuth, h.AdminMovieCreate)
		movies.GET("/admin", requireAuth, h.AdminMovies)
		movies.GET("/admin/:id", requireAuth, h.AdminMovieGet)
		movies.PUT("/admin/:id", requireAuth, h.AdminMovieUpdate)
		movies.DELETE("/admin/:id", requireAuth, h.AdminMovieDelete)
	}

	// ==================== 求片 ====================
	recs := api.Group("/recommendations")
	{
		recs.POST("", limit, h.SubmitRecommendation)
		recs.GET("/my-updates", h.MyUpdates)
		recs.POST("/my-updates", h.AcknowledgeUpdates)

		recs.GET("", requireAuth, h.AdminRecommendations)
		recs.POST("/admin/:id/added", requireAuth, h.AdminRecommendationAdded)
		recs.DELETE("/admin/:id", requireAuth, h.AdminRecommendationDelete)
	}

	// ==================== 留言 ====================
	contact := api.Group("/contact")
	{
		contact.POST("", limit, h.SubmitContact)
		contact.GET("/admin", requireAuth, h.AdminContacts)
		contact.DELETE("/admin/:id", requireAuth, h.AdminContactDelete)
	}

	// ==================== 后台通知 ====================
	notifications := api.Group("/notifications", requireAuth)
	{
		notifications.GET("", h.AdminNotifications)
		notifications.PUT("", h.AdminNotificationsRead)
	}

	// ==================== 认证 ====================
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", middleware.OptionalAuth(h.Config.AppSecret), h.Me)
	}
}
