package handler

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/user/cinemax/internal/catalog"
	"github.com/user/cinemax/internal/config"
	"github.com/user/cinemax/internal/errs"
	"github.com/user/cinemax/internal/model"
	"github.com/user/cinemax/internal/repository"
	"github.com/user/cinemax/internal/service"
	"github.com/user/cinemax/internal/utils"
)

// CatalogService 列表查询
type CatalogService interface {
	List(ctx context.Context, p service.ListParams) (*catalog.Result, error)
	AdminList(ctx context.Context, p service.ListParams) (*catalog.Result, error)
	ByGenre(ctx context.Context, slug, sort string, page int) (*service.GenrePage, error)
	ByYear(ctx context.Context, year, sort string, page int) (*catalog.Result, error)
	Genres(ctx context.Context) ([]string, error)
	Years(ctx context.Context) ([]int, error)
}

// MovieService 电影管理
type MovieService interface {
	Create(ctx context.Context, in model.MovieInput) (*model.Movie, error)
	Update(ctx context.Context, id int, in model.MovieInput) (*model.Movie, error)
	Delete(ctx context.Context, id int) error
	Get(ctx context.Context, id int) (*model.Movie, error)
	GetBySlug(ctx context.Context, slug string) (*model.Movie, error)
}

// RecommendationService 求片
type RecommendationService interface {
	Submit(ctx context.Context, in service.RecommendationInput, clientIP string) (*model.Recommendation, error)
	List(ctx context.Context) ([]model.Recommendation, error)
	Fulfill(ctx context.Context, id int, movieSlug string) (*model.Recommendation, error)
	MyUpdates(ctx context.Context, userID, clientIP string) ([]model.Recommendation, error)
	Acknowledge(ctx context.Context, ids []int) (int64, error)
	Delete(ctx context.Context, id int) error
}

// ContactService 联系留言
type ContactService interface {
	Submit(ctx context.Context, in service.ContactInput) (*model.Contact, error)
	List(ctx context.Context) ([]model.Contact, error)
	Delete(ctx context.Context, id int) error
}

// NotificationService 后台通知
type NotificationService interface {
	Recent(ctx context.Context) (*service.NotificationFeed, error)
	MarkAllRead(ctx context.Context) (int64, error)
}

// AuthService 登录校验
type AuthService interface {
	Authenticate(ctx context.Context, email, password, clientIP string) (*model.User, error)
	Me(ctx context.Context, id int) (*model.User, error)
}

// Handler HTTP 处理器
type Handler struct {
	Config          *config.Config
	Catalog         CatalogService
	Movies          MovieService
	Recommendations RecommendationService
	Contacts        ContactService
	Notifications   NotificationService
	Auth            AuthService
	// 公开提交接口（求片、留言）的限流器
	SubmitLimiter *utils.RateLimiter
	Ping          func(ctx context.Context) error
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config, mailer service.Mailer) *Handler {
	notifications := service.NewNotificationService(repos.Notification)

	return &Handler{
		Config:          cfg,
		Catalog:         service.NewCatalogService(repos.Movie),
		Movies:          service.NewMovieService(repos.Movie, notifications),
		Recommendations: service.NewRecommendationService(repos.Recommendation, repos.Movie, mailer),
		Contacts:        service.NewContactService(repos.Contact),
		Notifications:   notifications,
		Auth:            service.NewAuthService(repos.User),
		SubmitLimiter:   utils.NewRateLimiter(5, 10*time.Minute, 10000),
		Ping:            repos.Conn.Ping,
	}
}

// Health 健康检查
func (h *Handler) Health(c *gin.Context) {
	if h.Ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.Ping(ctx); err != nil {
			log.Printf("[Health] 数据库不可用: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError 将应用错误映射为 HTTP 状态码；内部错误只返回通用信息
func (h *Handler) respondError(c *gin.Context, err error) {
	switch errs.ErrorCode(err) {
	case errs.EINVALID:
		utils.BadRequest(c, errs.ErrorMessage(err))
	case errs.ENOTFOUND:
		utils.NotFound(c, errs.ErrorMessage(err))
	case errs.ECONFLICT:
		utils.Conflict(c, errs.ErrorMessage(err))
	case errs.EUNAUTHORIZED:
		utils.Unauthorized(c)
	default:
		log.Printf("[Handler] %s %s 失败: %v", c.Request.Method, c.Request.URL.Path, err)
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
		_ = c.Error(err)
		utils.InternalServerError(c, errs.ErrorMessage(err))
	}
}

// bindJSON 绑定并校验请求体，失败时已写入 400
func (h *Handler) bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		utils.BadRequest(c, formatValidationError(err))
		return false
	}
	return true
}

// bindOptionalJSON 与 bindJSON 相同，但允许请求体为空（包括分块传输的空体）
func (h *Handler) bindOptionalJSON(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	utils.BadRequest(c, formatValidationError(err))
	return false
}

// paramID 解析路径中的数字 ID，失败时已写入 400
func paramID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		utils.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}
