package service

import (
	"context"
	"log"
	"strings"

	"github.com/user/cinemax/internal/errs"
	"github.com/user/cinemax/internal/model"
	"github.com/user/cinemax/internal/utils"
)

// RecommendationStore 求片存储
type RecommendationStore interface {
	Create(ctx context.Context, rec *model.Recommendation) error
	List(ctx context.Context) ([]model.Recommendation, error)
	FindByID(ctx context.Context, id int) (*model.Recommendation, error)
	MarkAdded(ctx context.Context, id int, from, movieSlug string) (bool, error)
	FindUpdates(ctx context.Context, userID, ipHash string) ([]model.Recommendation, error)
	MarkNotified(ctx context.Context, ids []int) (int64, error)
	Delete(ctx context.Context, id int) error
}

// MovieFinder 按 slug 查电影
type MovieFinder interface {
	FindBySlug(ctx context.Context, slug string) (*model.Movie, error)
}

// RecommendationInput 公开提交的求片
type RecommendationInput struct {
	MovieName string `json:"movieName" binding:"required,max=200"`
	Email     string `json:"email" binding:"omitempty,email"`
	UserID    string `json:"userId" binding:"max=100"`
}

// RecommendationService 求片：提交、上架、通知
type RecommendationService struct {
	store  RecommendationStore
	movies MovieFinder
	mailer Mailer
}

// NewRecommendationService 创建求片服务
func NewRecommendationService(store RecommendationStore, movies MovieFinder, mailer Mailer) *RecommendationService {
	if mailer == nil {
		mailer = NoopMailer{}
	}
	return &RecommendationService{store: store, movies: movies, mailer: mailer}
}

// Submit 提交求片，IP 只保存哈希
func (s *RecommendationService) Submit(ctx context.Context, in RecommendationInput, clientIP string) (*model.Recommendation, error) {
	name := strings.TrimSpace(in.MovieName)
	if name == "" {
		return nil, errs.Errorf(errs.EINVALID, "Movie name is required")
	}

	rec := &model.Recommendation{
		MovieName: name,
		Email:     strings.TrimSpace(in.Email),
		UserID:    strings.TrimSpace(in.UserID),
		IPHash:    utils.HashIP(clientIP),
		Status:    model.RecommendationPending,
	}
	if err := s.store.Create(ctx, rec); err != nil {
		return nil, internalError("Failed to submit recommendation", err)
	}
	return rec, nil
}

// List 后台列表
func (s *RecommendationService) List(ctx context.Context) ([]model.Recommendation, error) {
	recs, err := s.store.List(ctx)
	if err != nil {
		return nil, internalError("Failed to fetch recommendations", err)
	}
	return recs, nil
}

// Fulfill 标记为已上架。仅 pending 可上架；有邮箱时发送一次通知邮件，
// 邮件失败不回滚状态。
func (s *RecommendationService) Fulfill(ctx context.Context, id int, movieSlug string) (*model.Recommendation, error) {
	rec, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, internalError("Failed to fetch recommendation", err)
	}
	if rec == nil {
		return nil, errs.Errorf(errs.ENOTFOUND, "Recommendation not found")
	}
	if rec.Status != model.RecommendationPending {
		return nil, errs.Errorf(errs.ECONFLICT, "Recommendation is already %s", rec.Status)
	}

	movieSlug = strings.TrimSpace(movieSlug)
	if movieSlug != "" {
		movie, err := s.movies.FindBySlug(ctx, movieSlug)
		if err != nil {
			return nil, internalError("Failed to fetch movie", err)
		}
		if movie == nil {
			return nil, errs.Errorf(errs.ENOTFOUND, "Movie not found")
		}
	}

	ok, err := s.store.MarkAdded(ctx, id, model.RecommendationPending, movieSlug)
	if err != nil {
		return nil, internalError("Failed to update recommendation", err)
	}
	if !ok {
		// 读取之后被其他管理员处理
		return nil, errs.Errorf(errs.ECONFLICT, "Recommendation was updated concurrently")
	}
	rec.Status = model.RecommendationAdded
	rec.MovieSlug = movieSlug

	if rec.Email != "" {
		link := "/"
		if movieSlug != "" {
			link = "/movie/" + movieSlug
		}
		if err := s.mailer.SendMovieAvailable(ctx, rec.Email, rec.MovieName, link); err != nil {
			log.Printf("[Recommendation] 发送上架邮件失败 (id=%d): %v", rec.ID, err)
		}
	}

	return rec, nil
}

// MyUpdates 请求者（userId 或 IP）已上架但未确认的求片
func (s *RecommendationService) MyUpdates(ctx context.Context, userID, clientIP string) ([]model.Recommendation, error) {
	recs, err := s.store.FindUpdates(ctx, strings.TrimSpace(userID), utils.HashIP(clientIP))
	if err != nil {
		return nil, internalError("Failed to fetch updates", err)
	}
	return recs, nil
}

// Acknowledge 客户端确认后标记为已通知
func (s *RecommendationService) Acknowledge(ctx context.Context, ids []int) (int64, error) {
	if len(ids) == 0 {
		return 0, errs.Errorf(errs.EINVALID, "ids are required")
	}
	n, err := s.store.MarkNotified(ctx, ids)
	if err != nil {
		return 0, internalError("Failed to update recommendations", err)
	}
	return n, nil
}

// Delete 仅允许删除已上架的求片
func (s *RecommendationService) Delete(ctx context.Context, id int) error {
	rec, err := s.store.FindByID(ctx, id)
	if err != nil {
		return internalError("Failed to fetch recommendation", err)
	}
	if rec == nil {
		return errs.Errorf(errs.ENOTFOUND, "Recommendation not found")
	}
	if rec.Status != model.RecommendationAdded {
		return errs.Errorf(errs.EINVALID, "Can only delete recommendations that have been added")
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return internalError("Failed to delete recommendation", err)
	}
	return nil
}
