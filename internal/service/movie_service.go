package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/user/cinemax/internal/errs"
	"github.com/user/cinemax/internal/model"
	"github.com/user/cinemax/internal/utils"
	"gorm.io/gorm"
)

// MovieStore 电影增删改查
type MovieStore interface {
	Create(ctx context.Context, movie *model.Movie) error
	Update(ctx context.Context, movie *model.Movie) error
	Delete(ctx context.Context, id int) (bool, error)
	FindByID(ctx context.Context, id int) (*model.Movie, error)
	FindBySlug(ctx context.Context, slug string) (*model.Movie, error)
}

// Notifier 电影变更时写入后台通知
type Notifier interface {
	Emit(ctx context.Context, kind, message, link string) error
}

// MovieService 电影管理
type MovieService struct {
	movies   MovieStore
	notifier Notifier
}

// NewMovieService 创建电影服务
func NewMovieService(movies MovieStore, notifier Notifier) *MovieService {
	return &MovieService{movies: movies, notifier: notifier}
}

// Create 创建电影，slug 为空时由标题和年份生成
func (s *MovieService) Create(ctx context.Context, in model.MovieInput) (*model.Movie, error) {
	if err := normalize(&in); err != nil {
		return nil, err
	}

	movie := &model.Movie{}
	in.Apply(movie)

	if err := s.movies.Create(ctx, movie); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.Errorf(errs.ECONFLICT, "A movie with slug %q already exists", movie.Slug)
		}
		return nil, internalError("Failed to create movie", err)
	}

	s.emit(ctx, model.NotificationMovieAdded, "New movie added: "+movie.Title, movie.Slug)
	return movie, nil
}

// Update 全量更新电影，并发编辑以最后一次写入为准
func (s *MovieService) Update(ctx context.Context, id int, in model.MovieInput) (*model.Movie, error) {
	if err := normalize(&in); err != nil {
		return nil, err
	}

	movie, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	in.Apply(movie)
	if err := s.movies.Update(ctx, movie); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.Errorf(errs.ECONFLICT, "A movie with slug %q already exists", movie.Slug)
		}
		return nil, internalError("Failed to update movie", err)
	}

	s.emit(ctx, model.NotificationMovieUpdated, "Movie updated: "+movie.Title, movie.Slug)
	return movie, nil
}

// Delete 删除电影
func (s *MovieService) Delete(ctx context.Context, id int) error {
	ok, err := s.movies.Delete(ctx, id)
	if err != nil {
		return internalError("Failed to delete movie", err)
	}
	if !ok {
		return errs.Errorf(errs.ENOTFOUND, "Movie not found")
	}
	return nil
}

// Get 根据 ID 获取电影
func (s *MovieService) Get(ctx context.Context, id int) (*model.Movie, error) {
	movie, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return nil, internalError("Failed to fetch movie", err)
	}
	if movie == nil {
		return nil, errs.Errorf(errs.ENOTFOUND, "Movie not found")
	}
	return movie, nil
}

// GetBySlug 详情页
func (s *MovieService) GetBySlug(ctx context.Context, slug string) (*model.Movie, error) {
	movie, err := s.movies.FindBySlug(ctx, slug)
	if err != nil {
		return nil, internalError("Failed to fetch movie", err)
	}
	if movie == nil {
		return nil, errs.Errorf(errs.ENOTFOUND, "Movie not found")
	}
	return movie, nil
}

// emit 通知写入失败只记录日志，不影响电影本身的写入结果
func (s *MovieService) emit(ctx context.Context, kind, message, slug string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Emit(ctx, kind, message, "/movie/"+slug); err != nil {
		log.Printf("[MovieService] 写入通知失败 (%s): %v", slug, err)
	}
}

func normalize(in *model.MovieInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Slug = strings.TrimSpace(in.Slug)
	if in.Title == "" {
		return errs.Errorf(errs.EINVALID, "Title is required")
	}
	if in.Slug == "" {
		in.Slug = utils.Slugify(in.Title, in.ReleaseYear)
		if in.Slug == "" {
			return errs.Errorf(errs.EINVALID, "Slug is required when the title has no letters or digits")
		}
	}
	if !utils.IsSlug(in.Slug) {
		return errs.Errorf(errs.EINVALID, "Slug must contain only lowercase letters, digits and single hyphens")
	}
	if in.ImdbRating < 0 || in.ImdbRating > 10 {
		return errs.Errorf(errs.EINVALID, "Rating must be between 0 and 10")
	}
	return nil
}
