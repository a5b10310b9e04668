package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/user/cinemax/internal/catalog"
	"github.com/user/cinemax/internal/model"
)

type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) Search(ctx context.Context, q catalog.Query) (*catalog.Result, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Result), args.Error(1)
}

func (m *MockMovieRepository) DistinctGenres(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockMovieRepository) DistinctYears(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *model.Movie) error {
	return m.Called(ctx, movie).Error(0)
}

func (m *MockMovieRepository) Update(ctx context.Context, movie *model.Movie) error {
	return m.Called(ctx, movie).Error(0)
}

func (m *MockMovieRepository) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMovieRepository) FindByID(ctx context.Context, id int) (*model.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Movie), args.Error(1)
}

func (m *MockMovieRepository) FindBySlug(ctx context.Context, slug string) (*model.Movie, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Movie), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Emit(ctx context.Context, kind, message, link string) error {
	return m.Called(ctx, kind, message, link).Error(0)
}

type MockRecommendationRepository struct {
	mock.Mock
}

func (m *MockRecommendationRepository) Create(ctx context.Context, rec *model.Recommendation) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *MockRecommendationRepository) List(ctx context.Context) ([]model.Recommendation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recommendation), args.Error(1)
}

func (m *MockRecommendationRepository) FindByID(ctx context.Context, id int) (*model.Recommendation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recommendation), args.Error(1)
}

func (m *MockRecommendationRepository) MarkAdded(ctx context.Context, id int, from, movieSlug string) (bool, error) {
	args := m.Called(ctx, id, from, movieSlug)
	return args.Bool(0), args.Error(1)
}

func (m *MockRecommendationRepository) FindUpdates(ctx context.Context, userID, ipHash string) ([]model.Recommendation, error) {
	args := m.Called(ctx, userID, ipHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recommendation), args.Error(1)
}

func (m *MockRecommendationRepository) MarkNotified(ctx context.Context, ids []int) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecommendationRepository) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendMovieAvailable(ctx context.Context, to, movieName, movieLink string) error {
	return m.Called(ctx, to, movieName, movieLink).Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) CheckPassword(user *model.User, password string) bool {
	return m.Called(user, password).Bool(0)
}
