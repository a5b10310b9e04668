package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/user/cinemax/internal/catalog"
	"github.com/user/cinemax/internal/model"
	"github.com/user/cinemax/internal/service"
)

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) List(ctx context.Context, p service.ListParams) (*catalog.Result, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Result), args.Error(1)
}

func (m *MockCatalog) AdminList(ctx context.Context, p service.ListParams) (*catalog.Result, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Result), args.Error(1)
}

func (m *MockCatalog) ByGenre(ctx context.Context, slug, sort string, page int) (*service.GenrePage, error) {
	args := m.Called(ctx, slug, sort, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GenrePage), args.Error(1)
}

func (m *MockCatalog) ByYear(ctx context.Context, year, sort string, page int) (*catalog.Result, error) {
	args := m.Called(ctx, year, sort, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Result), args.Error(1)
}

func (m *MockCatalog) Genres(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalog) Years(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

type MockMovies struct {
	mock.Mock
}

func (m *MockMovies) Create(ctx context.Context, in model.MovieInput) (*model.Movie, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Movie), args.Error(1)
}

func (m *MockMovies) Update(ctx context.Context, id int, in model.MovieInput) (*model.Movie, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Movie), args.Error(1)
}

func (m *MockMovies) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMovies) Get(ctx context.Context, id int) (*model.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Movie), args.Error(1)
}

func (m *MockMovies) GetBySlug(ctx context.Context, slug string) (*model.Movie, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Movie), args.Error(1)
}

type MockRecommendations struct {
	mock.Mock
}

func (m *MockRecommendations) Submit(ctx context.Context, in service.RecommendationInput, clientIP string) (*model.Recommendation, error) {
	args := m.Called(ctx, in, clientIP)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recommendation), args.Error(1)
}

func (m *MockRecommendations) List(ctx context.Context) ([]model.Recommendation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recommendation), args.Error(1)
}

func (m *MockRecommendations) Fulfill(ctx context.Context, id int, movieSlug string) (*model.Recommendation, error) {
	args := m.Called(ctx, id, movieSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recommendation), args.Error(1)
}

func (m *MockRecommendations) MyUpdates(ctx context.Context, userID, clientIP string) ([]model.Recommendation, error) {
	args := m.Called(ctx, userID, clientIP)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recommendation), args.Error(1)
}

func (m *MockRecommendations) Acknowledge(ctx context.Context, ids []int) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecommendations) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type MockContacts struct {
	mock.Mock
}

func (m *MockContacts) Submit(ctx context.Context, in service.ContactInput) (*model.Contact, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contact), args.Error(1)
}

func (m *MockContacts) List(ctx context.Context) ([]model.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contact), args.Error(1)
}

func (m *MockContacts) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type MockNotifications struct {
	mock.Mock
}

func (m *MockNotifications) Recent(ctx context.Context) (*service.NotificationFeed, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.NotificationFeed), args.Error(1)
}

func (m *MockNotifications) MarkAllRead(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockAuth struct {
	mock.Mock
}

func (m *MockAuth) Authenticate(ctx context.Context, email, password, clientIP string) (*model.User, error) {
	args := m.Called(ctx, email, password, clientIP)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuth) Me(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
