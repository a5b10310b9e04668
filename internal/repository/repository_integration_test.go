package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/user/cinemax/internal/catalog"
	"github.com/user/cinemax/internal/model"
	"github.com/user/cinemax/internal/repository"
)

func CreateConnection(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	dbName, dbUser, dbPass := "cinemax", "cinemax", "123456"
	cont := SetupPostgresContainer(t, dbName, dbUser, dbPass)
	host, err := cont.Host(context.Background())
	require.NoError(t, err)
	port, err := cont.MappedPort(context.Background(), "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", dbUser, dbPass, host, port.Port(), dbName)
	db, err := repository.Open(dsn)
	require.NoError(t, err)

	_, err = repository.Migrate(db)
	require.NoError(t, err)

	return db
}

func SetupPostgresContainer(t testing.TB, dbname, user, password string) testcontainers.Container {
	ctx := context.Background()
	postgre, err := pgcontainer.RunContainer(ctx,
		testcontainers.WithImage("docker.io/postgres:15.2-alpine"),
		pgcontainer.WithDatabase(dbname),
		pgcontainer.WithUsername(user),
		pgcontainer.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, postgre.Terminate(ctx))
	})

	return postgre
}

func seedMovie(t *testing.T, repo *repository.MovieRepository, title, slug, description string, genres []string, rating float64, releaseYear *int) *model.Movie {
	t.Helper()

	in := model.MovieInput{
		Title:       title,
		Slug:        slug,
		Description: description,
		Genres:      genres,
		ImdbRating:  rating,
		ReleaseYear: releaseYear,
	}
	m := &model.Movie{}
	in.Apply(m)
	require.NoError(t, repo.Create(context.Background(), m))
	return m
}

func TestMovieRepository(t *testing.T) {
	db := CreateConnection(t)
	repos := repository.NewRepositories(repository.Wrap(db))
	ctx := context.Background()

	y1999, y1994 := 1999, 1994
	seedMovie(t, repos.Movie, "Speed", "speed-1994", "see the Matrix reference", []string{"Action"}, 7.2, &y1994)
	seedMovie(t, repos.Movie, "The Matrix", "the-matrix-1999", "x", []string{"Action", "Drama"}, 8.7, &y1999)
	seedMovie(t, repos.Movie, "Untitled", "untitled", "", []string{}, 0, nil)

	t.Run("relevance ordering", func(t *testing.T) {
		f := catalog.BuildFilter(catalog.FilterParams{Query: "Matrix"})
		res, err := repos.Movie.Search(ctx, catalog.NewQuery(f, catalog.SortTitleDesc, catalog.NewWindow(1, 18)))
		require.NoError(t, err)

		require.Len(t, res.Movies, 2)
		assert.Equal(t, "The Matrix", res.Movies[0].Title)
		assert.Equal(t, "Speed", res.Movies[1].Title)
		assert.Equal(t, int64(2), res.Pagination.TotalMovies)
	})

	t.Run("filters only narrow", func(t *testing.T) {
		all, err := repos.Movie.Search(ctx, catalog.NewQuery(catalog.Filter{}, "", catalog.NewWindow(1, 18)))
		require.NoError(t, err)
		assert.Equal(t, int64(3), all.Pagination.TotalMovies)

		for _, p := range []catalog.FilterParams{
			{Genre: "Drama"},
			{MinRating: "8"},
			{Year: "1994"},
			{Query: "speed", Genre: "Action"},
			{MinRating: "not-a-number"},
		} {
			res, err := repos.Movie.Search(ctx, catalog.NewQuery(catalog.BuildFilter(p), "", catalog.NewWindow(1, 18)))
			require.NoError(t, err)
			assert.LessOrEqual(t, res.Pagination.TotalMovies, all.Pagination.TotalMovies)
			assert.Len(t, res.Movies, int(res.Pagination.TotalMovies))
		}
	})

	t.Run("window never exceeds size", func(t *testing.T) {
		res, err := repos.Movie.Search(ctx, catalog.NewQuery(catalog.Filter{}, catalog.SortOldest, catalog.NewWindow(2, 2)))
		require.NoError(t, err)
		assert.Len(t, res.Movies, 1)
		assert.Equal(t, catalog.Pagination{CurrentPage: 2, TotalPages: 2, TotalMovies: 3}, res.Pagination)
	})

	t.Run("year sort keeps missing years last", func(t *testing.T) {
		res, err := repos.Movie.Search(ctx, catalog.NewQuery(catalog.Filter{}, catalog.SortYearAsc, catalog.NewWindow(1, 18)))
		require.NoError(t, err)
		require.Len(t, res.Movies, 3)
		assert.Equal(t, "Speed", res.Movies[0].Title)
		assert.Equal(t, "Untitled", res.Movies[2].Title)
	})

	t.Run("genre directory", func(t *testing.T) {
		genres, err := repos.Movie.DistinctGenres(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"All", "Action", "Drama"}, catalog.GenreDirectory(genres))
	})

	t.Run("distinct years", func(t *testing.T) {
		years, err := repos.Movie.DistinctYears(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int{1999, 1994}, years)
	})

	t.Run("duplicate slug is rejected", func(t *testing.T) {
		m := &model.Movie{}
		(&model.MovieInput{Title: "Inception", Slug: "inception-2010"}).Apply(m)
		require.NoError(t, repos.Movie.Create(ctx, m))

		dup := &model.Movie{}
		(&model.MovieInput{Title: "Inception again", Slug: "inception-2010"}).Apply(dup)
		err := repos.Movie.Create(ctx, dup)
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

		got, err := repos.Movie.FindBySlug(ctx, "inception-2010")
		require.NoError(t, err)
		assert.Equal(t, "Inception", got.Title)
	})

	t.Run("missing movie is nil", func(t *testing.T) {
		got, err := repos.Movie.FindByID(ctx, 999999)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestRecommendationRepository(t *testing.T) {
	db := CreateConnection(t)
	repo := repository.NewRecommendationRepository(repository.Wrap(db))
	ctx := context.Background()

	rec := &model.Recommendation{MovieName: "Dune", UserID: "u-1", IPHash: "abc", Status: model.RecommendationPending}
	require.NoError(t, repo.Create(ctx, rec))

	ok, err := repo.MarkAdded(ctx, rec.ID, model.RecommendationPending, "dune-2021")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.MarkAdded(ctx, rec.ID, model.RecommendationPending, "dune-2021")
	require.NoError(t, err)
	assert.False(t, ok, "already added")

	updates, err := repo.FindUpdates(ctx, "", "abc")
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, "dune-2021", updates[0].MovieSlug)

	n, err := repo.MarkNotified(ctx, []int{rec.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	updates, err = repo.FindUpdates(ctx, "u-1", "")
	require.NoError(t, err)
	assert.Empty(t, updates)
}
