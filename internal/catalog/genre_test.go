package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/user/cinemax/internal/catalog"
)

func TestGenreDirectory(t *testing.T) {
	var flat []string
	for _, g := range [][]string{{"Action", "Drama"}, {"Drama"}, {}} {
		flat = append(flat, g...)
	}
	assert.Equal(t, []string{"All", "Action", "Drama"}, catalog.GenreDirectory(flat))

	assert.Equal(t, []string{"All"}, catalog.GenreDirectory(nil))
	assert.Equal(t, []string{"All", "Comedy"}, catalog.GenreDirectory([]string{"", " ", "Comedy"}))
}

func TestGenreSlug(t *testing.T) {
	assert.Equal(t, "sci-fi", catalog.GenreSlug("Sci Fi"))
	assert.Equal(t, "action", catalog.GenreSlug("Action"))
	assert.Equal(t, "film-noir", catalog.GenreSlug("Film  Noir"))
}

func TestResolveGenre(t *testing.T) {
	dir := []string{"All", "Action", "Sci Fi"}

	g, ok := catalog.ResolveGenre(dir, "sci-fi")
	assert.True(t, ok)
	assert.Equal(t, "Sci Fi", g)

	g, ok = catalog.ResolveGenre(dir, "all")
	assert.True(t, ok)
	assert.Equal(t, "All", g)

	_, ok = catalog.ResolveGenre(dir, "western")
	assert.False(t, ok)
}

func TestIsYear(t *testing.T) {
	assert.True(t, catalog.IsYear("2010"))
	assert.False(t, catalog.IsYear("201"))
	assert.False(t, catalog.IsYear("20a0"))
	assert.False(t, catalog.IsYear("２０１０"))
}
