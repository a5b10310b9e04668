package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/cinemax/internal/catalog"
)

func TestBuildFilter(t *testing.T) {
	t.Run("empty params match everything", func(t *testing.T) {
		f := catalog.BuildFilter(catalog.FilterParams{})
		assert.Equal(t, catalog.Filter{}, f)
		assert.False(t, f.HasText())
	})

	t.Run("All sentinel imposes no restriction", func(t *testing.T) {
		f := catalog.BuildFilter(catalog.FilterParams{Genre: "All", Year: "All"})
		assert.Equal(t, catalog.Filter{}, f)
	})

	t.Run("parses every facet", func(t *testing.T) {
		f := catalog.BuildFilter(catalog.FilterParams{
			Query:     "  matrix ",
			Genre:     "Action",
			MinRating: "7.5",
			Year:      "1999",
		})

		assert.Equal(t, "matrix", f.Text)
		assert.Equal(t, "Action", f.Genre)
		require.NotNil(t, f.MinRating)
		assert.Equal(t, 7.5, *f.MinRating)
		require.NotNil(t, f.Year)
		assert.Equal(t, 1999, *f.Year)
	})

	t.Run("malformed numbers are ignored", func(t *testing.T) {
		for _, raw := range []string{"abc", "NaN", "Inf", "-Inf", "7.x"} {
			f := catalog.BuildFilter(catalog.FilterParams{MinRating: raw, Year: raw})
			assert.Nil(t, f.MinRating, raw)
			assert.Nil(t, f.Year, raw)
		}
	})

	t.Run("zero rating is a real threshold", func(t *testing.T) {
		f := catalog.BuildFilter(catalog.FilterParams{MinRating: "0"})
		require.NotNil(t, f.MinRating)
		assert.Zero(t, *f.MinRating)
	})
}
