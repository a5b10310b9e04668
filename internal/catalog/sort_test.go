package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/user/cinemax/internal/catalog"
)

func TestResolveSort(t *testing.T) {
	created := catalog.Key{Field: catalog.FieldCreated, Desc: true}

	tests := []struct {
		key      string
		expected catalog.Order
	}{
		{catalog.SortNewest, catalog.Order{created}},
		{catalog.SortOldest, catalog.Order{{Field: catalog.FieldCreated}}},
		{catalog.SortYearDesc, catalog.Order{{Field: catalog.FieldYear, Desc: true}, created}},
		{catalog.SortYearAsc, catalog.Order{{Field: catalog.FieldYear}, created}},
		{catalog.SortRatingDesc, catalog.Order{{Field: catalog.FieldRating, Desc: true}, created}},
		{catalog.SortTitleAsc, catalog.Order{{Field: catalog.FieldTitle}, created}},
		{catalog.SortTitleDesc, catalog.Order{{Field: catalog.FieldTitle, Desc: true}, created}},
		{"", catalog.Order{created}},
		{"popular", catalog.Order{created}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, catalog.ResolveSort(tt.key, false))
		})
	}
}

func TestResolveSort_TextOverridesKey(t *testing.T) {
	expected := catalog.Order{
		{Field: catalog.FieldRelevance, Desc: true},
		{Field: catalog.FieldCreated, Desc: true},
	}
	assert.Equal(t, expected, catalog.ResolveSort(catalog.SortTitleAsc, true))
	assert.Equal(t, expected, catalog.ResolveSort("bogus", true))

	q := catalog.NewQuery(catalog.Filter{Text: "war"}, catalog.SortTitleAsc, catalog.NewWindow(1, 18))
	assert.Equal(t, expected, q.Order)
}
