package paperless_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paperless-community/paperless-go/pkg/paperless"
)

func TestQueryParamsToValues(t *testing.T) {
	t.Parallel()

	t.Run("basic parameters", func(t *testing.T) {
		t.Parallel()

		params := paperless.NewQueryParams().
			WithPage(2).
			WithPageSize(50).
			WithOrdering("-created").
			WithQuery("invoice")

		values := params.ToValues()
		assert.Equal(t, "2", values.Get("page"))
		assert.Equal(t, "50", values.Get("page_size"))
		assert.Equal(t, "-created", values.Get("ordering"))
		assert.Equal(t, "invoice", values.Get("query"))
		assert.Empty(t, values.Get("full_perms"))
	})

	t.Run("full perms", func(t *testing.T) {
		t.Parallel()

		values := paperless.NewQueryParams().WithFullPerms().ToValues()
		assert.Equal(t, "true", values.Get("full_perms"))
	})

	t.Run("in filters are comma joined", func(t *testing.T) {
		t.Parallel()

		params := paperless.NewQueryParams().
			WithFilter("tags__id__in", "1", "2", "3").
			WithFilter("title__icontains", "tax")

		values := params.ToValues()
		assert.Equal(t, "1,2,3", values.Get("tags__id__in"))
		assert.Equal(t, "tax", values.Get("title__icontains"))
	})

	t.Run("empty params render empty", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, paperless.NewQueryParams().ToValues())
	})
}

func TestQueryParamsClone(t *testing.T) {
	t.Parallel()

	original := paperless.NewQueryParams().
		WithPage(3).
		WithFilter("tags__id__in", "7")

	clone := original.Clone()
	clone.Page = 9
	clone.WithFilter("tags__id__in", "8")

	assert.Equal(t, 3, original.Page)
	assert.Equal(t, []string{"7"}, original.Filters["tags__id__in"])
	assert.Equal(t, []string{"7", "8"}, clone.Filters["tags__id__in"])
}
