package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenrril/flexlinen/internal/domain"
)

func ids(ps []domain.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestDefault_ProductsAreValid(t *testing.T) {
	c := Default()
	list := c.Products()
	require.Len(t, list, 6)
	seen := map[string]bool{}
	for _, p := range list {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
		assert.Greater(t, p.Price, 0.0, p.Name)
		assert.GreaterOrEqual(t, p.Rating, 0.0, p.Name)
		assert.LessOrEqual(t, p.Rating, 5.0, p.Name)
		assert.NotEmpty(t, p.Sizes, p.Name)
		assert.NotEmpty(t, p.Colors, p.Name)
	}
}

func TestProducts_ReturnsCopies(t *testing.T) {
	c := Default()
	list := c.Products()
	list[0].Name = "changed"
	list[0].Sizes[0] = "XXXL"

	p, err := c.ProductByID(list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Premium Track Pants", p.Name)
	assert.Equal(t, "S", p.Sizes[0])
}

func TestProductByID_NotFound(t *testing.T) {
	_, err := Default().ProductByID("999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCollections(t *testing.T) {
	c := Default()
	assert.Len(t, c.Collections(), 6)
	assert.Len(t, c.FeaturedCollections(), 4)

	list, err := c.CollectionProducts("winter-collection")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "6"}, ids(list))

	list, err = c.CollectionProducts("active-wear")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(list))

	_, err = c.CollectionProducts("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryPage(t *testing.T) {
	c := Default()

	page, list, err := c.CategoryPage("Lowers")
	require.NoError(t, err)
	assert.Equal(t, "Lowers", page.Name)
	assert.Equal(t, []string{"1", "3"}, ids(list))

	_, list, err = c.CategoryPage("tracksuits")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "6"}, ids(list))

	_, _, err = c.CategoryPage("socks")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoriesAndSortOptions(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{"All", "Lowers", "Tracksuits", "Accessories"}, c.Categories())
	opts := c.SortOptions()
	require.Len(t, opts, 5)
	assert.Equal(t, "popular", opts[0].Value)
	assert.Equal(t, "price-desc", opts[4].Value)
}
