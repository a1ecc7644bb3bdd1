package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lookcircuit-backend/internal/recommendations"
)

func newCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New()
	require.NoError(t, err)
	return c
}

func names(products []Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestShopSeedHasSixProducts(t *testing.T) {
	res, err := newCatalog(t).Products(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Len(t, res, 6)
}

func TestShopFilterShoesReturnsOxfords(t *testing.T) {
	f, err := NewFilter("", "Shoes")
	require.NoError(t, err)
	res, err := newCatalog(t).Products(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, []string{"Leather Oxford Shoes"}, names(res))
}

func TestShopFilterComposesSearchAndCategory(t *testing.T) {
	c := newCatalog(t)
	cases := []struct {
		search, category string
		want             []string
		empty            bool
	}{
		{"SHIRT", "All", []string{"Classic White Oxford Shirt", "Linen Camp Shirt"}, false},
		{"oxford", "", []string{"Classic White Oxford Shirt", "Leather Oxford Shoes"}, false},
		{"oxford", "Shirts", []string{"Classic White Oxford Shirt"}, false},
		{"overcoat", "Shoes", []string{}, true},
	}
	for _, tc := range cases {
		f, err := NewFilter(tc.search, tc.category)
		require.NoError(t, err)
		res, err := c.Products(context.Background(), f)
		require.NoError(t, err)
		assert.Equal(t, tc.want, names(res), "%q in %q", tc.search, tc.category)
		assert.Equal(t, tc.empty, res.Empty())
	}
}

func TestNewFilterRejectsUnknownCategory(t *testing.T) {
	_, err := NewFilter("", "Hats")
	assert.ErrorIs(t, err, ErrUnknownCategory)
	_, err = NewFilter("", "shoes")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestFavoritesToggleIsInvolution(t *testing.T) {
	f := NewFavorites()
	f.Toggle("p1")
	before := f.IDs()

	assert.True(t, f.Toggle("p3"))
	assert.True(t, f.Has("p3"))
	assert.False(t, f.Toggle("p3"))
	assert.Equal(t, before, f.IDs())

	var zero Favorites
	assert.True(t, zero.Toggle("p2"))
	assert.Equal(t, 1, zero.Len())
}

func TestFilterDoesNotExposeSeed(t *testing.T) {
	c := newCatalog(t)
	res, err := c.Products(context.Background(), Filter{})
	require.NoError(t, err)
	res[0].Name = "changed"
	again, err := c.Products(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Equal(t, "Classic White Oxford Shirt", again[0].Name)
}

func TestDiscoverMatchesPaletteCaseInsensitively(t *testing.T) {
	got := newCatalog(t).Discover([]string{"#000080", "#ffffff", "#808080"}, []string{"Shirts", "footwear", "T Shirts", "hats"}, "", 0)

	assert.Equal(t, []string{"Classic Oxford Shirt", "Slim Fit Formal Shirt"}, names(got["Shirts"]))
	// no palette match falls back to the whole category
	assert.Equal(t, []string{"Leather Oxford Shoes"}, names(got["footwear"]))
	assert.Equal(t, []string{"Round Neck Cotton T-Shirt"}, names(got["T Shirts"]))
	assert.NotContains(t, got, "hats")
	assert.Equal(t, 4, Count(got))
}

func TestDiscoverTruncatesAndFiltersNarrowly(t *testing.T) {
	c := newCatalog(t)
	got := c.Discover([]string{"#87CEEB"}, []string{"shirts"}, "", 0)
	assert.Equal(t, []string{"Classic Oxford Shirt"}, names(got["shirts"]))

	got = c.Discover([]string{"#123456"}, []string{"shirts"}, "", 1)
	assert.Len(t, got["shirts"], 1)

	got = c.Discover([]string{"#123456"}, []string{"jeans"}, "", 0)
	assert.Empty(t, got["jeans"])
	assert.Contains(t, got, "jeans")
}

func TestByColor(t *testing.T) {
	c := newCatalog(t)
	got, err := c.ByColor("#8A4412", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Leather Oxford Shoes"}, names(got))

	got, err = c.ByColor("FFD700", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Aviator Sunglasses"}, names(got))

	_, err = c.ByColor("#zzzzzz", 50)
	assert.Error(t, err)
}

func TestOutfitProductsMapsPieces(t *testing.T) {
	c := newCatalog(t)

	casual := recommendations.OutfitFor("casual", "male", recommendations.DefaultPalette)
	got := c.OutfitProducts(casual, recommendations.DefaultPalette)
	assert.Contains(t, got, "t-shirts")
	assert.Contains(t, got, "jeans")
	assert.Contains(t, got, "footwear")
	assert.NotContains(t, got, "shirts")

	formal := recommendations.OutfitFor("formal", "male", recommendations.DefaultPalette)
	got = c.OutfitProducts(formal, recommendations.DefaultPalette)
	assert.Equal(t, []string{"Classic Oxford Shirt", "Slim Fit Formal Shirt"}, names(got["shirts"]))
	assert.Equal(t, []string{"Formal Pleated Trousers"}, names(got["trousers"]))
	assert.Equal(t, 4, Count(got))
}

func TestParseRejectsUnknownDiscoveryCategory(t *testing.T) {
	_, err := Parse([]byte("discovery:\n  hats:\n    - id: h1\n"))
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
